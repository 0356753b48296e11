// Package export pulls precinct-level election results out of the relational
// store and shapes them into the wide CSV layout.
//
// A scope (state, year, county, election name) selects rows from the
// elections/election_precincts tables; the chosen vote type decides which
// candidate/total column triplet the source values land in. Shared
// registration columns and the type-dependent base columns are always filled;
// every other vote type's triplet is left blank for the combiner to union.
//
// The package also provides the scope listing queries behind both the
// interactive export command and the HTTP scope endpoints, and the vote-type
// guessing applied to election names.
package export
