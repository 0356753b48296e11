// Package precinct defines the shared data model for precinct-level election
// results: the identity key, the wide CSV column vocabulary, the vote types and
// their coalescing priority, and a small in-memory table type that the combine
// and diff engines operate on.
//
// # Data Model
//
// Every record is addressed by the composite key (state, county, precinct).
// Columns fall into three classes:
//
//   - Identity columns: state, county, precinct. Immutable, never coalesced.
//   - Shared columns: registration counts. Expected to carry one true value
//     across all vote-type sources; disagreement is a conflict.
//   - Type-dependent columns: turnout/ballots plus each vote type's own
//     candidate/total triplet. Expected to differ by source; resolved by the
//     fixed priority total > eday > early > absentee > mailin.
//
// # Tables
//
// Table is a fully materialized, ordered set of rows, each a mapping from
// column name to raw string cell. Empty string and absent column are both
// "no value". Tables round-trip through CSV via ReadCSV/WriteCSV.
package precinct
