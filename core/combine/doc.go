// Package combine merges multiple per-vote-type precinct exports into one
// wide dataset keyed by (state, county, precinct).
//
// The engine performs three operations over fully materialized in-memory
// tables:
//
//  1. Merge: a full outer join across all supplied exports on the identity
//     key. Provenance is carried explicitly as (value, vote type) cells, so
//     one source can never silently overwrite another's value.
//
//  2. Conflict detection: shared registration columns must agree across every
//     source that reports them. When two or more sources disagree (empty
//     string is "no opinion", not a value), one conflict record is emitted per
//     disagreeing source value, and the key is dropped from the combined
//     output entirely. Dropping is all-or-nothing per row, never per column.
//
//  3. Coalesce: type-dependent columns (turnout, ballots cast, and the
//     post-conflict registration columns) take the first non-empty value in
//     the fixed priority total > eday > early > absentee > mailin.
//
// Combine is pure and deterministic: it never mutates its inputs, and
// identical inputs produce identical output tables, row for row.
package combine
