// Package diff compares two wide precinct datasets keyed by
// (state, county, precinct) and reports per-row and per-cell differences.
//
// An outer join on the identity key partitions rows into "only in file1",
// "only in file2", and "in both". Exclusive rows yield one missing-row record
// each; rows present on both sides are compared cell by cell over a selectable
// column set (default: the intersection of both tables' non-key columns).
//
// Cell equality is configurable: whitespace is always trimmed, comparison is
// case-insensitive unless requested otherwise, values that both parse as
// numbers are compared within a tolerance, and an optional rule treats a
// blank cell as equal to a numeric zero. A value that fails to parse as a
// number when the other side does is compared as a string only.
//
// Diff mismatches are the product, never errors. Diff is pure and
// deterministic and never mutates its inputs.
package diff
