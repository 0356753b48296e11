// Package reconcile exposes the combine and diff engines over HTTP, operating
// on export CSVs stored in the exports bucket.
//
// The combine endpoint merges named per-vote-type objects into a combined
// export plus a conflict report, writes both back to the bucket, and returns
// a summary. The diff endpoint compares two objects under the configurable
// equality relation; it follows the interactive app's conventions by default
// (blank cells equal numeric zero, ballots_cast excluded from comparison).
//
// Each invocation is independent and side-effect-free apart from the objects
// it writes: the engines never mutate their inputs and identical inputs
// produce identical outputs.
package reconcile
