package combine

import (
	"precinct-reconciler/core/precinct"
)

// Input is one vote-type export supplied to the combiner. The table's Name
// labels the source (file path or object name) in conflict reports.
type Input struct {
	// Type is the vote type this export covers.
	Type precinct.VoteType

	// Table holds the export's rows. It must declare the identity columns
	// and the vote type's own column triplet.
	Table *precinct.Table
}

// Conflict is one disagreeing (key, shared column, source) observation.
// A single disagreement produces one Conflict per non-empty source value.
type Conflict struct {
	// Key identifies the affected precinct record.
	Key precinct.Key

	// Column is the shared column the sources disagree on.
	Column string

	// SourceType is the vote type that contributed Value.
	SourceType precinct.VoteType

	// SourceColumn is the provenance-tagged column label for the report,
	// e.g. "registered_voters__from_eday".
	SourceColumn string

	// SourceFile is the label of the input that contributed Value.
	SourceFile string

	// Value is the disagreeing raw cell value.
	Value string
}

// Result is the combiner's output pair plus status counters.
type Result struct {
	// Combined is the merged wide table in canonical column order,
	// restricted to keys with zero shared-column conflicts.
	Combined *precinct.Table

	// Conflicts lists every disagreeing shared-column observation, sorted
	// by key, then column, then source type.
	Conflicts []Conflict

	// RowsCombined is the number of rows in Combined.
	RowsCombined int

	// KeysDropped is the number of identity keys omitted from Combined
	// because of shared-column conflicts.
	KeysDropped int
}

// HasConflicts reports whether any shared-column conflict was detected.
// Conflicts are data-level findings, not errors; callers decide whether to
// escalate them to a failing status.
func (r *Result) HasConflicts() bool {
	return len(r.Conflicts) > 0
}

// ConflictTable materializes the conflict report as a table in the canonical
// conflict column order, ready to be written out.
func (r *Result) ConflictTable() *precinct.Table {
	t := precinct.NewTable("", precinct.ConflictColumns)
	for _, c := range r.Conflicts {
		t.Append(precinct.Row{
			"state":         c.Key.State,
			"county":        c.Key.County,
			"precinct":      c.Key.Precinct,
			"column":        c.Column,
			"source_type":   string(c.SourceType),
			"source_column": c.SourceColumn,
			"source_file":   c.SourceFile,
			"value":         c.Value,
		})
	}
	return t
}
