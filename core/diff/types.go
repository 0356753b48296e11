package diff

import (
	"precinct-reconciler/core/precinct"
)

// Type classifies a diff record.
type Type string

const (
	// TypeMissingInFile1 marks a row present only in the second dataset.
	TypeMissingInFile1 Type = "missing_in_file1"
	// TypeMissingInFile2 marks a row present only in the first dataset.
	TypeMissingInFile2 Type = "missing_in_file2"
	// TypeValueMismatch marks a cell whose values differ between datasets.
	TypeValueMismatch Type = "value_mismatch"
)

// Sentinel values used in missing-row records instead of cell values.
const (
	RowPresent = "ROW_PRESENT"
	RowMissing = "ROW_MISSING"
)

// Options controls column selection and the equality relation.
type Options struct {
	// Tolerance is the maximum absolute difference under which two numeric
	// values are considered equal. Zero means exact.
	Tolerance float64

	// CaseSensitive disables the default lowercasing of both sides before
	// string comparison.
	CaseSensitive bool

	// Columns, when non-empty, restricts the comparison to these columns.
	// Columns absent from either table are skipped, never an error.
	Columns []string

	// ExcludeColumns removes specific columns from the comparison set.
	ExcludeColumns []string

	// BlankEqualsZero treats a blank cell as equal to a numeric value whose
	// absolute value is within Tolerance.
	BlankEqualsZero bool
}

// Record is one reported difference. For value mismatches Column names the
// differing field and the value fields carry both raw cell values verbatim;
// for missing rows Column is empty and the value fields hold the
// RowPresent/RowMissing sentinels.
type Record struct {
	Key         precinct.Key
	Type        Type
	Column      string
	File1Value  string
	File2Value  string
	Description string
}

// Table materializes diff records as a table in the canonical diff column
// order, ready to be written out.
func Table(records []Record) *precinct.Table {
	t := precinct.NewTable("", precinct.DiffColumns)
	for _, r := range records {
		t.Append(precinct.Row{
			"state":       r.Key.State,
			"county":      r.Key.County,
			"precinct":    r.Key.Precinct,
			"diff_type":   string(r.Type),
			"column":      r.Column,
			"file1_value": r.File1Value,
			"file2_value": r.File2Value,
			"description": r.Description,
		})
	}
	return t
}
