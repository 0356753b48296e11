package diff

import (
	"fmt"
	"sort"

	"precinct-reconciler/core/precinct"
)

// Diff compares two wide tables keyed by (state, county, precinct) and
// returns the sorted list of differences. Either table missing an identity
// column is a configuration error; a comparison column absent from one side
// is silently skipped.
//
// Within one table, the first row seen for an identity key wins; later
// duplicates are ignored.
func Diff(file1, file2 *precinct.Table, opts Options) ([]Record, error) {
	label1 := file1.Label("file1")
	label2 := file2.Label("file2")

	for _, t := range []struct {
		table *precinct.Table
		label string
	}{{file1, label1}, {file2, label2}} {
		if missing := t.table.MissingColumns(precinct.IdentityColumns); len(missing) > 0 {
			return nil, fmt.Errorf("%s: missing key column %q", t.label, missing[0])
		}
	}

	columns := selectColumns(file1, file2, opts)
	index1, keys1 := indexByKey(file1)
	index2, keys2 := indexByKey(file2)

	var records []Record

	for _, key := range keys1 {
		if _, ok := index2[key]; ok {
			continue
		}
		records = append(records, Record{
			Key:        key,
			Type:       TypeMissingInFile2,
			File1Value: RowPresent,
			File2Value: RowMissing,
			Description: fmt.Sprintf("Row exists in file1 (%s) but not in file2 (%s).",
				label1, label2),
		})
	}
	for _, key := range keys2 {
		if _, ok := index1[key]; ok {
			continue
		}
		records = append(records, Record{
			Key:        key,
			Type:       TypeMissingInFile1,
			File1Value: RowMissing,
			File2Value: RowPresent,
			Description: fmt.Sprintf("Row exists in file2 (%s) but not in file1 (%s).",
				label2, label1),
		})
	}

	for _, key := range keys1 {
		row2, ok := index2[key]
		if !ok {
			continue
		}
		row1 := index1[key]
		for _, column := range columns {
			v1 := row1[column]
			v2 := row2[column]
			if valuesEqual(v1, v2, opts) {
				continue
			}
			records = append(records, Record{
				Key:        key,
				Type:       TypeValueMismatch,
				Column:     column,
				File1Value: v1,
				File2Value: v2,
				Description: fmt.Sprintf("Column '%s' differs (file1 vs file2) with tol=%g, case_sensitive=%t.",
					column, opts.Tolerance, opts.CaseSensitive),
			})
		}
	}

	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.Key != b.Key {
			return a.Key.Less(b.Key)
		}
		if a.Type != b.Type {
			return a.Type < b.Type
		}
		return a.Column < b.Column
	})
	return records, nil
}

// selectColumns resolves the comparison column set: the explicit subset when
// given, otherwise the intersection of both tables' non-key columns; forced
// exclusions are removed last. The result is sorted for deterministic
// iteration.
func selectColumns(file1, file2 *precinct.Table, opts Options) []string {
	identity := make(map[string]struct{}, len(precinct.IdentityColumns))
	for _, c := range precinct.IdentityColumns {
		identity[c] = struct{}{}
	}
	excluded := make(map[string]struct{}, len(opts.ExcludeColumns))
	for _, c := range opts.ExcludeColumns {
		excluded[c] = struct{}{}
	}

	candidates := opts.Columns
	if len(candidates) == 0 {
		candidates = file1.Columns
	}

	var columns []string
	seen := make(map[string]struct{})
	for _, c := range candidates {
		if _, ok := identity[c]; ok {
			continue
		}
		if _, ok := excluded[c]; ok {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		if !file1.HasColumn(c) || !file2.HasColumn(c) {
			continue
		}
		seen[c] = struct{}{}
		columns = append(columns, c)
	}
	sort.Strings(columns)
	return columns
}

// indexByKey builds a first-wins row index and the key order of first
// appearance.
func indexByKey(t *precinct.Table) (map[precinct.Key]precinct.Row, []precinct.Key) {
	index := make(map[precinct.Key]precinct.Row, t.Len())
	keys := make([]precinct.Key, 0, t.Len())
	for _, row := range t.Rows {
		key := precinct.KeyOf(row)
		if _, ok := index[key]; ok {
			continue
		}
		index[key] = row
		keys = append(keys, key)
	}
	return index, keys
}
