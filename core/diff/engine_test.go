package diff

import (
	"testing"

	"precinct-reconciler/core/precinct"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTable(name string, columns []string, rows ...precinct.Row) *precinct.Table {
	table := precinct.NewTable(name, columns)
	for _, r := range rows {
		table.Append(r)
	}
	return table
}

var diffTestColumns = []string{"state", "county", "precinct", "total_votes", "ballots_cast"}

func TestDiff_MissingKeyColumn(t *testing.T) {
	bad := makeTable("a.csv", []string{"state", "county"})
	good := makeTable("b.csv", diffTestColumns)

	_, err := Diff(bad, good, Options{})
	assert.EqualError(t, err, `a.csv: missing key column "precinct"`)

	_, err = Diff(good, bad, Options{})
	assert.EqualError(t, err, `a.csv: missing key column "precinct"`)
}

// TestDiff_SelfIsEmpty verifies a table diffed against itself yields nothing.
func TestDiff_SelfIsEmpty(t *testing.T) {
	table := makeTable("a.csv", diffTestColumns,
		precinct.Row{"state": "PA", "county": "Erie", "precinct": "P-01", "total_votes": "100", "ballots_cast": "101"},
		precinct.Row{"state": "PA", "county": "Erie", "precinct": "P-02", "total_votes": "50", "ballots_cast": "50"},
	)

	records, err := Diff(table, table, Options{})
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestDiff_MissingRows(t *testing.T) {
	file1 := makeTable("a.csv", diffTestColumns,
		precinct.Row{"state": "PA", "county": "Erie", "precinct": "P-01", "total_votes": "100"},
		precinct.Row{"state": "PA", "county": "Erie", "precinct": "P-02", "total_votes": "50"},
	)
	file2 := makeTable("b.csv", diffTestColumns,
		precinct.Row{"state": "PA", "county": "Erie", "precinct": "P-01", "total_votes": "100"},
		precinct.Row{"state": "PA", "county": "Erie", "precinct": "P-03", "total_votes": "70"},
	)

	records, err := Diff(file1, file2, Options{})
	require.NoError(t, err)
	require.Len(t, records, 2)

	gone := records[0]
	assert.Equal(t, precinct.Key{State: "PA", County: "Erie", Precinct: "P-02"}, gone.Key)
	assert.Equal(t, TypeMissingInFile2, gone.Type)
	assert.Equal(t, RowPresent, gone.File1Value)
	assert.Equal(t, RowMissing, gone.File2Value)
	assert.Equal(t, "Row exists in file1 (a.csv) but not in file2 (b.csv).", gone.Description)

	added := records[1]
	assert.Equal(t, precinct.Key{State: "PA", County: "Erie", Precinct: "P-03"}, added.Key)
	assert.Equal(t, TypeMissingInFile1, added.Type)
	assert.Equal(t, RowMissing, added.File1Value)
	assert.Equal(t, RowPresent, added.File2Value)
}

func TestDiff_ValueMismatch(t *testing.T) {
	file1 := makeTable("a.csv", diffTestColumns,
		precinct.Row{"state": "PA", "county": "Erie", "precinct": "P-01", "total_votes": "100", "ballots_cast": "101"},
	)
	file2 := makeTable("b.csv", diffTestColumns,
		precinct.Row{"state": "PA", "county": "Erie", "precinct": "P-01", "total_votes": "105", "ballots_cast": "101"},
	)

	records, err := Diff(file1, file2, Options{Tolerance: 0.01})
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, TypeValueMismatch, rec.Type)
	assert.Equal(t, "total_votes", rec.Column)
	assert.Equal(t, "100", rec.File1Value)
	assert.Equal(t, "105", rec.File2Value)
	assert.Equal(t, "Column 'total_votes' differs (file1 vs file2) with tol=0.01, case_sensitive=false.", rec.Description)
}

// TestDiff_ColumnSelection covers explicit subsets, forced exclusions and
// columns present on only one side.
func TestDiff_ColumnSelection(t *testing.T) {
	file1 := makeTable("a.csv", []string{"state", "county", "precinct", "total_votes", "ballots_cast", "only_in_a"},
		precinct.Row{"state": "PA", "county": "Erie", "precinct": "P-01",
			"total_votes": "100", "ballots_cast": "1", "only_in_a": "x"},
	)
	file2 := makeTable("b.csv", diffTestColumns,
		precinct.Row{"state": "PA", "county": "Erie", "precinct": "P-01",
			"total_votes": "200", "ballots_cast": "2"},
	)

	t.Run("defaults to shared non-key columns", func(t *testing.T) {
		records, err := Diff(file1, file2, Options{})
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "ballots_cast", records[0].Column)
		assert.Equal(t, "total_votes", records[1].Column)
	})

	t.Run("explicit subset", func(t *testing.T) {
		records, err := Diff(file1, file2, Options{Columns: []string{"total_votes", "only_in_a"}})
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "total_votes", records[0].Column)
	})

	t.Run("exclusions win", func(t *testing.T) {
		records, err := Diff(file1, file2, Options{ExcludeColumns: []string{"ballots_cast"}})
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "total_votes", records[0].Column)
	})
}

// TestDiff_SortOrder verifies records sort by key, then diff type, then column.
func TestDiff_SortOrder(t *testing.T) {
	file1 := makeTable("a.csv", diffTestColumns,
		precinct.Row{"state": "PA", "county": "Erie", "precinct": "P-02", "total_votes": "1", "ballots_cast": "1"},
		precinct.Row{"state": "PA", "county": "Erie", "precinct": "P-01", "total_votes": "10", "ballots_cast": "20"},
	)
	file2 := makeTable("b.csv", diffTestColumns,
		precinct.Row{"state": "PA", "county": "Erie", "precinct": "P-01", "total_votes": "11", "ballots_cast": "21"},
		precinct.Row{"state": "PA", "county": "Erie", "precinct": "P-03", "total_votes": "1", "ballots_cast": "1"},
	)

	records, err := Diff(file1, file2, Options{})
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, "P-01", records[0].Key.Precinct)
	assert.Equal(t, "ballots_cast", records[0].Column)
	assert.Equal(t, "P-01", records[1].Key.Precinct)
	assert.Equal(t, "total_votes", records[1].Column)
	assert.Equal(t, TypeMissingInFile2, records[2].Type)
	assert.Equal(t, "P-02", records[2].Key.Precinct)
	assert.Equal(t, TypeMissingInFile1, records[3].Type)
	assert.Equal(t, "P-03", records[3].Key.Precinct)
}

func TestDiff_BlankEqualsZero(t *testing.T) {
	file1 := makeTable("a.csv", diffTestColumns,
		precinct.Row{"state": "PA", "county": "Erie", "precinct": "P-01", "total_votes": "", "ballots_cast": "0"},
	)
	file2 := makeTable("b.csv", diffTestColumns,
		precinct.Row{"state": "PA", "county": "Erie", "precinct": "P-01", "total_votes": "0", "ballots_cast": ""},
	)

	records, err := Diff(file1, file2, Options{})
	require.NoError(t, err)
	assert.Len(t, records, 2, "blank and zero differ by default")

	records, err = Diff(file1, file2, Options{BlankEqualsZero: true})
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestTable(t *testing.T) {
	records := []Record{{
		Key:         precinct.Key{State: "PA", County: "Erie", Precinct: "P-01"},
		Type:        TypeValueMismatch,
		Column:      "total_votes",
		File1Value:  "100",
		File2Value:  "105",
		Description: "d",
	}}

	table := Table(records)
	assert.Equal(t, precinct.DiffColumns, table.Columns)
	require.Equal(t, 1, table.Len())
	assert.Equal(t, "value_mismatch", table.Rows[0]["diff_type"])
	assert.Equal(t, "105", table.Rows[0]["file2_value"])
}
