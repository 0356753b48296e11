package precinct

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ReadCSV parses a wide CSV into a Table. All cells are kept as raw strings;
// identity columns are trimmed of surrounding whitespace. The table name is
// set to the supplied label.
func ReadCSV(r io.Reader, label string) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%s: empty CSV", label)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: reading CSV header: %w", label, err)
	}
	columns := make([]string, len(header))
	for i, c := range header {
		columns[i] = strings.TrimSpace(c)
	}

	table := NewTable(label, columns)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: reading CSV row: %w", label, err)
		}
		row := make(Row, len(columns))
		for i, col := range columns {
			if i < len(record) {
				row[col] = record[i]
			} else {
				row[col] = ""
			}
		}
		for _, id := range IdentityColumns {
			if v, ok := row[id]; ok {
				row[id] = strings.TrimSpace(v)
			}
		}
		table.Append(row)
	}
	return table, nil
}

// ReadCSVFile reads a wide CSV from disk. The table name is the file's base name.
func ReadCSVFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return ReadCSV(f, filepath.Base(path))
}

// WriteCSV writes the table in its declared column order. Cells absent from a
// row are written as empty strings.
func WriteCSV(w io.Writer, t *Table) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(t.Columns); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	record := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i, col := range t.Columns {
			record[i] = row[col]
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteCSVFile writes the table to disk, creating or truncating the file.
func WriteCSVFile(path string, t *Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	if err := WriteCSV(f, t); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
