package cmd

import (
	"fmt"
	"strings"

	"precinct-reconciler/core/diff"
	"precinct-reconciler/core/precinct"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	diffFile1         string
	diffFile2         string
	diffOut           string
	diffFloatTol      float64
	diffCaseSensitive bool
	diffOnlyCols      string
	diffExcludeCols   string
	diffBlankZero     bool
)

// diffCmd compares two wide precinct CSVs and writes the differences.
var diffCmd = &cobra.Command{
	Use:   "diff",
	Short: "Diff two precinct CSVs by (state, county, precinct)",
	Long: `Diff compares two wide precinct CSVs keyed by (state, county, precinct)
and writes only the differences: rows missing on either side, and value
mismatches on the compared columns.

Comparison is case-insensitive by default; numeric values are compared within
--float-tol. With --blank-zero, a blank cell equals a numeric zero.

Examples:
  precinct-reconciler diff --file1 original.csv --file2 combined.csv --out diffs.csv
  precinct-reconciler diff --file1 a.csv --file2 b.csv --out d.csv --float-tol 0.5 --blank-zero`,
	RunE: runDiff,
}

func init() {
	diffCmd.Flags().StringVar(&diffFile1, "file1", "", "First CSV file (required)")
	diffCmd.Flags().StringVar(&diffFile2, "file2", "", "Second CSV file (required)")
	diffCmd.Flags().StringVar(&diffOut, "out", "", "Output CSV for differences (required)")
	diffCmd.Flags().Float64Var(&diffFloatTol, "float-tol", 0, "Numeric tolerance for float comparisons")
	diffCmd.Flags().BoolVar(&diffCaseSensitive, "case-sensitive", false, "Enable case-sensitive string comparison")
	diffCmd.Flags().StringVar(&diffOnlyCols, "only-cols", "",
		"Comma-separated list of columns to compare (default: all shared columns)")
	diffCmd.Flags().StringVar(&diffExcludeCols, "exclude-cols", "",
		"Comma-separated list of columns to exclude from comparison")
	diffCmd.Flags().BoolVar(&diffBlankZero, "blank-zero", false, "Treat a blank cell as equal to numeric zero")
	_ = diffCmd.MarkFlagRequired("file1")
	_ = diffCmd.MarkFlagRequired("file2")
	_ = diffCmd.MarkFlagRequired("out")

	RootCmd.AddCommand(diffCmd)
}

func runDiff(cmd *cobra.Command, args []string) error {
	l, err := commandLogger()
	if err != nil {
		return err
	}

	if diffFloatTol < 0 {
		return fmt.Errorf("--float-tol must be >= 0")
	}

	file1, err := precinct.ReadCSVFile(diffFile1)
	if err != nil {
		return err
	}
	file2, err := precinct.ReadCSVFile(diffFile2)
	if err != nil {
		return err
	}

	opts := diff.Options{
		Tolerance:       diffFloatTol,
		CaseSensitive:   diffCaseSensitive,
		Columns:         splitColumns(diffOnlyCols),
		ExcludeColumns:  splitColumns(diffExcludeCols),
		BlankEqualsZero: diffBlankZero,
	}

	records, err := diff.Diff(file1, file2, opts)
	if err != nil {
		return err
	}

	if err := precinct.WriteCSVFile(diffOut, diff.Table(records)); err != nil {
		return err
	}
	l.Info("Wrote diff CSV",
		zap.Int("file1_rows", file1.Len()),
		zap.Int("file2_rows", file2.Len()),
		zap.Int("diffs", len(records)),
		zap.String("out", diffOut))
	return nil
}

// splitColumns parses a comma-separated column list, dropping blanks.
func splitColumns(s string) []string {
	if s == "" {
		return nil
	}
	var columns []string
	for _, c := range strings.Split(s, ",") {
		if c = strings.TrimSpace(c); c != "" {
			columns = append(columns, c)
		}
	}
	return columns
}
