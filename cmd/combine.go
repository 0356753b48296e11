package cmd

import (
	"fmt"
	"os"
	"strings"

	"precinct-reconciler/core/combine"
	"precinct-reconciler/core/config"
	"precinct-reconciler/core/logger"
	"precinct-reconciler/core/precinct"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Per-vote-type input paths for the combine command
	combineInputs = map[precinct.VoteType]*string{}

	combineOut          string
	combineErrOut       string
	combineYear         string
	combineFailOnErrors bool
)

// combineCmd merges per-vote-type CSV exports into one combined CSV.
var combineCmd = &cobra.Command{
	Use:   "combine",
	Short: "Combine vote-type CSV exports into one CSV by (state, county, precinct)",
	Long: `Combine merges the supplied per-vote-type exports into one wide CSV.

Shared registration columns are validated across inputs: any disagreement is
written to a conflict report and the affected precinct rows are omitted from
the combined output entirely. Turnout and ballots-cast are coalesced by the
priority total > eday > early > absentee > mailin.

Examples:
  # Combine three exports, auto-naming the output
  precinct-reconciler combine --mailin mailin.csv --early early.csv --total total.csv

  # Treat registration conflicts as a failing run (exit status 2)
  precinct-reconciler combine --total total.csv --eday eday.csv --fail-on-errors`,
	RunE: runCombine,
}

func init() {
	for _, t := range precinct.TypePriority {
		path := new(string)
		combineInputs[t] = path
		combineCmd.Flags().StringVar(path, string(t), "",
			fmt.Sprintf("CSV for %s", t.DisplayName()))
	}
	combineCmd.Flags().StringVar(&combineOut, "out", "", "Output CSV path (auto-named if omitted)")
	combineCmd.Flags().StringVar(&combineErrOut, "err-out", "", "Conflict CSV path (defaults to <out>.errors.csv)")
	combineCmd.Flags().StringVar(&combineYear, "year", "", "Override year detection from input filenames")
	combineCmd.Flags().BoolVar(&combineFailOnErrors, "fail-on-errors", false,
		"Exit nonzero if registration conflicts are found")

	RootCmd.AddCommand(combineCmd)
}

func runCombine(cmd *cobra.Command, args []string) error {
	l, err := commandLogger()
	if err != nil {
		return err
	}

	var (
		inputs []combine.Input
		paths  []string
	)
	for _, t := range precinct.TypePriority {
		path := *combineInputs[t]
		if path == "" {
			continue
		}
		table, err := precinct.ReadCSVFile(path)
		if err != nil {
			return err
		}
		inputs = append(inputs, combine.Input{Type: t, Table: table})
		paths = append(paths, path)
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no input files provided")
	}

	result, err := combine.Combine(inputs)
	if err != nil {
		return err
	}

	outPath := combineOut
	if outPath == "" {
		outPath = autoCombineName(result.Combined, paths) + ".csv"
	}

	if result.HasConflicts() {
		errPath := combineErrOut
		if errPath == "" {
			if combineOut != "" {
				errPath = combineOut + ".errors.csv"
			} else {
				errPath = autoCombineName(result.Combined, paths) + ".errors.csv"
			}
		}
		if err := precinct.WriteCSVFile(errPath, result.ConflictTable()); err != nil {
			return err
		}
		l.Warn("Conflicts in shared registrations",
			zap.Int("conflicts", len(result.Conflicts)),
			zap.Int("rows_omitted", result.KeysDropped),
			zap.String("err_out", errPath))
	}

	if err := precinct.WriteCSVFile(outPath, result.Combined); err != nil {
		return err
	}
	l.Info("Wrote combined CSV",
		zap.Int("rows", result.RowsCombined),
		zap.String("out", outPath))

	if combineFailOnErrors && result.HasConflicts() {
		l.Error("Failing run due to registration conflicts (--fail-on-errors)")
		_ = l.Sync()
		os.Exit(2)
	}
	return nil
}

// autoCombineName builds <State>__<County>__<Year>__COMBINED from the combined
// data and the input paths.
func autoCombineName(combined *precinct.Table, paths []string) string {
	year := combineYear
	if year == "" {
		year = precinct.InferYearFromPaths(paths)
	}
	state := precinct.UniqueOrMulti(combined.ColumnValues("state"))
	county := precinct.UniqueOrMulti(combined.ColumnValues("county"))
	return strings.Join([]string{
		precinct.SanitizeFilename(state),
		precinct.SanitizeFilename(county),
		precinct.SanitizeFilename(year),
		"COMBINED",
	}, "__")
}

// commandLogger builds the CLI logger from configuration, falling back to
// console defaults when no configuration is present.
func commandLogger() (*zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return logger.New(&logger.Config{Level: "info", Format: "console"})
	}
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return l, nil
}
