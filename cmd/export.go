package cmd

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"precinct-reconciler/core/config"
	"precinct-reconciler/core/database"
	"precinct-reconciler/core/logger"
	"precinct-reconciler/core/precinct"
	"precinct-reconciler/core/storage"
	"precinct-reconciler/feature/export"

	"github.com/minio/minio-go/v7"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	exportState    string
	exportYear     int
	exportCounty   string
	exportElection string
	exportVoteType string
	exportOut      string
	exportUpload   bool
)

// exportCmd exports precinct-level results from the elections database.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export precinct-level election results to a wide CSV",
	Long: `Export pulls precinct results for one election out of the relational
store and writes them as a wide CSV with vote-type-specific columns.

The scope (state, year, county, election, vote type) can be given with flags;
anything omitted is picked interactively from the values present in the
database. The vote type defaults to a guess from the election name.

Examples:
  # Fully interactive
  precinct-reconciler export

  # Non-interactive
  precinct-reconciler export --state Pennsylvania --year 2024 --county All \
    --election "2024 General (Mail-In)" --vote-type mailin

  # Upload the CSV to the exports bucket instead of the working directory
  precinct-reconciler export --upload`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportState, "state", "", "State to export")
	exportCmd.Flags().IntVar(&exportYear, "year", 0, "Election year")
	exportCmd.Flags().StringVar(&exportCounty, "county", "", "County ('All' for the whole state)")
	exportCmd.Flags().StringVar(&exportElection, "election", "", "Election name")
	exportCmd.Flags().StringVar(&exportVoteType, "vote-type", "",
		"Vote type: total, eday, early, absentee, mailin (default: guessed from the election name)")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output CSV path (auto-named if omitted)")
	exportCmd.Flags().BoolVar(&exportUpload, "upload", false, "Upload the CSV to the exports bucket")

	RootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("database connection required: %w", err)
	}
	service := export.NewService(db, l)

	scope, voteType, err := resolveScope(ctx, service)
	if err != nil {
		return err
	}

	table, err := service.Export(ctx, scope, voteType)
	if err != nil {
		return err
	}

	name := exportOut
	if name == "" {
		name = export.FileName(scope, voteType)
	}

	if exportUpload {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}
		var buf bytes.Buffer
		if err := precinct.WriteCSV(&buf, table); err != nil {
			return err
		}
		_, err = client.PutObject(ctx, cfg.Storage.Bucket, name,
			bytes.NewReader(buf.Bytes()), int64(buf.Len()),
			minio.PutObjectOptions{ContentType: "text/csv"})
		if err != nil {
			return fmt.Errorf("uploading %s: %w", name, err)
		}
		l.Info("Uploaded export",
			zap.Int("rows", table.Len()),
			zap.String("bucket", cfg.Storage.Bucket),
			zap.String("object", name))
		return nil
	}

	if err := precinct.WriteCSVFile(name, table); err != nil {
		return err
	}
	l.Info("Wrote export CSV", zap.Int("rows", table.Len()), zap.String("out", name))
	return nil
}

// resolveScope fills the export scope from flags, prompting interactively for
// anything missing.
func resolveScope(ctx context.Context, service *export.Service) (export.Scope, precinct.VoteType, error) {
	var scope export.Scope

	scope.State = exportState
	if scope.State == "" {
		states, err := service.ListStates(ctx)
		if err != nil {
			return scope, "", err
		}
		if len(states) == 0 {
			return scope, "", fmt.Errorf("no states found in the elections database")
		}
		scope.State = promptPick("Select State", states, -1)
	}

	scope.Year = exportYear
	if scope.Year == 0 {
		years, err := service.ListYears(ctx, scope.State)
		if err != nil {
			return scope, "", err
		}
		if len(years) == 0 {
			return scope, "", fmt.Errorf("no election years found for %s", scope.State)
		}
		options := make([]string, len(years))
		for i, y := range years {
			options[i] = strconv.Itoa(y)
		}
		// Default to the most recent year.
		picked := promptPick("Select Year", options, len(options)-1)
		scope.Year, _ = strconv.Atoi(picked)
	}

	scope.County = exportCounty
	if scope.County == "" {
		counties, err := service.ListCounties(ctx, scope.State, scope.Year)
		if err != nil {
			return scope, "", err
		}
		scope.County = promptPick("Select County", append([]string{export.AllCounties}, counties...), -1)
	}

	scope.Election = exportElection
	if scope.Election == "" {
		elections, err := service.ListElections(ctx, scope)
		if err != nil {
			return scope, "", err
		}
		if len(elections) == 0 {
			return scope, "", fmt.Errorf("no elections found for %s/%d/%s", scope.State, scope.Year, scope.County)
		}
		scope.Election = promptPick("Select Election", elections, -1)
	}

	if exportVoteType != "" {
		t := precinct.VoteType(exportVoteType)
		if !t.IsValid() {
			return scope, "", fmt.Errorf("unknown vote type %q", exportVoteType)
		}
		return scope, t, nil
	}

	guess := export.GuessVoteType(scope.Election)
	options := make([]string, len(precinct.TypePriority))
	defaultIndex := 0
	for i, t := range precinct.TypePriority {
		options[i] = t.DisplayName()
		if t == guess {
			defaultIndex = i
		}
	}
	picked := promptPick("Vote Type", options, defaultIndex)
	t, _ := precinct.VoteTypeFromDisplayName(picked)
	return scope, t, nil
}

// promptPick shows a numbered list on stdout and reads a 1-based choice.
// defaultIndex >= 0 marks an option returned on an empty answer.
func promptPick(label string, options []string, defaultIndex int) string {
	fmt.Printf("\n%s:\n", label)
	for i, opt := range options {
		marker := ""
		if i == defaultIndex {
			marker = "  [default]"
		}
		fmt.Printf("  %d. %s%s\n", i+1, opt, marker)
	}

	reader := bufio.NewReader(os.Stdin)
	for {
		hint := ""
		if defaultIndex >= 0 {
			hint = " (Enter=default)"
		}
		fmt.Printf("Choose 1-%d%s: ", len(options), hint)
		raw, err := reader.ReadString('\n')
		if err != nil {
			return options[max(defaultIndex, 0)]
		}
		raw = strings.TrimSpace(raw)
		if raw == "" && defaultIndex >= 0 {
			return options[defaultIndex]
		}
		if idx, err := strconv.Atoi(raw); err == nil && idx >= 1 && idx <= len(options) {
			return options[idx-1]
		}
		fmt.Println("Invalid choice. Try again.")
	}
}
