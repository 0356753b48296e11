package export

import (
	"context"
	"fmt"
	"strings"

	"precinct-reconciler/core/precinct"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AllCounties is the pseudo-county that widens a scope to the whole state.
const AllCounties = "All"

// Scope selects the rows to export from the relational store.
type Scope struct {
	State    string
	Year     int
	County   string
	Election string
}

// wholeState reports whether the scope spans every county.
func (s Scope) wholeState() bool {
	return strings.EqualFold(s.County, AllCounties) || s.County == ""
}

// Service runs export queries against the elections database.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new export service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// ListStates returns the distinct states with elections, ascending.
func (s *Service) ListStates(ctx context.Context) ([]string, error) {
	var states []string
	err := s.db.WithContext(ctx).Model(&Election{}).
		Distinct("state").
		Where("state <> ''").
		Order("state").
		Pluck("state", &states).Error
	if err != nil {
		return nil, fmt.Errorf("listing states: %w", err)
	}
	return states, nil
}

// ListYears returns the distinct election years for a state, ascending.
func (s *Service) ListYears(ctx context.Context, state string) ([]int, error) {
	var years []int
	err := s.db.WithContext(ctx).Model(&Election{}).
		Distinct("year").
		Where("state = ?", state).
		Order("year").
		Pluck("year", &years).Error
	if err != nil {
		return nil, fmt.Errorf("listing years for %s: %w", state, err)
	}
	return years, nil
}

// ListCounties returns the distinct counties for a state and year, ascending.
// The AllCounties pseudo-entry is the caller's concern.
func (s *Service) ListCounties(ctx context.Context, state string, year int) ([]string, error) {
	var counties []string
	err := s.db.WithContext(ctx).Model(&Election{}).
		Distinct("county").
		Where("state = ? AND year = ? AND county <> ''", state, year).
		Order("county").
		Pluck("county", &counties).Error
	if err != nil {
		return nil, fmt.Errorf("listing counties for %s/%d: %w", state, year, err)
	}
	return counties, nil
}

// ListElections returns the distinct election names in scope, ascending.
func (s *Service) ListElections(ctx context.Context, scope Scope) ([]string, error) {
	query := s.db.WithContext(ctx).Model(&Election{}).
		Distinct("name").
		Where("state = ? AND year = ?", scope.State, scope.Year)
	if !scope.wholeState() {
		query = query.Where("county = ?", scope.County)
	}
	var names []string
	if err := query.Order("name").Pluck("name", &names).Error; err != nil {
		return nil, fmt.Errorf("listing elections for %s/%d: %w", scope.State, scope.Year, err)
	}
	return names, nil
}

// FetchRows returns the precinct results for the scoped election, ordered by
// (state, county, precinct).
func (s *Service) FetchRows(ctx context.Context, scope Scope) ([]ResultRow, error) {
	query := s.db.WithContext(ctx).
		Table("election_precincts ep").
		Select("e.state, e.county, ep.precinct, ep.turnout_pct, ep.total_votes, "+
			"ep.registered_voters, ep.republican_registrations, ep.democrat_registrations, ep.other_registrations, "+
			"ep.candidate_a_votes, ep.candidate_b_votes").
		Joins("JOIN elections e ON e.id = ep.election_id").
		Where("e.state = ? AND e.year = ? AND e.name = ?", scope.State, scope.Year, scope.Election)
	if !scope.wholeState() {
		query = query.Where("e.county = ?", scope.County)
	}

	var rows []ResultRow
	if err := query.Order("e.state, e.county, ep.precinct").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("fetching precinct rows: %w", err)
	}
	return rows, nil
}

// Export fetches the scoped precinct rows and shapes them into a wide table
// for the given vote type. Zero matching rows is an error: an export that
// writes an empty file hides a bad scope.
func (s *Service) Export(ctx context.Context, scope Scope, voteType precinct.VoteType) (*precinct.Table, error) {
	if !voteType.IsValid() {
		return nil, fmt.Errorf("unknown vote type %q", voteType)
	}
	rows, err := s.FetchRows(ctx, scope)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no rows found for %s / %d / %s / %s",
			scope.State, scope.Year, scope.County, scope.Election)
	}

	s.logger.Info("Export fetched precinct rows",
		zap.String("state", scope.State),
		zap.Int("year", scope.Year),
		zap.String("election", scope.Election),
		zap.String("vote_type", string(voteType)),
		zap.Int("rows", len(rows)))

	return WideTable(rows, voteType), nil
}

// GuessVoteType infers the vote type from an election name. Names that match
// no keyword default to the combined total export.
func GuessVoteType(electionName string) precinct.VoteType {
	name := strings.ToLower(electionName)
	switch {
	case strings.Contains(name, "mail-in") || strings.Contains(name, "mail in"):
		return precinct.VoteTypeMailIn
	case strings.Contains(name, "absentee"):
		return precinct.VoteTypeAbsentee
	case strings.Contains(name, "early"):
		return precinct.VoteTypeEarly
	case strings.Contains(name, "election day") ||
		strings.Contains(name, "in-person") || strings.Contains(name, "in person"):
		return precinct.VoteTypeElectionDay
	default:
		return precinct.VoteTypeTotal
	}
}
