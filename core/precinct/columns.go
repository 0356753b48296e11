package precinct

// VoteType identifies one of the five per-type exports.
type VoteType string

const (
	// VoteTypeTotal is the combined "Total Votes" export.
	VoteTypeTotal VoteType = "total"
	// VoteTypeElectionDay is the in-person election day export.
	VoteTypeElectionDay VoteType = "eday"
	// VoteTypeEarly is the early voting export.
	VoteTypeEarly VoteType = "early"
	// VoteTypeAbsentee is the absentee ballot export.
	VoteTypeAbsentee VoteType = "absentee"
	// VoteTypeMailIn is the mail-in ballot export.
	VoteTypeMailIn VoteType = "mailin"
)

// TypePriority orders vote types for coalescing type-dependent columns:
// the first type with a non-empty value wins.
var TypePriority = []VoteType{
	VoteTypeTotal,
	VoteTypeElectionDay,
	VoteTypeEarly,
	VoteTypeAbsentee,
	VoteTypeMailIn,
}

// IdentityColumns form the composite key of every precinct record.
var IdentityColumns = []string{"state", "county", "precinct"}

// SharedColumns are enforced to be consistent across all vote-type sources.
// A disagreement between two sources is a conflict, never silently resolved.
var SharedColumns = []string{
	"registered_voters",
	"republican_registrations",
	"democrat_registrations",
	"other_registrations",
}

// BaseColumns are type-dependent base columns. Sources may legitimately
// disagree; values are picked by TypePriority with no conflict raised.
var BaseColumns = []string{"overall_turnout", "ballots_cast"}

// CSVColumns is the canonical column order of a wide precinct export.
var CSVColumns = []string{
	"state", "county", "precinct", "overall_turnout", "ballots_cast",
	"registered_voters", "republican_registrations", "democrat_registrations", "other_registrations",
	"candidate_a_votes_total", "candidate_b_votes_total", "total_votes",
	"candidate_a_votes_election_day", "candidate_b_votes_election_day", "total_votes_election_day",
	"candidate_a_votes_early", "candidate_b_votes_early", "total_votes_early",
	"candidate_a_votes_absentee", "candidate_b_votes_absentee", "total_votes_absentee",
	"candidate_a_votes_mailin", "candidate_b_votes_mailin", "total_votes_mailin",
}

// ConflictColumns is the column order of a conflict report table.
var ConflictColumns = []string{
	"state", "county", "precinct",
	"column", "source_type", "source_column", "source_file", "value",
}

// DiffColumns is the column order of a diff report table.
var DiffColumns = []string{
	"state", "county", "precinct",
	"diff_type", "column", "file1_value", "file2_value", "description",
}

// voteTypeColumns maps each vote type to its owned column triplet.
// The "total" type maps to the bare total columns.
var voteTypeColumns = map[VoteType][]string{
	VoteTypeTotal:       {"candidate_a_votes_total", "candidate_b_votes_total", "total_votes"},
	VoteTypeElectionDay: {"candidate_a_votes_election_day", "candidate_b_votes_election_day", "total_votes_election_day"},
	VoteTypeEarly:       {"candidate_a_votes_early", "candidate_b_votes_early", "total_votes_early"},
	VoteTypeAbsentee:    {"candidate_a_votes_absentee", "candidate_b_votes_absentee", "total_votes_absentee"},
	VoteTypeMailIn:      {"candidate_a_votes_mailin", "candidate_b_votes_mailin", "total_votes_mailin"},
}

// displayNames maps vote types to the user-facing labels used by the
// relational store's election naming.
var displayNames = map[VoteType]string{
	VoteTypeTotal:       "Total Votes",
	VoteTypeElectionDay: "Election Day Votes",
	VoteTypeEarly:       "Early Votes",
	VoteTypeAbsentee:    "Absentee Votes",
	VoteTypeMailIn:      "Mail In Votes",
}

// Columns returns the column triplet owned by the vote type.
func (t VoteType) Columns() []string {
	return voteTypeColumns[t]
}

// DisplayName returns the human-readable label for the vote type.
func (t VoteType) DisplayName() string {
	return displayNames[t]
}

// IsValid reports whether t is one of the five known vote types.
func (t VoteType) IsValid() bool {
	_, ok := voteTypeColumns[t]
	return ok
}

// VoteTypeFromDisplayName resolves a user-facing label back to a vote type.
// The second return value is false for unknown labels.
func VoteTypeFromDisplayName(name string) (VoteType, bool) {
	for _, t := range TypePriority {
		if displayNames[t] == name {
			return t, true
		}
	}
	return "", false
}
