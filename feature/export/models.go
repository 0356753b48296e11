package export

// Election is one election contest in the relational store.
type Election struct {
	ID     int64  `gorm:"column:id;primaryKey"`
	Name   string `gorm:"column:name"`
	State  string `gorm:"column:state"`
	County string `gorm:"column:county"`
	Year   int    `gorm:"column:year"`
}

// TableName maps Election to the elections table.
func (Election) TableName() string {
	return "elections"
}

// ElectionPrecinct is one precinct's results for an election. Numeric fields
// are pointers: NULL in the store becomes a blank CSV cell, not a zero.
type ElectionPrecinct struct {
	ID                      int64    `gorm:"column:id;primaryKey"`
	ElectionID              int64    `gorm:"column:election_id"`
	Precinct                string   `gorm:"column:precinct"`
	TurnoutPct              *float64 `gorm:"column:turnout_pct"`
	TotalVotes              *int64   `gorm:"column:total_votes"`
	RegisteredVoters        *int64   `gorm:"column:registered_voters"`
	RepublicanRegistrations *int64   `gorm:"column:republican_registrations"`
	DemocratRegistrations   *int64   `gorm:"column:democrat_registrations"`
	OtherRegistrations      *int64   `gorm:"column:other_registrations"`
	CandidateAVotes         *int64   `gorm:"column:candidate_a_votes"`
	CandidateBVotes         *int64   `gorm:"column:candidate_b_votes"`
}

// TableName maps ElectionPrecinct to the election_precincts table.
func (ElectionPrecinct) TableName() string {
	return "election_precincts"
}

// ResultRow is one joined precinct result scanned from the store.
type ResultRow struct {
	State                   string   `gorm:"column:state"`
	County                  string   `gorm:"column:county"`
	Precinct                string   `gorm:"column:precinct"`
	TurnoutPct              *float64 `gorm:"column:turnout_pct"`
	TotalVotes              *int64   `gorm:"column:total_votes"`
	RegisteredVoters        *int64   `gorm:"column:registered_voters"`
	RepublicanRegistrations *int64   `gorm:"column:republican_registrations"`
	DemocratRegistrations   *int64   `gorm:"column:democrat_registrations"`
	OtherRegistrations      *int64   `gorm:"column:other_registrations"`
	CandidateAVotes         *int64   `gorm:"column:candidate_a_votes"`
	CandidateBVotes         *int64   `gorm:"column:candidate_b_votes"`
}
