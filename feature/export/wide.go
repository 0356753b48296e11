package export

import (
	"fmt"
	"strconv"

	"precinct-reconciler/core/precinct"
)

// WideTable maps joined precinct results into the canonical wide layout.
// Identity, shared registration and base columns are filled for every row;
// only the given vote type's triplet is populated, the rest stay blank.
func WideTable(rows []ResultRow, voteType precinct.VoteType) *precinct.Table {
	table := precinct.NewTable("", precinct.CSVColumns)
	triplet := voteType.Columns()
	for _, r := range rows {
		row := make(precinct.Row, len(precinct.CSVColumns))
		for _, c := range precinct.CSVColumns {
			row[c] = ""
		}
		row["state"] = r.State
		row["county"] = r.County
		row["precinct"] = r.Precinct
		row["overall_turnout"] = floatCell(r.TurnoutPct)
		row["ballots_cast"] = intCell(r.TotalVotes)
		row["registered_voters"] = intCell(r.RegisteredVoters)
		row["republican_registrations"] = intCell(r.RepublicanRegistrations)
		row["democrat_registrations"] = intCell(r.DemocratRegistrations)
		row["other_registrations"] = intCell(r.OtherRegistrations)

		// Triplet order is (candidate_a, candidate_b, total). The total
		// column is fed by the same ballots value the source reports.
		row[triplet[0]] = intCell(r.CandidateAVotes)
		row[triplet[1]] = intCell(r.CandidateBVotes)
		row[triplet[2]] = intCell(r.TotalVotes)

		table.Append(row)
	}
	return table
}

// FileName builds the auto-generated export file name
// <State>__<County>__<Year>__<VoteType>.csv with sanitized components.
func FileName(scope Scope, voteType precinct.VoteType) string {
	county := scope.County
	if county == "" {
		county = AllCounties
	}
	return fmt.Sprintf("%s__%s__%s__%s.csv",
		precinct.SanitizeFilename(scope.State),
		precinct.SanitizeFilename(county),
		precinct.SanitizeFilename(strconv.Itoa(scope.Year)),
		precinct.SanitizeFilename(voteType.DisplayName()))
}

func intCell(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

func floatCell(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'g', -1, 64)
}
