package reconcile_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"precinct-reconciler/core/diff"
	"precinct-reconciler/core/precinct"
	"precinct-reconciler/core/storage/mocks"
	"precinct-reconciler/feature/reconcile"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func mockObject(client *mocks.Client, bucket, object, body string) {
	client.On("GetObject", mock.Anything, bucket, object, mock.Anything).
		Return(io.NopCloser(strings.NewReader(body)), nil)
}

func TestLoadTable(t *testing.T) {
	client := new(mocks.Client)
	mockObject(client, "exports", "eday.csv",
		"state,county,precinct,total_votes_election_day\nPA,Erie,P-01,75\n")

	svc := reconcile.NewService(client, "exports", zap.NewNop())
	table, err := svc.LoadTable(context.Background(), "eday.csv")
	require.NoError(t, err)

	assert.Equal(t, "eday.csv", table.Name)
	require.Equal(t, 1, table.Len())
	assert.Equal(t, "75", table.Rows[0]["total_votes_election_day"])
	client.AssertExpectations(t)
}

func TestLoadTable_FetchError(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "exports", "missing.csv", mock.Anything).
		Return(nil, assert.AnError)

	svc := reconcile.NewService(client, "exports", zap.NewNop())
	_, err := svc.LoadTable(context.Background(), "missing.csv")
	assert.ErrorContains(t, err, "fetching missing.csv")
}

func TestSaveTable(t *testing.T) {
	client := new(mocks.Client)
	var uploaded string
	client.On("PutObject", mock.Anything, "exports", "out.csv", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			body, err := io.ReadAll(args.Get(3).(io.Reader))
			require.NoError(t, err)
			uploaded = string(body)
		}).
		Return(minio.UploadInfo{}, nil)

	table := precinct.NewTable("", []string{"state", "county", "precinct"})
	table.Append(precinct.Row{"state": "PA", "county": "Erie", "precinct": "P-01"})

	svc := reconcile.NewService(client, "exports", zap.NewNop())
	require.NoError(t, svc.SaveTable(context.Background(), "out.csv", table))
	assert.Equal(t, "state,county,precinct\nPA,Erie,P-01\n", uploaded)
}

func TestServiceCombine(t *testing.T) {
	client := new(mocks.Client)
	mockObject(client, "exports", "PA_Erie_2020_eday.csv",
		"state,county,precinct,registered_voters,candidate_a_votes_election_day,candidate_b_votes_election_day,total_votes_election_day\n"+
			"PA,Erie,P-01,210,40,35,75\n")
	mockObject(client, "exports", "PA_Erie_2020_early.csv",
		"state,county,precinct,registered_voters,candidate_a_votes_early,candidate_b_votes_early,total_votes_early\n"+
			"PA,Erie,P-01,210,12,8,20\n")

	svc := reconcile.NewService(client, "exports", zap.NewNop())
	result, err := svc.Combine(context.Background(), map[precinct.VoteType]string{
		precinct.VoteTypeElectionDay: "PA_Erie_2020_eday.csv",
		precinct.VoteTypeEarly:       "PA_Erie_2020_early.csv",
	})
	require.NoError(t, err)

	assert.False(t, result.HasConflicts())
	require.Equal(t, 1, result.RowsCombined)
	row := result.Combined.Rows[0]
	assert.Equal(t, "210", row["registered_voters"])
	assert.Equal(t, "75", row["total_votes_election_day"])
	assert.Equal(t, "20", row["total_votes_early"])
}

func TestServiceDiff(t *testing.T) {
	client := new(mocks.Client)
	mockObject(client, "exports", "a.csv",
		"state,county,precinct,total_votes\nPA,Erie,P-01,100\n")
	mockObject(client, "exports", "b.csv",
		"state,county,precinct,total_votes\nPA,Erie,P-01,105\n")

	svc := reconcile.NewService(client, "exports", zap.NewNop())
	records, err := svc.Diff(context.Background(), "a.csv", "b.csv", diff.Options{})
	require.NoError(t, err)

	require.Len(t, records, 1)
	assert.Equal(t, diff.TypeValueMismatch, records[0].Type)
	assert.Equal(t, "total_votes", records[0].Column)
}
