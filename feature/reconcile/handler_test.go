package reconcile_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"precinct-reconciler/core/storage/mocks"
	"precinct-reconciler/feature/reconcile"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupApp(client *mocks.Client) *fiber.App {
	svc := reconcile.NewService(client, "exports", zap.NewNop())
	h := reconcile.NewHandler(svc)

	app := fiber.New()
	h.RegisterRoutes(app)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) (int, map[string]interface{}) {
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 5000)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]interface{}
	if json.Valid(raw) {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp.StatusCode, decoded
}

func TestHandleCombine(t *testing.T) {
	client := new(mocks.Client)
	mockObject(client, "exports", "PA_Erie_2020_eday.csv",
		"state,county,precinct,registered_voters,candidate_a_votes_election_day,candidate_b_votes_election_day,total_votes_election_day\n"+
			"PA,Erie,P-01,210,40,35,75\n")
	mockObject(client, "exports", "PA_Erie_2020_early.csv",
		"state,county,precinct,registered_voters,candidate_a_votes_early,candidate_b_votes_early,total_votes_early\n"+
			"PA,Erie,P-01,210,12,8,20\n")

	var uploads []string
	client.On("PutObject", mock.Anything, "exports", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			uploads = append(uploads, args.String(2))
		}).
		Return(minio.UploadInfo{}, nil)

	app := setupApp(client)
	status, body := postJSON(t, app, "/reconcile/combine", reconcile.CombineRequest{
		Inputs: map[string]string{
			"eday":  "PA_Erie_2020_eday.csv",
			"early": "PA_Erie_2020_early.csv",
		},
	})

	require.Equal(t, 200, status)
	assert.Equal(t, "PA__Erie__2020__COMBINED.csv", body["out"])
	assert.Equal(t, float64(1), body["rows"])
	assert.Equal(t, float64(0), body["keys_dropped"])
	assert.Equal(t, false, body["has_conflicts"])
	assert.NotContains(t, body, "err_out")

	// Only the combined CSV is uploaded when there are no conflicts.
	assert.Equal(t, []string{"PA__Erie__2020__COMBINED.csv"}, uploads)
}

func TestHandleCombine_Conflicts(t *testing.T) {
	client := new(mocks.Client)
	mockObject(client, "exports", "eday.csv",
		"state,county,precinct,registered_voters,candidate_a_votes_election_day,candidate_b_votes_election_day,total_votes_election_day\n"+
			"PA,Erie,P-01,100,40,35,75\n")
	mockObject(client, "exports", "early.csv",
		"state,county,precinct,registered_voters,candidate_a_votes_early,candidate_b_votes_early,total_votes_early\n"+
			"PA,Erie,P-01,105,12,8,20\n")

	var uploads []string
	client.On("PutObject", mock.Anything, "exports", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			uploads = append(uploads, args.String(2))
		}).
		Return(minio.UploadInfo{}, nil)

	app := setupApp(client)
	status, body := postJSON(t, app, "/reconcile/combine", reconcile.CombineRequest{
		Inputs: map[string]string{"eday": "eday.csv", "early": "early.csv"},
		Out:    "combined.csv",
	})

	require.Equal(t, 200, status)
	assert.Equal(t, "combined.csv", body["out"])
	assert.Equal(t, "combined.csv.errors.csv", body["err_out"])
	assert.Equal(t, float64(0), body["rows"])
	assert.Equal(t, float64(1), body["keys_dropped"])
	assert.Equal(t, float64(2), body["conflicts"])
	assert.Equal(t, true, body["has_conflicts"])

	assert.Equal(t, []string{"combined.csv", "combined.csv.errors.csv"}, uploads)
}

func TestHandleCombine_BadRequest(t *testing.T) {
	app := setupApp(new(mocks.Client))

	t.Run("no inputs", func(t *testing.T) {
		status, _ := postJSON(t, app, "/reconcile/combine", reconcile.CombineRequest{})
		assert.Equal(t, 400, status)
	})

	t.Run("unknown vote type", func(t *testing.T) {
		status, _ := postJSON(t, app, "/reconcile/combine", reconcile.CombineRequest{
			Inputs: map[string]string{"provisional": "x.csv"},
		})
		assert.Equal(t, 400, status)
	})
}

func TestHandleDiff(t *testing.T) {
	client := new(mocks.Client)
	mockObject(client, "exports", "a.csv",
		"state,county,precinct,ballots_cast,total_votes\nPA,Erie,P-01,150,100\n")
	mockObject(client, "exports", "b.csv",
		"state,county,precinct,ballots_cast,total_votes\nPA,Erie,P-01,,105\n")

	app := setupApp(client)
	status, body := postJSON(t, app, "/reconcile/diff", reconcile.DiffRequest{
		File1: "a.csv",
		File2: "b.csv",
	})

	require.Equal(t, 200, status)
	// ballots_cast is never compared, so only total_votes differs.
	assert.Equal(t, float64(1), body["diffs"])
	records := body["records"].([]interface{})
	require.Len(t, records, 1)
	rec := records[0].(map[string]interface{})
	assert.Equal(t, "value_mismatch", rec["diff_type"])
	assert.Equal(t, "total_votes", rec["column"])
	assert.Equal(t, "100", rec["file1_value"])
	assert.Equal(t, "105", rec["file2_value"])
}

func TestHandleDiff_BlankEqualsZero(t *testing.T) {
	client := new(mocks.Client)
	mockObject(client, "exports", "a.csv",
		"state,county,precinct,total_votes\nPA,Erie,P-01,0\n")
	mockObject(client, "exports", "b.csv",
		"state,county,precinct,total_votes\nPA,Erie,P-01,\n")

	app := setupApp(client)
	status, body := postJSON(t, app, "/reconcile/diff", reconcile.DiffRequest{
		File1: "a.csv",
		File2: "b.csv",
	})

	require.Equal(t, 200, status)
	assert.Equal(t, float64(0), body["diffs"])
}

func TestHandleDiff_Upload(t *testing.T) {
	client := new(mocks.Client)
	mockObject(client, "exports", "a.csv",
		"state,county,precinct,total_votes\nPA,Erie,P-01,100\n")
	mockObject(client, "exports", "b.csv",
		"state,county,precinct,total_votes\nPA,Erie,P-01,105\n")

	var uploaded string
	client.On("PutObject", mock.Anything, "exports", "report.csv", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			body, err := io.ReadAll(args.Get(3).(io.Reader))
			require.NoError(t, err)
			uploaded = string(body)
		}).
		Return(minio.UploadInfo{}, nil)

	app := setupApp(client)
	status, body := postJSON(t, app, "/reconcile/diff", reconcile.DiffRequest{
		File1: "a.csv",
		File2: "b.csv",
		Out:   "report.csv",
	})

	require.Equal(t, 200, status)
	assert.Equal(t, "report.csv", body["out"])
	assert.Equal(t, float64(1), body["diffs"])
	assert.Contains(t, uploaded, "state,county,precinct,diff_type,column,file1_value,file2_value,description")
	assert.Contains(t, uploaded, "value_mismatch")
}

func TestHandleDiff_BadRequest(t *testing.T) {
	app := setupApp(new(mocks.Client))

	t.Run("missing files", func(t *testing.T) {
		status, _ := postJSON(t, app, "/reconcile/diff", reconcile.DiffRequest{File1: "a.csv"})
		assert.Equal(t, 400, status)
	})

	t.Run("negative tolerance", func(t *testing.T) {
		status, _ := postJSON(t, app, "/reconcile/diff", reconcile.DiffRequest{
			File1: "a.csv", File2: "b.csv", Tolerance: -1,
		})
		assert.Equal(t, 400, status)
	})
}
