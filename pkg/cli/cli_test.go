package cli_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/wirereport/pkg/cli"
)

func newWirespeedAPI(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Header.Get("Authorization") != "Bearer test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message": "Unauthorized"}`))
			return
		}
		switch r.Method + " " + r.URL.Path {
		case "GET /team":
			_, _ = w.Write([]byte(`{"name": "Acme", "serviceProvider": false}`))
		case "POST /team":
			_, _ = w.Write([]byte(`{"data": [], "totalCount": 0}`))
		default:
			_, _ = w.Write([]byte(`{}`))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func readJSON(t *testing.T, path string) map[string]any {
	t.Helper()
	data, err := os.ReadFile(path)
	gt.NoError(t, err).Required()

	var out map[string]any
	gt.NoError(t, json.Unmarshal(data, &out)).Required()
	return out
}

func TestReportCommand(t *testing.T) {
	api := newWirespeedAPI(t)
	output := filepath.Join(t.TempDir(), "report.json")

	err := cli.Run(context.Background(), []string{
		"wirereport", "--log-format", "json",
		"report",
		"--api-key", "test-key",
		"--wirespeed-url", api.URL,
		"--start", "2024-01-01",
		"--end", "2024-01-31",
		"--label", "January",
		"--output", output,
	})
	gt.NoError(t, err).Required()

	report := readJSON(t, output)
	gt.Equal(t, "Acme", report["companyName"])
	gt.Equal(t, "January", report["reportPeriod"])
	gt.Equal[any](t, float64(30), report["days"])
}

func TestReportCommandErrors(t *testing.T) {
	api := newWirespeedAPI(t)

	t.Run("unauthorized key", func(t *testing.T) {
		err := cli.Run(context.Background(), []string{
			"wirereport", "report",
			"--api-key", "other-key",
			"--wirespeed-url", api.URL,
			"--output", filepath.Join(t.TempDir(), "report.json"),
		})
		gt.Error(t, err)
	})

	t.Run("missing key", func(t *testing.T) {
		err := cli.Run(context.Background(), []string{
			"wirereport", "report",
			"--wirespeed-url", api.URL,
			"--output", filepath.Join(t.TempDir(), "report.json"),
		})
		gt.Error(t, err)
	})

	t.Run("invalid report config", func(t *testing.T) {
		err := cli.Run(context.Background(), []string{
			"wirereport", "report",
			"--api-key", "test-key",
			"--wirespeed-url", api.URL,
			"--report-config", filepath.Join(t.TempDir(), "missing.yaml"),
		})
		gt.Error(t, err)
	})
}

func TestTeamsCommand(t *testing.T) {
	api := newWirespeedAPI(t)
	output := filepath.Join(t.TempDir(), "teams.json")

	err := cli.Run(context.Background(), []string{
		"wirereport", "teams",
		"--api-key", "test-key",
		"--wirespeed-url", api.URL,
		"--output", output,
	})
	gt.NoError(t, err).Required()

	result := readJSON(t, output)
	gt.Equal(t, false, result["isServiceProvider"])
	teams, ok := result["teams"].([]any)
	gt.True(t, ok)
	gt.Equal(t, 0, len(teams))
}
