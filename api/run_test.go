package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gomantics/runboard/api/logs"
	"github.com/gomantics/runboard/config"
	"github.com/gomantics/runboard/domains/logstore"
	"github.com/gomantics/runboard/domains/registry"
	domstats "github.com/gomantics/runboard/domains/stats"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestServer wires the full handler chain over a temp log root and
// descriptor, mirroring the production wiring in cmds/api.
func newTestServer(t *testing.T, descriptor string, logFiles map[string]map[string]string) *echo.Echo {
	t.Helper()
	dir := t.TempDir()

	reposFile := filepath.Join(dir, "repos.json")
	require.NoError(t, os.WriteFile(reposFile, []byte(descriptor), 0o644))

	root := filepath.Join(dir, "logs")
	require.NoError(t, os.MkdirAll(root, 0o755))
	for repo, files := range logFiles {
		require.NoError(t, os.MkdirAll(filepath.Join(root, repo), 0o755))
		for name, content := range files {
			require.NoError(t, os.WriteFile(filepath.Join(root, repo, name), []byte(content), 0o644))
		}
	}

	cfg := config.Config{Env: config.EnvDev, Port: 8081, LogRoot: root, ReposFile: reposFile}
	l := zap.NewNop()
	reg := registry.New(l, cfg.ReposFile)
	store := logstore.New(l, cfg.LogRoot)

	e, err := newEcho(l, cfg, reg, store, domstats.New(reg, store))
	require.NoError(t, err)
	return e
}

func doGET(t *testing.T, e *echo.Echo, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAPI_StatsAndLogs(t *testing.T) {
	e := newTestServer(t, `[{"name":"a"},{"name":"b"}]`, map[string]map[string]string{
		"a": {"2024-01-01-120000.log": "PLAY RECAP: ok=4 failed=0"},
		"b": {"2024-01-01-130000.log": "PLAY RECAP: ok=1 failed=2"},
	})

	rec := doGET(t, e, "/api/stats")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t,
		`{"total_repos":2,"total_logs":2,"successful_runs":1,"failed_runs":1}`,
		rec.Body.String(),
	)

	rec = doGET(t, e, "/api/logs/a")
	require.Equal(t, http.StatusOK, rec.Code)

	var items []logs.Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	require.Equal(t, "2024-01-01-120000.log", items[0].Filename)
	require.Equal(t, "success", items[0].Status)
	require.Equal(t, "PLAY RECAP: ok=4 failed=0", items[0].Content)
	require.Equal(t, int64(len(items[0].Content)), items[0].Size)
	require.NotEmpty(t, items[0].Timestamp)
	require.Empty(t, items[0].Error)
}

func TestAPI_RepoWithoutLogs(t *testing.T) {
	e := newTestServer(t, `[{"name":"c"}]`, nil)

	rec := doGET(t, e, "/api/logs/c")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[]`, rec.Body.String())

	rec = doGET(t, e, "/api/stats")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t,
		`{"total_repos":1,"total_logs":0,"successful_runs":0,"failed_runs":0}`,
		rec.Body.String(),
	)
}

func TestAPI_UnknownRepoServesEmptyArray(t *testing.T) {
	e := newTestServer(t, `[{"name":"a"}]`, nil)

	rec := doGET(t, e, "/api/logs/does-not-exist")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[]`, rec.Body.String())
}

func TestAPI_LogsNewestFirst(t *testing.T) {
	e := newTestServer(t, `[{"name":"a"}]`, map[string]map[string]string{
		"a": {
			"2024-01-01.log": "failed=0",
			"2024-01-03.log": "failed=0",
			"2024-01-02.log": "failed=0",
		},
	})

	rec := doGET(t, e, "/api/logs/a")
	require.Equal(t, http.StatusOK, rec.Code)

	var items []logs.Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 3)
	require.Equal(t, "2024-01-03.log", items[0].Filename)
	require.Equal(t, "2024-01-02.log", items[1].Filename)
	require.Equal(t, "2024-01-01.log", items[2].Filename)
}

func TestAPI_Dashboard(t *testing.T) {
	e := newTestServer(t, `[{"name":"a","description":"nightly deploy"}]`, nil)

	rec := doGET(t, e, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
	require.Contains(t, rec.Body.String(), "nightly deploy")
}

func TestAPI_Health(t *testing.T) {
	e := newTestServer(t, `[]`, nil)

	rec := doGET(t, e, "/health")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok","log_root":"ok"}`, rec.Body.String())
}
