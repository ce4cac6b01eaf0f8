package health

import (
	"github.com/gomantics/runboard/api/web"
	"github.com/gomantics/runboard/domains/logstore"
)

// GetResponse is the health check response
type GetResponse struct {
	Status  string `json:"status"`
	LogRoot string `json:"log_root"`
}

// Get handles GET /health. An unreachable log root is reported but
// does not fail the check; the dashboard keeps serving empty results.
func Get(store *logstore.Store) web.HandlerFunc {
	return func(c web.Context) error {
		rootStatus := "ok"
		if err := store.CheckRoot(); err != nil {
			rootStatus = "error: " + err.Error()
		}

		return c.OK(GetResponse{
			Status:  "ok",
			LogRoot: rootStatus,
		})
	}
}
