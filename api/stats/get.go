package stats

import (
	"github.com/gomantics/runboard/api/web"
	"github.com/gomantics/runboard/domains/stats"
)

// GetResponse is the global rollup served to the dashboard.
type GetResponse struct {
	TotalRepos     int `json:"total_repos"`
	TotalLogs      int `json:"total_logs"`
	SuccessfulRuns int `json:"successful_runs"`
	FailedRuns     int `json:"failed_runs"`
}

// Get handles GET /api/stats. The numbers are recomputed from the
// filesystem on every request.
func Get(svc *stats.Service) web.HandlerFunc {
	return func(c web.Context) error {
		result := svc.Compute(c.Request().Context())

		return c.OK(GetResponse{
			TotalRepos:     result.TotalRepos,
			TotalLogs:      result.TotalLogs,
			SuccessfulRuns: result.SuccessfulRuns,
			FailedRuns:     result.FailedRuns,
		})
	}
}
