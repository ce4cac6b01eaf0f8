package logs

import (
	"github.com/gomantics/runboard/api/web"
	"github.com/gomantics/runboard/domains/logstore"
)

// Item is one parsed log in the API response. Content carries the full
// raw log text; Error is set only for records that could not be read.
type Item struct {
	Filename  string `json:"filename"`
	Timestamp string `json:"timestamp"`
	Size      int64  `json:"size"`
	Content   string `json:"content"`
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
}

// List handles GET /api/logs/:repo. The result is newest-first. An
// unknown repository and a repository with no runs both serve an empty
// array; the API does not distinguish the two.
func List(store *logstore.Store) web.HandlerFunc {
	return func(c web.Context) error {
		ctx := c.Request().Context()
		repoName := c.Param("repo")

		records := store.Records(ctx, repoName)

		items := make([]Item, len(records))
		for i, rec := range records {
			items[i] = Item{
				Filename:  rec.Filename,
				Timestamp: rec.Timestamp,
				Size:      rec.Size,
				Content:   rec.Content,
				Status:    rec.Status.String(),
				Error:     rec.Error,
			}
		}

		return c.OK(items)
	}
}
