package dashboard

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/gomantics/runboard/api/web"
	"github.com/gomantics/runboard/domains/registry"
	"go.uber.org/zap"
)

type pageData struct {
	Repos []registry.Repository
}

// Get handles GET /, the rendered dashboard page.
func Get(tmpl *template.Template, reg *registry.Service) web.HandlerFunc {
	return func(c web.Context) error {
		repos := reg.List(c.Request().Context())

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, pageData{Repos: repos}); err != nil {
			c.L.Error("failed to render dashboard", zap.Error(err))
			return c.InternalError("failed to render dashboard")
		}

		return c.HTML(http.StatusOK, buf.String())
	}
}
