package dashboard

import (
	"embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
)

const templateName = "dashboard.html"

//go:embed dashboard.html
var embedded embed.FS

// LoadTemplate parses the dashboard template. A dashboard.html in the
// configured template directory takes priority over the embedded
// default, so operators can restyle the page without rebuilding. A
// template that exists but fails to parse is a startup error; running
// with a half-working page helps nobody.
func LoadTemplate(templateDir string) (*template.Template, error) {
	if templateDir != "" {
		path := filepath.Join(templateDir, templateName)
		if _, err := os.Stat(path); err == nil {
			tmpl, err := template.ParseFiles(path)
			if err != nil {
				return nil, fmt.Errorf("failed to parse dashboard template %s: %w", path, err)
			}
			return tmpl, nil
		}
	}

	tmpl, err := template.ParseFS(embedded, templateName)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded dashboard template: %w", err)
	}
	return tmpl, nil
}
