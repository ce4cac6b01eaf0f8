package registry

// Repository is one automation target from the descriptor file. Only
// Name is interpreted by the core (it doubles as the log subdirectory
// name); the remaining fields are display metadata passed through to
// the dashboard untouched.
type Repository struct {
	Name        string `json:"name"`
	URL         string `json:"url,omitempty"`
	Branch      string `json:"branch,omitempty"`
	Description string `json:"description,omitempty"`
}
