package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	EnvDev  = "dev"
	EnvProd = "prod"

	defaultPort = 8081

	// Default layout matches the automation host this dashboard was
	// built for: everything lives under ~/ansible/playbooks.
	baseFolderName      = "ansible"
	playbooksFolderName = "playbooks"
	logsFolderName      = "logs"
	reposFileName       = "repos.json"
	templatesFolderName = "templates"
)

// Config holds everything the service needs at startup. It is loaded
// once in main and passed to constructors explicitly; nothing reads it
// as ambient package state.
type Config struct {
	// Env selects dev or prod behavior (logging format, echo banner).
	Env string `yaml:"env"`
	// Port is the HTTP listen port.
	Port int `yaml:"port"`
	// LogRoot is the directory holding one subdirectory of *.log files
	// per repository.
	LogRoot string `yaml:"log_root"`
	// ReposFile is the JSON descriptor listing known repositories.
	ReposFile string `yaml:"repos_file"`
	// TemplateDir optionally overrides the embedded dashboard template.
	TemplateDir string `yaml:"template_dir"`
	// CorsOrigins lists allowed CORS origins for the JSON API.
	CorsOrigins []string `yaml:"cors_origins"`
}

// IsDev reports whether the service runs in development mode.
func (c Config) IsDev() bool {
	return c.Env == EnvDev
}

// Load builds the configuration from defaults, then an optional YAML
// file pointed to by RUNBOARD_CONFIG, then individual RUNBOARD_*
// environment overrides.
func Load() (Config, error) {
	cfg := defaults()

	if path := os.Getenv("RUNBOARD_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the parts of the configuration that would make the
// server unable to start. Paths are deliberately not checked here: a
// missing descriptor or log root degrades to an empty dashboard at
// request time instead of blocking startup.
func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port number: %d", c.Port)
	}
	return nil
}

func defaults() Config {
	base := baseDir()
	return Config{
		Env:         EnvDev,
		Port:        defaultPort,
		LogRoot:     filepath.Join(base, logsFolderName),
		ReposFile:   filepath.Join(base, reposFileName),
		TemplateDir: filepath.Join(base, templatesFolderName),
	}
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("RUNBOARD_ENV"); v != "" {
		cfg.Env = v
	}
	if v := os.Getenv("RUNBOARD_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		}
	}
	if v := os.Getenv("RUNBOARD_LOG_ROOT"); v != "" {
		cfg.LogRoot = v
	}
	if v := os.Getenv("RUNBOARD_REPOS_FILE"); v != "" {
		cfg.ReposFile = v
	}
	if v := os.Getenv("RUNBOARD_TEMPLATE_DIR"); v != "" {
		cfg.TemplateDir = v
	}
	if v := os.Getenv("RUNBOARD_CORS_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.CorsOrigins = origins
	}
}

func baseDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home, err = os.Getwd()
		if err != nil {
			home = "."
		}
	}
	return filepath.Join(home, baseFolderName, playbooksFolderName)
}
