package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"git.home.luguber.info/inful/readme-preview/internal/foundation/errors"
	"git.home.luguber.info/inful/readme-preview/internal/logfields"
)

// EnvPrefix prefixes every environment override, e.g. README_PREVIEW_PORT.
const EnvPrefix = "README_PREVIEW_"

// envFiles are loaded most specific first; godotenv never overrides a
// variable that is already set, so earlier files win.
var envFiles = []string{".env.local", ".env"}

// LoadEnvFiles loads .env.local and .env from dir into the process
// environment without overriding existing variables. It returns the files
// that were loaded.
func LoadEnvFiles(dir string) []string {
	var loaded []string
	for _, name := range envFiles {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			slog.Warn("Failed to load env file", logfields.File(path), logfields.Error(err))
			continue
		}
		slog.Debug("Loaded environment variables", logfields.File(path))
		loaded = append(loaded, path)
	}
	return loaded
}

func applyEnv(cfg *Config) error {
	for key, dst := range map[string]*string{
		"FILE":          &cfg.File,
		"THEME":         &cfg.Theme,
		"TITLE":         &cfg.Title,
		"BRANCH":        &cfg.Branch,
		"BASE_URL":      &cfg.BaseURL,
		"WORKFLOW_NAME": &cfg.WorkflowName,
	} {
		if v, ok := os.LookupEnv(EnvPrefix + key); ok {
			*dst = v
		}
	}

	for key, dst := range map[string]*bool{
		"REWRITE_LINKS": &cfg.RewriteLinks,
		"STRICT":        &cfg.Strict,
	} {
		v, ok := os.LookupEnv(EnvPrefix + key)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.WrapError(err, errors.CategoryConfig, "invalid boolean in environment").
				WithContext("variable", EnvPrefix+key).Build()
		}
		*dst = b
	}

	if v, ok := os.LookupEnv(EnvPrefix + "PORT"); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return errors.WrapError(err, errors.CategoryConfig, "invalid port in environment").
				WithContext("variable", EnvPrefix+"PORT").Build()
		}
		cfg.Port = port
	}
	return nil
}
