package config

import (
	"fmt"
	"strings"
)

// ValidationError collects multiple validation failures.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

// validate checks the config for internal consistency and returns a
// ValidationError if any checks fail. All checks run; errors are collected.
func validate(cfg *Config) error {
	var errs []string

	if cfg.CheckEnabled() {
		owner, name, ok := strings.Cut(cfg.Update.Repo, "/")
		if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
			errs = append(errs, fmt.Sprintf("update.repo %q must be in \"owner/name\" form", cfg.Update.Repo))
		}
	}

	if cfg.Update.Timeout <= 0 {
		errs = append(errs, "update.timeout must be positive")
	}
	if cfg.UI.NotesScrollSpeed <= 0 {
		errs = append(errs, "ui.notes_scroll_speed must be positive")
	}

	switch cfg.UI.Theme {
	case "default", "mono":
	default:
		errs = append(errs, fmt.Sprintf("ui.theme %q must be \"default\" or \"mono\"", cfg.UI.Theme))
	}

	switch strings.ToLower(cfg.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("log.level %q must be \"debug\", \"info\", \"warn\", or \"error\"", cfg.Log.Level))
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}
