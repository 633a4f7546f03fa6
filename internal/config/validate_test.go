package config

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateDefaults(t *testing.T) {
	cfg := DefaultConfig()
	if err := validate(&cfg); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
}

func TestValidateRepo(t *testing.T) {
	tests := []struct {
		repo    string
		wantErr bool
	}{
		{"acme/tool", false},
		{"acme", true},
		{"/tool", true},
		{"acme/", true},
		{"a/b/c", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.repo, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Update.Repo = tt.repo
			err := validate(&cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate(repo=%q) error = %v, wantErr %v", tt.repo, err, tt.wantErr)
			}
		})
	}
}

func TestValidateRepoIgnoredWhenDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Update.Repo = ""
	cfg.Update.Enabled = boolPtr(false)
	if err := validate(&cfg); err != nil {
		t.Errorf("repo should not be required when the check is disabled: %v", err)
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Update.Repo = "bad"
	cfg.Update.Timeout = 0
	cfg.UI.Theme = "neon"
	cfg.UI.NotesScrollSpeed = -1
	cfg.Log.Level = "chatty"

	err := validate(&cfg)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if len(ve.Errors) != 5 {
		t.Errorf("expected 5 errors, got %d: %v", len(ve.Errors), ve.Errors)
	}
	if !strings.Contains(err.Error(), "update.timeout must be positive") {
		t.Errorf("expected timeout error in message, got %q", err.Error())
	}
}

func TestValidateLogLevelCaseInsensitive(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Log.Level = "DEBUG"
	if err := validate(&cfg); err != nil {
		t.Errorf("expected upper-case level to validate: %v", err)
	}
}
