package config

func boolPtr(b bool) *bool { return &b }

// DefaultRepo is the release repository checked when none is configured.
const DefaultRepo = "justinpbarnett/relwatch"

func DefaultConfig() Config {
	return Config{
		Update: UpdateConfig{
			Repo:       DefaultRepo,
			Enabled:    boolPtr(true),
			Timeout:    10,
			Prerelease: boolPtr(false),
		},
		UI: UIConfig{
			Theme:            "default",
			NotesScrollSpeed: 3,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
