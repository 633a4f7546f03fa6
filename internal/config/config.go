package config

type Config struct {
	Update UpdateConfig `yaml:"update" toml:"update"`
	UI     UIConfig     `yaml:"ui" toml:"ui"`
	Log    LogConfig    `yaml:"log" toml:"log"`
}

type UpdateConfig struct {
	Repo       string `yaml:"repo" toml:"repo"`
	Enabled    *bool  `yaml:"enabled" toml:"enabled"`
	Timeout    int    `yaml:"timeout" toml:"timeout"` // seconds
	Prerelease *bool  `yaml:"prerelease" toml:"prerelease"`
	APIToken   string `yaml:"api_token" toml:"api_token"`
}

type UIConfig struct {
	Theme            string `yaml:"theme" toml:"theme"`
	NotesScrollSpeed int    `yaml:"notes_scroll_speed" toml:"notes_scroll_speed"`
}

type LogConfig struct {
	Level string `yaml:"level" toml:"level"`
	Path  string `yaml:"path" toml:"path"`
}

// CheckEnabled reports whether the startup update check should run.
func (c *Config) CheckEnabled() bool {
	return c.Update.Enabled == nil || *c.Update.Enabled
}
