package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/justinpbarnett/relwatch/internal/config"
	"github.com/justinpbarnett/relwatch/internal/logger"
	"github.com/justinpbarnett/relwatch/internal/ui"
	"github.com/justinpbarnett/relwatch/internal/ui/panels"
	"github.com/justinpbarnett/relwatch/internal/update"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath      string
	repo            string
	versionOverride string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	root := &cobra.Command{
		Use:           "relwatch",
		Short:         "Show whether a newer release is available",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(&flags)
		},
	}

	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to a relwatch.yaml or relwatch.toml file")
	root.PersistentFlags().StringVar(&flags.repo, "repo", "", "release repository in owner/name form")
	root.PersistentFlags().StringVar(&flags.versionOverride, "version-override", "", "pretend to be this version when checking")

	root.AddCommand(newVersionCmd(&flags), newCheckCmd(&flags))
	return root
}

// loadConfig resolves the config and applies command-line overrides.
func loadConfig(flags *rootFlags) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if flags.configPath != "" {
		cfg, err = config.LoadFile(flags.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if flags.repo != "" {
		cfg.Update.Repo = flags.repo
	}
	return cfg, nil
}

func currentVersion(flags *rootFlags) string {
	if flags.versionOverride != "" {
		return flags.versionOverride
	}
	return panels.Version
}

func newChecker(cfg *config.Config, version string) *update.GitHubChecker {
	return &update.GitHubChecker{
		CurrentVersion: version,
		Repo:           cfg.Update.Repo,
		Timeout:        time.Duration(cfg.Update.Timeout) * time.Second,
		Prerelease:     cfg.Update.Prerelease != nil && *cfg.Update.Prerelease,
		APIToken:       cfg.Update.APIToken,
	}
}

// newLogger builds the application logger. The TUI owns the terminal, so
// without a configured path nothing is logged.
func newLogger(cfg *config.Config) (logger.Logger, error) {
	if cfg.Log.Path == "" {
		return logger.NewNop(), nil
	}
	l, err := logger.New(logger.Config{Level: cfg.Log.Level, OutputPaths: []string{cfg.Log.Path}})
	if err != nil {
		return nil, fmt.Errorf("open log %s: %w", cfg.Log.Path, err)
	}
	update.SetLibraryLogger(l.StdLog())
	return l, nil
}

func runTUI(flags *rootFlags) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Sync()

	version := currentVersion(flags)
	log.InfoW("starting", "version", version, "repo", cfg.Update.Repo)

	app := ui.NewApp(cfg, newChecker(cfg, version), log)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
