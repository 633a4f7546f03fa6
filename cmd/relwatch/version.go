package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/justinpbarnett/relwatch/internal/update"
	"github.com/spf13/cobra"
)

func newVersionCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version and check for a newer release",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			version := currentVersion(flags)
			return runVersion(cmd.Context(), cmd.OutOrStdout(), version, newChecker(cfg, version))
		},
	}
}

func runVersion(ctx context.Context, w io.Writer, version string, checker update.Checker) error {
	fmt.Fprintf(w, "relwatch version %s\n", version)

	if version == "dev" {
		fmt.Fprintln(w, "Development build — update check skipped.")
		return nil
	}

	info, err := checker.CheckForUpdate(ctx)
	if err != nil {
		fmt.Fprintf(w, "Update check failed: %v\n", err)
		return nil
	}

	if info != nil {
		fmt.Fprintf(w, "Update available: v%s → v%s\n%s\n", info.CurrentVersion, info.LatestVersion, info.ReleaseURL)
	} else {
		fmt.Fprintln(w, "You are up to date.")
	}
	return nil
}

func newCheckCmd(flags *rootFlags) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check once for a newer release and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			return runCheck(cmd.Context(), cmd.OutOrStdout(), newChecker(cfg, currentVersion(flags)), asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the update record as JSON (null when up to date)")
	return cmd
}

func runCheck(ctx context.Context, w io.Writer, checker update.Checker, asJSON bool) error {
	info, err := checker.CheckForUpdate(ctx)
	if err != nil {
		return fmt.Errorf("check for update: %w", err)
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}

	if info == nil {
		fmt.Fprintln(w, "No update available.")
		return nil
	}
	fmt.Fprintf(w, "v%s → v%s\n%s\n", info.CurrentVersion, info.LatestVersion, info.ReleaseURL)
	if info.ReleaseNotes != "" {
		fmt.Fprintf(w, "\n%s\n", info.ReleaseNotes)
	}
	return nil
}
