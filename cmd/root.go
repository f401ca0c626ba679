/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// root.go defines the root command and CLI execution entry point.
//
// Separated from init_extensions.go to isolate cobra setup from extension
// initialisation logic.
//
// Design: PersistentPreRunE builds the codec lazily. Commands listed in
// noCodecCommands skip it, so "config" still runs when the configured
// marker is invalid and every other command would refuse to start.

package cmd

import (
	"fmt"
	"os"
	"slices"

	"github.com/jpl-au/behold/internal/config"
	"github.com/jpl-au/behold/internal/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "behold",
	Short: "Tags encoded in directory paths",
	Long: `Decode, build and toggle tagged paths such as /home/user/%work/%urgent/docs,
and show the tag panel a file manager presents for a directory.`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if output != "" && !slices.Contains(validOutputFormats, output) {
			return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
		}

		if noCodecCommands[topLevelCmdName(cmd)] {
			return nil
		}

		if err := initExtensions(); err != nil {
			if JSON() {
				_ = PrintJSON(map[string]string{"error": err.Error()})
				cmd.SilenceErrors = true
				cmd.SilenceUsage = true
			}
			return fmt.Errorf("initialise extensions: %w", err)
		}
		return nil
	},
}

// topLevelCmdName returns the name of the top-level command (direct child of root).
// For "behold parse /a/%b", returns "parse".
func topLevelCmdName(cmd *cobra.Command) string {
	for cmd.HasParent() && cmd.Parent().HasParent() {
		cmd = cmd.Parent()
	}
	return cmd.Name()
}

// Execute runs the root command and handles process lifecycle.
// Opens audit logging unless disabled in config, registers extensions and
// executes the command. Exit code 1 indicates error.
func Execute() {
	if logEnabled() {
		if err := log.Open(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", err)
		}
		defer log.Close()
	}

	registerExtensions()
	if err := rootCmd.Execute(); err != nil {
		log.Close()
		os.Exit(1)
	}
}

// logEnabled reads log.enabled without failing on a broken config; the
// command itself reports config errors.
func logEnabled() bool {
	cfg, err := config.Load()
	if err != nil {
		return true
	}
	return cfg.LogEnabled()
}

// RootCmd returns the root command for testing and extension access.
func RootCmd() *cobra.Command {
	return rootCmd
}
