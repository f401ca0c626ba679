// config.go implements the "behold config" command.
//
// Config follows a cascade model similar to git: local config
// (.behold/config.yaml) takes precedence over global (~/.behold/config.yaml).
// The --local flag forces local config even if it doesn't exist yet.

package core

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jpl-au/behold/cmd"
	"github.com/jpl-au/behold/extension"
	"github.com/jpl-au/behold/internal/config"
	"github.com/jpl-au/behold/internal/log"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "config [key] [value]",
		Short: "View or set config values",
		Long: `View or set config values.

  behold config                   # show config
  behold config codec.marker      # show the tag marker
  behold config codec.marker '#'  # set the tag marker

Configuration locations:
  Global: ~/.behold/config.yaml
  Local:  .behold/config.yaml

Uses local config if it exists, otherwise global.
Writes go to the same place reads come from.
Use --local to use local config instead.`,
		Args: cobra.MaximumNArgs(2),
		RunE: runConfig,
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return config.ValidKeys(), cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
	}
	c.Flags().Bool(extension.FlagLocal, false, "Use local config (.behold/config.yaml)")
	return c
}

func runConfig(c *cobra.Command, args []string) error {
	forceLocal, _ := c.Flags().GetBool(extension.FlagLocal)

	if len(args) > 0 && !config.IsValidKey(args[0]) {
		return cmd.PrintJSONError(fmt.Errorf("config %q: %w (valid: %s)", args[0], config.ErrUnknownKey, strings.Join(config.ValidKeys(), ", ")))
	}

	// Unchecked so an invalid marker or separator can still be shown and
	// replaced; every other command refuses to build the codec from it.
	var cfg *config.Config
	var err error
	if forceLocal {
		cfg, err = config.LoadScopeUnchecked(config.ScopeLocal)
	} else {
		cfg, err = config.LoadUnchecked()
	}
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("config load: %w", err))
	}

	scopeName := "global"
	if cfg.Scope() == config.ScopeLocal {
		scopeName = "local"
	}

	switch len(args) {
	case 0:
		all := cfg.All()
		log.Event("core:config", "list").Write(nil)
		if cmd.JSON() {
			return cmd.PrintJSON(all)
		}
		keys := make([]string, 0, len(all))
		for k := range all {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			fmt.Fprintf(cmd.Out(), "%s: %s\n", k, all[k])
		}

	case 1:
		v, err := cfg.Get(args[0])
		log.Event("core:config", "get").Detail("key", args[0]).Write(err)
		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("config get %q: %w", args[0], err))
		}
		if cmd.JSON() {
			return cmd.PrintJSON(map[string]string{args[0]: v})
		}
		fmt.Fprintln(cmd.Out(), v)

	case 2:
		if err := cfg.Set(args[0], args[1]); err != nil {
			log.Event("core:config", "set").Detail("key", args[0]).Write(err)
			return cmd.PrintJSONError(fmt.Errorf("config set %q: %w", args[0], err))
		}

		saveErr := cfg.Save()
		log.Event("core:config", "set").Detail("key", args[0]).Detail("scope", scopeName).Write(saveErr)
		if saveErr != nil {
			return cmd.PrintJSONError(fmt.Errorf("config save: %w", saveErr))
		}
		if cmd.JSON() {
			return cmd.PrintJSON(map[string]string{"key": args[0], "value": args[1], "scope": scopeName})
		}
		fmt.Fprintf(cmd.Out(), "%s = %s (%s)\n", args[0], args[1], scopeName)
	}
	return nil
}
