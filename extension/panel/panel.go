// Package panel provides the panel extension for behold.
// It registers the panel command, the CLI face of the file manager tag bar.
package panel

import (
	"fmt"
	"os"

	"github.com/jpl-au/behold/cmd"
	"github.com/jpl-au/behold/extension"
	"github.com/jpl-au/behold/internal/format"
	"github.com/jpl-au/behold/internal/log"
	"github.com/jpl-au/behold/internal/panel"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the panel extension.
type Extension struct {
	ctx extension.Context
}

var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "panel".
func (e *Extension) Name() string { return "panel" }

// Init receives the codec and lister.
func (e *Extension) Init(ctx extension.Context) error {
	e.ctx = ctx
	return nil
}

// Commands returns the panel command.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{e.newPanelCmd()}
}

func (e *Extension) newPanelCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "panel <dir|file-uri>",
		Short: "Show the tag toggles of a directory",
		Long: `Show one toggle per tag for a directory: the tags in its path (on)
followed by the tags it offers (off), with the path each toggle leads to.

  behold panel /media/photos/%trips
  behold panel file:///media/photos --toggle family
  behold panel /media/photos --row`,
		Args: cobra.ExactArgs(1),
		RunE: e.runPanel,
	}
	c.Flags().String(extension.FlagToggle, "", "Print the path reached by pressing this toggle")
	c.Flags().Bool(extension.FlagRow, false, "Render toggles side by side")
	return c
}

func (e *Extension) runPanel(c *cobra.Command, args []string) error {
	ctx := c.Context()
	location := args[0]
	toggle, _ := c.Flags().GetString(extension.FlagToggle)
	row, _ := c.Flags().GetBool(extension.FlagRow)

	l := log.Event("panel:open", "list").Path(location)

	p, err := panel.Open(ctx, e.ctx.Codec(), e.ctx.Lister(), location)
	if err != nil {
		l.Write(err)
		return cmd.PrintJSONError(fmt.Errorf("panel %q: %w", location, err))
	}
	l.Detail("count", len(p.Toggles)).Write(nil)

	if toggle != "" {
		return e.press(p, toggle)
	}

	if cmd.JSON() {
		return cmd.PrintJSON(p)
	}
	colour := term.IsTerminal(int(os.Stdout.Fd()))
	if row {
		fmt.Fprintln(cmd.Out(), format.Row(p.Toggles))
		return nil
	}
	return format.Toggles(cmd.Out(), p.Toggles, colour)
}

// press switches the named toggle to the opposite of its current state.
func (e *Extension) press(p *panel.Panel, name string) error {
	on := true
	for _, t := range p.Toggles {
		if t.Name == name {
			on = !t.Active
		}
	}

	next, err := p.Toggle(name, on)
	log.Event("panel:toggle", "toggle").
		Path(p.Location).
		Resolved(next).
		Detail("tag", name).
		Detail("on", on).
		Write(err)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("panel toggle %q: %w", name, err))
	}

	if cmd.JSON() {
		return cmd.PrintJSON(map[string]any{"location": p.Location, "tag": name, "on": on, "result": next})
	}
	fmt.Fprintln(cmd.Out(), next)
	return nil
}
