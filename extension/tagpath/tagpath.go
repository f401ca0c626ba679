// Package tagpath provides the codec extension for behold.
// It registers commands: parse, format, toggle, listing.
//
// These commands are pure text transformations and never look at the
// filesystem, so they work on paths that are not mounted.
package tagpath

import (
	"fmt"

	"github.com/jpl-au/behold/cmd"
	"github.com/jpl-au/behold/extension"
	"github.com/jpl-au/behold/internal/format"
	"github.com/jpl-au/behold/internal/log"
	"github.com/jpl-au/behold/internal/panel"
	"github.com/jpl-au/behold/internal/tagpath"
	"github.com/jpl-au/behold/internal/validate"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the codec extension.
type Extension struct {
	codec *tagpath.Codec
}

var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "tagpath".
func (e *Extension) Name() string { return "tagpath" }

// Init receives the codec built from flags and config.
func (e *Extension) Init(ctx extension.Context) error {
	e.codec = ctx.Codec()
	return nil
}

// Commands returns parse, format, toggle and listing.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		e.newParseCmd(),
		e.newFormatCmd(),
		e.newToggleCmd(),
		e.newListingCmd(),
	}
}

func (e *Extension) newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <path>",
		Short: "Decode a tagged path",
		Long: `Decode a tagged path into its directory, tags and listing flag.

Tags are reported deepest first:
  behold parse /home/user/%work/%urgent/docs
  behold parse /home/user/% -o json`,
		Args: cobra.ExactArgs(1),
		RunE: e.runParse,
	}
}

func (e *Extension) runParse(_ *cobra.Command, args []string) error {
	p := args[0]
	tp := e.codec.Parse(p)

	log.Event("tagpath:parse", "parse").
		Path(p).
		Detail("tags", len(tp.Tags)).
		Detail("listing", tp.Listing).
		Write(nil)

	if cmd.JSON() {
		return cmd.PrintJSON(tp)
	}
	return format.Tree(cmd.Out(), e.codec, tp)
}

func (e *Extension) newFormatCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "format <segment>...",
		Short: "Build a tagged path from segments and tags",
		Long: `Join path segments and append one tag segment per --tag, in order.

  behold format / home user -t work -t urgent   # /home/user/%work/%urgent`,
		Args: cobra.MinimumNArgs(1),
		RunE: e.runFormat,
	}
	c.Flags().StringArrayP(extension.FlagTag, "t", nil, "Tag to append (repeatable)")
	return c
}

func (e *Extension) runFormat(c *cobra.Command, args []string) error {
	tags, _ := c.Flags().GetStringArray(extension.FlagTag)

	l := log.Event("tagpath:format", "format").Detail("tags", len(tags))
	for _, t := range tags {
		if err := validate.Tag(t, e.codec.Separator()); err != nil {
			l.Write(err)
			return cmd.PrintJSONError(fmt.Errorf("format: %w", err))
		}
	}

	tp := tagpath.TaggedPath{Base: args, Tags: tags}
	out := e.codec.Format(tp)
	l.Resolved(out).Write(nil)

	if cmd.JSON() {
		return cmd.PrintJSON(map[string]any{"path": out, "base": tp.Base, "tags": tp.Tags})
	}
	fmt.Fprintln(cmd.Out(), out)
	return nil
}

func (e *Extension) newToggleCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "toggle <path> <tag>",
		Short: "Switch a tag on or off in a tagged path",
		Long: `Print the path reached by switching a tag on (default) or off.

  behold toggle /srv/media/%films 4k         # /srv/media/%films/%4k
  behold toggle /srv/media/%films films --off # /srv/media`,
		Args: cobra.ExactArgs(2),
		RunE: e.runToggle,
	}
	c.Flags().Bool(extension.FlagOff, false, "Switch the tag off")
	return c
}

func (e *Extension) runToggle(c *cobra.Command, args []string) error {
	p, tag := args[0], args[1]
	off, _ := c.Flags().GetBool(extension.FlagOff)

	out, err := panel.Apply(e.codec, p, tag, !off)
	log.Event("tagpath:toggle", "toggle").
		Path(p).
		Resolved(out).
		Detail("tag", tag).
		Detail("on", !off).
		Write(err)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("toggle %q %q: %w", p, tag, err))
	}

	if cmd.JSON() {
		return cmd.PrintJSON(map[string]any{"path": p, "tag": tag, "on": !off, "result": out})
	}
	fmt.Fprintln(cmd.Out(), out)
	return nil
}

func (e *Extension) newListingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "listing <path>",
		Short: "Print the path that lists the tags available at a path",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			out := panel.ListingPath(e.codec, e.codec.Parse(args[0]))
			log.Event("tagpath:listing", "listing").Path(args[0]).Resolved(out).Write(nil)

			if cmd.JSON() {
				return cmd.PrintJSON(map[string]string{"path": args[0], "result": out})
			}
			fmt.Fprintln(cmd.Out(), out)
			return nil
		},
	}
}
