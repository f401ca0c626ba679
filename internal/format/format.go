// Package format provides output formatting for CLI display.
//
// Commands decide what to show; this package decides how it looks on a
// terminal. Plain (non-TTY) output stays line oriented so it can be piped.
package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/disiqueira/gotree/v3"
	"github.com/jpl-au/behold/internal/panel"
	"github.com/jpl-au/behold/internal/tagpath"
)

var (
	activeStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(lipgloss.Color("#1e1e2e")).
			Background(lipgloss.Color("#a6e3a1"))
	inactiveStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("#cdd6f4")).
			Background(lipgloss.Color("#45475a"))
	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c"))
)

// Tree prints a decoded path as a tree: the base path at the root, then the
// tags in decode order, then the listing flag when set.
//
//	/home/user/docs
//	└── tags
//	    ├── urgent
//	    └── work
func Tree(w io.Writer, codec *tagpath.Codec, tp tagpath.TaggedPath) error {
	label := codec.Format(tagpath.TaggedPath{Base: tp.Base})
	if label == "" {
		label = "."
	}

	root := gotree.New(label)
	if len(tp.Tags) > 0 {
		tags := root.Add("tags")
		for _, t := range tp.Tags {
			tags.Add(t)
		}
	}
	if tp.Listing {
		root.Add("listing")
	}

	_, err := fmt.Fprint(w, root.Print())
	return err
}

// Toggles prints one line per toggle: state, name and the path the toggle
// leads to. With colour the state is drawn as a coloured button.
func Toggles(w io.Writer, toggles []panel.Toggle, colour bool) error {
	width := 0
	for _, t := range toggles {
		width = max(width, lipgloss.Width(t.Name))
	}

	for _, t := range toggles {
		var line string
		if colour {
			style := inactiveStyle
			if t.Active {
				style = activeStyle
			}
			line = style.Render(pad(t.Name, width)) + "  " + dimStyle.Render("→ "+t.Path)
		} else {
			box := "[ ]"
			if t.Active {
				box = "[x]"
			}
			line = box + " " + pad(t.Name, width) + "  " + t.Path
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// pad right-pads s with spaces to width terminal cells.
func pad(s string, width int) string {
	return s + strings.Repeat(" ", max(0, width-lipgloss.Width(s)))
}

// Row renders toggles side by side, as the file manager's tag bar shows them.
func Row(toggles []panel.Toggle) string {
	parts := make([]string, 0, len(toggles))
	for _, t := range toggles {
		if t.Active {
			parts = append(parts, activeStyle.Render(t.Name))
		} else {
			parts = append(parts, inactiveStyle.Render(t.Name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
