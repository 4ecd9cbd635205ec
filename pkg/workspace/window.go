package workspace

import (
	"errors"
)

// Window is one window definition. Empty Name or Command are treated as
// absent; panes are created in slice order.
type Window struct {
	Name    *string
	Command *string
	Layout  *string
	Panes   []Pane
}

// WindowDescriptor is the built, immutable form of a Window: the new-window
// command, its ordered pane splits and an optional select-layout command.
type WindowDescriptor struct {
	window Window
	create Command
	panes  []PaneDescriptor
	layout Command
}

// BuildWindow validates w and all of its panes. Pane failures are returned
// as *InvalidFieldError tagged with the window label and pane index.
func BuildWindow(w Window) (WindowDescriptor, error) {
	return buildWindow(w, 0)
}

func buildWindow(w Window, index int) (WindowDescriptor, error) {
	label := windowLabel(w.Name, index)

	create := Command{NewWindowCmd}
	if w.Name != nil && *w.Name != "" {
		create = append(create, NameFlag, *w.Name)
	}
	if w.Command != nil && *w.Command != "" {
		create = append(create, *w.Command)
	}

	panes := make([]PaneDescriptor, 0, len(w.Panes))
	for i, p := range w.Panes {
		pd, err := BuildPane(p)
		if err != nil {
			var fe *InvalidFieldError
			if errors.As(err, &fe) {
				tagged := *fe
				tagged.Window = label
				tagged.Pane = i
				return WindowDescriptor{}, &tagged
			}
			return WindowDescriptor{}, err
		}
		panes = append(panes, pd)
	}

	var layout Command
	if w.Layout != nil {
		if *w.Layout == "" {
			return WindowDescriptor{}, &InvalidFieldError{Window: label, Pane: -1, Field: "layout", Value: "", Reason: "must not be empty"}
		}
		layout = Command{SelectLayoutCmd, *w.Layout}
	}

	return WindowDescriptor{window: w, create: create, panes: panes, layout: layout}, nil
}

// CreateArgs returns a copy of the new-window command.
func (d WindowDescriptor) CreateArgs() Command { return d.create.clone() }

// Panes returns the window's pane descriptors in declaration order.
func (d WindowDescriptor) Panes() []PaneDescriptor {
	out := make([]PaneDescriptor, len(d.panes))
	copy(out, d.panes)
	return out
}

// LayoutArgs returns the select-layout command and whether the window has one.
func (d WindowDescriptor) LayoutArgs() (Command, bool) {
	if d.layout == nil {
		return nil, false
	}
	return d.layout.clone(), true
}

// Window returns the definition the descriptor was built from.
func (d WindowDescriptor) Window() Window { return d.window }

// Name returns the window name, or "" when the multiplexer picks one.
func (d WindowDescriptor) Name() string {
	if d.window.Name == nil {
		return ""
	}
	return *d.window.Name
}

// Commands returns the window's part of a creation stream: new-window, each
// split in order, then select-layout when set.
func (d WindowDescriptor) Commands() []Command {
	cmds := make([]Command, 0, len(d.panes)+2)
	cmds = append(cmds, d.CreateArgs())
	for _, p := range d.panes {
		cmds = append(cmds, p.Args())
	}
	if layout, ok := d.LayoutArgs(); ok {
		cmds = append(cmds, layout)
	}
	return cmds
}
