package workspace

import (
	"fmt"
	"strconv"
)

// Split is the direction of a pane split.
type Split string

const (
	SplitHorizontal Split = "h"
	SplitVertical   Split = "v"
)

// Flag returns the split-window flag for the direction. The zero value is
// horizontal.
func (s Split) Flag() string {
	if s == "" {
		return "-" + string(SplitHorizontal)
	}
	return "-" + string(s)
}

func (s Split) valid() bool {
	return s == "" || s == SplitHorizontal || s == SplitVertical
}

// Pane is one pane definition. Nil pointers are absent fields.
type Pane struct {
	Split      Split
	Percentage *int
	Target     *int
	Command    *string
}

// PaneDescriptor is the built, immutable form of a Pane.
type PaneDescriptor struct {
	pane Pane
	args Command
}

// BuildPane validates p and computes its split-window command.
func BuildPane(p Pane) (PaneDescriptor, error) {
	if !p.Split.valid() {
		return PaneDescriptor{}, &InvalidFieldError{Pane: -1, Field: "split", Value: string(p.Split), Reason: `must be "h" or "v"`}
	}
	if p.Percentage != nil && (*p.Percentage < 1 || *p.Percentage > 99) {
		return PaneDescriptor{}, &InvalidFieldError{Pane: -1, Field: "percentage", Value: *p.Percentage, Reason: "must be between 1 and 99"}
	}
	if p.Target != nil && *p.Target < 0 {
		return PaneDescriptor{}, &InvalidFieldError{Pane: -1, Field: "target", Value: *p.Target, Reason: "must not be negative"}
	}

	args := Command{SplitWindowCmd, p.Split.Flag()}
	if p.Percentage != nil {
		args = append(args, PercentageFlag, strconv.Itoa(*p.Percentage))
	}
	if p.Target != nil {
		args = append(args, TargetFlag, fmt.Sprintf("%d", *p.Target))
	}
	if p.Command != nil {
		args = append(args, *p.Command)
	}
	return PaneDescriptor{pane: p, args: args}, nil
}

// Args returns a copy of the split-window command.
func (d PaneDescriptor) Args() Command { return d.args.clone() }

// Pane returns the definition the descriptor was built from.
func (d PaneDescriptor) Pane() Pane { return d.pane }
