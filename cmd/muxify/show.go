package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/grovetools/muxify/pkg/workspace"
)

var headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ecdc4")).Bold(true)

var showCmd = &cobra.Command{
	Use:   "show [workspace]",
	Short: "Print the tmux commands a workspace would run",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) == 1 {
			name = args[0]
		}
		return runWorkspace(cmd, name, true)
	},
}

// printStream writes one shell-ready line per command of ws.
func printStream(w io.Writer, ws *workspace.Workspace) error {
	header := "# " + ws.Name()
	if ws.Source() != "" {
		header += " (" + ws.Source() + ")"
	}
	if _, err := fmt.Fprintln(w, headerStyle.Render(header)); err != nil {
		return err
	}

	for _, c := range ws.Create() {
		if _, err := fmt.Fprintf(w, "tmux %s\n", c); err != nil {
			return err
		}
	}
	return nil
}
