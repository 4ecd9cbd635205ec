package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available workspaces, one per line",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listWorkspaces(cmd)
	},
}

func listWorkspaces(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	c, err := loadCatalog(cfg, newLogger())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, name := range c.Names() {
		fmt.Fprintln(out, name)
	}
	return nil
}
