package main

import (
	"context"
	"fmt"

	grovelogging "github.com/grovetools/core/logging"
	"github.com/grovetools/core/tui/theme"
	"github.com/spf13/cobra"

	"github.com/grovetools/muxify/internal/launcher"
)

var ulogRun = grovelogging.NewUnifiedLogger("muxify.run")

var runDryRun bool

var runCmd = &cobra.Command{
	Use:   "run [workspace]",
	Short: "Create a workspace in the active tmux session",
	Long: `Create the windows and panes of a workspace in the active tmux session.

The session must already exist; muxify only adds windows to it. Commands run
in order and the first failing command stops the launch. Windows created
before the failure are left in place.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) == 1 {
			name = args[0]
		}
		return runWorkspace(cmd, name, runDryRun)
	},
}

func init() {
	runCmd.Flags().BoolVarP(&runDryRun, "dry-run", "n", false, "Print the tmux commands instead of running them")
}

func runWorkspace(cmd *cobra.Command, name string, dryRun bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if name == "" {
		name = cfg.DefaultWorkspace
	}

	logger := newLogger()
	c, err := loadCatalog(cfg, logger)
	if err != nil {
		return err
	}

	if dryRun {
		ws, err := c.Find(name)
		if err != nil {
			return err
		}
		return printStream(cmd.OutOrStdout(), ws)
	}

	// Resolve before touching tmux so an unknown name never needs a server.
	if _, err := c.Find(name); err != nil {
		return err
	}

	ctx := context.Background()
	client, err := newTmuxClient(cfg)
	if err != nil {
		return err
	}
	active, err := client.HasActiveSession(ctx)
	if err != nil {
		return fmt.Errorf("failed to check for a tmux session: %w", err)
	}
	if !active {
		return fmt.Errorf("no active tmux session: start tmux before launching %s", name)
	}

	if err := launcher.New(c, client, logger).Launch(ctx, name); err != nil {
		return err
	}

	ulogRun.Success("Workspace created").
		Field("workspace", name).
		Field("workspace_dir", cfg.ResolvedWorkspaceDir()).
		Pretty(fmt.Sprintf("%s Workspace '%s' created", theme.IconSuccess, name)).
		PrettyOnly().
		Emit()
	return nil
}
