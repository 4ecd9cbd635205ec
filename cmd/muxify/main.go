package main

import (
	"fmt"
	"os"

	"github.com/grovetools/core/version"
	"github.com/spf13/cobra"
)

var (
	configFile   string
	workspaceDir string
	tmuxBinary   string
	tmuxSocket   string
	verbose      bool
	listFlag     bool
)

var rootCmd = &cobra.Command{
	Use:   "muxify [workspace]",
	Short: "Recreate tmux workspaces from definition files",
	Long: `Create the windows and panes of a workspace definition inside the active tmux session.

Workspaces are read from the workspace directory (default ~/.workspaces), one
definition per file. Without arguments the default workspace is launched.

Examples:
  # Launch the default workspace
  muxify

  # Launch a named workspace
  muxify backend

  # List available workspaces
  muxify --list`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if listFlag {
			return listWorkspaces(cmd)
		}
		name := ""
		if len(args) == 1 {
			name = args[0]
		}
		return runWorkspace(cmd, name, false)
	},
}

func init() {
	// --version prints the full build info instead of a separate subcommand.
	vInfo := version.GetInfo()
	rootCmd.Version = vInfo.Version
	rootCmd.SetVersionTemplate(vInfo.String() + "\n")

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default: ~/.config/muxify/config.toml)")
	rootCmd.PersistentFlags().StringVar(&workspaceDir, "workspace-dir", "", "Directory containing workspace definitions (overrides config)")
	rootCmd.PersistentFlags().StringVar(&tmuxBinary, "tmux", "", "tmux executable (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&tmuxSocket, "socket", "L", "", "tmux server socket name (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every tmux command")

	rootCmd.Flags().BoolVarP(&listFlag, "list", "l", false, "List available workspaces and exit")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(schemaCmd)
}

func run() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run())
}
