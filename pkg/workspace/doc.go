// Package workspace compiles workspace definitions into the ordered tmux
// commands that recreate them inside the active session.
//
// A workspace is a list of windows, each with optional panes and a layout.
// Compiling never touches tmux; Create returns the command stream and Execute
// hands it to a Runner one command at a time.
//
// For each window the stream contains:
//   - new-window [-n <name>] [<command>]
//   - split-window -h|-v [-p <percentage>] [-t <target>] [<command>] per pane
//   - select-layout <layout>, after every pane exists
//
// Example usage:
//
//	ws, err := workspace.ParseFile("~/.workspaces/default.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	client, err := tmux.NewClient()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := workspace.Execute(ctx, client, ws.Create()); err != nil {
//	    log.Fatal(err)
//	}
package workspace
