// Package tmux provides a small Go client for the tmux binary.
//
// The client runs one tmux command per call and is the command runner used to
// execute workspace command streams. It also answers the session questions the
// launcher needs before running a stream:
//   - Check session existence, or whether any session is active
//   - List windows and count panes
//   - Create and kill sessions on a private socket (tests)
//
// Example usage:
//
//	client, err := tmux.NewClient()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := client.Run(ctx, []string{"new-window", "-n", "logs"}); err != nil {
//	    log.Fatal(err)
//	}
package tmux
