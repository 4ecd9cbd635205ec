package tmux

import (
	"context"
	"os"
	"strings"
)

// SessionExists reports whether sessionName exists. An empty name asks
// whether the server has any session at all.
func (c *Client) SessionExists(ctx context.Context, sessionName string) (bool, error) {
	args := []string{"has-session"}
	if sessionName != "" {
		args = append(args, "-t", sessionName)
	}
	_, err := c.run(ctx, args...)
	if err == nil {
		return true, nil
	}

	if strings.Contains(err.Error(), "exit status 1") {
		return false, nil
	}

	return false, err
}

// InsideSession reports whether the current process runs inside tmux.
func InsideSession() bool {
	return os.Getenv("TMUX") != ""
}

// HasActiveSession is true when commands without an explicit target have a
// session to act on.
func (c *Client) HasActiveSession(ctx context.Context) (bool, error) {
	if c.socket == "" && InsideSession() {
		return true, nil
	}
	return c.SessionExists(ctx, "")
}

// NewSession starts a detached session.
func (c *Client) NewSession(ctx context.Context, sessionName string) error {
	_, err := c.run(ctx, "new-session", "-d", "-s", sessionName)
	return err
}

func (c *Client) KillSession(ctx context.Context, sessionName string) error {
	_, err := c.run(ctx, "kill-session", "-t", sessionName)
	return err
}

// ListWindows returns the window names of sessionName in index order.
func (c *Client) ListWindows(ctx context.Context, sessionName string) ([]string, error) {
	output, err := c.run(ctx, "list-windows", "-t", sessionName, "-F", "#{window_name}")
	if err != nil {
		return nil, err
	}
	return splitLines(output), nil
}

// CountPanes returns the number of panes in target (a session or window).
func (c *Client) CountPanes(ctx context.Context, target string) (int, error) {
	output, err := c.run(ctx, "list-panes", "-t", target, "-F", "#{pane_index}")
	if err != nil {
		return 0, err
	}
	return len(splitLines(output)), nil
}

func splitLines(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
