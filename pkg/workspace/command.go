package workspace

import "strings"

// Multiplexer command tokens and flags emitted by the builders.
const (
	NewWindowCmd    = "new-window"
	SplitWindowCmd  = "split-window"
	SelectLayoutCmd = "select-layout"

	NameFlag       = "-n"
	PercentageFlag = "-p"
	TargetFlag     = "-t"
)

// Command is one multiplexer invocation, without the multiplexer binary.
type Command []string

// String renders the command the way a user would type it after `tmux`,
// quoting tokens that the shell would otherwise split or expand.
func (c Command) String() string {
	parts := make([]string, len(c))
	for i, tok := range c {
		parts[i] = shellQuote(tok)
	}
	return strings.Join(parts, " ")
}

func (c Command) clone() Command {
	if c == nil {
		return nil
	}
	out := make(Command, len(c))
	copy(out, c)
	return out
}

func shellQuote(s string) string {
	if s == "" {
		return "''"
	}
	if strings.IndexFunc(s, needsQuote) < 0 {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'"'"'`) + "'"
}

func needsQuote(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return false
	}
	return !strings.ContainsRune("-_./:=,@%+", r)
}
