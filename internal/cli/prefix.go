// Package cli provides CLI infrastructure for cb.
package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// MatchCommand finds a unique command from a prefix.
// Returns the matched command or an error if ambiguous or no match.
func MatchCommand(prefix string, commands []string) (string, error) {
	prefix = strings.ToLower(strings.TrimSpace(prefix))

	for _, cmd := range commands {
		if strings.ToLower(cmd) == prefix {
			return cmd, nil
		}
	}

	var matches []string
	for _, cmd := range commands {
		if strings.HasPrefix(strings.ToLower(cmd), prefix) {
			matches = append(matches, cmd)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("unknown command %q", prefix)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("ambiguous command %q matches: %s", prefix, strings.Join(matches, ", "))
	}
}

// MatchChoice resolves a menu answer against numbered options.
// The answer may be the 1-based option number or a unique prefix of its name.
func MatchChoice(answer string, options []string) (string, error) {
	answer = strings.TrimSpace(answer)
	if n, err := strconv.Atoi(answer); err == nil {
		if n < 1 || n > len(options) {
			return "", fmt.Errorf("choice %d out of range (1-%d)", n, len(options))
		}
		return options[n-1], nil
	}
	return MatchCommand(answer, options)
}
