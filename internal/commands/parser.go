package commands

import (
	"strings"

	"github.com/githoney/bounty-bot/internal/models"
)

// ParseCommand splits a comment body into a command name, positional
// arguments and --flag values. The boolean result reports whether the
// comment was directed at the bot at all; bodies without the mention
// prefix are ignored with no side effects.
func ParseCommand(body, mention string) (*models.Command, bool) {
	fields := strings.Fields(body)
	if len(fields) == 0 || fields[0] != mention {
		return nil, false
	}

	cmd := &models.Command{Flags: make(map[string]string)}
	args := fields[1:]

	for i := 0; i < len(args); i++ {
		token := args[i]
		if !strings.HasPrefix(token, "--") {
			cmd.Positional = append(cmd.Positional, token)
			continue
		}

		key := strings.TrimPrefix(token, "--")
		if key == "" {
			continue
		}

		// --key=value form
		if name, value, found := strings.Cut(key, "="); found {
			cmd.Flags[name] = value
			continue
		}

		// --key value form; a flag followed by another flag has no value
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "--") {
			cmd.Flags[key] = args[i+1]
			i++
		} else {
			cmd.Flags[key] = ""
		}
	}

	if len(cmd.Positional) > 0 {
		cmd.Name = cmd.Positional[0]
	}

	return cmd, true
}
