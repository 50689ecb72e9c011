package models

// CommandName identifies a bot command issued in a comment.
type CommandName string

const (
	CommandCreateBounty  CommandName = "create-bounty"
	CommandSponsorBounty CommandName = "sponsor-bounty"
	CommandAcceptBounty  CommandName = "accept-bounty"
	CommandLinkBounty    CommandName = "link-bounty"
	CommandReclaimBounty CommandName = "reclaim-bounty"
	CommandHelp          CommandName = "help"
)

// KnownCommands lists every command the bot understands.
var KnownCommands = []CommandName{
	CommandCreateBounty,
	CommandSponsorBounty,
	CommandAcceptBounty,
	CommandLinkBounty,
	CommandReclaimBounty,
	CommandHelp,
}

// Command is the parsed form of a bot-directed comment.
type Command struct {
	Name       string
	Positional []string
	Flags      map[string]string
}

// Recognized reports whether the command name is one the bot understands.
func (c *Command) Recognized() bool {
	for _, name := range KnownCommands {
		if string(name) == c.Name {
			return true
		}
	}
	return false
}

// Flag returns the value of a named flag and whether it was supplied.
func (c *Command) Flag(name string) (string, bool) {
	value, ok := c.Flags[name]
	return value, ok
}

// NoArgs reports whether the command carries no flags and no extra
// positional tokens, the "recognized command, no args" telemetry case.
func (c *Command) NoArgs() bool {
	return len(c.Flags) == 0 && len(c.Positional) == 1
}
