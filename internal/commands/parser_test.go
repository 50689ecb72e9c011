package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	t.Run("Not directed to bot", func(t *testing.T) {
		cmd, directed := ParseCommand("just a regular comment", "/githoney")
		assert.False(t, directed)
		assert.Nil(t, cmd)
	})

	t.Run("Mention must be the first token", func(t *testing.T) {
		_, directed := ParseCommand("please run /githoney help", "/githoney")
		assert.False(t, directed)
	})

	t.Run("Mention with no command", func(t *testing.T) {
		cmd, directed := ParseCommand("/githoney", "/githoney")
		assert.True(t, directed)
		assert.Empty(t, cmd.Name)
		assert.Empty(t, cmd.Positional)
	})

	t.Run("Command with flags", func(t *testing.T) {
		cmd, directed := ParseCommand("/githoney create-bounty --tokens ADA=200 --duration 14", "/githoney")
		assert.True(t, directed)
		assert.Equal(t, "create-bounty", cmd.Name)
		assert.Equal(t, []string{"create-bounty"}, cmd.Positional)
		assert.Equal(t, "ADA=200", cmd.Flags["tokens"])
		assert.Equal(t, "14", cmd.Flags["duration"])
	})

	t.Run("Equals form flags", func(t *testing.T) {
		cmd, _ := ParseCommand("/githoney create-bounty --tokens=ADA=200 --duration=7", "/githoney")
		assert.Equal(t, "ADA=200", cmd.Flags["tokens"])
		assert.Equal(t, "7", cmd.Flags["duration"])
	})

	t.Run("Flag followed by another flag has empty value", func(t *testing.T) {
		cmd, _ := ParseCommand("/githoney accept-bounty --bountyId --address addr1xyz", "/githoney")
		assert.Equal(t, "", cmd.Flags["bountyId"])
		assert.Equal(t, "addr1xyz", cmd.Flags["address"])
	})

	t.Run("Extra whitespace is ignored", func(t *testing.T) {
		cmd, directed := ParseCommand("  /githoney   help  ", "/githoney")
		assert.True(t, directed)
		assert.Equal(t, "help", cmd.Name)
	})

	t.Run("No args detection", func(t *testing.T) {
		cmd, _ := ParseCommand("/githoney create-bounty", "/githoney")
		assert.True(t, cmd.NoArgs())

		cmd, _ = ParseCommand("/githoney create-bounty --duration 3", "/githoney")
		assert.False(t, cmd.NoArgs())
	})

	t.Run("Unknown command still parses", func(t *testing.T) {
		cmd, directed := ParseCommand("/githoney dance", "/githoney")
		assert.True(t, directed)
		assert.Equal(t, "dance", cmd.Name)
		assert.False(t, cmd.Recognized())
	})

	t.Run("Custom mention", func(t *testing.T) {
		cmd, directed := ParseCommand("/honeybot help", "/honeybot")
		assert.True(t, directed)
		assert.Equal(t, "help", cmd.Name)

		_, directed = ParseCommand("/githoney help", "/honeybot")
		assert.False(t, directed)
	})
}
