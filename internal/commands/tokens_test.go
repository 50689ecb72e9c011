package commands

import (
	"testing"

	"github.com/githoney/bounty-bot/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTokens(t *testing.T) {
	t.Run("Single ADA entry", func(t *testing.T) {
		tokens, err := ParseTokens("ADA=200")
		require.NoError(t, err)
		assert.Equal(t, []models.TokenAmount{{Name: "ADA", Amount: 200}}, tokens)
	})

	t.Run("Multiple entries", func(t *testing.T) {
		tokens, err := ParseTokens("ADA=100&ADA=50.5")
		require.NoError(t, err)
		require.Len(t, tokens, 2)
		assert.Equal(t, 50.5, tokens[1].Amount)
	})

	t.Run("Missing equals", func(t *testing.T) {
		_, err := ParseTokens("ADA200")
		assert.Error(t, err)
	})

	t.Run("Missing amount", func(t *testing.T) {
		_, err := ParseTokens("ADA=")
		assert.Error(t, err)
	})

	t.Run("Non numeric amount", func(t *testing.T) {
		_, err := ParseTokens("ADA=lots")
		assert.Error(t, err)
	})

	t.Run("Zero amount", func(t *testing.T) {
		_, err := ParseTokens("ADA=0")
		assert.Error(t, err)
	})

	t.Run("Negative amount", func(t *testing.T) {
		_, err := ParseTokens("ADA=-5")
		assert.Error(t, err)
	})

	t.Run("Foreign symbols parse structurally", func(t *testing.T) {
		tokens, err := ParseTokens("BTC=5")
		require.NoError(t, err)
		assert.False(t, OnlyADA(tokens))
	})
}

func TestOnlyADA(t *testing.T) {
	t.Run("Case insensitive", func(t *testing.T) {
		tokens, err := ParseTokens("ada=10&Ada=20&ADA=30")
		require.NoError(t, err)
		assert.True(t, OnlyADA(tokens))
	})

	t.Run("One foreign symbol invalidates the list", func(t *testing.T) {
		tokens, err := ParseTokens("ADA=10&BTC=1")
		require.NoError(t, err)
		assert.False(t, OnlyADA(tokens))
	})

	t.Run("Empty list is ADA only", func(t *testing.T) {
		assert.True(t, OnlyADA(nil))
	})
}

func TestAdaTotal(t *testing.T) {
	tokens, err := ParseTokens("ADA=100&ada=50")
	require.NoError(t, err)
	assert.Equal(t, 150.0, adaTotal(tokens))
}
