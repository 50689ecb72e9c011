package commands

import (
	"context"
	"testing"

	"github.com/githoney/bounty-bot/internal/models"
	"github.com/githoney/bounty-bot/internal/responses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlePRMerged(t *testing.T) {
	t.Run("Success posts claim reply and issue notice", func(t *testing.T) {
		backend := &fakeBackend{
			response: map[string]interface{}{
				"data": map[string]interface{}{
					"bounty":      map[string]interface{}{"id": 31},
					"txId":        "deadbeef",
					"issueNumber": 42,
				},
			},
		}
		bot := newTestBot(backend)
		platform := newFakePlatform()

		bot.HandlePRMerged(context.Background(), platform, 55, true)

		require.Equal(t, []string{"bounty/merge"}, backend.endpoints())
		payload := backend.calls[0].payload.(*models.MergeBountyPayload)
		assert.Equal(t, 55, payload.PRNumber)
		assert.Equal(t, "honey-org", payload.OrgName)
		assert.Equal(t, "honey-repo", payload.RepoName)

		require.Len(t, platform.replies, 2)
		assert.Equal(t, 55, platform.replies[0].number)
		assert.Contains(t, platform.replies[0].body, "https://front.test/bounty/claim/31")
		assert.Contains(t, platform.replies[0].body, "https://preprod.cexplorer.io/tx/deadbeef")
		assert.Equal(t, 42, platform.replies[1].number)
		assert.Equal(t, responses.PullRequestMerged, platform.replies[1].body)
	})

	t.Run("No linked issue means single reply", func(t *testing.T) {
		backend := &fakeBackend{
			response: map[string]interface{}{
				"data": map[string]interface{}{
					"bounty": map[string]interface{}{"id": 31},
					"txId":   "deadbeef",
				},
			},
		}
		bot := newTestBot(backend)
		platform := newFakePlatform()

		bot.HandlePRMerged(context.Background(), platform, 55, true)

		require.Len(t, platform.replies, 1)
		assert.Equal(t, 55, platform.replies[0].number)
	})

	t.Run("Personal installation", func(t *testing.T) {
		backend := &fakeBackend{}
		bot := newTestBot(backend)
		platform := newFakePlatform()

		bot.HandlePRMerged(context.Background(), platform, 55, false)

		assert.Empty(t, backend.calls)
		require.Len(t, platform.replies, 1)
		assert.Equal(t, responses.UserInstallation, platform.replies[0].body)
	})

	t.Run("Unmapped code is swallowed", func(t *testing.T) {
		backend := &fakeBackend{
			err: &models.BackendError{Status: 404, BotCode: "nothing-to-do"},
		}
		bot := newTestBot(backend)
		platform := newFakePlatform()

		bot.HandlePRMerged(context.Background(), platform, 55, true)

		// Lifecycle events must not spam PR threads on benign races
		assert.Empty(t, platform.replies)
	})
}

func TestHandleClosed(t *testing.T) {
	t.Run("Closed from issue side", func(t *testing.T) {
		backend := &fakeBackend{
			response: map[string]interface{}{
				"data": map[string]interface{}{
					"bounty": map[string]interface{}{"id": 13},
					"txId":   "cafe01",
				},
			},
		}
		bot := newTestBot(backend)
		platform := newFakePlatform()

		bot.HandleClosed(context.Background(), platform, 42, "issue", true)

		require.Equal(t, []string{"bounty/cancel"}, backend.endpoints())
		payload := backend.calls[0].payload.(*models.CancelBountyPayload)
		assert.Equal(t, "issue", payload.From)
		assert.Equal(t, 42, payload.Number)

		require.Len(t, platform.replies, 1)
		assert.Contains(t, platform.replies[0].body, "The bounty has been closed!")
		assert.Contains(t, platform.replies[0].body, "https://preprod.cexplorer.io/tx/cafe01")
	})

	t.Run("Closed from PR side uses rejection phrasing", func(t *testing.T) {
		backend := &fakeBackend{
			response: map[string]interface{}{
				"data": map[string]interface{}{
					"bounty": map[string]interface{}{"id": 13},
					"txId":   "cafe01",
				},
			},
		}
		bot := newTestBot(backend)
		platform := newFakePlatform()

		bot.HandleClosed(context.Background(), platform, 55, "pr", true)

		require.Len(t, platform.replies, 1)
		assert.Contains(t, platform.replies[0].body, "your PR was not accepted")
	})

	t.Run("No transaction hash", func(t *testing.T) {
		backend := &fakeBackend{
			response: map[string]interface{}{
				"data": map[string]interface{}{
					"bounty": map[string]interface{}{"id": 13},
				},
			},
		}
		bot := newTestBot(backend)
		platform := newFakePlatform()

		bot.HandleClosed(context.Background(), platform, 42, "issue", true)

		require.Len(t, platform.replies, 1)
		assert.Equal(t, responses.CloseBountySuccessWithoutTx, platform.replies[0].body)
	})

	t.Run("Personal installation makes no backend call", func(t *testing.T) {
		backend := &fakeBackend{}
		bot := newTestBot(backend)
		platform := newFakePlatform()

		bot.HandleClosed(context.Background(), platform, 42, "issue", false)

		assert.Empty(t, backend.calls)
		require.Len(t, platform.replies, 1)
		assert.Equal(t, responses.UserInstallation, platform.replies[0].body)
	})

	t.Run("Wrong close side", func(t *testing.T) {
		backend := &fakeBackend{
			err: &models.BackendError{Status: 409, BotCode: models.BotCodeCloseWrongFrom},
		}
		bot := newTestBot(backend)
		platform := newFakePlatform()

		bot.HandleClosed(context.Background(), platform, 42, "issue", true)

		require.Len(t, platform.replies, 1)
		assert.Equal(t, responses.CloseWrongFrom, platform.replies[0].body)
	})
}
