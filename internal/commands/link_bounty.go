package commands

import (
	"context"

	"github.com/githoney/bounty-bot/internal/models"
	"github.com/githoney/bounty-bot/internal/responses"
	"github.com/githoney/bounty-bot/pkg/logger"
)

// handleLinkBounty links the current PR to a bounty. The contributor is
// the commenter, resolved to a full profile before sending. Calls POST
// {backend}/bounty/link.
func (b *Bot) handleLinkBounty(ctx context.Context, p Platform, cc *CommandContext, cmd *models.Command) {
	var fieldErrs []models.FieldError

	bountyID := requiredInt64Flag(cmd, "bountyId", &fieldErrs)

	if len(fieldErrs) > 0 {
		b.rejectWithFieldErrors(ctx, p, cc, fieldErrs)
		return
	}

	b.acknowledge(ctx, p, cc.Comment.ID)

	contributor, err := p.GetUserData(ctx, cc.Comment.Author)
	if err != nil {
		b.reconcile(ctx, p, err, cc.Artifact.Number, cc.Comment.ID, false)
		return
	}

	payload := &models.LinkBountyPayload{
		BountyID:    bountyID,
		Contributor: contributor,
		PRNumber:    cc.Artifact.Number,
		Platform:    models.Platform,
	}

	if err := b.backend.Call(ctx, "bounty/link", payload, nil); err != nil {
		b.reconcile(ctx, p, err, cc.Artifact.Number, cc.Comment.ID, false)
		return
	}

	logger.WithField("bounty", bountyID).Info("Bounty linked")
	b.reply(ctx, p, cc.Artifact.Number, responses.BountyLinked)
}
