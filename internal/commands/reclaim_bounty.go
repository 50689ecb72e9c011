package commands

import (
	"context"
	"fmt"

	"github.com/githoney/bounty-bot/internal/models"
	"github.com/githoney/bounty-bot/internal/responses"
)

// handleReclaimBounty points the maintainer at the withdraw flow for an
// expired bounty. No backend call is involved; the withdrawal itself
// happens on the frontend.
func (b *Bot) handleReclaimBounty(ctx context.Context, p Platform, cc *CommandContext, cmd *models.Command) {
	var fieldErrs []models.FieldError

	bountyID := requiredInt64Flag(cmd, "bountyId", &fieldErrs)
	address := requiredFlag(cmd, "address", &fieldErrs)

	if len(fieldErrs) > 0 {
		b.rejectWithFieldErrors(ctx, p, cc, fieldErrs)
		return
	}

	b.acknowledge(ctx, p, cc.Comment.ID)

	signURL := fmt.Sprintf("%s/bounty/sign/%d/reclaim", b.frontendURL, bountyID)
	b.reply(ctx, p, cc.Artifact.Number, responses.ReclaimBountyInfo(bountyID, address, signURL))
}
