package commands

import (
	"context"
	"fmt"

	"github.com/githoney/bounty-bot/internal/models"
	"github.com/githoney/bounty-bot/internal/responses"
	"github.com/githoney/bounty-bot/pkg/logger"
)

// handleAcceptBounty assigns the commenter to a bounty. The bot does not
// validate address format; the backend is authoritative for address and
// network validation. Calls POST {backend}/bounty/assign.
func (b *Bot) handleAcceptBounty(ctx context.Context, p Platform, cc *CommandContext, cmd *models.Command) {
	var fieldErrs []models.FieldError

	bountyID := requiredInt64Flag(cmd, "bountyId", &fieldErrs)
	address := requiredFlag(cmd, "address", &fieldErrs)

	if len(fieldErrs) > 0 {
		b.rejectWithFieldErrors(ctx, p, cc, fieldErrs)
		return
	}

	b.acknowledge(ctx, p, cc.Comment.ID)

	assignee, err := p.GetUserData(ctx, cc.Comment.Author)
	if err != nil {
		b.reconcile(ctx, p, err, cc.Artifact.Number, cc.Comment.ID, false)
		return
	}

	payload := &models.AssignBountyPayload{
		BountyID:    bountyID,
		Assignee:    assignee,
		Address:     address,
		Platform:    models.Platform,
		IssueNumber: cc.Artifact.Number,
	}

	var result struct {
		Data struct {
			Bounty models.Bounty `json:"bounty"`
		} `json:"data"`
	}
	if err := b.backend.Call(ctx, "bounty/assign", payload, &result); err != nil {
		b.reconcile(ctx, p, err, cc.Artifact.Number, cc.Comment.ID, false)
		return
	}

	logger.WithField("bounty", result.Data.Bounty.ID).Info("Bounty accepted")

	signURL := fmt.Sprintf("%s/bounty/sign/%d/assign", b.frontendURL, result.Data.Bounty.ID)
	b.reply(ctx, p, cc.Artifact.Number, responses.AcceptBountySuccess(signURL))
}
