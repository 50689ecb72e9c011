package commands

import (
	"context"
	"fmt"

	"github.com/githoney/bounty-bot/internal/models"
	"github.com/githoney/bounty-bot/internal/responses"
	"github.com/githoney/bounty-bot/pkg/logger"
)

// handleSponsorBounty adds extra rewards to the bounty attached to the
// issue. Calls POST {backend}/bounty/sponsor.
func (b *Bot) handleSponsorBounty(ctx context.Context, p Platform, cc *CommandContext, cmd *models.Command) {
	var fieldErrs []models.FieldError

	tokensRaw := requiredFlag(cmd, "tokens", &fieldErrs)

	var tokens []models.TokenAmount
	if tokensRaw != "" {
		parsed, err := ParseTokens(tokensRaw)
		if err != nil {
			fieldErrs = append(fieldErrs, models.FieldError{Path: "tokens", Message: err.Error()})
		}
		tokens = parsed
	}

	if len(fieldErrs) > 0 {
		b.rejectWithFieldErrors(ctx, p, cc, fieldErrs)
		return
	}

	b.acknowledge(ctx, p, cc.Comment.ID)

	if !OnlyADA(tokens) {
		b.reply(ctx, p, cc.Artifact.Number, responses.PleaseUseADA)
		return
	}

	sponsor, err := p.GetUserData(ctx, cc.Comment.Author)
	if err != nil {
		b.reconcile(ctx, p, err, cc.Artifact.Number, cc.Comment.ID, false)
		return
	}
	org, err := p.GetOrgData(ctx, p.Owner())
	if err != nil {
		b.reconcile(ctx, p, err, cc.Artifact.Number, cc.Comment.ID, false)
		return
	}
	repo, err := p.GetRepoData(ctx, p.Owner(), p.Repo())
	if err != nil {
		b.reconcile(ctx, p, err, cc.Artifact.Number, cc.Comment.ID, false)
		return
	}

	payload := &models.SponsorBountyPayload{
		Tokens:       tokens,
		IssueNumber:  cc.Artifact.Number,
		Platform:     models.Platform,
		Sponsor:      sponsor,
		Organization: org,
		Repository:   repo,
	}

	var result struct {
		Data struct {
			Bounty    models.Bounty `json:"bounty"`
			SponsorID int64         `json:"sponsorId"`
		} `json:"data"`
	}
	if err := b.backend.Call(ctx, "bounty/sponsor", payload, &result); err != nil {
		b.reconcile(ctx, p, err, cc.Artifact.Number, cc.Comment.ID, false)
		return
	}

	logger.WithField("bounty", result.Data.Bounty.ID).Info("Bounty sponsored")

	signURL := fmt.Sprintf("%s/bounty/sign/%d/funding?fundingId=%d",
		b.frontendURL, result.Data.Bounty.ID, result.Data.SponsorID)
	b.reply(ctx, p, cc.Artifact.Number, responses.SponsorBountySuccess(signURL))
}
