package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/githoney/bounty-bot/internal/models"
	"github.com/githoney/bounty-bot/internal/responses"
	"github.com/githoney/bounty-bot/pkg/logger"
)

const oneDayMS = int64(24 * time.Hour / time.Millisecond)

// handleCreateBounty creates a bounty on the issue the command was
// issued on. Calls POST {backend}/bounty.
func (b *Bot) handleCreateBounty(ctx context.Context, p Platform, cc *CommandContext, cmd *models.Command) {
	var fieldErrs []models.FieldError

	tokensRaw := requiredFlag(cmd, "tokens", &fieldErrs)
	durationDays := requiredDaysFlag(cmd, "duration", &fieldErrs)

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

	// Currency rule runs after the ack: fast receipt, then feedback
	if !OnlyADA(tokens) {
		b.reply(ctx, p, cc.Artifact.Number, responses.PleaseUseADA)
		return
	}

	network := b.network
	if value, ok := cmd.Flag("network"); ok && value != "" {
		network = strings.ToLower(value)
	}

	creator, err := p.GetUserData(ctx, cc.Comment.Author)
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

	durationMS := int64(durationDays) * oneDayMS
	deadline := b.now().Add(time.Duration(durationMS) * time.Millisecond)

	payload := &models.CreateBountyPayload{
		Tokens:       tokens,
		Title:        cc.Artifact.Title,
		Description:  cc.Artifact.Description,
		Duration:     durationMS,
		Creator:      creator,
		Organization: org,
		Repository:   repo,
		Network:      network,
		Platform:     models.Platform,
		Categories:   cc.Artifact.Labels,
		Issue:        cc.Artifact.Number,
		IssueURL:     cc.Artifact.URL,
	}

	var result struct {
		Data struct {
			Bounty    models.Bounty `json:"bounty"`
			FundingID int64         `json:"fundingId"`
		} `json:"data"`
	}
	if err := b.backend.Call(ctx, "bounty", payload, &result); err != nil {
		b.reconcile(ctx, p, err, cc.Artifact.Number, cc.Comment.ID, false)
		return
	}

	bounty := result.Data.Bounty
	logger.WithField("bounty", bounty.ID).Info("Bounty created")

	signURL := fmt.Sprintf("%s/bounty/sign/%d/create?fundingId=%d", b.frontendURL, bounty.ID, result.Data.FundingID)
	amount := adaTotal(tokens)

	b.reply(ctx, p, cc.Artifact.Number, responses.CreateBountySuccess(
		amount, bounty.ID, deadline, signURL, network != "mainnet"))

	if b.announcer != nil {
		b.announcer.AnnounceBounty(amount, p.Owner(), p.Repo(), cc.Artifact.Number, deadline)
	}
}
