package commands

import (
	"context"
	"fmt"

	"github.com/githoney/bounty-bot/internal/models"
	"github.com/githoney/bounty-bot/internal/responses"
	"github.com/githoney/bounty-bot/pkg/logger"
	"github.com/sirupsen/logrus"
)

// HandlePRMerged settles the bounty linked to a merged PR. On success it
// posts the claim reply on the PR and, when the backend reports the
// originating issue, a merged notice there too.
// Calls POST {backend}/bounty/merge.
func (b *Bot) HandlePRMerged(ctx context.Context, p Platform, prNumber int, ownerIsOrg bool) {
	log := logger.WithFields(logrus.Fields{"owner": p.Owner(), "repo": p.Repo(), "pr": prNumber})

	if !ownerIsOrg {
		log.Warn("Merge event on a personal installation")
		b.reply(ctx, p, prNumber, responses.UserInstallation)
		return
	}

	payload := &models.MergeBountyPayload{
		PRNumber: prNumber,
		OrgName:  p.Owner(),
		RepoName: p.Repo(),
		Platform: models.Platform,
	}

	var result struct {
		Data struct {
			Bounty      models.Bounty `json:"bounty"`
			TxID        string        `json:"txId"`
			IssueNumber int           `json:"issueNumber"`
		} `json:"data"`
	}
	if err := b.backend.Call(ctx, "bounty/merge", payload, &result); err != nil {
		b.reconcile(ctx, p, err, prNumber, 0, true)
		return
	}

	bounty := result.Data.Bounty
	log.WithField("bounty", bounty.ID).Info("Bounty merged")

	claimURL := fmt.Sprintf("%s/bounty/claim/%d", b.frontendURL, bounty.ID)
	b.reply(ctx, p, prNumber, responses.MergeBountySuccess(
		claimURL, b.txExplorerURL(result.Data.TxID), bounty.ID, b.frontendURL))

	if result.Data.IssueNumber > 0 {
		b.reply(ctx, p, result.Data.IssueNumber, responses.PullRequestMerged)
	}
}

// HandleClosed cancels the bounty when an issue or PR is closed without
// a merge. from is "issue" or "pr" so the backend can apply the matching
// cancellation authorization rule.
// Calls POST {backend}/bounty/cancel.
func (b *Bot) HandleClosed(ctx context.Context, p Platform, number int, from string, ownerIsOrg bool) {
	log := logger.WithFields(logrus.Fields{"owner": p.Owner(), "repo": p.Repo(), "number": number, "from": from})

	if !ownerIsOrg {
		log.Warn("Close event on a personal installation")
		b.reply(ctx, p, number, responses.UserInstallation)
		return
	}

	payload := &models.CancelBountyPayload{
		Number:   number,
		From:     from,
		OrgName:  p.Owner(),
		RepoName: p.Repo(),
		Platform: models.Platform,
	}

	var result struct {
		Data struct {
			Bounty models.Bounty `json:"bounty"`
			TxID   string        `json:"txId"`
		} `json:"data"`
	}
	if err := b.backend.Call(ctx, "bounty/cancel", payload, &result); err != nil {
		b.reconcile(ctx, p, err, number, 0, true)
		return
	}

	bounty := result.Data.Bounty
	log.WithField("bounty", bounty.ID).Info("Bounty cancelled")

	if result.Data.TxID == "" {
		b.reply(ctx, p, number, responses.CloseBountySuccessWithoutTx)
		return
	}
	b.reply(ctx, p, number, responses.CloseBountySuccess(
		b.txExplorerURL(result.Data.TxID), from == "pr", bounty.ID, b.frontendURL))
}

// RecordInstallation forwards an organization/repository registration to
// the onboarding metrics backend. Failures are logged and swallowed;
// onboarding never replies on the platform.
func (b *Bot) RecordInstallation(ctx context.Context, org string, repos []string) {
	payload := &models.InstallationPayload{
		Organization: org,
		Repositories: repos,
		Platform:     models.Platform,
	}
	if err := b.backend.Call(ctx, "metrics/installation", payload, nil); err != nil {
		logger.WithError(err).WithField("organization", org).Warn("Failed to record installation")
	}
}
