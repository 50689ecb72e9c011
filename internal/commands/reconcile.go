package commands

import (
	"context"
	"errors"
	"net/http"

	"github.com/githoney/bounty-bot/internal/models"
	"github.com/githoney/bounty-bot/internal/responses"
	"github.com/githoney/bounty-bot/pkg/logger"
)

// botCodeResponses maps each backend domain-rejection code to its fixed
// user-facing notice.
var botCodeResponses = map[models.BotCode]string{
	models.BotCodeBountyAlreadyExists:   responses.AlreadyExistingBounty,
	models.BotCodeBountyTaken:           responses.AlreadyAssignedBounty,
	models.BotCodeBountyNotFound:        responses.BountyNotFound,
	models.BotCodeBountyHashNotFound:    responses.BountyHashNotFound,
	models.BotCodeCloseWrongFrom:        responses.CloseWrongFrom,
	models.BotCodeNotOpenForFunding:     responses.BountyNotOpenToSponsor,
	models.BotCodeNoSubmissionsFound:    responses.BountyStillOpen,
	models.BotCodeBountyAlreadyAccepted: responses.BountyAccepted,
}

// reconcile maps a backend or transport failure to exactly one
// user-facing response. The classification order matters:
//
//  1. transport error (no HTTP response): internal-error notice
//  2. 400 with a comment to react to: reject + itemized field errors
//  3. mapped botCode: its fixed notice, even on a generic 4xx status
//  4. unmapped code on a lifecycle event: swallowed, benign race
//  5. other client error (401-499): backend message in a fixed wrapper
//  6. anything else (5xx, unknown): internal-error notice
func (b *Bot) reconcile(ctx context.Context, p Platform, err error, issueNumber int, commentID int64, isPRAction bool) {
	log := logger.WithError(err).WithField("issue", issueNumber)

	var backendErr *models.BackendError
	if !errors.As(err, &backendErr) {
		log.Error("Transport or platform failure")
		b.reply(ctx, p, issueNumber, responses.InternalError)
		return
	}

	log.WithField("status", backendErr.Status).Warn("Backend rejected the request")

	if backendErr.Status == http.StatusBadRequest && commentID != 0 {
		if rejectErr := p.RejectCommand(ctx, commentID); rejectErr != nil {
			logger.WithError(rejectErr).Warn("Failed to post reject reaction")
		}
		b.reply(ctx, p, issueNumber, responses.ParametersWrong(backendErr.FieldErrors))
		return
	}

	if notice, ok := botCodeResponses[backendErr.BotCode]; ok {
		b.reply(ctx, p, issueNumber, notice)
		return
	}

	if isPRAction {
		// Lifecycle events stay quiet on codes that only mean "nothing to do"
		return
	}

	if backendErr.Status > http.StatusBadRequest && backendErr.Status < http.StatusInternalServerError {
		b.reply(ctx, p, issueNumber, responses.BackendTrouble(backendErr.Message))
		return
	}

	b.reply(ctx, p, issueNumber, responses.InternalError)
}
