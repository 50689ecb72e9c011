package commands

import (
	"context"
	"strconv"

	"github.com/githoney/bounty-bot/internal/models"
	"github.com/githoney/bounty-bot/internal/responses"
	"github.com/githoney/bounty-bot/pkg/logger"
)

// requiredFlag returns the flag value, appending a field error when it
// is missing or empty.
func requiredFlag(cmd *models.Command, name string, errs *[]models.FieldError) string {
	value, ok := cmd.Flag(name)
	if !ok || value == "" {
		*errs = append(*errs, models.FieldError{Path: name, Message: "is required"})
		return ""
	}
	return value
}

// requiredInt64Flag returns the flag parsed as an integer id.
func requiredInt64Flag(cmd *models.Command, name string, errs *[]models.FieldError) int64 {
	value := requiredFlag(cmd, name, errs)
	if value == "" {
		return 0
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		*errs = append(*errs, models.FieldError{Path: name, Message: "must be a number"})
		return 0
	}
	return parsed
}

// requiredDaysFlag returns the flag parsed as a positive day count.
func requiredDaysFlag(cmd *models.Command, name string, errs *[]models.FieldError) int {
	value := requiredFlag(cmd, name, errs)
	if value == "" {
		return 0
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		*errs = append(*errs, models.FieldError{Path: name, Message: "must be a positive number of days"})
		return 0
	}
	return parsed
}

// rejectWithFieldErrors handles a bot-side validation failure: one -1
// reaction plus an itemized reply. Runs before the acknowledgement, so
// the comment ends up with exactly one reaction.
func (b *Bot) rejectWithFieldErrors(ctx context.Context, p Platform, cc *CommandContext, errs []models.FieldError) {
	if err := p.RejectCommand(ctx, cc.Comment.ID); err != nil {
		logger.WithError(err).Warn("Failed to post reject reaction")
	}
	b.reply(ctx, p, cc.Artifact.Number, responses.ParametersWrong(errs))
}

// acknowledge posts the +1 receipt reaction. Best effort: handling
// continues even when the reaction fails.
func (b *Bot) acknowledge(ctx context.Context, p Platform, commentID int64) {
	if err := p.AcknowledgeCommand(ctx, commentID); err != nil {
		logger.WithError(err).Warn("Failed to post acknowledge reaction")
	}
}
