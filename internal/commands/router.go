package commands

import (
	"context"

	"github.com/githoney/bounty-bot/internal/models"
	"github.com/githoney/bounty-bot/internal/responses"
	"github.com/githoney/bounty-bot/pkg/logger"
	"github.com/sirupsen/logrus"
)

// HandleComment runs the full pipeline for one inbound comment: mention
// detection, parsing, precondition gate and command dispatch. Every
// failure is converted to a reply here or below; nothing propagates to
// the webhook transport.
func (b *Bot) HandleComment(ctx context.Context, p Platform, cc *CommandContext) {
	cmd, directed := ParseCommand(cc.Comment.Body, b.mention)
	if !directed {
		logger.Debug("Skipping comment not directed to bot")
		return
	}

	log := logger.WithFields(logrus.Fields{
		"owner":   p.Owner(),
		"repo":    p.Repo(),
		"number":  cc.Artifact.Number,
		"command": cmd.Name,
	})

	if !cmd.Recognized() {
		log.Warn("Malformed or unknown command")
		if err := p.RejectCommand(ctx, cc.Comment.ID); err != nil {
			logger.WithError(err).Warn("Failed to post reject reaction")
		}
		b.reply(ctx, p, cc.Artifact.Number, responses.UnknownCommand(b.mention))
		b.recordWrongCommand(ctx, cmd, false)
		return
	}

	name := models.CommandName(cmd.Name)

	switch gate(name, cc.Artifact, cc.OwnerIsOrg) {
	case gateUserInstallation:
		log.Warn("Command on a personal installation")
		b.reply(ctx, p, cc.Artifact.Number, responses.UserInstallation)
		return
	case gateWrongUse:
		log.Warn("Command not valid for this artifact")
		b.reply(ctx, p, cc.Artifact.Number, responses.WrongCommandUse)
		return
	}

	if cmd.NoArgs() && name != models.CommandHelp {
		// Recognized command with no arguments: record it apart from
		// genuinely malformed input, then let validation produce the reply.
		b.recordWrongCommand(ctx, cmd, true)
	}

	log.Info("Handling command")

	switch name {
	case models.CommandCreateBounty:
		b.handleCreateBounty(ctx, p, cc, cmd)
	case models.CommandSponsorBounty:
		b.handleSponsorBounty(ctx, p, cc, cmd)
	case models.CommandAcceptBounty:
		b.handleAcceptBounty(ctx, p, cc, cmd)
	case models.CommandLinkBounty:
		b.handleLinkBounty(ctx, p, cc, cmd)
	case models.CommandReclaimBounty:
		b.handleReclaimBounty(ctx, p, cc, cmd)
	case models.CommandHelp:
		b.reply(ctx, p, cc.Artifact.Number, responses.Help(b.mention))
	}
}

// recordWrongCommand forwards a telemetry record of a malformed or
// argument-less command attempt. Failures are logged and swallowed.
func (b *Bot) recordWrongCommand(ctx context.Context, cmd *models.Command, noArgs bool) {
	payload := &models.WrongCommandPayload{
		Command: cmd.Name,
		Args:    cmd.Positional,
		Flags:   cmd.Flags,
		NoArgs:  noArgs,
	}
	if err := b.backend.Call(ctx, "metrics/wrong-cmd", payload, nil); err != nil {
		logger.WithError(err).Warn("Failed to record wrong command")
	}
}
