package commands

import (
	"context"
	"time"

	"github.com/githoney/bounty-bot/internal/models"
	"github.com/githoney/bounty-bot/pkg/logger"
)

// Platform is the hosting-platform capability the command core consumes:
// reactions, replies and profile lookups for one repository.
type Platform interface {
	Owner() string
	Repo() string
	AcknowledgeCommand(ctx context.Context, commentID int64) error
	RejectCommand(ctx context.Context, commentID int64) error
	ReplyToCommand(ctx context.Context, issueNumber int, body string) error
	GetUserData(ctx context.Context, username string) (*models.User, error)
	GetOrgData(ctx context.Context, org string) (*models.Organization, error)
	GetRepoData(ctx context.Context, owner, repo string) (*models.Repository, error)
}

// Backend is the single capability against the bounty backend.
type Backend interface {
	Call(ctx context.Context, endpoint string, payload interface{}, out interface{}) error
}

// Announcer publishes new-bounty notices out of band. Implementations
// must be fire-and-forget; a failure never reaches the reply path.
type Announcer interface {
	AnnounceBounty(amount float64, org, repo string, issueNumber int, deadline time.Time)
}

// Bot holds the command core: parsing, preconditions, handlers and
// error reconciliation. It carries no mutable state; every invocation
// works on request-scoped values only.
type Bot struct {
	mention     string
	frontendURL string
	network     string
	backend     Backend
	announcer   Announcer
	now         func() time.Time
}

func NewBot(mention, frontendURL, network string, backend Backend, announcer Announcer) *Bot {
	return &Bot{
		mention:     mention,
		frontendURL: frontendURL,
		network:     network,
		backend:     backend,
		announcer:   announcer,
		now:         time.Now,
	}
}

// reply posts a comment and logs the failure; replies are terminal side
// effects and are never retried.
func (b *Bot) reply(ctx context.Context, p Platform, issueNumber int, body string) {
	if err := p.ReplyToCommand(ctx, issueNumber, body); err != nil {
		logger.WithError(err).WithField("issue", issueNumber).Error("Failed to post reply")
	}
}

// txExplorerURL links a transaction hash on the explorer matching the
// configured network.
func (b *Bot) txExplorerURL(txID string) string {
	if b.network == "mainnet" {
		return "https://cexplorer.io/tx/" + txID
	}
	return "https://preprod.cexplorer.io/tx/" + txID
}
