package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/githoney/bounty-bot/internal/commands"
	"github.com/githoney/bounty-bot/internal/services"
	"github.com/githoney/bounty-bot/pkg/logger"
	"github.com/google/go-github/v57/github"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// WebhookHandler receives GitHub webhook deliveries, verifies their
// signature and dispatches each one on its own goroutine. The HTTP
// response is 202 regardless of handler outcome so GitHub never
// redelivers because of a handler failure.
type WebhookHandler struct {
	bot    *commands.Bot
	client *github.Client
	secret []byte
}

func NewWebhookHandler(bot *commands.Bot, client *github.Client, secret string) *WebhookHandler {
	return &WebhookHandler{
		bot:    bot,
		client: client,
		secret: []byte(secret),
	}
}

// Handle is the gin handler for POST /webhooks
func (h *WebhookHandler) Handle(c *gin.Context) {
	payload, err := github.ValidatePayload(c.Request, h.secret)
	if err != nil {
		logger.WithError(err).Warn("Webhook signature validation failed")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
		return
	}

	event, err := github.ParseWebHook(github.WebHookType(c.Request), payload)
	if err != nil {
		logger.WithError(err).Warn("Failed to parse webhook payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "unparseable payload"})
		return
	}

	deliveryID := github.DeliveryID(c.Request)
	if deliveryID == "" {
		deliveryID = uuid.NewString()
	}
	log := logger.WithFields(logrus.Fields{
		"delivery": deliveryID,
		"event":    github.WebHookType(c.Request),
	})

	switch e := event.(type) {
	case *github.IssueCommentEvent:
		if e.GetAction() == "created" {
			log.Info("Dispatching issue comment")
			go h.handleIssueComment(e)
		}
	case *github.PullRequestEvent:
		if e.GetAction() == "closed" {
			log.Info("Dispatching pull request close")
			go h.handlePullRequestClosed(e)
		}
	case *github.IssuesEvent:
		if e.GetAction() == "closed" {
			log.Info("Dispatching issue close")
			go h.handleIssueClosed(e)
		}
	case *github.InstallationEvent:
		if e.GetAction() == "created" {
			log.Info("Dispatching installation registration")
			go h.handleInstallation(e)
		}
	case *github.InstallationRepositoriesEvent:
		if e.GetAction() == "added" {
			log.Info("Dispatching repository registration")
			go h.handleInstallationRepositories(e)
		}
	default:
		log.Debug("Ignoring event")
	}

	c.JSON(http.StatusAccepted, gin.H{"status": "accepted"})
}

func (h *WebhookHandler) facadeFor(repo *github.Repository) *services.GithubService {
	return services.NewGithubService(h.client, repo.GetOwner().GetLogin(), repo.GetName())
}

func ownerIsOrg(repo *github.Repository) bool {
	return repo.GetOwner().GetType() == "Organization"
}

func (h *WebhookHandler) handleIssueComment(e *github.IssueCommentEvent) {
	// Commands come from humans; other bots and apps are ignored
	if e.GetComment().GetUser().GetType() == "Bot" {
		return
	}

	issue := e.GetIssue()
	kind := commands.ArtifactIssue
	if issue.IsPullRequest() {
		kind = commands.ArtifactPullRequest
	}

	labels := make([]string, 0, len(issue.Labels))
	for _, label := range issue.Labels {
		labels = append(labels, label.GetName())
	}

	cc := &commands.CommandContext{
		Artifact: commands.Artifact{
			Kind:        kind,
			State:       commands.ArtifactState(issue.GetState()),
			Number:      issue.GetNumber(),
			Title:       issue.GetTitle(),
			Description: issue.GetBody(),
			URL:         issue.GetHTMLURL(),
			Labels:      labels,
		},
		Comment: commands.Comment{
			ID:     e.GetComment().GetID(),
			Body:   e.GetComment().GetBody(),
			Author: e.GetComment().GetUser().GetLogin(),
		},
		OwnerIsOrg: ownerIsOrg(e.GetRepo()),
	}

	h.bot.HandleComment(context.Background(), h.facadeFor(e.GetRepo()), cc)
}

func (h *WebhookHandler) handlePullRequestClosed(e *github.PullRequestEvent) {
	if e.GetSender().GetType() == "Bot" {
		return
	}

	facade := h.facadeFor(e.GetRepo())
	pr := e.GetPullRequest()
	if pr.GetMerged() {
		h.bot.HandlePRMerged(context.Background(), facade, pr.GetNumber(), ownerIsOrg(e.GetRepo()))
		return
	}
	h.bot.HandleClosed(context.Background(), facade, pr.GetNumber(), "pr", ownerIsOrg(e.GetRepo()))
}

func (h *WebhookHandler) handleIssueClosed(e *github.IssuesEvent) {
	if e.GetSender().GetType() == "Bot" {
		return
	}
	// PR closes arrive through the pull_request event
	if e.GetIssue().IsPullRequest() {
		return
	}

	facade := h.facadeFor(e.GetRepo())
	h.bot.HandleClosed(context.Background(), facade, e.GetIssue().GetNumber(), "issue", ownerIsOrg(e.GetRepo()))
}

func (h *WebhookHandler) handleInstallation(e *github.InstallationEvent) {
	repos := make([]string, 0, len(e.Repositories))
	for _, repo := range e.Repositories {
		repos = append(repos, repo.GetName())
	}
	h.bot.RecordInstallation(context.Background(), e.GetInstallation().GetAccount().GetLogin(), repos)
}

func (h *WebhookHandler) handleInstallationRepositories(e *github.InstallationRepositoriesEvent) {
	repos := make([]string, 0, len(e.RepositoriesAdded))
	for _, repo := range e.RepositoriesAdded {
		repos = append(repos, repo.GetName())
	}
	h.bot.RecordInstallation(context.Background(), e.GetInstallation().GetAccount().GetLogin(), repos)
}
