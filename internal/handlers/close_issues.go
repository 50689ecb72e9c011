package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/githoney/bounty-bot/internal/services"
	"github.com/githoney/bounty-bot/pkg/logger"
	"github.com/google/go-github/v57/github"
	"github.com/sirupsen/logrus"
)

// CloseIssuesHandler is the admin endpoint the backend calls to close
// issues whose bounty deadline was reached.
type CloseIssuesHandler struct {
	client *github.Client
}

func NewCloseIssuesHandler(client *github.Client) *CloseIssuesHandler {
	return &CloseIssuesHandler{client: client}
}

type closeIssueTarget struct {
	Owner       string `json:"owner" binding:"required"`
	Repo        string `json:"repo" binding:"required"`
	IssueNumber int    `json:"issue_number" binding:"required,gt=0"`
}

type closeIssuesRequest struct {
	IssuesToClose []closeIssueTarget `json:"issuesToClose" binding:"required,dive"`
}

// CloseIssues handles POST /close-issues
func (h *CloseIssuesHandler) CloseIssues(c *gin.Context) {
	var req closeIssuesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	closed := 0
	for _, target := range req.IssuesToClose {
		facade := services.NewGithubService(h.client, target.Owner, target.Repo)
		if err := facade.CloseIssue(c.Request.Context(), target.IssueNumber); err != nil {
			logger.WithError(err).WithFields(logrus.Fields{
				"owner": target.Owner,
				"repo":  target.Repo,
				"issue": target.IssueNumber,
			}).Error("Failed to close issue")
			continue
		}
		closed++
	}

	c.JSON(http.StatusOK, gin.H{"closed": closed, "requested": len(req.IssuesToClose)})
}
