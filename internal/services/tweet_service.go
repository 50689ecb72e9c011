package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/githoney/bounty-bot/pkg/logger"
)

// TweetService announces freshly created bounties through a secondary
// tweet bot. Announcements are fire-and-forget: a failure here is logged
// and must never affect the primary reply path.
type TweetService struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewTweetService(baseURL, apiKey string) *TweetService {
	return &TweetService{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type newBountyAnnouncement struct {
	Amount      float64 `json:"amount"`
	LinkToIssue string  `json:"linkToIssue"`
	Deadline    string  `json:"deadline"`
}

// AnnounceBounty posts a new-bounty notice in a detached goroutine.
func (s *TweetService) AnnounceBounty(amount float64, org, repo string, issueNumber int, deadline time.Time) {
	if s.baseURL == "" {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		payload := newBountyAnnouncement{
			Amount:      amount,
			LinkToIssue: fmt.Sprintf("https://github.com/%s/%s/issues/%d", org, repo, issueNumber),
			Deadline:    deadline.UTC().Format(time.RFC3339),
		}

		body, err := json.Marshal(payload)
		if err != nil {
			logger.WithError(err).Error("Failed to marshal tweet bot payload")
			return
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/newBounty", bytes.NewReader(body))
		if err != nil {
			logger.WithError(err).Error("Failed to build tweet bot request")
			return
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("x-api-key", s.apiKey)

		resp, err := s.httpClient.Do(req)
		if err != nil {
			logger.WithError(err).Error("Tweet bot call failed")
			return
		}
		resp.Body.Close()

		if resp.StatusCode >= 300 {
			logger.WithField("status", resp.StatusCode).Error("Tweet bot returned an error status")
		}
	}()
}
