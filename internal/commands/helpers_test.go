package commands

import (
	"context"
	"encoding/json"
	"time"

	"github.com/githoney/bounty-bot/internal/models"
)

type reply struct {
	number int
	body   string
}

type fakePlatform struct {
	owner   string
	repo    string
	acks    []int64
	rejects []int64
	replies []reply
	ackErr  error
	userErr error
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{owner: "honey-org", repo: "honey-repo"}
}

func (f *fakePlatform) Owner() string { return f.owner }
func (f *fakePlatform) Repo() string  { return f.repo }

func (f *fakePlatform) AcknowledgeCommand(_ context.Context, commentID int64) error {
	if f.ackErr != nil {
		return f.ackErr
	}
	f.acks = append(f.acks, commentID)
	return nil
}

func (f *fakePlatform) RejectCommand(_ context.Context, commentID int64) error {
	f.rejects = append(f.rejects, commentID)
	return nil
}

func (f *fakePlatform) ReplyToCommand(_ context.Context, issueNumber int, body string) error {
	f.replies = append(f.replies, reply{number: issueNumber, body: body})
	return nil
}

func (f *fakePlatform) GetUserData(_ context.Context, username string) (*models.User, error) {
	if f.userErr != nil {
		return nil, f.userErr
	}
	return &models.User{Username: username, ID: 1001, Name: "Test User"}, nil
}

func (f *fakePlatform) GetOrgData(_ context.Context, org string) (*models.Organization, error) {
	return &models.Organization{Username: org, InPlatformID: "2002"}, nil
}

func (f *fakePlatform) GetRepoData(_ context.Context, owner, repo string) (*models.Repository, error) {
	return &models.Repository{Name: repo, Link: "https://github.com/" + owner + "/" + repo}, nil
}

type backendCall struct {
	endpoint string
	payload  interface{}
}

type fakeBackend struct {
	calls    []backendCall
	response interface{}
	err      error
}

func (f *fakeBackend) Call(_ context.Context, endpoint string, payload interface{}, out interface{}) error {
	f.calls = append(f.calls, backendCall{endpoint: endpoint, payload: payload})
	if f.err != nil {
		return f.err
	}
	if out != nil && f.response != nil {
		raw, err := json.Marshal(f.response)
		if err != nil {
			return err
		}
		return json.Unmarshal(raw, out)
	}
	return nil
}

// endpoints lists the backend endpoints hit, in order.
func (f *fakeBackend) endpoints() []string {
	names := make([]string, 0, len(f.calls))
	for _, call := range f.calls {
		names = append(names, call.endpoint)
	}
	return names
}

func newTestBot(backend *fakeBackend) *Bot {
	bot := NewBot("/githoney", "https://front.test", "preprod", backend, nil)
	bot.now = func() time.Time {
		return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	}
	return bot
}

func openIssueContext(body string) *CommandContext {
	return &CommandContext{
		Artifact: Artifact{
			Kind:        ArtifactIssue,
			State:       ArtifactOpen,
			Number:      42,
			Title:       "Fix the parser",
			Description: "It breaks on empty input",
			URL:         "https://github.com/honey-org/honey-repo/issues/42",
			Labels:      []string{"bug"},
		},
		Comment: Comment{
			ID:     777,
			Body:   body,
			Author: "maintainer",
		},
		OwnerIsOrg: true,
	}
}

func openPRContext(body string) *CommandContext {
	cc := openIssueContext(body)
	cc.Artifact.Kind = ArtifactPullRequest
	cc.Artifact.Number = 55
	return cc
}
