package services

import (
	"context"
	"fmt"

	"github.com/githoney/bounty-bot/internal/models"
	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// GithubService is the platform facade for a single repository. One
// instance is built per webhook delivery, bound to the owner/repo the
// event came from.
type GithubService struct {
	client *github.Client
	owner  string
	repo   string
}

func NewGithubService(client *github.Client, owner, repo string) *GithubService {
	return &GithubService{
		client: client,
		owner:  owner,
		repo:   repo,
	}
}

// NewGithubClient creates a go-github client authenticated with the app token
func NewGithubClient(token string) *github.Client {
	if token == "" {
		return github.NewClient(nil)
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(context.Background(), ts)
	return github.NewClient(tc)
}

func (s *GithubService) Owner() string {
	return s.owner
}

func (s *GithubService) Repo() string {
	return s.repo
}

// AcknowledgeCommand reacts with +1 to the triggering comment
func (s *GithubService) AcknowledgeCommand(ctx context.Context, commentID int64) error {
	_, _, err := s.client.Reactions.CreateIssueCommentReaction(ctx, s.owner, s.repo, commentID, "+1")
	if err != nil {
		return fmt.Errorf("failed to acknowledge comment %d: %w", commentID, err)
	}
	return nil
}

// RejectCommand reacts with -1 to the triggering comment
func (s *GithubService) RejectCommand(ctx context.Context, commentID int64) error {
	_, _, err := s.client.Reactions.CreateIssueCommentReaction(ctx, s.owner, s.repo, commentID, "-1")
	if err != nil {
		return fmt.Errorf("failed to reject comment %d: %w", commentID, err)
	}
	return nil
}

// ReplyToCommand posts a comment on the issue or PR thread
func (s *GithubService) ReplyToCommand(ctx context.Context, issueNumber int, body string) error {
	comment := &github.IssueComment{Body: github.String(body)}
	_, _, err := s.client.Issues.CreateComment(ctx, s.owner, s.repo, issueNumber, comment)
	if err != nil {
		return fmt.Errorf("failed to reply on issue %d: %w", issueNumber, err)
	}
	return nil
}

// GetUserData fetches a user profile and normalizes it for the backend
func (s *GithubService) GetUserData(ctx context.Context, username string) (*models.User, error) {
	user, _, err := s.client.Users.Get(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user %s: %w", username, err)
	}

	return &models.User{
		Username:        user.GetLogin(),
		Name:            user.GetName(),
		ID:              user.GetID(),
		Email:           user.GetEmail(),
		AvatarURL:       user.GetAvatarURL(),
		Description:     user.GetBio(),
		PageURL:         user.GetBlog(),
		UserURL:         user.GetHTMLURL(),
		Location:        user.GetLocation(),
		TwitterUsername: user.GetTwitterUsername(),
	}, nil
}

// GetOrgData fetches the installation organization and normalizes it
func (s *GithubService) GetOrgData(ctx context.Context, org string) (*models.Organization, error) {
	ghOrg, _, err := s.client.Organizations.Get(ctx, org)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch organization %s: %w", org, err)
	}

	return &models.Organization{
		Username:        ghOrg.GetLogin(),
		Name:            ghOrg.GetName(),
		AvatarURL:       ghOrg.GetAvatarURL(),
		Description:     ghOrg.GetDescription(),
		TwitterUsername: ghOrg.GetTwitterUsername(),
		PageURL:         ghOrg.GetBlog(),
		Location:        ghOrg.GetLocation(),
		Email:           ghOrg.GetEmail(),
		PublicRepos:     ghOrg.GetPublicRepos(),
		Followers:       ghOrg.GetFollowers(),
		OrgURL:          ghOrg.GetHTMLURL(),
		InPlatformID:    fmt.Sprintf("%d", ghOrg.GetID()),
	}, nil
}

// GetRepoData fetches the repository record the backend needs
func (s *GithubService) GetRepoData(ctx context.Context, owner, repo string) (*models.Repository, error) {
	ghRepo, _, err := s.client.Repositories.Get(ctx, owner, repo)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch repository %s/%s: %w", owner, repo, err)
	}

	return &models.Repository{
		Name: ghRepo.GetName(),
		Link: ghRepo.GetHTMLURL(),
	}, nil
}

// CloseIssue closes an issue, used by the admin close-issues endpoint
func (s *GithubService) CloseIssue(ctx context.Context, issueNumber int) error {
	req := &github.IssueRequest{State: github.String("closed")}
	_, _, err := s.client.Issues.Edit(ctx, s.owner, s.repo, issueNumber, req)
	if err != nil {
		return fmt.Errorf("failed to close issue %s/%s#%d: %w", s.owner, s.repo, issueNumber, err)
	}
	return nil
}
