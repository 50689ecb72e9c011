package models

// TokenAmount is one reward entry parsed from a name=amount pair.
// Amounts are decimal ADA; the backend accepts decimal ADA directly,
// so no lovelace conversion happens anywhere in the bot.
type TokenAmount struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// Bounty mirrors the backend bounty record returned on success.
type Bounty struct {
	ID              int64   `json:"id"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	Amount          float64 `json:"amount"`
	IssueLink       string  `json:"issueLink"`
	ExpirationDate  string  `json:"expirationDate"`
	CreatedAt       string  `json:"createdAt"`
	CreatorID       int64   `json:"creatorId"`
	StatusID        int64   `json:"statusId"`
	TransactionHash string  `json:"transactionHash"`
}

// Platform is the source platform discriminator sent with every payload.
const Platform = "github"

// CreateBountyPayload is the body for POST {backend}/bounty.
type CreateBountyPayload struct {
	Tokens       []TokenAmount `json:"tokens"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Duration     int64         `json:"duration"`
	Creator      *User         `json:"creator"`
	Organization *Organization `json:"organization"`
	Repository   *Repository   `json:"repository"`
	Network      string        `json:"network"`
	Platform     string        `json:"platform"`
	Categories   []string      `json:"categories"`
	Issue        int           `json:"issue"`
	IssueURL     string        `json:"issueUrl"`
}

// SponsorBountyPayload is the body for POST {backend}/bounty/sponsor.
type SponsorBountyPayload struct {
	Tokens       []TokenAmount `json:"tokens"`
	IssueNumber  int           `json:"issueNumber"`
	Platform     string        `json:"platform"`
	Sponsor      *User         `json:"sponsor"`
	Organization *Organization `json:"organization"`
	Repository   *Repository   `json:"repository"`
}

// AssignBountyPayload is the body for POST {backend}/bounty/assign.
type AssignBountyPayload struct {
	BountyID    int64  `json:"bountyId"`
	Assignee    *User  `json:"assignee"`
	Address     string `json:"address"`
	Platform    string `json:"platform"`
	IssueNumber int    `json:"issueNumber"`
}

// LinkBountyPayload is the body for POST {backend}/bounty/link.
type LinkBountyPayload struct {
	BountyID    int64  `json:"bountyId"`
	Contributor *User  `json:"contributor"`
	PRNumber    int    `json:"prNumber"`
	Platform    string `json:"platform"`
}

// MergeBountyPayload is the body for POST {backend}/bounty/merge.
type MergeBountyPayload struct {
	PRNumber int    `json:"prNumber"`
	OrgName  string `json:"orgName"`
	RepoName string `json:"repoName"`
	Platform string `json:"platform"`
}

// CancelBountyPayload is the body for POST {backend}/bounty/cancel.
// From tells the backend which side the close came from so it can apply
// the matching cancellation authorization rule.
type CancelBountyPayload struct {
	Number   int    `json:"number"`
	From     string `json:"from"`
	OrgName  string `json:"orgName"`
	RepoName string `json:"repoName"`
	Platform string `json:"platform"`
}

// WrongCommandPayload is the body for POST {backend}/metrics/wrong-cmd.
type WrongCommandPayload struct {
	Command string            `json:"command"`
	Args    []string          `json:"args"`
	Flags   map[string]string `json:"flags"`
	NoArgs  bool              `json:"noArgs"`
}

// InstallationPayload is the onboarding registration body for
// POST {backend}/metrics/installation.
type InstallationPayload struct {
	Organization string   `json:"organization"`
	Repositories []string `json:"repositories"`
	Platform     string   `json:"platform"`
}
