package commands

// ArtifactKind distinguishes the two comment-bearing objects commands
// can be issued against.
type ArtifactKind string

const (
	ArtifactIssue       ArtifactKind = "issue"
	ArtifactPullRequest ArtifactKind = "pr"
)

// ArtifactState is the open/closed state of an issue or PR.
type ArtifactState string

const (
	ArtifactOpen   ArtifactState = "open"
	ArtifactClosed ArtifactState = "closed"
)

// Artifact is the issue or pull request a command was issued on.
type Artifact struct {
	Kind        ArtifactKind
	State       ArtifactState
	Number      int
	Title       string
	Description string
	URL         string
	Labels      []string
}

// Comment is the triggering comment of a command invocation.
type Comment struct {
	ID     int64
	Body   string
	Author string
}

// CommandContext carries everything a command handler needs about the
// inbound delivery. It is built once per webhook event and discarded.
type CommandContext struct {
	Artifact   Artifact
	Comment    Comment
	OwnerIsOrg bool
}
