package commands

import "github.com/githoney/bounty-bot/internal/models"

type gateResult int

const (
	gateAllowed gateResult = iota
	gateWrongUse
	gateUserInstallation
)

// gate enforces the contextual preconditions of a command before any
// side effect happens. Precondition failures never post a reaction.
//
//	create-bounty   open issue, org installation
//	sponsor-bounty  open issue, org installation
//	accept-bounty   open issue, org installation
//	link-bounty     open PR, org installation
//	reclaim-bounty  issue in any state, org installation
//	help            anywhere
func gate(name models.CommandName, artifact Artifact, ownerIsOrg bool) gateResult {
	if name == models.CommandHelp {
		return gateAllowed
	}

	if !ownerIsOrg {
		return gateUserInstallation
	}

	switch name {
	case models.CommandCreateBounty, models.CommandSponsorBounty, models.CommandAcceptBounty:
		if artifact.Kind != ArtifactIssue || artifact.State != ArtifactOpen {
			return gateWrongUse
		}
	case models.CommandLinkBounty:
		if artifact.Kind != ArtifactPullRequest || artifact.State != ArtifactOpen {
			return gateWrongUse
		}
	case models.CommandReclaimBounty:
		// Reclaim happens after expiry, when the issue may already be closed
		if artifact.Kind != ArtifactIssue {
			return gateWrongUse
		}
	}

	return gateAllowed
}
