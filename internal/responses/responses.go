// Package responses holds the reply catalog: pure functions producing
// the markdown bodies the bot posts back to GitHub. Selection logic
// lives in the command core; wording lives here.
package responses

import (
	"fmt"
	"strings"
	"time"

	"github.com/githoney/bounty-bot/internal/models"
)

// CreateBountySuccess is the reply for a freshly created bounty.
func CreateBountySuccess(amount float64, bountyID int64, deadline time.Time, signURL string, isTestnet bool) string {
	var sb strings.Builder
	sb.WriteString("### New bounty created for this issue! 🎊\n\n")
	if isTestnet {
		sb.WriteString("#### TESTNET MODE\n\n")
	}
	fmt.Fprintf(&sb, "> 🍯 Reward: **%g ADA**\n", amount)
	fmt.Fprintf(&sb, "> ⏰ Work deadline: **%s**\n\n", deadline.UTC().Format(time.RFC1123))
	fmt.Fprintf(&sb, "The bounty id is `%d`\n\n", bountyID)
	fmt.Fprintf(&sb, "The next step is to deposit the reward. You can use this [link](%s) to execute the transaction.", signURL)
	return sb.String()
}

// SponsorBountySuccess is the reply for an accepted sponsorship.
func SponsorBountySuccess(signURL string) string {
	return fmt.Sprintf(
		"### 🎉 The sponsorship has been accepted and is ready to be funded 🎉\n\n"+
			"The next step is **to deposit the fund**.\n"+
			"You can use this [link](%s) to execute the transaction.", signURL)
}

// AcceptBountySuccess is the reply for an accepted bounty.
func AcceptBountySuccess(signURL string) string {
	return fmt.Sprintf(
		"### 🎉 The bounty has been accepted! 🎉\n\n"+
			"You can sign the transaction [here](%s).\n\n"+
			"You will be able to claim the reward once the linked PR gets merged.", signURL)
}

// BountyLinked is the reply for a successful PR link.
const BountyLinked = "### 🎉 Bounty linked! 🎉\n\n" +
	"The bounty has been successfully linked to this PR. Just wait for the merge to claim your reward."

// MergeBountySuccess is the PR-side reply after a merge settles a bounty.
func MergeBountySuccess(claimURL, txURL string, bountyID int64, frontendURL string) string {
	return fmt.Sprintf(
		"### 🎉 The bounty has been merged! 🎉\n\n"+
			"You can see the transaction [here](%s).\n\n"+
			"Claim your reward [here](%s).\n\n"+
			"Please, for any feedback or issues, contact us in the following [link](%s/feedback?bountyId=%d).",
		txURL, claimURL, frontendURL, bountyID)
}

// PullRequestMerged is the issue-side notice after the linked PR merged.
const PullRequestMerged = "### 🎉 Pull Request Merged! 🎉\n\n" +
	"The pull request has been successfully merged and the bounty is now closed.\n\n" +
	"🍯 Congratulations to all involved 🍯"

// CloseBountySuccess is the reply after a cancellation. The PR side gets
// the rejection phrasing, the issue side the closed phrasing.
func CloseBountySuccess(txURL string, fromPR bool, bountyID int64, frontendURL string) string {
	feedback := fmt.Sprintf("Please, for any feedback or issues, contact us in the following [link](%s/feedback?bountyId=%d).", frontendURL, bountyID)
	if fromPR {
		return fmt.Sprintf("Sorry, your PR was not accepted. 😢\n\nSee the transaction [here](%s).\n\n%s", txURL, feedback)
	}
	return fmt.Sprintf("### 🎉 The bounty has been closed! 🎉\n\nYou can see the transaction [here](%s).\n\n%s", txURL, feedback)
}

// CloseBountySuccessWithoutTx is the cancellation reply when the backend
// returned no transaction hash.
const CloseBountySuccessWithoutTx = "### 🎉 The bounty has been closed successfully! 🎉"

// ReclaimBountyInfo tells the maintainer where to withdraw expired funds.
func ReclaimBountyInfo(bountyID int64, address, signURL string) string {
	return fmt.Sprintf(
		"Reclaiming bounty `%d`. Maintainer with address **%s** may reclaim the deposit using this [link](%s).",
		bountyID, address, signURL)
}

// ParametersWrong itemizes field validation errors, one bullet per
// field, preserving the supplied ordering.
func ParametersWrong(errs []models.FieldError) string {
	var sb strings.Builder
	sb.WriteString("### ⚠️ Warning ⚠️\n\nOne or more parameters are wrongly formatted:\n\n")
	for _, fieldErr := range errs {
		fmt.Fprintf(&sb, "> Parameter: **%s** - Error: **%s**.\n", fieldErr.Path, fieldErr.Message)
	}
	return sb.String()
}

// UnknownCommand is the reply for malformed or unrecognized commands.
func UnknownCommand(mention string) string {
	return fmt.Sprintf(
		"### ⚠️ Warning ⚠️\n\n"+
			"I'm sorry, I don't understand that command. 😔\n\n"+
			"Please use the `%s help` command to see the available commands.", mention)
}

// WrongCommandUse is the notice for a command issued on the wrong
// artifact kind or state.
const WrongCommandUse = "### Sorry, you can't use this command here. 😔\n\n" +
	"Remember, you can only use the:\n" +
	"- `create-bounty` command in open issues.\n" +
	"- `sponsor-bounty` command in open issues.\n" +
	"- `accept-bounty` command in open issues.\n" +
	"- `link-bounty` command in open pull requests."

// UserInstallation is the notice posted when the app is installed on a
// personal account instead of an organization.
const UserInstallation = "### ⚠️ Warning ⚠️\n\n" +
	"It seems you have installed the bot on a personal account.\n" +
	"Please install it on an organization account to use it.\n\n" +
	"🔎 See the [installation guide](https://docs.githoney.io/github_setup) for more information. 🔍"

// InternalError is the generic notice for bot-side or 5xx failures.
// It never leaks internals.
const InternalError = "### 🚧 Sorry, I'm having some trouble right now. 🚧\n\nPlease try again later."

// BackendTrouble wraps a raw backend message for unmapped client errors.
func BackendTrouble(message string) string {
	return fmt.Sprintf("### 🚧 Sorry, the service is having some trouble right now. 🚧\n\n%s", message)
}

// PleaseUseADA is the currency-rule notice.
const PleaseUseADA = "### 🚧 Please use ADA for this operation. 🚧\n\n" +
	"We're working on adding support for other currencies."

// Fixed notices selected by backend botCode.
const (
	AlreadyExistingBounty = "### ⚠️ Warning ⚠️\n\nThis issue already has a bounty attached."

	AlreadyAssignedBounty = "### ⚠️ Warning ⚠️\n\nThis bounty has already been assigned to someone."

	BountyNotFound = "### ⚠️ Warning ⚠️\n\nI'm sorry, I couldn't find a bounty with that id. 😔"

	BountyHashNotFound = "### ⚠️ Warning ⚠️\n\nThe bounty creation transaction is not submitted yet."

	CloseWrongFrom = "### ⚠️ Warning ⚠️\n\n**Bounty already assigned.**\n" +
		"The bounty for this issue has been assigned to someone, it can only be closed in the PR."

	BountyNotOpenToSponsor = "### ⚠️ Sorry, the bounty is closed ⚠️\n\n" +
		"This bounty is not open to sponsor. It may have been closed or expired."

	BountyStillOpen = "### ⚠️ Hey! This bounty is still open ⚠️\n\n" +
		"You should go back to the corresponding issue and then link the PR again.\n\n" +
		"If the PR is merged, you will not receive the reward."

	BountyAccepted = "### ⚠️ Warning ⚠️\n\nThis bounty has already been accepted.\n\n" +
		"If the PR is merged, you will not receive the reward."
)

// Help lists the command surface.
func Help(mention string) string {
	return fmt.Sprintf(
		"Hi! I'm the **bounty bot** 🤖. Here are the commands you can use:\n\n"+
			"### Create a new bounty\n"+
			"`create-bounty`: Creates a new bounty and attaches it to the GitHub issue. Can only be used in an open issue without an existing bounty.\n\n"+
			"**Parameters:**\n"+
			"- `tokens`: List of tokens and amounts to add (currently only ADA is supported). Format: _tokenA=amountA&tokenB=amountB_\n"+
			"- `duration`: Time limit for the bounty in days.\n"+
			"- `network`: Target network, `preprod` or `mainnet` (defaults to preprod).\n\n"+
			"Example:\n> %s create-bounty --tokens ADA=200 --duration 14\n\n"+
			"***\n"+
			"### Add more rewards to a bounty\n"+
			"`sponsor-bounty`: Add extra rewards to an existing bounty. Can only be used in an open issue with an existing bounty.\n\n"+
			"**Parameters:**\n"+
			"- `tokens`: List of tokens and amounts to add (currently only ADA is supported).\n\n"+
			"Example:\n> %s sponsor-bounty --tokens ADA=100\n\n"+
			"***\n"+
			"### Start working on a bounty\n"+
			"`accept-bounty`: Accept the bounty and start working on it. Can only be used in an open issue.\n\n"+
			"**Parameters:**\n"+
			"- `bountyId`: The unique ID of the bounty.\n"+
			"- `address`: The Cardano wallet address of the contributor.\n\n"+
			"Example:\n> %s accept-bounty --bountyId 123 --address addr1...\n\n"+
			"***\n"+
			"### Link a pull request to a bounty\n"+
			"`link-bounty`: Links the current PR with the bounty. Can only be used in the comments of an open PR.\n\n"+
			"**Parameters:**\n"+
			"- `bountyId`: The unique ID of the bounty.\n\n"+
			"Example:\n> %s link-bounty --bountyId 123\n\n"+
			"***\n"+
			"### Merge/close actions\n"+
			"To trigger bounty completion or cancellation, use GitHub's native \"Merge pull request\" or \"Close issue\" buttons; the bot handles the corresponding actions automatically.",
		mention, mention, mention, mention)
}
