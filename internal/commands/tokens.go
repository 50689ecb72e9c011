package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/githoney/bounty-bot/internal/models"
)

// ParseTokens parses a &-joined list of name=amount pairs. It only
// checks structure; the ADA-only rule is enforced separately with
// OnlyADA so the currency check can run after the acknowledgement.
func ParseTokens(raw string) ([]models.TokenAmount, error) {
	parts := strings.Split(raw, "&")
	tokens := make([]models.TokenAmount, 0, len(parts))

	for _, part := range parts {
		name, amountStr, found := strings.Cut(part, "=")
		if !found || name == "" || amountStr == "" {
			return nil, fmt.Errorf("token entry %q must have the form name=amount", part)
		}

		amount, err := strconv.ParseFloat(amountStr, 64)
		if err != nil {
			return nil, fmt.Errorf("token amount %q is not a number", amountStr)
		}
		if amount <= 0 {
			return nil, fmt.Errorf("token amount %q must be positive", amountStr)
		}

		tokens = append(tokens, models.TokenAmount{Name: name, Amount: amount})
	}

	return tokens, nil
}

// OnlyADA reports whether every token symbol is ADA, case-insensitively.
// Any other symbol invalidates the whole list.
func OnlyADA(tokens []models.TokenAmount) bool {
	for _, token := range tokens {
		if !strings.EqualFold(token.Name, "ADA") {
			return false
		}
	}
	return true
}

// adaTotal sums the ADA amounts of a token list.
func adaTotal(tokens []models.TokenAmount) float64 {
	var total float64
	for _, token := range tokens {
		if strings.EqualFold(token.Name, "ADA") {
			total += token.Amount
		}
	}
	return total
}
