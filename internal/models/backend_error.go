package models

import "fmt"

// BotCode is the closed set of domain-level rejection reasons the
// backend signals alongside an HTTP error status.
type BotCode string

const (
	BotCodeBountyAlreadyExists   BotCode = "bounty-already-exists"
	BotCodeBountyTaken           BotCode = "bounty-taken"
	BotCodeBountyNotFound        BotCode = "bounty-not-found"
	BotCodeBountyHashNotFound    BotCode = "bounty-hash-not-found"
	BotCodeCloseWrongFrom        BotCode = "close-wrong-from"
	BotCodeNotOpenForFunding     BotCode = "not-open-for-funding"
	BotCodeNoSubmissionsFound    BotCode = "no-submissions-found"
	BotCodeBountyAlreadyAccepted BotCode = "bounty-already-accepted"
)

// FieldError is one entry of a 400 parameter-validation response.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// BackendError is the discriminated failure of a backend call. A 400
// status carries FieldErrors (parameter validation); other client errors
// carry either a mapped BotCode or a plain message.
type BackendError struct {
	Status      int
	BotCode     BotCode
	Message     string
	FieldErrors []FieldError
}

func (e *BackendError) Error() string {
	if e.BotCode != "" {
		return fmt.Sprintf("backend error: status %d, botCode %s", e.Status, e.BotCode)
	}
	return fmt.Sprintf("backend error: status %d: %s", e.Status, e.Message)
}

// IsValidation reports whether the failure is the 400 field-validation shape.
func (e *BackendError) IsValidation() bool {
	return e.Status == 400
}
