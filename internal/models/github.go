package models

// User is the normalized profile record sent to the backend for the
// actor of a command (creator, sponsor, assignee or contributor).
type User struct {
	Username        string `json:"username"`
	Name            string `json:"name,omitempty"`
	ID              int64  `json:"id"`
	Email           string `json:"email,omitempty"`
	AvatarURL       string `json:"avatarUrl,omitempty"`
	Description     string `json:"description,omitempty"`
	PageURL         string `json:"pageUrl,omitempty"`
	UserURL         string `json:"userUrl,omitempty"`
	Location        string `json:"location,omitempty"`
	TwitterUsername string `json:"twitterUsername,omitempty"`
}

// Organization is the normalized record of the installation owner.
type Organization struct {
	Username        string `json:"username"`
	Name            string `json:"name,omitempty"`
	AvatarURL       string `json:"avatarUrl,omitempty"`
	Description     string `json:"description,omitempty"`
	TwitterUsername string `json:"twitterUsername,omitempty"`
	PageURL         string `json:"pageUrl,omitempty"`
	Location        string `json:"location,omitempty"`
	Email           string `json:"email,omitempty"`
	PublicRepos     int    `json:"publicRepos"`
	Followers       int    `json:"followers"`
	OrgURL          string `json:"orgUrl,omitempty"`
	InPlatformID    string `json:"inPlatformId"`
}

// Repository is the minimal repository record the backend needs.
type Repository struct {
	Name string `json:"name"`
	Link string `json:"link"`
}
