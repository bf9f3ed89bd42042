package models

import "time"

// API key modes
const (
	APIKeyModeTest = "test"
	APIKeyModeLive = "live"
)

// IDPrefixAPIKey prefixes generated API key identifiers.
const IDPrefixAPIKey = "key"

// APIKey is a developer credential shown on the developers screen.
type APIKey struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Mode     string     `json:"mode"`
	Key      string     `json:"key"`
	Created  time.Time  `json:"created"`
	LastUsed *time.Time `json:"lastUsed"`
}
