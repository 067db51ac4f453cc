package models

import "time"

// Calendar groups a user's shifts and day notes. The API key is an
// opaque bearer secret granting external access to the feed, the
// events API and the webhook receiver.
type Calendar struct {
	ID          string    `json:"id"`
	UserID      string    `json:"-"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	APIKey      string    `json:"api_key"`
	IsDefault   bool      `json:"is_default"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
