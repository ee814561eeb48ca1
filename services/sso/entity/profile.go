package entity

import "time"

type (
	// Profile carries the billing state of a user. The zero value of IsPro is
	// the free tier.
	Profile struct {
		UserID    string    `json:"user_id"`
		IsPro     bool      `json:"is_pro"`
		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
	}
)
