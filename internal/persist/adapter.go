// Package persist owns the two durable session slots: the token, visible to
// the network layer, and the user profile, kept client-side. Reads fail soft;
// a malformed profile reads as absent, never as an error.
package persist

import "dashkit/app/internal/models"

const (
	TokenKey   = "auth_token"
	ProfileKey = "user_data"
)

type Adapter interface {
	ReadToken() (string, bool)
	ReadProfile() (models.User, bool)
	// Write stores both slots together.
	Write(token string, user models.User)
	// Clear removes both slots unconditionally. Idempotent.
	Clear()
}
