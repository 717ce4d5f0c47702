package persist

import (
	"encoding/json"

	"dashkit/app/internal/models"
)

// MemoryAdapter keeps the slots in process memory. It is the client-runtime
// form of the adapter and the double used by tests. The profile is held as
// raw JSON so stored garbage behaves like stored garbage.
type MemoryAdapter struct {
	token   string
	profile []byte
}

func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{}
}

// Seed primes the slots directly, bypassing Write. The profile bytes are
// taken as-is, malformed or not.
func (a *MemoryAdapter) Seed(token string, rawProfile []byte) {
	a.token = token
	a.profile = rawProfile
}

func (a *MemoryAdapter) ReadToken() (string, bool) {
	if a.token == "" {
		return "", false
	}
	return a.token, true
}

func (a *MemoryAdapter) ReadProfile() (models.User, bool) {
	if len(a.profile) == 0 {
		return models.User{}, false
	}
	var user models.User
	if err := json.Unmarshal(a.profile, &user); err != nil {
		return models.User{}, false
	}
	return user, true
}

func (a *MemoryAdapter) Write(token string, user models.User) {
	raw, err := json.Marshal(user)
	if err != nil {
		return
	}
	a.token = token
	a.profile = raw
}

func (a *MemoryAdapter) Clear() {
	a.token = ""
	a.profile = nil
}
