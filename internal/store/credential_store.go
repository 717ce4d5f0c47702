package store

import (
	"context"

	"dashkit/app/internal/models"
)

// CredentialStore is the static identity list backing the mocked auth
// backend. Lookups only; nothing mutates it after construction.
type CredentialStore struct {
	byEmail map[string]models.Credential
}

func NewCredentialStore(records []models.Credential) *CredentialStore {
	byEmail := make(map[string]models.Credential, len(records))
	for _, rec := range records {
		byEmail[rec.Email] = rec
	}
	return &CredentialStore{byEmail: byEmail}
}

// SeedCredentials returns the well-known mock identities.
func SeedCredentials() []models.Credential {
	return []models.Credential{
		{
			ID:       "1",
			Email:    "test@ex.com",
			Password: "123456",
			Username: "Test User",
			Role:     models.RoleAdmin,
		},
		{
			ID:       "2",
			Email:    "user@example.com",
			Password: "123456",
			Username: "Regular User",
			Role:     models.RoleUser,
		},
	}
}

// FindByEmailAndPassword returns the matching credential, if any. Email and
// password must both match; the caller never learns which one was wrong.
func (s *CredentialStore) FindByEmailAndPassword(ctx context.Context, email, password string) (models.Credential, bool) {
	rec, ok := s.byEmail[email]
	if !ok || rec.Password != password {
		return models.Credential{}, false
	}
	return rec, true
}

func (s *CredentialStore) ExistsByEmail(ctx context.Context, email string) bool {
	_, ok := s.byEmail[email]
	return ok
}
