package session

import "dashkit/app/internal/models"

// State is the client's current belief about who is logged in. IsLoading is
// true only before the persisted slots have been read and while a
// login/register call is in flight.
type State struct {
	User      *models.User
	IsLoading bool
}

func (s State) Authenticated() bool {
	return s.User != nil
}
