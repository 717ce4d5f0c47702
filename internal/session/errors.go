package session

import "errors"

// All three are terminal user-input errors: the form shows the message and
// the user corrects their input. Nothing here is retried automatically.
var (
	ErrInvalidEmailFormat     = errors.New("invalid email format")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
)
