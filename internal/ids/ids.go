package ids

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/segmentio/ksuid"
)

// New returns a sortable opaque identifier.
func New() string {
	return ksuid.New().String()
}

// NewUserID returns the id assigned to a freshly registered user.
func NewUserID() string {
	return uuid.NewString()
}

// NewToken mints an opaque session token. It carries no claims; possession
// is the only thing it proves.
func NewToken() string {
	return fmt.Sprintf("tok_%s", ksuid.New().String())
}
