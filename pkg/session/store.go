package session

import (
	"context"
	"time"
)

// Store persists serialized sessions. Implementations must be safe for
// concurrent use.
type Store interface {
	// Save persists data under id, overwriting any previous value.
	Save(ctx context.Context, id string, data []byte, expiresAt time.Time) error

	// Load returns (nil, nil) when id is unknown or expired.
	Load(ctx context.Context, id string) ([]byte, error)

	// Delete does not fail for unknown ids.
	Delete(ctx context.Context, id string) error

	// Touch moves the expiry of an existing session.
	Touch(ctx context.Context, id string, expiresAt time.Time) error

	Close() error
}

// ErrStoreClosed is returned when operations are attempted on a closed store.
type ErrStoreClosed struct{}

func (e ErrStoreClosed) Error() string {
	return "session store is closed"
}
