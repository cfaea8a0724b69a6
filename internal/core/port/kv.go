package port

import "context"

// KeyValue is the persistence boundary of the wizard. Values are whole
// serialized records addressed by session and key; there are no partial
// updates. Writers overwrite, so the last write wins. Implementations must
// be safe for concurrent use.
type KeyValue interface {
	// Get returns the value stored under key for the session. The boolean
	// is false when nothing is stored.
	Get(ctx context.Context, session, key string) ([]byte, bool, error)
	// Set stores value under key for the session, replacing any previous
	// value.
	Set(ctx context.Context, session, key string, value []byte) error
	// Delete removes key for the session. Deleting an absent key is not an
	// error.
	Delete(ctx context.Context, session, key string) error
}
