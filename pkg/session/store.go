package session

import "context"

// StorageKey is the fixed name of the singleton slot holding the encoded
// session blob. File and Redis stores use it as the file name and key
// respectively; it matches the localStorage key used by the user service's
// web clients.
const StorageKey = "userSession"

// Store persists the single encoded session blob. Implementations hold at
// most one blob; there is no notion of multiple sessions.
type Store interface {
	// Read returns the stored blob, or ErrNoSession when the slot is empty.
	Read(ctx context.Context) (string, error)

	// Write replaces the slot content.
	Write(ctx context.Context, blob string) error

	// Delete empties the slot. Deleting an empty slot is not an error.
	Delete(ctx context.Context) error
}
