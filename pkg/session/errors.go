package session

import "errors"

var (
	// ErrNoSession indicates the storage slot is empty
	ErrNoSession = errors.New("session.not_found")

	// ErrInvalidRecord indicates a nil or unusable record was supplied
	ErrInvalidRecord = errors.New("session.invalid_record")

	// ErrEncodeFailed indicates the record could not be serialized
	ErrEncodeFailed = errors.New("session.encode_failed")

	// ErrDecodeFailed indicates the stored blob is corrupt
	ErrDecodeFailed = errors.New("session.decode_failed")

	// ErrStorageFailed indicates the underlying store rejected an operation
	ErrStorageFailed = errors.New("session.storage_failed")
)
