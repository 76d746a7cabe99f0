package session

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"time"
)

// Record is the cached credential blob: the token issued by the user service
// plus the profile fields the app renders, and an expiry stamped at write
// time. The wire format (base64 of JSON, millisecond epoch expiry) matches
// what the user service's web clients store, so blobs are interchangeable.
type Record struct {
	Token          string `json:"token"`
	Email          string `json:"email"`
	Name           string `json:"name,omitempty"`
	ProfilePicture string `json:"profilePicture,omitempty"`

	// Expires is a Unix timestamp in milliseconds. Zero means never stamped;
	// such records are treated as expired.
	Expires int64 `json:"expires"`
}

// ExpiresAt returns the expiry as a time.Time.
func (r *Record) ExpiresAt() time.Time {
	return time.UnixMilli(r.Expires)
}

// ExpiredAt reports whether the record is expired relative to now.
func (r *Record) ExpiredAt(now time.Time) bool {
	return r == nil || r.Expires == 0 || now.UnixMilli() > r.Expires
}

// Encode serializes the record into the opaque storage blob.
func (r *Record) Encode() (string, error) {
	if r == nil {
		return "", ErrInvalidRecord
	}
	raw, err := json.Marshal(r)
	if err != nil {
		return "", errors.Join(ErrEncodeFailed, err)
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// DecodeRecord parses a storage blob back into a Record. Any malformed input
// yields ErrDecodeFailed; callers treat that as an absent session.
func DecodeRecord(blob string) (*Record, error) {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return nil, errors.Join(ErrDecodeFailed, err)
	}

	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, errors.Join(ErrDecodeFailed, err)
	}
	return &rec, nil
}
