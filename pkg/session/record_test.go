package session_test

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/countrykit/pkg/session"
)

func TestRecordEncodeDecode(t *testing.T) {
	rec := &session.Record{
		Token:          "tok-123",
		Email:          "a@b.com",
		Name:           "Ada",
		ProfilePicture: "https://example.com/me.png",
		Expires:        time.Now().Add(time.Hour).UnixMilli(),
	}

	blob, err := rec.Encode()
	require.NoError(t, err)

	// The blob must be plain base64, decodable by any other client of the
	// same storage format.
	_, err = base64.StdEncoding.DecodeString(blob)
	require.NoError(t, err)

	decoded, err := session.DecodeRecord(blob)
	require.NoError(t, err)
	assert.Equal(t, rec, decoded)
}

func TestDecodeRecordCorruptInput(t *testing.T) {
	tests := []struct {
		name string
		blob string
	}{
		{name: "not base64", blob: "%%%not-base64%%%"},
		{name: "base64 of non-json", blob: base64.StdEncoding.EncodeToString([]byte("hello"))},
		{name: "empty", blob: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := session.DecodeRecord(tt.blob)
			assert.Nil(t, rec)
			assert.ErrorIs(t, err, session.ErrDecodeFailed)
		})
	}
}

func TestRecordExpiredAt(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		rec     *session.Record
		expired bool
	}{
		{name: "nil record", rec: nil, expired: true},
		{name: "unstamped record", rec: &session.Record{Token: "t"}, expired: true},
		{
			name:    "future expiry",
			rec:     &session.Record{Token: "t", Expires: now.Add(time.Minute).UnixMilli()},
			expired: false,
		},
		{
			name:    "past expiry",
			rec:     &session.Record{Token: "t", Expires: now.Add(-time.Minute).UnixMilli()},
			expired: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expired, tt.rec.ExpiredAt(now))
		})
	}
}
