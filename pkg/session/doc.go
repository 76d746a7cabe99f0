// Package session owns the single cached credential record gating the app:
// issue, validate, expire and clear, against pluggable durable storage.
//
// The package is storage-agnostic: any backend satisfying the Store interface
// can hold the blob. A file store (the terminal analogue of localStorage), an
// in-memory store and a Redis store ship out of the box. The blob format is
// base64 over JSON with a millisecond-epoch expiry, byte-compatible with what
// the user service's web clients persist.
//
// # Architecture
//
//	┌──────────┐ Put/Get/Clear ┌─────────┐ Read/Write/Delete ┌───────┐
//	│ Consumer │ ────────────► │ Manager │ ────────────────► │ Store │
//	└──────────┘               └─────────┘                   └───────┘
//	                            TTL stamp                 (file, memory,
//	                            expiry eviction               redis)
//
// The Manager enforces the lifecycle invariants: expiry is stamped at write
// time and never extended by reads; a read that finds an expired or corrupt
// blob evicts it as a side effect; storage failures degrade to "no session"
// and are logged, never returned.
//
// # Usage
//
//	manager := session.New(
//	    session.WithStore(session.NewFileStore(cfg.StorageDir())),
//	    session.WithTTL(cfg.TTL),
//	)
//
//	manager.Put(ctx, &session.Record{Token: token, Email: email})
//	if rec := manager.Get(ctx); rec != nil {
//	    // authenticated
//	}
//	manager.Clear(ctx)
package session
