// Package userapi is the client for the external user/auth service: login,
// registration and profile fetches, plus the request authenticator that
// attaches the cached session token to outgoing calls.
//
// Responses arrive in a {"data": {...}} envelope; service-reported failures
// carry a message that surfaces as *APIError, transport failures as
// ErrRequestFailed. Passwords are reversibly transport-encoded before
// leaving the process - an obfuscation step the service expects, not a
// security control.
//
// # Usage
//
//	sessions := session.New(session.WithStore(store))
//	client := userapi.NewClient(
//	    userapi.WithHTTPClient(userapi.AuthenticatedHTTPClient(sessions)),
//	)
//
//	profile, err := client.Login(ctx, "a@b.com", "secret-password")
//	if apiErr, ok := userapi.AsAPIError(err); ok {
//	    // show apiErr.Message next to the form
//	}
package userapi
