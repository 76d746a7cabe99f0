package userapi

import "encoding/base64"

// EncodePassword applies the reversible transport encoding the user service
// expects on login and register payloads. This is obfuscation only - anyone
// observing the transport can reverse it - and must never be mistaken for a
// cryptographic control. The service hashes server-side.
func EncodePassword(password string) string {
	return base64.StdEncoding.EncodeToString([]byte(password))
}

// DecodePassword reverses EncodePassword. Exists to make the round-trip
// property explicit and testable; production code never decodes.
func DecodePassword(encoded string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
