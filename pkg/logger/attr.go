package logger

import (
	"log/slog"
)

// Error returns a standardized attribute for a single error.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String("error", err.Error())
}

// Email tags a record with the acting user's email.
func Email(email string) slog.Attr {
	return slog.String("email", email)
}

// Region tags a record with the region being browsed.
func Region(region string) slog.Attr {
	return slog.String("region", region)
}

// Query tags a record with a search query.
func Query(q string) slog.Attr {
	return slog.String("query", q)
}

// CountryCode tags a record with a cca3 country code.
func CountryCode(code string) slog.Attr {
	return slog.String("code", code)
}

// RequestID tags a record with an outbound request correlation ID.
func RequestID(id string) slog.Attr {
	return slog.String("request_id", id)
}
