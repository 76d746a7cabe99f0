package countries

import "errors"

var (
	// ErrFetchFailed indicates a transport or service failure on any call
	ErrFetchFailed = errors.New("countries.fetch_failed")

	// ErrNotFound indicates no country exists for the requested code
	ErrNotFound = errors.New("countries.not_found")

	// ErrEmptyArgument indicates a blank name, region or code was requested
	ErrEmptyArgument = errors.New("countries.empty_argument")
)
