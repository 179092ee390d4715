package moysklad

import "fmt"

// AuthError indicates the token handshake was rejected or the response was
// malformed. Authentication is not retried.
type AuthError struct {
	Status int
	Reason string
}

func (e *AuthError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("moysklad: authentication failed (status %d): %s", e.Status, e.Reason)
	}
	return fmt.Sprintf("moysklad: authentication failed: %s", e.Reason)
}

// FetchError indicates a transport-level failure (connection, timeout) on an
// API call. It is distinct from a non-success API response, which degrades
// to an empty collection instead.
type FetchError struct {
	Endpoint string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("moysklad: fetch %s: %v", e.Endpoint, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
