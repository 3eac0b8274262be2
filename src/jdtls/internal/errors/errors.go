package errors

import stderr "errors"

// New returns an error that formats as the given text.
// Each call to New returns a distinct error value even if the text is identical.
func New(msg string) error {
	return stderr.New(msg)
}

var (
	// NoSessionOnContextError reports that the request context carries no session UUID.
	NoSessionOnContextError = New("no session UUID on context")
	// NoActiveSessionError reports that no session is active for the requested workspace root.
	NoActiveSessionError = New("no active session for workspace root")
	// Cancelled marks a round trip resolved by caller cancellation. It is an
	// outcome rather than a failure and must not be surfaced as an error message.
	Cancelled = New("cancelled")
)

// IsCancelled reports whether the error represents caller cancellation.
func IsCancelled(e error) bool {
	return stderr.Is(e, Cancelled)
}

// IsBadRequest reports whether the error is a bad request from the caller.
func IsBadRequest(e error) bool {
	return stderr.Is(e, NoSessionOnContextError) || stderr.Is(e, NoActiveSessionError)
}
