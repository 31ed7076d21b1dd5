package http

import "errors"

// Sentinel errors used by the authentication middleware when resolving the
// "Authorization" HTTP header. Callers can match against them with
// [errors.Is]. The two top-level failure modes carry deliberately distinct
// messages so that clients can tell a forgotten header apart from a bad
// credential.
var (
	// ErrCredentialNotPresent is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrCredentialNotPresent = errors.New("credential not present")

	// ErrCredentialInvalid is returned when the "Authorization" header is
	// present but carries an unknown scheme, a malformed value, or a
	// credential that fails verification.
	ErrCredentialInvalid = errors.New("credential invalid")
)
