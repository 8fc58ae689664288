package apperror

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure categories the usecases care about.
// Callers match them with errors.Is.
var (
	// ErrValidation marks caller input that must be corrected, never retried.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound marks a lookup miss for a post or remote file.
	ErrNotFound = errors.New("document not found")
	// ErrRemoteUnavailable marks a transient remote failure. Reads fall back
	// to the local mirror; writes surface it to the caller.
	ErrRemoteUnavailable = errors.New("remote content store unavailable")
	// ErrConcurrentModification marks a version-hash precondition mismatch.
	// The caller must refetch and resubmit; the write is never retried here.
	ErrConcurrentModification = errors.New("concurrent modification")
	// ErrConfiguration marks missing credentials or target configuration.
	ErrConfiguration = errors.New("configuration missing")
	// ErrRemoteAuth marks an invalid, expired or insufficiently scoped credential.
	ErrRemoteAuth = errors.New("remote authentication failed")
)

// Validationf wraps ErrValidation with a caller-facing message.
func Validationf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrValidation)...)
}

// NotFoundf wraps ErrNotFound with a caller-facing message.
func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrNotFound)...)
}

// Configurationf wraps ErrConfiguration with a caller-facing message.
func Configurationf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrConfiguration)...)
}

// RemoteError carries an unmapped remote failure status and the raw
// remote-provided text, so the caller still sees something actionable.
type RemoteError struct {
	Status int
	Body   string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote request failed with status %d: %s", e.Status, e.Body)
}
