package profile

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrProfileNotSupported is the single rejection kind returned by a
	// profile's Supports method. The wrapping error carries the reason.
	ErrProfileNotSupported = errors.New("profile not supported")

	ErrInvalidContext   = errors.New("invalid profile context")
	ErrUnknownProfile   = errors.New("unknown profile")
	ErrDuplicateProfile = errors.New("duplicate profile")
)

// NotSupportedError is returned by a profile when it cannot satisfy the
// request described by a Context.
type NotSupportedError struct {
	Profile string
	Reason  string
}

func notSupported(profile Profile, reason string, args ...any) *NotSupportedError {
	return &NotSupportedError{Profile: profile.Name(), Reason: fmt.Sprintf(reason, args...)}
}

func (e *NotSupportedError) Error() string {
	return fmt.Sprintf("%s: %s", e.Profile, e.Reason)
}

func (e *NotSupportedError) Unwrap() error { return ErrProfileNotSupported }

// Rejection pairs a candidate profile with the reason it declined a request.
type Rejection struct {
	Profile Profile
	Err     error
}

// NoProfileError is returned by selection when every candidate profile
// rejected the request. Every individual rejection is retained so that the
// caller can report why nothing matched.
type NoProfileError struct {
	Rejections []Rejection
}

func (e *NoProfileError) Error() string {
	if len(e.Rejections) == 0 {
		return "no profile matched: no candidate profiles"
	}

	reasons := make([]string, 0, len(e.Rejections))
	for _, r := range e.Rejections {
		reasons = append(reasons, r.Err.Error())
	}

	return "no profile matched: " + strings.Join(reasons, "; ")
}

func (e *NoProfileError) Unwrap() error { return ErrProfileNotSupported }
