package socialhub

import (
	"errors"
	"fmt"
)

// ErrUnknownPlatform is matched by UnknownPlatformError via errors.Is.
var ErrUnknownPlatform = errors.New("unknown social media platform")

// UnknownPlatformError is returned when a platform cannot be resolved to an adapter.
type UnknownPlatformError struct {
	Value string
}

func (e UnknownPlatformError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownPlatform, e.Value)
}

func (e UnknownPlatformError) Is(target error) bool {
	return target == ErrUnknownPlatform
}

// ValidationError captures provider-specific validation issues.
type ValidationError struct {
	Provider string
	Reason   string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s validation failed: %s", e.Provider, e.Reason)
}

// UpstreamError wraps a failure reported by a platform API.
type UpstreamError struct {
	Provider string
	Err      error
}

func (e UpstreamError) Error() string {
	return fmt.Sprintf("%s api: %v", e.Provider, e.Err)
}

func (e UpstreamError) Unwrap() error { return e.Err }
