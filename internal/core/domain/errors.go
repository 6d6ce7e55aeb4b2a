package domain

import "errors"

// ============================================================================
// Gallery Errors
// ============================================================================

var (
	ErrFetchInProgress = errors.New("a fetch is already in progress")
	ErrGalleryClosed   = errors.New("gallery is shutting down")
)

// ============================================================================
// Upstream Errors
// ============================================================================

var (
	ErrUpstreamUnavailable = errors.New("artworks API unavailable")
	ErrUpstreamStatus      = errors.New("artworks API returned an unexpected status")
	ErrUpstreamDecode      = errors.New("artworks API returned a malformed body")
)

// ============================================================================
// Fetch Log Errors
// ============================================================================

var (
	ErrFetchLogDisabled = errors.New("fetch log is not enabled")
	ErrInvalidLimit     = errors.New("limit must be between 1 and 100")
)
