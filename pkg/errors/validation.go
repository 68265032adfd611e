package errors

import (
	"strings"
	"unicode"
)

// maxKeywordLength bounds free-text search terms accepted from tool callers.
const maxKeywordLength = 256

// MaxPageLimit is the largest page size accepted for list-style queries.
const MaxPageLimit = 100

// ValidateKeyword validates a free-text search keyword.
// Empty keywords are valid and mean "no keyword filter".
//
// The validation rules are intentionally conservative:
//   - Maximum length of 256 characters
//   - No control characters or null bytes
func ValidateKeyword(keyword string) error {
	if len(keyword) > maxKeywordLength {
		return New(ErrCodeInvalidInput, "keyword too long (max %d characters)", maxKeywordLength)
	}
	for _, r := range keyword {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "keyword contains invalid control characters")
		}
	}
	return nil
}

// ValidateID validates an entity identity supplied by a caller.
// Snapshot ids are positive integers.
func ValidateID(field string, id int) error {
	if id <= 0 {
		return New(ErrCodeInvalidInput, "%s must be a positive integer, got %d", field, id)
	}
	return nil
}

// ValidateRange validates that v lies within [lo, hi].
func ValidateRange(field string, v, lo, hi int) error {
	if v < lo || v > hi {
		return New(ErrCodeInvalidInput, "%s must be between %d and %d, got %d", field, lo, hi, v)
	}
	return nil
}

// ValidatePage validates offset/limit slicing parameters.
func ValidatePage(limit, offset int) error {
	if err := ValidateRange("limit", limit, 0, MaxPageLimit); err != nil {
		return err
	}
	if offset < 0 {
		return New(ErrCodeInvalidInput, "offset cannot be negative, got %d", offset)
	}
	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}
