// Package video resolves raw video URLs into provider identifiers.
package video

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidReference is returned when no video identifier can be extracted.
var ErrInvalidReference = errors.New("invalid video reference")

var reVideoID = regexp.MustCompile(`v=([^&]+)`)

// ParseID returns the value of the first v= parameter in rawURL, up to the next & or end of string.
func ParseID(rawURL string) (string, error) {
	if strings.TrimSpace(rawURL) == "" {
		return "", fmt.Errorf("empty url: %w", ErrInvalidReference)
	}

	m := reVideoID.FindStringSubmatch(rawURL)
	if m == nil {
		return "", fmt.Errorf("no v= parameter in %q: %w", rawURL, ErrInvalidReference)
	}

	return m[1], nil
}
