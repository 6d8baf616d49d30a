package navigation

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// DefaultScheme is prepended to candidates that fail to parse as-is.
const DefaultScheme = "http://"

var (
	// ErrInvalidLocation means no completion rule produced a usable location.
	ErrInvalidLocation = errors.New("invalid location")
	// ErrOutOfRange means a history move had no valid target.
	ErrOutOfRange = errors.New("history index out of range")
)

// schemes lists the accepted schemes and whether they require a host.
var schemes = map[string]bool{
	"http":  true,
	"https": true,
	"ftp":   true,
	"file":  false,
}

// Location identifies a web resource by its normalized absolute URL.
// The zero value means "unset".
type Location struct {
	raw string
}

// ParseLocation parses raw as an absolute location without any completion.
func ParseLocation(raw string) (Location, error) {
	if raw == "" {
		return Location{}, fmt.Errorf("empty input: %w", ErrInvalidLocation)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return Location{}, fmt.Errorf("parsing %q: %w", raw, errors.Join(ErrInvalidLocation, err))
	}

	scheme := strings.ToLower(u.Scheme)
	needsHost, ok := schemes[scheme]
	if !ok {
		return Location{}, fmt.Errorf("unsupported scheme in %q: %w", raw, ErrInvalidLocation)
	}
	if needsHost && u.Hostname() == "" {
		return Location{}, fmt.Errorf("missing host in %q: %w", raw, ErrInvalidLocation)
	}

	u.Scheme = scheme
	u.Host = strings.ToLower(u.Host)
	return Location{raw: u.String()}, nil
}

// MustParseLocation is like ParseLocation but panics on error.
// Intended for tests and constants.
func MustParseLocation(raw string) Location {
	loc, err := ParseLocation(raw)
	if err != nil {
		panic(err)
	}
	return loc
}

// String returns the location's URL text.
func (l Location) String() string {
	return l.raw
}

// IsZero reports whether the location is unset.
func (l Location) IsZero() bool {
	return l.raw == ""
}
