package giturl

import (
	"fmt"
	"net/url"
	"strings"
)

// SplitLocation separates a page link into its base and decoded fragment.
// A link without '#' has an empty fragment.
//
// This allows starting from:
//   - (Shared link)  https://example.org/activeforks/#octocat/Hello-World
//   - (Bare anchor)  #octocat%2FHello-World
func SplitLocation(rawURL string) (base, fragment string, err error) {
	base, escaped, found := strings.Cut(rawURL, "#")
	if !found || escaped == "" {
		return base, "", nil
	}

	fragment, err = url.PathUnescape(escaped)
	if err != nil {
		return "", "", fmt.Errorf("invalid fragment in %q: %w", rawURL, err)
	}

	return base, fragment, nil
}

// EscapeFragment percent-encodes an identifier for use as a location
// fragment, keeping the slash between owner and repo readable.
func EscapeFragment(id string) string {
	parts := strings.Split(id, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}

	return strings.Join(parts, "/")
}

// IsLocation reports whether the argument carries a fragment rather than a
// bare identifier.
func IsLocation(arg string) bool {
	return strings.Contains(arg, "#")
}
