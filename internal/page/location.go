// Package page holds the state of the single fork page: the current query
// and its shareable location, the last origin, the fork table and the alert.
package page

import (
	"github.com/inovacc/activeforks/internal/giturl"
)

// Location is where the current query is reflected so the page can be
// shared and restored.
type Location interface {
	// Fragment returns the decoded fragment, or "" when there is none.
	Fragment() string
	// PushFragment records a new entry with the given decoded fragment.
	PushFragment(id string)
}

// History is the in-process Location: a list of entries over a base link.
// The zero value is usable.
type History struct {
	base    string
	entries []string
}

// NewHistory creates a history positioned at fragment. base is the link
// the fragment is appended to by Href.
func NewHistory(base, fragment string) *History {
	h := &History{base: base}
	if fragment != "" {
		h.entries = append(h.entries, fragment)
	}

	return h
}

// ParseHistory builds a history from a link such as
// "https://example.test/#octocat/Hello-World".
func ParseHistory(link string) (*History, error) {
	base, fragment, err := giturl.SplitLocation(link)
	if err != nil {
		return nil, err
	}

	return NewHistory(base, fragment), nil
}

func (h *History) Fragment() string {
	if len(h.entries) == 0 {
		return ""
	}

	return h.entries[len(h.entries)-1]
}

func (h *History) PushFragment(id string) {
	h.entries = append(h.entries, id)
}

// Len is the number of pushed entries, including the initial one.
func (h *History) Len() int {
	return len(h.entries)
}

// Entries returns a copy of the fragments in push order.
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)

	return out
}

// Href is the shareable link for the current entry.
func (h *History) Href() string {
	fragment := h.Fragment()
	if fragment == "" {
		return h.base
	}

	return h.base + "#" + giturl.EscapeFragment(fragment)
}
