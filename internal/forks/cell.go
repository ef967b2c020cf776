package forks

import (
	"time"

	"github.com/dustin/go-humanize"
)

// Attention marks a cell the views should highlight.
type Attention int

const (
	AttentionNone Attention = iota
	// AttentionSizeMatch: the fork is exactly as large as the origin.
	AttentionSizeMatch
	// AttentionStarred: the fork has at least one star.
	AttentionStarred
)

func (a Attention) String() string {
	switch a {
	case AttentionSizeMatch:
		return "size-match"
	case AttentionStarred:
		return "starred"
	}

	return ""
}

// Cell is a value as it appears on screen.
type Cell struct {
	Text      string
	Attention Attention
}

// Humanizer turns a timestamp into relative text such as "3 days ago".
type Humanizer interface {
	Humanize(t time.Time) string
}

// RelativeTime is the go-humanize backed Humanizer. A nil Now uses the
// wall clock.
type RelativeTime struct {
	Now func() time.Time
}

func (r RelativeTime) Humanize(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	now := time.Now()
	if r.Now != nil {
		now = r.Now()
	}

	return humanize.RelTime(t, now, "ago", "from now")
}

// DisplayCell renders one column of a record for display. Only the display
// pass applies these transforms; origin may be nil when the origin fetch
// has not completed or failed.
func DisplayCell(col Column, r Repository, origin *Repository, h Humanizer) Cell {
	raw := r.Value(col.Key)

	switch col.Key {
	case KeyPushedAt:
		if h == nil {
			h = RelativeTime{}
		}

		return Cell{Text: h.Humanize(r.PushedAt)}
	case KeySize:
		cell := Cell{Text: Text(raw)}
		if origin != nil && r.Size == origin.Size {
			cell.Attention = AttentionSizeMatch
		}

		return cell
	case KeyStargazersCount:
		cell := Cell{Text: Text(raw)}
		if r.StargazersCount > 0 {
			cell.Attention = AttentionStarred
		}

		return cell
	}

	return Cell{Text: Text(raw)}
}

// DisplayRow renders every column of a row.
func DisplayRow(columns []Column, row Row, origin *Repository, h Humanizer) []Cell {
	cells := make([]Cell, len(columns))
	for i, c := range columns {
		cells[i] = DisplayCell(c, row.Record, origin, h)
	}

	return cells
}
