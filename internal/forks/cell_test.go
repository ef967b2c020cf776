package forks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func column(label string) Column {
	return Columns()[ColumnIndex(label)]
}

func TestDisplayCell_SizeMatch(t *testing.T) {
	origin := &Repository{FullName: "o/r", Size: 108}

	tests := []struct {
		name   string
		size   int
		origin *Repository
		want   Attention
	}{
		{name: "same size as origin", size: 108, origin: origin, want: AttentionSizeMatch},
		{name: "different size", size: 200, origin: origin, want: AttentionNone},
		{name: "origin not loaded", size: 108, origin: nil, want: AttentionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cell := DisplayCell(column("Size"), Repository{Size: tt.size}, tt.origin, nil)
			assert.Equal(t, tt.want, cell.Attention)
		})
	}
}

func TestDisplayCell_Stars(t *testing.T) {
	tests := []struct {
		stars int
		want  Attention
	}{
		{stars: 0, want: AttentionNone},
		{stars: 5, want: AttentionStarred},
	}

	for _, tt := range tests {
		cell := DisplayCell(column("Stars"), Repository{StargazersCount: tt.stars}, nil, nil)
		assert.Equal(t, tt.want, cell.Attention, "stars=%d", tt.stars)
	}
}

func TestDisplayCell_PushedAt(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	h := RelativeTime{Now: func() time.Time { return now }}

	cell := DisplayCell(column("Last Push"), Repository{PushedAt: now.Add(-72 * time.Hour)}, nil, h)
	assert.Equal(t, "3 days ago", cell.Text)
	assert.Equal(t, AttentionNone, cell.Attention)

	cell = DisplayCell(column("Last Push"), Repository{}, nil, h)
	assert.Empty(t, cell.Text)
}

func TestDisplayCell_DoesNotChangeRawValues(t *testing.T) {
	rec := Repository{FullName: "a/b", StargazersCount: 3, PushedAt: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)}
	row := Project(rec)

	cells := DisplayRow(Columns(), row, nil, RelativeTime{})
	assert.Len(t, cells, 9)
	assert.Equal(t, 3, row.Values[4])
	assert.Equal(t, rec.PushedAt, row.Values[8])
}

func TestAttention_String(t *testing.T) {
	assert.Equal(t, "size-match", AttentionSizeMatch.String())
	assert.Equal(t, "starred", AttentionStarred.String())
	assert.Empty(t, AttentionNone.String())
}
