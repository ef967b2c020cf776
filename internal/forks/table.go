package forks

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// PageLength is the number of rows per page; PageLengthAll disables paging.
type PageLength int

const PageLengthAll PageLength = -1

// PageLengths are the selectable page lengths, in cycling order.
var PageLengths = []PageLength{25, 50, PageLengthAll}

func (p PageLength) String() string {
	if p == PageLengthAll {
		return "All"
	}

	return fmt.Sprintf("%d", int(p))
}

// ParsePageLength accepts 25, 50 or "all".
func ParsePageLength(s string) (PageLength, error) {
	for _, p := range PageLengths {
		if strings.EqualFold(s, p.String()) {
			return p, nil
		}
	}

	return 0, fmt.Errorf("invalid page length %q: expected 25, 50 or all", s)
}

// SortSpec is the active sort column and direction.
type SortSpec struct {
	Column int
	Desc   bool
}

// Table is the fork table state. Raw values drive sorting and filtering;
// display text is produced separately by DisplayCell.
type Table struct {
	columns    []Column
	rows       []Row
	view       []int
	sort       SortSpec
	search     string
	criteria   []Criterion
	pageLength PageLength
	page       int
}

// NewTable returns an empty table sorted by stars, descending, 25 rows per page.
func NewTable() *Table {
	return &Table{
		columns:    Columns(),
		sort:       SortSpec{Column: ColumnIndex(SortColumnLabel), Desc: true},
		pageLength: PageLengths[0],
	}
}

// Columns returns the table's column model.
func (t *Table) Columns() []Column {
	return t.columns
}

// SetRecords replaces the table contents and returns to the first page.
func (t *Table) SetRecords(records []Repository) {
	t.rows = make([]Row, len(records))
	for i, r := range records {
		t.rows[i] = Project(r)
	}

	t.page = 0
	t.refresh()
}

// Clear removes every row.
func (t *Table) Clear() {
	t.SetRecords(nil)
}

// Len is the number of rows before filtering.
func (t *Table) Len() int {
	return len(t.rows)
}

// FilteredLen is the number of rows that pass the search and criteria.
func (t *Table) FilteredLen() int {
	return len(t.view)
}

// Sort returns the active sort.
func (t *Table) Sort() SortSpec {
	return t.sort
}

// SortBy sorts by the given column index.
func (t *Table) SortBy(column int, desc bool) error {
	if column < 0 || column >= len(t.columns) {
		return fmt.Errorf("sort column %d out of range", column)
	}

	t.sort = SortSpec{Column: column, Desc: desc}
	t.refresh()

	return nil
}

// ToggleSort flips the direction when column is already sorted, otherwise
// sorts it ascending.
func (t *Table) ToggleSort(column int) error {
	desc := false
	if t.sort.Column == column {
		desc = !t.sort.Desc
	}

	return t.SortBy(column, desc)
}

// Search returns the global search text.
func (t *Table) Search() string {
	return t.search
}

// SetSearch sets the global search text and returns to the first page.
func (t *Table) SetSearch(s string) {
	t.search = strings.TrimSpace(s)
	t.page = 0
	t.refresh()
}

// Criteria returns the active column filters.
func (t *Table) Criteria() []Criterion {
	return t.criteria
}

// SetCriteria replaces the column filters and returns to the first page.
func (t *Table) SetCriteria(c []Criterion) {
	t.criteria = c
	t.page = 0
	t.refresh()
}

// PageLength returns the rows per page.
func (t *Table) PageLength() PageLength {
	return t.pageLength
}

// SetPageLength changes the rows per page.
func (t *Table) SetPageLength(p PageLength) error {
	if p != PageLengthAll && p <= 0 {
		return fmt.Errorf("invalid page length %d", p)
	}

	t.pageLength = p
	t.page = 0

	return nil
}

// CyclePageLength moves to the next entry of PageLengths.
func (t *Table) CyclePageLength() PageLength {
	next := PageLengths[0]

	for i, p := range PageLengths {
		if p == t.pageLength {
			next = PageLengths[(i+1)%len(PageLengths)]
			break
		}
	}

	_ = t.SetPageLength(next)

	return next
}

// PageCount is the number of pages for the filtered rows, at least one.
func (t *Table) PageCount() int {
	if t.pageLength == PageLengthAll || len(t.view) == 0 {
		return 1
	}

	n := int(t.pageLength)

	return (len(t.view) + n - 1) / n
}

// Page returns the zero-based current page.
func (t *Table) Page() int {
	return t.page
}

// SetPage moves to page p, clamped to the valid range.
func (t *Table) SetPage(p int) {
	last := t.PageCount() - 1
	switch {
	case p < 0:
		p = 0
	case p > last:
		p = last
	}

	t.page = p
}

// Visible returns the rows of the current page in sorted order.
func (t *Table) Visible() []Row {
	start, end := 0, len(t.view)

	if t.pageLength != PageLengthAll {
		n := int(t.pageLength)
		start = t.page * n
		end = min(start+n, len(t.view))
	}

	if start >= end {
		return nil
	}

	out := make([]Row, 0, end-start)
	for _, idx := range t.view[start:end] {
		out = append(out, t.rows[idx])
	}

	return out
}

// Range returns the one-based bounds of the current page, for
// "Showing x to y of z entries".
func (t *Table) Range() (from, to int) {
	if len(t.view) == 0 {
		return 0, 0
	}

	if t.pageLength == PageLengthAll {
		return 1, len(t.view)
	}

	n := int(t.pageLength)
	from = t.page*n + 1
	to = min(from+n-1, len(t.view))

	return from, to
}

func (t *Table) refresh() {
	view := make([]int, 0, len(t.rows))

	for i, row := range t.rows {
		if !matchesSearch(row, t.search) {
			continue
		}

		keep := true
		for _, c := range t.criteria {
			if !c.Match(row) {
				keep = false
				break
			}
		}

		if keep {
			view = append(view, i)
		}
	}

	col, desc := t.sort.Column, t.sort.Desc
	sort.SliceStable(view, func(a, b int) bool {
		cmp := compareValues(t.rows[view[a]].Values[col], t.rows[view[b]].Values[col])
		if desc {
			return cmp > 0
		}

		return cmp < 0
	})

	t.view = view
	t.SetPage(t.page)
}

func compareValues(a, b any) int {
	switch av := a.(type) {
	case int:
		if bv, ok := b.(int); ok {
			return compareInts(av, bv)
		}
	case time.Time:
		if bv, ok := b.(time.Time); ok {
			return av.Compare(bv)
		}
	}

	return strings.Compare(strings.ToLower(Text(a)), strings.ToLower(Text(b)))
}
