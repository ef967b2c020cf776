package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/inovacc/activeforks/internal/forks"
	"github.com/inovacc/activeforks/internal/page"
)

const (
	emptyTableText = "No data available in table"
	noMatchText    = "No matching records found"
	sortAscMark    = " ▲"
	sortDescMark   = " ▼"
)

// RenderOrigin renders the origin panel as a definition list, one
// label/value pair per column. It returns "" when no origin is loaded.
func RenderOrigin(fields []forks.Field, st Styles) string {
	if len(fields) == 0 {
		return ""
	}

	lines := make([]string, len(fields))
	for i, f := range fields {
		lines[i] = lipgloss.JoinHorizontal(lipgloss.Top, st.Label.Render(f.Label), st.Value.Render(f.Value))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// RenderTable renders the displayed cells of one page of the fork table.
// The sort column carries a direction marker.
func RenderTable(columns []forks.Column, cells [][]forks.Cell, sort forks.SortSpec, st Styles) string {
	headers := make([]string, len(columns))
	for i, c := range columns {
		headers[i] = c.Label

		if i == sort.Column {
			if sort.Desc {
				headers[i] += sortDescMark
			} else {
				headers[i] += sortAscMark
			}
		}
	}

	rows := make([][]string, len(cells))
	for i, row := range cells {
		rows[i] = make([]string, len(row))
		for j, c := range row {
			rows[i][j] = c.Text
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(st.Border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return st.Header
			}

			if row < 0 || row >= len(cells) || col >= len(cells[row]) {
				return st.Cell
			}

			switch cells[row][col].Attention {
			case forks.AttentionSizeMatch:
				return st.SizeMatch
			case forks.AttentionStarred:
				return st.Starred
			}

			return st.Cell
		})

	return t.String()
}

// RenderBody renders the results region: the alert when one is shown,
// otherwise the table of the current page.
func RenderBody(s *page.Session, st Styles, dismissible bool) string {
	if a := s.Alert(); a != nil {
		return RenderAlert(*a, st, dismissible)
	}

	tbl := s.Table()
	out := RenderTable(tbl.Columns(), s.Cells(), tbl.Sort(), st)

	switch {
	case tbl.Len() == 0:
		out += "\n" + st.Footer.Render(emptyTableText)
	case tbl.FilteredLen() == 0:
		out += "\n" + st.Footer.Render(noMatchText)
	}

	return out
}

// RenderAlert renders a notice in place of the results.
func RenderAlert(a forks.Alert, st Styles, dismissible bool) string {
	style := st.AlertInfo
	mark := "i"

	if a.Severity == forks.SeverityDanger {
		style = st.AlertError
		mark = "✗"
	}

	msg := mark + " " + a.Message
	if dismissible {
		msg += "  " + st.Footer.Render("(esc to dismiss)")
	}

	return style.Render(msg)
}

// FooterText summarizes the visible entries the way the table footer
// shows them, e.g. "Showing 1 to 25 of 60 entries".
func FooterText(t *forks.Table) string {
	from, to := t.Range()

	var b strings.Builder

	fmt.Fprintf(&b, "Showing %d to %d of %d entries", from, to, t.FilteredLen())

	if t.FilteredLen() != t.Len() {
		fmt.Fprintf(&b, " (filtered from %d total entries)", t.Len())
	}

	if t.Search() != "" {
		fmt.Fprintf(&b, " · search %q", t.Search())
	}

	if criteria := t.Criteria(); len(criteria) > 0 {
		exprs := make([]string, len(criteria))
		for i, c := range criteria {
			exprs[i] = c.String()
		}

		fmt.Fprintf(&b, " · filter %s", strings.Join(exprs, ", "))
	}

	fmt.Fprintf(&b, " · %s per page", t.PageLength())

	return b.String()
}

// Render writes the origin panel, the results region and the footer of a
// session to w. The footer is left out while an alert is shown.
func Render(w io.Writer, s *page.Session, st Styles) error {
	var sections []string

	if origin := RenderOrigin(s.OriginFields(), st); origin != "" {
		sections = append(sections, st.Title.Render(s.Query()), origin)
	}

	sections = append(sections, RenderBody(s, st, false))

	if s.Alert() == nil {
		sections = append(sections, st.Footer.Render(FooterText(s.Table())))
	}

	_, err := fmt.Fprintln(w, strings.Join(sections, "\n\n"))

	return err
}
