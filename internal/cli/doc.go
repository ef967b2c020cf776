// Package cli provides the terminal views of activeforks.
//
// The package uses [Bubbletea] for the interactive page and [Lipgloss] for
// styling. The page follows the standard Bubbletea Model-View-Update (MVU)
// architecture; all state lives in a [page.Session] that the model reads
// from and applies fetch results to.
//
// # Regions
//
// The page view is built from named regions:
//   - q: the repository input, submitted with enter
//   - originRepoInfo: the origin panel, a definition list (see [RenderOrigin])
//   - data-body: the fork table, or an alert in its place (see [RenderBody])
//   - footer: "Showing x to y of z entries", hidden while an alert is shown
//
// The same render functions back the non-interactive show command through
// [Render].
//
// # Keys
//
// While the table has focus, 1-9 sort by a column (again to reverse), /
// searches every column, f filters by column ("Stars>0, Owner~bob"), l
// cycles the page length, n and p change page, esc dismisses the alert and
// d toggles the dark palette. tab moves focus between the input and the
// table.
//
// [Bubbletea]: https://github.com/charmbracelet/bubbletea
// [Lipgloss]: https://github.com/charmbracelet/lipgloss
package cli
