package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// palette is one colour scheme of the page.
type palette struct {
	text    lipgloss.Color
	muted   lipgloss.Color
	accent  lipgloss.Color
	border  lipgloss.Color
	danger  lipgloss.Color
	info    lipgloss.Color
	starred lipgloss.Color
}

var (
	lightPalette = palette{
		text:    lipgloss.Color("235"),
		muted:   lipgloss.Color("244"),
		accent:  lipgloss.Color("25"),
		border:  lipgloss.Color("250"),
		danger:  lipgloss.Color("160"),
		info:    lipgloss.Color("31"),
		starred: lipgloss.Color("28"),
	}

	darkPalette = palette{
		text:    lipgloss.Color("252"),
		muted:   lipgloss.Color("240"),
		accent:  lipgloss.Color("86"),
		border:  lipgloss.Color("238"),
		danger:  lipgloss.Color("196"),
		info:    lipgloss.Color("39"),
		starred: lipgloss.Color("42"),
	}
)

// Styles holds the lipgloss styles of every region of the page.
type Styles struct {
	renderer *lipgloss.Renderer

	Doc        lipgloss.Style
	Title      lipgloss.Style
	Prompt     lipgloss.Style
	Label      lipgloss.Style
	Value      lipgloss.Style
	Header     lipgloss.Style
	Cell       lipgloss.Style
	SizeMatch  lipgloss.Style
	Starred    lipgloss.Style
	Border     lipgloss.Style
	Footer     lipgloss.Style
	Spinner    lipgloss.Style
	AlertInfo  lipgloss.Style
	AlertError lipgloss.Style
	Error      lipgloss.Style
}

// NewStyles builds the styles for output written to w. noColor forces the
// ASCII profile.
func NewStyles(w io.Writer, dark, noColor bool) Styles {
	var opts []termenv.OutputOption
	if noColor {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}

	r := lipgloss.NewRenderer(w, opts...)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}

	return newStyles(r, dark)
}

func newStyles(r *lipgloss.Renderer, dark bool) Styles {
	p := lightPalette
	if dark {
		p = darkPalette
	}

	r.SetHasDarkBackground(dark)

	alert := r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	return Styles{
		renderer:   r,
		Doc:        r.NewStyle().Margin(1, 2),
		Title:      r.NewStyle().Foreground(p.accent).Bold(true),
		Prompt:     r.NewStyle().Foreground(p.accent),
		Label:      r.NewStyle().Foreground(p.muted).Bold(true).Width(13),
		Value:      r.NewStyle().Foreground(p.text),
		Header:     r.NewStyle().Foreground(p.accent).Bold(true).Padding(0, 1),
		Cell:       r.NewStyle().Foreground(p.text).Padding(0, 1),
		SizeMatch:  r.NewStyle().Foreground(p.danger).Padding(0, 1),
		Starred:    r.NewStyle().Foreground(p.starred).Bold(true).Padding(0, 1),
		Border:     r.NewStyle().Foreground(p.border),
		Footer:     r.NewStyle().Foreground(p.muted),
		Spinner:    r.NewStyle().Foreground(p.accent),
		AlertInfo:  alert.BorderForeground(p.info).Foreground(p.info),
		AlertError: alert.BorderForeground(p.danger).Foreground(p.danger),
		Error:      r.NewStyle().Foreground(p.danger),
	}
}

// WithDark returns the same styles in the light or dark palette.
func (s Styles) WithDark(dark bool) Styles {
	return newStyles(s.renderer, dark)
}
