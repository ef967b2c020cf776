package cli

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/activeforks/internal/application"
	"github.com/inovacc/activeforks/internal/forks"
	"github.com/inovacc/activeforks/internal/page"
)

type focus int

const (
	focusQuery focus = iota
	focusTable
	focusSearch
	focusFilter
)

// criteriaSeparator separates column filters typed in the filter input.
const criteriaSeparator = ","

type fetchedMsg struct {
	result page.Result
}

// PageModel is the interactive fork page.
type PageModel struct {
	session *page.Session
	keys    KeyMap
	styles  Styles
	dark    bool

	query     textinput.Model
	search    textinput.Model
	filter    textinput.Model
	spinner   spinner.Model
	paginator paginator.Model
	help      help.Model

	focus     focus
	initial   []page.Task
	filterErr error
	quitting  bool
}

// NewPageModel creates the page over session and restores the query from
// the session's location. The restored fetches start with Init.
func NewPageModel(session *page.Session, styles Styles, dark bool) PageModel {
	q := textinput.New()
	q.Prompt = "Repo › "
	q.Placeholder = "owner/repo or https://github.com/owner/repo"
	q.CharLimit = 200
	q.Width = 60
	q.PromptStyle = styles.Prompt
	q.Focus()

	search := textinput.New()
	search.Prompt = "Search: "
	search.CharLimit = 100
	search.Width = 40

	filter := textinput.New()
	filter.Prompt = "Filter: "
	filter.Placeholder = "Stars>0, Owner~bob, Last Push>=2024-01-01"
	filter.CharLimit = 200
	filter.Width = 60

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Spinner

	p := paginator.New()
	p.Type = paginator.Arabic

	m := PageModel{
		session:   session,
		keys:      DefaultKeyMap,
		styles:    styles.WithDark(dark),
		dark:      dark,
		query:     q,
		search:    search,
		filter:    filter,
		spinner:   s,
		paginator: p,
		help:      help.New(),
	}

	m.initial = session.Load()
	m.query.SetValue(session.Query())

	if len(m.initial) > 0 {
		m.focusTable()
	}

	return m
}

func (m PageModel) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if len(m.initial) > 0 {
		cmds = append(cmds, m.spinner.Tick)
		cmds = append(cmds, fetchCmds(m.initial)...)
	}

	return tea.Batch(cmds...)
}

func fetchCmds(tasks []page.Task) []tea.Cmd {
	cmds := make([]tea.Cmd, len(tasks))
	for i, t := range tasks {
		cmds[i] = func() tea.Msg {
			return fetchedMsg{result: t.Do()}
		}
	}

	return cmds
}

func (m PageModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

		return m, nil

	case fetchedMsg:
		m.session.Apply(msg.result)

		return m, nil

	case spinner.TickMsg:
		if !m.session.Loading() {
			return m, nil
		}

		var cmd tea.Cmd

		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m.quit()
		}

		switch m.focus {
		case focusQuery:
			return m.updateQuery(msg)
		case focusSearch:
			return m.updateSearch(msg)
		case focusFilter:
			return m.updateFilter(msg)
		default:
			return m.updateTable(msg)
		}
	}

	return m.updateInput(msg)
}

func (m PageModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.session.Close()

	return m, tea.Quit
}

func (m PageModel) updateQuery(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		tasks := m.session.Submit(m.query.Value())
		m.query.SetValue(m.session.Query())

		if len(tasks) == 0 {
			return m, nil
		}

		m.focusTable()

		return m, tea.Batch(append(fetchCmds(tasks), m.spinner.Tick)...)

	case key.Matches(msg, m.keys.FocusToggle):
		m.focusTable()

		return m, nil

	case key.Matches(msg, m.keys.DismissAlert):
		m.session.DismissAlert()

		return m, nil
	}

	return m.updateInput(msg)
}

func (m PageModel) updateTable(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tbl := m.session.Table()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.FocusToggle):
		m.focus = focusQuery
		m.query.Focus()

		return m, textinput.Blink

	case key.Matches(msg, m.keys.Sort):
		col := int(msg.String()[0] - '1')
		_ = tbl.ToggleSort(col)

	case key.Matches(msg, m.keys.Search):
		m.focus = focusSearch
		m.search.SetValue(tbl.Search())
		m.search.Focus()

		return m, textinput.Blink

	case key.Matches(msg, m.keys.Filter):
		m.focus = focusFilter
		m.filter.SetValue(criteriaText(tbl.Criteria()))
		m.filter.Focus()

		return m, textinput.Blink

	case key.Matches(msg, m.keys.PageLength):
		tbl.CyclePageLength()

	case key.Matches(msg, m.keys.NextPage):
		tbl.SetPage(tbl.Page() + 1)

	case key.Matches(msg, m.keys.PrevPage):
		tbl.SetPage(tbl.Page() - 1)

	case key.Matches(msg, m.keys.DismissAlert):
		m.session.DismissAlert()

	case key.Matches(msg, m.keys.DarkMode):
		m.dark = !m.dark
		m.styles = m.styles.WithDark(m.dark)
		m.query.PromptStyle = m.styles.Prompt
		m.spinner.Style = m.styles.Spinner
	}

	return m, nil
}

func (m PageModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.focusTable()

		return m, nil

	case tea.KeyEsc:
		m.session.Table().SetSearch("")
		m.focusTable()

		return m, nil
	}

	var cmd tea.Cmd

	m.search, cmd = m.search.Update(msg)
	m.session.Table().SetSearch(m.search.Value())

	return m, cmd
}

func (m PageModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		criteria, err := forks.ParseCriteria(strings.Split(m.filter.Value(), criteriaSeparator))
		if err != nil {
			m.filterErr = err

			return m, nil
		}

		m.session.Table().SetCriteria(criteria)
		m.focusTable()

		return m, nil

	case tea.KeyEsc:
		m.focusTable()

		return m, nil
	}

	var cmd tea.Cmd

	m.filter, cmd = m.filter.Update(msg)

	return m, cmd
}

func (m PageModel) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.focus {
	case focusQuery:
		m.query, cmd = m.query.Update(msg)
	case focusSearch:
		m.search, cmd = m.search.Update(msg)
	case focusFilter:
		m.filter, cmd = m.filter.Update(msg)
	}

	return m, cmd
}

func (m *PageModel) focusTable() {
	m.focus = focusTable
	m.filterErr = nil
	m.query.Blur()
	m.search.Blur()
	m.filter.Blur()
}

func criteriaText(criteria []forks.Criterion) string {
	exprs := make([]string, len(criteria))
	for i, c := range criteria {
		exprs[i] = c.String()
	}

	return strings.Join(exprs, criteriaSeparator+" ")
}

func (m PageModel) View() string {
	if m.quitting {
		return ""
	}

	st := m.styles
	sections := []string{st.Title.Render(application.AppName) + m.shareLink(), m.query.View()}

	switch m.focus {
	case focusSearch:
		sections = append(sections, m.search.View())
	case focusFilter:
		line := m.filter.View()
		if m.filterErr != nil {
			line += "\n" + st.Error.Render(m.filterErr.Error())
		}

		sections = append(sections, line)
	}

	if origin := RenderOrigin(m.session.OriginFields(), st); origin != "" {
		sections = append(sections, origin)
	}

	if m.session.Loading() {
		sections = append(sections, m.spinner.View()+" Loading "+m.session.Query())
	}

	sections = append(sections, RenderBody(m.session, st, true))

	if m.session.Alert() == nil {
		tbl := m.session.Table()
		p := m.paginator
		p.TotalPages = tbl.PageCount()
		p.Page = tbl.Page()

		sections = append(sections, st.Footer.Render(FooterText(tbl)+"  page "+p.View()))
	}

	sections = append(sections, m.help.View(m.keys))

	return st.Doc.Render(strings.Join(sections, "\n\n"))
}

func (m PageModel) shareLink() string {
	loc, ok := m.session.Location().(interface{ Href() string })
	if !ok || m.session.Location().Fragment() == "" {
		return ""
	}

	return "  " + m.styles.Footer.Render(loc.Href())
}

// Dark reports whether the dark palette is active.
func (m PageModel) Dark() bool {
	return m.dark
}
