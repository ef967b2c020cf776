package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/inovacc/activeforks/internal/forks"
	"github.com/inovacc/activeforks/internal/giturl"
	"github.com/inovacc/activeforks/internal/page"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	origin    forks.Repository
	forks     []forks.Repository
	originErr error
	forksErr  error
}

func (f stubFetcher) FetchOrigin(context.Context, giturl.RepoID) (forks.Repository, error) {
	return f.origin, f.originErr
}

func (f stubFetcher) FetchForks(context.Context, giturl.RepoID) ([]forks.Repository, error) {
	return f.forks, f.forksErr
}

func helloWorldFetcher() stubFetcher {
	pushed := time.Now().Add(-72 * time.Hour)

	return stubFetcher{
		origin: forks.Repository{FullName: "octocat/Hello-World", Name: "Hello-World", Size: 108, StargazersCount: 80},
		forks: []forks.Repository{
			{FullName: "alice/Hello-World", Name: "Hello-World", Size: 108, PushedAt: pushed, Owner: &forks.Owner{Login: "alice"}},
			{FullName: "bob/Hello-World", Name: "Hello-World", Size: 12, StargazersCount: 5, PushedAt: pushed, Owner: &forks.Owner{Login: "bob"}},
		},
	}
}

func plainStyles() Styles {
	return NewStyles(io.Discard, false, true)
}

func loadedSession(t *testing.T, fetcher page.Fetcher, loc page.Location) *page.Session {
	t.Helper()

	s := page.NewSession(context.Background(), page.Config{
		Fetcher:  fetcher,
		Location: loc,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	t.Cleanup(s.Close)

	return s
}

func TestRenderOrigin(t *testing.T) {
	assert.Empty(t, RenderOrigin(nil, plainStyles()))

	out := RenderOrigin(forks.OriginFields(helloWorldFetcher().origin), plainStyles())
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 9)

	assert.Contains(t, lines[0], "https://github.com/octocat/Hello-World")
	assert.Contains(t, lines[1], "Unknown")
	assert.Contains(t, lines[4], "80")
	assert.Contains(t, lines[7], "108")
}

func TestRenderTable(t *testing.T) {
	s := loadedSession(t, helloWorldFetcher(), nil)
	require.NoError(t, s.Run(s.Submit("octocat/Hello-World")))

	tbl := s.Table()
	out := RenderTable(tbl.Columns(), s.Cells(), tbl.Sort(), plainStyles())

	assert.Contains(t, out, "Stars ▼")
	assert.Contains(t, out, "Last Push")
	assert.Contains(t, out, "3 days ago")
	assert.Less(t, strings.Index(out, "bob"), strings.Index(out, "alice"), "stars descending")
}

func TestRenderBody_EmptyAndAlert(t *testing.T) {
	s := loadedSession(t, helloWorldFetcher(), nil)
	assert.Contains(t, RenderBody(s, plainStyles(), true), "No data available in table")

	s.Submit("not a repo/at all/x")
	out := RenderBody(s, plainStyles(), true)
	assert.Contains(t, out, "Invalid GitHub repository! Format is <username>/<repo>")
	assert.Contains(t, out, "esc to dismiss")
	assert.NotContains(t, RenderBody(s, plainStyles(), false), "esc to dismiss")
}

func TestFooterText(t *testing.T) {
	s := loadedSession(t, helloWorldFetcher(), nil)
	require.NoError(t, s.Run(s.Submit("octocat/Hello-World")))

	assert.Equal(t, "Showing 1 to 2 of 2 entries · 25 per page", FooterText(s.Table()))

	s.Table().SetSearch("bob")
	assert.Equal(t, `Showing 1 to 1 of 1 entries (filtered from 2 total entries) · search "bob" · 25 per page`, FooterText(s.Table()))
}

func TestRender_AlertClearsFooter(t *testing.T) {
	fetcher := helloWorldFetcher()
	fetcher.forksErr = &testStatusError{}

	s := loadedSession(t, fetcher, nil)
	_ = s.Run(s.Submit("octocat/Hello-World"))

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, s, plainStyles()))

	out := buf.String()
	assert.Contains(t, out, "octocat/Hello-World")
	assert.Contains(t, out, "Error: API Rate Limit Exceeded. Additional info in console")
	assert.NotContains(t, out, "Showing")
}

type testStatusError struct{}

func (testStatusError) Error() string    { return "Forbidden" }
func (*testStatusError) StatusCode() int { return 403 }
