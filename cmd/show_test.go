package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/inovacc/activeforks/internal/github"
	"github.com/inovacc/activeforks/internal/giturl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	originBody = `{"full_name": "octocat/Hello-World", "name": "Hello-World", "default_branch": "master",
		"stargazers_count": 80, "forks_count": 3, "size": 108, "owner": {"login": "octocat"}}`
	forksBody = `[
		{"full_name": "alice/Hello-World", "name": "Hello-World", "stargazers_count": 0, "size": 108, "owner": {"login": "alice"}},
		{"full_name": "bob/Hello-World", "name": "Hello-World", "stargazers_count": 5, "size": 12, "owner": {"login": "bob"}},
		{"full_name": "carol/Hello-World", "name": "Hello-World", "stargazers_count": 2, "size": 40, "owner": {"login": "carol"}}
	]`
)

func newAPI(t *testing.T, forksStatus int) *github.Client {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/repos/octocat/Hello-World", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(originBody))
	})
	mux.HandleFunc("/repos/octocat/Hello-World/forks", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(forksStatus)

		if forksStatus == http.StatusOK {
			_, _ = w.Write([]byte(forksBody))
			return
		}

		_, _ = w.Write([]byte(`{"message": "API rate limit exceeded"}`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client, err := github.NewClient(github.Config{BaseURL: srv.URL, Logger: discardLogger()})
	require.NoError(t, err)

	return client
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func defaultShowOptions(t *testing.T, forksStatus int) showOptions {
	return showOptions{
		Sort:    "Stars",
		Length:  "25",
		Page:    1,
		NoColor: true,
		Fetcher: newAPI(t, forksStatus),
		Logger:  discardLogger(),
	}
}

func TestShowRepo_Text(t *testing.T) {
	var buf bytes.Buffer

	err := showRepo(context.Background(), &buf, "https://github.com/octocat/Hello-World", defaultShowOptions(t, http.StatusOK))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "octocat/Hello-World")
	assert.Contains(t, out, "Stars ▼")
	assert.Contains(t, out, "Showing 1 to 3 of 3 entries")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("bob")), bytes.Index(buf.Bytes(), []byte("carol")))
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("carol")), bytes.Index(buf.Bytes(), []byte("alice")))
}

func TestShowRepo_JSON(t *testing.T) {
	opts := defaultShowOptions(t, http.StatusOK)
	opts.JSON = true
	opts.Sort = "size"
	opts.Asc = true
	opts.Where = []string{"Stars>0"}

	var buf bytes.Buffer
	require.NoError(t, showRepo(context.Background(), &buf, "octocat/Hello-World", opts))

	var out struct {
		Repository string           `json:"repository"`
		Link       string           `json:"link"`
		Total      int              `json:"total"`
		Filtered   int              `json:"filtered"`
		Forks      []map[string]any `json:"forks"`
		Origin     []map[string]any `json:"origin"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	assert.Equal(t, "octocat/Hello-World", out.Repository)
	assert.Equal(t, "#octocat/Hello-World", out.Link)
	assert.Equal(t, 3, out.Total)
	assert.Equal(t, 2, out.Filtered)
	require.Len(t, out.Forks, 2)
	assert.Equal(t, "https://github.com/bob/Hello-World", out.Forks[0]["repoLink"])
	assert.InDelta(t, 12, out.Forks[0]["size"], 0)
	assert.InDelta(t, 40, out.Forks[1]["size"], 0)
	assert.Len(t, out.Origin, 9)
}

func TestShowRepo_FetchFailure(t *testing.T) {
	var buf bytes.Buffer

	err := showRepo(context.Background(), &buf, "octocat/Hello-World", defaultShowOptions(t, http.StatusForbidden))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errFetchFailed))

	out := buf.String()
	assert.Contains(t, out, "Error: API Rate Limit Exceeded. Additional info in console")
	assert.NotContains(t, out, "Showing")
}

func TestShowRepo_NotFoundShowsStatusText(t *testing.T) {
	var buf bytes.Buffer

	err := showRepo(context.Background(), &buf, "octocat/Hello-World", defaultShowOptions(t, http.StatusNotFound))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errFetchFailed))

	out := buf.String()
	assert.Contains(t, out, "Error: Not Found. Additional info in console")
	assert.NotContains(t, out, "failed to fetch")
}

func TestShowRepo_InvalidInput(t *testing.T) {
	var buf bytes.Buffer

	err := showRepo(context.Background(), &buf, "not-a-repo", defaultShowOptions(t, http.StatusOK))
	require.Error(t, err)
	assert.Equal(t, giturl.InvalidRepoMessage, err.Error())
	assert.Empty(t, buf.String())
}

func TestConfigureTable_Errors(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*showOptions)
	}{
		{name: "unknown sort column", mod: func(o *showOptions) { o.Sort = "Watchers" }},
		{name: "bad filter", mod: func(o *showOptions) { o.Where = []string{"Stars>lots"} }},
		{name: "bad page length", mod: func(o *showOptions) { o.Length = "10" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := defaultShowOptions(t, http.StatusOK)
			tt.mod(&opts)

			err := showRepo(context.Background(), io.Discard, "octocat/Hello-World", opts)
			require.Error(t, err)
			assert.False(t, errors.Is(err, errFetchFailed))
		})
	}
}
