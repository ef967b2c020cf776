// Package github is the read-only GitHub REST client used by the page: one
// call for the origin repository and one for its forks.
package github

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	gh "github.com/google/go-github/v82/github"
	"github.com/inovacc/activeforks/internal/application"
	"github.com/inovacc/activeforks/internal/forks"
	"github.com/inovacc/activeforks/internal/giturl"
)

const (
	// DefaultBaseURL is the public GitHub REST API.
	DefaultBaseURL = "https://api.github.com/"

	// ForksPerPage is the single page of forks requested per submission.
	ForksPerPage = 100

	forksSort = "stargazers"
)

// Config configures the client. Zero values fall back to DefaultConfig.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	UserAgent  string
	Logger     *slog.Logger
}

// DefaultConfig returns the configuration for api.github.com without
// authentication.
func DefaultConfig() Config {
	return Config{
		BaseURL:   DefaultBaseURL,
		UserAgent: application.AppName + "/" + application.Version,
		Logger:    slog.Default(),
	}
}

// Client fetches repository metadata. It is safe for concurrent use.
type Client struct {
	api    *gh.Client
	logger *slog.Logger
}

// NewClient creates an unauthenticated client.
func NewClient(cfg Config) (*Client, error) {
	def := DefaultConfig()

	if cfg.BaseURL == "" {
		cfg.BaseURL = def.BaseURL
	}

	if cfg.UserAgent == "" {
		cfg.UserAgent = def.UserAgent
	}

	if cfg.Logger == nil {
		cfg.Logger = def.Logger
	}

	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid API URL %q: %w", cfg.BaseURL, err)
	}

	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid API URL %q: scheme and host are required", cfg.BaseURL)
	}

	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}

	api := gh.NewClient(cfg.HTTPClient)
	api.BaseURL = base
	api.UserAgent = cfg.UserAgent

	return &Client{api: api, logger: cfg.Logger}, nil
}

// FetchOrigin requests GET /repos/{owner}/{repo}.
func (c *Client) FetchOrigin(ctx context.Context, id giturl.RepoID) (forks.Repository, error) {
	c.logger.Debug("fetching origin", slog.String("repo", id.String()))

	repo, _, err := c.api.Repositories.Get(ctx, id.Owner, id.Name)
	if err != nil {
		return forks.Repository{}, fmt.Errorf("failed to fetch %s: %w", id, apiError(err))
	}

	rec, err := FromGitHub(repo)
	if err != nil {
		return forks.Repository{}, fmt.Errorf("failed to read %s: %w", id, err)
	}

	return rec, nil
}

// FetchForks requests the first page of forks sorted by stargazers. Records
// keep the server's order.
func (c *Client) FetchForks(ctx context.Context, id giturl.RepoID) ([]forks.Repository, error) {
	c.logger.Debug("fetching forks", slog.String("repo", id.String()))

	opts := &gh.RepositoryListForksOptions{
		Sort:        forksSort,
		ListOptions: gh.ListOptions{PerPage: ForksPerPage},
	}

	repos, _, err := c.api.Repositories.ListForks(ctx, id.Owner, id.Name, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch forks of %s: %w", id, apiError(err))
	}

	out := make([]forks.Repository, 0, len(repos))

	for _, r := range repos {
		rec, err := FromGitHub(r)
		if err != nil {
			c.logger.Warn("skipping fork record", slog.String("repo", id.String()), slog.String("error", err.Error()))
			continue
		}

		out = append(out, rec)
	}

	c.logger.Debug("fetched forks", slog.String("repo", id.String()), slog.Int("count", len(out)))

	return out, nil
}

// FromGitHub converts an API repository into the page's record.
func FromGitHub(r *gh.Repository) (forks.Repository, error) {
	if r == nil {
		return forks.Repository{}, forks.ErrMissingFullName
	}

	rec := forks.Repository{
		FullName:        r.GetFullName(),
		Name:            r.GetName(),
		DefaultBranch:   r.GetDefaultBranch(),
		StargazersCount: r.GetStargazersCount(),
		Forks:           r.GetForksCount(),
		OpenIssuesCount: r.GetOpenIssuesCount(),
		Size:            r.GetSize(),
		PushedAt:        r.GetPushedAt().Time,
	}

	if owner := r.GetOwner(); owner != nil {
		rec.Owner = &forks.Owner{Login: owner.GetLogin(), AvatarURL: owner.GetAvatarURL()}
	}

	if err := rec.Validate(); err != nil {
		return forks.Repository{}, err
	}

	return rec, nil
}
