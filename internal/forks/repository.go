package forks

import (
	"errors"
	"time"
)

// ErrMissingFullName is returned when an API record has no full_name.
var ErrMissingFullName = errors.New("repository record has no full_name")

// Owner is the account that owns a repository
type Owner struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
}

// Repository is the subset of the GitHub repository object the page shows.
// Values are read-only once fetched.
type Repository struct {
	FullName        string    `json:"full_name"`
	Name            string    `json:"name"`
	DefaultBranch   string    `json:"default_branch"`
	StargazersCount int       `json:"stargazers_count"`
	Forks           int       `json:"forks"`
	OpenIssuesCount int       `json:"open_issues_count"`
	Size            int       `json:"size"`
	PushedAt        time.Time `json:"pushed_at"`
	Owner           *Owner    `json:"owner,omitempty"`
}

// Validate checks the fields every view depends on.
func (r Repository) Validate() error {
	if r.FullName == "" {
		return ErrMissingFullName
	}

	return nil
}

// HTMLURL returns the repository page on github.com.
func (r Repository) HTMLURL() string {
	return RepoLink(r.FullName)
}
