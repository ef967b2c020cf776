package giturl

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	githubHTTPSPrefix = "https://github.com/"
	githubHTTPPrefix  = "http://github.com/"
	gitSuffix         = ".git"
)

// InvalidRepoMessage is shown to the user when an identifier fails validation.
const InvalidRepoMessage = "Invalid GitHub repository! Format is <username>/<repo>"

// repoIDPattern is one path segment, a slash, and a second segment that may contain dots.
var repoIDPattern = regexp.MustCompile(`^[-_\w]+/[-_.\w]+$`)

// InvalidRepoError indicates the input is not an owner/repo identifier
type InvalidRepoError struct {
	Input string
}

func (e *InvalidRepoError) Error() string {
	return fmt.Sprintf("invalid repository %q: expected owner/repo", e.Input)
}

// RepoID identifies a GitHub repository by owner and name
type RepoID struct {
	Owner string
	Name  string
}

// String returns the "owner/repo" form
func (r RepoID) String() string {
	return r.Owner + "/" + r.Name
}

// HTMLURL returns the repository page on github.com
func (r RepoID) HTMLURL() string {
	return githubHTTPSPrefix + r.String()
}

// GetRepoName strips a github.com URL prefix and a trailing .git suffix.
// Input that has neither is returned unchanged.
func GetRepoName(repo string) string {
	repo = strings.TrimPrefix(repo, githubHTTPSPrefix)
	repo = strings.TrimPrefix(repo, githubHTTPPrefix)
	repo = strings.TrimSuffix(repo, gitSuffix)

	return repo
}

// ParseRepoID normalizes raw user input and validates the owner/repo shape.
// Spaces anywhere in the input are ignored.
func ParseRepoID(raw string) (RepoID, error) {
	normalized := GetRepoName(strings.ReplaceAll(raw, " ", ""))

	if !repoIDPattern.MatchString(normalized) {
		return RepoID{}, &InvalidRepoError{Input: raw}
	}

	owner, name, _ := strings.Cut(normalized, "/")

	return RepoID{Owner: owner, Name: name}, nil
}

// IsValid reports whether raw parses as a repository identifier
func IsValid(raw string) bool {
	_, err := ParseRepoID(raw)
	return err == nil
}
