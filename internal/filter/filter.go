// Package filter narrows a search result down to the repositories matching
// the criteria supplied on the command line.
package filter

import (
	"strings"

	ghub "github.com/reposcope/gh-reposcope/internal/github"
)

// Criteria holds the optional repository filters. An empty string means the
// filter was not supplied and always passes.
type Criteria struct {
	Title       string
	Description string
	Language    string
}

// Apply returns the repositories satisfying every supplied criterion, in
// their original order. A repository with no description or language never
// matches the corresponding filter.
func Apply(repos []ghub.Repo, c Criteria) []ghub.Repo {
	var matched []ghub.Repo
	for _, repo := range repos {
		if matchesTitle(repo, c.Title) && matchesDescription(repo, c.Description) && matchesLanguage(repo, c.Language) {
			matched = append(matched, repo)
		}
	}
	return matched
}

func matchesTitle(repo ghub.Repo, title string) bool {
	if title == "" {
		return true
	}
	return strings.Contains(strings.ToLower(repo.Name), strings.ToLower(title))
}

func matchesDescription(repo ghub.Repo, description string) bool {
	if description == "" {
		return true
	}
	if repo.Description == nil {
		return false
	}
	return strings.Contains(strings.ToLower(*repo.Description), strings.ToLower(description))
}

// matchesLanguage compares whole strings. A repository in "Go" matches the
// filter "go" but not "golang".
func matchesLanguage(repo ghub.Repo, language string) bool {
	if language == "" {
		return true
	}
	if repo.Language == nil {
		return false
	}
	return strings.EqualFold(*repo.Language, language)
}
