package format

import (
	"fmt"
	"io"

	ghub "github.com/reposcope/gh-reposcope/internal/github"
)

// Placeholders printed when the API returned null for a field.
const (
	NoDescription = "No description"
	NoLanguage    = "No language specified"
)

// WriteRepo writes one repository as a three-line block followed by a
// separator line.
func WriteRepo(w io.Writer, repo ghub.Repo) error {
	description := NoDescription
	if repo.Description != nil {
		description = *repo.Description
	}
	language := NoLanguage
	if repo.Language != nil {
		language = *repo.Language
	}
	_, err := fmt.Fprintf(w, "Repository Name: %s\nDescription: %s\nLanguage: %s\n---\n", repo.Name, description, language)
	return err
}

// WriteRepos writes every repository in order.
func WriteRepos(w io.Writer, repos []ghub.Repo) error {
	for _, repo := range repos {
		if err := WriteRepo(w, repo); err != nil {
			return err
		}
	}
	return nil
}
