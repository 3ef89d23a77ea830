package github

import (
	"context"
	"fmt"
	"log"

	gh "github.com/google/go-github/v68/github"
)

// perPage is the search API page-size cap. Only the first page is ever
// requested; results beyond it are out of scope for this tool.
const perPage = 100

// SearchUserRepos searches for repositories owned by username and returns
// the first page of results in the order the API ranked them.
func SearchUserRepos(ctx context.Context, client Client, username string, debugMode bool) ([]Repo, error) {
	query := fmt.Sprintf("user:%s", username)
	if debugMode {
		log.Printf("Searching repositories with query: %s", query)
	}

	options := &gh.SearchOptions{ListOptions: gh.ListOptions{PerPage: perPage}}
	results, _, err := client.SearchRepositories(ctx, query, options)
	if err != nil {
		return nil, fmt.Errorf("searching repositories for %s: %w", username, err)
	}

	repos := make([]Repo, 0, len(results.Repositories))
	for _, item := range results.Repositories {
		repos = append(repos, Repo{
			Name:        item.GetName(),
			Description: item.Description,
			Language:    item.Language,
		})
	}
	if debugMode {
		log.Printf("Search returned %d repositories", len(repos))
	}
	return repos, nil
}
