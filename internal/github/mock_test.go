package github

import (
	"context"
	"net/http"

	gh "github.com/google/go-github/v68/github"
)

// mockClient implements Client for testing.
type mockClient struct {
	searchRepositoriesFn func(ctx context.Context, query string, opts *gh.SearchOptions) (*gh.RepositoriesSearchResult, *gh.Response, error)
}

func (m *mockClient) SearchRepositories(ctx context.Context, query string, opts *gh.SearchOptions) (*gh.RepositoriesSearchResult, *gh.Response, error) {
	return m.searchRepositoriesFn(ctx, query, opts)
}

func emptyResponse() *gh.Response {
	return &gh.Response{
		Response: &http.Response{StatusCode: 200},
	}
}

// makeRepository builds an API repository. Empty description or language
// become nil, matching a null in the response body.
func makeRepository(name, description, language string) *gh.Repository {
	repo := &gh.Repository{Name: gh.Ptr(name)}
	if description != "" {
		repo.Description = gh.Ptr(description)
	}
	if language != "" {
		repo.Language = gh.Ptr(language)
	}
	return repo
}
