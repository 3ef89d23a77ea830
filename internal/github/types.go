package github

// Repo is one repository returned by the search API. Description and
// Language are nil when the API returned null for them.
type Repo struct {
	Name        string
	Description *string
	Language    *string
}
