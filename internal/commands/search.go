package commands

import (
	"context"
	"fmt"

	"github.com/reposcope/gh-reposcope/internal/filter"
	"github.com/reposcope/gh-reposcope/internal/format"
	ghub "github.com/reposcope/gh-reposcope/internal/github"
	"github.com/spf13/cobra"
)

func (a *App) runSearch(cmd *cobra.Command) error {
	if err := a.ensureClient(); err != nil {
		return err
	}
	ctx := context.Background()
	username, _ := cmd.Flags().GetString("username")
	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")
	language, _ := cmd.Flags().GetString("language")
	// The --repositories flag is accepted but not consulted here.
	w := cmd.OutOrStdout()

	repos, err := ghub.SearchUserRepos(ctx, a.GHClient, username, a.Config.DebugMode)
	if err != nil {
		return fmt.Errorf("searching repositories: %w", err)
	}

	matched := filter.Apply(repos, filter.Criteria{
		Title:       title,
		Description: description,
		Language:    language,
	})

	return format.WriteRepos(w, matched)
}
