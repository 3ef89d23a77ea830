package commands

import (
	"fmt"
	"os"

	"github.com/reposcope/gh-reposcope/internal/config"
	ghub "github.com/reposcope/gh-reposcope/internal/github"
	"github.com/spf13/cobra"
)

// version is the tool version sent in the User-Agent header.
const version = "0.1.0"

// App holds shared application state.
type App struct {
	Config   config.Config
	GHClient ghub.Client
	GitSHA   string
	GitDirty string
}

// NewApp creates a new App from the given configuration.
func NewApp(cfg config.Config, gitSHA, gitDirty string) *App {
	return &App{
		Config:   cfg,
		GitSHA:   gitSHA,
		GitDirty: gitDirty,
	}
}

// ensureClient creates the GitHub client if it doesn't exist.
func (a *App) ensureClient() error {
	if a.GHClient != nil {
		return nil
	}
	if a.Config.GitHubToken == "" {
		return fmt.Errorf("GITHUB_ACCESS_TOKEN must be set")
	}
	a.GHClient = ghub.NewClient(a.Config.GitHubToken, fmt.Sprintf("gh-reposcope/%s", version))
	return nil
}

// NewRootCommand creates the root command. Searching is the root command
// itself rather than a subcommand; the tool does exactly one thing.
func (a *App) NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   os.Args[0],
		Short: "Search a GitHub user's repositories and filter the results.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSearch(cmd)
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	rootCmd.Flags().StringP("username", "u", "", "GitHub username whose repositories are searched")
	rootCmd.Flags().StringP("repositories", "r", "", "Filter by the specified repository name")
	rootCmd.Flags().StringP("title", "t", "", "Filter by the specified title")
	rootCmd.Flags().StringP("description", "d", "", "Filter by the specified repository description")
	rootCmd.Flags().StringP("language", "l", "", "Filter by the specified programming language")
	_ = rootCmd.MarkFlagRequired("username")

	rootCmd.AddCommand(a.newVersionCommand())

	return rootCmd
}
