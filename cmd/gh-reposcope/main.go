package main

import (
	"fmt"
	"os"

	"github.com/reposcope/gh-reposcope/internal/commands"
	"github.com/reposcope/gh-reposcope/internal/config"
)

var (
	GitSHA   string
	GitDirty string
)

func main() {
	cfg := config.FromEnvironment()

	app := commands.NewApp(cfg, GitSHA, GitDirty)
	rootCmd := app.NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
