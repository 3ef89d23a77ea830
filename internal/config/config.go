package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	GitHubToken string
	DebugMode   bool
}

// FromEnvironment creates a Config from environment variables.
func FromEnvironment() Config {
	viper.AutomaticEnv()

	debug := viper.GetString("DEBUG")
	debugMode := debug != "" && debug != "0" && strings.ToLower(debug) != "false"

	return Config{
		GitHubToken: viper.GetString("GITHUB_ACCESS_TOKEN"),
		DebugMode:   debugMode,
	}
}
