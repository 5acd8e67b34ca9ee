// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"devstats/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "devstats",
	Short: "Developer statistics CLI - GitHub & local git analysis",
	Long: `devstats summarizes developer activity from two sources: the GitHub
REST API (profile and repository metadata) and a local git repository
(commit history, authorship, file composition).`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Persistent flags are available to all commands.
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().Bool("json", false, "Emit JSON instead of rendered tables")
}

// newLogger builds the logger subcommands inject into the gateway and
// usecase layers. Logs are discarded unless --verbose is set.
func newLogger(cmd *cobra.Command) *log.Logger {
	verbose, _ := cmd.InheritedFlags().GetBool("verbose")
	logger := log.New(io.Discard, "", log.LstdFlags)
	if verbose {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func jsonOutput(cmd *cobra.Command) bool {
	jsonOut, _ := cmd.InheritedFlags().GetBool("json")
	return jsonOut
}

// mustConfig loads the runtime configuration or exits.
func mustConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// resolveToken prefers the --token flag over the configured GITHUB_TOKEN.
func resolveToken(cmd *cobra.Command) string {
	token, _ := cmd.Flags().GetString("token")
	if token != "" {
		return token
	}
	return mustConfig().GitHubToken
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("Error:"), err)
	os.Exit(1)
}
