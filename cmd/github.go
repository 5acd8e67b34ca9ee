package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"devstats/internal/domain"
	"devstats/internal/gateway"
	"devstats/internal/usecase"
)

var githubCmd = &cobra.Command{
	Use:   "github <username>",
	Short: "Show GitHub profile and repository statistics",
	Long: `Fetches a user's profile and full repository list from the GitHub API,
reduces the list into summary statistics (totals, averages, language
breakdown), and renders the result. With a token, contribution totals for
the past year are included as well.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		username := args[0]
		logger := newLogger(cmd)

		includeForks, _ := cmd.Flags().GetBool("forks")
		token := resolveToken(cmd)

		gw := gateway.NewGitHubGateway(token, logger)
		reporter := usecase.NewReporter(gw, logger)

		report, err := reporter.Profile(ctx, username, includeForks)
		if err != nil {
			fail(err)
		}

		// Contribution totals need an authenticated GraphQL call; skip
		// silently when no credential is available.
		var contributions *domain.ContributionStats
		if token != "" {
			contrib, err := gw.FetchContributions(ctx, username)
			if err != nil {
				logger.Printf("skipping contribution totals: %v", err)
			} else {
				contributions = &contrib
			}
		}

		if jsonOutput(cmd) {
			printJSON(struct {
				*usecase.ProfileReport
				Contributions *domain.ContributionStats `json:"contributions,omitempty"`
			}{report, contributions})
			return
		}
		renderProfile(os.Stdout, report, contributions)
	},
}

func init() {
	rootCmd.AddCommand(githubCmd)
	githubCmd.Flags().BoolP("forks", "f", false, "Include forked repositories")
	githubCmd.Flags().StringP("token", "t", "", "GitHub personal access token (defaults to GITHUB_TOKEN)")
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to marshal results to JSON: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(data))
}
