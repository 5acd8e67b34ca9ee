package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"devstats/internal/gateway"
	"devstats/internal/usecase"
)

var compareCmd = &cobra.Command{
	Use:   "compare <username> <username>",
	Short: "Compare two GitHub profiles",
	Long: `Fetches both profiles and their repository lists, reduces each into
summary statistics, and prints a metric-by-metric winner table.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		logger := newLogger(cmd)
		token := resolveToken(cmd)

		gw := gateway.NewGitHubGateway(token, logger)
		reporter := usecase.NewReporter(gw, logger)

		report, err := reporter.Comparison(ctx, args[0], args[1])
		if err != nil {
			fail(err)
		}

		if jsonOutput(cmd) {
			printJSON(report)
			return
		}
		renderComparison(os.Stdout, report)
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().StringP("token", "t", "", "GitHub personal access token (defaults to GITHUB_TOKEN)")
}
