package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"devstats/internal/domain"
	"devstats/internal/gitrepo"
)

var localCmd = &cobra.Command{
	Use:   "local [path]",
	Short: "Analyze a local git repository",
	Long: `Opens the working copy at the given path (default ".") and reports
branch and commit totals, contributor ranking, commit frequency by
weekday, file type composition, and the most recent commits.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := "."
		if len(args) == 1 {
			path = args[0]
		}
		logger := newLogger(cmd)
		cfg := mustConfig()

		count := cfg.RecentCommits
		if cmd.Flags().Changed("commits") {
			count, _ = cmd.Flags().GetInt("commits")
		}
		days := cfg.FrequencyDays
		if cmd.Flags().Changed("days") {
			days, _ = cmd.Flags().GetInt("days")
		}
		author, _ := cmd.Flags().GetString("author")

		repo, err := gitrepo.Open(path, logger)
		if err != nil {
			fail(err)
		}

		stats, err := repo.Analyze()
		if err != nil {
			fail(err)
		}
		recent, err := repo.RecentCommits(count, author)
		if err != nil {
			fail(err)
		}
		frequency, err := repo.CommitFrequency(days)
		if err != nil {
			fail(err)
		}
		fileTypes, err := repo.FileTypes()
		if err != nil {
			fail(err)
		}

		if jsonOutput(cmd) {
			printJSON(struct {
				Stats         domain.LocalRepoStats   `json:"stats"`
				RecentCommits []domain.Commit         `json:"recent_commits"`
				Frequency     map[string]int          `json:"commit_frequency"`
				FileTypes     []domain.ExtensionCount `json:"file_types"`
			}{stats, recent, frequency, fileTypes})
			return
		}
		renderLocal(os.Stdout, stats, recent, frequency, fileTypes, days)
	},
}

func init() {
	rootCmd.AddCommand(localCmd)
	localCmd.Flags().IntP("commits", "c", 10, "Number of recent commits to show")
	localCmd.Flags().IntP("days", "d", 30, "Commit frequency window in days")
	localCmd.Flags().StringP("author", "a", "", "Only show recent commits whose author matches")
}
