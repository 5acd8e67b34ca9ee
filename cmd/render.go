package cmd

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"devstats/internal/domain"
	"devstats/internal/usecase"
)

const (
	maxLanguageRows = 10
	maxTopRepos     = 10
	maxContributors = 5
	barWidth        = 20
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	dimStyle   = lipgloss.NewStyle().Faint(true)
	addStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	delStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	barStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("12")).
			Padding(0, 1)

	// Weekday display order for the frequency table.
	weekdays = []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
		time.Friday, time.Saturday, time.Sunday,
	}
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(dimStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			s := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				s = s.Bold(true)
			}
			return s
		}).
		Headers(headers...)
}

func renderProfile(w io.Writer, report *usecase.ProfileReport, contributions *domain.ContributionStats) {
	p := report.Profile
	s := report.Summary

	name := p.Name
	if name == "" {
		name = p.Username
	}
	var panel strings.Builder
	panel.WriteString(titleStyle.Render("@"+p.Username) + "  " + name + "\n")
	if p.Bio != "" {
		panel.WriteString(dimStyle.Render(p.Bio) + "\n")
	}
	panel.WriteString(fmt.Sprintf("\nPublic Repos: %d  Followers: %d  Following: %d", p.PublicRepos, p.Followers, p.Following))
	fmt.Fprintln(w, panelStyle.Render(panel.String()))

	summary := newTable("Metric", "Value")
	summary.Row("Total Repositories", strconv.Itoa(s.TotalRepos))
	summary.Row("Total Stars", strconv.Itoa(s.TotalStars))
	summary.Row("Total Forks", strconv.Itoa(s.TotalForks))
	summary.Row("Average Stars/Repo", formatValue(s.AverageStars))
	summary.Row("Total Size", fmt.Sprintf("%.2f MB", s.TotalSizeMB))
	summary.Row("Top Language", orDash(s.TopLanguage))
	fmt.Fprintln(w, summary)

	if len(s.Languages) > 0 {
		langs := newTable("Language", "Repos", "")
		maxCount := s.Languages[0].Count
		for _, lc := range s.Languages[:min(maxLanguageRows, len(s.Languages))] {
			langs.Row(lc.Language, strconv.Itoa(lc.Count), bar(lc.Count, maxCount))
		}
		fmt.Fprintln(w, langs)
	}

	if len(report.Repositories) > 0 {
		byStars := make([]domain.Repository, len(report.Repositories))
		copy(byStars, report.Repositories)
		sort.SliceStable(byStars, func(i, j int) bool { return byStars[i].Stars > byStars[j].Stars })

		repos := newTable("Repository", "Stars", "Forks", "Language")
		for _, repo := range byStars[:min(maxTopRepos, len(byStars))] {
			repos.Row(repo.Name, strconv.Itoa(repo.Stars), strconv.Itoa(repo.Forks), orDash(repo.Language))
		}
		fmt.Fprintln(w, repos)
	}

	if contributions != nil {
		contrib := newTable("Contributions (past year)", "Count")
		contrib.Row("Commits", strconv.Itoa(contributions.TotalCommits))
		contrib.Row("Pull Requests", strconv.Itoa(contributions.TotalPRs))
		contrib.Row("Issues", strconv.Itoa(contributions.TotalIssues))
		contrib.Row("Reviews", strconv.Itoa(contributions.TotalReviews))
		contrib.Row("Repositories", strconv.Itoa(contributions.ReposContributedTo))
		fmt.Fprintln(w, contrib)
	}
}

func renderLocal(w io.Writer, stats domain.LocalRepoStats, recent []domain.Commit, frequency map[string]int, fileTypes []domain.ExtensionCount, days int) {
	var panel strings.Builder
	panel.WriteString(titleStyle.Render(stats.Name) + "\n")
	panel.WriteString(dimStyle.Render("Path: "+stats.Path) + "\n")
	panel.WriteString(fmt.Sprintf("Branch: %s\n", stats.CurrentBranch))
	panel.WriteString(fmt.Sprintf("Commits: %d  Branches: %d", stats.TotalCommits, stats.TotalBranches))
	if stats.FirstCommit != nil && stats.LastCommit != nil {
		panel.WriteString(fmt.Sprintf("\nFirst commit: %s", stats.FirstCommit.Format("2006-01-02")))
		panel.WriteString(fmt.Sprintf("\nLast commit: %s", stats.LastCommit.Format("2006-01-02")))
	}
	fmt.Fprintln(w, panelStyle.Render(panel.String()))

	fmt.Fprintf(w, "%s / %s lines (recent commits)\n",
		addStyle.Render(fmt.Sprintf("+%d", stats.LinesAdded)),
		delStyle.Render(fmt.Sprintf("-%d", stats.LinesDeleted)))

	if len(stats.Contributors) > 0 {
		contrib := newTable("Author", "Commits", "")
		maxCommits := stats.Contributors[0].Commits
		for _, c := range stats.Contributors[:min(maxContributors, len(stats.Contributors))] {
			contrib.Row(c.Name, strconv.Itoa(c.Commits), bar(c.Commits, maxCommits))
		}
		fmt.Fprintln(w, contrib)
	}

	freq := newTable(fmt.Sprintf("Day (last %d days)", days), "Commits", "")
	maxFreq := 0
	for _, d := range weekdays {
		if frequency[d.String()] > maxFreq {
			maxFreq = frequency[d.String()]
		}
	}
	for _, d := range weekdays {
		count := frequency[d.String()]
		freq.Row(d.String()[:3], strconv.Itoa(count), bar(count, maxFreq))
	}
	fmt.Fprintln(w, freq)

	if len(fileTypes) > 0 {
		types := newTable("Extension", "Count")
		for _, ft := range fileTypes[:min(maxTopRepos, len(fileTypes))] {
			types.Row(ft.Extension, strconv.Itoa(ft.Count))
		}
		fmt.Fprintln(w, types)
	}

	if len(recent) > 0 {
		commits := newTable("SHA", "Message", "Author", "Changes")
		for _, c := range recent {
			commits.Row(c.ShortSHA, c.Message, c.Author, fmt.Sprintf("+%d/-%d", c.Insertions, c.Deletions))
		}
		fmt.Fprintln(w, commits)
	}
}

func renderComparison(w io.Writer, report *usecase.ComparisonReport) {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("Comparison: %s vs %s", report.LeftUser, report.RightUser)))

	t := newTable("Metric", report.LeftUser, report.RightUser, "Winner")
	for _, row := range report.Rows {
		t.Row(row.Metric, formatValue(row.Left), formatValue(row.Right), row.Winner)
	}
	fmt.Fprintln(w, t)
}

// bar draws a proportional activity bar, empty when the maximum is zero.
func bar(count, maxCount int) string {
	if maxCount <= 0 || count <= 0 {
		return ""
	}
	width := int(float64(count) / float64(maxCount) * barWidth)
	if width < 1 {
		width = 1
	}
	return barStyle.Render(strings.Repeat("█", width))
}

// formatValue renders integral values without a decimal point.
func formatValue(v float64) string {
	if v == math.Trunc(v) {
		return strconv.Itoa(int(v))
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
