// Package usecase contains the business logic of the application.
package usecase

import (
	"sort"

	"github.com/montanaflynn/stats"

	"devstats/internal/domain"
)

const kilobytesPerMegabyte = 1024

// LanguageStats counts repositories per primary language. The result is
// ordered by descending count; languages with equal counts keep the order
// of their first appearance in the input. Records without a language are
// skipped.
func LanguageStats(repos []domain.Repository) []domain.LanguageCount {
	counts := make(map[string]int)
	var firstSeen []string
	for _, repo := range repos {
		if repo.Language == "" {
			continue
		}
		if _, seen := counts[repo.Language]; !seen {
			firstSeen = append(firstSeen, repo.Language)
		}
		counts[repo.Language]++
	}

	languages := make([]domain.LanguageCount, 0, len(firstSeen))
	for _, lang := range firstSeen {
		languages = append(languages, domain.LanguageCount{Language: lang, Count: counts[lang]})
	}
	sort.SliceStable(languages, func(i, j int) bool {
		return languages[i].Count > languages[j].Count
	})
	return languages
}

// Summarize reduces a repository list into summary statistics. It is a total
// function: an empty input yields a zero-valued aggregate, never an error.
func Summarize(repos []domain.Repository) domain.SummaryStats {
	summary := domain.SummaryStats{
		TotalRepos: len(repos),
		Languages:  LanguageStats(repos),
	}

	starValues := make([]float64, 0, len(repos))
	totalSizeKB := 0
	for _, repo := range repos {
		summary.TotalStars += repo.Stars
		summary.TotalForks += repo.Forks
		totalSizeKB += repo.SizeKB
		starValues = append(starValues, float64(repo.Stars))
	}
	summary.TotalSizeMB = round(float64(totalSizeKB)/kilobytesPerMegabyte, 2)

	if len(starValues) > 0 {
		if mean, err := stats.Mean(starValues); err == nil {
			summary.AverageStars = round(mean, 1)
		}
	}
	if len(summary.Languages) > 0 {
		summary.TopLanguage = summary.Languages[0].Language
	}
	return summary
}

func round(value float64, places int) float64 {
	rounded, err := stats.Round(value, places)
	if err != nil {
		return 0
	}
	return rounded
}
