package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"devstats/internal/domain"
)

// sampleRepos returns three repositories with known totals: 175 stars,
// 35 forks, 1792 KB, two Python and one JavaScript.
func sampleRepos() []domain.Repository {
	created := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	updated := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return []domain.Repository{
		{
			Name: "repo1", FullName: "user/repo1", Description: "Test repo 1",
			Language: "Python", Stars: 100, Forks: 20, Watchers: 100,
			OpenIssues: 5, SizeKB: 1024, CreatedAt: created, UpdatedAt: updated,
		},
		{
			Name: "repo2", FullName: "user/repo2", Description: "Test repo 2",
			Language: "Python", Stars: 50, Forks: 10, Watchers: 50,
			OpenIssues: 2, SizeKB: 512, CreatedAt: created, UpdatedAt: updated,
		},
		{
			Name: "repo3", FullName: "user/repo3", Description: "Test repo 3",
			Language: "JavaScript", Stars: 25, Forks: 5, Watchers: 25,
			OpenIssues: 1, SizeKB: 256, CreatedAt: created, UpdatedAt: updated,
		},
	}
}

func TestLanguageStats(t *testing.T) {
	testCases := []struct {
		name     string
		repos    []domain.Repository
		expected []domain.LanguageCount
	}{
		{
			name:  "counts languages sorted by descending count",
			repos: sampleRepos(),
			expected: []domain.LanguageCount{
				{Language: "Python", Count: 2},
				{Language: "JavaScript", Count: 1},
			},
		},
		{
			name:     "empty input yields empty histogram",
			repos:    nil,
			expected: []domain.LanguageCount{},
		},
		{
			name: "repos without a language are skipped",
			repos: []domain.Repository{
				{Name: "a", Language: "Go"},
				{Name: "b"},
				{Name: "c"},
			},
			expected: []domain.LanguageCount{{Language: "Go", Count: 1}},
		},
		{
			name: "ties keep first-encountered order",
			repos: []domain.Repository{
				{Name: "a", Language: "Rust"},
				{Name: "b", Language: "Zig"},
				{Name: "c", Language: "Go"},
				{Name: "d", Language: "Go"},
			},
			expected: []domain.LanguageCount{
				{Language: "Go", Count: 2},
				{Language: "Rust", Count: 1},
				{Language: "Zig", Count: 1},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := LanguageStats(tc.repos)
			assert.Equal(t, tc.expected, got)

			// Counts must be non-increasing in iteration order.
			for i := 1; i < len(got); i++ {
				assert.GreaterOrEqual(t, got[i-1].Count, got[i].Count)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	t.Run("known sample totals", func(t *testing.T) {
		summary := Summarize(sampleRepos())

		assert.Equal(t, 3, summary.TotalRepos)
		assert.Equal(t, 175, summary.TotalStars)
		assert.Equal(t, 35, summary.TotalForks)
		// (1024 + 512 + 256) / 1024 = 1.75 MB
		assert.Equal(t, 1.75, summary.TotalSizeMB)
		assert.InDelta(t, 58.3, summary.AverageStars, 0.01)
		assert.Equal(t, "Python", summary.TopLanguage)
		assert.Equal(t, []domain.LanguageCount{
			{Language: "Python", Count: 2},
			{Language: "JavaScript", Count: 1},
		}, summary.Languages)
	})

	t.Run("empty input yields zero-valued aggregate", func(t *testing.T) {
		summary := Summarize(nil)

		assert.Equal(t, 0, summary.TotalRepos)
		assert.Equal(t, 0, summary.TotalStars)
		assert.Equal(t, 0, summary.TotalForks)
		assert.Equal(t, 0.0, summary.TotalSizeMB)
		assert.Equal(t, 0.0, summary.AverageStars)
		assert.Empty(t, summary.TopLanguage)
		assert.Empty(t, summary.Languages)
	})

	t.Run("average equals total divided by count rounded to one decimal", func(t *testing.T) {
		repos := []domain.Repository{
			{Name: "a", Stars: 1},
			{Name: "b", Stars: 2},
			{Name: "c", Stars: 4},
		}
		summary := Summarize(repos)
		// 7 / 3 = 2.333...
		assert.Equal(t, 2.3, summary.AverageStars)
	})

	t.Run("size rounds to two decimals", func(t *testing.T) {
		summary := Summarize([]domain.Repository{{Name: "a", SizeKB: 100}})
		// 100 / 1024 = 0.09765625
		assert.Equal(t, 0.1, summary.TotalSizeMB)
	})
}
