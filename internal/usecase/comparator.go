package usecase

import "devstats/internal/domain"

// ProfileSummary pairs a fetched profile with its repository summary.
type ProfileSummary struct {
	Profile domain.UserProfile  `json:"profile"`
	Summary domain.SummaryStats `json:"summary"`
}

// Compare builds a metric-by-metric winner table for two profiles. Row order
// is fixed; the winner of each row is the side with the strictly greater
// value, or domain.TieMarker on equality.
func Compare(a, b ProfileSummary) []domain.MetricRow {
	metrics := []struct {
		label       string
		left, right float64
	}{
		{"Followers", float64(a.Profile.Followers), float64(b.Profile.Followers)},
		{"Public Repos", float64(a.Profile.PublicRepos), float64(b.Profile.PublicRepos)},
		{"Total Stars", float64(a.Summary.TotalStars), float64(b.Summary.TotalStars)},
		{"Total Forks", float64(a.Summary.TotalForks), float64(b.Summary.TotalForks)},
		{"Avg Stars/Repo", a.Summary.AverageStars, b.Summary.AverageStars},
	}

	rows := make([]domain.MetricRow, 0, len(metrics))
	for _, m := range metrics {
		winner := domain.TieMarker
		switch {
		case m.left > m.right:
			winner = a.Profile.Username
		case m.right > m.left:
			winner = b.Profile.Username
		}
		rows = append(rows, domain.MetricRow{
			Metric: m.label,
			Left:   m.left,
			Right:  m.right,
			Winner: winner,
		})
	}
	return rows
}
