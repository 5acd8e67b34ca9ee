// Package domain contains the core data structures and domain logic for the application.
package domain

import "time"

// UserProfile is a point-in-time snapshot of a GitHub user's profile.
// Optional fields (Name, Bio, AvatarURL) are empty when the service omits them.
type UserProfile struct {
	Username    string    `json:"username"`
	Name        string    `json:"name,omitempty"`
	Bio         string    `json:"bio,omitempty"`
	PublicRepos int       `json:"public_repos"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	CreatedAt   time.Time `json:"created_at"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
}

// Repository holds the metadata of a single remote repository.
// A slice of these is the unit the aggregation functions consume.
type Repository struct {
	Name        string    `json:"name"`
	FullName    string    `json:"full_name"`
	Description string    `json:"description,omitempty"`
	Language    string    `json:"language,omitempty"`
	Stars       int       `json:"stars"`
	Forks       int       `json:"forks"`
	Watchers    int       `json:"watchers"`
	OpenIssues  int       `json:"open_issues"`
	SizeKB      int       `json:"size_kb"`
	Fork        bool      `json:"fork"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Commit holds the metadata and change stats of a single local commit.
// Message is the first line of the commit message, truncated to 72 characters.
type Commit struct {
	ShortSHA     string    `json:"sha"`
	SHA          string    `json:"full_sha"`
	Message      string    `json:"message"`
	Author       string    `json:"author"`
	AuthorEmail  string    `json:"author_email"`
	Date         time.Time `json:"date"`
	FilesChanged int       `json:"files_changed"`
	Insertions   int       `json:"insertions"`
	Deletions    int       `json:"deletions"`
}

// LanguageCount is one entry of an ordered language histogram.
type LanguageCount struct {
	Language string `json:"language"`
	Count    int    `json:"count"`
}

// ExtensionCount is one entry of an ordered file-extension histogram.
type ExtensionCount struct {
	Extension string `json:"extension"`
	Count     int    `json:"count"`
}

// Contributor is one entry of a contributor ranking.
type Contributor struct {
	Name    string `json:"name"`
	Commits int    `json:"commits"`
}

// SummaryStats is the derived aggregate over a repository list.
// Languages is ordered by descending count; ties keep first-encountered order.
// An empty TopLanguage means no repository reported a primary language.
type SummaryStats struct {
	TotalRepos   int             `json:"total_repos"`
	TotalStars   int             `json:"total_stars"`
	TotalForks   int             `json:"total_forks"`
	TotalSizeMB  float64         `json:"total_size_mb"`
	AverageStars float64         `json:"average_stars"`
	TopLanguage  string          `json:"top_language,omitempty"`
	Languages    []LanguageCount `json:"languages"`
}

// LocalRepoStats is the derived aggregate for a local working copy.
// FirstCommit and LastCommit are nil when the repository has no commits.
// LinesAdded and LinesDeleted cover a bounded sample of recent commits only.
type LocalRepoStats struct {
	Path          string        `json:"path"`
	Name          string        `json:"name"`
	CurrentBranch string        `json:"current_branch"`
	TotalCommits  int           `json:"total_commits"`
	TotalBranches int           `json:"total_branches"`
	Contributors  []Contributor `json:"contributors"`
	FirstCommit   *time.Time    `json:"first_commit,omitempty"`
	LastCommit    *time.Time    `json:"last_commit,omitempty"`
	LinesAdded    int           `json:"lines_added"`
	LinesDeleted  int           `json:"lines_deleted"`
}

// ContributionStats holds a user's contribution totals for the past year,
// as reported by the GraphQL contributions collection.
type ContributionStats struct {
	TotalCommits       int `json:"total_commits"`
	TotalPRs           int `json:"total_prs"`
	TotalIssues        int `json:"total_issues"`
	TotalReviews       int `json:"total_reviews"`
	ReposContributedTo int `json:"repos_contributed_to"`
}

// TieMarker is the Winner value of a MetricRow when both sides are equal.
const TieMarker = "Tie"

// MetricRow is one line of a metric-by-metric profile comparison.
// Winner is the username of the strictly greater side, or TieMarker.
type MetricRow struct {
	Metric string  `json:"metric"`
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
	Winner string  `json:"winner"`
}
