package usecase

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"devstats/internal/domain"
	"devstats/internal/gateway"
)

// Reporter orchestrates fetching and reducing remote profile data.
type Reporter struct {
	fetcher gateway.Fetcher
	logger  *log.Logger
}

// NewReporter creates a new Reporter instance.
func NewReporter(fetcher gateway.Fetcher, logger *log.Logger) *Reporter {
	return &Reporter{
		fetcher: fetcher,
		logger:  logger,
	}
}

// ProfileReport holds everything the github command renders for one user.
type ProfileReport struct {
	Profile      domain.UserProfile  `json:"profile"`
	Repositories []domain.Repository `json:"repositories"`
	Summary      domain.SummaryStats `json:"summary"`
}

// ComparisonReport holds the winner table for two users.
type ComparisonReport struct {
	LeftUser  string             `json:"left_user"`
	RightUser string             `json:"right_user"`
	Rows      []domain.MetricRow `json:"rows"`
}

// Profile fetches a user's profile and repository list and reduces the list
// into summary statistics. The two fetches hit independent resources and run
// concurrently; within the repository fetch, pages are still requested one
// at a time.
func (r *Reporter) Profile(ctx context.Context, username string, includeForks bool) (*ProfileReport, error) {
	r.logger.Printf("Usecase: building profile report for %s...", username)

	var profile domain.UserProfile
	var repos []domain.Repository

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		profile, err = r.fetcher.FetchUser(egCtx, username)
		return err
	})
	eg.Go(func() error {
		var err error
		repos, err = r.fetcher.FetchRepositories(egCtx, username, includeForks)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	r.logger.Printf("Usecase: profile report for %s complete.", username)
	return &ProfileReport{
		Profile:      profile,
		Repositories: repos,
		Summary:      Summarize(repos),
	}, nil
}

// Comparison fetches two users concurrently and builds the metric winner
// table. Forks are excluded from both sides so star and fork totals stay
// comparable.
func (r *Reporter) Comparison(ctx context.Context, usernameA, usernameB string) (*ComparisonReport, error) {
	r.logger.Printf("Usecase: comparing %s and %s...", usernameA, usernameB)

	var left, right ProfileSummary

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		left, err = r.profileSummary(egCtx, usernameA)
		return err
	})
	eg.Go(func() error {
		var err error
		right, err = r.profileSummary(egCtx, usernameB)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return &ComparisonReport{
		LeftUser:  left.Profile.Username,
		RightUser: right.Profile.Username,
		Rows:      Compare(left, right),
	}, nil
}

func (r *Reporter) profileSummary(ctx context.Context, username string) (ProfileSummary, error) {
	report, err := r.Profile(ctx, username, false)
	if err != nil {
		return ProfileSummary{}, err
	}
	return ProfileSummary{Profile: report.Profile, Summary: report.Summary}, nil
}
