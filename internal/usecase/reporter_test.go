package usecase

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"devstats/internal/domain"
)

// mockFetcher is a mock implementation of the gateway.Fetcher interface.
// It allows us to simulate the gateway without making real API calls.
type mockFetcher struct {
	mock.Mock
}

func (m *mockFetcher) FetchUser(ctx context.Context, username string) (domain.UserProfile, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(domain.UserProfile), args.Error(1)
}

func (m *mockFetcher) FetchRepositories(ctx context.Context, username string, includeForks bool) ([]domain.Repository, error) {
	args := m.Called(ctx, username, includeForks)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Repository), args.Error(1)
}

func (m *mockFetcher) FetchRepositoryLanguages(ctx context.Context, owner, repo string) (map[string]int, error) {
	args := m.Called(ctx, owner, repo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

func (m *mockFetcher) FetchContributions(ctx context.Context, username string) (domain.ContributionStats, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(domain.ContributionStats), args.Error(1)
}

func TestReporter_Profile(t *testing.T) {
	testCases := []struct {
		name        string
		profile     domain.UserProfile
		profileErr  error
		repos       []domain.Repository
		reposErr    error
		expectError bool
	}{
		{
			name:    "happy path computes summary from fetched repos",
			profile: domain.UserProfile{Username: "octocat", Followers: 10},
			repos: []domain.Repository{
				{Name: "a", Language: "Go", Stars: 4, SizeKB: 1024},
				{Name: "b", Language: "Go", Stars: 2, SizeKB: 1024},
			},
		},
		{
			name:        "profile fetch failure aborts the report",
			profileErr:  errors.New("github api error"),
			expectError: true,
		},
		{
			name:        "repository fetch failure aborts the report",
			profile:     domain.UserProfile{Username: "octocat"},
			reposErr:    errors.New("github api error"),
			expectError: true,
		},
		{
			name:    "empty repository list yields zero summary",
			profile: domain.UserProfile{Username: "octocat"},
			repos:   []domain.Repository{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fetcher := new(mockFetcher)
			fetcher.On("FetchUser", mock.Anything, "octocat").Return(tc.profile, tc.profileErr).Maybe()
			fetcher.On("FetchRepositories", mock.Anything, "octocat", false).Return(tc.repos, tc.reposErr).Maybe()

			reporter := NewReporter(fetcher, log.New(io.Discard, "", 0))
			report, err := reporter.Profile(context.Background(), "octocat", false)

			if tc.expectError {
				assert.Error(t, err)
				assert.Nil(t, report)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.profile, report.Profile)
			assert.Equal(t, tc.repos, report.Repositories)
			assert.Equal(t, Summarize(tc.repos), report.Summary)
		})
	}
}

func TestReporter_Comparison(t *testing.T) {
	fetcher := new(mockFetcher)
	fetcher.On("FetchUser", mock.Anything, "alice").
		Return(domain.UserProfile{Username: "alice", Followers: 50}, nil)
	fetcher.On("FetchUser", mock.Anything, "bob").
		Return(domain.UserProfile{Username: "bob", Followers: 20}, nil)
	fetcher.On("FetchRepositories", mock.Anything, "alice", false).
		Return([]domain.Repository{{Name: "x", Stars: 9}}, nil)
	fetcher.On("FetchRepositories", mock.Anything, "bob", false).
		Return([]domain.Repository{{Name: "y", Stars: 3}}, nil)

	reporter := NewReporter(fetcher, log.New(io.Discard, "", 0))
	report, err := reporter.Comparison(context.Background(), "alice", "bob")

	assert.NoError(t, err)
	assert.Equal(t, "alice", report.LeftUser)
	assert.Equal(t, "bob", report.RightUser)
	assert.Len(t, report.Rows, 5)
	assert.Equal(t, "alice", report.Rows[0].Winner, "followers")
	assert.Equal(t, "alice", report.Rows[2].Winner, "total stars")
	fetcher.AssertExpectations(t)
}

func TestReporter_ComparisonError(t *testing.T) {
	fetcher := new(mockFetcher)
	fetchErr := errors.New("github api error")
	fetcher.On("FetchUser", mock.Anything, mock.Anything).
		Return(domain.UserProfile{}, fetchErr).Maybe()
	fetcher.On("FetchRepositories", mock.Anything, mock.Anything, false).
		Return([]domain.Repository{}, nil).Maybe()

	reporter := NewReporter(fetcher, log.New(io.Discard, "", 0))
	report, err := reporter.Comparison(context.Background(), "alice", "bob")

	assert.ErrorIs(t, err, fetchErr)
	assert.Nil(t, report)
}
