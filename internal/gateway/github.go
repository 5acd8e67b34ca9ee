// Package gateway provides a gateway to the GitHub API,
// abstracting away the underlying REST and GraphQL clients.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/go-github/v62/github"
	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"

	"devstats/internal/domain"
)

const (
	// perPage is the fixed page size for paginated listing endpoints.
	perPage = 100

	requestTimeout = 10 * time.Second
)

// Error kinds reported by the gateway. Callers distinguish them with errors.Is.
var (
	// ErrNotFound means the user or resource does not exist (HTTP 404).
	ErrNotFound = errors.New("resource not found")
	// ErrAccessDenied means quota exhaustion or an authorization failure (HTTP 403).
	ErrAccessDenied = errors.New("rate limit exceeded or access denied")
	// ErrTransport covers any other network or protocol fault.
	ErrTransport = errors.New("api request failed")
)

// Fetcher defines the behavior of a gateway for fetching information from GitHub.
type Fetcher interface {
	FetchUser(ctx context.Context, username string) (domain.UserProfile, error)
	FetchRepositories(ctx context.Context, username string, includeForks bool) ([]domain.Repository, error)
	FetchRepositoryLanguages(ctx context.Context, owner, repo string) (map[string]int, error)
	FetchContributions(ctx context.Context, username string) (domain.ContributionStats, error)
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
// One gateway owns one HTTP session; distinct gateways are independent and
// may be used concurrently.
type GitHubGateway struct {
	restClient    *github.Client
	graphqlClient *githubv4.Client
	authenticated bool
	logger        *log.Logger
}

// contributionsQuery fetches the per-user contribution totals, which the
// REST API does not expose.
type contributionsQuery struct {
	User struct {
		ContributionsCollection struct {
			TotalCommitContributions                githubv4.Int
			TotalPullRequestContributions           githubv4.Int
			TotalIssueContributions                 githubv4.Int
			TotalPullRequestReviewContributions     githubv4.Int
			TotalRepositoriesWithContributedCommits githubv4.Int
		}
	} `graphql:"user(login: $login)"`
}

// NewGitHubGateway creates a gateway. The token is optional; when supplied it
// is sent as a bearer credential on every request.
func NewGitHubGateway(token string, logger *log.Logger) *GitHubGateway {
	httpClient := &http.Client{Timeout: requestTimeout}
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient.Transport = &oauth2.Transport{
			Source: ts,
			Base:   http.DefaultTransport,
		}
	}
	return &GitHubGateway{
		restClient:    github.NewClient(httpClient),
		graphqlClient: githubv4.NewClient(httpClient),
		authenticated: token != "",
		logger:        logger,
	}
}

// FetchUser returns the profile of the given user.
func (g *GitHubGateway) FetchUser(ctx context.Context, username string) (domain.UserProfile, error) {
	g.logger.Printf("Fetching profile for %s...", username)
	user, _, err := g.restClient.Users.Get(ctx, username)
	if err != nil {
		return domain.UserProfile{}, classify(fmt.Sprintf("fetch user %s", username), err)
	}
	return domain.UserProfile{
		Username:    user.GetLogin(),
		Name:        user.GetName(),
		Bio:         user.GetBio(),
		PublicRepos: user.GetPublicRepos(),
		Followers:   user.GetFollowers(),
		Following:   user.GetFollowing(),
		CreatedAt:   user.GetCreatedAt().Time,
		AvatarURL:   user.GetAvatarURL(),
	}, nil
}

// FetchRepositories lists the user's repositories, most recently updated
// first. Pages of perPage records are requested in ascending page order; the
// listing stops at the first page shorter than perPage. Forks are dropped
// per record unless includeForks is set, so a page consisting entirely of
// forks still terminates the walk based on its raw length.
func (g *GitHubGateway) FetchRepositories(ctx context.Context, username string, includeForks bool) ([]domain.Repository, error) {
	opts := &github.RepositoryListByUserOptions{
		Sort: "updated",
		ListOptions: github.ListOptions{
			Page:    1,
			PerPage: perPage,
		},
	}

	var result []domain.Repository
	for {
		g.logger.Printf("Fetching repositories for %s (page %d)...", username, opts.Page)
		repos, _, err := g.restClient.Repositories.ListByUser(ctx, username, opts)
		if err != nil {
			return nil, classify(fmt.Sprintf("fetch repositories for %s", username), err)
		}
		for _, repo := range repos {
			if repo.GetFork() && !includeForks {
				continue
			}
			result = append(result, convertRepository(repo))
		}
		if len(repos) < perPage {
			break
		}
		opts.Page++
	}
	g.logger.Printf("Fetched %d repositories for %s.", len(result), username)
	return result, nil
}

// FetchRepositoryLanguages returns the byte count per language for a single
// repository.
func (g *GitHubGateway) FetchRepositoryLanguages(ctx context.Context, owner, repo string) (map[string]int, error) {
	langs, _, err := g.restClient.Repositories.ListLanguages(ctx, owner, repo)
	if err != nil {
		return nil, classify(fmt.Sprintf("fetch languages for %s/%s", owner, repo), err)
	}
	return langs, nil
}

// FetchContributions returns the user's contribution totals for the past
// year. The contributions collection is only reachable through the GraphQL
// API, which rejects unauthenticated requests.
func (g *GitHubGateway) FetchContributions(ctx context.Context, username string) (domain.ContributionStats, error) {
	if !g.authenticated {
		return domain.ContributionStats{}, fmt.Errorf("fetch contributions for %s: %w", username, ErrAccessDenied)
	}
	g.logger.Printf("Fetching contribution totals for %s...", username)

	var q contributionsQuery
	variables := map[string]interface{}{
		"login": githubv4.String(username),
	}
	if err := g.graphqlClient.Query(ctx, &q, variables); err != nil {
		return domain.ContributionStats{}, fmt.Errorf("fetch contributions for %s: %w: %v", username, ErrTransport, err)
	}

	cc := q.User.ContributionsCollection
	return domain.ContributionStats{
		TotalCommits:       int(cc.TotalCommitContributions),
		TotalPRs:           int(cc.TotalPullRequestContributions),
		TotalIssues:        int(cc.TotalIssueContributions),
		TotalReviews:       int(cc.TotalPullRequestReviewContributions),
		ReposContributedTo: int(cc.TotalRepositoriesWithContributedCommits),
	}, nil
}

func convertRepository(repo *github.Repository) domain.Repository {
	return domain.Repository{
		Name:        repo.GetName(),
		FullName:    repo.GetFullName(),
		Description: repo.GetDescription(),
		Language:    repo.GetLanguage(),
		Stars:       repo.GetStargazersCount(),
		Forks:       repo.GetForksCount(),
		Watchers:    repo.GetWatchersCount(),
		OpenIssues:  repo.GetOpenIssuesCount(),
		SizeKB:      repo.GetSize(),
		Fork:        repo.GetFork(),
		CreatedAt:   repo.GetCreatedAt().Time,
		UpdatedAt:   repo.GetUpdatedAt().Time,
	}
}

// classify maps an underlying client error onto the gateway's error kinds.
// The numeric HTTP outcomes take precedence over the generic transport kind
// so that a rate-limit condition stays distinguishable from a missing
// resource.
func classify(op string, err error) error {
	var rateErr *github.RateLimitError
	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &rateErr) || errors.As(err, &abuseErr) {
		return fmt.Errorf("%s: %w", op, ErrAccessDenied)
	}

	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		switch ghErr.Response.StatusCode {
		case http.StatusNotFound:
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		case http.StatusForbidden:
			return fmt.Errorf("%s: %w", op, ErrAccessDenied)
		}
	}
	return fmt.Errorf("%s: %w: %v", op, ErrTransport, err)
}
