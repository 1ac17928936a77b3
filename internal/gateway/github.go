// Package gateway provides a gateway to the GitHub REST API,
// abstracting away the underlying go-github client.
package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"

	"github.com/Leg3ndary/githubExtract/internal/domain"
)

// PageSize is the number of repositories requested per page.
const PageSize = 100

// repoSort is sent with every page request so page boundaries stay stable for the run.
const repoSort = "updated"

// tokenType is the Authorization scheme GitHub accepts for personal access tokens.
const tokenType = "token"

// RepositoryItem is one entry of a repository page. Fork is kept beside the
// summary so the collector can filter without the summary carrying it.
type RepositoryItem struct {
	Fork    bool
	Summary domain.RepositorySummary
}

// Fetcher defines the behavior of a gateway for fetching information from GitHub.
type Fetcher interface {
	FetchUserProfile(ctx context.Context, username string) (*domain.UserProfile, error)
	// FetchRepositoryPage returns the given 1-based page of the user's
	// repositories, sorted by last update. An empty slice marks the end.
	FetchRepositoryPage(ctx context.Context, username string, page int) ([]RepositoryItem, error)
}

// Options configures the HTTP side of the gateway.
type Options struct {
	BaseURL   string
	Token     string        // empty means unauthenticated requests
	UserAgent string
	Timeout   time.Duration // 0 means no timeout
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	restClient *github.Client
	logger     *log.Logger
}

// NewGitHubGateway is a constructor that creates a new instance of GitHubGateway.
func NewGitHubGateway(opts Options, logger *log.Logger) (*GitHubGateway, error) {
	httpClient := &http.Client{Timeout: opts.Timeout}
	if opts.Token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.Token, TokenType: tokenType})
		httpClient.Transport = &oauth2.Transport{Source: ts}
	}

	restClient := github.NewClient(httpClient)
	if opts.BaseURL != "" {
		baseURL, err := parseBaseURL(opts.BaseURL)
		if err != nil {
			return nil, err
		}
		restClient.BaseURL = baseURL
	}
	if opts.UserAgent != "" {
		restClient.UserAgent = opts.UserAgent
	}

	return &GitHubGateway{
		restClient: restClient,
		logger:     logger,
	}, nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid API base URL %q: %w", raw, err)
	}
	return u, nil
}

// FetchUserProfile issues a single GET /users/{username}.
func (g *GitHubGateway) FetchUserProfile(ctx context.Context, username string) (*domain.UserProfile, error) {
	g.logger.Debug("Requesting user profile", "user", username)
	user, resp, err := g.restClient.Users.Get(ctx, username)
	if err != nil {
		return nil, classifyError("GET users/"+username, resp, err)
	}
	return newUserProfile(user), nil
}

// FetchRepositoryPage issues GET /users/{username}/repos for one page.
func (g *GitHubGateway) FetchRepositoryPage(ctx context.Context, username string, page int) ([]RepositoryItem, error) {
	opts := &github.RepositoryListByUserOptions{
		Sort:        repoSort,
		ListOptions: github.ListOptions{Page: page, PerPage: PageSize},
	}
	g.logger.Debug("Requesting repository page", "user", username, "page", page)
	repos, resp, err := g.restClient.Repositories.ListByUser(ctx, username, opts)
	if err != nil {
		return nil, classifyError(fmt.Sprintf("GET users/%s/repos", username), resp, err)
	}

	items := make([]RepositoryItem, 0, len(repos))
	for _, repo := range repos {
		if repo == nil {
			continue
		}
		items = append(items, RepositoryItem{
			Fork:    repo.GetFork(),
			Summary: newRepositorySummary(repo),
		})
	}
	return items, nil
}

func newUserProfile(u *github.User) *domain.UserProfile {
	return &domain.UserProfile{
		Username:        u.Login,
		DisplayName:     u.Name,
		Bio:             u.Bio,
		Location:        u.Location,
		Company:         u.Company,
		BlogURL:         u.Blog,
		PublicRepoCount: u.PublicRepos,
		FollowerCount:   u.Followers,
		FollowingCount:  u.Following,
		JoinedAt:        timeOf(u.CreatedAt),
	}
}

func newRepositorySummary(r *github.Repository) domain.RepositorySummary {
	topics := make([]string, len(r.Topics))
	copy(topics, r.Topics)

	return domain.RepositorySummary{
		Name:            r.GetName(),
		FullName:        r.GetFullName(),
		Description:     r.Description,
		URL:             r.GetHTMLURL(),
		HomepageURL:     r.Homepage,
		PrimaryLanguage: r.Language,
		StarCount:       r.StargazersCount,
		ForkCount:       r.ForksCount,
		WatcherCount:    r.WatchersCount,
		OpenIssueCount:  r.OpenIssuesCount,
		CreatedAt:       timeOf(r.CreatedAt),
		UpdatedAt:       timeOf(r.UpdatedAt),
		Topics:          topics,
		IsPrivate:       r.GetPrivate(),
	}
}

func timeOf(ts *github.Timestamp) *time.Time {
	if ts == nil {
		return nil
	}
	t := ts.Time
	return &t
}
