package usecase

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/Leg3ndary/githubExtract/internal/domain"
	"github.com/Leg3ndary/githubExtract/internal/gateway"
)

// PageLimitError is returned when a user still has repositories after the
// configured number of pages.
type PageLimitError struct {
	Username string
	MaxPages int
}

func (e *PageLimitError) Error() string {
	return fmt.Sprintf("repositories of %s exceed %d pages of %d; raise the page limit or set it to 0",
		e.Username, e.MaxPages, gateway.PageSize)
}

// Collector walks the repository pages of a user and keeps the non-fork entries.
type Collector struct {
	fetcher  gateway.Fetcher
	maxPages int
	logger   *log.Logger
}

// NewCollector creates a Collector. maxPages bounds the number of non-empty
// pages accepted; 0 disables the bound.
func NewCollector(fetcher gateway.Fetcher, maxPages int, logger *log.Logger) *Collector {
	return &Collector{
		fetcher:  fetcher,
		maxPages: maxPages,
		logger:   logger,
	}
}

// Collect requests pages 1, 2, ... until one comes back empty. Entries keep
// the server order within and across pages. Any failed page discards
// everything collected so far.
func (c *Collector) Collect(ctx context.Context, username string) ([]domain.RepositorySummary, error) {
	repos := []domain.RepositorySummary{}

	for page := 1; ; page++ {
		items, err := c.fetcher.FetchRepositoryPage(ctx, username, page)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch repositories (page %d): %w", page, err)
		}
		if len(items) == 0 {
			break
		}
		if c.maxPages > 0 && page > c.maxPages {
			return nil, &PageLimitError{Username: username, MaxPages: c.maxPages}
		}

		forks := 0
		for _, item := range items {
			if item.Fork {
				forks++
				continue
			}
			repos = append(repos, item.Summary)
		}
		c.logger.Debug("Fetched repository page", "page", page, "items", len(items), "forks", forks)
	}

	return repos, nil
}
