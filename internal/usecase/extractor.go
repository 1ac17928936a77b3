// Package usecase contains the business logic of the application.
package usecase

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/Leg3ndary/githubExtract/internal/domain"
	"github.com/Leg3ndary/githubExtract/internal/gateway"
	"github.com/Leg3ndary/githubExtract/internal/output"
)

// Extractor is the use case for building a resume snapshot.
// It runs profile fetch, repository collection, statistics and the final
// write strictly in that order, and stops at the first failure.
type Extractor struct {
	fetcher   gateway.Fetcher
	collector *Collector
	logger    *log.Logger
}

// NewExtractor creates a new Extractor instance.
func NewExtractor(fetcher gateway.Fetcher, maxPages int, logger *log.Logger) *Extractor {
	return &Extractor{
		fetcher:   fetcher,
		collector: NewCollector(fetcher, maxPages, logger),
		logger:    logger,
	}
}

// Run extracts the snapshot of username and writes it to outputPath.
// It returns the absolute path of the written file. Nothing is written when
// any earlier stage fails.
func (e *Extractor) Run(ctx context.Context, username, outputPath string) (string, error) {
	doc, err := e.Extract(ctx, username)
	if err != nil {
		return "", err
	}

	path, err := output.Save(doc, outputPath)
	if err != nil {
		return "", fmt.Errorf("failed to save results: %w", err)
	}
	e.logger.Info("Results saved", "path", path)
	return path, nil
}

// Extract builds the snapshot in memory.
func (e *Extractor) Extract(ctx context.Context, username string) (*domain.ResumeDocument, error) {
	e.logger.Info("Starting GitHub repository extraction", "user", username)

	doc := domain.NewResumeDocument()

	doc, err := e.fetchProfile(ctx, doc, username)
	if err != nil {
		return nil, err
	}

	doc, err = e.fetchRepositories(ctx, doc, username)
	if err != nil {
		return nil, err
	}

	doc = e.calculateStatistics(doc)

	return &doc, nil
}

func (e *Extractor) fetchProfile(ctx context.Context, doc domain.ResumeDocument, username string) (domain.ResumeDocument, error) {
	e.logger.Info("Fetching profile", "user", username)
	profile, err := e.fetcher.FetchUserProfile(ctx, username)
	if err != nil {
		return doc, fmt.Errorf("failed to fetch user profile: %w", err)
	}
	e.logger.Info("Profile data fetched")
	return doc.WithUser(profile), nil
}

func (e *Extractor) fetchRepositories(ctx context.Context, doc domain.ResumeDocument, username string) (domain.ResumeDocument, error) {
	e.logger.Info("Fetching public repositories")
	repos, err := e.collector.Collect(ctx, username)
	if err != nil {
		return doc, err
	}
	e.logger.Info("Repositories collected", "count", len(repos))
	return doc.WithRepositories(repos), nil
}

func (e *Extractor) calculateStatistics(doc domain.ResumeDocument) domain.ResumeDocument {
	stats := ComputeStatistics(doc.Repositories)
	e.logger.Info("Statistics calculated",
		"languages", len(stats.LanguageCounts),
		"topics", len(stats.TopicsCount),
		"stars", stats.StarsTotal)
	return doc.WithStatistics(stats)
}
