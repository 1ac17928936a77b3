package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Leg3ndary/githubExtract/internal/domain"
)

func TestSummarize(t *testing.T) {
	repos := []domain.RepositorySummary{
		{Name: "a", PrimaryLanguage: strPtr("Go"), StarCount: intPtr(10), ForkCount: intPtr(2), Topics: []string{"cli", "go"}},
		{Name: "b", PrimaryLanguage: strPtr("Go"), StarCount: intPtr(1), Topics: []string{"cli"}},
		{Name: "c", PrimaryLanguage: strPtr("Rust"), StarCount: intPtr(4), Topics: []string{"tui"}},
		{Name: "d", PrimaryLanguage: nil, StarCount: nil, Topics: []string{}},
	}
	doc := domain.NewResumeDocument().
		WithUser(&domain.UserProfile{Username: strPtr("alice"), DisplayName: strPtr("Alice A.")}).
		WithRepositories(repos)
	doc = doc.WithStatistics(ComputeStatistics(doc.Repositories))

	summary, err := Summarize(&doc, 2)
	require.NoError(t, err)

	assert.Equal(t, "alice", summary.Username)
	assert.Equal(t, "Alice A.", summary.DisplayName)
	assert.Equal(t, 4, summary.TotalRepos)
	assert.Equal(t, 2, summary.ForksTotal)

	assert.Equal(t, []LanguageShare{
		{Language: "Go", Repos: 2, Percent: 66.7},
		{Language: "Rust", Repos: 1, Percent: 33.3},
	}, summary.Languages)

	assert.Equal(t, []TopicCount{
		{Topic: "cli", Repos: 2},
		{Topic: "go", Repos: 1},
	}, summary.Topics)

	assert.Equal(t, StarDistribution{Total: 15, Max: 10, Mean: 3.75, Median: 2.5}, summary.Stars)
}

func TestSummarize_RecomputesMissingStatistics(t *testing.T) {
	doc := domain.NewResumeDocument().WithRepositories([]domain.RepositorySummary{
		{Name: "a", PrimaryLanguage: strPtr("Go"), StarCount: intPtr(2), Topics: []string{}},
	})

	summary, err := Summarize(&doc, 0)
	require.NoError(t, err)

	assert.Empty(t, summary.Username)
	assert.Equal(t, 1, summary.TotalRepos)
	assert.Equal(t, 2, summary.Stars.Total)
	require.Len(t, summary.Languages, 1)
	assert.Equal(t, 100.0, summary.Languages[0].Percent)
}

func TestSummarize_EmptySnapshot(t *testing.T) {
	doc := domain.NewResumeDocument()

	summary, err := Summarize(&doc, 5)
	require.NoError(t, err)

	assert.Zero(t, summary.TotalRepos)
	assert.Empty(t, summary.Languages)
	assert.Empty(t, summary.Topics)
	assert.Equal(t, StarDistribution{}, summary.Stars)
}
