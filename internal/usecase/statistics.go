package usecase

import "github.com/Leg3ndary/githubExtract/internal/domain"

// ComputeStatistics reduces the repository list to its descriptive statistics.
// Missing star and fork counters count as zero, repositories without a
// language are left out of LanguageCounts, and a topic listed twice by the
// same repository is counted once for it.
func ComputeStatistics(repos []domain.RepositorySummary) domain.Statistics {
	stats := domain.Statistics{
		TotalRepos:     len(repos),
		LanguageCounts: make(map[string]int),
		TopicsCount:    make(map[string]int),
	}

	for _, repo := range repos {
		stats.StarsTotal += countOrZero(repo.StarCount)
		stats.ForksTotal += countOrZero(repo.ForkCount)

		if repo.PrimaryLanguage != nil && *repo.PrimaryLanguage != "" {
			stats.LanguageCounts[*repo.PrimaryLanguage]++
		}

		seen := make(map[string]struct{}, len(repo.Topics))
		for _, topic := range repo.Topics {
			if _, dup := seen[topic]; dup {
				continue
			}
			seen[topic] = struct{}{}
			stats.TopicsCount[topic]++
		}
	}

	return stats
}

func countOrZero(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}
