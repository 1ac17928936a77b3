package usecase

import (
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/Leg3ndary/githubExtract/internal/domain"
)

// LanguageShare is one row of the language breakdown.
type LanguageShare struct {
	Language string
	Repos    int
	Percent  float64 // share of repositories that have a language
}

// TopicCount is one row of the topic ranking.
type TopicCount struct {
	Topic string
	Repos int
}

// StarDistribution describes how stars spread over the repositories.
type StarDistribution struct {
	Total  int
	Max    int
	Mean   float64
	Median float64
}

// Summary is a presentation-ready digest of a saved snapshot.
type Summary struct {
	Username    string
	DisplayName string
	TotalRepos  int
	ForksTotal  int
	Languages   []LanguageShare
	Topics      []TopicCount
	Stars       StarDistribution
}

// Summarize digests doc. Statistics are recomputed when the snapshot has
// none. topTopics limits the topic ranking; 0 keeps every topic.
func Summarize(doc *domain.ResumeDocument, topTopics int) (*Summary, error) {
	st := doc.Statistics
	if st == nil {
		computed := ComputeStatistics(doc.Repositories)
		st = &computed
	}

	summary := &Summary{
		TotalRepos: st.TotalRepos,
		ForksTotal: st.ForksTotal,
		Languages:  languageShares(st.LanguageCounts),
		Topics:     topicRanking(st.TopicsCount, topTopics),
	}
	if doc.User != nil {
		summary.Username = stringOrEmpty(doc.User.Username)
		summary.DisplayName = stringOrEmpty(doc.User.DisplayName)
	}

	dist, err := starDistribution(doc.Repositories)
	if err != nil {
		return nil, err
	}
	dist.Total = st.StarsTotal
	summary.Stars = dist

	return summary, nil
}

func languageShares(counts map[string]int) []LanguageShare {
	total := 0
	for _, n := range counts {
		total += n
	}

	shares := make([]LanguageShare, 0, len(counts))
	for lang, n := range counts {
		pct, _ := stats.Round(float64(n)*100/float64(total), 1)
		shares = append(shares, LanguageShare{Language: lang, Repos: n, Percent: pct})
	}
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Repos != shares[j].Repos {
			return shares[i].Repos > shares[j].Repos
		}
		return shares[i].Language < shares[j].Language
	})
	return shares
}

func topicRanking(counts map[string]int, limit int) []TopicCount {
	topics := make([]TopicCount, 0, len(counts))
	for topic, n := range counts {
		topics = append(topics, TopicCount{Topic: topic, Repos: n})
	}
	sort.Slice(topics, func(i, j int) bool {
		if topics[i].Repos != topics[j].Repos {
			return topics[i].Repos > topics[j].Repos
		}
		return topics[i].Topic < topics[j].Topic
	})
	if limit > 0 && len(topics) > limit {
		topics = topics[:limit]
	}
	return topics
}

func starDistribution(repos []domain.RepositorySummary) (StarDistribution, error) {
	if len(repos) == 0 {
		return StarDistribution{}, nil
	}

	data := make(stats.Float64Data, 0, len(repos))
	for _, repo := range repos {
		data = append(data, float64(countOrZero(repo.StarCount)))
	}

	mean, err := data.Mean()
	if err != nil {
		return StarDistribution{}, err
	}
	median, err := data.Median()
	if err != nil {
		return StarDistribution{}, err
	}
	most, err := data.Max()
	if err != nil {
		return StarDistribution{}, err
	}
	mean, _ = stats.Round(mean, 2)

	return StarDistribution{
		Max:    int(most),
		Mean:   mean,
		Median: median,
	}, nil
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
