// Package domain contains the core data structures of the resume snapshot.
package domain

import "time"

// UserProfile is the normalized GitHub user record.
// Every field is optional: a value the API did not return stays nil and is
// written as null.
type UserProfile struct {
	Username        *string    `json:"username"`
	DisplayName     *string    `json:"name"`
	Bio             *string    `json:"bio"`
	Location        *string    `json:"location"`
	Company         *string    `json:"company"`
	BlogURL         *string    `json:"blog"`
	PublicRepoCount *int       `json:"publicRepos"`
	FollowerCount   *int       `json:"followers"`
	FollowingCount  *int       `json:"following"`
	JoinedAt        *time.Time `json:"joinedAt"`
}

// RepositorySummary is the normalized record of one non-fork repository.
type RepositorySummary struct {
	Name            string     `json:"name"`
	FullName        string     `json:"fullName"`
	Description     *string    `json:"description"`
	URL             string     `json:"url"`
	HomepageURL     *string    `json:"homepage"`
	PrimaryLanguage *string    `json:"language"`
	StarCount       *int       `json:"stars"`
	ForkCount       *int       `json:"forks"`
	WatcherCount    *int       `json:"watchers"`
	OpenIssueCount  *int       `json:"openIssues"`
	CreatedAt       *time.Time `json:"createdAt"`
	UpdatedAt       *time.Time `json:"updatedAt"`
	Topics          []string   `json:"topics"`
	IsPrivate       bool       `json:"isPrivate"`
}

// Statistics is derived from the repository list and always recomputed as a whole.
type Statistics struct {
	TotalRepos     int            `json:"totalRepos"`
	LanguageCounts map[string]int `json:"languageCounts"`
	TopicsCount    map[string]int `json:"topicsCount"`
	StarsTotal     int            `json:"starsTotal"`
	ForksTotal     int            `json:"forksTotal"`
}

// ResumeDocument is the root of the snapshot written at the end of a run.
type ResumeDocument struct {
	User         *UserProfile        `json:"user"`
	Repositories []RepositorySummary `json:"repositories"`
	Statistics   *Statistics         `json:"statistics,omitempty"`
}

// NewResumeDocument returns an empty document with a non-nil repository list.
func NewResumeDocument() ResumeDocument {
	return ResumeDocument{Repositories: []RepositorySummary{}}
}

// WithUser returns a copy of d carrying the given profile.
func (d ResumeDocument) WithUser(user *UserProfile) ResumeDocument {
	d.User = user
	return d
}

// WithRepositories returns a copy of d carrying the given repositories.
func (d ResumeDocument) WithRepositories(repos []RepositorySummary) ResumeDocument {
	if repos == nil {
		repos = []RepositorySummary{}
	}
	d.Repositories = repos
	return d
}

// WithStatistics returns a copy of d carrying the given statistics.
func (d ResumeDocument) WithStatistics(stats Statistics) ResumeDocument {
	d.Statistics = &stats
	return d
}
