package search

import (
	"sort"
	"strings"
	"time"
)

// SortMode selects result ordering. Relevance is the default; the
// other modes bypass scoring and sort on the named field.
type SortMode string

const (
	SortRelevance SortMode = "relevance"
	SortName      SortMode = "name"
	SortUpdated   SortMode = "updated"
	SortCreated   SortMode = "created"
)

// ParseSortMode falls back to relevance for anything unrecognized.
func ParseSortMode(s string) SortMode {
	switch SortMode(s) {
	case SortName, SortUpdated, SortCreated:
		return SortMode(s)
	}
	return SortRelevance
}

// Relevance weights. These are the contract, not tunable defaults.
const (
	scoreExactName    = 100
	scorePartialName  = 50
	scoreNamePrefix   = 25
	scoreDescription  = 20
	scorePerMemo      = 10
	scoreRecentWeek   = 15
	scoreRecentMonth  = 5
	recentWeekWindow  = 7 * 24 * time.Hour
	recentMonthWindow = 30 * 24 * time.Hour
)

// Score computes the relevance of one match. Pure function of the
// match fields, the query and now. Memo points are granted on the
// capped memo list the matcher produced.
func Score(m Match, query string, now time.Time) int {
	q := strings.ToLower(query)
	name := strings.ToLower(m.Service.Name)

	score := 0
	switch {
	case name == q:
		score += scoreExactName
	case strings.Contains(name, q):
		score += scorePartialName
		if strings.HasPrefix(name, q) {
			score += scoreNamePrefix
		}
	}
	if strings.Contains(strings.ToLower(m.Service.Description), q) {
		score += scoreDescription
	}
	score += scorePerMemo * len(m.Memos)

	age := now.Sub(m.Service.UpdatedAt)
	switch {
	case age < recentWeekWindow:
		score += scoreRecentWeek
	case age < recentMonthWindow:
		score += scoreRecentMonth
	}
	return score
}

// Sort orders matches in place. Relevance scores every match and sorts
// strictly descending, stable so ties keep their original order.
func Sort(matches []Match, mode SortMode, query string, now time.Time) {
	switch mode {
	case SortName:
		sort.SliceStable(matches, func(i, j int) bool {
			return strings.ToLower(matches[i].Service.Name) < strings.ToLower(matches[j].Service.Name)
		})
	case SortUpdated:
		sort.SliceStable(matches, func(i, j int) bool {
			return matches[i].Service.UpdatedAt.After(matches[j].Service.UpdatedAt)
		})
	case SortCreated:
		sort.SliceStable(matches, func(i, j int) bool {
			return matches[i].Service.CreatedAt.After(matches[j].Service.CreatedAt)
		})
	default:
		for i := range matches {
			matches[i].Score = Score(matches[i], query, now)
		}
		sort.SliceStable(matches, func(i, j int) bool {
			return matches[i].Score > matches[j].Score
		})
	}
}
