package search

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tttaaaiiissseee/kiro-aws-app20251214-sub000/internal/app/ds"
)

// memoDisplayCap limits how many matching memos ride along with each
// result for highlighting.
const memoDisplayCap = 3

// Candidate is a service with its memos and category name preloaded.
type Candidate struct {
	Service      ds.Service
	CategoryName string
	Memos        []ds.Memo
}

// CandidateSource finds services whose name, description or memos may
// contain the query. It may over-fetch; the matcher re-checks in memory.
type CandidateSource interface {
	SearchCandidates(query string, categoryID *uint) ([]Candidate, error)
}

// Match is one search hit with its capped matching memos.
type Match struct {
	Service      ds.Service
	CategoryName string
	Memos        []ds.Memo // matching memos, most recent first, at most 3
	Score        int       // filled in by the scorer for relevance sort
}

// Matcher performs free-text search over services. Matching is
// case-insensitive across all fields; the old implementation was
// case-sensitive on some paths and that inconsistency is resolved here.
type Matcher struct {
	source CandidateSource
}

func NewMatcher(source CandidateSource) *Matcher {
	return &Matcher{source: source}
}

// Match returns services whose name, description or at least one memo
// (title or content) contains the query, optionally restricted to a
// category. The caller is responsible for rejecting empty queries.
func (m *Matcher) Match(query string, categoryID *uint) ([]Match, error) {
	candidates, err := m.source.SearchCandidates(query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("search candidates: %w", err)
	}

	q := strings.ToLower(query)
	matches := make([]Match, 0, len(candidates))
	for _, c := range candidates {
		memos := matchingMemos(c.Memos, q)
		nameHit := strings.Contains(strings.ToLower(c.Service.Name), q)
		descHit := strings.Contains(strings.ToLower(c.Service.Description), q)
		if !nameHit && !descHit && len(memos) == 0 {
			continue
		}
		matches = append(matches, Match{
			Service:      c.Service,
			CategoryName: c.CategoryName,
			Memos:        memos,
		})
	}
	return matches, nil
}

// matchingMemos filters memos whose title or content contains the
// lower-cased query and keeps the three most recently updated.
func matchingMemos(memos []ds.Memo, q string) []ds.Memo {
	matched := make([]ds.Memo, 0, len(memos))
	for _, memo := range memos {
		if strings.Contains(strings.ToLower(memo.Title), q) ||
			strings.Contains(strings.ToLower(memo.Content), q) {
			matched = append(matched, memo)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].UpdatedAt.After(matched[j].UpdatedAt)
	})
	if len(matched) > memoDisplayCap {
		matched = matched[:memoDisplayCap]
	}
	return matched
}
