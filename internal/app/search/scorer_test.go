package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tttaaaiiissseee/kiro-aws-app20251214-sub000/internal/app/ds"
)

var scoreNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func match(name, description string, updatedAt time.Time, memoCount int) Match {
	m := Match{
		Service: ds.Service{
			Name:        name,
			Description: description,
			UpdatedAt:   updatedAt,
		},
	}
	for i := 0; i < memoCount; i++ {
		m.Memos = append(m.Memos, ds.Memo{})
	}
	return m
}

func TestScoreWeights(t *testing.T) {
	old := scoreNow.Add(-90 * 24 * time.Hour)

	tests := []struct {
		name  string
		m     Match
		query string
		want  int
	}{
		{name: "exact name", m: match("EC2", "", old, 0), query: "ec2", want: 100},
		{name: "partial name containment", m: match("Amazon EC2", "", old, 0), query: "ec2", want: 50},
		{name: "prefix adds 25", m: match("EC2 Classic", "", old, 0), query: "ec2", want: 75},
		{name: "description", m: match("Lambda", "runs on ec2 fleets", old, 0), query: "ec2", want: 20},
		{name: "memos", m: match("Lambda", "", old, 3), query: "ec2", want: 30},
		{name: "updated this week", m: match("Lambda", "", scoreNow.Add(-24*time.Hour), 0), query: "ec2", want: 15},
		{name: "updated this month", m: match("Lambda", "", scoreNow.Add(-10*24*time.Hour), 0), query: "ec2", want: 5},
		{name: "everything stacks", m: match("EC2", "the ec2 service", scoreNow.Add(-time.Hour), 2), query: "ec2", want: 100 + 20 + 20 + 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.m, tt.query, scoreNow))
		})
	}
}

// An exact name match can never score below an otherwise-identical
// partial match.
func TestScoreExactBeatsPartial(t *testing.T) {
	old := scoreNow.Add(-90 * 24 * time.Hour)
	exact := match("EC2", "same description", old, 1)
	partial := match("EC2 Spot", "same description", old, 1)

	assert.GreaterOrEqual(t, Score(exact, "ec2", scoreNow), Score(partial, "ec2", scoreNow))
}

func TestSortRelevanceStableForTies(t *testing.T) {
	old := scoreNow.Add(-90 * 24 * time.Hour)
	// none of the names contain the query, so all three tie on the
	// description-only match
	matches := []Match{
		match("Aurora", "relational db engine", old, 0),
		match("Neptune", "graph db engine", old, 0),
		match("Redshift", "warehouse db engine", old, 0),
	}

	Sort(matches, SortRelevance, "db", scoreNow)

	// original order kept
	assert.Equal(t, "Aurora", matches[0].Service.Name)
	assert.Equal(t, "Neptune", matches[1].Service.Name)
	assert.Equal(t, "Redshift", matches[2].Service.Name)
	for _, m := range matches {
		assert.Equal(t, 20, m.Score)
	}
}

func TestSortRelevanceDescending(t *testing.T) {
	old := scoreNow.Add(-90 * 24 * time.Hour)
	matches := []Match{
		match("Amazon EC2 thing", "", old, 0), // 50
		match("EC2", "", old, 0),              // 100
		match("Lambda", "uses ec2", old, 0),   // 20
	}

	Sort(matches, SortRelevance, "ec2", scoreNow)

	assert.Equal(t, "EC2", matches[0].Service.Name)
	assert.Equal(t, "Amazon EC2 thing", matches[1].Service.Name)
	assert.Equal(t, "Lambda", matches[2].Service.Name)
}

func TestSortByName(t *testing.T) {
	old := scoreNow.Add(-90 * 24 * time.Hour)
	matches := []Match{
		match("s3", "", old, 0),
		match("EC2", "", old, 0),
		match("Lambda", "", old, 0),
	}

	Sort(matches, SortName, "q", scoreNow)

	assert.Equal(t, "EC2", matches[0].Service.Name)
	assert.Equal(t, "Lambda", matches[1].Service.Name)
	assert.Equal(t, "s3", matches[2].Service.Name)
}

func TestSortByUpdatedAndCreated(t *testing.T) {
	m1 := match("A", "", scoreNow.Add(-3*time.Hour), 0)
	m1.Service.CreatedAt = scoreNow.Add(-1 * time.Hour)
	m2 := match("B", "", scoreNow.Add(-1*time.Hour), 0)
	m2.Service.CreatedAt = scoreNow.Add(-3 * time.Hour)

	matches := []Match{m1, m2}
	Sort(matches, SortUpdated, "q", scoreNow)
	assert.Equal(t, "B", matches[0].Service.Name)

	matches = []Match{m1, m2}
	Sort(matches, SortCreated, "q", scoreNow)
	assert.Equal(t, "A", matches[0].Service.Name)
}

func TestParseSortMode(t *testing.T) {
	assert.Equal(t, SortRelevance, ParseSortMode(""))
	assert.Equal(t, SortRelevance, ParseSortMode("bogus"))
	assert.Equal(t, SortName, ParseSortMode("name"))
	assert.Equal(t, SortUpdated, ParseSortMode("updated"))
	assert.Equal(t, SortCreated, ParseSortMode("created"))
}
