package search

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tttaaaiiissseee/kiro-aws-app20251214-sub000/internal/app/ds"
)

type fakeCandidateSource struct {
	candidates []Candidate
	err        error

	gotQuery    string
	gotCategory *uint
}

func (f *fakeCandidateSource) SearchCandidates(query string, categoryID *uint) ([]Candidate, error) {
	f.gotQuery = query
	f.gotCategory = categoryID
	return f.candidates, f.err
}

func memoAt(title, content string, updatedAt time.Time) ds.Memo {
	return ds.Memo{Title: title, Content: content, UpdatedAt: updatedAt}
}

func TestMatcherFiltersOverFetchedCandidates(t *testing.T) {
	src := &fakeCandidateSource{candidates: []Candidate{
		{Service: ds.Service{ID: 1, Name: "Amazon EC2"}, CategoryName: "Compute"},
		{Service: ds.Service{ID: 2, Name: "Lambda", Description: "runs code without ec2 instances"}},
		{Service: ds.Service{ID: 3, Name: "S3", Description: "object storage"}},
	}}
	m := NewMatcher(src)

	matches, err := m.Match("EC2", nil)
	require.NoError(t, err)

	require.Len(t, matches, 2)
	assert.Equal(t, uint(1), matches[0].Service.ID)
	assert.Equal(t, "Compute", matches[0].CategoryName)
	assert.Equal(t, uint(2), matches[1].Service.ID)
}

func TestMatcherCaseInsensitiveAcrossFields(t *testing.T) {
	src := &fakeCandidateSource{candidates: []Candidate{
		{Service: ds.Service{ID: 1, Name: "DYNAMODB"}},
		{Service: ds.Service{ID: 2, Name: "Aurora", Description: "DynamoDB alternative"}},
		{Service: ds.Service{ID: 3, Name: "SQS", Memos: nil}, Memos: []ds.Memo{
			memoAt("Notes", "compared against dynamodb last week", time.Now()),
		}},
	}}
	m := NewMatcher(src)

	matches, err := m.Match("dYnAmOdB", nil)
	require.NoError(t, err)
	assert.Len(t, matches, 3)
}

func TestMatcherMemoMatchOnly(t *testing.T) {
	src := &fakeCandidateSource{candidates: []Candidate{
		{Service: ds.Service{ID: 7, Name: "CloudWatch", Description: "monitoring"}, Memos: []ds.Memo{
			memoAt("alarm setup", "threshold tuning", time.Now()),
			memoAt("unrelated", "nothing here", time.Now()),
		}},
	}}
	m := NewMatcher(src)

	matches, err := m.Match("threshold", nil)
	require.NoError(t, err)

	require.Len(t, matches, 1)
	// only the memo that actually matches rides along
	require.Len(t, matches[0].Memos, 1)
	assert.Equal(t, "alarm setup", matches[0].Memos[0].Title)
}

func TestMatcherCapsMemosMostRecentFirst(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	src := &fakeCandidateSource{candidates: []Candidate{
		{Service: ds.Service{ID: 1, Name: "ECS"}, Memos: []ds.Memo{
			memoAt("tips 1", "", base.Add(1*time.Hour)),
			memoAt("tips 2", "", base.Add(4*time.Hour)),
			memoAt("tips 3", "", base.Add(2*time.Hour)),
			memoAt("tips 4", "", base.Add(3*time.Hour)),
		}},
	}}
	m := NewMatcher(src)

	matches, err := m.Match("tips", nil)
	require.NoError(t, err)

	require.Len(t, matches, 1)
	memos := matches[0].Memos
	require.Len(t, memos, 3)
	assert.Equal(t, "tips 2", memos[0].Title)
	assert.Equal(t, "tips 4", memos[1].Title)
	assert.Equal(t, "tips 3", memos[2].Title)
}

func TestMatcherPassesCategoryFilterThrough(t *testing.T) {
	src := &fakeCandidateSource{}
	m := NewMatcher(src)

	categoryID := uint(12)
	_, err := m.Match("vpc", &categoryID)
	require.NoError(t, err)

	assert.Equal(t, "vpc", src.gotQuery)
	require.NotNil(t, src.gotCategory)
	assert.Equal(t, uint(12), *src.gotCategory)
}

func TestMatcherPropagatesSourceError(t *testing.T) {
	src := &fakeCandidateSource{err: errors.New("db down")}
	m := NewMatcher(src)

	_, err := m.Match("vpc", nil)
	assert.Error(t, err)
}
