package search

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// popularLimit caps the popular-services fallback list.
const popularLimit = 5

const popularCacheKey = "search:popular-services"

// PopularService is one entry of the popular-services fallback,
// ranked by memo count with most-recently-updated breaking ties.
type PopularService struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	MemoCount   int       `json:"memoCount"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// PopularSource reads the ranked popular-services list from storage.
type PopularSource interface {
	PopularServices(limit int) ([]PopularService, error)
}

// PopularCache is a read-through cache for the popular list. The redis
// client implements it; a nil cache disables caching.
type PopularCache interface {
	GetJSON(ctx context.Context, key string, dest interface{}) (bool, error)
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Suggestions is the zero-result fallback payload.
type Suggestions struct {
	PopularServices        []PopularService `json:"popularServices"`
	AlternativeSearchTerms []string         `json:"alternativeSearchTerms"`
}

// Suggester produces the suggestion fallback for searches that found
// nothing: popular services plus synonym-expanded alternative terms.
type Suggester struct {
	source   PopularSource
	cache    PopularCache
	synonyms SynonymTable
	cacheTTL time.Duration
}

func NewSuggester(source PopularSource, cache PopularCache, synonyms SynonymTable) *Suggester {
	return &Suggester{
		source:   source,
		cache:    cache,
		synonyms: synonyms,
		cacheTTL: 5 * time.Minute,
	}
}

// Suggest builds the fallback for a query that matched nothing.
func (s *Suggester) Suggest(ctx context.Context, query string) (*Suggestions, error) {
	popular, err := s.popular(ctx)
	if err != nil {
		return nil, fmt.Errorf("popular services: %w", err)
	}
	alternatives := s.synonyms.Alternatives(query)
	if alternatives == nil {
		alternatives = []string{}
	}
	return &Suggestions{
		PopularServices:        popular,
		AlternativeSearchTerms: alternatives,
	}, nil
}

// InvalidatePopular drops the cached popular list. Called after memo
// writes, which are what move the ranking.
func (s *Suggester) InvalidatePopular(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, popularCacheKey); err != nil {
		logrus.Warn("popular cache invalidate failed: ", err)
	}
}

func (s *Suggester) popular(ctx context.Context) ([]PopularService, error) {
	if s.cache != nil {
		var cached []PopularService
		hit, err := s.cache.GetJSON(ctx, popularCacheKey, &cached)
		if err != nil {
			logrus.Warn("popular cache read failed: ", err)
		} else if hit {
			return cached, nil
		}
	}

	popular, err := s.source.PopularServices(popularLimit)
	if err != nil {
		return nil, err
	}
	if popular == nil {
		popular = []PopularService{}
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, popularCacheKey, popular, s.cacheTTL); err != nil {
			logrus.Warn("popular cache write failed: ", err)
		}
	}
	return popular, nil
}
