package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tttaaaiiissseee/kiro-aws-app20251214-sub000/internal/app/apperr"
	"github.com/tttaaaiiissseee/kiro-aws-app20251214-sub000/internal/app/dto"
	"github.com/tttaaaiiissseee/kiro-aws-app20251214-sub000/internal/app/search"
)

// Search performs free-text service search
// @Summary Search services
// @Description Searches services by name, description and memo content. Returns suggestion fallback when nothing matches.
// @Tags Search
// @Produce json
// @Param q query string true "Search query"
// @Param category query int false "Restrict to category ID"
// @Param sort query string false "Sort mode: relevance (default), name, updated, created"
// @Success 200 {object} dto.SearchResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/search [get]
func (h *Handler) Search(c *gin.Context) {
	query, ok := c.GetQuery("q")
	if !ok {
		h.respondError(c, apperr.MissingQuery())
		return
	}
	if strings.TrimSpace(query) == "" {
		h.respondError(c, apperr.EmptyQuery())
		return
	}

	var categoryID *uint
	if raw := c.Query("category"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || parsed == 0 {
			h.respondError(c, apperr.InvalidID("category"))
			return
		}
		id := uint(parsed)
		if _, err := h.Repository.GetCategoryByID(id); err != nil {
			h.respondError(c, err)
			return
		}
		categoryID = &id
	}

	sortMode := search.ParseSortMode(c.Query("sort"))

	matches, err := h.Matcher.Match(query, categoryID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	search.Sort(matches, sortMode, query, time.Now())

	results := make([]dto.ServiceResult, len(matches))
	for i, m := range matches {
		memos := make([]dto.MemoResult, len(m.Memos))
		for j, memo := range m.Memos {
			memos[j] = dto.MemoResult{
				ID:        memo.ID,
				Title:     memo.Title,
				Content:   memo.Content,
				UpdatedAt: memo.UpdatedAt,
			}
		}
		result := dto.ServiceResult{
			ID:           m.Service.ID,
			Name:         m.Service.Name,
			Description:  m.Service.Description,
			CategoryID:   m.Service.CategoryID,
			CategoryName: m.CategoryName,
			Memos:        memos,
			CreatedAt:    m.Service.CreatedAt,
			UpdatedAt:    m.Service.UpdatedAt,
		}
		if sortMode == search.SortRelevance {
			score := m.Score
			result.Score = &score
		}
		results[i] = result
	}

	response := dto.SearchResponse{
		Data:           results,
		Count:          len(results),
		Query:          query,
		Sort:           string(sortMode),
		CategoryFilter: categoryID,
	}

	// zero results trigger the suggestion fallback
	if len(results) == 0 {
		suggestions, err := h.Suggester.Suggest(c.Request.Context(), query)
		if err != nil {
			h.respondError(c, err)
			return
		}
		response.Suggestions = suggestions
	}

	c.JSON(http.StatusOK, response)
}
