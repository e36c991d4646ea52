package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tttaaaiiissseee/kiro-aws-app20251214-sub000/internal/app/apperr"
	"github.com/tttaaaiiissseee/kiro-aws-app20251214-sub000/internal/app/ds"
	"github.com/tttaaaiiissseee/kiro-aws-app20251214-sub000/internal/app/dto"
)

// GetMemos lists a service's memos
// @Summary List memos
// @Tags Memos
// @Produce json
// @Param id path int true "Service ID"
// @Success 200 {object} dto.MemoListResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/services/{id}/memos [get]
func (h *Handler) GetMemos(c *gin.Context) {
	serviceID, err := pathID(c, "id", "service")
	if err != nil {
		h.respondError(c, err)
		return
	}

	memos, err := h.Repository.GetMemosByService(serviceID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	data := make([]dto.MemoResponse, len(memos))
	for i, m := range memos {
		data[i] = memoResponse(m)
	}
	c.JSON(http.StatusOK, dto.MemoListResponse{Data: data, Count: len(data)})
}

// CreateMemo adds a memo to a service
// @Summary Create memo
// @Tags Memos
// @Accept json
// @Produce json
// @Param id path int true "Service ID"
// @Param request body dto.CreateMemoRequest true "Memo"
// @Success 201 {object} dto.MemoResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/services/{id}/memos [post]
func (h *Handler) CreateMemo(c *gin.Context) {
	serviceID, err := pathID(c, "id", "service")
	if err != nil {
		h.respondError(c, err)
		return
	}

	var req dto.CreateMemoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, apperr.Validation(err.Error()))
		return
	}

	memo, err := h.Repository.CreateMemo(serviceID, req.Title, req.Content)
	if err != nil {
		h.respondError(c, err)
		return
	}

	// memo counts drive the popular-services ranking
	h.Suggester.InvalidatePopular(c.Request.Context())

	c.JSON(http.StatusCreated, memoResponse(*memo))
}

// UpdateMemo updates a memo
// @Summary Update memo
// @Tags Memos
// @Accept json
// @Produce json
// @Param id path int true "Memo ID"
// @Param request body dto.UpdateMemoRequest true "Fields to update"
// @Success 200 {object} dto.MemoResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/memos/{id} [put]
func (h *Handler) UpdateMemo(c *gin.Context) {
	id, err := pathID(c, "id", "memo")
	if err != nil {
		h.respondError(c, err)
		return
	}

	var req dto.UpdateMemoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, apperr.Validation(err.Error()))
		return
	}

	if err := h.Repository.UpdateMemo(id, req.Title, req.Content); err != nil {
		h.respondError(c, err)
		return
	}

	memo, err := h.Repository.GetMemoByID(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, memoResponse(*memo))
}

// DeleteMemo deletes a memo
// @Summary Delete memo
// @Tags Memos
// @Produce json
// @Param id path int true "Memo ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/memos/{id} [delete]
func (h *Handler) DeleteMemo(c *gin.Context) {
	id, err := pathID(c, "id", "memo")
	if err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.Repository.DeleteMemo(id); err != nil {
		h.respondError(c, err)
		return
	}

	h.Suggester.InvalidatePopular(c.Request.Context())
	c.Status(http.StatusNoContent)
}

func memoResponse(m ds.Memo) dto.MemoResponse {
	return dto.MemoResponse{
		ID:        m.ID,
		ServiceID: m.ServiceID,
		Title:     m.Title,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
