package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tttaaaiiissseee/kiro-aws-app20251214-sub000/internal/app/apperr"
	"github.com/tttaaaiiissseee/kiro-aws-app20251214-sub000/internal/app/ds"
	"github.com/tttaaaiiissseee/kiro-aws-app20251214-sub000/internal/app/dto"
)

// GetRelations lists relations touching a service
// @Summary List relations
// @Tags Relations
// @Produce json
// @Param id path int true "Service ID"
// @Success 200 {object} dto.RelationListResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/services/{id}/relations [get]
func (h *Handler) GetRelations(c *gin.Context) {
	serviceID, err := pathID(c, "id", "service")
	if err != nil {
		h.respondError(c, err)
		return
	}

	relations, err := h.Repository.GetRelationsByService(serviceID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	data := make([]dto.RelationResponse, len(relations))
	for i, r := range relations {
		data[i] = relationResponse(r)
	}
	c.JSON(http.StatusOK, dto.RelationListResponse{Data: data, Count: len(data)})
}

// CreateRelation links two services
// @Summary Create relation
// @Tags Relations
// @Accept json
// @Produce json
// @Param request body dto.CreateRelationRequest true "Relation"
// @Success 201 {object} dto.RelationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/relations [post]
func (h *Handler) CreateRelation(c *gin.Context) {
	var req dto.CreateRelationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, apperr.Validation(err.Error()))
		return
	}

	relation, err := h.Repository.CreateRelation(req.SourceID, req.TargetID, req.Label)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, relationResponse(*relation))
}

// DeleteRelation removes a relation
// @Summary Delete relation
// @Tags Relations
// @Produce json
// @Param id path int true "Relation ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/relations/{id} [delete]
func (h *Handler) DeleteRelation(c *gin.Context) {
	id, err := pathID(c, "id", "relation")
	if err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.Repository.DeleteRelation(id); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func relationResponse(r ds.ServiceRelation) dto.RelationResponse {
	return dto.RelationResponse{
		ID:         r.ID,
		SourceID:   r.SourceID,
		TargetID:   r.TargetID,
		SourceName: r.Source.Name,
		TargetName: r.Target.Name,
		Label:      r.Label,
		CreatedAt:  r.CreatedAt,
	}
}
