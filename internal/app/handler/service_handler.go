package handler

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/tttaaaiiissseee/kiro-aws-app20251214-sub000/internal/app/apperr"
	"github.com/tttaaaiiissseee/kiro-aws-app20251214-sub000/internal/app/ds"
	"github.com/tttaaaiiissseee/kiro-aws-app20251214-sub000/internal/app/dto"
)

const maxIconSize = 2 << 20 // 2 MiB

// GetServices lists services
// @Summary List services
// @Tags Services
// @Produce json
// @Param category query int false "Restrict to category ID"
// @Success 200 {object} dto.ServiceListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/services [get]
func (h *Handler) GetServices(c *gin.Context) {
	var categoryID *uint
	if raw := c.Query("category"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || parsed == 0 {
			h.respondError(c, apperr.InvalidID("category"))
			return
		}
		id := uint(parsed)
		categoryID = &id
	}

	services, err := h.Repository.GetServices(categoryID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	data := make([]dto.ServiceResponse, len(services))
	for i, s := range services {
		data[i] = h.serviceResponse(s)
	}
	c.JSON(http.StatusOK, dto.ServiceListResponse{Data: data, Count: len(data)})
}

// GetService returns one service
// @Summary Get service
// @Tags Services
// @Produce json
// @Param id path int true "Service ID"
// @Success 200 {object} dto.ServiceResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/services/{id} [get]
func (h *Handler) GetService(c *gin.Context) {
	id, err := pathID(c, "id", "service")
	if err != nil {
		h.respondError(c, err)
		return
	}

	service, err := h.Repository.GetServiceByID(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.serviceResponse(*service))
}

// CreateService creates a service
// @Summary Create service
// @Tags Services
// @Accept json
// @Produce json
// @Param request body dto.CreateServiceRequest true "Service"
// @Success 201 {object} dto.ServiceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/services [post]
func (h *Handler) CreateService(c *gin.Context) {
	var req dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, apperr.Validation(err.Error()))
		return
	}

	service, err := h.Repository.CreateService(req.Name, req.Description, req.CategoryID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, h.serviceResponse(*service))
}

// UpdateService updates a service
// @Summary Update service
// @Tags Services
// @Accept json
// @Produce json
// @Param id path int true "Service ID"
// @Param request body dto.UpdateServiceRequest true "Fields to update"
// @Success 200 {object} dto.ServiceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/services/{id} [put]
func (h *Handler) UpdateService(c *gin.Context) {
	id, err := pathID(c, "id", "service")
	if err != nil {
		h.respondError(c, err)
		return
	}

	var req dto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, apperr.Validation(err.Error()))
		return
	}

	if err := h.Repository.UpdateService(id, req.Name, req.Description, req.CategoryID); err != nil {
		h.respondError(c, err)
		return
	}

	service, err := h.Repository.GetServiceByID(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.serviceResponse(*service))
}

// DeleteService deletes a service and its memos, relations and values
// @Summary Delete service
// @Tags Services
// @Produce json
// @Param id path int true "Service ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/services/{id} [delete]
func (h *Handler) DeleteService(c *gin.Context) {
	id, err := pathID(c, "id", "service")
	if err != nil {
		h.respondError(c, err)
		return
	}

	service, err := h.Repository.GetServiceByID(id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if service.IconURL != nil && h.MinIOClient != nil {
		if err := h.MinIOClient.DeleteIcon(*service.IconURL); err != nil {
			logrus.Warnf("Failed to delete icon from MinIO: %v", err)
		}
	}

	if err := h.Repository.DeleteService(id); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadServiceIcon stores a service icon in MinIO
// @Summary Upload service icon
// @Tags Services
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Service ID"
// @Param icon formData file true "Icon image"
// @Success 200 {object} dto.ServiceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/services/{id}/icon [post]
func (h *Handler) UploadServiceIcon(c *gin.Context) {
	id, err := pathID(c, "id", "service")
	if err != nil {
		h.respondError(c, err)
		return
	}

	service, err := h.Repository.GetServiceByID(id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if h.MinIOClient == nil {
		h.respondError(c, apperr.New(http.StatusServiceUnavailable, "STORAGE_UNAVAILABLE", "icon storage is not configured"))
		return
	}

	fileHeader, err := c.FormFile("icon")
	if err != nil {
		h.respondError(c, apperr.Validation("icon file is required"))
		return
	}
	if fileHeader.Size > maxIconSize {
		h.respondError(c, apperr.Validation("icon must be at most 2 MiB"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.respondError(c, err)
		return
	}
	defer file.Close()
	iconData, err := io.ReadAll(file)
	if err != nil {
		h.respondError(c, err)
		return
	}

	objectName, err := h.MinIOClient.UploadIcon(iconData, fileHeader.Filename)
	if err != nil {
		h.respondError(c, err)
		return
	}

	// drop the old icon after the new one is stored
	if service.IconURL != nil {
		if err := h.MinIOClient.DeleteIcon(*service.IconURL); err != nil {
			logrus.Warnf("Failed to delete old icon from MinIO: %v", err)
		}
	}

	if err := h.Repository.SetServiceIcon(id, &objectName); err != nil {
		h.respondError(c, err)
		return
	}

	service.IconURL = &objectName
	c.JSON(http.StatusOK, h.serviceResponse(*service))
}

func (h *Handler) serviceResponse(s ds.Service) dto.ServiceResponse {
	resp := dto.ServiceResponse{
		ID:           s.ID,
		Name:         s.Name,
		Description:  s.Description,
		CategoryID:   s.CategoryID,
		CategoryName: s.Category.Name,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
	if s.IconURL != nil && h.MinIOClient != nil {
		if url, err := h.MinIOClient.IconURL(*s.IconURL); err == nil {
			resp.IconURL = &url
		}
	}
	return resp
}
