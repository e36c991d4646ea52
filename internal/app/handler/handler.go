package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/tttaaaiiissseee/kiro-aws-app20251214-sub000/internal/app/apperr"
	"github.com/tttaaaiiissseee/kiro-aws-app20251214-sub000/internal/app/comparison"
	"github.com/tttaaaiiissseee/kiro-aws-app20251214-sub000/internal/app/dto"
	"github.com/tttaaaiiissseee/kiro-aws-app20251214-sub000/internal/app/repository"
	"github.com/tttaaaiiissseee/kiro-aws-app20251214-sub000/internal/app/search"
	"github.com/tttaaaiiissseee/kiro-aws-app20251214-sub000/internal/app/storage"
)

// Handler holds the REST API handlers and their collaborators.
type Handler struct {
	Repository  *repository.Repository
	MinIOClient *storage.MinIOClient
	Matcher     *search.Matcher
	Suggester   *search.Suggester
	Builder     *comparison.Builder
	PDFRenderer *comparison.PDFRenderer
}

func NewHandler(
	r *repository.Repository,
	minioClient *storage.MinIOClient,
	matcher *search.Matcher,
	suggester *search.Suggester,
	builder *comparison.Builder,
	pdfRenderer *comparison.PDFRenderer,
) *Handler {
	return &Handler{
		Repository:  r,
		MinIOClient: minioClient,
		Matcher:     matcher,
		Suggester:   suggester,
		Builder:     builder,
		PDFRenderer: pdfRenderer,
	}
}

// Centralized error rendering: every failure goes out as
// {error:{code,message,details?}, timestamp, path}.
func (h *Handler) respondError(c *gin.Context, err error) {
	appErr := apperr.From(err)
	if appErr.Status >= http.StatusInternalServerError {
		logrus.Error(err.Error())
	}
	c.JSON(appErr.Status, dto.ErrorResponse{
		Error: dto.ErrorDetail{
			Code:    appErr.Code,
			Message: appErr.Message,
			Details: appErr.Details,
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Path:      c.Request.URL.Path,
	})
}

// pathID parses a positive numeric path parameter.
func pathID(c *gin.Context, param, what string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil || id == 0 {
		return 0, apperr.InvalidID(what)
	}
	return uint(id), nil
}
