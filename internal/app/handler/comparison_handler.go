package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tttaaaiiissseee/kiro-aws-app20251214-sub000/internal/app/apperr"
	"github.com/tttaaaiiissseee/kiro-aws-app20251214-sub000/internal/app/comparison"
	"github.com/tttaaaiiissseee/kiro-aws-app20251214-sub000/internal/app/dto"
	"github.com/tttaaaiiissseee/kiro-aws-app20251214-sub000/internal/app/ds"
)

// ListAttributes lists comparison attributes
// @Summary List comparison attributes
// @Description Returns all attributes, defaults first then alphabetical
// @Tags Comparison
// @Produce json
// @Success 200 {object} dto.AttributeListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/comparison/attributes [get]
func (h *Handler) ListAttributes(c *gin.Context) {
	attributes, err := h.Repository.ListAttributes()
	if err != nil {
		h.respondError(c, err)
		return
	}

	data := make([]dto.AttributeResponse, len(attributes))
	for i, a := range attributes {
		data[i] = attributeResponse(a)
	}
	c.JSON(http.StatusOK, dto.AttributeListResponse{Data: data, Count: len(data)})
}

// CreateAttribute creates a comparison attribute
// @Summary Create comparison attribute
// @Description Creates a user-defined attribute with a fixed data type
// @Tags Comparison
// @Accept json
// @Produce json
// @Param request body dto.CreateAttributeRequest true "Attribute"
// @Success 201 {object} dto.AttributeDataResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/comparison/attributes [post]
func (h *Handler) CreateAttribute(c *gin.Context) {
	var req dto.CreateAttributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, apperr.Validation(err.Error()))
		return
	}

	dataType, err := comparison.ParseDataType(req.DataType)
	if err != nil {
		h.respondError(c, err)
		return
	}

	attribute, err := h.Repository.CreateAttribute(req.Name, req.Description, dataType)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.AttributeDataResponse{Data: attributeResponse(*attribute)})
}

// SetAttributeValue upserts one (service, attribute) value
// @Summary Set attribute value
// @Description Validates the value against the attribute's data type and upserts it, last write wins
// @Tags Comparison
// @Accept json
// @Produce json
// @Param serviceId path int true "Service ID"
// @Param attributeId path int true "Attribute ID"
// @Param request body dto.SetAttributeValueRequest true "Raw value (any JSON scalar)"
// @Success 200 {object} dto.AttributeValueDataResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/comparison/services/{serviceId}/attributes/{attributeId} [post]
func (h *Handler) SetAttributeValue(c *gin.Context) {
	serviceID, err := pathID(c, "serviceId", "service")
	if err != nil {
		h.respondError(c, err)
		return
	}
	attributeID, err := pathID(c, "attributeId", "attribute")
	if err != nil {
		h.respondError(c, err)
		return
	}

	var req dto.SetAttributeValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, apperr.Validation(err.Error()))
		return
	}
	rawValue, err := scalarString(req.Value)
	if err != nil {
		h.respondError(c, err)
		return
	}

	value, err := h.Repository.SetAttributeValue(serviceID, attributeID, rawValue)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AttributeValueDataResponse{Data: dto.AttributeValueResponse{
		ServiceID:   serviceID,
		AttributeID: attributeID,
		Value:       value.JSONValue(),
	}})
}

// Compare builds a comparison matrix
// @Summary Compare services
// @Description Builds the comparison matrix for up to 5 services
// @Tags Comparison
// @Accept json
// @Produce json
// @Param request body dto.CompareRequest true "Service and attribute selection"
// @Success 200 {object} dto.ComparisonDataResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/comparison/compare [post]
func (h *Handler) Compare(c *gin.Context) {
	var req dto.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, apperr.Validation(err.Error()))
		return
	}

	matrix, err := h.Builder.Build(req.ServiceIDs, req.AttributeIDs)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ComparisonDataResponse{Data: matrixResponse(matrix)})
}

// Export renders a comparison as CSV or PDF
// @Summary Export comparison
// @Description Builds the matrix and streams it as a CSV or PDF attachment
// @Tags Comparison
// @Accept json
// @Produce text/csv
// @Produce application/pdf
// @Param request body dto.ExportRequest true "Selection and format"
// @Success 200 {file} file
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Failure 504 {object} dto.ErrorResponse
// @Router /api/comparison/export [post]
func (h *Handler) Export(c *gin.Context) {
	var req dto.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, apperr.Validation(err.Error()))
		return
	}
	if req.Format != "csv" && req.Format != "pdf" {
		h.respondError(c, apperr.InvalidFormat(req.Format))
		return
	}

	matrix, err := h.Builder.Build(req.ServiceIDs, req.AttributeIDs)
	if err != nil {
		h.respondError(c, err)
		return
	}

	filename := fmt.Sprintf("comparison-%d.%s", time.Now().UnixMilli(), req.Format)

	if req.Format == "csv" {
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		c.Data(http.StatusOK, "text/csv; charset=utf-8", comparison.RenderCSV(matrix))
		return
	}

	// nothing is written to the response until the PDF is fully
	// rendered, so a backend failure cannot leave partial output
	pdf, err := h.PDFRenderer.Render(c.Request.Context(), matrix)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func attributeResponse(a ds.ComparisonAttribute) dto.AttributeResponse {
	return dto.AttributeResponse{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		DataType:    a.DataType,
		IsDefault:   a.IsDefault,
		CreatedAt:   a.CreatedAt,
	}
}

func matrixResponse(m *comparison.Matrix) dto.ComparisonMatrixResponse {
	columns := make([]dto.ComparisonColumn, len(m.Columns))
	for i, col := range m.Columns {
		dtoCol := dto.ComparisonColumn{
			Key:      col.Key,
			Label:    col.Label,
			BuiltIn:  col.BuiltIn,
			DataType: string(col.DataType),
		}
		if !col.BuiltIn {
			id := col.AttributeID
			dtoCol.AttributeID = &id
		}
		columns[i] = dtoCol
	}

	rows := make([]dto.ComparisonRow, len(m.Rows))
	for i, row := range m.Rows {
		cells := make(map[string]interface{}, len(m.Columns))
		for j, col := range m.Columns {
			if cell := row.Cells[j]; cell != nil {
				cells[col.Key] = cell.JSONValue()
			} else {
				// explicit null, column sets are identical across rows
				cells[col.Key] = nil
			}
		}
		rows[i] = dto.ComparisonRow{ServiceID: row.ServiceID, Cells: cells}
	}

	return dto.ComparisonMatrixResponse{
		Columns:        columns,
		Rows:           rows,
		ServiceCount:   m.ServiceCount,
		AttributeCount: m.AttributeCount,
		GeneratedAt:    m.GeneratedAt,
	}
}

// scalarString renders any JSON scalar as the raw string the codec
// validates. Objects, arrays and null are rejected up front.
func scalarString(raw json.RawMessage) (string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return "", apperr.Validation("value must be a JSON scalar")
	}
	switch t := v.(type) {
	case string:
		return t, nil
	case json.Number:
		return t.String(), nil
	case bool:
		return strconv.FormatBool(t), nil
	}
	return "", apperr.Validation("value must be a string, number or boolean")
}
