package dto

import (
	"encoding/json"
	"time"

	"github.com/tttaaaiiissseee/kiro-aws-app20251214-sub000/internal/app/search"
)

// ============ Error envelope ============

type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

type ErrorResponse struct {
	Error     ErrorDetail `json:"error"`
	Timestamp string      `json:"timestamp"`
	Path      string      `json:"path"`
}

// ============ Search ============

type MemoResult struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ServiceResult struct {
	ID           uint         `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	CategoryID   uint         `json:"categoryId"`
	CategoryName string       `json:"categoryName"`
	Score        *int         `json:"score,omitempty"` // relevance sort only
	Memos        []MemoResult `json:"memos"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

type SearchResponse struct {
	Data           []ServiceResult     `json:"data"`
	Count          int                 `json:"count"`
	Query          string              `json:"query"`
	Sort           string              `json:"sort"`
	CategoryFilter *uint               `json:"categoryFilter,omitempty"`
	Suggestions    *search.Suggestions `json:"suggestions,omitempty"` // present only when count == 0
}

// ============ Comparison attributes ============

type AttributeResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	DataType    string    `json:"dataType"`
	IsDefault   bool      `json:"isDefault"`
	CreatedAt   time.Time `json:"createdAt"`
}

type AttributeListResponse struct {
	Data  []AttributeResponse `json:"data"`
	Count int                 `json:"count"`
}

type AttributeDataResponse struct {
	Data AttributeResponse `json:"data"`
}

type CreateAttributeRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description"`
	DataType    string `json:"dataType" binding:"required"`
}

// SetAttributeValueRequest carries the raw value as JSON so any scalar
// type is accepted; the handler stringifies it before encoding.
type SetAttributeValueRequest struct {
	Value json.RawMessage `json:"value" binding:"required"`
}

type AttributeValueResponse struct {
	ServiceID   uint        `json:"serviceId"`
	AttributeID uint        `json:"attributeId"`
	Value       interface{} `json:"value"`
}

type AttributeValueDataResponse struct {
	Data AttributeValueResponse `json:"data"`
}

// ============ Comparison matrix ============

type CompareRequest struct {
	ServiceIDs   []uint `json:"serviceIds"`
	AttributeIDs []uint `json:"attributeIds"`
}

type ExportRequest struct {
	ServiceIDs   []uint `json:"serviceIds"`
	AttributeIDs []uint `json:"attributeIds"`
	Format       string `json:"format" binding:"required"`
}

type ComparisonColumn struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	BuiltIn     bool   `json:"builtIn"`
	AttributeID *uint  `json:"attributeId,omitempty"`
	DataType    string `json:"dataType"`
}

// ComparisonRow keeps one cell per column key; a column with no stored
// value is present with an explicit null, never omitted.
type ComparisonRow struct {
	ServiceID uint                   `json:"serviceId"`
	Cells     map[string]interface{} `json:"cells"`
}

type ComparisonMatrixResponse struct {
	Columns        []ComparisonColumn `json:"columns"`
	Rows           []ComparisonRow    `json:"rows"`
	ServiceCount   int                `json:"serviceCount"`
	AttributeCount int                `json:"attributeCount"`
	GeneratedAt    time.Time          `json:"generatedAt"`
}

type ComparisonDataResponse struct {
	Data ComparisonMatrixResponse `json:"data"`
}

// ============ Categories ============

type CategoryResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	SortOrder   int       `json:"sortOrder"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CategoryListResponse struct {
	Data  []CategoryResponse `json:"data"`
	Count int                `json:"count"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
}

type CategoryOrderEntry struct {
	ID        uint `json:"id" binding:"required"`
	SortOrder int  `json:"sortOrder"`
}

type ReorderCategoriesRequest struct {
	Orders []CategoryOrderEntry `json:"orders" binding:"required,min=1,dive"`
}

// ============ Services ============

type ServiceResponse struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	CategoryID   uint      `json:"categoryId"`
	CategoryName string    `json:"categoryName,omitempty"`
	IconURL      *string   `json:"iconUrl,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type ServiceListResponse struct {
	Data  []ServiceResponse `json:"data"`
	Count int               `json:"count"`
}

type CreateServiceRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description"`
	CategoryID  uint   `json:"categoryId" binding:"required"`
}

type UpdateServiceRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description"`
	CategoryID  *uint   `json:"categoryId"`
}

// ============ Memos ============

type MemoResponse struct {
	ID        uint      `json:"id"`
	ServiceID uint      `json:"serviceId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type MemoListResponse struct {
	Data  []MemoResponse `json:"data"`
	Count int            `json:"count"`
}

type CreateMemoRequest struct {
	Title   string `json:"title" binding:"required,min=1,max=200"`
	Content string `json:"content"`
}

type UpdateMemoRequest struct {
	Title   *string `json:"title" binding:"omitempty,min=1,max=200"`
	Content *string `json:"content"`
}

// ============ Relations ============

type RelationResponse struct {
	ID         uint      `json:"id"`
	SourceID   uint      `json:"sourceId"`
	TargetID   uint      `json:"targetId"`
	SourceName string    `json:"sourceName,omitempty"`
	TargetName string    `json:"targetName,omitempty"`
	Label      string    `json:"label"`
	CreatedAt  time.Time `json:"createdAt"`
}

type RelationListResponse struct {
	Data  []RelationResponse `json:"data"`
	Count int                `json:"count"`
}

type CreateRelationRequest struct {
	SourceID uint   `json:"sourceId" binding:"required"`
	TargetID uint   `json:"targetId" binding:"required"`
	Label    string `json:"label" binding:"max=100"`
}
