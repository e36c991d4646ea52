package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a coded API error. Code and Details go to the client verbatim,
// Status picks the HTTP status.
type Error struct {
	Status  int
	Code    string
	Message string
	Details map[string]interface{}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// WithDetails attaches structured detail fields to the error.
func (e *Error) WithDetails(details map[string]interface{}) *Error {
	e.Details = details
	return e
}

func New(status int, code, message string) *Error {
	return &Error{Status: status, Code: code, Message: message}
}

// From returns err as *Error, wrapping anything else as INTERNAL_ERROR.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return New(http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}

// ============ Validation (400) ============

func MissingQuery() *Error {
	return New(http.StatusBadRequest, "MISSING_QUERY", "query parameter q is required")
}

func EmptyQuery() *Error {
	return New(http.StatusBadRequest, "EMPTY_QUERY", "query must not be empty")
}

func InvalidDataType(dataType string) *Error {
	return New(http.StatusBadRequest, "INVALID_DATA_TYPE",
		fmt.Sprintf("data type %q is not one of TEXT, NUMBER, BOOLEAN, URL", dataType))
}

func InvalidValueFormat(dataType string, rawValue string) *Error {
	return New(http.StatusBadRequest, "INVALID_VALUE_FORMAT",
		fmt.Sprintf("value %q is not a valid %s", rawValue, dataType)).
		WithDetails(map[string]interface{}{"dataType": dataType, "value": rawValue})
}

func InvalidServiceIDs() *Error {
	return New(http.StatusBadRequest, "INVALID_SERVICE_IDS", "serviceIds must not be empty")
}

func TooManyServices(maximum int) *Error {
	return New(http.StatusBadRequest, "TOO_MANY_SERVICES",
		fmt.Sprintf("at most %d services can be compared", maximum)).
		WithDetails(map[string]interface{}{"maximum": maximum})
}

func InvalidFormat(format string) *Error {
	return New(http.StatusBadRequest, "INVALID_FORMAT",
		fmt.Sprintf("format %q is not supported, use csv or pdf", format))
}

func InvalidID(what string) *Error {
	return New(http.StatusBadRequest, "INVALID_ID", fmt.Sprintf("invalid %s id", what))
}

func Validation(message string) *Error {
	return New(http.StatusBadRequest, "VALIDATION_ERROR", message)
}

// ============ Not found (404) ============

func ServiceNotFound(id uint) *Error {
	return New(http.StatusNotFound, "SERVICE_NOT_FOUND", fmt.Sprintf("service %d not found", id))
}

func AttributeNotFound(id uint) *Error {
	return New(http.StatusNotFound, "ATTRIBUTE_NOT_FOUND", fmt.Sprintf("attribute %d not found", id))
}

func ServicesNotFound(missingIDs []uint) *Error {
	return New(http.StatusNotFound, "SERVICES_NOT_FOUND", "some services were not found").
		WithDetails(map[string]interface{}{"missingIds": missingIDs})
}

func CategoryNotFound(id uint) *Error {
	return New(http.StatusNotFound, "CATEGORY_NOT_FOUND", fmt.Sprintf("category %d not found", id))
}

func MemoNotFound(id uint) *Error {
	return New(http.StatusNotFound, "MEMO_NOT_FOUND", fmt.Sprintf("memo %d not found", id))
}

func RelationNotFound(id uint) *Error {
	return New(http.StatusNotFound, "RELATION_NOT_FOUND", fmt.Sprintf("relation %d not found", id))
}

// ============ Conflict (409) ============

func DuplicateAttributeName(name string) *Error {
	return New(http.StatusConflict, "DUPLICATE_ATTRIBUTE_NAME",
		fmt.Sprintf("attribute %q already exists", name))
}

func DuplicateName(name string) *Error {
	return New(http.StatusConflict, "DUPLICATE_NAME", fmt.Sprintf("name %q already exists", name))
}

func CategoryInUse(id uint, serviceCount int) *Error {
	return New(http.StatusConflict, "CATEGORY_IN_USE",
		fmt.Sprintf("category %d still has %d services", id, serviceCount)).
		WithDetails(map[string]interface{}{"serviceCount": serviceCount})
}

func DuplicateRelation(sourceID, targetID uint) *Error {
	return New(http.StatusConflict, "DUPLICATE_RELATION",
		fmt.Sprintf("relation %d -> %d already exists", sourceID, targetID))
}

func SelfRelation() *Error {
	return New(http.StatusConflict, "SELF_RELATION", "a service cannot relate to itself")
}

// ============ Export failures ============

func ExportFailed(err error) *Error {
	return New(http.StatusBadGateway, "EXPORT_FAILED",
		fmt.Sprintf("pdf rendering failed: %v", err))
}

func ExportTimeout() *Error {
	return New(http.StatusGatewayTimeout, "EXPORT_TIMEOUT", "pdf rendering timed out")
}
