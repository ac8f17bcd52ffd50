package http

import (
	"net/http"

	"todo-api/internal/domain"
)

var (
	// Success response
	Success = Status{Code: http.StatusOK, Message: []string{"Success"}}
	// InternalServerError response
	InternalServerError = Status{Code: http.StatusInternalServerError, Message: []string{"Internal Server Error"}}
)

// Pagination response headers of the list endpoint
const (
	HeaderPerPage      = "X-Pagination-Per-Page"
	HeaderCurrentPage  = "X-Pagination-Current-Page"
	HeaderTotalPages   = "X-Pagination-Total-Pages"
	HeaderTotalEntries = "X-Pagination-Total-Entries"
)

// ResponseBody struct - Generic HTTP response wrapper
type ResponseBody struct {
	Status Status      `json:"status,omitempty"`
	Data   interface{} `json:"data,omitempty"`
}

// Status struct
type Status struct {
	Code    int      `json:"code,omitempty"`
	Message []string `json:"message,omitempty"`
}

// MessageResponse struct
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse struct - body of every failed request
type ErrorResponse struct {
	Type    string              `json:"type"`
	Error   string              `json:"error"`
	Details []domain.FieldError `json:"details,omitempty"`
}

// statusFor maps an error kind to its HTTP status.
func statusFor(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindDuplicateItem:
		return http.StatusConflict
	case domain.KindInvalidIdentifier:
		return http.StatusBadRequest
	case domain.KindItemNotFound:
		return http.StatusNotFound
	case domain.KindInvalidPaginationParameter:
		return http.StatusBadRequest
	case domain.KindPathNotFound:
		return http.StatusNotFound
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindUnclassified:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// errorType is the human label sent as "type" in an ErrorResponse.
func errorType(kind domain.ErrorKind) string {
	switch kind {
	case domain.KindDuplicateItem:
		return "Duplicate error"
	case domain.KindInvalidIdentifier:
		return "Invalid id error"
	case domain.KindItemNotFound:
		return "Item not found error"
	case domain.KindInvalidPaginationParameter:
		return "Invalid pagination parameter error"
	case domain.KindPathNotFound:
		return "Path not found error"
	case domain.KindValidation:
		return "Schema validation error"
	case domain.KindUnclassified:
		return "Server error"
	default:
		return "Server error"
	}
}
