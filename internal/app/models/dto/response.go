package dto

import (
	"time"

	"github.com/yigit/college/internal/app/models"
)

// StructuredResponse is the envelope around every successful API payload
type StructuredResponse struct {
	Success   bool        `json:"success" example:"true"`
	Message   string      `json:"message" example:"Operation completed successfully"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// NewStructuredResponse creates a standard structured API response
func NewStructuredResponse(data interface{}, message string) StructuredResponse {
	return StructuredResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// PaginationInfo describes the page of a paged listing
type PaginationInfo struct {
	CurrentPage int   `json:"currentPage" example:"1"`
	TotalPages  int   `json:"totalPages" example:"3"`
	PageSize    int   `json:"pageSize" example:"10"`
	TotalItems  int64 `json:"totalItems" example:"21"`
}

// EnrollmentReportData is the payload of the enrollment report endpoint
type EnrollmentReportData struct {
	Strategy   string                       `json:"strategy" example:"pipeline"`
	Count      int                          `json:"count" example:"21"`
	Rows       []models.EnrollmentReportRow `json:"rows"`
	Pagination *PaginationInfo              `json:"pagination,omitempty"`
}

// NewEnrollmentReportData wraps rows, never leaving Rows nil
func NewEnrollmentReportData(strategy string, rows []models.EnrollmentReportRow) EnrollmentReportData {
	if rows == nil {
		rows = []models.EnrollmentReportRow{}
	}
	return EnrollmentReportData{
		Strategy: strategy,
		Count:    len(rows),
		Rows:     rows,
	}
}
