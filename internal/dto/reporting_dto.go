package dto

import (
	"fmt"
	"strings"

	"github.com/SscSPs/mma_books/internal/apperrors"
	"github.com/SscSPs/mma_books/internal/core/domain"
	"github.com/SscSPs/mma_books/internal/utils/period"
)

// FormatCSV selects the CSV rendering; JSON is the default.
const FormatCSV = "csv"

// ReportQueryParams are the query parameters shared by every report route.
type ReportQueryParams struct {
	Business  string `form:"business" binding:"omitempty,max=64"`
	Period    string `form:"period" binding:"omitempty,max=32"`
	StartDate string `form:"startDate" binding:"omitempty,isodate"`
	EndDate   string `form:"endDate" binding:"omitempty,isodate"`
	Account   string `form:"account" binding:"omitempty,max=64"`
	Format    string `form:"format" binding:"omitempty,oneof=json csv"`

	// Journal entry listing only.
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=500"`
	NextToken string `form:"nextToken" binding:"omitempty,max=256"`
}

// Validate checks constraints spanning more than one field.
func (p ReportQueryParams) Validate() error {
	// YYYY-MM-DD compares chronologically as a string.
	if p.StartDate != "" && p.EndDate != "" && p.StartDate > p.EndDate {
		return fmt.Errorf("%w: startDate must be before or equal to endDate", apperrors.ErrValidation)
	}
	return nil
}

// WantsCSV reports whether the caller asked for a CSV rendering.
func (p ReportQueryParams) WantsCSV() bool {
	return strings.EqualFold(p.Format, FormatCSV)
}

// ToReportQuery converts the bound parameters to the engine's query.
func (p ReportQueryParams) ToReportQuery() domain.ReportQuery {
	return domain.ReportQuery{
		BusinessID:  strings.TrimSpace(p.Business),
		Period:      strings.TrimSpace(p.Period),
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		AccountCode: strings.TrimSpace(p.Account),
	}
}

// ReportResponse wraps every JSON report with the scope it was computed for.
type ReportResponse struct {
	BusinessID string `json:"businessID"`
	Period     string `json:"period"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	Report     any    `json:"report"`
	NextToken  string `json:"nextToken,omitempty"`
}

// NewReportResponse builds the response envelope for report over r.
func NewReportResponse(query domain.ReportQuery, r period.Range, report any) ReportResponse {
	return ReportResponse{
		BusinessID: query.BusinessID,
		Period:     query.Period,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		Report:     report,
	}
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
