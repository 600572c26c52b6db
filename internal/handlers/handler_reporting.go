package handlers

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/SscSPs/mma_books/internal/apperrors"
	"github.com/SscSPs/mma_books/internal/core/domain"
	portssvc "github.com/SscSPs/mma_books/internal/core/ports/services"
	"github.com/SscSPs/mma_books/internal/core/reporting"
	"github.com/SscSPs/mma_books/internal/dto"
	"github.com/SscSPs/mma_books/internal/middleware"
	"github.com/SscSPs/mma_books/internal/utils/export"
	"github.com/SscSPs/mma_books/internal/utils/pagination"
	"github.com/SscSPs/mma_books/internal/utils/period"
	"github.com/gin-gonic/gin"
)

// NextTokenHeader carries the pagination cursor on CSV entry listings.
const NextTokenHeader = "X-Next-Token"

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// RegisterReportingRoutes registers routes related to financial reports
func RegisterReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	registerValidators()
	h := newReportingHandler(reportingService)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/general-ledger", h.getGeneralLedger)
		reportingGroup.GET("/income-statement", h.getIncomeStatement)
		reportingGroup.GET("/balance-sheet", h.getBalanceSheet)
		reportingGroup.GET("/trial-balance", h.getTrialBalance)
	}
	rg.GET("/journal-entries", h.listJournalEntries)
}

// getGeneralLedger godoc
// @Summary Generate general ledger
// @Description Lists every journal line per account with a running balance. Flow accounts cover the period; stock accounts are cumulative to its end.
// @Tags reports
// @Produce json,text/csv
// @Param business query string false "Business ID (all businesses when omitted)"
// @Param period query string false "Period token" Enums(current-month, last-month, current-quarter, current-year, last-year, all) default(current-month)
// @Param startDate query string false "Explicit start date (YYYY-MM-DD), overrides period"
// @Param endDate query string false "Explicit end date (YYYY-MM-DD), overrides period"
// @Param account query string false "Account code, or all" default(all)
// @Param format query string false "Response format" Enums(json, csv) default(json)
// @Success 200 {object} dto.ReportResponse{report=domain.GeneralLedger}
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 502 {object} dto.ErrorResponse "Ledger data unavailable"
// @Failure 500 {object} dto.ErrorResponse "Failed to generate report"
// @Security BearerAuth
// @Router /reports/general-ledger [get]
func (h *reportingHandler) getGeneralLedger(c *gin.Context) {
	params, query, ok := h.bindReportQuery(c)
	if !ok {
		return
	}

	report, scope, err := h.reportingService.GeneralLedger(c.Request.Context(), query)
	if err != nil {
		h.handleError(c, err, "general ledger")
		return
	}

	h.render(c, params, query, scope, "general-ledger", report, "", func(w io.Writer) error {
		return export.GeneralLedger(w, report)
	})
}

// getIncomeStatement godoc
// @Summary Generate income statement
// @Description Income and expense accounts grouped by category for the period, with net income.
// @Tags reports
// @Produce json,text/csv
// @Param business query string false "Business ID (all businesses when omitted)"
// @Param period query string false "Period token" Enums(current-month, last-month, current-quarter, current-year, last-year, all) default(current-month)
// @Param startDate query string false "Explicit start date (YYYY-MM-DD), overrides period"
// @Param endDate query string false "Explicit end date (YYYY-MM-DD), overrides period"
// @Param format query string false "Response format" Enums(json, csv) default(json)
// @Success 200 {object} dto.ReportResponse{report=domain.IncomeStatement}
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 502 {object} dto.ErrorResponse "Ledger data unavailable"
// @Failure 500 {object} dto.ErrorResponse "Failed to generate report"
// @Security BearerAuth
// @Router /reports/income-statement [get]
func (h *reportingHandler) getIncomeStatement(c *gin.Context) {
	params, query, ok := h.bindReportQuery(c)
	if !ok {
		return
	}

	report, scope, err := h.reportingService.IncomeStatement(c.Request.Context(), query)
	if err != nil {
		h.handleError(c, err, "income statement")
		return
	}

	h.render(c, params, query, scope, "income-statement", report, "", func(w io.Writer) error {
		return export.IncomeStatement(w, report)
	})
}

// getBalanceSheet godoc
// @Summary Generate balance sheet
// @Description Asset, liability and equity balances as of the end of the period.
// @Tags reports
// @Produce json,text/csv
// @Param business query string false "Business ID (all businesses when omitted)"
// @Param period query string false "Period token" Enums(current-month, last-month, current-quarter, current-year, last-year, all) default(current-month)
// @Param startDate query string false "Explicit start date (YYYY-MM-DD), overrides period"
// @Param endDate query string false "Explicit end date (YYYY-MM-DD), overrides period"
// @Param format query string false "Response format" Enums(json, csv) default(json)
// @Success 200 {object} dto.ReportResponse{report=domain.BalanceSheet}
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 502 {object} dto.ErrorResponse "Ledger data unavailable"
// @Failure 500 {object} dto.ErrorResponse "Failed to generate report"
// @Security BearerAuth
// @Router /reports/balance-sheet [get]
func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	params, query, ok := h.bindReportQuery(c)
	if !ok {
		return
	}

	report, scope, err := h.reportingService.BalanceSheet(c.Request.Context(), query)
	if err != nil {
		h.handleError(c, err, "balance sheet")
		return
	}

	if !report.Balanced {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Balance sheet is out of balance",
			slog.String("total_assets", report.TotalAssets.String()),
			slog.String("total_liabilities_and_equity", report.TotalLiabilitiesAndEquity.String()))
	}

	h.render(c, params, query, scope, "balance-sheet", report, "", func(w io.Writer) error {
		return export.BalanceSheet(w, report)
	})
}

// getTrialBalance godoc
// @Summary Generate trial balance
// @Description Cumulative account nets in debit and credit columns as of the end of the period.
// @Tags reports
// @Produce json,text/csv
// @Param business query string false "Business ID (all businesses when omitted)"
// @Param period query string false "Period token" Enums(current-month, last-month, current-quarter, current-year, last-year, all) default(current-month)
// @Param startDate query string false "Explicit start date (YYYY-MM-DD), overrides period"
// @Param endDate query string false "Explicit end date (YYYY-MM-DD), overrides period"
// @Param format query string false "Response format" Enums(json, csv) default(json)
// @Success 200 {object} dto.ReportResponse{report=domain.TrialBalance}
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 502 {object} dto.ErrorResponse "Ledger data unavailable"
// @Failure 500 {object} dto.ErrorResponse "Failed to generate report"
// @Security BearerAuth
// @Router /reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	params, query, ok := h.bindReportQuery(c)
	if !ok {
		return
	}

	report, scope, err := h.reportingService.TrialBalance(c.Request.Context(), query)
	if err != nil {
		h.handleError(c, err, "trial balance")
		return
	}

	h.render(c, params, query, scope, "trial-balance", report, "", func(w io.Writer) error {
		return export.TrialBalance(w, report)
	})
}

// listJournalEntries godoc
// @Summary List journal entries
// @Description Entries dated within the period with their lines and balance flag, newest first.
// @Tags journal
// @Produce json,text/csv
// @Param business query string false "Business ID (all businesses when omitted)"
// @Param period query string false "Period token" Enums(current-month, last-month, current-quarter, current-year, last-year, all) default(current-month)
// @Param startDate query string false "Explicit start date (YYYY-MM-DD), overrides period"
// @Param endDate query string false "Explicit end date (YYYY-MM-DD), overrides period"
// @Param limit query int false "Page size (1-500); all entries when omitted"
// @Param nextToken query string false "Cursor from the previous page"
// @Param format query string false "Response format" Enums(json, csv) default(json)
// @Success 200 {object} dto.ReportResponse{report=[]domain.EntrySummary}
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 502 {object} dto.ErrorResponse "Ledger data unavailable"
// @Failure 500 {object} dto.ErrorResponse "Failed to list entries"
// @Security BearerAuth
// @Router /journal-entries [get]
func (h *reportingHandler) listJournalEntries(c *gin.Context) {
	params, query, ok := h.bindReportQuery(c)
	if !ok {
		return
	}

	var after *pagination.Cursor
	if params.NextToken != "" {
		cursor, err := pagination.DecodeToken(params.NextToken)
		if err != nil {
			middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Invalid pagination token", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid nextToken"})
			return
		}
		after = &cursor
	}

	entries, scope, err := h.reportingService.ListEntries(c.Request.Context(), query)
	if err != nil {
		h.handleError(c, err, "journal entries")
		return
	}

	page, next := reporting.PageEntries(entries, after, params.Limit)
	nextToken := ""
	if next != nil {
		nextToken = pagination.EncodeToken(*next)
	}

	h.render(c, params, query, scope, "journal-entries", page, nextToken, func(w io.Writer) error {
		return export.Entries(w, page)
	})
}

// bindReportQuery binds and validates the shared query parameters, writing a
// 400 response and returning false when they are invalid.
func (h *reportingHandler) bindReportQuery(c *gin.Context) (dto.ReportQueryParams, domain.ReportQuery, bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ReportQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind report query params", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return params, domain.ReportQuery{}, false
	}
	if err := params.Validate(); err != nil {
		logger.Warn("Invalid report query params", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return params, domain.ReportQuery{}, false
	}

	query := params.ToReportQuery()
	if userID, ok := middleware.GetUserIDFromContext(c); ok {
		logger = logger.With(slog.String("user_id", userID))
	}
	logger.Info("Received report request",
		slog.String("business_id", query.BusinessID),
		slog.String("period", query.Period),
		slog.String("start_date", query.StartDate),
		slog.String("end_date", query.EndDate),
		slog.String("format", params.Format))
	return params, query, true
}

// render writes report as JSON inside the envelope for scope, the range the
// service built it over, or as CSV on request. A non-empty nextToken is carried
// in the envelope, or in NextTokenHeader for CSV.
func (h *reportingHandler) render(c *gin.Context, params dto.ReportQueryParams, query domain.ReportQuery, scope period.Range, name string, report any, nextToken string, writeCSV func(io.Writer) error) {
	if !params.WantsCSV() {
		resp := dto.NewReportResponse(query, scope, report)
		resp.NextToken = nextToken
		c.JSON(http.StatusOK, resp)
		return
	}

	var buf bytes.Buffer
	if err := writeCSV(&buf); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to render CSV", slog.String("report", name), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to render " + name})
		return
	}
	if nextToken != "" {
		c.Header(NextTokenHeader, nextToken)
	}
	c.Header("Content-Disposition", `attachment; filename="`+name+`.csv"`)
	c.Data(http.StatusOK, export.ContentType, buf.Bytes())
}

// handleError maps service errors to HTTP responses.
func (h *reportingHandler) handleError(c *gin.Context, err error, report string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status, msg := errorResponse(err, report)
	if status >= http.StatusInternalServerError {
		logger.Error("Failed to generate "+report, slog.String("error", err.Error()), slog.Int("status", status))
	} else {
		logger.Warn("Rejected "+report+" request", slog.String("error", err.Error()), slog.Int("status", status))
	}
	c.JSON(status, dto.ErrorResponse{Error: msg})
}

func errorResponse(err error, report string) (int, string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, "Not found"
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden, "You do not have permission to access this report"
	case errors.Is(err, apperrors.ErrDataFetch):
		return http.StatusBadGateway, "Ledger data is temporarily unavailable"
	default:
		return http.StatusInternalServerError, "Failed to generate " + report
	}
}
