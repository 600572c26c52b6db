package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/mma_books/internal/apperrors"
	"github.com/SscSPs/mma_books/internal/core/domain"
	portssvc "github.com/SscSPs/mma_books/internal/core/ports/services"
	"github.com/SscSPs/mma_books/internal/handlers"
	"github.com/SscSPs/mma_books/internal/platform/config"
	"github.com/SscSPs/mma_books/internal/utils/pagination"
	"github.com/SscSPs/mma_books/internal/utils/period"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) GeneralLedger(ctx context.Context, query domain.ReportQuery) (*domain.GeneralLedger, period.Range, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, period.Range{}, args.Error(2)
	}
	return args.Get(0).(*domain.GeneralLedger), args.Get(1).(period.Range), args.Error(2)
}

func (m *MockReportingService) IncomeStatement(ctx context.Context, query domain.ReportQuery) (*domain.IncomeStatement, period.Range, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, period.Range{}, args.Error(2)
	}
	return args.Get(0).(*domain.IncomeStatement), args.Get(1).(period.Range), args.Error(2)
}

func (m *MockReportingService) BalanceSheet(ctx context.Context, query domain.ReportQuery) (*domain.BalanceSheet, period.Range, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, period.Range{}, args.Error(2)
	}
	return args.Get(0).(*domain.BalanceSheet), args.Get(1).(period.Range), args.Error(2)
}

func (m *MockReportingService) TrialBalance(ctx context.Context, query domain.ReportQuery) (*domain.TrialBalance, period.Range, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, period.Range{}, args.Error(2)
	}
	return args.Get(0).(*domain.TrialBalance), args.Get(1).(period.Range), args.Error(2)
}

func (m *MockReportingService) ListEntries(ctx context.Context, query domain.ReportQuery) ([]domain.EntrySummary, period.Range, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, period.Range{}, args.Error(2)
	}
	return args.Get(0).([]domain.EntrySummary), args.Get(1).(period.Range), args.Error(2)
}

// Ensure mock implements the interface
var _ portssvc.ReportingService = (*MockReportingService)(nil)

// --- Test Suite ---
type ReportingHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockReporting *MockReportingService
	jwtSecret     string
}

type envelope struct {
	BusinessID string          `json:"businessID"`
	Period     string          `json:"period"`
	StartDate  string          `json:"startDate"`
	EndDate    string          `json:"endDate"`
	Report     json.RawMessage `json:"report"`
	NextToken  string          `json:"nextToken"`
}

var march = period.Range{StartDate: "2024-03-01", EndDate: "2024-03-31"}

// generateTestToken creates a dummy JWT for testing.
func (suite *ReportingHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "mma-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *ReportingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.mockReporting = new(MockReportingService)

	cfg := &config.Config{
		IsProduction:       true,
		AuthEnabled:        true,
		JWTSecret:          suite.jwtSecret,
		RateLimit:          "1000-M",
		CORSAllowedOrigins: []string{"*"},
	}
	err := handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{Reporting: suite.mockReporting})
	suite.Require().NoError(err)
}

func (suite *ReportingHandlerTestSuite) get(url string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken("user-1"))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *ReportingHandlerTestSuite) TestHealth_IsPublic() {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *ReportingHandlerTestSuite) TestReports_RequireToken() {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/reports/income-statement", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockReporting.AssertNotCalled(suite.T(), "IncomeStatement", mock.Anything, mock.Anything)
}

func (suite *ReportingHandlerTestSuite) TestIncomeStatement_Success() {
	query := domain.ReportQuery{BusinessID: "biz-1", Period: "current-month"}
	report := &domain.IncomeStatement{
		StartDate:     march.StartDate,
		EndDate:       march.EndDate,
		TotalIncome:   decimal.NewFromInt(500),
		TotalExpenses: decimal.NewFromInt(200),
		NetIncome:     decimal.NewFromInt(300),
	}
	suite.mockReporting.On("IncomeStatement", mock.Anything, query).Return(report, march, nil).Once()

	w := suite.get("/api/v1/reports/income-statement?business=biz-1&period=current-month")

	suite.Equal(http.StatusOK, w.Code)
	var body envelope
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("biz-1", body.BusinessID)
	suite.Equal("current-month", body.Period)
	suite.Equal("2024-03-01", body.StartDate)
	suite.Equal("2024-03-31", body.EndDate)

	var got domain.IncomeStatement
	suite.Require().NoError(json.Unmarshal(body.Report, &got))
	suite.True(decimal.NewFromInt(300).Equal(got.NetIncome))
	suite.mockReporting.AssertExpectations(suite.T())
}

func (suite *ReportingHandlerTestSuite) TestGeneralLedger_PassesAccountAndDates() {
	query := domain.ReportQuery{StartDate: "2024-03-01", EndDate: "2024-03-15", AccountCode: "1000"}
	report := &domain.GeneralLedger{StartDate: "2024-03-01", EndDate: "2024-03-15", Accounts: []domain.AccountLedger{}}
	suite.mockReporting.On("GeneralLedger", mock.Anything, query).
		Return(report, period.Range{StartDate: "2024-03-01", EndDate: "2024-03-15"}, nil).Once()

	w := suite.get("/api/v1/reports/general-ledger?account=1000&startDate=2024-03-01&endDate=2024-03-15")

	suite.Equal(http.StatusOK, w.Code)
	var body envelope
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("2024-03-15", body.EndDate)
	suite.mockReporting.AssertExpectations(suite.T())
}

func (suite *ReportingHandlerTestSuite) TestTrialBalance_CSV() {
	query := domain.ReportQuery{Period: "all"}
	report := &domain.TrialBalance{
		Rows: []domain.TrialBalanceRow{
			{AccountCode: "1000", AccountName: "Cash", AccountType: domain.Asset, Debit: decimal.NewFromInt(100), Credit: decimal.Zero},
		},
		TotalDebit:  decimal.NewFromInt(100),
		TotalCredit: decimal.Zero,
	}
	suite.mockReporting.On("TrialBalance", mock.Anything, query).Return(report, period.Range{}, nil).Once()

	w := suite.get("/api/v1/reports/trial-balance?period=all&format=csv")

	suite.Equal(http.StatusOK, w.Code)
	suite.True(strings.HasPrefix(w.Header().Get("Content-Type"), "text/csv"))
	suite.Contains(w.Header().Get("Content-Disposition"), "trial-balance.csv")
	suite.Contains(w.Body.String(), "1000,Cash,asset,100.00,0.00")
}

func (suite *ReportingHandlerTestSuite) TestJournalEntries_Success() {
	query := domain.ReportQuery{Period: "last-month"}
	entries := []domain.EntrySummary{{
		JournalEntry: domain.JournalEntry{EntryID: "E1", EntryDate: time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)},
		Lines:        []domain.JournalLine{},
		Balanced:     true,
	}}
	suite.mockReporting.On("ListEntries", mock.Anything, query).
		Return(entries, period.Range{StartDate: "2024-02-01", EndDate: "2024-02-29"}, nil).Once()

	w := suite.get("/api/v1/journal-entries?period=last-month")

	suite.Equal(http.StatusOK, w.Code)
	var body envelope
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	var got []domain.EntrySummary
	suite.Require().NoError(json.Unmarshal(body.Report, &got))
	suite.Require().Len(got, 1)
	suite.Equal("E1", got[0].EntryID)
}

func (suite *ReportingHandlerTestSuite) TestJournalEntries_Paginates() {
	query := domain.ReportQuery{}
	mk := func(id, date string) domain.EntrySummary {
		d, _ := time.Parse(domain.DateLayout, date)
		return domain.EntrySummary{JournalEntry: domain.JournalEntry{EntryID: id, EntryDate: d}, Lines: []domain.JournalLine{}, Balanced: true}
	}
	entries := []domain.EntrySummary{mk("E3", "2024-03-20"), mk("E2", "2024-03-15"), mk("E1", "2024-03-15")}
	suite.mockReporting.On("ListEntries", mock.Anything, query).Return(entries, march, nil).Twice()

	w := suite.get("/api/v1/journal-entries?limit=2")
	suite.Require().Equal(http.StatusOK, w.Code)
	var first envelope
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &first))
	var firstPage []domain.EntrySummary
	suite.Require().NoError(json.Unmarshal(first.Report, &firstPage))
	suite.Len(firstPage, 2)
	suite.Equal(pagination.EncodeToken(pagination.Cursor{Date: "2024-03-15", EntryID: "E2"}), first.NextToken)

	w = suite.get("/api/v1/journal-entries?limit=2&nextToken=" + first.NextToken)
	suite.Require().Equal(http.StatusOK, w.Code)
	var second envelope
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &second))
	var secondPage []domain.EntrySummary
	suite.Require().NoError(json.Unmarshal(second.Report, &secondPage))
	suite.Require().Len(secondPage, 1)
	suite.Equal("E1", secondPage[0].EntryID)
	suite.Empty(second.NextToken)
}

func (suite *ReportingHandlerTestSuite) TestJournalEntries_InvalidToken() {
	w := suite.get("/api/v1/journal-entries?nextToken=%21%21")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockReporting.AssertNotCalled(suite.T(), "ListEntries", mock.Anything, mock.Anything)
}

func (suite *ReportingHandlerTestSuite) TestInvalidQueryParams() {
	urls := []string{
		"/api/v1/reports/balance-sheet?endDate=2024-13-01",
		"/api/v1/reports/balance-sheet?startDate=03/01/2024",
		"/api/v1/reports/balance-sheet?startDate=2024-03-02&endDate=2024-03-01",
		"/api/v1/reports/balance-sheet?format=xlsx",
		"/api/v1/reports/balance-sheet?business=" + strings.Repeat("x", 65),
		"/api/v1/journal-entries?limit=501",
	}
	for _, url := range urls {
		w := suite.get(url)
		suite.Equal(http.StatusBadRequest, w.Code, url)
	}
	suite.mockReporting.AssertNotCalled(suite.T(), "BalanceSheet", mock.Anything, mock.Anything)
}

func (suite *ReportingHandlerTestSuite) TestFetchFailure_MapsToBadGateway() {
	fetchErr := apperrors.NewFetchError("journal entries", errors.New("connection refused"))
	suite.mockReporting.On("BalanceSheet", mock.Anything, mock.Anything).Return(nil, period.Range{}, fetchErr).Once()

	w := suite.get("/api/v1/reports/balance-sheet")

	suite.Equal(http.StatusBadGateway, w.Code)
	suite.NotContains(w.Body.String(), "connection refused")
}

func (suite *ReportingHandlerTestSuite) TestUnexpectedFailure_MapsToInternalError() {
	suite.mockReporting.On("GeneralLedger", mock.Anything, mock.Anything).Return(nil, period.Range{}, errors.New("boom")).Once()

	w := suite.get("/api/v1/reports/general-ledger")

	suite.Equal(http.StatusInternalServerError, w.Code)
	var body map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("Failed to generate general ledger", body["error"])
}

// --- Run Test Suite ---
func TestReportingHandler(t *testing.T) {
	suite.Run(t, new(ReportingHandlerTestSuite))
}
