package dto_test

import (
	"testing"

	"github.com/SscSPs/mma_books/internal/apperrors"
	"github.com/SscSPs/mma_books/internal/core/domain"
	"github.com/SscSPs/mma_books/internal/dto"
	"github.com/SscSPs/mma_books/internal/utils/period"
	"github.com/stretchr/testify/assert"
)

func TestReportQueryParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		params  dto.ReportQueryParams
		wantErr bool
	}{
		{name: "no dates", params: dto.ReportQueryParams{}},
		{name: "start only", params: dto.ReportQueryParams{StartDate: "2024-03-01"}},
		{name: "same day", params: dto.ReportQueryParams{StartDate: "2024-03-01", EndDate: "2024-03-01"}},
		{name: "reversed", params: dto.ReportQueryParams{StartDate: "2024-03-02", EndDate: "2024-03-01"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReportQueryParams_ToReportQuery(t *testing.T) {
	params := dto.ReportQueryParams{
		Business:  " biz-1 ",
		Period:    "last-month",
		StartDate: "2024-01-01",
		Account:   "1000",
		Format:    "CSV",
	}

	assert.Equal(t, domain.ReportQuery{
		BusinessID:  "biz-1",
		Period:      "last-month",
		StartDate:   "2024-01-01",
		AccountCode: "1000",
	}, params.ToReportQuery())
	assert.True(t, params.WantsCSV())
}

func TestNewReportResponse(t *testing.T) {
	resp := dto.NewReportResponse(
		domain.ReportQuery{BusinessID: "biz-1", Period: "current-month"},
		period.Range{StartDate: "2024-03-01", EndDate: "2024-03-31"},
		"payload",
	)
	assert.Equal(t, "biz-1", resp.BusinessID)
	assert.Equal(t, "2024-03-01", resp.StartDate)
	assert.Equal(t, "2024-03-31", resp.EndDate)
	assert.Equal(t, "payload", resp.Report)
}
