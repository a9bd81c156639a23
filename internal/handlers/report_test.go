package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/skosovan/data-analyzer/internal/repositories"
	"github.com/skosovan/data-analyzer/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("success returns pdf attachment", func(t *testing.T) {
		mockSvc := NewMockReportBuilder(ctrl)
		specs := []services.ChartSpec{{Kind: "bar", XColumn: "region"}}
		mockSvc.EXPECT().
			Build(gomock.Any(), "ds-1", specs, "A short summary.").
			Return([]byte("%PDF-1.7 fake"), nil)

		handler := NewReportHandler(mockSvc)

		raw, err := json.Marshal(ReportRequest{Charts: specs, Summary: "A short summary."})
		require.NoError(t, err)
		req := withChiParam(httptest.NewRequest(http.MethodPost, "/datasets/ds-1/report", bytes.NewReader(raw)), "id", "ds-1")
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "application/pdf", rr.Header().Get("Content-Type"))
		assert.Contains(t, rr.Header().Get("Content-Disposition"), "report.pdf")
		assert.True(t, bytes.HasPrefix(rr.Body.Bytes(), []byte("%PDF")))
	})

	t.Run("dataset not found", func(t *testing.T) {
		mockSvc := NewMockReportBuilder(ctrl)
		mockSvc.EXPECT().
			Build(gomock.Any(), "gone", gomock.Nil(), "").
			Return(nil, repositories.ErrDatasetNotFound)

		handler := NewReportHandler(mockSvc)
		req := withChiParam(httptest.NewRequest(http.MethodPost, "/datasets/gone/report", bytes.NewBufferString("{}")), "id", "gone")
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("invalid json", func(t *testing.T) {
		handler := NewReportHandler(NewMockReportBuilder(ctrl))
		req := withChiParam(httptest.NewRequest(http.MethodPost, "/datasets/ds-1/report", bytes.NewBufferString("{broken")), "id", "ds-1")
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
