package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/skosovan/data-analyzer/internal/models"
	"github.com/skosovan/data-analyzer/internal/repositories"
	"github.com/skosovan/data-analyzer/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filterRequest(t *testing.T, id string, body FilterRequest) *http.Request {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/datasets/"+id+"/filter", bytes.NewReader(raw))
	return withChiParam(req, "id", id)
}

func TestFilterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockDatasetFilterer(ctrl)
		mockSvc.EXPECT().
			Filter(gomock.Any(), "ds-1", "region", "eq", "north").
			Return(&models.Dataset{
				ID:      "ds-2",
				Columns: []string{"region", "revenue"},
				Rows:    [][]string{{"north", "120.5"}},
			}, nil)

		handler := NewFilterHandler(mockSvc)
		req := filterRequest(t, "ds-1", FilterRequest{Column: "region", Op: "eq", Value: "north"})
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp FilterResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "ds-2", resp.ID)
		assert.Equal(t, 1, resp.RowCount)
	})

	t.Run("unknown column", func(t *testing.T) {
		mockSvc := NewMockDatasetFilterer(ctrl)
		mockSvc.EXPECT().
			Filter(gomock.Any(), "ds-1", "nope", "eq", "x").
			Return(nil, fmt.Errorf("%w: nope", services.ErrUnknownColumn))

		handler := NewFilterHandler(mockSvc)
		req := filterRequest(t, "ds-1", FilterRequest{Column: "nope", Op: "eq", Value: "x"})
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("unsupported operator", func(t *testing.T) {
		mockSvc := NewMockDatasetFilterer(ctrl)
		mockSvc.EXPECT().
			Filter(gomock.Any(), "ds-1", "region", "between", "x").
			Return(nil, fmt.Errorf("%w: between", services.ErrBadFilter))

		handler := NewFilterHandler(mockSvc)
		req := filterRequest(t, "ds-1", FilterRequest{Column: "region", Op: "between", Value: "x"})
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("dataset not found", func(t *testing.T) {
		mockSvc := NewMockDatasetFilterer(ctrl)
		mockSvc.EXPECT().
			Filter(gomock.Any(), "gone", "region", "eq", "north").
			Return(nil, repositories.ErrDatasetNotFound)

		handler := NewFilterHandler(mockSvc)
		req := filterRequest(t, "gone", FilterRequest{Column: "region", Op: "eq", Value: "north"})
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("invalid json", func(t *testing.T) {
		handler := NewFilterHandler(NewMockDatasetFilterer(ctrl))
		req := withChiParam(httptest.NewRequest(http.MethodPost, "/datasets/ds-1/filter", bytes.NewBufferString("{broken")), "id", "ds-1")
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
