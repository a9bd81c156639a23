package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/skosovan/data-analyzer/internal/repositories"
	"github.com/skosovan/data-analyzer/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestDeleteUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deleteReq := func(username string) *http.Request {
		req := httptest.NewRequest(http.MethodDelete, "/admin/users/"+username, nil)
		return withChiParam(req, "username", username)
	}

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockUserDeleter(ctrl)
		mockSvc.EXPECT().Delete(gomock.Any(), "alice").Return(true, nil)

		handler := NewDeleteUserHandler(mockSvc)
		rr := httptest.NewRecorder()
		handler(rr, deleteReq("alice"))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("admin account refused before the service", func(t *testing.T) {
		handler := NewDeleteUserHandler(NewMockUserDeleter(ctrl))
		rr := httptest.NewRecorder()
		handler(rr, deleteReq(services.AdminUsername))

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("no such user", func(t *testing.T) {
		mockSvc := NewMockUserDeleter(ctrl)
		mockSvc.EXPECT().Delete(gomock.Any(), "nobody").Return(false, nil)

		handler := NewDeleteUserHandler(mockSvc)
		rr := httptest.NewRecorder()
		handler(rr, deleteReq("nobody"))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("store unavailable", func(t *testing.T) {
		mockSvc := NewMockUserDeleter(ctrl)
		mockSvc.EXPECT().
			Delete(gomock.Any(), "alice").
			Return(false, fmt.Errorf("%w: timeout", repositories.ErrStoreUnavailable))

		handler := NewDeleteUserHandler(mockSvc)
		rr := httptest.NewRecorder()
		handler(rr, deleteReq("alice"))

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	})
}
