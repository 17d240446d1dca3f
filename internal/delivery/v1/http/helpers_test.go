package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DRSN-tech/pokeshop/pkg/e"
	"github.com/stretchr/testify/assert"
)

func TestToHTTPResponse(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"InvalidID", e.Wrap("parse", e.ErrInvalidProductID), http.StatusBadRequest, e.ErrInvalidProductID.Error()},
		{"UnknownCategory", e.Wrap("uc", e.ErrUnknownCategory), http.StatusBadRequest, e.ErrUnknownCategory.Error()},
		{"UnknownView", e.ErrUnknownViewMode, http.StatusBadRequest, e.ErrUnknownViewMode.Error()},
		{"BadRequest", e.ErrStatusBadRequest, http.StatusBadRequest, e.ErrStatusBadRequest.Error()},
		{"NotFound", e.Wrap("a", e.Wrap("b", e.ErrProductNotFound)), http.StatusNotFound, e.ErrProductNotFound.Error()},
		{"Other", errors.New("connection refused"), http.StatusInternalServerError, e.ErrInternalServerError.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, msg := ToHTTPResponse(tt.err)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestWriteErrorHidesInternals(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, errors.New("dial tcp 10.0.0.1:6379: refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"code":500,"message":"internal server error"}`, rec.Body.String())
}
