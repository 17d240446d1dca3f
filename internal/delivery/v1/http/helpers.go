package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/DRSN-tech/pokeshop/pkg/e"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrInvalidProductID):
		return http.StatusBadRequest, e.ErrInvalidProductID.Error()
	case errors.Is(err, e.ErrUnknownCategory):
		return http.StatusBadRequest, e.ErrUnknownCategory.Error()
	case errors.Is(err, e.ErrUnknownViewMode):
		return http.StatusBadRequest, e.ErrUnknownViewMode.Error()
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, e.ErrStatusBadRequest.Error()
	case errors.Is(err, e.ErrProductNotFound):
		return http.StatusNotFound, e.ErrProductNotFound.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// parseProductID reads the {id} route parameter.
func parseProductID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, e.Wrap(whereami.WhereAmI(), e.ErrInvalidProductID)
	}

	return id, nil
}
