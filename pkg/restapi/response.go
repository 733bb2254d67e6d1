package restapi

import (
	"encoding/json"
	"net/http"

	"hr-platform/internal/hr"

	"github.com/pkg/errors"
	zlog "github.com/rs/zerolog/log"
)

type Response struct {
	Result interface{}    `json:"result,omitempty"`
	Error  *ErrorResponse `json:"error,omitempty"`
}

type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

func writeError(w http.ResponseWriter, msg string, code int) {
	if code < 600 { // nolint
		w.WriteHeader(code)
	} else {
		w.WriteHeader(http.StatusInternalServerError)
	}

	writeResponse(w, &Response{
		Error: &ErrorResponse{
			Message: msg,
			Code:    code,
		},
	})
}

func writeResult(w http.ResponseWriter, result interface{}) {
	writeResponse(w, &Response{
		Result: result,
	})
}

func writeCreated(w http.ResponseWriter, result interface{}) {
	w.WriteHeader(http.StatusCreated)
	writeResponse(w, &Response{
		Result: result,
	})
}

func writeNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func writeResponse(w http.ResponseWriter, resp *Response) {
	err := json.NewEncoder(w).Encode(resp)
	if err != nil {
		zlog.Error().Err(err).Interface("response", resp).Msg("response encoding failed")
	}
}

// writeServiceError maps domain errors to status codes. Anything unexpected
// is logged and hidden behind a generic 500.
func writeServiceError(w http.ResponseWriter, err error) {
	var insufficient *hr.InsufficientBalanceError
	var validation *hr.ValidationError

	switch {
	case errors.Is(err, hr.ErrEmployeeNotFound),
		errors.Is(err, hr.ErrLeaveRequestNotFound):
		writeError(w, err.Error(), http.StatusNotFound)

	case errors.Is(err, hr.ErrEmptyLeavePeriod),
		errors.As(err, &insufficient),
		errors.As(err, &validation):
		writeError(w, err.Error(), http.StatusBadRequest)

	default:
		zlog.Error().Err(err).Msg("request handling failed")
		writeError(w, "internal error", http.StatusInternalServerError)
	}
}
