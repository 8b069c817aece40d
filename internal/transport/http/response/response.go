// Package response writes JSON bodies and maps domain errors to HTTP statuses.
package response

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	apiv1 "github.com/you-humble/fieldservice/internal/api/v1"
	"github.com/you-humble/fieldservice/internal/model"
	"github.com/you-humble/fieldservice/platform/logger"
)

const maxBodyBytes = 1 << 20

func JSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error(ctx, "encode response", logger.ErrorF(err))
	}
}

// Decode reads a JSON body into dst. Unknown fields are rejected.
func Decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return model.NewValidationError("body", err.Error())
	}
	return nil
}

func Error(ctx context.Context, w http.ResponseWriter, err error) {
	body := ErrorBody(err)
	if body.Code >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", logger.Int("status", body.Code), logger.ErrorF(err))
	}
	JSON(ctx, w, body.Code, body)
}

// ErrorBody maps err onto a status and body. Unknown errors hide their text.
func ErrorBody(err error) *apiv1.Error {
	var vErr *model.ValidationError
	switch {
	case errors.As(err, &vErr):
		return &apiv1.Error{ // 400
			Code:     http.StatusBadRequest,
			Message:  vErr.Message,
			Field:    vErr.Field,
			Redirect: string(vErr.Redirect),
		}
	case errors.Is(err, model.ErrValidation):
		return &apiv1.Error{Code: http.StatusBadRequest, Message: err.Error()} // 400
	case errors.Is(err, model.ErrNotFound):
		return &apiv1.Error{Code: http.StatusNotFound, Message: err.Error()} // 404
	case errors.Is(err, model.ErrConflict):
		return &apiv1.Error{Code: http.StatusConflict, Message: err.Error()} // 409
	case errors.Is(err, model.ErrPrecondition):
		return &apiv1.Error{Code: http.StatusPreconditionFailed, Message: err.Error()} // 412
	case errors.Is(err, model.ErrBadGateway):
		return &apiv1.Error{Code: http.StatusBadGateway, Message: "suggestion provider unavailable"} // 502
	case errors.Is(err, model.ErrAdapter):
		return &apiv1.Error{ // 503
			Code:      http.StatusServiceUnavailable,
			Message:   "storage unavailable, retry later",
			Retryable: true,
		}
	default:
		return &apiv1.Error{Code: http.StatusInternalServerError, Message: "internal error"} // 500
	}
}
