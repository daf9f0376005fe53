package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domainerrors "github.com/listenupapp/luckysign/internal/errors"
	"github.com/listenupapp/luckysign/internal/logger"
)

// APIError implements huma.StatusError so domain errors keep their code
// and details on the wire.
type APIError struct { //nolint:revive // API prefix is intentional for clarity
	status  int
	Code    string `json:"code" doc:"Machine-readable error code"`
	Message string `json:"message" doc:"Human-readable error message"`
	Details any    `json:"details,omitempty" doc:"Additional error details"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// GetStatus implements huma.StatusError.
func (e *APIError) GetStatus() int {
	return e.status
}

// ContentType returns the content type for the error response.
func (e *APIError) ContentType(_ string) string {
	return "application/json"
}

// RegisterErrorHandler makes huma build every error through domain codes.
// Call this after creating the huma.API but before registering routes.
func RegisterErrorHandler() {
	huma.NewError = func(status int, message string, errs ...error) huma.StatusError {
		var details []string
		for _, err := range errs {
			if err == nil {
				continue
			}
			var domainErr *domainerrors.Error
			if errors.As(err, &domainErr) {
				return fromDomain(domainErr)
			}
			details = append(details, err.Error())
		}

		apiErr := &APIError{
			status:  status,
			Code:    statusToCode(status),
			Message: message,
		}
		if len(details) > 0 {
			apiErr.Details = details
		}
		return apiErr
	}
}

func fromDomain(err *domainerrors.Error) *APIError {
	status := err.HTTPStatus()
	msg := err.Message
	if status >= http.StatusInternalServerError {
		// Internal causes stay in the logs.
		msg = "internal server error"
	}
	return &APIError{
		status:  status,
		Code:    string(err.Code),
		Message: msg,
		Details: err.Details,
	}
}

// toHumaError converts a service error into the error a handler returns.
// Unknown errors become a logged 500.
func toHumaError(log *logger.Logger, err error) error {
	var domainErr *domainerrors.Error
	if errors.As(err, &domainErr) {
		if domainErr.HTTPStatus() >= http.StatusInternalServerError {
			log.Error("request failed", "error", err)
		}
		return fromDomain(domainErr)
	}
	log.Error("unhandled error", "error", err)
	return huma.Error500InternalServerError("internal server error")
}

// statusToCode maps HTTP status codes to domain error codes.
func statusToCode(status int) string {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return string(domainerrors.CodeValidation)
	case http.StatusNotFound:
		return string(domainerrors.CodeNotFound)
	case http.StatusTooManyRequests:
		return string(domainerrors.CodeRateLimited)
	default:
		return string(domainerrors.CodeInternal)
	}
}

// writeError writes an error envelope from plain net/http middleware.
func writeError(w http.ResponseWriter, err *domainerrors.Error) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(err.HTTPStatus())
	_ = json.NewEncoder(w).Encode(errorEnvelope(fromDomain(err)))
}
