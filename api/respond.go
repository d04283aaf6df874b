package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ajaiswal/portfolio-backend/errs"
	"github.com/ajaiswal/portfolio-backend/models"
	"github.com/rs/zerolog"
)

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

// WriteJSON writes payload with the given status code.
func (r Responder) WriteJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	jsonData, err := json.Marshal(payload)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(statusCode)
	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// WriteError converts err into the structured error envelope. Expected
// errors (*errs.ApiErr) keep their status code and human message; anything
// else is logged in full and surfaces as a generic internal error so no
// store or transport detail leaks to the caller.
func (r Responder) WriteError(w http.ResponseWriter, err error) {
	var apiErr *errs.ApiErr

	if !errors.As(err, &apiErr) {
		r.logger.Error().Msg(err.Error())
		r.WriteJSON(w, http.StatusInternalServerError, Response{
			Error:   "Internal Server Error",
			Message: "An unexpected error occurred",
		})
		return
	}

	if apiErr.Cause != nil || apiErr.StatusCode >= http.StatusInternalServerError {
		r.logger.Error().Msg(apiErr.GetFullError())
	}

	response := Response{
		Error:   apiErr.Code(),
		Message: apiErr.Message,
	}
	if apiErr.Field != "" {
		response.Details = []models.FieldError{{Field: apiErr.Field, Message: apiErr.Message}}
	}

	r.WriteJSON(w, apiErr.StatusCode, response)
}

// WriteValidationFailed enumerates every failing field in one response.
func (r Responder) WriteValidationFailed(w http.ResponseWriter, details []models.FieldError) {
	r.WriteJSON(w, http.StatusBadRequest, Response{
		Error:   "Validation failed",
		Message: "One or more fields failed validation",
		Details: details,
	})
}

// wrapDatabaseError wraps a store error with context information
func wrapDatabaseError(operation, entity string, cause error) error {
	return errs.NewDatabaseError(operation, entity, cause)
}
