package httperr

import (
	"errors"
	"net/http"
)

// StatusOf maps an error to the HTTP status the API answers with.
// Anything that is not a BusinessError is an internal failure.
func StatusOf(err error) int {
	var be BusinessError
	if !errors.As(err, &be) {
		return http.StatusInternalServerError
	}

	switch be.Kind {
	case KindValidation, KindConflict:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindRateLimited:
		return http.StatusTooManyRequests
	case KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// CodeOf returns the machine readable code, "internal_error" for unknown errors.
func CodeOf(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return "internal_error"
}

// MessageOf returns the human readable message. Internal errors keep their
// raw text.
func MessageOf(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		if be.Message != "" {
			return be.Message
		}
		return be.Code
	}
	return err.Error()
}
