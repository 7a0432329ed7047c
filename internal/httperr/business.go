package httperr

import "errors"

// Kind classifies a BusinessError for the HTTP layer.
type Kind string

const (
	KindValidation  Kind = "validation"
	KindAuth        Kind = "auth"
	KindForbidden   Kind = "forbidden"
	KindNotFound    Kind = "not_found"
	KindConflict    Kind = "conflict"
	KindRateLimited Kind = "rate_limited"
	KindUnavailable Kind = "unavailable"
)

// BusinessError is comparable, so package-level sentinels work with errors.Is.
type BusinessError struct {
	Kind    Kind
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Kind: KindValidation, Code: code}
}

func New(kind Kind, code, message string) error {
	return BusinessError{Kind: kind, Code: code, Message: message}
}

func Validation(code, message string) error   { return New(KindValidation, code, message) }
func Unauthorized(code, message string) error { return New(KindAuth, code, message) }
func Forbidden(code, message string) error    { return New(KindForbidden, code, message) }
func NotFound(code, message string) error     { return New(KindNotFound, code, message) }
func Conflict(code, message string) error     { return New(KindConflict, code, message) }
func Unavailable(code, message string) error  { return New(KindUnavailable, code, message) }

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func IsKind(err error, kind Kind) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind == kind
	}
	return false
}
