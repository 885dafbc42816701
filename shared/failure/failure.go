package failure

import (
	"errors"
	"net/http"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var InvalidPageParam = &Failure{Code: http.StatusBadRequest, Message: "invalid page parameter"}
var InvalidLimitParam = &Failure{Code: http.StatusBadRequest, Message: "invalid limit parameter"}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// Validation is an alias of BadRequestFromString used by domain rules (empty reason, bad room number).
func Validation(msg string) error {
	return BadRequestFromString(msg)
}

// InvalidDateRange returns a new Failure for a stay whose check-out is not after its check-in.
func InvalidDateRange(msg string) error {
	return &Failure{
		Code:    http.StatusUnprocessableEntity,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// Unimplemented returns a new Failure with code for unimplemented method.
func Unimplemented(methodName string) error {
	return &Failure{
		Code:    http.StatusNotImplemented,
		Message: methodName,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// StateConflict reports a lifecycle transition attempted from a disallowed status.
func StateConflict(message string) error {
	return Conflict(message)
}

// Upstream wraps a failed call to the backing store. It is always safe to retry.
func Upstream(err error) error {
	if err == nil {
		return nil
	}

	return &upstreamFailure{
		Failure: Failure{Code: http.StatusBadGateway, Message: err.Error()},
		cause:   err,
	}
}

type upstreamFailure struct {
	Failure

	cause error
}

func (u *upstreamFailure) Unwrap() []error {
	return []error{&u.Failure, u.cause}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

func hasCode(err error, code int) bool {
	var fail *Failure

	return errors.As(err, &fail) && fail.Code == code
}

func IsValidation(err error) bool {
	return hasCode(err, http.StatusBadRequest)
}

func IsInvalidDateRange(err error) bool {
	return hasCode(err, http.StatusUnprocessableEntity)
}

func IsStateConflict(err error) bool {
	return hasCode(err, http.StatusConflict)
}

func IsNotFound(err error) bool {
	return hasCode(err, http.StatusNotFound)
}

func IsUpstream(err error) bool {
	return hasCode(err, http.StatusBadGateway)
}
