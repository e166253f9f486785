package failure

import (
	"errors"
	"net/http"
)

// Failure carries an HTTP status code alongside the message shown to clients.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var (
	TimezoneNotSet  = &Failure{Code: http.StatusNotFound, Message: "timezone not set"}
	InvalidInstant  = &Failure{Code: http.StatusBadRequest, Message: "at must be an RFC3339 timestamp"}
	MissingIdentity = &Failure{Code: http.StatusBadRequest, Message: "identity id is required"}
	InvalidIdentity = &Failure{Code: http.StatusBadRequest, Message: "identity id must be valid UTF-8"}
)

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

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// Unprocessable marks a well-formed request whose stored data cannot be rendered.
func Unprocessable(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
		}
	}

	return nil
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

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}
