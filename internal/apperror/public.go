package apperror

import (
	"errors"
	"net/http"
)

const (
	CodeBadUserInput    = "BAD_USER_INPUT"
	CodeUnauthenticated = "UNAUTHENTICATED"
	CodeForbidden       = "FORBIDDEN"
	CodeNotFound        = "NOT_FOUND"
	CodeConflict        = "CONFLICT"
	CodeInternal        = "INTERNAL_SERVER_ERROR"

	MessageValidation = "Validation error occurred."
	MessageInternal   = "An internal server error occurred."
)

// PublicError is the shape returned to API callers. It satisfies graphql-go's
// gqlerrors.ExtendedError so the extensions end up in the response envelope.
type PublicError struct {
	Message string
	Code    string
	Status  int
	Issues  []Issue
}

func (e *PublicError) Error() string { return e.Message }

func (e *PublicError) Extensions() map[string]interface{} {
	ext := map[string]interface{}{
		"code":   e.Code,
		"status": e.Status,
	}
	if e.Issues != nil {
		ext["errors"] = e.Issues
	}
	return ext
}

// Public converts any error into its public form. Internal details never leave this function.
func Public(err error) *PublicError {
	var pe *PublicError
	if errors.As(err, &pe) {
		return pe
	}

	var ve *ValidationError
	if errors.As(err, &ve) {
		return &PublicError{
			Message: MessageValidation,
			Code:    CodeBadUserInput,
			Status:  http.StatusBadRequest,
			Issues:  ve.Issues,
		}
	}

	var ae *Error
	if errors.As(err, &ae) {
		switch ae.Kind {
		case KindAuth:
			return &PublicError{Message: ae.Message, Code: CodeUnauthenticated, Status: http.StatusUnauthorized}
		case KindForbidden:
			return &PublicError{Message: ae.Message, Code: CodeForbidden, Status: http.StatusForbidden}
		case KindNotFound:
			return &PublicError{Message: ae.Message, Code: CodeNotFound, Status: http.StatusNotFound}
		case KindConflict:
			return &PublicError{Message: ae.Message, Code: CodeConflict, Status: http.StatusConflict}
		}
	}

	return &PublicError{Message: MessageInternal, Code: CodeInternal, Status: http.StatusInternalServerError}
}
