package errs

import "net/http"

// Stable error codes for the repository-level taxonomy. HTTP-status-derived
// codes (NOT_FOUND, UNAUTHORIZED, ...) come from MakeUpperCaseWithUnderscores.
const (
	CodeInvalidInput    = "INVALID_INPUT"
	CodeConversionError = "CONVERSION_ERROR"
	CodeCreateFailed    = "CREATE_FAILED"
	CodeAccessDenied    = "ACCESS_DENIED"
)

// Sentinel values for errors.Is checks. Matching is by Code, so these carry
// no message of their own.
var (
	ErrNotFound        = &HTTPError{Code: MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound)), Status: http.StatusNotFound}
	ErrInvalidInput    = &HTTPError{Code: CodeInvalidInput, Status: http.StatusBadRequest}
	ErrConversionError = &HTTPError{Code: CodeConversionError, Status: http.StatusBadRequest}
	ErrCreateFailed    = &HTTPError{Code: CodeCreateFailed, Status: http.StatusBadRequest}
	ErrAccessDenied    = &HTTPError{Code: CodeAccessDenied, Status: http.StatusForbidden}
)

// NewUnauthorizedError creates a 401 Unauthorized HTTPError.
func NewUnauthorizedError(message string, override bool) *HTTPError {
	return &HTTPError{
		Code:     MakeUpperCaseWithUnderscores(http.StatusText(http.StatusUnauthorized)),
		Message:  message,
		Status:   http.StatusUnauthorized,
		Override: override,
	}
}

// NewForbiddenError creates a 403 Forbidden HTTPError.
func NewForbiddenError(message string, override bool) *HTTPError {
	return &HTTPError{
		Code:     MakeUpperCaseWithUnderscores(http.StatusText(http.StatusForbidden)),
		Message:  message,
		Status:   http.StatusForbidden,
		Override: override,
	}
}

// NewAccessDeniedError creates a 403 for ownership violations: the caller is
// authenticated but is neither the resource owner nor a staff role.
func NewAccessDeniedError(message string) *HTTPError {
	return &HTTPError{
		Code:     CodeAccessDenied,
		Message:  message,
		Status:   http.StatusForbidden,
		Override: true,
	}
}

// NewBadRequestError creates a 400 Bad Request HTTPError. code overrides the
// default "BAD_REQUEST"; errors carries field-level validation problems;
// action is an optional client instruction.
func NewBadRequestError(message string, override bool, code *string, errors []FieldError, action *Action) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest))
	if code != nil {
		formattedCode = *code
	}
	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusBadRequest,
		Override: override,
		Errors:   errors,
		Action:   action,
	}
}

// NewInvalidInputError creates a 400 with the INVALID_INPUT code, used for
// empty or malformed change-sets and filters.
func NewInvalidInputError(message string) *HTTPError {
	return &HTTPError{
		Code:     CodeInvalidInput,
		Message:  message,
		Status:   http.StatusBadRequest,
		Override: true,
	}
}

// NewConversionError creates a 400 with the CONVERSION_ERROR code. It signals
// a returned row that cannot be mapped to its entity representation, which
// usually means the schema and the code disagree about an enum.
func NewConversionError(message string) *HTTPError {
	return &HTTPError{
		Code:     CodeConversionError,
		Message:  message,
		Status:   http.StatusBadRequest,
		Override: false,
	}
}

// NewCreateFailedError creates a 400 with the CREATE_FAILED code, used when
// an insert violates a constraint and returns no row.
func NewCreateFailedError(message string) *HTTPError {
	return &HTTPError{
		Code:     CodeCreateFailed,
		Message:  message,
		Status:   http.StatusBadRequest,
		Override: true,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError. code overrides the
// default "NOT_FOUND".
func NewNotFoundError(message string, override bool, code *string) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound))
	if code != nil {
		formattedCode = *code
	}
	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusNotFound,
		Override: override,
	}
}

// NewTooManyRequestsError creates a 429 Too Many Requests HTTPError.
func NewTooManyRequestsError(message string, override bool) *HTTPError {
	return &HTTPError{
		Code:     MakeUpperCaseWithUnderscores(http.StatusText(http.StatusTooManyRequests)),
		Message:  message,
		Status:   http.StatusTooManyRequests,
		Override: override,
	}
}

// NewInternalServerError creates a generic 500. The message is the status
// text, never the underlying error.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:     MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Message:  http.StatusText(http.StatusInternalServerError),
		Status:   http.StatusInternalServerError,
		Override: false,
	}
}

// ValidationError converts a validation failure into a 400 Bad Request.
func ValidationError(err error) *HTTPError {
	return NewBadRequestError("Validation failed: "+err.Error(), false, nil, nil, nil)
}
