package status

import "errors"

// ErrShutdown reports that a listener was closed by an explicit stop rather
// than a failure.
var ErrShutdown = errors.New("graceful shutdown")

// HTTPError carries a status code alongside the message, so the pipeline can
// tell a malformed request apart from an internal failure without string
// matching.
type HTTPError struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return HTTPError{
		Code:    code,
		Message: message,
	}
}

func (h HTTPError) Error() string {
	return h.Message
}

var (
	ErrBadRequest      = NewError(BadRequest, "bad request")
	ErrBadRequestLine  = NewError(BadRequest, "malformed request line")
	ErrUnknownMethod   = NewError(NotImplemented, "request method is not recognized")
	ErrUnknownProtocol = NewError(HTTPVersionNotSupported, "protocol is not recognized")
	ErrNonASCII        = NewError(BadRequest, "request contains non-ascii bytes")

	ErrInternalServerError = NewError(InternalServerError, "internal server error")
)
