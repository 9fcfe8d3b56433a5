package httpresult

import "errors"

var (
	ErrNilResponse = errors.New("httpresult: nil response")
	ErrNilHandler  = errors.New("httpresult: nil handler")
)

// ErrBodyTooLarge is the cause reported when a body exceeds the configured limit.
var ErrBodyTooLarge = errors.New("response body too large")

// Failure messages produced while negotiating the content type.
const (
	msgMissingContentType = "missing content type"
	msgInvalidContentType = "invalid content type"
	msgUnsupportedCharset = "unsupported charset"
	msgTypeMismatch       = "content type mismatch"
	msgUnsupportedType    = "unsupported content type"
	msgReadBody           = "failed to read response body"
	msgBadRequest         = "Bad Request"
)
