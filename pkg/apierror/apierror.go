// Package apierror defines the error values every layer of the API returns.
// Each error carries a kind; the response boundary matches on the kind to pick
// an HTTP status, so no other layer writes status codes of its own.
package apierror

import (
	"fmt"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindBadRequest
	KindUnauthorized
	KindNotFound
	KindConflict
	KindUnprocessable
)

func (k Kind) HTTPStatus() int {
	switch k {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUnprocessable:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

type Error struct {
	Kind    Kind
	Message string
	// Fields maps input field names to reasons; set only on KindUnprocessable.
	Fields map[string]string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if len(e.Fields) > 0 {
		return fmt.Sprintf("%s: %v", e.Message, e.Fields)
	}
	return e.Message
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Unprocessable(fields map[string]string) *Error {
	return &Error{
		Kind:    KindUnprocessable,
		Message: "The server cannot process the request.",
		Fields:  fields,
	}
}
