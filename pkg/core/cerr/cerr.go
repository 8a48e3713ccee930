// Package cerr provides error types which carry their desired HTTP
// status code, so the use cases layer can classify failures without
// depending on the web framework and the resources layer can map
// them onto responses uniformly.
package cerr

import (
	"fmt"
	"net/http"
)

// Error wraps an underlying error together with the HTTP status code
// which should be reported for it.
type Error struct {
	Err            error
	HTTPStatusCode int
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%d] %s", e.HTTPStatusCode, e.Err.Error())
}

func BadRequest(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusBadRequest}
}

func Authentication(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusUnauthorized}
}

func Authorization(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusForbidden}
}

func NotFound(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusNotFound}
}

func Conflict(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusConflict}
}

func TooManyRequests(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusTooManyRequests}
}
