// Package httperr carries an HTTP status alongside an error message so any
// stage of the request pipeline can signal a failure that the terminal error
// handler turns into a JSON response.
package httperr

import (
	"errors"
	"net/http"
)

// Error is an error with an HTTP status code
type Error struct {
	Status  int    `json:"-"`
	Message string `json:"error"`
}

// New creates an Error. Any status and message are accepted as given.
func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

func (e *Error) Error() string {
	return e.Message
}

// StatusOf returns the HTTP status carried by err, or 500 when err does not
// carry one.
func StatusOf(err error) int {
	var he *Error
	if errors.As(err, &he) && he.Status != 0 {
		return he.Status
	}
	return http.StatusInternalServerError
}

// MessageOf returns the client-facing message for err
func MessageOf(err error) string {
	var he *Error
	if errors.As(err, &he) {
		return he.Message
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
