// Package serr holds the error objects shared across the compile-service
// HTTP layer. Each supports errors.Is against any of its causes.
package serr

import "errors"

var (
	ErrBadCredentials = errors.New("the supplied username/password combination is incorrect")
	ErrNotFound       = errors.New("the requested entity could not be found")
	ErrDB             = errors.New("an error occurred with the database")
	ErrBadArgument    = errors.New("one or more of the arguments is invalid")
	ErrBodyUnmarshal  = errors.New("malformed data in request")
)

// Error is a typed error carrying a message and one or more causes,
// compatible with errors.Is against any of its causes.
type Error struct {
	msg   string
	cause []error
}

func (e Error) Error() string {
	if e.msg == "" && e.cause != nil {
		return e.cause[0].Error()
	}
	if e.cause != nil {
		return e.msg + ": " + e.cause[0].Error()
	}
	return e.msg
}

func (e Error) Unwrap() []error {
	if len(e.cause) > 0 {
		return e.cause
	}
	return nil
}

// New creates an Error with the given message and causes. If msg is "",
// Error() falls back to the first cause's message.
func New(msg string, causes ...error) Error {
	return Error{msg: msg, cause: causes}
}

// WrapDB wraps err as a cause alongside ErrDB, for storage-layer failures.
func WrapDB(msg string, err error) Error {
	return Error{msg: msg, cause: []error{err, ErrDB}}
}
