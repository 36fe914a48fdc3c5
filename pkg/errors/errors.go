// transactions-check/pkg/errors/errors.go
package errors

import (
	"errors"
	"fmt"
)

// Error codes used to route failures in the runner. CONFIG is the only
// fatal one; TRANSPORT and PARSE are reported per customer and the run
// continues.
const (
	CodeConfig    = "CONFIG"
	CodeTransport = "TRANSPORT"
	CodeParse     = "PARSE"
)

type E struct {
	Code    string
	Message string
	Err     error
}

func (e E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e E) Unwrap() error { return e.Err }

func Wrap(code, msg string, err error) error {
	return E{Code: code, Message: msg, Err: err}
}

func Wrapf(code string, err error, format string, args ...any) error {
	return E{Code: code, Message: fmt.Sprintf(format, args...), Err: err}
}

// HasCode reports whether any error in the chain carries the given code.
func HasCode(err error, code string) bool {
	var e E
	return errors.As(err, &e) && e.Code == code
}

// Code returns the code of the outermost E in the chain, or "" for plain
// errors.
func Code(err error) string {
	var e E
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
