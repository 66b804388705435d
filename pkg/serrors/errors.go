package serrors

import "fmt"

// Base is a coded error. Code identifies the failure class, Field names the
// offending input field when there is one.
type Base struct {
	Code    string
	Message string
	Field   string
}

func NewError(code, message, field string) *Base {
	return &Base{Code: code, Message: message, Field: field}
}

func (e *Base) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s (field: %s)", e.Code, e.Message, e.Field)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// WithField returns a copy of the error bound to a concrete field, so that
// package-level sentinels stay immutable.
func (e *Base) WithField(field string) *Base {
	return &Base{Code: e.Code, Message: e.Message, Field: field}
}

// Is matches by code, which lets errors.Is recognize a WithField copy as its
// sentinel.
func (e *Base) Is(target error) bool {
	t, ok := target.(*Base)
	if !ok {
		return false
	}
	return e.Code == t.Code
}
