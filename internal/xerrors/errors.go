// Package xerrors turns what the status server can go wrong with into HTTP
// responses: a status, a short message and, for rejected settings, which
// field was wrong and what would have been accepted.
package xerrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/dbpibus/dbpibus/internal/settings"
)

// Error is an error with a response attached. Cause is logged, never sent.
type Error struct {
	Status  int
	Message string
	// Fields names each bad request field and what it must be instead.
	Fields map[string]string
	Cause  error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Cause }

// New builds an Error whose message is the lower-cased status text unless
// msg is given.
func New(status int, msg string) *Error {
	if msg == "" {
		msg = strings.ToLower(http.StatusText(status))
	}
	return &Error{Status: status, Message: msg}
}

// Wrap is New with a cause for the log.
func Wrap(status int, msg string, cause error) *Error {
	e := New(status, msg)
	e.Cause = cause
	return e
}

// Invalid is a 422 listing the offending fields.
func Invalid(fields map[string]string) *Error {
	e := New(http.StatusUnprocessableEntity, "")
	e.Fields = fields
	return e
}

// UnknownSetting is the 404 for a key outside the settings table.
func UnknownSetting(key settings.Key) *Error {
	return Wrap(http.StatusNotFound, fmt.Sprintf("unknown setting %q", key), settings.ErrUnknownKey)
}

// SettingRejected is the 422 for a value that is not one of key's options.
func SettingRejected(def settings.Definition, cause error) *Error {
	e := Invalid(map[string]string{
		"value": "must be one of " + strings.Join(def.Options, "|"),
	})
	e.Cause = cause
	return e
}

// Setting maps an error from settings.Set onto a response. A store failure
// is a 500 that says the value is live but was not persisted.
func Setting(key settings.Key, err error) *Error {
	var invalid *settings.InvalidValueError
	switch {
	case err == nil:
		return nil
	case errors.Is(err, settings.ErrUnknownKey):
		return UnknownSetting(key)
	case errors.As(err, &invalid):
		def, _ := settings.Lookup(key)
		return SettingRejected(def, err)
	default:
		return Wrap(http.StatusInternalServerError, "setting applied but not saved", err)
	}
}

func As(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}
