package vst

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNoData is returned when the stats file holds no records.
var ErrNoData = errors.New("vst: stats file is empty")

type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("vst: GET %s: %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

func isNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == http.StatusNotFound
}
