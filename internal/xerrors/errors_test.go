package xerrors

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	go_json "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"

	"github.com/dbpibus/dbpibus/internal/settings"
)

func TestWriteError(t *testing.T) {
	t.Parallel()

	cause := errors.New("disk full")

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   errorResponse
	}{
		{
			name:       "plain error becomes 500",
			err:        cause,
			wantStatus: http.StatusInternalServerError,
			wantBody:   errorResponse{Message: "internal server error"},
		},
		{
			name:       "unknown setting",
			err:        UnknownSetting("Volume"),
			wantStatus: http.StatusNotFound,
			wantBody:   errorResponse{Message: `unknown setting "Volume"`},
		},
		{
			name:       "invalid fields",
			err:        Invalid(map[string]string{"value": "required"}),
			wantStatus: http.StatusUnprocessableEntity,
			wantBody: errorResponse{
				Message: "unprocessable entity",
				Fields:  map[string]string{"value": "required"},
			},
		},
		{
			name:       "wrapped error keeps status",
			err:        fmt.Errorf("decode: %w", Wrap(http.StatusBadRequest, "invalid JSON body", cause)),
			wantStatus: http.StatusBadRequest,
			wantBody:   errorResponse{Message: "invalid JSON body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			WriteError(t.Context(), rec, tt.err)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			var got errorResponse
			if err := go_json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if diff := cmp.Diff(tt.wantBody, got); diff != "" {
				t.Errorf("body mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSetting(t *testing.T) {
	t.Parallel()

	storeErr := errors.New("read-only fs")

	tests := []struct {
		name       string
		key        settings.Key
		err        error
		wantStatus int
		wantFields map[string]string
	}{
		{
			name:       "unknown key",
			key:        "Volume",
			err:        fmt.Errorf("%w: Volume", settings.ErrUnknownKey),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "value not an option",
			key:        settings.TimeFormat,
			err:        &settings.InvalidValueError{Key: settings.TimeFormat, Value: "36Hour"},
			wantStatus: http.StatusUnprocessableEntity,
			wantFields: map[string]string{"value": "must be one of 12Hour|24Hour"},
		},
		{
			name:       "store failed",
			key:        settings.TimeFormat,
			err:        fmt.Errorf("save settings: %w", storeErr),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Setting(tt.key, tt.err)
			if got.Status != tt.wantStatus {
				t.Errorf("status = %d, want %d", got.Status, tt.wantStatus)
			}
			if diff := cmp.Diff(tt.wantFields, got.Fields); diff != "" {
				t.Errorf("fields mismatch (-want +got):\n%s", diff)
			}
			if !errors.Is(got, tt.err) && !errors.Is(got, settings.ErrUnknownKey) {
				t.Errorf("cause %v lost", tt.err)
			}
		})
	}

	if Setting(settings.TimeFormat, nil) != nil {
		t.Error("Setting(nil) should be nil")
	}
}

func TestErrorUnwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	err := Wrap(http.StatusInternalServerError, "", cause)
	if !errors.Is(err, cause) {
		t.Error("errors.Is should see the cause")
	}
	if got, want := err.Error(), "internal server error: boom"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
