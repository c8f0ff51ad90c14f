package xslog

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/dbpibus/dbpibus/internal/xcontext"
	"github.com/dbpibus/dbpibus/internal/xhttp"
)

const (
	groupRequest  = "request"
	groupResponse = "response"
	groupError    = "error"
	groupLCD      = "lcd"
)

const (
	keyID         = "id"
	keyMethod     = "method"
	keyIP         = "ip"
	keyUserAgent  = "user_agent"
	keyQuery      = "query"
	keyStatusText = "status_text"
	keyDurationMS = "duration_ms"
	keyType       = "type"
	keyValue      = "value"
	keyLine1      = "line1"
	keyLine2      = "line2"
)

func RequestID(requestID string) slog.Attr {
	const requestIDKey = "request_id"
	return slog.String(requestIDKey, requestID)
}

func RequestGroup(r *http.Request) slog.Attr {
	attrs := []slog.Attr{
		slog.String(keyMethod, r.Method),
		Path(r.URL.Path),
		slog.String(keyIP, xhttp.GetRequestIP(r)),
		slog.String(keyUserAgent, r.UserAgent()),
	}
	if id, ok := xcontext.GetRequestID(r.Context()); ok {
		attrs = append(attrs, slog.String(keyID, id))
	}
	if r.URL.RawQuery != "" {
		attrs = append(attrs, slog.String(keyQuery, r.URL.RawQuery))
	}
	return slog.GroupAttrs(groupRequest, attrs...)
}

func ResponseGroup(status int, duration time.Duration) slog.Attr {
	return slog.Group(groupResponse,
		HTTPStatus(status),
		slog.String(keyStatusText, http.StatusText(status)),
		Duration(duration),
		slog.Int64(keyDurationMS, duration.Milliseconds()),
	)
}

func ErrorGroupWithStack(err any) slog.Attr {
	return slog.Group(groupError,
		slog.Any(keyValue, err),
		slog.String(keyType, fmt.Sprintf("%T", err)),
		Stack(),
	)
}

// LCD is both lines exactly as sent to the display.
func LCD(line1, line2 string) slog.Attr {
	return slog.Group(groupLCD,
		slog.String(keyLine1, line1),
		slog.String(keyLine2, line2),
	)
}
