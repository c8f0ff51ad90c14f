package xslog

import (
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/dbpibus/dbpibus/internal/version"
)

const (
	keyError = "error"
)

func Error(err error) slog.Attr {
	return slog.String(keyError, err.Error())
}

func Stack() slog.Attr {
	const stackKey = "stack"
	return slog.String(stackKey, string(debug.Stack()))
}

func HTTPStatus(status int) slog.Attr {
	const statusKey = "status"
	return slog.Int(statusKey, status)
}

func Duration(duration time.Duration) slog.Attr {
	const durationKey = "duration"
	return slog.Duration(durationKey, duration)
}

func Version() slog.Attr {
	const versionKey = "version"
	return slog.String(versionKey, version.Get())
}

func URL(u string) slog.Attr {
	const urlKey = "url"
	return slog.String(urlKey, u)
}

func Year(year int) slog.Attr {
	const yearKey = "year"
	return slog.Int(yearKey, year)
}

func FetchID(id string) slog.Attr {
	const fetchIDKey = "fetch_id"
	return slog.String(fetchIDKey, id)
}

func View(name string) slog.Attr {
	const viewKey = "view"
	return slog.String(viewKey, name)
}

func Priority(priority int) slog.Attr {
	const priorityKey = "priority"
	return slog.Int(priorityKey, priority)
}

func QueueLen(n int) slog.Attr {
	const queueLenKey = "queue_len"
	return slog.Int(queueLenKey, n)
}

func Shift(name string) slog.Attr {
	const shiftKey = "shift"
	return slog.String(shiftKey, name)
}

func PrevShift(name string) slog.Attr {
	const prevShiftKey = "prev_shift"
	return slog.String(prevShiftKey, name)
}

func Event(name string) slog.Attr {
	const eventKey = "event"
	return slog.String(eventKey, name)
}

func Setting(key, value string) slog.Attr {
	const settingKey = "setting"
	return slog.Group(settingKey,
		slog.String("key", key),
		slog.String("value", value),
	)
}

func Backend(name string) slog.Attr {
	const backendKey = "backend"
	return slog.String(backendKey, name)
}

func Omega(value string) slog.Attr {
	const omegaKey = "omega"
	return slog.String(omegaKey, value)
}

func Donations(total float64) slog.Attr {
	const donationsKey = "donation_total"
	return slog.Float64(donationsKey, total)
}

func LastAttempt(t time.Time) slog.Attr {
	const lastAttemptKey = "last_attempt"
	return slog.Time(lastAttemptKey, t)
}

func Count(count int) slog.Attr {
	const countKey = "count"
	return slog.Int(countKey, count)
}

func Path(path string) slog.Attr {
	const pathKey = "path"
	return slog.String(pathKey, path)
}
