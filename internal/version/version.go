package version

import (
	"runtime/debug"
	"strconv"
	"strings"
	"sync"
)

const Header = "X-Client-Version"

const (
	versionDevel   = "devel"
	versionUnknown = "unknown"
)

// version is set via ldflags at build time.
// falls back to debug.ReadBuildInfo for go install.
var version = versionDevel

var once sync.Once

func Get() string {
	once.Do(func() {
		if version != versionDevel {
			return
		}
		info, ok := debug.ReadBuildInfo()
		if !ok {
			return
		}
		if v := info.Main.Version; v != "" && v != "("+versionDevel+")" {
			version = v
		}
	})
	return version
}

// IsDevelopment returns true for builds that did not come from a tagged release.
func IsDevelopment(v string) bool {
	return v == versionDevel || v == versionUnknown || v == "" ||
		strings.Contains(v, "dirty") ||
		strings.Contains(v, "-0.")
}

// Label formats v for the service menu splash, which only has room for a short
// semver like "v0.7.0". Pseudo-versions and build metadata are cut off.
func Label(v string) string {
	if IsDevelopment(v) {
		return versionDevel
	}
	v = "v" + strings.TrimPrefix(v, "v")
	if idx := strings.IndexAny(v, "-+"); idx > 0 {
		v = v[:idx]
	}
	return v
}

// IsNewer reports whether latest is a later release than current. A
// development build is always behind a tagged release.
func IsNewer(current, latest string) bool {
	l, ok := parse(latest)
	if !ok {
		return false
	}
	if IsDevelopment(current) {
		return true
	}
	c, ok := parse(current)
	if !ok {
		return true
	}
	for i := range l {
		if l[i] != c[i] {
			return l[i] > c[i]
		}
	}
	return false
}

func parse(v string) ([3]int, bool) {
	var out [3]int
	v = strings.TrimPrefix(v, "v")
	if idx := strings.IndexAny(v, "-+"); idx >= 0 {
		v = v[:idx]
	}
	parts := strings.Split(v, ".")
	if len(parts) != len(out) {
		return out, false
	}
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return out, false
		}
		out[i] = n
	}
	return out, true
}
