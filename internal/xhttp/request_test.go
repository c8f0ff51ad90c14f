package xhttp

import (
	"net/http/httptest"
	"testing"
)

func TestGetRequestIP(t *testing.T) {
	t.Parallel()

	// The status server usually sits on a LAN with no proxy, so RemoteAddr is
	// the common case; a reverse proxy on the Pi sets X-Forwarded-For.
	tests := map[string]struct {
		forwarded string
		remote    string
		want      string
	}{
		"lan client":                 {remote: "192.168.1.40:53122", want: "192.168.1.40"},
		"lan client no port":         {remote: "192.168.1.40", want: "192.168.1.40"},
		"loopback v6":                {remote: "[::1]:8080", want: "::1"},
		"bare v6":                    {remote: "fe80::1", want: "fe80::1"},
		"proxied":                    {forwarded: "203.0.113.195", remote: "127.0.0.1:40000", want: "203.0.113.195"},
		"proxied with port":          {forwarded: "203.0.113.195:8080", remote: "127.0.0.1:40000", want: "203.0.113.195"},
		"proxied v6 with port":       {forwarded: "[2001:db8::1]:8080", remote: "127.0.0.1:40000", want: "2001:db8::1"},
		"proxy chain uses first hop": {forwarded: "203.0.113.195, 10.0.0.2", remote: "127.0.0.1:40000", want: "203.0.113.195"},
		"nothing known":              {},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest("GET", "/lcd", nil)
			r.RemoteAddr = tt.remote
			if tt.forwarded != "" {
				r.Header.Set(XForwardedFor, tt.forwarded)
			}

			if got := GetRequestIP(r); got != tt.want {
				t.Errorf("GetRequestIP() = %q, want %q", got, tt.want)
			}
		})
	}
}
