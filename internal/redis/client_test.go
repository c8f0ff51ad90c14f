package redis

import (
	"strings"
	"testing"
	"time"
)

func TestNewRejectsBadConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "empty url", cfg: Config{}, wantErr: "REDIS_URL"},
		{name: "bad scheme", cfg: Config{URL: "http://localhost:6379"}, wantErr: "parse redis URL"},
		{name: "nothing listening", cfg: Config{URL: "redis://127.0.0.1:1/0", PingTimeout: 200 * time.Millisecond}, wantErr: "ping redis"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client, err := New(t.Context(), tt.cfg)
			if err == nil {
				_ = client.Close()
				t.Fatal("New() error = nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("New() error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}
