package version

import "testing"

func TestIsDevelopment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		v    string
		want bool
	}{
		{name: "tagged release", v: "v1.0.0", want: false},
		{name: "devel", v: "devel", want: true},
		{name: "unknown", v: "unknown", want: true},
		{name: "empty", v: "", want: true},
		{name: "dirty", v: "v1.0.0-dirty", want: true},
		{name: "pseudo version", v: "v0.0.0-0.20251019120000-abcdef", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsDevelopment(tt.v); got != tt.want {
				t.Errorf("IsDevelopment(%q) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		v    string
		want string
	}{
		{name: "with v prefix", v: "v0.7.0", want: "v0.7.0"},
		{name: "without v prefix", v: "0.7.0", want: "v0.7.0"},
		{name: "build metadata", v: "v1.2.3+incompatible", want: "v1.2.3"},
		{name: "prerelease", v: "v1.2.3-rc.1", want: "v1.2.3"},
		{name: "devel", v: "devel", want: "devel"},
		{name: "dirty", v: "v1.2.3-dirty", want: "devel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Label(tt.v); got != tt.want {
				t.Errorf("Label(%q) = %q, want %q", tt.v, got, tt.want)
			}
		})
	}
}

func TestIsNewer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		current string
		latest  string
		want    bool
	}{
		{name: "patch bump", current: "v0.7.0", latest: "v0.7.1", want: true},
		{name: "minor beats patch", current: "v0.7.9", latest: "v0.8.0", want: true},
		{name: "same", current: "v0.7.0", latest: "v0.7.0", want: false},
		{name: "older", current: "v1.2.0", latest: "v1.1.9", want: false},
		{name: "numeric not lexical", current: "v0.9.0", latest: "v0.10.0", want: true},
		{name: "devel always behind", current: "devel", latest: "v0.1.0", want: true},
		{name: "garbage latest", current: "v0.7.0", latest: "nightly", want: false},
		{name: "missing prefix", current: "0.7.0", latest: "v0.7.2", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsNewer(tt.current, tt.latest); got != tt.want {
				t.Errorf("IsNewer(%q, %q) = %v, want %v", tt.current, tt.latest, got, tt.want)
			}
		})
	}
}
