//go:build !release

package footer

import "github.com/dbpibus/dbpibus/internal/version"

func versionLabel() string {
	return "dbpibus " + version.Get() + " (dev)"
}
