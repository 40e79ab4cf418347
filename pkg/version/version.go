// Package version exposes the build version of the datatable binary.
package version

// version is set at build time with -ldflags "-X github.com/rshade/datatable/pkg/version.version=...".
var version = "dev" //nolint:gochecknoglobals // Set by the linker.

// GetVersion returns the build version, "dev" for local builds.
func GetVersion() string {
	return version
}
