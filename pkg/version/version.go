// Package version exposes the build version of the klimatkalk binary.
package version

// version is set at build time via -ldflags "-X ...version.version=v1.2.3".
var version = "dev" //nolint:gochecknoglobals // Set by the linker

// GetVersion returns the build version string.
func GetVersion() string {
	return version
}
