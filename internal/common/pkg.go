package common

import "path"

const (
	// UnknownStr is printed where a name cannot be resolved.
	UnknownStr = "unknown"
	// NilStr is printed for the identity of untyped nil.
	NilStr = "<nil>"
)

// PkgAlias returns the package alias (last element of path) for a given package path.
// Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	return path.Base(pkgPath)
}
