//go:build !windows

package fs

// fixpath returns an absolute path on windows, so long file names can be
// opened. It is a no-op everywhere else.
func fixpath(name string) string {
	return name
}
