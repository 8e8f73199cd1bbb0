//go:build !windows

package fs

import "golang.org/x/sys/unix"

// O_NOFOLLOW instructs the kernel to not follow symlinks when opening a file.
const O_NOFOLLOW int = unix.O_NOFOLLOW
