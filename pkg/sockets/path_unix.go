//go:build unix

package sockets

import "golang.org/x/sys/unix"

var rawUnix unix.RawSockaddrUnix

// MaxUnixPathLength is the longest path that fits sun_path together with its terminating NUL.
const MaxUnixPathLength = len(rawUnix.Path) - 1
