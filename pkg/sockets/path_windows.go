//go:build windows

package sockets

// MaxUnixPathLength is the longest path that fits sun_path together with its terminating NUL.
const MaxUnixPathLength = 108 - 1
