// Package bytex converts between strings and byte slices without copying.
// The results alias the input: the bytes must not be modified afterwards.
package bytex

import "unsafe"

func FromString(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

func ToString(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}
