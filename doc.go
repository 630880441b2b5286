// Package wire holds the byte level plumbing of a non-blocking network stack:
//
//   - pkg/bytebuffers: a reference counted, copy-on-write byte buffer with reader and writer
//     indices and explicit-endianness integer accessors.
//   - codec: length-prefixed message framing on top of the buffer, plus fixed size and
//     MessagePack codecs.
//   - pkg/sockets: an IPv4, IPv6 and Unix domain socket address value with native conversions.
//   - pkg/http1: the HTTP/1.x response framing decision and a response head encoder.
//
// This package classifies the errors of all of them. cmd/wire drives each component from a shell.
package wire
