package http1

// Framing is the automatic body framing a response is allowed to receive.
type Framing uint8

const (
	// FramingNone adds neither Content-Length nor Transfer-Encoding.
	FramingNone Framing = iota
	// FramingContentLength adds Content-Length when the body length is known and never chunks.
	// A body of unknown length is delimited by closing the connection.
	FramingContentLength
	// FramingChunked adds Content-Length when the body length is known and chunked Transfer-Encoding otherwise.
	FramingChunked
)

func (framing Framing) String() string {
	switch framing {
	case FramingNone:
		return "none"
	case FramingContentLength:
		return "content-length"
	case FramingChunked:
		return "chunked"
	default:
		return "unknown"
	}
}

// DecideFraming picks the automatic framing of a response.
// The rules apply in order and any status code is accepted:
//  1. 1xx and 204 never receive framing headers; caller supplied ones pass through untouched.
//  2. Caller supplied Content-Length or Transfer-Encoding is never duplicated.
//  3. HTTP/1.1 and later may be chunked.
//  4. HTTP/1.0 is never chunked.
func DecideFraming(status int, version Version, headers Headers) Framing {
	if bodyless(status) {
		return FramingNone
	}
	if headers.Has("Content-Length") || headers.Has("Transfer-Encoding") {
		return FramingNone
	}
	if version.AtLeast(HTTP11) {
		return FramingChunked
	}
	return FramingContentLength
}

func informational(status int) bool {
	return status >= 100 && status < 200
}

func bodyless(status int) bool {
	return informational(status) || status == 204
}
