package http1

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/brickingsoft/wire/pkg/bytebuffers"
	"github.com/brickingsoft/wire/pkg/bytex"
	"golang.org/x/net/http/httpguts"
)

var (
	bytesCRLF            = []byte("\r\n")
	bytesSpace           = []byte(" ")
	bytesHeaderSeparator = []byte(": ")
	bytesContentLength   = []byte("content-length: ")
	bytesTransferChunked = []byte("transfer-encoding: chunked\r\n")
	bytesConnectionClose = []byte("connection: close\r\n")
	bytesContentType     = []byte("content-type: ")
	bytesServer          = []byte("server: ")
	bytesDate            = []byte("date: ")
	bytesZeroCRLF        = []byte("0\r\n")
	bytesZeroCRLFCRLF    = []byte("0\r\n\r\n")
)

// ResponseHead is the status line and caller headers of a response.
// An empty Reason is replaced by the standard reason phrase.
type ResponseHead struct {
	Version Version
	Status  int
	Reason  string
	Headers Headers
}

type encoderStatus uint8

const (
	statusIdle encoderStatus = iota
	statusBody
	statusBodyless
	statusClosed
)

func (status encoderStatus) String() string {
	switch status {
	case statusIdle:
		return "idle"
	case statusBody:
		return "body"
	case statusBodyless:
		return "bodyless"
	case statusClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// ResponseEncoder
// HTTP/1.x 响应编码器，把响应头、内容以及分块写入 bytebuffers.Buffer。
//
// 自动添加的 content-length / transfer-encoding 由 DecideFraming 决定。
// 一个编码器对应一条链接，按 EncodeHead、EncodeBody、EncodeEnd 的顺序编码每个响应；
// 链接不能保持时，EncodeEnd 之后编码器关闭。
type ResponseEncoder struct {
	options       Options
	status        encoderStatus
	chunked       bool
	contentLength int64
	written       int64
	keepAlive     bool
}

func NewResponseEncoder(options ...Option) (encoder *ResponseEncoder, err error) {
	opts := Options{
		KeepAlive: true,
	}
	for _, option := range options {
		if err = option(&opts); err != nil {
			return
		}
	}
	encoder = &ResponseEncoder{
		options:       opts,
		contentLength: -1,
		keepAlive:     opts.KeepAlive,
	}
	return
}

// KeepAlive reports whether the connection may carry another response.
func (encoder *ResponseEncoder) KeepAlive() bool {
	return encoder.keepAlive
}

// Chunked reports whether the body of the current response is chunk encoded.
func (encoder *ResponseEncoder) Chunked() bool {
	return encoder.chunked
}

// Reset makes the encoder ready for a new connection.
func (encoder *ResponseEncoder) Reset() {
	encoder.status = statusIdle
	encoder.chunked = false
	encoder.contentLength = -1
	encoder.written = 0
	encoder.keepAlive = encoder.options.KeepAlive
}

// EncodeHead writes the status line and headers of a response.
// contentLength is the body length when known, or a negative value when it is not.
// On error nothing is written.
func (encoder *ResponseEncoder) EncodeHead(buf *bytebuffers.Buffer, head ResponseHead, contentLength int64) (err error) {
	if encoder.status != statusIdle {
		err = encoderState(errMetaOpHead, encoder.status)
		return
	}
	if head.Status < 100 || head.Status > 999 {
		err = invalidStatus(head.Status)
		return
	}
	if head.Version.Major != 1 {
		err = invalidVersion(head.Version.String())
		return
	}
	reason := head.Reason
	if reason == "" {
		reason = http.StatusText(head.Status)
	}
	if !validValue(reason) {
		err = invalidHeader(errMetaOpHead, "reason")
		return
	}
	if err = head.Headers.validate(errMetaOpHead); err != nil {
		return
	}
	if contentLength < 0 {
		contentLength = -1
	}

	framing := DecideFraming(head.Status, head.Version, head.Headers)
	if head.Status == http.StatusNotModified {
		// no body follows, so there is nothing to frame
		framing = FramingNone
	}
	interim := informational(head.Status)

	keepAlive := encoder.options.KeepAlive
	callerConnection := head.Headers.Has("Connection")
	if head.Headers.ContainsToken("Connection", "close") {
		keepAlive = false
	} else if !head.Version.AtLeast(HTTP11) && !head.Headers.ContainsToken("Connection", "keep-alive") {
		keepAlive = false
	}

	chunked := false
	switch framing {
	case FramingChunked:
		chunked = contentLength < 0
	case FramingNone:
		chunked = !bodyless(head.Status) && head.Status != http.StatusNotModified &&
			head.Version.AtLeast(HTTP11) && head.Headers.chunkedLast()
	}

	addClose := false
	dropConnection := false
	if !interim {
		if !callerConnection && !encoder.options.KeepAlive && head.Version.AtLeast(HTTP11) {
			addClose = true
		}
		if !delimited(head, framing, contentLength, chunked) {
			// the body ends when the connection closes
			keepAlive = false
			if !head.Headers.ContainsToken("Connection", "close") {
				dropConnection = callerConnection
				addClose = true
			}
		}
	}

	// status line
	writeString(buf, head.Version.String())
	buf.WriteBytes(bytesSpace)
	writeStatusCode(buf, head.Status)
	buf.WriteBytes(bytesSpace)
	writeString(buf, reason)
	buf.WriteBytes(bytesCRLF)

	// caller headers
	for _, h := range head.Headers {
		if dropConnection && strings.EqualFold(h.Name, "Connection") {
			continue
		}
		writeHeader(buf, h.Name, h.Value)
	}

	// automatic headers
	switch framing {
	case FramingContentLength, FramingChunked:
		if contentLength >= 0 {
			buf.WriteBytes(bytesContentLength)
			writeInt(buf, contentLength)
			buf.WriteBytes(bytesCRLF)
		} else if chunked {
			buf.WriteBytes(bytesTransferChunked)
		}
	}
	if !bodyless(head.Status) && head.Status != http.StatusNotModified {
		if ct := encoder.options.ContentType; ct != "" && contentLength != 0 && !head.Headers.Has("Content-Type") {
			buf.WriteBytes(bytesContentType)
			writeString(buf, ct)
			buf.WriteBytes(bytesCRLF)
		}
	}
	if !interim {
		if server := encoder.options.Server; server != "" && !head.Headers.Has("Server") {
			buf.WriteBytes(bytesServer)
			writeString(buf, server)
			buf.WriteBytes(bytesCRLF)
		}
		if clock := encoder.options.Date; clock != nil && !head.Headers.Has("Date") {
			buf.WriteBytes(bytesDate)
			writeString(buf, clock().UTC().Format(http.TimeFormat))
			buf.WriteBytes(bytesCRLF)
		}
	}
	if addClose {
		buf.WriteBytes(bytesConnectionClose)
	}
	buf.WriteBytes(bytesCRLF)

	if interim {
		// a final response follows
		return
	}
	encoder.keepAlive = keepAlive
	encoder.chunked = chunked
	encoder.written = 0
	encoder.contentLength = -1
	if framing != FramingNone {
		encoder.contentLength = contentLength
	}
	if head.Status == http.StatusNoContent || head.Status == http.StatusNotModified {
		encoder.status = statusBodyless
	} else {
		encoder.status = statusBody
	}
	return
}

// EncodeBody writes a piece of the body, chunk framed when the response is chunked.
func (encoder *ResponseEncoder) EncodeBody(buf *bytebuffers.Buffer, p []byte) (err error) {
	pLen := int64(len(p))
	if pLen == 0 {
		if encoder.status != statusBody && encoder.status != statusBodyless {
			err = encoderState(errMetaOpBody, encoder.status)
		}
		return
	}
	if encoder.status != statusBody {
		err = encoderState(errMetaOpBody, encoder.status)
		return
	}
	if encoder.contentLength >= 0 && encoder.written+pLen > encoder.contentLength {
		err = contentLengthMismatch(errMetaOpBody, encoder.contentLength, encoder.written+pLen)
		return
	}
	if encoder.chunked {
		var scratch [16]byte
		buf.WriteBytes(strconv.AppendUint(scratch[:0], uint64(pLen), 16))
		buf.WriteBytes(bytesCRLF)
		buf.WriteBytes(p)
		buf.WriteBytes(bytesCRLF)
	} else {
		buf.WriteBytes(p)
	}
	encoder.written += pLen
	return
}

func (encoder *ResponseEncoder) EncodeBodyString(buf *bytebuffers.Buffer, s string) error {
	return encoder.EncodeBody(buf, bytex.FromString(s))
}

// EncodeEnd finishes the current response. Trailers are only allowed on chunked responses.
func (encoder *ResponseEncoder) EncodeEnd(buf *bytebuffers.Buffer, trailers Headers) (err error) {
	if encoder.status != statusBody && encoder.status != statusBodyless {
		err = encoderState(errMetaOpEnd, encoder.status)
		return
	}
	if len(trailers) > 0 {
		if !encoder.chunked {
			err = encoderState(errMetaOpEnd, encoder.status)
			return
		}
		if err = trailers.validate(errMetaOpEnd); err != nil {
			return
		}
	}
	if encoder.contentLength >= 0 && encoder.written != encoder.contentLength {
		err = contentLengthMismatch(errMetaOpEnd, encoder.contentLength, encoder.written)
		return
	}
	if encoder.chunked {
		if len(trailers) == 0 {
			buf.WriteBytes(bytesZeroCRLFCRLF)
		} else {
			buf.WriteBytes(bytesZeroCRLF)
			for _, h := range trailers {
				writeHeader(buf, h.Name, h.Value)
			}
			buf.WriteBytes(bytesCRLF)
		}
	}
	encoder.chunked = false
	encoder.contentLength = -1
	encoder.written = 0
	if encoder.keepAlive {
		encoder.status = statusIdle
	} else {
		encoder.status = statusClosed
	}
	return
}

// delimited reports whether the peer can find the end of the body without the connection closing.
func delimited(head ResponseHead, framing Framing, contentLength int64, chunked bool) bool {
	if bodyless(head.Status) || head.Status == http.StatusNotModified || chunked {
		return true
	}
	switch framing {
	case FramingNone:
		return head.Headers.Has("Content-Length")
	default:
		return contentLength >= 0
	}
}

// writeString panics with ErrTooLarge like WriteBytes, so a head is never written partially.
func writeString(buf *bytebuffers.Buffer, s string) {
	buf.WriteBytes(bytex.FromString(s))
}

func writeHeader(buf *bytebuffers.Buffer, name string, value string) {
	writeString(buf, name)
	buf.WriteBytes(bytesHeaderSeparator)
	writeString(buf, value)
	buf.WriteBytes(bytesCRLF)
}

func writeStatusCode(buf *bytebuffers.Buffer, status int) {
	code := [3]byte{byte(status/100 + '0'), byte(status/10%10 + '0'), byte(status%10 + '0')}
	buf.WriteBytes(code[:])
}

func writeInt(buf *bytebuffers.Buffer, n int64) {
	var scratch [20]byte
	buf.WriteBytes(strconv.AppendInt(scratch[:0], n, 10))
}

func validValue(s string) bool {
	return httpguts.ValidHeaderFieldValue(s)
}
