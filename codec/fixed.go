package codec

import (
	"github.com/brickingsoft/wire/pkg/bytebuffers"
)

func NewFixedCodec(fixed int) *FixedCodec {
	if fixed < 1 {
		panic("codec.FixedCodec: fixed must be > 0")
	}
	return &FixedCodec{
		n: fixed,
	}
}

// FixedCodec frames messages as exactly n bytes.
// Shorter messages are zero padded and longer ones are truncated.
type FixedCodec struct {
	n int
}

func (codec *FixedCodec) Size() int {
	return codec.n
}

func (codec *FixedCodec) Encode(buf *bytebuffers.Buffer, message []byte) (err error) {
	pLen := len(message)
	n := codec.n
	if pLen < n {
		n = pLen
	}
	buf.WriteBytes(message[:n])
	for i := n; i < codec.n; i++ {
		_ = buf.WriteByte(0)
	}
	return
}

func (codec *FixedCodec) Decode(buf *bytebuffers.Buffer) (ok bool, message []byte, err error) {
	if buf.Len() < codec.n {
		return
	}
	if message, err = buf.ReadBytes(codec.n); err != nil {
		return
	}
	ok = true
	return
}
