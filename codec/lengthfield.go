package codec

import (
	"strconv"

	"github.com/brickingsoft/wire/pkg/bytebuffers"
)

// LengthField
// 长度前缀的描述：宽度（1 到 8 字节）、字节序以及是否为有符号数。
// 帧格式为 [Width 字节的长度][负载]。
type LengthField struct {
	Width  int
	Order  bytebuffers.Endianness
	Signed bool
}

// Max returns the largest payload length the prefix can carry.
func (field LengthField) Max() uint64 {
	field.check()
	bits := uint(8 * field.Width)
	if field.Signed {
		return uint64(1)<<(bits-1) - 1
	}
	return ^uint64(0) >> (64 - bits)
}

func (field LengthField) String() string {
	kind := "u"
	if field.Signed {
		kind = "i"
	}
	return kind + strconv.Itoa(8*field.Width) + "/" + field.Order.String()
}

func (field LengthField) check() {
	if field.Width < 1 || field.Width > 8 {
		panic("codec.LengthField: width must be in [1, 8], got " + strconv.Itoa(field.Width))
	}
}

// length reads the prefix at offset. The caller has checked that Width bytes are written there.
func (field LengthField) length(buf *bytebuffers.Buffer, offset int, op string) (n uint64, err error) {
	if field.Signed {
		v, getErr := buf.GetInt(offset, field.Width, field.Order)
		if getErr != nil {
			err = getErr
			return
		}
		if v < 0 {
			err = invalidLength(op, v)
			return
		}
		n = uint64(v)
		return
	}
	n, err = buf.GetUint(offset, field.Width, field.Order)
	return
}

// WriteMessage appends the prefix and the payload.
// A payload the prefix cannot describe fails with ErrMessageTooLong and leaves buf untouched.
func WriteMessage(buf *bytebuffers.Buffer, payload []byte, field LengthField) (err error) {
	if limit := field.Max(); uint64(len(payload)) > limit {
		err = messageTooLong(len(payload), limit)
		return
	}
	buf.WriteUint(uint64(len(payload)), field.Width, field.Order)
	buf.WriteBytes(payload)
	return
}

// WriteMessageFunc reserves the prefix, lets fn write the payload, then back-patches its length.
// When fn fails or the payload is too long, the writer index is restored.
func WriteMessageFunc(buf *bytebuffers.Buffer, field LengthField, fn func(buf *bytebuffers.Buffer) error) (err error) {
	limit := field.Max()
	start := buf.WriterIndex()
	buf.WriteUint(0, field.Width, field.Order)
	if err = fn(buf); err != nil {
		_ = buf.MoveWriterIndex(start)
		return
	}
	n := buf.WriterIndex() - start - field.Width
	if uint64(n) > limit {
		_ = buf.MoveWriterIndex(start)
		err = messageTooLong(n, limit)
		return
	}
	err = buf.SetUint(start, uint64(n), field.Width, field.Order)
	return
}

// ReadMessage decodes one frame at the reader index and returns its payload as a view sharing buf's storage.
// On any failure the reader index is left where it was, so the call can be retried once more bytes arrive.
func ReadMessage(buf *bytebuffers.Buffer, field LengthField) (message *bytebuffers.Buffer, err error) {
	field.check()
	readable := buf.Len()
	if readable < field.Width {
		err = insufficientData(uint64(field.Width), readable)
		return
	}
	r := buf.ReaderIndex()
	n, lenErr := field.length(buf, r, errMetaOpRead)
	if lenErr != nil {
		err = lenErr
		return
	}
	if n > uint64(readable-field.Width) {
		err = insufficientData(n, readable-field.Width)
		return
	}
	if message, err = buf.GetSlice(r+field.Width, int(n)); err != nil {
		return
	}
	err = buf.MoveReaderIndex(r + field.Width + int(n))
	return
}

// GetMessage decodes the frame starting at offset without moving any index.
func GetMessage(buf *bytebuffers.Buffer, offset int, field LengthField) (message *bytebuffers.Buffer, err error) {
	field.check()
	w := buf.WriterIndex()
	if offset < 0 || offset > w-field.Width {
		err = outOfBounds(offset, uint64(field.Width), w)
		return
	}
	n, lenErr := field.length(buf, offset, errMetaOpGet)
	if lenErr != nil {
		err = lenErr
		return
	}
	start := offset + field.Width
	if n > uint64(w-start) {
		err = outOfBounds(start, n, w)
		return
	}
	message, err = buf.GetSlice(start, int(n))
	return
}
