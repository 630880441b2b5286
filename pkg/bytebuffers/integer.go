package bytebuffers

import "unsafe"

// WriteUint appends the low width bytes of v and advances the writer index.
func (buf *Buffer) WriteUint(v uint64, width int, order Endianness) int {
	checkWidth(width)
	buf.mustPrepare(buf.w + width)
	putUint(buf.raw()[buf.w:buf.w+width], v, order)
	buf.w += width
	return width
}

// WriteInt appends v as a width-byte two's-complement integer.
func (buf *Buffer) WriteInt(v int64, width int, order Endianness) int {
	return buf.WriteUint(uint64(v), width, order)
}

func (buf *Buffer) ReadUint(width int, order Endianness) (v uint64, err error) {
	checkWidth(width)
	if buf.Len() < width {
		err = insufficientData(errMetaOpRead, width, buf.Len())
		return
	}
	v = uintOf(buf.raw()[buf.r:buf.r+width], order)
	buf.r += width
	return
}

// ReadInt reads a width-byte two's-complement integer, sign-extended to int64.
func (buf *Buffer) ReadInt(width int, order Endianness) (v int64, err error) {
	u, readErr := buf.ReadUint(width, order)
	if readErr != nil {
		err = readErr
		return
	}
	v = signExtend(u, width)
	return
}

func (buf *Buffer) GetUint(offset int, width int, order Endianness) (v uint64, err error) {
	checkWidth(width)
	if !buf.inWritten(offset, width) {
		err = outOfBounds(errMetaOpGet, offset, width, buf.w)
		return
	}
	v = uintOf(buf.raw()[offset:offset+width], order)
	return
}

func (buf *Buffer) GetInt(offset int, width int, order Endianness) (v int64, err error) {
	u, getErr := buf.GetUint(offset, width, order)
	if getErr != nil {
		err = getErr
		return
	}
	v = signExtend(u, width)
	return
}

// SetUint writes v at offset without moving the reader index.
// Writing past the writer index is allowed up to the capacity and extends the writer index.
func (buf *Buffer) SetUint(offset int, v uint64, width int, order Endianness) (err error) {
	checkWidth(width)
	if !buf.inCapacity(offset, width) {
		err = outOfBounds(errMetaOpSet, offset, width, buf.limit)
		return
	}
	end := offset + width
	if err = buf.prepare(end); err != nil {
		return
	}
	putUint(buf.raw()[offset:end], v, order)
	if end > buf.w {
		buf.w = end
	}
	return
}

func (buf *Buffer) SetInt(offset int, v int64, width int, order Endianness) error {
	return buf.SetUint(offset, uint64(v), width, order)
}

// Integer is any fixed-size Go integer type; its size selects the accessor width.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

func widthOf[T Integer]() int {
	var v T
	return int(unsafe.Sizeof(v))
}

func WriteInteger[T Integer](buf *Buffer, v T, order Endianness) int {
	return buf.WriteUint(uint64(v), widthOf[T](), order)
}

// ReadInteger reads a T. Signed types come back sign-extended by the conversion.
func ReadInteger[T Integer](buf *Buffer, order Endianness) (v T, err error) {
	u, readErr := buf.ReadUint(widthOf[T](), order)
	if readErr != nil {
		err = readErr
		return
	}
	v = T(u)
	return
}

func GetInteger[T Integer](buf *Buffer, offset int, order Endianness) (v T, err error) {
	u, getErr := buf.GetUint(offset, widthOf[T](), order)
	if getErr != nil {
		err = getErr
		return
	}
	v = T(u)
	return
}

func SetInteger[T Integer](buf *Buffer, offset int, v T, order Endianness) error {
	return buf.SetUint(offset, uint64(v), widthOf[T](), order)
}
