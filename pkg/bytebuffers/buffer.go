package bytebuffers

import (
	"bytes"
	"fmt"
	"io"
	"runtime"

	"github.com/brickingsoft/wire/pkg/reference"
)

const defaultBufferSize = 256

// Buffer
// 带读写游标的字节缓冲，底层 Storage 可被多个 Buffer 共享。
//
// 共享时写时复制：任意一个视图在 Storage 被共享期间修改数据，会先复制出自己独占的 Storage，
// 因此修改一个视图永远不会影响其它视图。
//
// 同一个 *Buffer 不能被多个 goroutine 同时修改。
type Buffer struct {
	ref   *reference.Pointer[*Storage]
	base  int // offset of this view into the storage
	limit int // capacity of this view
	r     int
	w     int
}

func NewBuffer() *Buffer {
	return NewBufferWithSize(defaultBufferSize)
}

func NewBufferWithSize(size int) *Buffer {
	if size < 0 {
		size = 0
	}
	storage := NewStorage(size)
	return newBuffer(reference.Make(storage), 0, storage.Cap(), 0, 0)
}

// NewBufferFromBytes returns a Buffer whose readable bytes are a copy of p.
func NewBufferFromBytes(p []byte) *Buffer {
	buf := NewBufferWithSize(len(p))
	copy(buf.raw(), p)
	buf.w = len(p)
	return buf
}

func NewBufferFromString(s string) *Buffer {
	buf := NewBufferWithSize(len(s))
	copy(buf.raw(), s)
	buf.w = len(s)
	return buf
}

func newBuffer(ref *reference.Pointer[*Storage], base int, limit int, r int, w int) *Buffer {
	buf := &Buffer{
		ref:   ref,
		base:  base,
		limit: limit,
		r:     r,
		w:     w,
	}
	runtime.SetFinalizer(buf, func(buf *Buffer) {
		_ = buf.ref.Close()
	})
	return buf
}

func (buf *Buffer) raw() []byte {
	b := buf.ref.Value().Bytes()
	return b[buf.base : buf.base+buf.limit : buf.base+buf.limit]
}

// Len returns the number of readable bytes.
func (buf *Buffer) Len() int { return buf.w - buf.r }

func (buf *Buffer) ReadableBytes() int { return buf.w - buf.r }

func (buf *Buffer) WritableBytes() int { return buf.limit - buf.w }

func (buf *Buffer) Cap() int { return buf.limit }

func (buf *Buffer) ReaderIndex() int { return buf.r }

func (buf *Buffer) WriterIndex() int { return buf.w }

// Shared reports whether the storage is currently owned by more than one view.
func (buf *Buffer) Shared() bool { return !buf.ref.Unique() }

// prepare makes this view the only owner of a storage holding at least end bytes.
func (buf *Buffer) prepare(end int) (err error) {
	storage := buf.ref.Value()
	if buf.ref.Unique() {
		if end <= buf.limit {
			return
		}
		if buf.base == 0 && buf.limit == storage.Cap() {
			if err = storage.GrowTo(end); err != nil {
				return
			}
			buf.limit = storage.Cap()
			return
		}
	}
	capacity := buf.limit
	if end > capacity {
		if capacity, err = growCapacity(capacity, end); err != nil {
			return
		}
	}
	ns := &Storage{}
	if err = ns.GrowTo(capacity); err != nil {
		return
	}
	copy(ns.b, buf.raw())
	prev := buf.ref
	buf.ref = reference.Make(ns)
	buf.base = 0
	buf.limit = ns.Cap()
	_ = prev.Close()
	return
}

func (buf *Buffer) mustPrepare(end int) {
	if err := buf.prepare(end); err != nil {
		panic(err)
	}
}

// Write implements io.Writer. It fails only when the storage cannot grow.
func (buf *Buffer) Write(p []byte) (n int, err error) {
	pLen := len(p)
	if pLen == 0 {
		return
	}
	if pLen > maxInt-buf.w {
		err = tooLarge(buf.limit, maxInt)
		return
	}
	if err = buf.prepare(buf.w + pLen); err != nil {
		return
	}
	n = copy(buf.raw()[buf.w:], p)
	buf.w += n
	return
}

// WriteBytes appends p and advances the writer index.
// It panics with ErrTooLarge if the storage cannot grow, like bytes.Buffer.
func (buf *Buffer) WriteBytes(p []byte) int {
	n, err := buf.Write(p)
	if err != nil {
		panic(err)
	}
	return n
}

func (buf *Buffer) WriteString(s string) (n int, err error) {
	sLen := len(s)
	if sLen == 0 {
		return
	}
	if sLen > maxInt-buf.w {
		err = tooLarge(buf.limit, maxInt)
		return
	}
	if err = buf.prepare(buf.w + sLen); err != nil {
		return
	}
	n = copy(buf.raw()[buf.w:], s)
	buf.w += n
	return
}

func (buf *Buffer) WriteByte(c byte) (err error) {
	if err = buf.prepare(buf.w + 1); err != nil {
		return
	}
	buf.raw()[buf.w] = c
	buf.w++
	return
}

// WriteBuffer appends the readable bytes of src without consuming them.
func (buf *Buffer) WriteBuffer(src *Buffer) int {
	return buf.WriteBytes(src.Bytes())
}

// Read implements io.Reader.
func (buf *Buffer) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return
	}
	if buf.Len() == 0 {
		err = io.EOF
		return
	}
	n = copy(p, buf.raw()[buf.r:buf.w])
	buf.r += n
	return
}

// ReadBytes copies out and consumes exactly n readable bytes.
func (buf *Buffer) ReadBytes(n int) (p []byte, err error) {
	if n < 0 || n > buf.Len() {
		err = insufficientData(errMetaOpRead, n, buf.Len())
		return
	}
	p = make([]byte, n)
	copy(p, buf.raw()[buf.r:buf.r+n])
	buf.r += n
	return
}

// GetBytes copies n bytes at offset without moving any index.
func (buf *Buffer) GetBytes(offset int, n int) (p []byte, err error) {
	if !buf.inWritten(offset, n) {
		err = outOfBounds(errMetaOpGet, offset, n, buf.w)
		return
	}
	p = make([]byte, n)
	copy(p, buf.raw()[offset:offset+n])
	return
}

// SetBytes writes p at offset. It may write past the writer index, up to the capacity,
// in which case the writer index is moved to the end of p.
func (buf *Buffer) SetBytes(offset int, p []byte) (err error) {
	if !buf.inCapacity(offset, len(p)) {
		err = outOfBounds(errMetaOpSet, offset, len(p), buf.limit)
		return
	}
	end := offset + len(p)
	if err = buf.prepare(end); err != nil {
		return
	}
	copy(buf.raw()[offset:end], p)
	if end > buf.w {
		buf.w = end
	}
	return
}

// ReadSlice returns a view of the next n readable bytes and consumes them.
// The view shares the storage until either side is modified.
func (buf *Buffer) ReadSlice(n int) (slice *Buffer, err error) {
	if n < 0 || n > buf.Len() {
		err = insufficientData(errMetaOpSlice, n, buf.Len())
		return
	}
	slice = buf.slice(buf.r, n)
	buf.r += n
	return
}

// GetSlice returns a view of n bytes at offset without moving any index.
func (buf *Buffer) GetSlice(offset int, n int) (slice *Buffer, err error) {
	if !buf.inWritten(offset, n) {
		err = outOfBounds(errMetaOpSlice, offset, n, buf.w)
		return
	}
	slice = buf.slice(offset, n)
	return
}

func (buf *Buffer) slice(offset int, n int) *Buffer {
	return newBuffer(buf.ref.Retain(), buf.base+offset, n, 0, n)
}

// Clone returns a logically distinct Buffer with the same indices and content.
// No bytes are copied until one of them is modified.
func (buf *Buffer) Clone() *Buffer {
	return newBuffer(buf.ref.Retain(), buf.base, buf.limit, buf.r, buf.w)
}

// Release drops this view's ownership of the storage. The Buffer stays usable and is empty.
func (buf *Buffer) Release() error {
	prev := buf.ref
	buf.ref = reference.Make(NewStorage(0))
	buf.base, buf.limit, buf.r, buf.w = 0, 0, 0, 0
	return prev.Close()
}

// Reset empties the buffer but keeps its storage.
func (buf *Buffer) Reset() {
	buf.r = 0
	buf.w = 0
}

// DiscardReadBytes moves the readable bytes to the front of the view.
func (buf *Buffer) DiscardReadBytes() {
	if buf.r == 0 {
		return
	}
	buf.mustPrepare(buf.w)
	b := buf.raw()
	copy(b, b[buf.r:buf.w])
	buf.w -= buf.r
	buf.r = 0
}

// Bytes returns the readable region without copying.
// It is valid until the next modification of this Buffer or of any view sharing its storage.
func (buf *Buffer) Bytes() []byte {
	return buf.raw()[buf.r:buf.w:buf.w]
}

// Peek returns at most n readable bytes without copying or consuming them.
func (buf *Buffer) Peek(n int) (p []byte) {
	bLen := buf.Len()
	if n < 1 || bLen == 0 {
		return
	}
	if bLen > n {
		p = buf.raw()[buf.r : buf.r+n : buf.r+n]
		return
	}
	p = buf.Bytes()
	return
}

// Discard consumes n readable bytes, typically after a send reported n bytes written.
func (buf *Buffer) Discard(n int) (err error) {
	if n < 0 || n > buf.Len() {
		err = insufficientData(errMetaOpRead, n, buf.Len())
		return
	}
	buf.r += n
	return
}

// Allocate exposes at least size writable bytes after the writer index, for a receive to fill.
// Commit the filled bytes with AllocatedWrote.
func (buf *Buffer) Allocate(size int) (p []byte, err error) {
	if size < 0 || size > maxInt-buf.w {
		err = outOfBounds(errMetaOpAllocate, buf.w, size, buf.limit)
		return
	}
	if err = buf.prepare(buf.w + size); err != nil {
		return
	}
	p = buf.raw()[buf.w : buf.w+size : buf.w+size]
	return
}

// AllocatedWrote advances the writer index by n bytes filled through Allocate.
func (buf *Buffer) AllocatedWrote(n int) error {
	if n < 0 || n > buf.limit-buf.w {
		return outOfBounds(errMetaOpAllocate, buf.w, n, buf.limit)
	}
	return buf.MoveWriterIndex(buf.w + n)
}

func (buf *Buffer) MoveReaderIndex(index int) error {
	if index < 0 || index > buf.w {
		return outOfBounds(errMetaOpMove, index, 0, buf.w)
	}
	buf.r = index
	return nil
}

func (buf *Buffer) MoveWriterIndex(index int) error {
	if index < buf.r || index > buf.limit {
		return outOfBounds(errMetaOpMove, index, 0, buf.limit)
	}
	buf.w = index
	return nil
}

func (buf *Buffer) Equal(other *Buffer) bool {
	if other == nil {
		return false
	}
	return bytes.Equal(buf.Bytes(), other.Bytes())
}

func (buf *Buffer) String() string {
	return fmt.Sprintf("Buffer{readerIndex: %d, writerIndex: %d, readableBytes: %d, capacity: %d, shared: %t}",
		buf.r, buf.w, buf.Len(), buf.limit, buf.Shared())
}

func (buf *Buffer) inWritten(offset int, n int) bool {
	return offset >= 0 && n >= 0 && offset <= buf.w-n
}

func (buf *Buffer) inCapacity(offset int, n int) bool {
	return offset >= 0 && n >= 0 && offset <= buf.limit-n
}
