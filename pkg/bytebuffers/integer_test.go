package bytebuffers_test

import (
	"math"
	"testing"

	"github.com/brickingsoft/wire/pkg/bytebuffers"
)

var orders = []bytebuffers.Endianness{bytebuffers.BigEndian, bytebuffers.LittleEndian}

func TestInteger_RoundTrip(t *testing.T) {
	for _, order := range orders {
		buf := bytebuffers.NewBufferWithSize(1)
		bytebuffers.WriteInteger[int8](buf, math.MinInt8, order)
		bytebuffers.WriteInteger[int8](buf, math.MaxInt8, order)
		bytebuffers.WriteInteger[uint8](buf, math.MaxUint8, order)
		bytebuffers.WriteInteger[int16](buf, math.MinInt16, order)
		bytebuffers.WriteInteger[int16](buf, math.MaxInt16, order)
		bytebuffers.WriteInteger[uint16](buf, math.MaxUint16, order)
		bytebuffers.WriteInteger[int32](buf, math.MinInt32, order)
		bytebuffers.WriteInteger[int32](buf, math.MaxInt32, order)
		bytebuffers.WriteInteger[uint32](buf, math.MaxUint32, order)
		bytebuffers.WriteInteger[int64](buf, math.MinInt64, order)
		bytebuffers.WriteInteger[int64](buf, math.MaxInt64, order)
		bytebuffers.WriteInteger[uint64](buf, math.MaxUint64, order)
		bytebuffers.WriteInteger[int32](buf, -1, order)

		if buf.Len() != 1+1+1+2+2+2+4+4+4+8+8+8+4 {
			t.Fatal(order, "unexpected length:", buf.Len())
		}
		check := func(name string, got, want any) {
			if got != want {
				t.Errorf("%s %s: got %v, want %v", order, name, got, want)
			}
		}
		i8, _ := bytebuffers.ReadInteger[int8](buf, order)
		check("min int8", i8, int8(math.MinInt8))
		i8, _ = bytebuffers.ReadInteger[int8](buf, order)
		check("max int8", i8, int8(math.MaxInt8))
		u8, _ := bytebuffers.ReadInteger[uint8](buf, order)
		check("max uint8", u8, uint8(math.MaxUint8))
		i16, _ := bytebuffers.ReadInteger[int16](buf, order)
		check("min int16", i16, int16(math.MinInt16))
		i16, _ = bytebuffers.ReadInteger[int16](buf, order)
		check("max int16", i16, int16(math.MaxInt16))
		u16, _ := bytebuffers.ReadInteger[uint16](buf, order)
		check("max uint16", u16, uint16(math.MaxUint16))
		i32, _ := bytebuffers.ReadInteger[int32](buf, order)
		check("min int32", i32, int32(math.MinInt32))
		i32, _ = bytebuffers.ReadInteger[int32](buf, order)
		check("max int32", i32, int32(math.MaxInt32))
		u32, _ := bytebuffers.ReadInteger[uint32](buf, order)
		check("max uint32", u32, uint32(math.MaxUint32))
		i64, _ := bytebuffers.ReadInteger[int64](buf, order)
		check("min int64", i64, int64(math.MinInt64))
		i64, _ = bytebuffers.ReadInteger[int64](buf, order)
		check("max int64", i64, int64(math.MaxInt64))
		u64, _ := bytebuffers.ReadInteger[uint64](buf, order)
		check("max uint64", u64, uint64(math.MaxUint64))
		i32, _ = bytebuffers.ReadInteger[int32](buf, order)
		check("minus one", i32, int32(-1))
		if buf.Len() != 0 {
			t.Fatal(order, "unread bytes:", buf.Len())
		}
	}
}

func TestInteger_ExplicitWidth(t *testing.T) {
	for _, order := range orders {
		for width := 1; width <= 8; width++ {
			bits := uint(8 * width)
			minSigned := -(int64(1) << (bits - 1))
			maxSigned := int64(uint64(1)<<(bits-1) - 1)
			maxUnsigned := uint64(math.MaxUint64) >> (64 - bits)

			buf := bytebuffers.NewBuffer()
			buf.WriteInt(minSigned, width, order)
			buf.WriteInt(maxSigned, width, order)
			buf.WriteUint(maxUnsigned, width, order)

			if v, err := buf.ReadInt(width, order); err != nil || v != minSigned {
				t.Errorf("%s width %d: got %d (%v), want %d", order, width, v, err, minSigned)
			}
			if v, err := buf.ReadInt(width, order); err != nil || v != maxSigned {
				t.Errorf("%s width %d: got %d (%v), want %d", order, width, v, err, maxSigned)
			}
			if v, err := buf.ReadUint(width, order); err != nil || v != maxUnsigned {
				t.Errorf("%s width %d: got %d (%v), want %d", order, width, v, err, maxUnsigned)
			}
		}
	}
}

func TestInteger_ByteOrder(t *testing.T) {
	buf := bytebuffers.NewBuffer()
	bytebuffers.WriteInteger[uint32](buf, 0x01020304, bytebuffers.BigEndian)
	bytebuffers.WriteInteger[uint32](buf, 0x01020304, bytebuffers.LittleEndian)
	buf.WriteUint(0x010203, 3, bytebuffers.BigEndian)
	buf.WriteUint(0x010203, 3, bytebuffers.LittleEndian)
	want := []byte{1, 2, 3, 4, 4, 3, 2, 1, 1, 2, 3, 3, 2, 1}
	if string(buf.Bytes()) != string(want) {
		t.Fatalf("got % x, want % x", buf.Bytes(), want)
	}
}

func TestInteger_ReadInsufficient(t *testing.T) {
	buf := bytebuffers.NewBufferFromBytes([]byte{1, 2, 3})
	if _, err := bytebuffers.ReadInteger[uint32](buf, bytebuffers.BigEndian); !bytebuffers.IsInsufficientData(err) {
		t.Fatal("expected insufficient data, got", err)
	}
	if buf.ReaderIndex() != 0 {
		t.Fatal("reader index moved on failure")
	}
}

func TestInteger_GetSet(t *testing.T) {
	buf := bytebuffers.NewBufferWithSize(8)
	bytebuffers.WriteInteger[uint16](buf, 0xFFFF, bytebuffers.BigEndian)
	if err := bytebuffers.SetInteger[int16](buf, 0, -2, bytebuffers.LittleEndian); err != nil {
		t.Fatal(err)
	}
	v, err := bytebuffers.GetInteger[int16](buf, 0, bytebuffers.LittleEndian)
	if err != nil || v != -2 {
		t.Fatal(v, err)
	}
	if buf.ReaderIndex() != 0 || buf.WriterIndex() != 2 {
		t.Fatal("get/set must not move cursors:", buf)
	}
	if _, err = bytebuffers.GetInteger[int32](buf, 0, bytebuffers.BigEndian); !bytebuffers.IsOutOfBounds(err) {
		t.Fatal("get past the writer index must fail, got", err)
	}
	if err = bytebuffers.SetInteger[uint32](buf, 4, 7, bytebuffers.BigEndian); err != nil {
		t.Fatal(err)
	}
	if buf.WriterIndex() != 8 {
		t.Fatal("set past the writer index must extend it:", buf.WriterIndex())
	}
	if err = bytebuffers.SetInteger[uint32](buf, 5, 7, bytebuffers.BigEndian); !bytebuffers.IsOutOfBounds(err) {
		t.Fatal("set past the capacity must fail, got", err)
	}
	if u, _ := buf.GetUint(4, 4, bytebuffers.BigEndian); u != 7 {
		t.Fatal("got", u)
	}
}

func TestInteger_InvalidWidth(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	bytebuffers.NewBuffer().WriteUint(1, 9, bytebuffers.BigEndian)
}

func TestParseEndianness(t *testing.T) {
	if order, err := bytebuffers.ParseEndianness("le"); err != nil || order != bytebuffers.LittleEndian {
		t.Fatal(order, err)
	}
	if order, err := bytebuffers.ParseEndianness("big"); err != nil || order != bytebuffers.BigEndian {
		t.Fatal(order, err)
	}
	if _, err := bytebuffers.ParseEndianness("middle"); err == nil {
		t.Fatal("expected error")
	}
}
