package bytebuffers

import (
	"encoding/binary"
	"strconv"

	"github.com/brickingsoft/errors"
)

// Endianness selects the byte order of an integer accessor.
// There is no host order: every call names one explicitly.
type Endianness uint8

const (
	BigEndian Endianness = iota
	LittleEndian
)

func (order Endianness) String() string {
	switch order {
	case BigEndian:
		return "big"
	case LittleEndian:
		return "little"
	default:
		return "Endianness(" + strconv.Itoa(int(order)) + ")"
	}
}

// ParseEndianness accepts "big", "be", "little" and "le".
func ParseEndianness(s string) (order Endianness, err error) {
	switch s {
	case "big", "be", "BE", "big-endian":
		order = BigEndian
	case "little", "le", "LE", "little-endian":
		order = LittleEndian
	default:
		err = errors.From(
			ErrInvalidOrder,
			errors.WithMeta(errMetaPkgKey, errMetaPkgVal),
			errors.WithMeta("order", s),
		)
	}
	return
}

func (order Endianness) byteOrder() binary.ByteOrder {
	if order == LittleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

func checkWidth(width int) {
	if width < 1 || width > 8 {
		panic("bytebuffers: integer width must be in [1, 8], got " + strconv.Itoa(width))
	}
}

func putUint(p []byte, v uint64, order Endianness) {
	switch len(p) {
	case 1:
		p[0] = byte(v)
	case 2:
		order.byteOrder().PutUint16(p, uint16(v))
	case 4:
		order.byteOrder().PutUint32(p, uint32(v))
	case 8:
		order.byteOrder().PutUint64(p, v)
	default:
		n := len(p)
		for i := 0; i < n; i++ {
			if order == LittleEndian {
				p[i] = byte(v >> (8 * i))
			} else {
				p[n-1-i] = byte(v >> (8 * i))
			}
		}
	}
}

func uintOf(p []byte, order Endianness) (v uint64) {
	switch len(p) {
	case 1:
		v = uint64(p[0])
	case 2:
		v = uint64(order.byteOrder().Uint16(p))
	case 4:
		v = uint64(order.byteOrder().Uint32(p))
	case 8:
		v = order.byteOrder().Uint64(p)
	default:
		n := len(p)
		for i := 0; i < n; i++ {
			if order == LittleEndian {
				v |= uint64(p[i]) << (8 * i)
			} else {
				v |= uint64(p[n-1-i]) << (8 * i)
			}
		}
	}
	return
}

// signExtend interprets the low width bytes of v as a two's-complement value.
func signExtend(v uint64, width int) int64 {
	shift := 64 - 8*width
	return int64(v<<shift) >> shift
}
