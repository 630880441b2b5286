package bytebuffers

import (
	"strconv"

	"github.com/brickingsoft/errors"
)

var (
	ErrOutOfBounds      = errors.Define("index out of bounds")
	ErrInsufficientData = errors.Define("insufficient readable bytes")
	ErrTooLarge         = errors.Define("too large")
	ErrInvalidOrder     = errors.Define("invalid byte order")
)

func IsOutOfBounds(err error) bool {
	return errors.Is(err, ErrOutOfBounds)
}

func IsInsufficientData(err error) bool {
	return errors.Is(err, ErrInsufficientData)
}

func IsTooLarge(err error) bool {
	return errors.Is(err, ErrTooLarge)
}

const (
	errMetaPkgKey = "pkg"
	errMetaPkgVal = "bytebuffers"
)

const (
	errMetaOpKey        = "op"
	errMetaOpGet        = "get"
	errMetaOpSet        = "set"
	errMetaOpRead       = "read"
	errMetaOpSlice      = "slice"
	errMetaOpMove       = "move_index"
	errMetaOpAllocate   = "allocate"
	errMetaOpGrow       = "grow"
	errMetaOpStorage    = "storage"
	errMetaOffsetKey    = "offset"
	errMetaLengthKey    = "length"
	errMetaReadableKey  = "readable"
	errMetaCapacityKey  = "capacity"
	errMetaRequestedKey = "requested"
)

func outOfBounds(op string, offset int, length int, capacity int) error {
	return errors.From(
		ErrOutOfBounds,
		errors.WithMeta(errMetaPkgKey, errMetaPkgVal),
		errors.WithMeta(errMetaOpKey, op),
		errors.WithMeta(errMetaOffsetKey, strconv.Itoa(offset)),
		errors.WithMeta(errMetaLengthKey, strconv.Itoa(length)),
		errors.WithMeta(errMetaCapacityKey, strconv.Itoa(capacity)),
	)
}

func insufficientData(op string, length int, readable int) error {
	return errors.From(
		ErrInsufficientData,
		errors.WithMeta(errMetaPkgKey, errMetaPkgVal),
		errors.WithMeta(errMetaOpKey, op),
		errors.WithMeta(errMetaLengthKey, strconv.Itoa(length)),
		errors.WithMeta(errMetaReadableKey, strconv.Itoa(readable)),
	)
}

func tooLarge(capacity int, requested int) error {
	return errors.From(
		ErrTooLarge,
		errors.WithMeta(errMetaPkgKey, errMetaPkgVal),
		errors.WithMeta(errMetaOpKey, errMetaOpGrow),
		errors.WithMeta(errMetaCapacityKey, strconv.Itoa(capacity)),
		errors.WithMeta(errMetaRequestedKey, strconv.Itoa(requested)),
	)
}

const maxInt = int(^uint(0) >> 1)
