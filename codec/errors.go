package codec

import (
	"strconv"

	"github.com/brickingsoft/errors"
	"github.com/brickingsoft/wire/pkg/bytebuffers"
)

var (
	ErrMessageTooLong = errors.Define("message too long for length field")
	ErrInvalidLength  = errors.Define("invalid length field")
)

func IsMessageTooLong(err error) bool {
	return errors.Is(err, ErrMessageTooLong)
}

func IsInvalidLength(err error) bool {
	return errors.Is(err, ErrInvalidLength)
}

const (
	errMetaPkgKey = "pkg"
	errMetaPkgVal = "codec"
)

const (
	errMetaOpKey       = "op"
	errMetaOpWrite     = "write"
	errMetaOpRead      = "read"
	errMetaOpGet       = "get"
	errMetaLengthKey   = "length"
	errMetaMaxKey      = "max"
	errMetaOffsetKey   = "offset"
	errMetaReadableKey = "readable"
)

func messageTooLong(length int, limit uint64) error {
	return errors.From(
		ErrMessageTooLong,
		errors.WithMeta(errMetaPkgKey, errMetaPkgVal),
		errors.WithMeta(errMetaOpKey, errMetaOpWrite),
		errors.WithMeta(errMetaLengthKey, strconv.Itoa(length)),
		errors.WithMeta(errMetaMaxKey, strconv.FormatUint(limit, 10)),
	)
}

func invalidLength(op string, length int64) error {
	return errors.From(
		ErrInvalidLength,
		errors.WithMeta(errMetaPkgKey, errMetaPkgVal),
		errors.WithMeta(errMetaOpKey, op),
		errors.WithMeta(errMetaLengthKey, strconv.FormatInt(length, 10)),
	)
}

func insufficientData(length uint64, readable int) error {
	return errors.From(
		bytebuffers.ErrInsufficientData,
		errors.WithMeta(errMetaPkgKey, errMetaPkgVal),
		errors.WithMeta(errMetaOpKey, errMetaOpRead),
		errors.WithMeta(errMetaLengthKey, strconv.FormatUint(length, 10)),
		errors.WithMeta(errMetaReadableKey, strconv.Itoa(readable)),
	)
}

func outOfBounds(offset int, length uint64, writerIndex int) error {
	return errors.From(
		bytebuffers.ErrOutOfBounds,
		errors.WithMeta(errMetaPkgKey, errMetaPkgVal),
		errors.WithMeta(errMetaOpKey, errMetaOpGet),
		errors.WithMeta(errMetaOffsetKey, strconv.Itoa(offset)),
		errors.WithMeta(errMetaLengthKey, strconv.FormatUint(length, 10)),
		errors.WithMeta(errMetaReadableKey, strconv.Itoa(writerIndex)),
	)
}
