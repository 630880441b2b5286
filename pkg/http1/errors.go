package http1

import (
	"strconv"

	"github.com/brickingsoft/errors"
)

var (
	ErrInvalidHeader  = errors.Define("invalid header field")
	ErrInvalidStatus  = errors.Define("invalid status code")
	ErrInvalidVersion = errors.Define("invalid protocol version")
	ErrEncoderState   = errors.Define("encoder is not in a state accepting this call")
	ErrContentLength  = errors.Define("body length does not match content-length")
)

func IsInvalidHeader(err error) bool {
	return errors.Is(err, ErrInvalidHeader)
}

func IsEncoderState(err error) bool {
	return errors.Is(err, ErrEncoderState)
}

func IsContentLength(err error) bool {
	return errors.Is(err, ErrContentLength)
}

const (
	errMetaPkgKey = "pkg"
	errMetaPkgVal = "http1"
)

const (
	errMetaOpKey       = "op"
	errMetaOpHead      = "head"
	errMetaOpBody      = "body"
	errMetaOpEnd       = "end"
	errMetaOpVersion   = "version"
	errMetaNameKey     = "name"
	errMetaStatusKey   = "status"
	errMetaStateKey    = "state"
	errMetaVersionKey  = "version"
	errMetaExpectedKey = "expected"
	errMetaActualKey   = "actual"
)

func invalidHeader(op string, name string) error {
	return errors.From(
		ErrInvalidHeader,
		errors.WithMeta(errMetaPkgKey, errMetaPkgVal),
		errors.WithMeta(errMetaOpKey, op),
		errors.WithMeta(errMetaNameKey, strconv.Quote(name)),
	)
}

func invalidStatus(status int) error {
	return errors.From(
		ErrInvalidStatus,
		errors.WithMeta(errMetaPkgKey, errMetaPkgVal),
		errors.WithMeta(errMetaOpKey, errMetaOpHead),
		errors.WithMeta(errMetaStatusKey, strconv.Itoa(status)),
	)
}

func invalidVersion(version string) error {
	return errors.From(
		ErrInvalidVersion,
		errors.WithMeta(errMetaPkgKey, errMetaPkgVal),
		errors.WithMeta(errMetaOpKey, errMetaOpVersion),
		errors.WithMeta(errMetaVersionKey, version),
	)
}

func encoderState(op string, state encoderStatus) error {
	return errors.From(
		ErrEncoderState,
		errors.WithMeta(errMetaPkgKey, errMetaPkgVal),
		errors.WithMeta(errMetaOpKey, op),
		errors.WithMeta(errMetaStateKey, state.String()),
	)
}

func contentLengthMismatch(op string, expected int64, actual int64) error {
	return errors.From(
		ErrContentLength,
		errors.WithMeta(errMetaPkgKey, errMetaPkgVal),
		errors.WithMeta(errMetaOpKey, op),
		errors.WithMeta(errMetaExpectedKey, strconv.FormatInt(expected, 10)),
		errors.WithMeta(errMetaActualKey, strconv.FormatInt(actual, 10)),
	)
}
