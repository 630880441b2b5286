package wire

import (
	"errors"
	"net"

	"github.com/brickingsoft/wire/codec"
	"github.com/brickingsoft/wire/pkg/bytebuffers"
	"github.com/brickingsoft/wire/pkg/http1"
	"github.com/brickingsoft/wire/pkg/sockets"
)

var (
	ErrOutOfBounds          = bytebuffers.ErrOutOfBounds
	ErrInsufficientData     = bytebuffers.ErrInsufficientData
	ErrTooLarge             = bytebuffers.ErrTooLarge
	ErrMessageTooLong       = codec.ErrMessageTooLong
	ErrInvalidLength        = codec.ErrInvalidLength
	ErrInvalidAddressString = sockets.ErrInvalidAddressString
	ErrInvalidAddressLength = sockets.ErrInvalidAddressLength
	ErrUnixPathTooLong      = sockets.ErrUnixPathTooLong
	ErrUnsupportedFamily    = sockets.ErrUnsupportedFamily
	ErrInvalidHeader        = http1.ErrInvalidHeader
	ErrEncoderState         = http1.ErrEncoderState
)

// unwrapOpErr looks through the *net.OpError a socket layer wraps errors in.
func unwrapOpErr(err error) error {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return opErr.Err
	}
	return err
}

// IsOutOfBounds reports a bounds violation, a programming error that must not be retried.
func IsOutOfBounds(err error) bool {
	return bytebuffers.IsOutOfBounds(unwrapOpErr(err))
}

// IsInsufficientData reports that more bytes are needed. The read position is unchanged,
// so the call can be retried once more data arrives.
func IsInsufficientData(err error) bool {
	return bytebuffers.IsInsufficientData(unwrapOpErr(err))
}

func IsTooLarge(err error) bool {
	return bytebuffers.IsTooLarge(unwrapOpErr(err))
}

func IsMessageTooLong(err error) bool {
	return codec.IsMessageTooLong(unwrapOpErr(err))
}

func IsInvalidLength(err error) bool {
	return codec.IsInvalidLength(unwrapOpErr(err))
}

// IsFramingViolation reports a length prefix that cannot be represented or is negative.
// The stream can no longer be trusted and the connection should be closed.
func IsFramingViolation(err error) bool {
	err = unwrapOpErr(err)
	return codec.IsMessageTooLong(err) || codec.IsInvalidLength(err)
}

// IsInvalidAddress reports malformed address input of any kind.
func IsInvalidAddress(err error) bool {
	err = unwrapOpErr(err)
	return sockets.IsInvalidAddressString(err) ||
		sockets.IsInvalidAddressLength(err) ||
		sockets.IsUnixPathTooLong(err)
}

func IsUnsupportedFamily(err error) bool {
	return sockets.IsUnsupportedFamily(unwrapOpErr(err))
}

func IsInvalidHeader(err error) bool {
	return http1.IsInvalidHeader(unwrapOpErr(err))
}

func IsEncoderState(err error) bool {
	return http1.IsEncoderState(unwrapOpErr(err))
}

// IsRetryable reports whether the same call may succeed later without any change of input.
func IsRetryable(err error) bool {
	return IsInsufficientData(err)
}
