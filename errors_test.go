package wire_test

import (
	"net"
	"testing"

	"github.com/brickingsoft/wire"
	"github.com/brickingsoft/wire/codec"
	"github.com/brickingsoft/wire/pkg/bytebuffers"
	"github.com/brickingsoft/wire/pkg/http1"
	"github.com/brickingsoft/wire/pkg/sockets"
)

func TestClassify(t *testing.T) {
	field := codec.LengthField{Width: 1, Order: bytebuffers.BigEndian, Signed: true}

	_, err := codec.ReadMessage(bytebuffers.NewBufferFromBytes([]byte{3, 'a'}), field)
	if !wire.IsInsufficientData(err) || !wire.IsRetryable(err) || wire.IsFramingViolation(err) {
		t.Fatal("insufficient data:", err)
	}

	_, err = codec.ReadMessage(bytebuffers.NewBufferFromBytes([]byte{0xff}), field)
	if !wire.IsInvalidLength(err) || !wire.IsFramingViolation(err) || wire.IsRetryable(err) {
		t.Fatal("invalid length:", err)
	}

	err = codec.WriteMessage(bytebuffers.NewBuffer(), make([]byte, 200), field)
	if !wire.IsMessageTooLong(err) || !wire.IsFramingViolation(err) {
		t.Fatal("message too long:", err)
	}

	_, err = bytebuffers.NewBuffer().GetSlice(1, 1)
	if !wire.IsOutOfBounds(err) || wire.IsRetryable(err) {
		t.Fatal("out of bounds:", err)
	}

	_, err = sockets.ParseIP("nope", 80)
	if !wire.IsInvalidAddress(err) {
		t.Fatal("invalid address:", err)
	}
	_, err = sockets.FromPackedIP([]byte{1}, 80)
	if !wire.IsInvalidAddress(err) {
		t.Fatal("invalid address length:", err)
	}

	encoder, _ := http1.NewResponseEncoder()
	err = encoder.EncodeBody(bytebuffers.NewBuffer(), []byte("x"))
	if !wire.IsEncoderState(err) {
		t.Fatal("encoder state:", err)
	}
}

func TestClassifyOpError(t *testing.T) {
	_, err := codec.ReadMessage(bytebuffers.NewBuffer(), codec.LengthField{Width: 4})
	opErr := &net.OpError{Op: "read", Net: "tcp", Err: err}
	if !wire.IsInsufficientData(opErr) {
		t.Fatal("must look through *net.OpError:", opErr)
	}
}
