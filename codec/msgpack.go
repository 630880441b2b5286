package codec

import (
	"github.com/brickingsoft/errors"
	"github.com/brickingsoft/wire/pkg/bytebuffers"
	"github.com/vmihailenco/msgpack/v5"
)

func NewMessagePackCodec[T any](field LengthField) *MessagePackCodec[T] {
	field.check()
	return &MessagePackCodec[T]{
		field: field,
	}
}

// MessagePackCodec
// 以 MessagePack 序列化 T，并放入长度前缀帧中。
type MessagePackCodec[T any] struct {
	field LengthField
}

func (codec *MessagePackCodec[T]) Encode(buf *bytebuffers.Buffer, message T) (err error) {
	err = WriteMessageFunc(buf, codec.field, func(buf *bytebuffers.Buffer) error {
		return msgpack.NewEncoder(buf).Encode(message)
	})
	if err != nil && !IsMessageTooLong(err) {
		err = errors.New(
			"msgpack encode failed",
			errors.WithMeta(errMetaPkgKey, errMetaPkgVal),
			errors.WithMeta(errMetaOpKey, errMetaOpWrite),
			errors.WithWrap(err),
		)
	}
	return
}

// Decode consumes a whole frame before unmarshalling, so a malformed payload does not stall the stream.
func (codec *MessagePackCodec[T]) Decode(buf *bytebuffers.Buffer) (ok bool, message T, err error) {
	frame, readErr := ReadMessage(buf, codec.field)
	if readErr != nil {
		if !bytebuffers.IsInsufficientData(readErr) {
			err = readErr
		}
		return
	}
	defer frame.Release()
	if err = msgpack.Unmarshal(frame.Bytes(), &message); err != nil {
		err = errors.New(
			"msgpack decode failed",
			errors.WithMeta(errMetaPkgKey, errMetaPkgVal),
			errors.WithMeta(errMetaOpKey, errMetaOpRead),
			errors.WithWrap(err),
		)
		return
	}
	ok = true
	return
}
