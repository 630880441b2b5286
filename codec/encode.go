package codec

import "github.com/brickingsoft/wire/pkg/bytebuffers"

type Encoder[T any] interface {
	// Encode appends the wire form of message to buf. On error buf's writer index is unchanged.
	Encode(buf *bytebuffers.Buffer, message T) (err error)
}

type Codec[T any] interface {
	Decoder[T]
	Encoder[T]
}

// EncodeAll encodes messages in order and stops at the first failure.
func EncodeAll[T any](buf *bytebuffers.Buffer, encoder Encoder[T], messages ...T) (err error) {
	for _, message := range messages {
		if err = encoder.Encode(buf, message); err != nil {
			return
		}
	}
	return
}
