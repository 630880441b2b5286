package codec

import (
	"github.com/brickingsoft/wire/pkg/bytebuffers"
)

func NewLengthFieldCodec(field LengthField) *LengthFieldCodec {
	field.check()
	return &LengthFieldCodec{
		field: field,
	}
}

// LengthFieldCodec
// 长度前缀编解码器。解码结果与输入共享底层存储，不复制负载。
type LengthFieldCodec struct {
	field LengthField
}

func (codec *LengthFieldCodec) Field() LengthField {
	return codec.field
}

func (codec *LengthFieldCodec) Decode(buf *bytebuffers.Buffer) (ok bool, message *bytebuffers.Buffer, err error) {
	message, err = ReadMessage(buf, codec.field)
	if err != nil {
		if bytebuffers.IsInsufficientData(err) {
			// not full
			err = nil
		}
		return
	}
	ok = true
	return
}

func (codec *LengthFieldCodec) Encode(buf *bytebuffers.Buffer, message *bytebuffers.Buffer) (err error) {
	err = WriteMessage(buf, message.Bytes(), codec.field)
	return
}
