package codec

import "github.com/brickingsoft/wire/pkg/bytebuffers"

// Decoder
// 解析器。
// 泛型 T 是解析的结果。数据不足时返回 ok=false 且不移动读游标，等待更多数据后再次调用。
// 返回 err 表示数据本身无法解析，调用方应停止解析。
type Decoder[T any] interface {
	// Decode
	// 解析 buf 中可读的字节。
	// 返回 ok(是否解析到，即message是否为空)，message(消息)，err(错误，并停止解析)
	Decode(buf *bytebuffers.Buffer) (ok bool, message T, err error)
}

// DecodeAll
// 循环解析，直到数据不足或出错。
// 出错时返回已解析到的消息和错误。
func DecodeAll[T any](buf *bytebuffers.Buffer, decoder Decoder[T]) (messages []T, err error) {
	for {
		ok, message, decodeErr := decoder.Decode(buf)
		if decodeErr != nil {
			err = decodeErr
			return
		}
		if !ok {
			return
		}
		messages = append(messages, message)
	}
}
