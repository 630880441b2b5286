package codec_test

import (
	"bytes"
	"testing"

	"github.com/brickingsoft/wire/codec"
	"github.com/brickingsoft/wire/pkg/bytebuffers"
)

func TestFixedCodec(t *testing.T) {
	c := codec.NewFixedCodec(4)
	buf := bytebuffers.NewBuffer()
	if err := codec.EncodeAll[[]byte](buf, c, []byte("ab"), []byte("abcdef")); err != nil {
		t.Fatal(err)
	}
	if want := []byte{'a', 'b', 0, 0, 'a', 'b', 'c', 'd'}; !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("got % x, want % x", buf.Bytes(), want)
	}
	buf.WriteBytes([]byte("xy"))
	messages, err := codec.DecodeAll[[]byte](buf, c)
	if err != nil {
		t.Fatal(err)
	}
	if len(messages) != 2 || string(messages[1]) != "abcd" {
		t.Fatal(messages)
	}
	if buf.Len() != 2 {
		t.Fatal("partial frame must stay in the buffer:", buf)
	}
}

func TestLengthFieldCodec(t *testing.T) {
	c := codec.NewLengthFieldCodec(codec.LengthField{Width: 2, Order: bytebuffers.BigEndian})
	buf := bytebuffers.NewBuffer()
	for _, s := range []string{"one", "two", "three"} {
		if err := c.Encode(buf, bytebuffers.NewBufferFromString(s)); err != nil {
			t.Fatal(err)
		}
	}
	// a truncated frame at the end
	buf.WriteBytes([]byte{0, 9, 'x'})

	messages, err := codec.DecodeAll[*bytebuffers.Buffer](buf, c)
	if err != nil {
		t.Fatal(err)
	}
	if len(messages) != 3 {
		t.Fatal("decoded:", len(messages))
	}
	for i, s := range []string{"one", "two", "three"} {
		if string(messages[i].Bytes()) != s {
			t.Errorf("message %d: got %q, want %q", i, messages[i].Bytes(), s)
		}
	}
	if buf.Len() != 3 {
		t.Fatal("partial frame must stay in the buffer:", buf)
	}
}

func TestLengthFieldCodec_Invalid(t *testing.T) {
	c := codec.NewLengthFieldCodec(codec.LengthField{Width: 1, Order: bytebuffers.BigEndian, Signed: true})
	buf := bytebuffers.NewBufferFromBytes([]byte{1, 'a', 0x80})
	messages, err := codec.DecodeAll[*bytebuffers.Buffer](buf, c)
	if !codec.IsInvalidLength(err) {
		t.Fatal("expected invalid length, got", err)
	}
	if len(messages) != 1 {
		t.Fatal("messages before the failure must be returned:", len(messages))
	}
}

type Point struct {
	X     int    `msgpack:"x"`
	Y     int    `msgpack:"y"`
	Label string `msgpack:"label"`
}

func TestMessagePackCodec(t *testing.T) {
	c := codec.NewMessagePackCodec[Point](codec.LengthField{Width: 4, Order: bytebuffers.LittleEndian})
	buf := bytebuffers.NewBuffer()
	points := []Point{{1, 2, "a"}, {-3, 4, "b"}, {}}
	if err := codec.EncodeAll[Point](buf, c, points...); err != nil {
		t.Fatal(err)
	}
	decoded, err := codec.DecodeAll[Point](buf, c)
	if err != nil {
		t.Fatal(err)
	}
	if len(decoded) != len(points) {
		t.Fatal("decoded:", len(decoded))
	}
	for i := range points {
		if decoded[i] != points[i] {
			t.Errorf("point %d: got %+v, want %+v", i, decoded[i], points[i])
		}
	}
}

func TestMessagePackCodec_TooLong(t *testing.T) {
	c := codec.NewMessagePackCodec[string](codec.LengthField{Width: 1, Order: bytebuffers.BigEndian})
	buf := bytebuffers.NewBuffer()
	err := c.Encode(buf, string(bytes.Repeat([]byte("x"), 300)))
	if !codec.IsMessageTooLong(err) {
		t.Fatal("expected message too long, got", err)
	}
	if buf.WriterIndex() != 0 {
		t.Fatal("buffer modified on failure")
	}
}

func TestMessagePackCodec_Malformed(t *testing.T) {
	c := codec.NewMessagePackCodec[Point](codec.LengthField{Width: 1, Order: bytebuffers.BigEndian})
	buf := bytebuffers.NewBuffer()
	_ = codec.WriteMessage(buf, []byte{0xc1}, codec.LengthField{Width: 1, Order: bytebuffers.BigEndian})
	ok, _, err := c.Decode(buf)
	if ok || err == nil {
		t.Fatal("expected decode failure")
	}
	if buf.Len() != 0 {
		t.Fatal("malformed frame must be consumed")
	}
	if buf.Shared() {
		t.Fatal("malformed frame must release its view of the storage")
	}
}
