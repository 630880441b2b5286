package bytebuffers_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/brickingsoft/wire/pkg/bytebuffers"
)

func TestGet(t *testing.T) {
	buf := bytebuffers.Get()
	buf.WriteBytes(bytes.Repeat([]byte("1"), os.Getpagesize()))
	bytebuffers.Put(buf)
	buf = bytebuffers.Get()
	if buf.Len() != 0 {
		t.Fatal("pooled buffer must be empty:", buf)
	}
	t.Log(buf.Cap())
	bytebuffers.Put(buf)
}

func TestPut_SharedStorage(t *testing.T) {
	pool := &bytebuffers.BufferPool{}
	buf := pool.Get()
	buf.WriteBytes([]byte("message"))
	view, _ := buf.GetSlice(0, 7)
	pool.Put(buf)

	reused := pool.Get()
	reused.WriteBytes([]byte("MESSAGE"))
	if string(view.Bytes()) != "message" {
		t.Fatal("view changed by reuse:", string(view.Bytes()))
	}
	pool.Put(reused)
}

func BenchmarkBufferPool(b *testing.B) {
	data := bytes.Repeat([]byte("a"), 512)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf := bytebuffers.Get()
		buf.WriteBytes(data)
		bytebuffers.Put(buf)
	}
}
