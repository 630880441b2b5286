package reference

import (
	"io"
	"reflect"
	"sync/atomic"
)

// Make
// 创建一个引用计数为 1 的指针，调用者即为第一个所有者。
func Make[E io.Closer](value E) *Pointer[E] {
	if reflect.ValueOf(value).IsNil() {
		panic("reference.Make: value is nil")
	}
	pointer := &Pointer[E]{value: value}
	pointer.count.Store(1)
	return pointer
}

// Pointer
// 共享所有权的指针，最后一个所有者 Close 时关闭 value。
type Pointer[E io.Closer] struct {
	value E
	count atomic.Int64
}

func (pointer *Pointer[E]) Value() E {
	return pointer.value
}

// Retain
// 增加一个所有者。
func (pointer *Pointer[E]) Retain() *Pointer[E] {
	pointer.count.Add(1)
	return pointer
}

func (pointer *Pointer[E]) Count() int64 {
	return pointer.count.Load()
}

// Unique
// 是否只有一个所有者，写时复制依据此判断。
func (pointer *Pointer[E]) Unique() bool {
	return pointer.count.Load() == 1
}

func (pointer *Pointer[E]) Close() error {
	if n := pointer.count.Add(-1); n == 0 {
		return pointer.value.Close()
	}
	return nil
}
