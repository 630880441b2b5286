package bytebuffers

import (
	"cmp"
	"math/bits"
	"slices"
	"sync"
	"sync/atomic"
)

const (
	poolMinShift = 6
	poolClasses  = 20

	poolMinSize = 1 << poolMinShift
	poolMaxSize = 1 << (poolMinShift + poolClasses - 1)

	poolCalibrateAfter = 42000
	poolKeepRatio      = 0.95
)

var defaultPool BufferPool

// Get acquires an empty Buffer from the default pool.
func Get() *Buffer { return defaultPool.Get() }

// Put returns buf to the default pool. buf must not be used afterwards.
func Put(buf *Buffer) { defaultPool.Put(buf) }

// BufferPool
// 根据放回时的数据量自动校准默认容量与可缓存的最大容量。
// 放回的 Buffer 若仍与其它视图共享 Storage，后续写入会先复制，因此复用是安全的。
type BufferPool struct {
	histogram   [poolClasses]atomic.Uint64
	calibrating atomic.Bool

	defaultSize atomic.Uint64
	retainSize  atomic.Uint64

	pool sync.Pool
}

func (p *BufferPool) Get() *Buffer {
	if v := p.pool.Get(); v != nil {
		return v.(*Buffer)
	}
	size := int(p.defaultSize.Load())
	if size == 0 {
		size = poolMinSize
	}
	return NewBufferWithSize(size)
}

func (p *BufferPool) Put(buf *Buffer) {
	if buf == nil {
		return
	}
	if buf.Cap() > poolMaxSize {
		_ = buf.Release()
		return
	}
	if p.histogram[classOf(buf.WriterIndex())].Add(1) > poolCalibrateAfter {
		p.calibrate()
	}
	if retain := int(p.retainSize.Load()); retain != 0 && buf.Cap() > retain {
		_ = buf.Release()
		return
	}
	buf.Reset()
	p.pool.Put(buf)
}

// classOf maps a size to its power of two class, 64 bytes being class 0.
func classOf(n int) int {
	if n <= poolMinSize {
		return 0
	}
	class := bits.Len(uint(n-1) >> poolMinShift)
	return min(class, poolClasses-1)
}

// calibrate picks the most used class as the default size and retains
// buffers up to the largest class needed to cover poolKeepRatio of the puts.
func (p *BufferPool) calibrate() {
	if !p.calibrating.CompareAndSwap(false, true) {
		return
	}
	defer p.calibrating.Store(false)

	type usage struct {
		size  uint64
		count uint64
	}
	usages := make([]usage, poolClasses)
	var total uint64
	for class := range usages {
		count := p.histogram[class].Swap(0)
		usages[class] = usage{size: poolMinSize << class, count: count}
		total += count
	}
	slices.SortFunc(usages, func(a, b usage) int {
		return cmp.Compare(b.count, a.count)
	})

	defaultSize := usages[0].size
	retain := defaultSize
	limit := uint64(float64(total) * poolKeepRatio)
	var covered uint64
	for _, u := range usages {
		if covered > limit {
			break
		}
		covered += u.count
		retain = max(retain, u.size)
	}

	p.defaultSize.Store(defaultSize)
	p.retainSize.Store(retain)
}
