package bytebuffers

// Storage
// 连续且可增长的内存区域，不维护游标。
// 偏移量由 Buffer 预先校验，Storage 只负责越界报错和扩容。
type Storage struct {
	b []byte
}

func NewStorage(capacity int) *Storage {
	if capacity < 0 {
		capacity = 0
	}
	return &Storage{b: make([]byte, capacity)}
}

func (s *Storage) Cap() int { return len(s.b) }

// Bytes returns the whole region, including bytes past any writer index.
func (s *Storage) Bytes() []byte { return s.b }

func (s *Storage) Read(offset int, length int) (p []byte, err error) {
	if offset < 0 || length < 0 || offset > len(s.b)-length {
		err = outOfBounds(errMetaOpStorage, offset, length, len(s.b))
		return
	}
	p = s.b[offset : offset+length : offset+length]
	return
}

func (s *Storage) Write(offset int, p []byte) (err error) {
	if offset < 0 {
		err = outOfBounds(errMetaOpStorage, offset, len(p), len(s.b))
		return
	}
	if len(p) > maxInt-offset {
		err = tooLarge(len(s.b), maxInt)
		return
	}
	if end := offset + len(p); end > len(s.b) {
		if err = s.GrowTo(end); err != nil {
			return
		}
	}
	copy(s.b[offset:], p)
	return
}

// GrowTo reallocates the region so that it holds at least capacity bytes.
// Existing bytes are copied; the new region is at least twice the old one.
func (s *Storage) GrowTo(capacity int) (err error) {
	if capacity <= len(s.b) {
		return
	}
	adjusted, adjustErr := growCapacity(len(s.b), capacity)
	if adjustErr != nil {
		err = adjustErr
		return
	}
	defer func() {
		if recover() != nil {
			err = tooLarge(len(s.b), adjusted)
		}
	}()
	nb := make([]byte, adjusted)
	copy(nb, s.b)
	s.b = nb
	return
}

// Close drops the region. The backing array is left to the runtime because
// slices previously handed out by Bytes may still reference it.
func (s *Storage) Close() error {
	s.b = nil
	return nil
}

func growCapacity(current int, requested int) (n int, err error) {
	if requested < 0 {
		err = tooLarge(current, requested)
		return
	}
	n = requested
	if current > maxInt/2 {
		if requested > current {
			n = maxInt
		}
		return
	}
	if doubled := current * 2; doubled > n {
		n = doubled
	}
	return
}
