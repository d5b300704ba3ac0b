package zone

// chunkList is a bump allocator over a sequence of slabs. The newest slab
// (the last element) is the only one that serves allocations; older slabs
// are retained solely so their memory can be reclaimed in bulk.
type chunkList struct {
	src Source

	// slabs[0] is the slab created at construction time. It survives clear()
	// so a recycled list starts with warm storage of the configured size.
	slabs [][]byte

	// free is the number of unused bytes at the tail of the head slab.
	// The bump cursor is len(head) - free.
	free int
}

// init allocates the initial slab of exactly chunkSize bytes.
func (cl *chunkList) init(chunkSize int) error {
	buf, err := cl.src.Alloc(chunkSize)
	if err != nil {
		return ErrOutOfMemory
	}
	cl.slabs = append(cl.slabs[:0], buf)
	cl.free = chunkSize
	return nil
}

// alloc carves size bytes from the head slab, growing the list when the
// head cannot satisfy the request. The fast path never requests memory.
func (cl *chunkList) alloc(size, chunkSize int) ([]byte, error) {
	if size <= cl.free {
		head := cl.slabs[len(cl.slabs)-1]
		off := len(head) - cl.free
		cl.free -= size
		return head[off : off+size : off+size], nil
	}
	return cl.allocSlow(size, chunkSize)
}

// allocSlow appends a new head slab and carves size bytes from its start.
// The new slab's capacity starts at chunkSize and doubles until it fits the
// request, so oversized single allocations get a slab of their own scale.
// On failure the list is left exactly as it was.
func (cl *chunkList) allocSlow(size, chunkSize int) ([]byte, error) {
	c := chunkSize
	for c < size {
		c *= 2
	}
	buf, err := cl.src.Alloc(c)
	if err != nil {
		return nil, ErrOutOfMemory
	}
	cl.slabs = append(cl.slabs, buf)
	cl.free = c - size
	return buf[:size:size], nil
}

// reserve guarantees the head slab has at least n free bytes without
// carving any of them.
func (cl *chunkList) reserve(n, chunkSize int) error {
	if n <= cl.free {
		return nil
	}
	c := chunkSize
	for c < n {
		c *= 2
	}
	buf, err := cl.src.Alloc(c)
	if err != nil {
		return ErrOutOfMemory
	}
	cl.slabs = append(cl.slabs, buf)
	cl.free = c
	return nil
}

// isEmpty reports whether nothing has been carved: a single slab with its
// full capacity still free.
func (cl *chunkList) isEmpty(chunkSize int) bool {
	return len(cl.slabs) == 1 && cl.free == chunkSize
}

// clear releases every slab except the original one and restores the
// original slab as an untouched head. It never allocates.
func (cl *chunkList) clear(chunkSize int) {
	for i := len(cl.slabs) - 1; i > 0; i-- {
		cl.src.Free(cl.slabs[i])
		cl.slabs[i] = nil
	}
	cl.slabs = cl.slabs[:1]
	cl.free = chunkSize
}

// destroy releases every slab, including the original one.
func (cl *chunkList) destroy() {
	for i := len(cl.slabs) - 1; i >= 0; i-- {
		cl.src.Free(cl.slabs[i])
		cl.slabs[i] = nil
	}
	cl.slabs = nil
	cl.free = 0
}

// capacity returns the total byte capacity across all live slabs.
func (cl *chunkList) capacity() int {
	total := 0
	for _, s := range cl.slabs {
		total += len(s)
	}
	return total
}
