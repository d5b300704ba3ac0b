package zone

// DefaultChunkSize is the slab size used when New is given a non-positive
// chunk size (8 KiB).
const DefaultChunkSize = 8 * 1024

// Zone is a region allocator: it serves many small variable-sized
// allocations by bumping a cursor through large slabs, and defers all
// reclamation to Clear or Destroy. A zone also carries a queue of
// finalizers so objects built inside it can release non-memory resources
// when the region goes away.
//
// A Zone is not safe for concurrent use. Confine it to one goroutine or
// serialize access externally.
type Zone struct {
	cl        chunkList
	fl        finalizerList
	chunkSize int
	grows     uint64
}

// New creates a zone with the given default slab size and allocates its
// first slab eagerly. If chunkSize <= 0, DefaultChunkSize is used.
func New(chunkSize int, opts ...Option) (*Zone, error) {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	z := &Zone{chunkSize: chunkSize}
	z.cl.src = heapSource{}
	for _, opt := range opts {
		opt(z)
	}
	if err := z.cl.init(chunkSize); err != nil {
		return nil, err
	}
	return z, nil
}

// Alloc returns size bytes carved from the zone. The slice stays valid
// until the next Clear or Destroy and must never be freed individually.
// The returned bytes always lie within a single slab.
func (z *Zone) Alloc(size int) ([]byte, error) {
	z.panicIfDestroyed()
	if size < 0 {
		return nil, ErrSizeInvalid
	}
	slow := size > z.cl.free
	b, err := z.cl.alloc(size, z.chunkSize)
	if err == nil && slow {
		z.grows++
	}
	return b, err
}

// Dup copies b into the zone and returns the zone-owned copy.
func (z *Zone) Dup(b []byte) ([]byte, error) {
	d, err := z.Alloc(len(b))
	if err != nil {
		return nil, err
	}
	copy(d, b)
	return d, nil
}

// DupString copies s into the zone and returns the zone-owned bytes.
func (z *Zone) DupString(s string) ([]byte, error) {
	d, err := z.Alloc(len(s))
	if err != nil {
		return nil, err
	}
	copy(d, s)
	return d, nil
}

// Reserve ensures the next Alloc of up to n bytes takes the fast path,
// growing the zone by one slab if the current head cannot fit n bytes.
func (z *Zone) Reserve(n int) error {
	z.panicIfDestroyed()
	if n < 0 {
		return ErrSizeInvalid
	}
	slow := n > z.cl.free
	if err := z.cl.reserve(n, z.chunkSize); err != nil {
		return err
	}
	if slow {
		z.grows++
	}
	return nil
}

// PushFinalizer registers fn to run on the next Clear or Destroy.
// Finalizers run in reverse registration order, matching the nesting of
// objects built later from memory allocated later. The zone never owns
// the resources fn refers to; it only delivers the notification.
func (z *Zone) PushFinalizer(fn Finalizer) {
	z.panicIfDestroyed()
	z.fl.push(fn)
}

// IsEmpty reports whether the zone is in its just-constructed state:
// nothing carved from the original slab, no extra slabs, and no pending
// finalizers.
func (z *Zone) IsEmpty() bool {
	z.panicIfDestroyed()
	return z.cl.isEmpty(z.chunkSize) && z.fl.count == 0
}

// Clear flushes pending finalizers (newest first), releases every slab
// except the original one, and restores the original slab to full
// capacity. The zone is then ready for a new batch of work without any
// fresh allocation.
func (z *Zone) Clear() {
	z.panicIfDestroyed()
	z.fl.clear()
	z.cl.clear(z.chunkSize)
}

// Destroy flushes pending finalizers, drops the finalizer backing array,
// and releases every slab. The zone is unusable afterwards; any further
// operation panics. Use Destroy for zones embedded in longer-lived
// structures, Release for independently owned ones.
func (z *Zone) Destroy() {
	z.panicIfDestroyed()
	z.fl.destroy()
	z.cl.destroy()
}

// Release tears down the zone like Destroy but tolerates a nil receiver,
// so callers can unconditionally release an optional zone.
func (z *Zone) Release() {
	if z == nil {
		return
	}
	z.Destroy()
}

func (z *Zone) panicIfDestroyed() {
	if z.cl.slabs == nil {
		panic("zone: use after Destroy()")
	}
}
