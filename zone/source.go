package zone

import "github.com/joshuapare/zonekit/internal/slab"

// Source provides backing memory for zone slabs.
//
// Implementations:
//   - heapSource: Default source backed by the Go heap
//   - mappedSource: Page-backed source using anonymous mappings
//
// Every slice passed to Free is a slice previously returned by Alloc,
// unmodified. A Source must not retain references to freed slices.
type Source interface {
	// Alloc returns a slice of exactly n writable bytes.
	Alloc(n int) ([]byte, error)

	// Free releases a slice previously returned by Alloc.
	Free(b []byte)
}

// heapSource allocates slabs from the Go heap. Free is a no-op; the
// garbage collector reclaims slabs once the zone drops its references.
type heapSource struct{}

func (heapSource) Alloc(n int) ([]byte, error) {
	return make([]byte, n), nil
}

func (heapSource) Free([]byte) {}

// mappedSource allocates slabs via anonymous memory mappings. Unlike the
// heap source, mapping can genuinely fail under memory pressure, and
// freed slabs are returned to the operating system immediately.
type mappedSource struct{}

func (mappedSource) Alloc(n int) ([]byte, error) {
	return slab.Map(n)
}

func (mappedSource) Free(b []byte) {
	// Double-unmap is already a no-op at the slab layer.
	_ = slab.Unmap(b)
}

// Compile-time interface checks
var (
	_ Source = heapSource{}
	_ Source = mappedSource{}
)
