// Package zone implements a region allocator (memory zone) with deferred
// finalization.
//
// # Overview
//
// A zone serves many small, variable-sized allocations by bumping a cursor
// through large backing slabs. Individual allocations are never released;
// the whole region is reclaimed at once by Clear or Destroy. This makes a
// zone a good fit for batch-shaped work (decode a message, serve a request,
// build a tree) where everything produced in the batch dies together.
//
// Because objects built inside a zone may hold resources that are not plain
// memory (open handles, reference counts), a zone also carries a finalizer
// queue: callbacks registered with PushFinalizer run when the zone is
// cleared or destroyed, in reverse registration order, before slab memory
// is reclaimed.
//
// # Allocation Strategy
//
//   - Fast path: requests that fit the head slab's free space advance the
//     bump cursor. No memory is requested and the call cannot fail.
//   - Slow path: larger requests allocate a fresh head slab. Its capacity
//     starts at the configured chunk size and doubles until the request
//     fits, so a single oversized allocation gets a slab of its own scale.
//   - Older slabs are never reused for new requests. They are retained
//     only so Clear and Destroy can release them in bulk.
//
// Returned slices always lie within a single slab and carry no alignment
// guarantee beyond byte addressing.
//
// # Lifecycle
//
//	z, err := zone.New(64 * 1024)
//	if err != nil {
//	    return err
//	}
//	defer z.Release()
//
//	buf, err := z.Alloc(128)
//	if err != nil {
//	    return err
//	}
//	z.PushFinalizer(func() { handle.Close() })
//
//	// ... batch of work ...
//
//	z.Clear() // finalizers run newest-first, storage resets for reuse
//
// Clear restores the zone to its just-constructed state while keeping the
// original slab warm, which makes a long-lived zone cheap to recycle
// across batches. Destroy tears the zone down for good; Release is a
// nil-tolerant Destroy for independently owned zones.
//
// # Slab Sources
//
// Slabs come from a pluggable Source. The default source uses the Go heap.
// WithMappedSlabs selects anonymous memory mappings instead: slabs then
// return to the operating system as soon as they are freed, and mapping
// failure is reported as ErrOutOfMemory rather than aborting the process.
// WithSource accepts custom sources, which is how the tests count
// outstanding slabs and inject allocation failures.
//
// # Error Handling
//
// The only runtime failure is ErrOutOfMemory, raised when the slab source
// cannot provide backing memory. A failed Alloc, Reserve, or New leaves
// prior state fully intact: existing slabs and pending finalizers are
// untouched and the zone remains usable.
//
// # Thread Safety
//
// Zones are not thread-safe. Confine each zone to a single goroutine or
// serialize access externally.
package zone
