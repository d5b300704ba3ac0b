package zone

// Stats is a point-in-time snapshot of a zone's storage accounting.
type Stats struct {
	// Slabs is the number of live backing slabs.
	Slabs int

	// Capacity is the total byte capacity across all live slabs.
	Capacity int

	// Free is the number of bytes still available in the head slab.
	// Leftover space in older slabs is unreachable and counts as used.
	Free int

	// Used is Capacity minus Free.
	Used int

	// Finalizers is the number of finalizers pending flush.
	Finalizers int

	// Grows counts slow-path slab allocations since construction.
	// It is not reset by Clear.
	Grows uint64
}

// Stats returns a snapshot of the zone's current storage accounting.
func (z *Zone) Stats() Stats {
	z.panicIfDestroyed()
	capacity := z.cl.capacity()
	return Stats{
		Slabs:      len(z.cl.slabs),
		Capacity:   capacity,
		Free:       z.cl.free,
		Used:       capacity - z.cl.free,
		Finalizers: z.fl.count,
		Grows:      z.grows,
	}
}
