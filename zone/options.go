package zone

// Option configures a zone at construction time.
type Option func(*Zone)

// WithSource makes the zone obtain slabs from s instead of the Go heap.
// Useful for instrumentation (counting outstanding slabs) and for failure
// injection in tests.
func WithSource(s Source) Option {
	return func(z *Zone) {
		z.cl.src = s
	}
}

// WithMappedSlabs backs the zone with anonymous memory mappings instead of
// the Go heap. Mapped slabs are returned to the operating system on Clear
// and Destroy rather than waiting for the garbage collector, and mapping
// failure surfaces as ErrOutOfMemory instead of aborting the process.
func WithMappedSlabs() Option {
	return WithSource(mappedSource{})
}
