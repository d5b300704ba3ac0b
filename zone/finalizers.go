package zone

// Finalizer is a deferred cleanup callback registered against a zone.
// It runs when the zone is cleared or destroyed, before slab memory is
// reclaimed, and is invoked exactly once per registration.
type Finalizer func()

// minFinalizerCap is the backing capacity allocated on the first push.
const minFinalizerCap = 8

// finalizerList is a growable array of pending finalizers. Records are
// stored in registration order; only the flush direction is reversed.
type finalizerList struct {
	fns   []Finalizer // backing storage; len(fns) is the capacity
	count int         // pending records, always <= len(fns)
}

// push appends a finalizer, doubling the backing array when full.
func (fl *finalizerList) push(fn Finalizer) {
	if fl.count == len(fl.fns) {
		next := minFinalizerCap
		if fl.count > 0 {
			next = fl.count * 2
		}
		grown := make([]Finalizer, next)
		copy(grown, fl.fns)
		fl.fns = grown
	}
	fl.fns[fl.count] = fn
	fl.count++
}

// call invokes every pending finalizer, newest first. Entries are nilled
// out as they run so the referenced closures become collectable.
func (fl *finalizerList) call() {
	for i := fl.count - 1; i >= 0; i-- {
		fn := fl.fns[i]
		fl.fns[i] = nil
		fn()
	}
	fl.count = 0
}

// clear flushes pending finalizers but keeps the backing array for reuse.
func (fl *finalizerList) clear() {
	fl.call()
}

// destroy flushes pending finalizers and drops the backing array.
func (fl *finalizerList) destroy() {
	fl.call()
	fl.fns = nil
}
