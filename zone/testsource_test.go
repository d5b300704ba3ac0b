package zone

import "errors"

var errInjected = errors.New("injected source failure")

// countingSource is an instrumented Source for tests: it counts slab
// traffic, tracks outstanding slabs, and can be switched into a failing
// mode to exercise out-of-memory paths.
type countingSource struct {
	allocs    int
	frees     int
	live      int
	liveBytes int
	failing   bool
}

func (s *countingSource) Alloc(n int) ([]byte, error) {
	if s.failing {
		return nil, errInjected
	}
	s.allocs++
	s.live++
	s.liveBytes += n
	return make([]byte, n), nil
}

func (s *countingSource) Free(b []byte) {
	s.frees++
	s.live--
	s.liveBytes -= len(b)
}
