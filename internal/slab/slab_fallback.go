//go:build !unix && !windows

// Package slab provides platform-specific helpers for page-backed slab
// allocation via anonymous memory mappings.
package slab

// Map falls back to heap slices when memory mapping is not available.
func Map(n int) ([]byte, error) {
	return make([]byte, n), nil
}

// Unmap is a no-op in the fallback; the garbage collector reclaims slabs.
func Unmap([]byte) error {
	return nil
}
