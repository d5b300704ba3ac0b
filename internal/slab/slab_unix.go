//go:build unix

// Package slab provides platform-specific helpers for page-backed slab
// allocation via anonymous memory mappings.
package slab

import (
	"errors"

	"golang.org/x/sys/unix"
)

// Map allocates n writable bytes backed by an anonymous private mapping.
// The kernel rounds the mapping up to whole pages internally; the returned
// slice is exactly n bytes long.
func Map(n int) ([]byte, error) {
	if n == 0 {
		return []byte{}, nil
	}
	data, err := unix.Mmap(-1, 0, n, unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Unmap releases a mapping previously returned by Map.
func Unmap(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	err := unix.Munmap(b)
	if errors.Is(err, unix.EINVAL) {
		// Treat double-unmap as no-op for callers.
		return nil
	}
	return err
}
