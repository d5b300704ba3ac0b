//go:build windows

package slab

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// Map allocates n writable bytes of committed virtual memory.
func Map(n int) ([]byte, error) {
	if n == 0 {
		return []byte{}, nil
	}
	addr, err := windows.VirtualAlloc(0, uintptr(n),
		windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), n), nil
}

// Unmap releases a region previously returned by Map.
func Unmap(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	return windows.VirtualFree(uintptr(unsafe.Pointer(&b[0])), 0, windows.MEM_RELEASE)
}
