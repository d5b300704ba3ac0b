package zone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestZone_FastPathProgression tests that small allocations bump through
// the original slab without growing.
func TestZone_FastPathProgression(t *testing.T) {
	src := &countingSource{}
	z, err := New(64, WithSource(src))
	require.NoError(t, err, "New should succeed")

	_, err = z.Alloc(10)
	require.NoError(t, err)
	assert.Equal(t, 54, z.Stats().Free, "free should drop 64 -> 54")

	_, err = z.Alloc(10)
	require.NoError(t, err)
	assert.Equal(t, 44, z.Stats().Free, "free should drop 54 -> 44")

	assert.Equal(t, 1, z.Stats().Slabs, "both allocations fit the original slab")
	assert.Equal(t, 1, src.allocs, "fast path must not touch the source")
	assert.Zero(t, z.Stats().Grows)
}

// TestZone_GrowthDoubling tests that an oversized request grows the zone
// by one slab of doubled capacity.
func TestZone_GrowthDoubling(t *testing.T) {
	z, err := New(64)
	require.NoError(t, err)

	b, err := z.Alloc(100)
	require.NoError(t, err)
	require.Len(t, b, 100)

	st := z.Stats()
	assert.Equal(t, 2, st.Slabs, "growth should add exactly one slab")
	assert.Equal(t, 64+128, st.Capacity, "64 doubled once covers 100")
	assert.Equal(t, 28, st.Free, "new slab free should be 128 - 100")
	assert.Equal(t, uint64(1), st.Grows)
}

// TestZone_GrowthCapacity tests that the grown slab capacity is the
// smallest chunkSize * 2^k that fits the request.
func TestZone_GrowthCapacity(t *testing.T) {
	cases := []struct {
		size int
		want int // expected capacity of the grown slab
	}{
		{65, 128},
		{128, 128},
		{129, 256},
		{1000, 1024},
		{1025, 2048},
	}
	for _, tc := range cases {
		z, err := New(64)
		require.NoError(t, err)

		// Exhaust the original slab so any request takes the slow path.
		_, err = z.Alloc(64)
		require.NoError(t, err)

		before := z.Stats().Capacity
		_, err = z.Alloc(tc.size)
		require.NoError(t, err, "Alloc(%d) should succeed", tc.size)

		st := z.Stats()
		assert.Equal(t, tc.want, st.Capacity-before,
			"Alloc(%d) should grow by a %d-byte slab", tc.size, tc.want)
		assert.Equal(t, tc.want-tc.size, st.Free,
			"request should be carved from the new slab's start")
	}
}

// TestZone_FastPathExactFit tests that a request equal to the remaining
// free space does not grow.
func TestZone_FastPathExactFit(t *testing.T) {
	src := &countingSource{}
	z, err := New(64, WithSource(src))
	require.NoError(t, err)

	b, err := z.Alloc(64)
	require.NoError(t, err)
	require.Len(t, b, 64)

	st := z.Stats()
	assert.Equal(t, 1, st.Slabs)
	assert.Zero(t, st.Free)
	assert.Equal(t, 1, src.allocs, "exact fit must stay on the fast path")
}

// TestZone_OldSlabsNeverReused tests that leftover space in an old head
// never serves later requests.
func TestZone_OldSlabsNeverReused(t *testing.T) {
	z, err := New(64)
	require.NoError(t, err)

	_, err = z.Alloc(10) // original slab holds 54 free bytes
	require.NoError(t, err)
	_, err = z.Alloc(100) // forces a 128-byte head, 28 free
	require.NoError(t, err)

	// This would fit the original slab's leftover, but must grow instead.
	_, err = z.Alloc(54)
	require.NoError(t, err)
	assert.Equal(t, 3, z.Stats().Slabs, "old slab leftover must not be reused")
}

// TestZone_AllocationsDoNotOverlap tests that writes through one
// allocation never show through another.
func TestZone_AllocationsDoNotOverlap(t *testing.T) {
	z, err := New(128)
	require.NoError(t, err)

	var bufs [][]byte
	for i := 0; i < 32; i++ {
		b, err := z.Alloc(16)
		require.NoError(t, err)
		for j := range b {
			b[j] = byte(i)
		}
		bufs = append(bufs, b)
	}
	for i, b := range bufs {
		for j, v := range b {
			require.Equal(t, byte(i), v, "allocation %d overwritten at byte %d", i, j)
		}
	}
}

// TestZone_NoStraddle tests that a returned slice cannot reach past its
// request into neighboring allocations.
func TestZone_NoStraddle(t *testing.T) {
	z, err := New(64)
	require.NoError(t, err)

	b, err := z.Alloc(10)
	require.NoError(t, err)
	assert.Equal(t, len(b), cap(b), "slice capacity must not leak adjacent bytes")

	b2, err := z.Alloc(100)
	require.NoError(t, err)
	assert.Equal(t, len(b2), cap(b2))
}

// TestZone_AllocFailureLeavesStateIntact tests that a failed growth leaves
// the zone exactly as it was.
func TestZone_AllocFailureLeavesStateIntact(t *testing.T) {
	src := &countingSource{}
	z, err := New(64, WithSource(src))
	require.NoError(t, err)

	_, err = z.Alloc(10)
	require.NoError(t, err)
	before := z.Stats()

	src.failing = true
	_, err = z.Alloc(1000)
	require.ErrorIs(t, err, ErrOutOfMemory, "growth failure must surface ErrOutOfMemory")
	assert.Equal(t, before, z.Stats(), "failed growth must not mutate the zone")

	// The zone stays usable: fast-path requests still succeed.
	src.failing = false
	_, err = z.Alloc(10)
	require.NoError(t, err)
	assert.Equal(t, 44, z.Stats().Free)
}

// TestZone_ZeroByteAlloc tests the zero-size edge case.
func TestZone_ZeroByteAlloc(t *testing.T) {
	z, err := New(64)
	require.NoError(t, err)

	b, err := z.Alloc(0)
	require.NoError(t, err)
	assert.Empty(t, b)
	assert.Equal(t, 64, z.Stats().Free, "zero-size request consumes nothing")
}

// TestZone_NegativeSize tests size validation.
func TestZone_NegativeSize(t *testing.T) {
	z, err := New(64)
	require.NoError(t, err)

	_, err = z.Alloc(-1)
	assert.ErrorIs(t, err, ErrSizeInvalid)
	assert.ErrorIs(t, z.Reserve(-1), ErrSizeInvalid)
}

// TestZone_Reserve tests that Reserve grows without carving.
func TestZone_Reserve(t *testing.T) {
	src := &countingSource{}
	z, err := New(64, WithSource(src))
	require.NoError(t, err)

	// Within current free space: no-op.
	require.NoError(t, z.Reserve(64))
	assert.Equal(t, 1, src.allocs)

	require.NoError(t, z.Reserve(100))
	st := z.Stats()
	assert.Equal(t, 2, st.Slabs)
	assert.Equal(t, 128, st.Free, "reserved slab must be fully free")
	assert.Equal(t, uint64(1), st.Grows)

	// The reserved space now serves requests on the fast path.
	_, err = z.Alloc(100)
	require.NoError(t, err)
	assert.Equal(t, 2, src.allocs)

	// Failed reservation leaves the zone intact.
	src.failing = true
	before := z.Stats()
	require.ErrorIs(t, z.Reserve(10000), ErrOutOfMemory)
	assert.Equal(t, before, z.Stats())
}
