package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/zonekit/cmd/zonectl/logger"
	"github.com/joshuapare/zonekit/zone"
)

var (
	stressChunkSize int
	stressBatches   int
	stressOps       int
	stressMaxAlloc  int
	stressFinEvery  int
	stressSeed      int64
	stressMapped    bool
)

func init() {
	cmd := newStressCmd()
	cmd.Flags().IntVar(&stressChunkSize, "chunk-size", zone.DefaultChunkSize, "Default slab size in bytes")
	cmd.Flags().IntVar(&stressBatches, "batches", 100, "Number of batches (zone is cleared between batches)")
	cmd.Flags().IntVar(&stressOps, "ops", 10000, "Allocations per batch")
	cmd.Flags().IntVar(&stressMaxAlloc, "max-alloc", 512, "Maximum allocation size in bytes")
	cmd.Flags().IntVar(&stressFinEvery, "finalizer-every", 16, "Register a finalizer every N allocations (0 disables)")
	cmd.Flags().Int64Var(&stressSeed, "seed", 1, "PRNG seed for the workload")
	cmd.Flags().BoolVar(&stressMapped, "mmap", false, "Back the zone with anonymous memory mappings")
	rootCmd.AddCommand(cmd)
}

func newStressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stress",
		Short: "Run a randomized allocation workload against a zone",
		Long: `The stress command drives a zone through repeated batches of
randomized allocations, registering finalizers along the way and clearing
the zone between batches. It reports slab growth, byte throughput, and
finalizer traffic.

Example:
  zonectl stress --chunk-size 65536 --batches 50 --ops 20000
  zonectl stress --mmap --max-alloc 4096 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := stressConfig{
				ChunkSize:      stressChunkSize,
				Batches:        stressBatches,
				Ops:            stressOps,
				MaxAlloc:       stressMaxAlloc,
				FinalizerEvery: stressFinEvery,
				Seed:           stressSeed,
				Mapped:         stressMapped,
			}
			res, err := runStress(cfg)
			if err != nil {
				return err
			}
			return reportStress(res)
		},
	}
}

type stressConfig struct {
	ChunkSize      int
	Batches        int
	Ops            int
	MaxAlloc       int
	FinalizerEvery int
	Seed           int64
	Mapped         bool
}

type stressResult struct {
	Config     stressConfig
	Allocs     int
	Bytes      int64
	Registered int
	Finalized  int
	PeakSlabs  int
	PeakBytes  int
	Grows      uint64
}

func runStress(cfg stressConfig) (*stressResult, error) {
	if cfg.MaxAlloc < 1 {
		return nil, fmt.Errorf("max-alloc must be at least 1, got %d", cfg.MaxAlloc)
	}

	var opts []zone.Option
	if cfg.Mapped {
		opts = append(opts, zone.WithMappedSlabs())
	}
	z, err := zone.New(cfg.ChunkSize, opts...)
	if err != nil {
		return nil, err
	}
	defer z.Release()

	rng := rand.New(rand.NewSource(cfg.Seed))
	res := &stressResult{Config: cfg}

	for batch := 0; batch < cfg.Batches; batch++ {
		for op := 0; op < cfg.Ops; op++ {
			size := 1 + rng.Intn(cfg.MaxAlloc)
			buf, err := z.Alloc(size)
			if err != nil {
				return nil, fmt.Errorf("batch %d op %d: %w", batch, op, err)
			}
			// Touch both ends so mapped pages are actually committed.
			buf[0] = byte(op)
			buf[len(buf)-1] = byte(op)
			res.Allocs++
			res.Bytes += int64(size)

			if cfg.FinalizerEvery > 0 && op%cfg.FinalizerEvery == 0 {
				z.PushFinalizer(func() { res.Finalized++ })
				res.Registered++
			}
		}

		st := z.Stats()
		if st.Slabs > res.PeakSlabs {
			res.PeakSlabs = st.Slabs
		}
		if st.Capacity > res.PeakBytes {
			res.PeakBytes = st.Capacity
		}
		res.Grows = st.Grows

		logger.L.Debug("batch complete",
			"batch", batch,
			"slabs", st.Slabs,
			"capacity", st.Capacity,
			"finalizers", st.Finalizers)

		z.Clear()
		if !z.IsEmpty() {
			return nil, fmt.Errorf("batch %d: zone not empty after clear", batch)
		}
	}

	if res.Finalized != res.Registered {
		return nil, fmt.Errorf("finalizer mismatch: registered %d, finalized %d",
			res.Registered, res.Finalized)
	}
	return res, nil
}

func reportStress(res *stressResult) error {
	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	printInfo("stress complete\n")
	printInfo("  allocations:   %d (%d bytes)\n", res.Allocs, res.Bytes)
	printInfo("  finalizers:    %d registered, %d flushed\n", res.Registered, res.Finalized)
	printInfo("  peak slabs:    %d (%d bytes capacity)\n", res.PeakSlabs, res.PeakBytes)
	printInfo("  slab growths:  %d\n", res.Grows)
	return nil
}
