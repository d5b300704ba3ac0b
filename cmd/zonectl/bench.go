package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/joshuapare/zonekit/zone"
)

var (
	benchChunkSize int
	benchOps       int
	benchSize      int
	benchMapped    bool
)

func init() {
	cmd := newBenchCmd()
	cmd.Flags().IntVar(&benchChunkSize, "chunk-size", zone.DefaultChunkSize, "Default slab size in bytes")
	cmd.Flags().IntVar(&benchOps, "ops", 1_000_000, "Allocations to time")
	cmd.Flags().IntVar(&benchSize, "size", 48, "Allocation size in bytes")
	cmd.Flags().BoolVar(&benchMapped, "mmap", false, "Back the zone with anonymous memory mappings")
	rootCmd.AddCommand(cmd)
}

func newBenchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bench",
		Short: "Time fast-path allocation throughput",
		Long: `The bench command times a tight loop of fixed-size allocations,
clearing the zone whenever the head slab runs low so the measurement stays
on the bump path.

Example:
  zonectl bench --ops 5000000 --size 64
  zonectl bench --mmap --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := runBench(benchChunkSize, benchOps, benchSize, benchMapped)
			if err != nil {
				return err
			}
			return reportBench(res)
		},
	}
}

type benchResult struct {
	Ops     int
	Size    int
	Elapsed time.Duration
	NsPerOp float64
	Clears  int
}

func runBench(chunkSize, ops, size int, mapped bool) (*benchResult, error) {
	if size < 1 {
		return nil, fmt.Errorf("size must be at least 1, got %d", size)
	}

	var opts []zone.Option
	if mapped {
		opts = append(opts, zone.WithMappedSlabs())
	}
	z, err := zone.New(chunkSize, opts...)
	if err != nil {
		return nil, err
	}
	defer z.Release()

	res := &benchResult{Ops: ops, Size: size}
	start := time.Now()
	for i := 0; i < ops; i++ {
		buf, err := z.Alloc(size)
		if err != nil {
			return nil, err
		}
		buf[0] = byte(i)
		if z.Stats().Free < size {
			z.Clear()
			res.Clears++
		}
	}
	res.Elapsed = time.Since(start)
	res.NsPerOp = float64(res.Elapsed.Nanoseconds()) / float64(ops)
	return res, nil
}

func reportBench(res *benchResult) error {
	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	printInfo("%d allocations of %d bytes in %s (%.1f ns/op, %d clears)\n",
		res.Ops, res.Size, res.Elapsed, res.NsPerOp, res.Clears)
	return nil
}
