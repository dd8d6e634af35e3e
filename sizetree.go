// Package sizetree computes the on-disk space occupied by a file,
// directory, or subtree with a parallel bounded-fan-out walker that honors
// macOS-style filesystem-boundary rules: mount points, APFS firmlinks, and
// hard-link root aliases.
package sizetree

import (
	"runtime"
	"time"

	"github.com/kesslermo/sizetree/internal/boundary"
	"github.com/kesslermo/sizetree/internal/probe"
)

// Options configures a single scan. Every field is fixed for the duration
// of the scan it governs.
type Options struct {
	// UseParallel forces the worker pool to a single lane when false.
	UseParallel bool
	// MaxThreads overrides the pool size; zero means auto (GOMAXPROCS).
	MaxThreads uint
	// DepthCap is the deepest directory level at which the walker is still
	// allowed to hand work to another lane. Default 8.
	DepthCap uint
	// BatchSize is the directory-iterator drain size. Default 64.
	BatchSize uint
	// RootOnly discards the root node's children after aggregation.
	RootOnly bool
	// IncludeDirectorySelfSize folds a directory's own reported size into
	// its aggregate.
	IncludeDirectorySelfSize bool
	// UseAllocatedSize selects allocated over logical size for files.
	UseAllocatedSize bool
	// MountFilter overrides which mount-table entries count as boundary
	// mounts. Nil means boundary.DefaultMountFilter (exclude "/" only).
	MountFilter boundary.MountFilter
}

// DefaultOptions returns the spec-mandated defaults: parallel, auto thread
// count, depth cap 8, batch size 64.
func DefaultOptions() Options {
	return Options{
		UseParallel: true,
		DepthCap:    8,
		BatchSize:   64,
	}
}

func (o Options) resolveThreads() int {
	if !o.UseParallel {
		return 1
	}
	if o.MaxThreads > 0 {
		return int(o.MaxThreads)
	}
	return runtime.GOMAXPROCS(0)
}

// ScanResult is a root node together with the elapsed wall-clock time spent
// producing it.
type ScanResult struct {
	Root         *Node
	ElapsedMillis int64
}

// Scan is the single externally-visible entry point (§4.G): given a path
// and scan options, it produces a complete size tree plus elapsed time. It
// never returns an error — every failure mode collapses into the shape of
// the returned tree, per the error-handling design.
func Scan(path string, opts Options) *ScanResult {
	start := time.Now()

	ctx, err := newScanContext(path, opts.MountFilter)
	if err != nil {
		return &ScanResult{
			Root:          newEmptyDir(path),
			ElapsedMillis: time.Since(start).Milliseconds(),
		}
	}

	w := &walker{
		prober: probe.New(opts.UseAllocatedSize),
		sched:  newScheduler(opts.resolveThreads()),
		opts:   opts,
	}

	root := w.walkPath(ctx, path, 0)
	if root == nil {
		root = newEmptyDir(path)
	}
	if opts.RootOnly {
		root.Children = nil
	}

	return &ScanResult{
		Root:         root,
		ElapsedMillis: time.Since(start).Milliseconds(),
	}
}
