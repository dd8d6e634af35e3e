package sizetree

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/kesslermo/sizetree/internal/boundary"
	"github.com/kesslermo/sizetree/internal/probe"
)

// walker drives the per-directory state machine of §4.F: enter, classify,
// iterate, join, finalize. A walker is shared read-only across every lane
// the scheduler spawns.
type walker struct {
	prober *probe.Prober
	sched  *scheduler
	opts   Options
}

// walkPath is the generic per-path dispatcher: it re-derives what kind of
// entry path is (directory, symlink, or something else) regardless of what
// the caller believed when it scheduled the work, since the filesystem can
// change between a directory listing and the worker actually visiting the
// path.
func (w *walker) walkPath(ctx *scanContext, path string, depth int) *Node {
	if w.prober.IsSymlink(path) {
		return newLeaf(path, w.prober.Info(path).Bytes)
	}

	if !probe.Exists(path) {
		return newEmptyDir(path)
	}

	if shouldSkip(ctx, path) {
		return newEmptyDir(path)
	}

	if boundary.AliasesRootChild(path) {
		return nil
	}

	info := w.prober.Info(path)
	if !info.IsDir {
		return newLeaf(path, info.Bytes)
	}

	return w.walkDir(ctx, path, depth)
}

// walkDir implements steps 1 and 3–7 of §4.F for a path already known to be
// a directory that passed the skip policy.
func (w *walker) walkDir(ctx *scanContext, path string, depth int) *Node {
	node := newEmptyDir(path)

	if !probe.Readable(path) {
		return node
	}

	if !ctx.markVisited(path) {
		return nil
	}

	if w.opts.IncludeDirectorySelfSize {
		node.Size += w.prober.SelfSize(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return node
	}
	defer f.Close()

	var futures []*future
	batchSize := int(w.opts.BatchSize)
	if batchSize < 1 {
		batchSize = 1
	}

	for {
		entries, readErr := f.ReadDir(batchSize)
		for _, entry := range entries {
			child := w.processEntry(ctx, path, entry, depth, &futures)
			if child != nil {
				node.addChild(child)
			}
		}
		if readErr != nil {
			break
		}
	}

	for _, fut := range futures {
		node.addChild(fut.await())
	}

	node.finalize(false)
	return node
}

// processEntry classifies one directory entry and either returns a leaf
// node directly, recurses inline, schedules the recursion (appending its
// future to futures and returning nil so the caller doesn't double-count
// it), or returns nil for a suppressed descendant.
func (w *walker) processEntry(ctx *scanContext, dirPath string, entry os.DirEntry, depth int, futures *[]*future) *Node {
	childPath := filepath.Join(dirPath, entry.Name())

	// Symlinks are classified before any readability probe: Readable
	// follows symlinks via unix.Access, so a dangling or unreadable-target
	// link would otherwise be misreported as a size-0 leaf instead of a
	// leaf sized to the link string itself.
	typ := entry.Type()
	if typ&fs.ModeSymlink != 0 {
		return newLeaf(childPath, w.prober.Info(childPath).Bytes)
	}

	// Directories are dispatched through walkPath/walkDir unconditionally;
	// walkDir's own Readable check turns an unreadable directory into an
	// empty directory node rather than a file leaf.
	if typ.IsDir() {
		if depth < int(w.opts.DepthCap) {
			fut, ok := w.sched.trySpawn(func() *Node {
				return w.walkPath(ctx, childPath, depth+1)
			})
			if ok {
				*futures = append(*futures, fut)
				return nil
			}
		}
		return w.walkPath(ctx, childPath, depth+1)
	}

	if !probe.Readable(childPath) {
		return newLeaf(childPath, 0)
	}

	return newLeaf(childPath, w.prober.Info(childPath).Bytes)
}
