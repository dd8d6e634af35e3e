// Package hostapi exposes sizetree's scan engine as an opaque-handle API
// suitable for a host application (or a future cgo/FFI boundary) to consume:
// accessor methods instead of direct struct access, and explicit Release
// calls instead of garbage collection deciding when a node goes away.
package hostapi

import (
	"fmt"
	"log"
	"sync"

	"github.com/kesslermo/sizetree"
)

// handleTable hands out unique ids backed by the live *sizetree.Node each
// one refers to. Every Child call mints a fresh id for the same underlying
// node, mirroring the spec's "freshly-owned, must be released"
// contract — two handles over the same node are independent and releasing
// one must not invalidate the other.
type handleTable struct {
	mu      sync.Mutex
	nextID  uint64
	entries map[uint64]*lookupEntry
}

// lookupEntry pairs a registered node with a one-shot destroy callback, the
// same Inc/Dec-to-zero shape gcsfuse uses for inode lookup counts, reduced
// to a single reference per handle since a host-facing handle has exactly
// one owner.
type lookupEntry struct {
	node    *sizetree.Node
	count   uint64
	destroy func()
}

var table = &handleTable{entries: make(map[uint64]*lookupEntry)}

func (t *handleTable) register(node *sizetree.Node) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.nextID++
	id := t.nextID
	t.entries[id] = &lookupEntry{node: node, count: 1}
	return id
}

func (t *handleTable) lookup(id uint64) *sizetree.Node {
	t.mu.Lock()
	defer t.mu.Unlock()
	e := t.entries[id]
	if e == nil {
		return nil
	}
	return e.node
}

// release decrements id's reference count, removing the entry once it
// reaches zero. Releasing an unknown or already-released id is a logged
// no-op, never a panic — host callers should not be able to
// crash the engine by double-releasing.
func (t *handleTable) release(id uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e := t.entries[id]
	if e == nil {
		log.Printf("hostapi: release of unknown handle %d", id)
		return
	}
	if e.count <= 1 {
		delete(t.entries, id)
		return
	}
	e.count--
}

// NodeHandle is an opaque reference to one node in a scan's size tree.
type NodeHandle struct {
	id uint64
}

// Path returns the node's absolute path, or "" if the handle is invalid.
func (h NodeHandle) Path() string {
	n := table.lookup(h.id)
	if n == nil {
		return ""
	}
	return n.Path
}

// Size returns the node's aggregated size in bytes.
func (h NodeHandle) Size() uint64 {
	n := table.lookup(h.id)
	if n == nil {
		return 0
	}
	return uint64(n.Size)
}

// IsDirectory reports whether the node is a directory.
func (h NodeHandle) IsDirectory() bool {
	n := table.lookup(h.id)
	return n != nil && n.IsDir
}

// ChildrenCount returns the number of children of the node, 0 if invalid or
// childless.
func (h NodeHandle) ChildrenCount() int {
	n := table.lookup(h.id)
	if n == nil {
		return 0
	}
	return len(n.Children)
}

// Child returns a freshly-owned handle to the i'th child. ok is false if
// the handle is invalid or i is out of range; the returned handle must be
// released independently of its parent.
func (h NodeHandle) Child(i int) (child NodeHandle, ok bool) {
	n := table.lookup(h.id)
	if n == nil || i < 0 || i >= len(n.Children) {
		return NodeHandle{}, false
	}
	return NodeHandle{id: table.register(n.Children[i])}, true
}

// Release frees h. h must not be used afterward.
func (h NodeHandle) Release() {
	table.release(h.id)
}

// ScanHandle is an opaque reference to a completed scan.
type ScanHandle struct {
	rootID    uint64
	elapsedMs int64
}

// Scan runs a scan and returns a handle to its result. Unlike the
// underlying sizetree.Scan, this entry point is meant to be called from
// outside the module's own Go code, so it returns its root as a handle
// rather than a pointer.
func Scan(path string, opts sizetree.Options) *ScanHandle {
	result := sizetree.Scan(path, opts)
	return &ScanHandle{
		rootID:    table.register(result.Root),
		elapsedMs: result.ElapsedMillis,
	}
}

// RootNode returns a freshly-owned handle to the scan's root node.
func (s *ScanHandle) RootNode() NodeHandle {
	return NodeHandle{id: table.register(table.lookup(s.rootID))}
}

// ElapsedMs returns the scan's elapsed wall-clock time in milliseconds.
func (s *ScanHandle) ElapsedMs() int64 {
	return s.elapsedMs
}

// Release frees the scan's own reference to its root node. It does not
// release any handles a caller obtained separately via RootNode or Child —
// those must be released on their own.
func (s *ScanHandle) Release() {
	table.release(s.rootID)
}

// String renders a handle for diagnostics; it is not part of the stable
// accessor surface.
func (h NodeHandle) String() string {
	return fmt.Sprintf("NodeHandle(%s)", h.Path())
}
