package sizetree

import (
	"sync"

	"github.com/kesslermo/sizetree/internal/boundary"
	"github.com/kesslermo/sizetree/internal/probe"
)

// scanContext is the process-wide state established once at scan start and
// shared read-only (aside from the visited set) across every worker lane.
type scanContext struct {
	entryPath string
	fsType    string
	oracle    *boundary.Oracle

	visitedMu sync.Mutex
	visited   map[string]struct{}
}

func newScanContext(entryPath string, mountFilter boundary.MountFilter) (*scanContext, error) {
	oracle, err := boundary.New(boundary.DefaultFirmlinks, boundary.DefaultDataRoots, mountFilter)
	if err != nil {
		return nil, err
	}
	return &scanContext{
		entryPath: entryPath,
		fsType:    probe.FSType(entryPath),
		oracle:    oracle,
		visited:   make(map[string]struct{}),
	}, nil
}

// markVisited returns true iff path had not already been recorded, atomically
// recording it as a side effect. This is the dedup gate of §4.F step 3.
func (c *scanContext) markVisited(path string) bool {
	c.visitedMu.Lock()
	defer c.visitedMu.Unlock()
	if _, seen := c.visited[path]; seen {
		return false
	}
	c.visited[path] = struct{}{}
	return true
}
