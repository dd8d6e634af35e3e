// Package boundary implements the mount-point, firmlink, and hard-link
// alias predicates the skip policy (§4.C) consults to decide whether a
// directory crosses a filesystem boundary that should not be descended.
package boundary

import (
	"path/filepath"
	"strings"

	"github.com/kesslermo/sizetree/internal/probe"
)

// Oracle answers the three boundary predicates from a mount-table and
// firmlink-map snapshot taken once at scan start. All fields are
// populated during New and read-only afterward, so an Oracle needs no
// locking to be shared across worker goroutines (§5's "read-only after
// scan start" resource policy).
type Oracle struct {
	mounts    map[string]struct{}
	firmlinks map[string]string
	dataRoots []string
}

// MountFilter decides whether a raw mount-table entry counts as a
// boundary-relevant mount. DefaultMountFilter implements the policy
// spec.md §9's Open Question 1 settles on: exclude the root filesystem,
// include every other mount.
type MountFilter func(mountPath string) bool

// DefaultMountFilter excludes only "/" itself.
func DefaultMountFilter(mountPath string) bool {
	return mountPath != "/"
}

// New enumerates the kernel mount table and builds an Oracle using the
// given firmlink map, data-root list, and mount filter. A nil filter
// falls back to DefaultMountFilter, so existing callers keep the spec's
// default policy without passing one.
func New(firmlinks map[string]string, dataRoots []string, filter MountFilter) (*Oracle, error) {
	if filter == nil {
		filter = DefaultMountFilter
	}

	raw, err := listMounts()
	if err != nil {
		return nil, err
	}

	mounts := make(map[string]struct{}, len(raw))
	for _, m := range raw {
		if !filter(m) {
			continue
		}
		mounts[filepath.Clean(m)] = struct{}{}
	}

	return &Oracle{
		mounts:    mounts,
		firmlinks: firmlinks,
		dataRoots: dataRoots,
	}, nil
}

// IsMount reports whether path is itself a mount point.
func (o *Oracle) IsMount(path string) bool {
	_, ok := o.mounts[filepath.Clean(path)]
	return ok
}

// IsSubOfAnyMount reports whether path is at or beneath any known mount
// point (including the mount point itself).
func (o *Oracle) IsSubOfAnyMount(path string) bool {
	path = filepath.Clean(path)
	for m := range o.mounts {
		if path == m || strings.HasPrefix(path, m+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// CoveredByFirmlink reports whether path lies under one of the oracle's
// data roots at a relative position that equals, or descends into, one of
// the firmlink map's values — i.e. path is reachable through the data
// volume's side of a firmlink rather than its system-volume name.
func (o *Oracle) CoveredByFirmlink(path string) bool {
	path = filepath.Clean(path)
	for _, root := range o.dataRoots {
		root = filepath.Clean(root)
		var rel string
		switch {
		case path == root:
			rel = ""
		case strings.HasPrefix(path, root+string(filepath.Separator)):
			rel = strings.TrimPrefix(path, root+string(filepath.Separator))
		default:
			continue
		}

		for _, target := range o.firmlinks {
			target = filepath.Clean(target)
			if rel == target || strings.HasPrefix(rel, target+string(filepath.Separator)) {
				return true
			}
		}
	}
	return false
}

// AliasesRootChild reports whether path's basename, taken as a top-level
// child of the system root ("/"+basename), same_inode?-matches path. This
// catches the firmlink mirror of a top-level directory onto a secondary
// volume (e.g. a data-volume "Users" directory that is a hard-link alias
// of "/Users").
func AliasesRootChild(path string) bool {
	candidate := filepath.Join("/", filepath.Base(path))
	if candidate == path {
		return false
	}
	return probe.SameInode(path, candidate)
}

// DeviceOf returns the device id of path, delegating to the stat probe.
func DeviceOf(path string) (uint64, bool) {
	return probe.DeviceOf(path)
}
