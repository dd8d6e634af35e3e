package sizetree

import (
	"strings"

	"github.com/kesslermo/sizetree/internal/boundary"
)

// shouldSkip implements the ordered boundary predicate of §4.C: the entry
// path is always descended, but secondary mounts and firmlink shadows that
// appear inside it are not.
func shouldSkip(ctx *scanContext, path string) bool {
	if ctx.oracle.CoveredByFirmlink(path) {
		return true
	}

	if ctx.oracle.IsMount(path) {
		return path != ctx.entryPath && strings.HasPrefix(path, ctx.entryPath+"/")
	}

	if ctx.oracle.IsSubOfAnyMount(path) {
		devPath, pathOK := boundary.DeviceOf(path)
		devEntry, entryOK := boundary.DeviceOf(ctx.entryPath)
		if pathOK && entryOK && devPath == devEntry {
			return false
		}
		if strings.HasPrefix(path, ctx.entryPath+"/") && ctx.oracle.IsMount(ctx.entryPath) {
			return false
		}
		return true
	}

	return false
}
