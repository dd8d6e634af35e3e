// Package probe implements the per-entry filesystem queries the walker
// needs: lstat/stat, symlink detection, allocated-size lookup, readability,
// and filesystem-type tagging. Every operation here is failure-tolerant —
// on error it returns the zero value rather than propagating, since the
// walker must never abort a scan because one entry's stat call failed.
package probe

import (
	"golang.org/x/sys/unix"
)

// blockSize is the unit golang.org/x/sys/unix.Stat_t.Blocks counts in,
// per stat(2) on both Linux and Darwin.
const blockSize = 512

// Entry is the result of probing a single filesystem entry.
type Entry struct {
	Bytes int64
	IsDir bool
}

// Prober queries filesystem entries under a fixed allocated-size mode.
// The mode is set once at scan start (§4.A) and never changes afterward,
// so a Prober is safe to share read-only across worker goroutines.
type Prober struct {
	allocatedSize bool
}

// New returns a Prober using allocatedSize to pick between the allocation
// size (blocks actually reserved on the storage medium) and the logical
// end-of-file size for regular files and directories.
func New(allocatedSize bool) *Prober {
	return &Prober{allocatedSize: allocatedSize}
}

// IsSymlink reports whether path is a symbolic link. Any stat failure is
// reported as false rather than propagated.
func (p *Prober) IsSymlink(path string) bool {
	var st unix.Stat_t
	if err := unix.Lstat(path, &st); err != nil {
		return false
	}
	return st.Mode&unix.S_IFMT == unix.S_IFLNK
}

// Info lstats path. A symlink is reported with the length of its target
// string as Bytes and IsDir false, without following the link. Any other
// entry's Bytes is chosen by the Prober's allocated-size mode. A failed
// stat reports the zero Entry.
func (p *Prober) Info(path string) Entry {
	var st unix.Stat_t
	if err := unix.Lstat(path, &st); err != nil {
		return Entry{}
	}

	if st.Mode&unix.S_IFMT == unix.S_IFLNK {
		buf := make([]byte, unix.PathMax)
		n, err := unix.Readlink(path, buf)
		if err != nil {
			return Entry{}
		}
		return Entry{Bytes: int64(n)}
	}

	isDir := st.Mode&unix.S_IFMT == unix.S_IFDIR
	if p.allocatedSize {
		return Entry{Bytes: int64(st.Blocks) * blockSize, IsDir: isDir}
	}
	return Entry{Bytes: st.Size, IsDir: isDir}
}

// AllocatedSize queries the kernel's per-file allocation attribute: the
// space reserved on the storage medium, not the logical end-of-file. On
// failure it returns 0.
func (p *Prober) AllocatedSize(path string) int64 {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return 0
	}
	return int64(st.Blocks) * blockSize
}

// SelfSize stats path and returns the reported logical size field, used to
// seed a directory node's own self-size contribution. On failure it
// returns 0.
func (p *Prober) SelfSize(path string) int64 {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return 0
	}
	return st.Size
}

// SameInode lstats both a and b and reports whether both calls succeeded
// and resolved to the same device and inode number.
func SameInode(a, b string) bool {
	var sa, sb unix.Stat_t
	if err := unix.Lstat(a, &sa); err != nil {
		return false
	}
	if err := unix.Lstat(b, &sb); err != nil {
		return false
	}
	return sa.Dev == sb.Dev && sa.Ino == sb.Ino
}

// DeviceOf returns the device id of path as reported by lstat, and false
// if the stat call failed.
func DeviceOf(path string) (dev uint64, ok bool) {
	var st unix.Stat_t
	if err := unix.Lstat(path, &st); err != nil {
		return 0, false
	}
	return uint64(st.Dev), true
}

// FSType returns a tag for the filesystem type containing path (e.g.
// "apfs", "ext4"), or "" on failure.
func FSType(path string) string {
	return fsType(path)
}

// Exists reports whether path resolves via lstat, without following a
// trailing symlink. It distinguishes a missing path from other probe
// failures for callers that need to tell the two apart: only ENOENT
// reports false.
func Exists(path string) bool {
	var st unix.Stat_t
	return unix.Lstat(path, &st) != unix.ENOENT
}

// Readable reports whether the calling identity can read path. It is a
// side-effect-free permission-bit check (not a try-open), matching the
// spec's resolution of the access-check Open Question.
func Readable(path string) bool {
	return unix.Access(path, unix.R_OK) == nil
}
