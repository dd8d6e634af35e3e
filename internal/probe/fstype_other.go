//go:build !darwin

package probe

import "golang.org/x/sys/unix"

// linuxFSTypeNames maps the handful of f_type magic numbers a scan is
// likely to meet in practice. Anything unrecognized reports as "" rather
// than a numeric magic, which callers would have no use for.
var linuxFSTypeNames = map[int64]string{
	0xEF53:     "ext4",
	0x9123683E: "btrfs",
	0x58465342: "xfs",
	0x6969:     "nfs",
	0x01021994: "tmpfs",
	0x65735546: "fuse",
	0x65735543: "fusectl",
	0x9FA0:     "proc",
	0x62656572: "sysfs",
}

// fsType on non-Darwin POSIX hosts resolves statfs's numeric f_type magic
// to a name via a small lookup table; unrecognized magics report "".
func fsType(path string) string {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return ""
	}
	if name, ok := linuxFSTypeNames[int64(st.Type)]; ok {
		return name
	}
	return ""
}
