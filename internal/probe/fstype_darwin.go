package probe

import "golang.org/x/sys/unix"

// fsType on Darwin reads the null-terminated Fstypename field straight off
// the kernel's statfs result — the name is already human-readable ("apfs",
// "hfs", "msdos", ...), unlike Linux's numeric f_type magic.
func fsType(path string) string {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return ""
	}

	n := 0
	for n < len(st.Fstypename) && st.Fstypename[n] != 0 {
		n++
	}
	return string(st.Fstypename[:n])
}
