package boundary

import "golang.org/x/sys/unix"

// listMounts enumerates the kernel's mount table via getfsstat(2), the
// same syscall family the BSD/Darwin "mount" command itself uses, rather
// than shelling out to parse mount(8)'s text output.
func listMounts() ([]string, error) {
	n, err := unix.Getfsstat(nil, unix.MNT_NOWAIT)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}

	buf := make([]unix.Statfs_t, n)
	n, err = unix.Getfsstat(buf, unix.MNT_NOWAIT)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, n)
	for _, st := range buf[:n] {
		paths = append(paths, cstring(st.Mntonname[:]))
	}
	return paths, nil
}

// cstring converts a NUL-terminated byte array from a kernel struct into a
// Go string, stopping at the first NUL.
func cstring(raw []byte) string {
	n := 0
	for n < len(raw) && raw[n] != 0 {
		n++
	}
	return string(raw[:n])
}
