package boundary

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsMountAndIsSubOfAnyMount(t *testing.T) {
	o := &Oracle{
		mounts: map[string]struct{}{
			"/System/Volumes/Data": {},
			"/Volumes/Backup":      {},
		},
	}

	if !o.IsMount("/System/Volumes/Data") {
		t.Errorf("IsMount on known mount = false, want true")
	}
	if o.IsMount("/System/Volumes/Data/Users") {
		t.Errorf("IsMount on sub-path = true, want false")
	}
	if !o.IsSubOfAnyMount("/System/Volumes/Data/Users") {
		t.Errorf("IsSubOfAnyMount on sub-path = false, want true")
	}
	if o.IsSubOfAnyMount("/etc") {
		t.Errorf("IsSubOfAnyMount on unrelated path = true, want false")
	}
}

func TestCoveredByFirmlink(t *testing.T) {
	o := &Oracle{
		dataRoots: []string{"/System/Volumes/Data"},
		firmlinks: map[string]string{
			"/Users":        "Users",
			"/Applications": "Applications",
		},
	}

	cases := []struct {
		path string
		want bool
	}{
		{"/System/Volumes/Data/Users", true},
		{"/System/Volumes/Data/Users/alice", true},
		{"/System/Volumes/Data/Applications", true},
		{"/System/Volumes/Data/private/var", false},
		{"/Users", false},
	}
	for _, c := range cases {
		if got := o.CoveredByFirmlink(c.path); got != c.want {
			t.Errorf("CoveredByFirmlink(%q) = %v, want %v", c.path, got, c.want)
		}
	}
}

func TestAliasesRootChild(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "nested")
	if err := os.Mkdir(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if AliasesRootChild(nested) {
		t.Errorf("AliasesRootChild(%q) = true, want false (no real root child shares its inode)", nested)
	}
	if AliasesRootChild("/") {
		t.Errorf("AliasesRootChild(\"/\") = true, want false (candidate equals path)")
	}
}

func TestDeviceOfDelegation(t *testing.T) {
	dir := t.TempDir()
	if _, ok := DeviceOf(dir); !ok {
		t.Errorf("DeviceOf(%q) failed", dir)
	}
	if _, ok := DeviceOf(filepath.Join(dir, "missing")); ok {
		t.Errorf("DeviceOf on missing path reported ok=true")
	}
}
