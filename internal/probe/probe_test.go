package probe

import (
	"os"
	"path/filepath"
	"testing"
)

// TestInfoRegularFile verifies that Info reports the logical size for a
// regular file when allocated-size mode is off.
func TestInfoRegularFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.bin")
	content := make([]byte, 1000)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	p := New(false)
	entry := p.Info(path)
	if entry.IsDir {
		t.Errorf("regular file reported as directory")
	}
	if entry.Bytes != 1000 {
		t.Errorf("got size %d, want 1000", entry.Bytes)
	}
}

// TestInfoDirectory verifies that Info classifies a directory correctly.
func TestInfoDirectory(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	p := New(false)
	entry := p.Info(sub)
	if !entry.IsDir {
		t.Errorf("directory not reported as directory")
	}
}

// TestInfoSymlink verifies that Info reports the length of the link's
// target string, not the target's size, and does not follow the link.
func TestInfoSymlink(t *testing.T) {
	dir := t.TempDir()
	target := "/etc/passwd"
	link := filepath.Join(dir, "link")
	if err := os.Symlink(target, link); err != nil {
		t.Fatalf("symlink: %v", err)
	}

	p := New(false)
	if !p.IsSymlink(link) {
		t.Errorf("IsSymlink(%q) = false, want true", link)
	}

	entry := p.Info(link)
	if entry.IsDir {
		t.Errorf("symlink reported as directory")
	}
	if entry.Bytes != int64(len(target)) {
		t.Errorf("got size %d, want %d (target string length)", entry.Bytes, len(target))
	}
}

// TestInfoNonexistent verifies that a failed stat reports the zero Entry
// rather than propagating an error.
func TestInfoNonexistent(t *testing.T) {
	p := New(false)
	entry := p.Info(filepath.Join(t.TempDir(), "does_not_exist"))
	if entry != (Entry{}) {
		t.Errorf("got %+v, want zero Entry", entry)
	}
}

// TestIsSymlinkOnMissingPath verifies IsSymlink fails closed.
func TestIsSymlinkOnMissingPath(t *testing.T) {
	p := New(false)
	if p.IsSymlink(filepath.Join(t.TempDir(), "nope")) {
		t.Errorf("IsSymlink on missing path = true, want false")
	}
}

// TestSameInode verifies hard-link detection via device+inode comparison.
func TestSameInode(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	c := filepath.Join(dir, "c")

	if err := os.WriteFile(a, []byte("x"), 0o644); err != nil {
		t.Fatalf("write a: %v", err)
	}
	if err := os.WriteFile(c, []byte("y"), 0o644); err != nil {
		t.Fatalf("write c: %v", err)
	}
	if err := os.Link(a, b); err != nil {
		t.Fatalf("link: %v", err)
	}

	if !SameInode(a, b) {
		t.Errorf("SameInode(a, b) = false, want true (hard link)")
	}
	if SameInode(a, c) {
		t.Errorf("SameInode(a, c) = true, want false (distinct files)")
	}
	if SameInode(a, filepath.Join(dir, "missing")) {
		t.Errorf("SameInode with missing path = true, want false")
	}
}

// TestDeviceOf verifies that two paths on the same filesystem report the
// same device id.
func TestDeviceOf(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	if err := os.WriteFile(a, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	devDir, ok := DeviceOf(dir)
	if !ok {
		t.Fatalf("DeviceOf(dir) failed")
	}
	devFile, ok := DeviceOf(a)
	if !ok {
		t.Fatalf("DeviceOf(a) failed")
	}
	if devDir != devFile {
		t.Errorf("got different devices for entries on the same filesystem")
	}

	if _, ok := DeviceOf(filepath.Join(dir, "missing")); ok {
		t.Errorf("DeviceOf on missing path reported ok=true")
	}
}

// TestReadable verifies the permission-bit readability probe.
func TestReadable(t *testing.T) {
	dir := t.TempDir()
	readablePath := filepath.Join(dir, "r.txt")
	if err := os.WriteFile(readablePath, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !Readable(readablePath) {
		t.Errorf("Readable(%q) = false, want true", readablePath)
	}

	if Readable(filepath.Join(dir, "missing")) {
		t.Errorf("Readable on missing path = true, want false")
	}
}

// TestExists verifies the existence probe distinguishes present from
// missing paths.
func TestExists(t *testing.T) {
	dir := t.TempDir()
	if !Exists(dir) {
		t.Errorf("Exists(%q) = false, want true", dir)
	}
	if Exists(filepath.Join(dir, "missing")) {
		t.Errorf("Exists on missing path = true, want false")
	}
}

// TestSelfSizeAndAllocatedSize verify the two stat-derived size accessors
// degrade to zero on failure and return non-negative values on success.
func TestSelfSizeAndAllocatedSize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.bin")
	if err := os.WriteFile(path, make([]byte, 4096), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	p := New(true)
	if got := p.SelfSize(path); got != 4096 {
		t.Errorf("SelfSize = %d, want 4096", got)
	}
	if got := p.AllocatedSize(path); got < 0 {
		t.Errorf("AllocatedSize = %d, want >= 0", got)
	}
	if got := p.SelfSize(filepath.Join(dir, "missing")); got != 0 {
		t.Errorf("SelfSize on missing path = %d, want 0", got)
	}
	if got := p.AllocatedSize(filepath.Join(dir, "missing")); got != 0 {
		t.Errorf("AllocatedSize on missing path = %d, want 0", got)
	}
}
