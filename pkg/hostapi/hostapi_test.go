package hostapi

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kesslermo/sizetree"
)

func TestScanAndAccessors(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "f1"), make([]byte, 10), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "f2"), make([]byte, 30), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	handle := Scan(dir, sizetree.DefaultOptions())
	defer handle.Release()

	root := handle.RootNode()
	defer root.Release()

	if root.Path() != dir {
		t.Errorf("root path = %q, want %q", root.Path(), dir)
	}
	if !root.IsDirectory() {
		t.Errorf("root IsDirectory = false, want true")
	}
	if root.Size() != 40 {
		t.Errorf("root size = %d, want 40", root.Size())
	}
	if root.ChildrenCount() != 2 {
		t.Fatalf("children count = %d, want 2", root.ChildrenCount())
	}

	first, ok := root.Child(0)
	if !ok {
		t.Fatalf("Child(0) ok = false")
	}
	defer first.Release()

	if filepath.Base(first.Path()) != "f2" {
		t.Errorf("largest child = %q, want f2", first.Path())
	}

	if handle.ElapsedMs() < 0 {
		t.Errorf("ElapsedMs = %d, want >= 0", handle.ElapsedMs())
	}
}

func TestChildOutOfRange(t *testing.T) {
	dir := t.TempDir()
	handle := Scan(dir, sizetree.DefaultOptions())
	defer handle.Release()
	root := handle.RootNode()
	defer root.Release()

	if _, ok := root.Child(0); ok {
		t.Errorf("Child(0) on empty directory ok = true, want false")
	}
	if _, ok := root.Child(-1); ok {
		t.Errorf("Child(-1) ok = true, want false")
	}
}

func TestInvalidHandleAfterRelease(t *testing.T) {
	dir := t.TempDir()
	handle := Scan(dir, sizetree.DefaultOptions())
	root := handle.RootNode()

	root.Release()

	if root.Path() != "" {
		t.Errorf("Path() after release = %q, want \"\"", root.Path())
	}
	if root.Size() != 0 {
		t.Errorf("Size() after release = %d, want 0", root.Size())
	}
	if root.IsDirectory() {
		t.Errorf("IsDirectory() after release = true, want false")
	}

	handle.Release()
}

func TestChildHandlesIndependentOfParentRelease(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "f"), make([]byte, 5), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	handle := Scan(dir, sizetree.DefaultOptions())
	root := handle.RootNode()

	child, ok := root.Child(0)
	if !ok {
		t.Fatalf("Child(0) ok = false")
	}

	root.Release()
	handle.Release()

	if child.Path() == "" {
		t.Errorf("child handle invalidated by parent release, want independent lifetime")
	}
	child.Release()
}
