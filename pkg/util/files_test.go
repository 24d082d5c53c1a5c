package util

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "present.srt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if !FileExists(file) {
		t.Errorf("FileExists(%q) = false, want true", file)
	}
	if FileExists(dir) {
		t.Error("FileExists should reject a directory")
	}
	if FileExists(filepath.Join(dir, "absent.srt")) {
		t.Error("FileExists should reject a missing path")
	}
}

func TestDirExists(t *testing.T) {
	dir := t.TempDir()

	if !DirExists(dir) {
		t.Errorf("DirExists(%q) = false, want true", dir)
	}
	if DirExists(filepath.Join(dir, "absent")) {
		t.Error("DirExists should reject a missing path")
	}
}

func TestEnsureDir(t *testing.T) {
	nested := filepath.Join(t.TempDir(), "a", "b", "c")

	if err := EnsureDir(nested); err != nil {
		t.Fatalf("EnsureDir(%q) failed: %v", nested, err)
	}
	if !DirExists(nested) {
		t.Errorf("EnsureDir(%q) did not create the directory", nested)
	}

	// Creating an existing directory is a no-op.
	if err := EnsureDir(nested); err != nil {
		t.Errorf("EnsureDir on an existing directory failed: %v", err)
	}
}
