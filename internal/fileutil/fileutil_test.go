package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()

	file := filepath.Join(dir, "present.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "regular file", path: file, want: true},
		{name: "missing file", path: filepath.Join(dir, "absent.txt"), want: false},
		{name: "directory", path: dir, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FileExists(tt.path); got != tt.want {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestRemoveIfExists(t *testing.T) {
	dir := t.TempDir()

	file := filepath.Join(dir, "victim.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := RemoveIfExists(file); err != nil {
		t.Fatalf("RemoveIfExists(existing): %v", err)
	}
	if FileExists(file) {
		t.Error("file still present after RemoveIfExists")
	}

	// A second removal of the now-missing file is not an error.
	if err := RemoveIfExists(file); err != nil {
		t.Fatalf("RemoveIfExists(missing): %v", err)
	}
}

func TestReplaceExt(t *testing.T) {
	tests := []struct {
		name string
		path string
		ext  string
		want string
	}{
		{name: "yaml to pdf", path: "doc.yaml", ext: ".pdf", want: "doc.pdf"},
		{name: "nested path", path: "a/b/doc.yml", ext: ".tex", want: "a/b/doc.tex"},
		{name: "no extension", path: "doc", ext: ".pdf", want: "doc.pdf"},
		{name: "dot in directory only", path: "a.b/doc", ext: ".pdf", want: "a.b/doc.pdf"},
		{name: "double extension replaces last", path: "doc.tar.gz", ext: ".pdf", want: "doc.tar.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ReplaceExt(tt.path, tt.ext); got != tt.want {
				t.Errorf("ReplaceExt(%q, %q) = %q, want %q", tt.path, tt.ext, got, tt.want)
			}
		})
	}
}
