package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSet_Add(t *testing.T) {
	fs := NewFileSet()

	id := fs.AddVirtual("a.swift", []byte("let x = 1\n"))
	file := fs.Get(id)

	if file.Path != "a.swift" {
		t.Errorf("Path = %q, want %q", file.Path, "a.swift")
	}
	if file.Flags&FileVirtual == 0 {
		t.Errorf("expected FileVirtual flag")
	}
	if file.Hash == ([32]byte{}) {
		t.Errorf("expected a non-zero content hash")
	}
	if fs.Len() != 1 {
		t.Errorf("Len() = %d, want 1", fs.Len())
	}
}

func TestFileSet_AddSamePathTwice(t *testing.T) {
	fs := NewFileSet()

	first := fs.AddVirtual("a.swift", []byte("v1"))
	second := fs.AddVirtual("a.swift", []byte("v2"))

	if first == second {
		t.Errorf("expected distinct IDs for re-added path")
	}
	latest, ok := fs.GetByPath("a.swift")
	if !ok {
		t.Fatalf("GetByPath should find the file")
	}
	if string(latest.Content) != "v2" {
		t.Errorf("GetByPath content = %q, want the latest version", latest.Content)
	}
}

func TestFileSet_Load(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.swift")
	// BOM and CRLF both get normalized on load.
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("one\r\ntwo\r\n")...)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	file := fs.Get(id)
	if string(file.Content) != "one\ntwo\n" {
		t.Errorf("Content = %q, want normalized text", file.Content)
	}
	if file.Flags&FileHadBOM == 0 {
		t.Errorf("expected FileHadBOM flag")
	}
	if file.Flags&FileNormalizedCRLF == 0 {
		t.Errorf("expected FileNormalizedCRLF flag")
	}
}

func TestFileSet_LoadMissing(t *testing.T) {
	fs := NewFileSet()
	if _, err := fs.Load(filepath.Join(t.TempDir(), "absent.swift")); err == nil {
		t.Errorf("expected an error for a missing file")
	}
}
