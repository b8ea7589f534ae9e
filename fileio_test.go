package main

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestOpenSaveRoundTrip(t *testing.T) {
	content := "first line\n\tindented 42\n\nlast\n"
	path := filepath.Join(t.TempDir(), "doc.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, _ := newTestEditor(t, 24, 80, "")
	if err := editorOpen(cfg, path); err != nil {
		t.Fatalf("editorOpen() error = %v", err)
	}
	if len(cfg.rows) != 4 {
		t.Fatalf("opened %d rows, want 4", len(cfg.rows))
	}
	if cfg.dirty != 0 {
		t.Errorf("dirty = %d after open, want 0", cfg.dirty)
	}

	if err := editorSave(cfg); err != nil {
		t.Fatalf("editorSave() error = %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != content {
		t.Errorf("saved %q, want %q", got, content)
	}
}

func TestOpenNormalisesLineEndings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dos.txt")
	if err := os.WriteFile(path, []byte("one\r\ntwo\r\nno newline"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, _ := newTestEditor(t, 24, 80, "")
	if err := editorOpen(cfg, path); err != nil {
		t.Fatalf("editorOpen() error = %v", err)
	}
	if got := rowStrings(cfg); !slices.Equal(got, []string{"one", "two", "no newline"}) {
		t.Errorf("rows = %q", got)
	}

	if err := editorSave(cfg); err != nil {
		t.Fatalf("editorSave() error = %v", err)
	}
	got, _ := os.ReadFile(path)
	if string(got) != "one\ntwo\nno newline\n" {
		t.Errorf("saved %q, want LF only", got)
	}
}

func TestOpenLongLine(t *testing.T) {
	long := strings.Repeat("x", 200_000)
	path := filepath.Join(t.TempDir(), "long.txt")
	if err := os.WriteFile(path, []byte(long+"\nshort\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, _ := newTestEditor(t, 24, 80, "")
	if err := editorOpen(cfg, path); err != nil {
		t.Fatalf("editorOpen() error = %v", err)
	}
	if len(cfg.rows) != 2 || len(cfg.rows[0].chars) != len(long) {
		t.Errorf("opened %d rows, first of length %d", len(cfg.rows), len(cfg.rows[0].chars))
	}
}

func TestOpenMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.txt")

	cfg, _ := newTestEditor(t, 24, 80, "")
	if err := editorOpen(cfg, path); err != nil {
		t.Fatalf("editorOpen() error = %v", err)
	}
	if len(cfg.rows) != 0 || cfg.fileName != path {
		t.Errorf("rows = %d, fileName = %q", len(cfg.rows), cfg.fileName)
	}
}

func TestOpenDirectoryFails(t *testing.T) {
	cfg, _ := newTestEditor(t, 24, 80, "")
	if err := editorOpen(cfg, t.TempDir()); err == nil {
		t.Errorf("editorOpen(directory) error = nil")
	}
}

func TestSaveNewBufferPromptsForName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t.txt")
	cfg, _ := newTestEditor(t, 24, 80, "abc\x13"+path+"\r")

	pressKeys(t, cfg, 4)

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved file: %v", err)
	}
	if string(got) != "abc\n" {
		t.Errorf("saved %q, want %q", got, "abc\n")
	}
	if cfg.dirty != 0 {
		t.Errorf("dirty = %d after save, want 0", cfg.dirty)
	}
	if cfg.statusMsg != "4 bytes written to disk" {
		t.Errorf("statusMsg = %q", cfg.statusMsg)
	}
}

func TestSaveAborted(t *testing.T) {
	cfg, _ := newTestEditor(t, 24, 80, "x\x13\x1b")
	pressKeys(t, cfg, 2)

	if cfg.statusMsg != "Save aborted" {
		t.Errorf("statusMsg = %q, want Save aborted", cfg.statusMsg)
	}
	if cfg.fileName != "" || cfg.dirty == 0 {
		t.Errorf("fileName = %q, dirty = %d", cfg.fileName, cfg.dirty)
	}
}

func TestSaveFailureKeepsDirty(t *testing.T) {
	cfg, _ := newTestEditor(t, 24, 80, "x\x13")
	cfg.fileName = filepath.Join(t.TempDir(), "missing", "dir", "f.txt")
	pressKeys(t, cfg, 2)

	if !strings.HasPrefix(cfg.statusMsg, "Can't save! I/O error:") {
		t.Errorf("statusMsg = %q", cfg.statusMsg)
	}
	if cfg.dirty == 0 {
		t.Errorf("dirty was reset by a failed save")
	}
}
