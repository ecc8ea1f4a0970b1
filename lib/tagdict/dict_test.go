package tagdict

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tags.yaml")
	content := "1: player_name\n2: health\n65535: max_id\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	dict, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v, want nil error", err)
	}
	if dict.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", dict.Len())
	}
	if got := dict.Name(1); got != "player_name" {
		t.Errorf("Name(1) = %q, want %q", got, "player_name")
	}
	if got := dict.Name(99); got != "" {
		t.Errorf("Name(99) = %q, want empty", got)
	}
}

func TestLoadRejectsOutOfRangeID(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tags.yaml")
	if err := os.WriteFile(path, []byte("0: zero\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for id=0")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/tags.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDictTagFallsBackToIDOnly(t *testing.T) {
	var dict *Dict
	tag := dict.Tag(5)
	if tag.HasName() {
		t.Error("expected nil dictionary to produce an id-only tag")
	}
	if tag.ID() != 5 {
		t.Errorf("tag.ID() = %d, want 5", tag.ID())
	}
}
