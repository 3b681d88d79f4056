package mover

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestMove_MatchingFiles(t *testing.T) {
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "moved")
	writeFile(t, src, "one.jpg", "a")
	writeFile(t, src, "two.JPEG", "b")
	writeFile(t, src, "keep.txt", "c")

	res := New(nil).Move(src, dst, []string{"jpg", "jpeg"})

	if len(res.Moved) != 2 {
		t.Fatalf("expected 2 moved, got %v (errors: %v)", res.Moved, res.Errors)
	}
	if len(res.Errors) != 0 {
		t.Errorf("unexpected errors: %v", res.Errors)
	}
	if _, err := os.Stat(filepath.Join(dst, "one.jpg")); err != nil {
		t.Errorf("one.jpg not at destination: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dst, "two.JPEG")); err != nil {
		t.Errorf("case-insensitive match not moved: %v", err)
	}
	if _, err := os.Stat(filepath.Join(src, "keep.txt")); err != nil {
		t.Errorf("non-matching file must stay put: %v", err)
	}
	if _, err := os.Stat(filepath.Join(src, "one.jpg")); !os.IsNotExist(err) {
		t.Error("moved file still present in source")
	}
}

func TestMove_SkipsExistingDestination(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	writeFile(t, src, "photo.jpg", "new content")
	writeFile(t, dst, "photo.jpg", "old content")

	res := New(nil).Move(src, dst, []string{"jpg"})

	if len(res.Skipped) != 1 || res.Skipped[0] != "photo.jpg" {
		t.Fatalf("expected photo.jpg skipped, got %+v", res)
	}
	if len(res.Moved) != 0 {
		t.Errorf("nothing should be moved, got %v", res.Moved)
	}

	// Destination content untouched, source still intact.
	got, err := os.ReadFile(filepath.Join(dst, "photo.jpg"))
	if err != nil || string(got) != "old content" {
		t.Errorf("destination overwritten: %q, %v", got, err)
	}
	if _, err := os.Stat(filepath.Join(src, "photo.jpg")); err != nil {
		t.Errorf("skipped file removed from source: %v", err)
	}
}

func TestMove_MissingSource(t *testing.T) {
	res := New(nil).Move(filepath.Join(t.TempDir(), "absent"), t.TempDir(), []string{"jpg"})
	if len(res.Errors) != 1 {
		t.Fatalf("expected one error, got %v", res.Errors)
	}
	if len(res.Moved) != 0 || len(res.Skipped) != 0 {
		t.Errorf("nothing should happen on missing source: %+v", res)
	}
}

func TestMove_CreatesDestination(t *testing.T) {
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "a", "b", "c")
	writeFile(t, src, "x.jpeg", "data")

	res := New(nil).Move(src, dst, []string{".jpeg"})
	if len(res.Moved) != 1 {
		t.Fatalf("expected move into created destination, got %+v", res)
	}
}

func TestMove_EmptySourceNoMatches(t *testing.T) {
	src := t.TempDir()
	writeFile(t, src, "doc.pdf", "x")

	res := New(nil).Move(src, t.TempDir(), []string{"jpg"})
	if len(res.Moved) != 0 || len(res.Errors) != 0 {
		t.Errorf("expected empty result, got %+v", res)
	}
}

func TestMove_IgnoresSubdirectories(t *testing.T) {
	src := t.TempDir()
	if err := os.Mkdir(filepath.Join(src, "nested.jpg"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	res := New(nil).Move(src, t.TempDir(), []string{"jpg"})
	if len(res.Moved) != 0 {
		t.Errorf("directories must not be moved: %+v", res)
	}
}
