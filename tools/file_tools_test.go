package tools_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"hostbridge/tools"
)

func TestWriteFile_ThenReadBack(t *testing.T) {
	// Parent directories a/b do not exist beforehand.
	p := filepath.Join(t.TempDir(), "a", "b", "c.txt")

	out, err := tools.WriteFile(context.Background(), tools.Arguments{"path": p, "content": "hi"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.Contains(out, p) {
		t.Fatalf("confirmation %q must include the path", out)
	}

	got, err := tools.ReadFile(context.Background(), tools.Arguments{"path": p})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != "hi" {
		t.Fatalf("got %q", got)
	}
}

func TestReadFile_NotFound(t *testing.T) {
	p := filepath.Join(t.TempDir(), "does-not-exist.txt")
	if _, err := tools.ReadFile(context.Background(), tools.Arguments{"path": p}); err == nil {
		t.Fatal("expected error")
	}
}

func TestReadFile_DirectoryPath_Error(t *testing.T) {
	dir := t.TempDir()
	_, err := tools.ReadFile(context.Background(), tools.Arguments{"path": dir})
	if err == nil {
		t.Fatal("expected error for directory path")
	}
	if !strings.Contains(err.Error(), "directory") {
		t.Fatalf("got: %v", err)
	}
}

func TestListDirectory_NonRecursive(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	sub := filepath.Join(dir, "sub")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("prepare: %v", err)
	}
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("prepare: %v", err)
	}
	if err := os.WriteFile(filepath.Join(sub, "nested.txt"), []byte("y"), 0o644); err != nil {
		t.Fatalf("prepare: %v", err)
	}

	out, err := tools.ListDirectory(context.Background(), tools.Arguments{"path": dir})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 entries, got %d: %q", len(lines), out)
	}
	if !strings.Contains(out, sub) {
		t.Fatalf("non-recursive output must include the subdirectory path: %q", out)
	}
	if strings.Contains(out, "nested.txt") {
		t.Fatalf("non-recursive output must not include nested files: %q", out)
	}
}

func TestListDirectory_Recursive(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	nested := filepath.Join(sub, "nested.txt")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("prepare: %v", err)
	}
	if err := os.WriteFile(nested, []byte("y"), 0o644); err != nil {
		t.Fatalf("prepare: %v", err)
	}

	out, err := tools.ListDirectory(context.Background(), tools.Arguments{"path": dir, "recursive": true})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.Contains(out, nested) {
		t.Fatalf("recursive output missing nested file: %q", out)
	}
	for _, line := range strings.Split(out, "\n") {
		if line == sub {
			t.Fatalf("directory path must not appear in recursive output: %q", out)
		}
	}
}

func TestListDirectory_Idempotent(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"a.txt", "b.txt", "c.txt"} {
		if err := os.WriteFile(filepath.Join(dir, n), []byte("x"), 0o644); err != nil {
			t.Fatalf("prepare: %v", err)
		}
	}

	first, err := tools.ListDirectory(context.Background(), tools.Arguments{"path": dir})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	second, err := tools.ListDirectory(context.Background(), tools.Arguments{"path": dir})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if first != second {
		t.Fatalf("listings differ:\n%q\n%q", first, second)
	}
}
