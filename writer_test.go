// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fluiddoc

package fluiddoc

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDirWriterCreatesParents(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writer := NewDirWriter(root)
	if err := writer.WriteFile("typo3/backend/9.4/Link/EditRecord.rst", []byte("page\n")); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(root, "typo3", "backend", "9.4", "Link", "EditRecord.rst"))
	if err != nil {
		t.Fatalf("read written file: %v", err)
	}

	if string(content) != "page\n" {
		t.Fatalf("content = %q", content)
	}
}

func TestDirWriterOverwritesExistingFile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "Index.rst"), []byte("stale"), 0o600); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := NewDirWriter(root).WriteFile("Index.rst", []byte("fresh")); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(root, "Index.rst"))
	if err != nil || string(content) != "fresh" {
		t.Fatalf("content = %q, err = %v", content, err)
	}
}

func TestWritersRejectDuplicatePaths(t *testing.T) {
	t.Parallel()

	writers := map[string]Writer{
		"dir":    NewDirWriter(t.TempDir()),
		"memory": NewMemoryWriter(),
	}

	for name, writer := range writers {
		if err := writer.WriteFile("a/Index.rst", []byte("x")); err != nil {
			t.Fatalf("%s: first write: %v", name, err)
		}

		if err := writer.WriteFile("a/./Index.rst", []byte("y")); !errors.Is(err, ErrDuplicateOutput) {
			t.Fatalf("%s: expected ErrDuplicateOutput, got %v", name, err)
		}
	}
}

func TestWritersRejectEscapingPaths(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"", "/etc/passwd", "../outside.rst", "a/../../b.rst"} {
		if err := NewMemoryWriter().WriteFile(name, nil); !errors.Is(err, ErrWriteOutput) {
			t.Fatalf("%q: expected ErrWriteOutput, got %v", name, err)
		}
	}
}

func TestMemoryWriterKeepsOrder(t *testing.T) {
	t.Parallel()

	writer := NewMemoryWriter()
	for _, name := range []string{"b.rst", "a.rst", "c/Index.rst"} {
		if err := writer.WriteFile(name, []byte(name)); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}

	if got := strings.Join(writer.Paths(), ","); got != "b.rst,a.rst,c/Index.rst" {
		t.Fatalf("paths = %q", got)
	}

	if content, ok := writer.File("c/Index.rst"); !ok || string(content) != "c/Index.rst" {
		t.Fatalf("File = %q, %v", content, ok)
	}
}
