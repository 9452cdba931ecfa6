// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fluiddoc

package fluiddoc

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Writer persists generated files addressed by slash-separated relative paths.
type Writer interface {
	WriteFile(name string, content []byte) error
}

// DirWriter writes files below a root directory, each path at most once.
type DirWriter struct {
	root    string
	written map[string]struct{}
}

// NewDirWriter creates a writer rooted at dir.
func NewDirWriter(dir string) *DirWriter {
	return &DirWriter{
		root:    dir,
		written: make(map[string]struct{}),
	}
}

// WriteFile creates parent directories and writes content.
func (w *DirWriter) WriteFile(name string, content []byte) error {
	name, err := cleanOutputPath(name)
	if err != nil {
		return err
	}

	if _, ok := w.written[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateOutput, name)
	}

	target := filepath.Join(w.root, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("%w %q: %w", ErrWriteOutput, name, err)
	}

	if err := os.WriteFile(target, content, 0o644); err != nil {
		return fmt.Errorf("%w %q: %w", ErrWriteOutput, name, err)
	}

	w.written[name] = struct{}{}
	return nil
}

// MemoryWriter keeps generated files in memory in write order.
type MemoryWriter struct {
	files map[string][]byte
	order []string
}

// NewMemoryWriter creates an empty in-memory writer.
func NewMemoryWriter() *MemoryWriter {
	return &MemoryWriter{files: make(map[string][]byte)}
}

// WriteFile stores a copy of content.
func (w *MemoryWriter) WriteFile(name string, content []byte) error {
	name, err := cleanOutputPath(name)
	if err != nil {
		return err
	}

	if _, ok := w.files[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateOutput, name)
	}

	w.files[name] = append([]byte(nil), content...)
	w.order = append(w.order, name)
	return nil
}

// File returns stored content by path.
func (w *MemoryWriter) File(name string) ([]byte, bool) {
	content, ok := w.files[name]
	return content, ok
}

// Paths returns stored paths in write order.
func (w *MemoryWriter) Paths() []string {
	return append([]string(nil), w.order...)
}

// cleanOutputPath rejects absolute and escaping paths.
func cleanOutputPath(name string) (string, error) {
	cleaned := path.Clean(strings.TrimSpace(name))
	if cleaned == "." || cleaned == "" || path.IsAbs(cleaned) || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", fmt.Errorf("%w: invalid path %q", ErrWriteOutput, name)
	}

	return cleaned, nil
}
