// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fluiddoc

package fluiddoc

import (
	"errors"
	"testing"
)

func TestParsePackageMetadata(t *testing.T) {
	t.Parallel()

	metadata, err := ParsePackageMetadata([]byte("module: backend\ntitle: Backend\nalias: be\n"))
	if err != nil {
		t.Fatalf("ParsePackageMetadata: %v", err)
	}

	want := PackageMetadata{Module: "backend", Title: "Backend", Alias: "be"}
	if metadata != want {
		t.Fatalf("metadata = %+v, want %+v", metadata, want)
	}
}

func TestParsePackageMetadataEmptyDocument(t *testing.T) {
	t.Parallel()

	metadata, err := ParsePackageMetadata([]byte("# nothing here\n"))
	if err != nil {
		t.Fatalf("ParsePackageMetadata: %v", err)
	}

	if metadata != (PackageMetadata{}) {
		t.Fatalf("expected empty metadata, got %+v", metadata)
	}
}

func TestParsePackageMetadataRejectsInvalid(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"unknown key":   "vendor: typo3\n",
		"bad alias":     "alias: 9be\n",
		"bad module":    "module: ../escape\n",
		"empty title":   "title: \"\"\n",
		"not a mapping": "- backend\n",
		"broken yaml":   "module: [\n",
	}

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := ParsePackageMetadata([]byte(input))
			if !errors.Is(err, ErrInvalidMetadata) {
				t.Fatalf("expected ErrInvalidMetadata, got %v", err)
			}
		})
	}
}
