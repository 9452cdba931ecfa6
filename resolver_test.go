// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fluiddoc

package fluiddoc

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"
)

func TestResolveInstalledVendorsFromTestdata(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.SchemasDir = "testdata/schemas"

	vendors, err := NewResolver(cfg, nil).ResolveInstalledVendors()
	if err != nil {
		t.Fatalf("ResolveInstalledVendors: %v", err)
	}

	if len(vendors) != 1 || vendors[0].Name != "typo3" {
		t.Fatalf("unexpected vendors %+v", vendors)
	}

	packages := vendors[0].Packages
	if len(packages) != 2 || packages[0].Name != "backend" || packages[1].Name != "fluid" {
		t.Fatalf("unexpected packages %+v", packages)
	}

	backend := packages[0]
	if backend.Alias() != "be" || backend.Title() != "TYPO3 Backend ViewHelpers" {
		t.Fatalf("backend metadata not applied: alias=%q title=%q", backend.Alias(), backend.Title())
	}

	fluid := packages[1]
	if fluid.Alias() != "fluid" || fluid.Title() != "typo3/fluid" {
		t.Fatalf("fluid defaults not applied: alias=%q title=%q", fluid.Alias(), fluid.Title())
	}

	if len(backend.Versions) != 1 || backend.Versions[0].Name != "9.4" {
		t.Fatalf("unexpected backend versions %+v", backend.Versions)
	}

	if backend.Versions[0].Package != backend || backend.Vendor != vendors[0] {
		t.Fatal("entity back references are not set")
	}
}

func TestResolveInstalledVendorsSkipsEmptyAndHidden(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		".git/objects/x":             {Data: []byte("x")},
		"empty/package/readme.txt":   {Data: []byte("no schemas")},
		"acme/.hidden/1.0.xsd":       {Data: []byte("<x/>")},
		"acme/widgets/1.0.xsd":       {Data: []byte("<x/>")},
		"acme/widgets/2.0.xsd":       {Data: []byte("<x/>")},
		"acme/widgets/notes.md":      {Data: []byte("ignored")},
		"acme/widgets/draft/3.0.xsd": {Data: []byte("<x/>")},
	}

	vendors, err := NewResolverFS(fsys, DefaultConfig(), nil).ResolveInstalledVendors()
	if err != nil {
		t.Fatalf("ResolveInstalledVendors: %v", err)
	}

	if len(vendors) != 1 || vendors[0].Name != "acme" {
		t.Fatalf("unexpected vendors %+v", vendors)
	}

	pkg := vendors[0].Packages[0]
	if len(vendors[0].Packages) != 1 || pkg.Name != "widgets" {
		t.Fatalf("unexpected packages %+v", vendors[0].Packages)
	}

	if len(pkg.Versions) != 2 || pkg.Versions[0].Name != "1.0" || pkg.Versions[1].Name != "2.0" {
		t.Fatalf("unexpected versions %+v", pkg.Versions)
	}

	if pkg.Versions[1].Location != "acme/widgets/2.0.xsd" {
		t.Fatalf("version location = %q", pkg.Versions[1].Location)
	}
}

func TestResolveInstalledVendorsRejectsInvalidMetadata(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"acme/widgets/package.yaml": {Data: []byte("alias: 1-bad\n")},
		"acme/widgets/1.0.xsd":      {Data: []byte("<x/>")},
	}

	_, err := NewResolverFS(fsys, DefaultConfig(), nil).ResolveInstalledVendors()
	if !errors.Is(err, ErrInvalidMetadata) {
		t.Fatalf("expected ErrInvalidMetadata, got %v", err)
	}
}

func TestResolveInstalledVendorsMissingRoot(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.SchemasDir = "testdata/does-not-exist"

	_, err := NewResolver(cfg, nil).ResolveInstalledVendors()
	if !errors.Is(err, ErrResolveSchemas) {
		t.Fatalf("expected ErrResolveSchemas, got %v", err)
	}
}

func TestPackageModuleOverridesOutputPath(t *testing.T) {
	t.Parallel()

	vendor := &Vendor{Name: "typo3"}
	pkg := &Package{Vendor: vendor, Name: "cms-backend", Metadata: PackageMetadata{Module: "backend"}}
	schema := &Schema{Version: &Version{Package: pkg, Name: "9.4"}}

	if got := schema.OutputDir(); got != "typo3/backend/9.4" {
		t.Fatalf("OutputDir = %q", got)
	}
}

func TestResolveVersionsInFileNameOrder(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"acme/widgets/9.4.xsd":  {Data: []byte("<x/>")},
		"acme/widgets/10.4.xsd": {Data: []byte("<x/>")},
		"acme/widgets/8.7.xsd":  {Data: []byte("<x/>")},
	}

	vendors, err := NewResolverFS(fsys, DefaultConfig(), nil).ResolveInstalledVendors()
	if err != nil {
		t.Fatalf("ResolveInstalledVendors: %v", err)
	}

	var names []string
	for _, version := range vendors[0].Packages[0].Versions {
		names = append(names, version.Name)
	}

	if got := strings.Join(names, ","); got != "10.4,8.7,9.4" {
		t.Fatalf("versions = %q, want 10.4,8.7,9.4", got)
	}
}
