// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fluiddoc

package fluiddoc

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/charmbracelet/log"
)

// schemaFileExt is the extension of version schema files.
const schemaFileExt = ".xsd"

// Resolver discovers installed vendors, packages and versions below the schemas directory.
//
// Expected layout:
//
//	<vendor>/<package>/package.yaml   (optional)
//	<vendor>/<package>/<version>.xsd
type Resolver struct {
	cfg    Config
	fsys   fs.FS
	logger *log.Logger
}

// NewResolver creates a resolver reading cfg.SchemasDir from disk.
func NewResolver(cfg Config, logger *log.Logger) *Resolver {
	return NewResolverFS(os.DirFS(cfg.SchemasDir), cfg, logger)
}

// NewResolverFS creates a resolver over an arbitrary filesystem rooted at the schemas directory.
func NewResolverFS(fsys fs.FS, cfg Config, logger *log.Logger) *Resolver {
	return &Resolver{
		cfg:    cfg,
		fsys:   fsys,
		logger: orDiscard(logger),
	}
}

// ResolveInstalledVendors returns every vendor with at least one package version.
func (r *Resolver) ResolveInstalledVendors() ([]*Vendor, error) {
	entries, err := fs.ReadDir(r.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrResolveSchemas, err)
	}

	vendors := make([]*Vendor, 0, len(entries))
	for _, entry := range entries {
		if !isCandidateDir(entry) {
			continue
		}

		vendor := &Vendor{Name: entry.Name()}
		if err := r.resolvePackages(vendor); err != nil {
			return nil, err
		}

		if len(vendor.Packages) == 0 {
			r.logger.Warn("vendor has no package versions, skipped", "vendor", vendor.Name)
			continue
		}

		vendors = append(vendors, vendor)
	}

	return vendors, nil
}

// NewSchema builds the schema of one resolved version using the resolver configuration.
func (r *Resolver) NewSchema(version *Version) (*Schema, error) {
	return NewSchemaWithOptions(version, SchemaOptions{
		SkipValidation: r.cfg.SkipSchemaValidation,
	})
}

func (r *Resolver) resolvePackages(vendor *Vendor) error {
	entries, err := fs.ReadDir(r.fsys, vendor.Name)
	if err != nil {
		return fmt.Errorf("%w: vendor %q: %w", ErrResolveSchemas, vendor.Name, err)
	}

	for _, entry := range entries {
		if !isCandidateDir(entry) {
			continue
		}

		pkg := &Package{Vendor: vendor, Name: entry.Name()}
		dir := path.Join(vendor.Name, pkg.Name)

		metadata, err := r.readMetadata(dir)
		if err != nil {
			return err
		}
		pkg.Metadata = metadata

		if err := r.resolveVersions(pkg, dir); err != nil {
			return err
		}

		if len(pkg.Versions) == 0 {
			r.logger.Warn("package has no schema versions, skipped", "vendor", vendor.Name, "package", pkg.Name)
			continue
		}

		vendor.Packages = append(vendor.Packages, pkg)
	}

	return nil
}

func (r *Resolver) readMetadata(dir string) (PackageMetadata, error) {
	location := path.Join(dir, PackageMetadataFile)
	data, err := fs.ReadFile(r.fsys, location)
	if errors.Is(err, fs.ErrNotExist) {
		return PackageMetadata{}, nil
	}
	if err != nil {
		return PackageMetadata{}, fmt.Errorf("%w: %q: %w", ErrResolveSchemas, location, err)
	}

	metadata, err := ParsePackageMetadata(data)
	if err != nil {
		return PackageMetadata{}, fmt.Errorf("%q: %w", location, err)
	}

	return metadata, nil
}

// resolveVersions appends versions in fs.ReadDir order, i.e. sorted by file
// name: "10.4" comes before "9.4".
func (r *Resolver) resolveVersions(pkg *Package, dir string) error {
	entries, err := fs.ReadDir(r.fsys, dir)
	if err != nil {
		return fmt.Errorf("%w: package %q: %w", ErrResolveSchemas, dir, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") || path.Ext(name) != schemaFileExt {
			continue
		}

		pkg.Versions = append(pkg.Versions, &Version{
			Package:  pkg,
			Name:     strings.TrimSuffix(name, schemaFileExt),
			Location: path.Join(dir, name),
			FS:       r.fsys,
		})
	}

	return nil
}

// isCandidateDir reports whether a directory entry can hold vendors or packages.
func isCandidateDir(entry fs.DirEntry) bool {
	return entry.IsDir() && !strings.HasPrefix(entry.Name(), ".")
}
