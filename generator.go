// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fluiddoc

package fluiddoc

import (
	"fmt"
	"path"
	"strings"

	"github.com/charmbracelet/log"
)

// Generator walks resolved entities and hands every documentation node to its exporters.
type Generator struct {
	cfg       Config
	exporters []Exporter
	logger    *log.Logger
}

// NewGenerator creates a generator fanning out to exporters in the given order.
func NewGenerator(cfg Config, exporters []Exporter, logger *log.Logger) *Generator {
	return &Generator{
		cfg:       cfg,
		exporters: exporters,
		logger:    orDiscard(logger),
	}
}

// GenerateFilesForRoot exports the top-level index.
func (g *Generator) GenerateFilesForRoot() error {
	node := RootNode{
		Title:        g.cfg.Title,
		ResourcesDir: g.cfg.ResourcesDir,
	}
	if strings.TrimSpace(node.Title) == "" {
		node.Title = defaultTitle
	}

	g.logger.Info("generating root index", "title", node.Title)
	return g.each(func(exporter Exporter) error {
		return exporter.ExportRoot(node)
	})
}

// GenerateFilesForVendor exports the index of one vendor.
func (g *Generator) GenerateFilesForVendor(vendor *Vendor) error {
	node := VendorNode{Vendor: vendor, Dir: vendor.Name}

	g.logger.Info("generating vendor index", "vendor", vendor.Name)
	return g.each(func(exporter Exporter) error {
		return exporter.ExportVendor(node)
	})
}

// GenerateFilesForPackage exports the index of one package.
func (g *Generator) GenerateFilesForPackage(pkg *Package) error {
	node := PackageNode{
		Package: pkg,
		Dir:     path.Join(pkg.Vendor.Name, pkg.Module()),
	}

	g.logger.Info("generating package index", "package", pkg.Title(), "versions", len(pkg.Versions))
	return g.each(func(exporter Exporter) error {
		return exporter.ExportPackage(node)
	})
}

// GenerateFilesForSchema exports every namespace index and view helper page of one schema.
func (g *Generator) GenerateFilesForSchema(schema *Schema) error {
	tree, err := PrepareSchema(schema)
	if err != nil {
		return err
	}

	return g.GenerateFilesForTree(schema, tree)
}

// PrepareSchema validates every view helper of schema and builds its namespace tree.
// It writes nothing, so callers can check all schemas before the first export.
func PrepareSchema(schema *Schema) (*Namespace, error) {
	for i := range schema.ViewHelpers {
		if err := schema.ViewHelpers[i].Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", schema.Version.Location, err)
		}
	}

	tree, err := BuildNamespaceTree(schema.Version.Name, schema.ViewHelpers)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", schema.Version.Location, err)
	}

	return tree, nil
}

// GenerateFilesForTree exports the pages of a tree built by PrepareSchema.
//
// The version root index is always written so package toctrees never point at
// a missing page. Deeper namespaces without view helpers and sub-namespaces
// produce no output.
func (g *Generator) GenerateFilesForTree(schema *Schema, tree *Namespace) error {
	g.logger.Info("generating schema pages",
		"version", schema.Version.Name,
		"package", schema.Version.Package.Title(),
		"viewhelpers", len(schema.ViewHelpers),
	)

	return tree.Walk(func(ns *Namespace) error {
		if !ns.IsRoot() && ns.ViewHelperCount() == 0 && ns.SubNamespaceCount() == 0 {
			g.logger.Debug("empty namespace skipped", "namespace", strings.Join(ns.Path, "."))
			return nil
		}

		if err := ns.Validate(); err != nil {
			return err
		}

		dir := path.Join(append([]string{schema.OutputDir()}, ns.Path...)...)
		node := NamespaceNode{
			Schema:            schema,
			Namespace:         ns,
			Dir:               dir,
			ViewHelperCount:   ns.ViewHelperCount(),
			SubNamespaceCount: ns.SubNamespaceCount(),
		}

		g.logger.Debug("exporting namespace", "dir", dir,
			"viewhelpers", node.ViewHelperCount, "namespaces", node.SubNamespaceCount)
		if err := g.each(func(exporter Exporter) error {
			return exporter.ExportNamespace(node)
		}); err != nil {
			return err
		}

		for _, vh := range ns.ViewHelpers {
			vhNode := ViewHelperNode{
				Schema:     schema,
				Namespace:  ns,
				ViewHelper: vh,
				Dir:        dir,
				Anchor:     viewHelperAnchor(schema, vh),
			}

			g.logger.Debug("exporting view helper", "tag", vh.TagName)
			if err := g.each(func(exporter Exporter) error {
				return exporter.ExportViewHelper(vhNode)
			}); err != nil {
				return err
			}
		}

		return nil
	})
}

// each runs fn for every exporter and stops at the first failure.
func (g *Generator) each(fn func(Exporter) error) error {
	for _, exporter := range g.exporters {
		if err := fn(exporter); err != nil {
			return fmt.Errorf("%w %s: %w", ErrExport, exporter.Name(), err)
		}
	}

	return nil
}

// viewHelperAnchor builds the page reference label, e.g. "typo3-backend-link-editrecord".
func viewHelperAnchor(schema *Schema, vh *ViewHelper) string {
	pkg := schema.Version.Package
	parts := make([]string, 0, len(vh.Segments())+2)
	parts = append(parts, pkg.Vendor.Name, pkg.Module())
	parts = append(parts, vh.Segments()...)

	return strings.ToLower(strings.Join(parts, "-"))
}
