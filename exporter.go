// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fluiddoc

package fluiddoc

// Exporter materializes documentation nodes in one output format.
//
// The generator calls exporters in a fixed order: root, then every vendor,
// package and schema namespace in discovery order. An error aborts the run.
type Exporter interface {
	// Name identifies the exporter in logs and errors.
	Name() string
	ExportRoot(node RootNode) error
	ExportVendor(node VendorNode) error
	ExportPackage(node PackageNode) error
	ExportNamespace(node NamespaceNode) error
	ExportViewHelper(node ViewHelperNode) error
}

// RootNode is the top of the documentation tree.
type RootNode struct {
	Title string
	// ResourcesDir supplies shared fragments copied next to the root index.
	ResourcesDir string
}

// VendorNode is one vendor index.
type VendorNode struct {
	Vendor *Vendor
	// Dir is the output-relative directory of the vendor.
	Dir string
}

// PackageNode is one package index listing its versions.
type PackageNode struct {
	Package *Package
	Dir     string
}

// NamespaceNode is one namespace index of a schema version.
type NamespaceNode struct {
	Schema    *Schema
	Namespace *Namespace
	Dir       string

	ViewHelperCount   int
	SubNamespaceCount int
}

// IsRoot reports whether the node is the version root index.
func (node NamespaceNode) IsRoot() bool {
	return node.Namespace.IsRoot()
}

// Title returns the index headline, the version name for the schema root.
func (node NamespaceNode) Title() string {
	if node.IsRoot() {
		return node.Schema.Version.Name
	}

	return node.Namespace.Name
}

// ViewHelperNode is one view helper page.
type ViewHelperNode struct {
	Schema     *Schema
	Namespace  *Namespace
	ViewHelper *ViewHelper
	// Dir is the directory of the owning namespace.
	Dir string
	// Anchor is the reference label of the page.
	Anchor string
}
