// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fluiddoc

package fluiddoc

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/charmbracelet/log"
)

const (
	// indexFileName is the base name of every index page.
	indexFileName = "Index"
	// rstExt is the page file extension.
	rstExt = ".rst"
	// includesFileName is the shared fragment every page includes.
	includesFileName = "Includes.rst.txt"
	// wildcardEntry references every direct sub-directory index.
	wildcardEntry = "*/" + indexFileName
)

const (
	templateIndexName      = "index"
	templateViewHelperName = "viewhelper"
)

// RSTOptions configures the reStructuredText exporter.
type RSTOptions struct {
	// IndexTemplateText overrides the built-in index page template.
	IndexTemplateText string
	// ViewHelperTemplateText overrides the built-in view helper page template.
	ViewHelperTemplateText string
	// ExampleMode selects arguments shown in usage examples: "required" (default) or "all".
	ExampleMode ExampleMode
	// DisableExamples omits the usage example section.
	DisableExamples bool
}

// Document is one rendered page addressed by output-relative path.
type Document struct {
	Path    string
	Content string
}

// RSTExporter renders index and view helper pages as reStructuredText.
type RSTExporter struct {
	writer     Writer
	index      *template.Template
	viewHelper *template.Template
	opt        RSTOptions
	logger     *log.Logger
}

// indexView is the view model of index page templates.
type indexView struct {
	Title             string
	ViewHelperCount   int
	SubNamespaceCount int
	// Wildcard adds the "*/Index" toctree entry before explicit entries.
	Wildcard bool
	Entries  []string
}

// viewHelperView is the view model of view helper page templates.
type viewHelperView struct {
	Anchor      string
	Title       string
	Description string
	Arguments   []argumentView
	Examples    []exampleView
}

// NewRSTExporter parses page templates and creates an exporter writing through w.
func NewRSTExporter(w Writer, opt RSTOptions, logger *log.Logger) (*RSTExporter, error) {
	mode := opt.ExampleMode
	if strings.TrimSpace(string(mode)) == "" {
		mode = ExampleModeRequired
	}

	mode, err := normalizeExampleMode(mode)
	if err != nil {
		return nil, err
	}
	opt.ExampleMode = mode

	index, err := resolveTemplate(templateIndexName, opt.IndexTemplateText)
	if err != nil {
		return nil, err
	}

	viewHelper, err := resolveTemplate(templateViewHelperName, opt.ViewHelperTemplateText)
	if err != nil {
		return nil, err
	}

	return &RSTExporter{
		writer:     w,
		index:      index,
		viewHelper: viewHelper,
		opt:        opt,
		logger:     orDiscard(logger),
	}, nil
}

// Name returns "rst".
func (e *RSTExporter) Name() string {
	return "rst"
}

// ExportRoot writes the top-level index and the shared includes fragment.
func (e *RSTExporter) ExportRoot(node RootNode) error {
	doc, err := e.RenderRoot(node)
	if err != nil {
		return err
	}

	if err := e.write(doc); err != nil {
		return err
	}

	includes, err := readIncludes(node.ResourcesDir)
	if err != nil {
		return err
	}

	return e.write(Document{Path: includesFileName, Content: includes})
}

// ExportVendor writes one vendor index.
func (e *RSTExporter) ExportVendor(node VendorNode) error {
	return e.renderAndWrite(e.RenderVendor(node))
}

// ExportPackage writes one package index.
func (e *RSTExporter) ExportPackage(node PackageNode) error {
	return e.renderAndWrite(e.RenderPackage(node))
}

// ExportNamespace writes one namespace index.
func (e *RSTExporter) ExportNamespace(node NamespaceNode) error {
	return e.renderAndWrite(e.RenderNamespace(node))
}

// ExportViewHelper writes one view helper page.
func (e *RSTExporter) ExportViewHelper(node ViewHelperNode) error {
	return e.renderAndWrite(e.RenderViewHelper(node))
}

// RenderRoot renders the top-level index referencing every vendor.
func (e *RSTExporter) RenderRoot(node RootNode) (Document, error) {
	return e.renderIndex(indexFileName+rstExt, indexView{
		Title:    node.Title,
		Wildcard: true,
	})
}

// RenderVendor renders a vendor index referencing every package.
func (e *RSTExporter) RenderVendor(node VendorNode) (Document, error) {
	return e.renderIndex(indexPath(node.Dir), indexView{
		Title:    node.Vendor.Name,
		Wildcard: true,
	})
}

// RenderPackage renders a package index listing versions in discovery order.
func (e *RSTExporter) RenderPackage(node PackageNode) (Document, error) {
	entries := make([]string, 0, len(node.Package.Versions))
	for _, version := range node.Package.Versions {
		entries = append(entries, version.Name+"/"+indexFileName)
	}

	return e.renderIndex(indexPath(node.Dir), indexView{
		Title:   node.Package.Title(),
		Entries: entries,
	})
}

// RenderNamespace renders a namespace index page.
func (e *RSTExporter) RenderNamespace(node NamespaceNode) (Document, error) {
	entries := make([]string, 0, len(node.Namespace.ViewHelpers))
	for _, vh := range node.Namespace.ViewHelpers {
		entries = append(entries, vh.FileName())
	}

	return e.renderIndex(indexPath(node.Dir), indexView{
		Title:             node.Title(),
		ViewHelperCount:   node.ViewHelperCount,
		SubNamespaceCount: node.SubNamespaceCount,
		Wildcard:          node.SubNamespaceCount > 0,
		Entries:           entries,
	})
}

// RenderViewHelper renders a view helper page.
func (e *RSTExporter) RenderViewHelper(node ViewHelperNode) (Document, error) {
	vh := node.ViewHelper
	view := viewHelperView{
		Anchor:      node.Anchor,
		Title:       vh.TagName,
		Description: normalizeDescription(vh.Description),
		Arguments:   argumentViews(node.Anchor, vh.Arguments),
	}

	if !e.opt.DisableExamples {
		examples, err := usageExamples(*vh, node.Schema.Version.Package.Alias(), e.opt.ExampleMode)
		if err != nil {
			return Document{}, err
		}
		view.Examples = examples
	}

	content, err := execute(e.viewHelper, view)
	if err != nil {
		return Document{}, fmt.Errorf("%q: %w", vh.TagName, err)
	}

	return Document{
		Path:    path.Join(node.Dir, vh.FileName()+rstExt),
		Content: content,
	}, nil
}

func (e *RSTExporter) renderIndex(name string, view indexView) (Document, error) {
	content, err := execute(e.index, view)
	if err != nil {
		return Document{}, fmt.Errorf("%q: %w", name, err)
	}

	return Document{Path: name, Content: content}, nil
}

func (e *RSTExporter) renderAndWrite(doc Document, err error) error {
	if err != nil {
		return err
	}

	return e.write(doc)
}

func (e *RSTExporter) write(doc Document) error {
	e.logger.Debug("writing page", "path", doc.Path, "bytes", len(doc.Content))
	return e.writer.WriteFile(doc.Path, []byte(doc.Content))
}

// execute runs a page template and normalizes the result.
func execute(tmpl *template.Template, view any) (string, error) {
	var out strings.Builder
	if err := tmpl.Execute(&out, view); err != nil {
		return "", fmt.Errorf("%w: %w", ErrExecuteTemplate, err)
	}

	return ensureTrailingNewline(normalizeRSTOutput(out.String())), nil
}

// indexPath returns the index page path inside dir.
func indexPath(dir string) string {
	return path.Join(dir, indexFileName+rstExt)
}

// readIncludes returns Includes.rst.txt from resourcesDir or the built-in copy.
func readIncludes(resourcesDir string) (string, error) {
	if strings.TrimSpace(resourcesDir) == "" {
		data, err := templateFS.ReadFile("templates/" + includesFileName)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrReadBuiltinTemplate, err)
		}

		return string(data), nil
	}

	data, err := os.ReadFile(filepath.Join(resourcesDir, includesFileName))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadResource, err)
	}

	return string(data), nil
}

// BuiltinTemplateNames returns all available built-in template names.
func BuiltinTemplateNames() []string {
	names := make([]string, 0, len(builtInTemplateFiles))
	for name := range builtInTemplateFiles {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// BuiltinTemplate returns one built-in template by name.
func BuiltinTemplate(name string) (string, error) {
	name = normalizeTemplateName(name)
	file, ok := builtInTemplateFiles[name]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownBuiltinTemplate, name)
	}

	data, err := templateFS.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadBuiltinTemplate, err)
	}

	return string(data), nil
}
