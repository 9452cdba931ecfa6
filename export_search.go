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

	"github.com/blevesearch/bleve/v2"
	"github.com/charmbracelet/log"
)

// searchBatchSize is the number of documents submitted per index batch.
const searchBatchSize = 100

// defaultSearchLimit caps search results when caller passes no limit.
const defaultSearchLimit = 10

// SearchDocument is one indexed view helper page.
type SearchDocument struct {
	Tag         string   `json:"tag"`
	Vendor      string   `json:"vendor"`
	Package     string   `json:"package"`
	Version     string   `json:"version"`
	Namespace   string   `json:"namespace"`
	Page        string   `json:"page"`
	Anchor      string   `json:"anchor"`
	Description string   `json:"description"`
	Arguments   []string `json:"arguments"`
}

// SearchHit is one search result.
type SearchHit struct {
	ID       string
	Score    float64
	Document SearchDocument
}

// SearchExporter indexes view helper pages for full-text lookup.
// Index pages carry no searchable content and are ignored.
type SearchExporter struct {
	index  bleve.Index
	batch  *bleve.Batch
	logger *log.Logger
}

// NewSearchExporter creates an on-disk index at dir, replacing an existing one.
// An empty dir keeps the index in memory.
func NewSearchExporter(dir string, logger *log.Logger) (*SearchExporter, error) {
	mapping := bleve.NewIndexMapping()

	var (
		index bleve.Index
		err   error
	)
	if strings.TrimSpace(dir) == "" {
		index, err = bleve.NewMemOnly(mapping)
	} else {
		if err := os.RemoveAll(dir); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSearchIndex, err)
		}
		if err := os.MkdirAll(filepath.Dir(dir), 0o755); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSearchIndex, err)
		}
		index, err = bleve.New(dir, mapping)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSearchIndex, err)
	}

	return &SearchExporter{
		index:  index,
		batch:  index.NewBatch(),
		logger: orDiscard(logger),
	}, nil
}

// Name returns "search".
func (e *SearchExporter) Name() string {
	return "search"
}

// ExportRoot is a no-op.
func (e *SearchExporter) ExportRoot(RootNode) error { return nil }

// ExportVendor is a no-op.
func (e *SearchExporter) ExportVendor(VendorNode) error { return nil }

// ExportPackage is a no-op.
func (e *SearchExporter) ExportPackage(PackageNode) error { return nil }

// ExportNamespace is a no-op.
func (e *SearchExporter) ExportNamespace(NamespaceNode) error { return nil }

// ExportViewHelper adds the page to the pending batch.
func (e *SearchExporter) ExportViewHelper(node ViewHelperNode) error {
	vh := node.ViewHelper
	pkg := node.Schema.Version.Package

	arguments := make([]string, 0, len(vh.Arguments))
	for _, argument := range vh.Arguments {
		arguments = append(arguments, argument.Name)
	}

	page := path.Join(node.Dir, vh.FileName())
	doc := SearchDocument{
		Tag:         vh.TagName,
		Vendor:      pkg.Vendor.Name,
		Package:     pkg.Module(),
		Version:     node.Schema.Version.Name,
		Namespace:   strings.Join(vh.NamespacePath(), "."),
		Page:        page,
		Anchor:      node.Anchor,
		Description: normalizeDescription(vh.Description),
		Arguments:   arguments,
	}

	if err := e.batch.Index(page, doc); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrSearchIndex, page, err)
	}

	if e.batch.Size() >= searchBatchSize {
		return e.Flush()
	}

	return nil
}

// Flush submits pending documents.
func (e *SearchExporter) Flush() error {
	if e.batch.Size() == 0 {
		return nil
	}

	size := e.batch.Size()
	if err := e.index.Batch(e.batch); err != nil {
		return fmt.Errorf("%w: %w", ErrSearchIndex, err)
	}

	e.logger.Debug("indexed batch", "documents", size)
	e.batch = e.index.NewBatch()
	return nil
}

// Index returns the underlying index, e.g. to query an in-memory exporter.
func (e *SearchExporter) Index() bleve.Index {
	return e.index
}

// Close flushes pending documents and closes the index.
func (e *SearchExporter) Close() error {
	flushErr := e.Flush()
	if err := e.index.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrSearchIndex, err)
	}

	return flushErr
}

// OpenSearchIndex opens an index written by SearchExporter.
func OpenSearchIndex(dir string) (bleve.Index, error) {
	index, err := bleve.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSearchIndex, err)
	}

	return index, nil
}

// Search runs a match query against index and returns at most limit hits.
func Search(index bleve.Index, query string, limit int) ([]SearchHit, error) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	request := bleve.NewSearchRequest(bleve.NewMatchQuery(query))
	request.Size = limit
	request.Fields = []string{"*"}

	result, err := index.Search(request)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSearchIndex, err)
	}

	hits := make([]SearchHit, 0, len(result.Hits))
	for _, hit := range result.Hits {
		doc := SearchDocument{
			Tag:         fieldString(hit.Fields, "tag"),
			Vendor:      fieldString(hit.Fields, "vendor"),
			Package:     fieldString(hit.Fields, "package"),
			Version:     fieldString(hit.Fields, "version"),
			Namespace:   fieldString(hit.Fields, "namespace"),
			Page:        fieldString(hit.Fields, "page"),
			Anchor:      fieldString(hit.Fields, "anchor"),
			Description: fieldString(hit.Fields, "description"),
			Arguments:   fieldStrings(hit.Fields, "arguments"),
		}

		hits = append(hits, SearchHit{ID: hit.ID, Score: hit.Score, Document: doc})
	}

	return hits, nil
}

func fieldString(fields map[string]any, name string) string {
	value, _ := fields[name].(string)
	return value
}

// fieldStrings reads a stored text field that may hold one value or many.
func fieldStrings(fields map[string]any, name string) []string {
	switch value := fields[name].(type) {
	case string:
		return []string{value}
	case []any:
		out := make([]string, 0, len(value))
		for _, item := range value {
			if text, ok := item.(string); ok {
				out = append(out, text)
			}
		}
		return out
	default:
		return nil
	}
}
