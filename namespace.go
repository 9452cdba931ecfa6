// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fluiddoc

package fluiddoc

import (
	"fmt"
	"strings"
)

// Namespace is one node of the view helper hierarchy.
type Namespace struct {
	// Name is the segment as first declared by the schema ("moduleLayout").
	// The root node carries the name passed to BuildNamespaceTree.
	Name string
	// Segment is the output directory name ("ModuleLayout"); empty for root.
	Segment string
	// Path holds the directory segments from the root down to this node.
	Path []string

	ViewHelpers []*ViewHelper
	Children    []*Namespace

	children    map[string]*Namespace
	viewHelpers map[string]struct{}
}

// BuildNamespaceTree groups a flat view helper list by dotted namespace path.
//
// Siblings keep first-seen order. Segments are compared after upper-casing the
// first rune, so "link" and "Link" share one node named after the first
// declaration.
func BuildNamespaceTree(name string, viewHelpers []ViewHelper) (*Namespace, error) {
	root := newNamespace(name, "", nil)

	for i := range viewHelpers {
		vh := viewHelpers[i]
		if err := validateTagName(vh.TagName); err != nil {
			return nil, err
		}

		node := root
		for _, segment := range vh.NamespacePath() {
			node = node.ensureChild(segment)
		}

		if err := node.addViewHelper(&vh); err != nil {
			return nil, err
		}
	}

	return root, nil
}

// validateTagName rejects tag names that do not split into non-empty segments.
func validateTagName(tagName string) error {
	if strings.TrimSpace(tagName) == "" {
		return fmt.Errorf("%w: empty tag name", ErrInvalidNamespacePath)
	}

	for _, segment := range strings.Split(tagName, ".") {
		if strings.TrimSpace(segment) == "" || segment != strings.TrimSpace(segment) {
			return fmt.Errorf("%w: %q", ErrInvalidNamespacePath, tagName)
		}
	}

	return nil
}

func newNamespace(name, segment string, path []string) *Namespace {
	return &Namespace{
		Name:        name,
		Segment:     segment,
		Path:        path,
		children:    make(map[string]*Namespace),
		viewHelpers: make(map[string]struct{}),
	}
}

// ensureChild returns the child for a declared segment, creating it on first use.
func (n *Namespace) ensureChild(declared string) *Namespace {
	segment := upperFirst(declared)
	if child, ok := n.children[segment]; ok {
		return child
	}

	path := make([]string, 0, len(n.Path)+1)
	path = append(path, n.Path...)
	path = append(path, segment)

	child := newNamespace(declared, segment, path)
	n.children[segment] = child
	n.Children = append(n.Children, child)
	return child
}

func (n *Namespace) addViewHelper(vh *ViewHelper) error {
	key := vh.FileName()
	if _, exists := n.viewHelpers[key]; exists {
		return fmt.Errorf("%w: %q in namespace %q", ErrDuplicateViewHelper, vh.TagName, strings.Join(n.Path, "."))
	}

	n.viewHelpers[key] = struct{}{}
	n.ViewHelpers = append(n.ViewHelpers, vh)
	return nil
}

// Child returns a direct sub-namespace by directory segment or declared name.
func (n *Namespace) Child(segment string) *Namespace {
	if n == nil {
		return nil
	}

	return n.children[upperFirst(segment)]
}

// ViewHelperCount returns the number of directly owned view helpers.
func (n *Namespace) ViewHelperCount() int {
	return len(n.ViewHelpers)
}

// SubNamespaceCount returns the number of direct child namespaces.
func (n *Namespace) SubNamespaceCount() int {
	return len(n.Children)
}

// IsRoot reports whether the node is the schema top level.
func (n *Namespace) IsRoot() bool {
	return len(n.Path) == 0
}

// Walk visits the node and its descendants depth-first, parents before children.
func (n *Namespace) Walk(fn func(*Namespace) error) error {
	if err := fn(n); err != nil {
		return err
	}

	for _, child := range n.Children {
		if err := child.Walk(fn); err != nil {
			return err
		}
	}

	return nil
}
