// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fluiddoc

package fluiddoc

import (
	"io/fs"
	"path"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Vendor is one documentation source root, e.g. "typo3".
type Vendor struct {
	Name string
	// Packages keeps discovery order, which is also output order.
	Packages []*Package
}

// Package belongs to exactly one vendor and owns its released versions.
type Package struct {
	Vendor   *Vendor
	Name     string
	Metadata PackageMetadata
	Versions []*Version
}

// Module returns the package path segment used in generated output.
func (p *Package) Module() string {
	if module := strings.TrimSpace(p.Metadata.Module); module != "" {
		return module
	}

	return p.Name
}

// Title returns the human readable package headline.
func (p *Package) Title() string {
	if title := strings.TrimSpace(p.Metadata.Title); title != "" {
		return title
	}

	if p.Vendor == nil {
		return p.Module()
	}

	return p.Vendor.Name + "/" + p.Module()
}

// Alias returns the template namespace alias used in usage examples.
func (p *Package) Alias() string {
	if alias := strings.TrimSpace(p.Metadata.Alias); alias != "" {
		return alias
	}

	return strings.ToLower(p.Module())
}

// Version is one release of a package and points at its schema file.
type Version struct {
	Package *Package
	// Name is the release identifier ("9.4"), used as a path segment.
	Name string
	// Location is the schema file path inside FS.
	Location string
	// FS is the filesystem the schema was discovered in.
	FS fs.FS
}

// Schema is the parsed, version-specific list of view helpers.
type Schema struct {
	Version         *Version
	TargetNamespace string
	// ViewHelpers keeps schema declaration order.
	ViewHelpers []ViewHelper
}

// OutputDir returns the output-relative directory of the schema root.
func (s *Schema) OutputDir() string {
	version := s.Version
	return path.Join(version.Package.Vendor.Name, version.Package.Module(), version.Name)
}

// ViewHelper is one documented template component.
type ViewHelper struct {
	// TagName is the dotted tag name as declared by the schema ("link.editRecord").
	TagName     string
	Description string
	Arguments   []Argument
	// AllowsContent reports whether the tag accepts child content.
	AllowsContent bool
}

// Argument is one declared view helper argument.
type Argument struct {
	Name        string
	Type        string
	Required    bool
	Default     string
	HasDefault  bool
	Description string
}

// Segments returns every dotted tag name segment.
func (vh ViewHelper) Segments() []string {
	return strings.Split(vh.TagName, ".")
}

// ShortName returns the last tag name segment ("editRecord").
func (vh ViewHelper) ShortName() string {
	segments := vh.Segments()
	return segments[len(segments)-1]
}

// NamespacePath returns declared namespace segments without the short name.
func (vh ViewHelper) NamespacePath() []string {
	segments := vh.Segments()
	return segments[:len(segments)-1]
}

// FileName returns the page base name without extension ("EditRecord").
func (vh ViewHelper) FileName() string {
	return upperFirst(vh.ShortName())
}

// RequiredArguments returns required arguments in declaration order.
func (vh ViewHelper) RequiredArguments() []Argument {
	out := make([]Argument, 0, len(vh.Arguments))
	for _, argument := range vh.Arguments {
		if argument.Required {
			out = append(out, argument)
		}
	}

	return out
}

// upperFirst converts the first rune to upper case.
func upperFirst(value string) string {
	r, size := utf8.DecodeRuneInString(value)
	if r == utf8.RuneError {
		return value
	}

	return string(unicode.ToUpper(r)) + value[size:]
}
