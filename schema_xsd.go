// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fluiddoc

package fluiddoc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/jacoelho/xsd"
	"github.com/jacoelho/xsd/pkg/xmlstream"
)

// SchemaOptions configures schema construction from a version.
type SchemaOptions struct {
	// SkipValidation disables XSD compilation before extraction.
	SkipValidation bool
}

// NewSchema reads, compiles and extracts the view helpers of one version.
func NewSchema(version *Version) (*Schema, error) {
	return NewSchemaWithOptions(version, SchemaOptions{})
}

// NewSchemaWithOptions is NewSchema with explicit options.
func NewSchemaWithOptions(version *Version, opt SchemaOptions) (*Schema, error) {
	if version == nil || version.FS == nil {
		return nil, fmt.Errorf("%w: version has no schema source", ErrReadSchema)
	}

	data, err := fs.ReadFile(version.FS, version.Location)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrReadSchema, version.Location, err)
	}

	if !opt.SkipValidation {
		if _, err := xsd.LoadWithOptions(version.FS, version.Location, xsd.NewLoadOptions()); err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrCompileSchema, version.Location, err)
		}
	}

	targetNamespace, viewHelpers, err := parseViewHelperSchema(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrParseSchema, version.Location, err)
	}

	return &Schema{
		Version:         version,
		TargetNamespace: targetNamespace,
		ViewHelpers:     viewHelpers,
	}, nil
}

// schemaScanner collects view helpers while streaming one XSD document.
type schemaScanner struct {
	stack           []string
	targetNamespace string
	viewHelpers     []ViewHelper

	current       *ViewHelper
	currentArg    *Argument
	documentation strings.Builder
	inDoc         bool
}

// parseViewHelperSchema extracts top-level xsd:element declarations in document order.
func parseViewHelperSchema(r io.Reader) (string, []ViewHelper, error) {
	reader, err := xmlstream.NewStringReader(r)
	if err != nil {
		return "", nil, fmt.Errorf("xml reader: %w", err)
	}

	scanner := &schemaScanner{}
	for {
		ev, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", nil, fmt.Errorf("xml read: %w", err)
		}

		switch ev.Kind {
		case xmlstream.EventStartElement:
			if err := scanner.start(ev); err != nil {
				return "", nil, err
			}
		case xmlstream.EventEndElement:
			scanner.end()
		case xmlstream.EventCharData:
			if scanner.inDoc {
				scanner.documentation.Write(ev.Text)
			}
		}
	}

	if len(scanner.stack) != 0 {
		return "", nil, errors.New("unexpected end of document")
	}

	return scanner.targetNamespace, scanner.viewHelpers, nil
}

func (s *schemaScanner) start(ev xmlstream.StringEvent) error {
	local := ""
	if string(ev.Name.Namespace) == xmlstream.XSDNamespace {
		local = string(ev.Name.Local)
	}

	depth := len(s.stack)
	switch {
	case depth == 0:
		if local != "schema" {
			return fmt.Errorf("root element must be xsd:schema, got %q", string(ev.Name.Local))
		}
		s.targetNamespace = eventAttr(ev, "targetNamespace")
	case depth == 1 && local == "element":
		s.current = &ViewHelper{TagName: eventAttr(ev, "name")}
	case s.current == nil:
	case local == "complexType":
		if eventAttr(ev, "mixed") == "true" {
			s.current.AllowsContent = true
		}
	case local == "any":
		s.current.AllowsContent = true
	case local == "attribute":
		defaultValue, hasDefault := eventAttrOK(ev, "default")
		s.currentArg = &Argument{
			Name:       eventAttr(ev, "name"),
			Type:       localTypeName(eventAttr(ev, "type")),
			Required:   eventAttr(ev, "use") == "required",
			Default:    defaultValue,
			HasDefault: hasDefault,
		}
	case local == "documentation":
		s.inDoc = true
		s.documentation.Reset()
	}

	s.stack = append(s.stack, local)
	return nil
}

func (s *schemaScanner) end() {
	if len(s.stack) == 0 {
		return
	}

	local := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]

	switch local {
	case "documentation":
		if !s.inDoc {
			return
		}
		s.inDoc = false
		text := s.documentation.String()
		switch {
		case s.currentArg != nil:
			s.currentArg.Description = text
		case s.current != nil && len(s.stack) == 3:
			// schema > element > annotation > documentation
			s.current.Description = text
		}
	case "attribute":
		if s.current != nil && s.currentArg != nil {
			s.current.Arguments = append(s.current.Arguments, *s.currentArg)
		}
		s.currentArg = nil
	case "element":
		if len(s.stack) == 1 && s.current != nil {
			s.viewHelpers = append(s.viewHelpers, *s.current)
			s.current = nil
		}
	}
}

// eventAttr returns an unqualified attribute value or empty string.
func eventAttr(ev xmlstream.StringEvent, name string) string {
	value, _ := eventAttrOK(ev, name)
	return value
}

func eventAttrOK(ev xmlstream.StringEvent, name string) (string, bool) {
	for _, attr := range ev.Attrs {
		if attr.NamespaceURI() == "" && attr.LocalName() == name {
			return attr.Value(), true
		}
	}

	return "", false
}

// localTypeName strips the namespace prefix from a QName type reference.
func localTypeName(value string) string {
	value = strings.TrimSpace(value)
	if index := strings.LastIndexByte(value, ':'); index >= 0 {
		return value[index+1:]
	}

	return value
}
