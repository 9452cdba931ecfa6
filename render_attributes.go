// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fluiddoc

package fluiddoc

import (
	"strconv"
	"strings"
)

// fallbackDataType is shown for arguments declared without a type.
const fallbackDataType = "mixed"

// argumentView represents one argument section of a view helper page.
type argumentView struct {
	Anchor  string
	Name    string
	Aspects []attributeView
}

// attributeView is a single rendered name/value metadata item.
type attributeView struct {
	Name  string
	Value string
}

// argumentViews renders arguments in declaration order.
func argumentViews(pageAnchor string, arguments []Argument) []argumentView {
	out := make([]argumentView, 0, len(arguments))
	for _, argument := range arguments {
		out = append(out, argumentView{
			Anchor:  argumentAnchor(pageAnchor, argument.Name),
			Name:    argument.Name,
			Aspects: argumentAttributes(argument),
		})
	}

	return out
}

// argumentAttributes renders the flat aspect list of one argument.
func argumentAttributes(argument Argument) []attributeView {
	out := make([]attributeView, 0, 4)

	dataType := strings.TrimSpace(argument.Type)
	if dataType == "" {
		dataType = fallbackDataType
	}
	out = append(out, attributeView{Name: "DataType", Value: dataType})
	out = append(out, attributeView{Name: "Required", Value: strconv.FormatBool(argument.Required)})

	if argument.HasDefault {
		out = append(out, attributeView{Name: "Default", Value: defaultLiteral(argument.Default)})
	}

	if description := normalizeDescription(argument.Description); description != "" {
		out = append(out, attributeView{Name: "Description", Value: description})
	}

	return out
}

// defaultLiteral renders a default value as inline literal; empty values stay visible.
func defaultLiteral(value string) string {
	if value == "" {
		return "''"
	}

	return inlineLiteral(value)
}

// argumentAnchor builds the reference label of one argument section.
func argumentAnchor(pageAnchor, name string) string {
	return pageAnchor + "-argument-" + strings.ToLower(name)
}
