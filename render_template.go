// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fluiddoc

package fluiddoc

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
)

// templateFS stores built-in page templates and shared fragments embedded into the package.
//
//go:embed templates/*.rst.gotmpl templates/Includes.rst.txt
var templateFS embed.FS

// builtInTemplateFiles maps template aliases to embedded file paths.
var builtInTemplateFiles = map[string]string{
	templateIndexName:      "templates/index.rst.gotmpl",
	templateViewHelperName: "templates/viewhelper.rst.gotmpl",
}

// resolveTemplate parses custom template text or falls back to the named built-in template.
func resolveTemplate(name, customText string) (*template.Template, error) {
	if strings.TrimSpace(customText) != "" {
		parsed, err := template.New(name + "-custom").Funcs(templateFuncs()).Parse(customText)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrParseTemplate, name, err)
		}

		return parsed, nil
	}

	templateText, err := BuiltinTemplate(name)
	if err != nil {
		return nil, err
	}

	parsed, err := template.New(name).Funcs(templateFuncs()).Parse(templateText)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrParseTemplate, name, err)
	}

	return parsed, nil
}

// normalizeTemplateName normalizes built-in template identifiers.
func normalizeTemplateName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// templateFuncs provides utility functions available inside page templates.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"headline":  headline,
		"underline": underline,
		"indent":    indentLines,
		"literal":   inlineLiteral,
	}
}
