// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fluiddoc

package fluiddoc

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// ExampleModeAll builds example with all declared arguments.
	ExampleModeAll ExampleMode = "all"
	// ExampleModeRequired builds example with required arguments only.
	ExampleModeRequired ExampleMode = "required"
)

// ExampleMode configures example generation argument coverage.
type ExampleMode string

const (
	// ExampleFormatTag renders tag-based syntax: <f:format.date date="{date}" />.
	ExampleFormatTag ExampleFormat = "tag"
	// ExampleFormatInline renders inline syntax: {f:format.date(date: date)}.
	ExampleFormatInline ExampleFormat = "inline"
	// ExampleFormatYAML renders the argument set as an annotated YAML mapping.
	ExampleFormatYAML ExampleFormat = "yaml"
)

// ExampleFormat configures output format for generated usage example.
type ExampleFormat string

// exampleScalarPlaceholders provides fallback YAML values for common argument types.
var exampleScalarPlaceholders = map[string]any{
	"string":  "<string>",
	"integer": 0,
	"int":     0,
	"float":   0.0,
	"double":  0.0,
	"boolean": false,
	"bool":    false,
	"array":   []any{},
}

// exampleView is one rendered example with its code-block language.
type exampleView struct {
	Label    string
	Language string
	Code     string
}

// GenerateUsageExample returns a usage example of vh in the selected format.
func GenerateUsageExample(vh ViewHelper, alias string, mode ExampleMode, format ExampleFormat) (string, error) {
	mode, err := normalizeExampleMode(mode)
	if err != nil {
		return "", err
	}

	format, err = normalizeExampleFormat(format)
	if err != nil {
		return "", err
	}

	arguments := exampleArguments(vh, mode)
	switch format {
	case ExampleFormatTag:
		return tagExample(vh, alias, arguments), nil
	case ExampleFormatInline:
		return inlineExample(vh, alias, arguments), nil
	case ExampleFormatYAML:
		return yamlExample(arguments)
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownExampleFormat, format)
	}
}

// usageExamples builds the example section entries of a view helper page.
func usageExamples(vh ViewHelper, alias string, mode ExampleMode) ([]exampleView, error) {
	tag, err := GenerateUsageExample(vh, alias, mode, ExampleFormatTag)
	if err != nil {
		return nil, err
	}

	inline, err := GenerateUsageExample(vh, alias, mode, ExampleFormatInline)
	if err != nil {
		return nil, err
	}

	return []exampleView{
		{Label: "Tag syntax", Language: "html", Code: tag},
		{Label: "Inline syntax", Language: "html", Code: inline},
	}, nil
}

// normalizeExampleMode validates and normalizes caller mode value.
func normalizeExampleMode(mode ExampleMode) (ExampleMode, error) {
	normalized := ExampleMode(strings.ToLower(strings.TrimSpace(string(mode))))
	switch normalized {
	case ExampleModeAll, ExampleModeRequired:
		return normalized, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownExampleMode, mode)
	}
}

// normalizeExampleFormat validates and normalizes caller format value.
func normalizeExampleFormat(format ExampleFormat) (ExampleFormat, error) {
	normalized := ExampleFormat(strings.ToLower(strings.TrimSpace(string(format))))
	switch normalized {
	case ExampleFormatTag, ExampleFormatInline, ExampleFormatYAML:
		return normalized, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownExampleFormat, format)
	}
}

// exampleArguments selects arguments shown for mode in declaration order.
func exampleArguments(vh ViewHelper, mode ExampleMode) []Argument {
	if mode == ExampleModeAll {
		return vh.Arguments
	}

	return vh.RequiredArguments()
}

// tagExample renders <alias:tag name="value" /> or a content-wrapping pair.
func tagExample(vh ViewHelper, alias string, arguments []Argument) string {
	name := qualifiedTagName(alias, vh.TagName)

	var out strings.Builder
	out.WriteString("<" + name)
	for _, argument := range arguments {
		value := "{" + argument.Name + "}"
		if argument.HasDefault {
			value = argument.Default
		}

		fmt.Fprintf(&out, " %s=\"%s\"", argument.Name, escapeAttribute(value))
	}

	if vh.AllowsContent {
		out.WriteString(">\n    <!-- content -->\n</" + name + ">")
		return out.String()
	}

	out.WriteString(" />")
	return out.String()
}

// inlineExample renders {alias:tag(name: value)}.
func inlineExample(vh ViewHelper, alias string, arguments []Argument) string {
	parts := make([]string, 0, len(arguments))
	for _, argument := range arguments {
		parts = append(parts, argument.Name+": "+inlineValue(argument))
	}

	return "{" + qualifiedTagName(alias, vh.TagName) + "(" + strings.Join(parts, ", ") + ")}"
}

// yamlExample renders arguments as YAML mapping with descriptions as head comments.
func yamlExample(arguments []Argument) (string, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, argument := range arguments {
		value := exampleValue(argument)

		valueNode := &yaml.Node{}
		if err := valueNode.Encode(value); err != nil {
			return "", fmt.Errorf("encode %q example: %w", argument.Name, err)
		}

		keyNode := &yaml.Node{
			Kind:        yaml.ScalarNode,
			Tag:         "!!str",
			Value:       argument.Name,
			HeadComment: firstLine(normalizeDescription(argument.Description)),
		}
		root.Content = append(root.Content, keyNode, valueNode)
	}

	var out bytes.Buffer
	encoder := yaml.NewEncoder(&out)
	encoder.SetIndent(2)
	if err := encoder.Encode(root); err != nil {
		return "", fmt.Errorf("encode yaml example: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return "", fmt.Errorf("encode yaml example: %w", err)
	}

	return strings.TrimRight(out.String(), "\n"), nil
}

// exampleValue returns the default value or a type placeholder.
func exampleValue(argument Argument) any {
	if argument.HasDefault {
		return argument.Default
	}

	if placeholder, ok := exampleScalarPlaceholders[strings.ToLower(argument.Type)]; ok {
		return placeholder
	}

	return "<" + argument.Name + ">"
}

// inlineValue renders one inline syntax argument value.
func inlineValue(argument Argument) string {
	if !argument.HasDefault {
		return argument.Name
	}

	switch strings.ToLower(argument.Type) {
	case "integer", "int", "float", "double", "boolean", "bool":
		if argument.Default != "" {
			return argument.Default
		}
	}

	return "'" + strings.ReplaceAll(argument.Default, "'", "\\'") + "'"
}

// qualifiedTagName prefixes tagName with alias when alias is set.
func qualifiedTagName(alias, tagName string) string {
	if alias = strings.TrimSpace(alias); alias == "" {
		return tagName
	}

	return alias + ":" + tagName
}

// escapeAttribute escapes characters not allowed in double-quoted XML attributes.
func escapeAttribute(value string) string {
	replacer := strings.NewReplacer("&", "&amp;", "\"", "&quot;", "<", "&lt;")
	return replacer.Replace(value)
}

func firstLine(text string) string {
	line, _, _ := strings.Cut(text, "\n")
	return line
}
