// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fluiddoc

package fluiddoc

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// PackageMetadataFile is the optional per-package metadata file name.
const PackageMetadataFile = "package.yaml"

// packageSchemaURL is the resource identifier of the embedded metadata schema.
const packageSchemaURL = "https://github.com/woozymasta/fluiddoc/schemas/package.schema.json"

//go:embed schemas/package.schema.json
var packageSchemaJSON []byte

// PackageMetadata holds optional per-package presentation settings.
type PackageMetadata struct {
	// Module overrides the package output path segment.
	Module string `yaml:"module,omitempty"`
	// Title overrides the package index headline.
	Title string `yaml:"title,omitempty"`
	// Alias is the template namespace alias used in usage examples.
	Alias string `yaml:"alias,omitempty"`
}

var compilePackageSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(packageSchemaJSON))
	if err != nil {
		return nil, err
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(packageSchemaURL, doc); err != nil {
		return nil, err
	}

	return compiler.Compile(packageSchemaURL)
})

// ParsePackageMetadata decodes and validates package.yaml content.
func ParsePackageMetadata(data []byte) (PackageMetadata, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return PackageMetadata{}, fmt.Errorf("%w: %w", ErrInvalidMetadata, err)
	}

	if raw == nil {
		return PackageMetadata{}, nil
	}

	schema, err := compilePackageSchema()
	if err != nil {
		return PackageMetadata{}, fmt.Errorf("%w: compile metadata schema: %w", ErrInvalidMetadata, err)
	}

	if err := schema.Validate(raw); err != nil {
		return PackageMetadata{}, fmt.Errorf("%w: %w", ErrInvalidMetadata, err)
	}

	var metadata PackageMetadata
	if err := yaml.Unmarshal(data, &metadata); err != nil {
		return PackageMetadata{}, fmt.Errorf("%w: %w", ErrInvalidMetadata, err)
	}

	return metadata, nil
}
