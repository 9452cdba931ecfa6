// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fluiddoc

package fluiddoc

import "errors"

var (
	// ErrResolveSchemas is returned when installed vendors, packages or versions cannot be listed.
	ErrResolveSchemas = errors.New("resolve schemas")
	// ErrReadSchema is returned when a version schema file cannot be read.
	ErrReadSchema = errors.New("read schema file")
	// ErrParseSchema is returned when a version schema is not well-formed XSD.
	ErrParseSchema = errors.New("parse schema")
	// ErrCompileSchema is returned when a version schema fails XSD compilation.
	ErrCompileSchema = errors.New("compile schema")
	// ErrInvalidMetadata is returned when package metadata cannot be decoded or validated.
	ErrInvalidMetadata = errors.New("invalid package metadata")
	// ErrInvalidNamespacePath is returned when a view helper tag name has an empty or broken path.
	ErrInvalidNamespacePath = errors.New("invalid namespace path")
	// ErrDuplicateViewHelper is returned when two view helpers map to the same page inside one namespace.
	ErrDuplicateViewHelper = errors.New("duplicate view helper")
	// ErrInvalidViewHelper is returned when a view helper misses a field required for rendering.
	ErrInvalidViewHelper = errors.New("invalid view helper")
	// ErrInvalidNamespace is returned when a namespace misses a field required for rendering.
	ErrInvalidNamespace = errors.New("invalid namespace")
	// ErrExecuteTemplate is returned when page template execution fails.
	ErrExecuteTemplate = errors.New("execute page template")
	// ErrParseTemplate is returned when page template parsing fails.
	ErrParseTemplate = errors.New("parse page template")
	// ErrUnknownBuiltinTemplate is returned when requested built-in template name is not registered.
	ErrUnknownBuiltinTemplate = errors.New("unknown built-in template")
	// ErrReadBuiltinTemplate is returned when built-in template file loading fails.
	ErrReadBuiltinTemplate = errors.New("read built-in template")
	// ErrReadResource is returned when a shared resource fragment cannot be read.
	ErrReadResource = errors.New("read resource")
	// ErrWriteOutput is returned when a generated file cannot be persisted.
	ErrWriteOutput = errors.New("write output")
	// ErrDuplicateOutput is returned when one output path is written twice during a run.
	ErrDuplicateOutput = errors.New("duplicate output path")
	// ErrExport is returned when an exporter fails to materialize a node.
	ErrExport = errors.New("export")
	// ErrInvalidConfig is returned when configuration values fail validation.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrLoadConfig is returned when the configuration file cannot be read or decoded.
	ErrLoadConfig = errors.New("load config")
	// ErrUnknownExampleMode is returned when example generation mode is not supported.
	ErrUnknownExampleMode = errors.New("unknown example mode")
	// ErrUnknownExampleFormat is returned when example generation format is not supported.
	ErrUnknownExampleFormat = errors.New("unknown example format")
	// ErrSearchIndex is returned when the search index cannot be opened, written or queried.
	ErrSearchIndex = errors.New("search index")
)
