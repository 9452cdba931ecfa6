// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fluiddoc

/*
Package fluiddoc generates reStructuredText reference pages for template
ViewHelpers declared in versioned XSD schemas.

Schemas are discovered below a directory laid out as

	<vendor>/<package>/package.yaml   (optional metadata)
	<vendor>/<package>/<version>.xsd

Every top-level xsd:element is one ViewHelper; its dotted name
("link.editRecord") places it in a namespace tree. Output mirrors that
tree: one Index.rst per namespace and one page per ViewHelper, e.g.
typo3/backend/9.4/Link/EditRecord.rst.

Generate everything with the reStructuredText exporter:

	cfg, err := fluiddoc.LoadConfig("fluiddoc.yaml")
	if err != nil {
		return err
	}

	rst, err := fluiddoc.NewRSTExporter(fluiddoc.NewDirWriter(cfg.OutputDir), fluiddoc.RSTOptions{}, logger)
	if err != nil {
		return err
	}

	generator := fluiddoc.NewGenerator(cfg, []fluiddoc.Exporter{rst}, logger)
	if err := fluiddoc.GenerateAll(fluiddoc.NewResolver(cfg, logger), generator); err != nil {
		return err
	}

Build a namespace tree directly:

	tree, err := fluiddoc.BuildNamespaceTree("9.4", schema.ViewHelpers)
	if err != nil {
		return err
	}

	fmt.Println(tree.Child("link").ViewHelperCount())

Render a usage example:

	example, err := fluiddoc.GenerateUsageExample(vh, "f", fluiddoc.ExampleModeRequired, fluiddoc.ExampleFormatInline)
	if err != nil {
		return err
	}

	fmt.Println(example)
*/
package fluiddoc
