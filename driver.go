// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fluiddoc

package fluiddoc

// GenerateAll resolves every installed schema and generates the whole documentation tree.
//
// Resolution, schema parsing, view helper validation and namespace tree
// building all finish before the first export, so a broken schema never leaves
// partial output behind. Exports then run root first, followed by each vendor,
// its packages and their versions in discovery order.
func GenerateAll(resolver *Resolver, generator *Generator) error {
	vendors, err := resolver.ResolveInstalledVendors()
	if err != nil {
		return err
	}

	type preparedSchema struct {
		schema *Schema
		tree   *Namespace
	}

	prepared := make(map[*Version]preparedSchema)
	for _, vendor := range vendors {
		for _, pkg := range vendor.Packages {
			for _, version := range pkg.Versions {
				schema, err := resolver.NewSchema(version)
				if err != nil {
					return err
				}

				tree, err := PrepareSchema(schema)
				if err != nil {
					return err
				}
				prepared[version] = preparedSchema{schema: schema, tree: tree}
			}
		}
	}

	if err := generator.GenerateFilesForRoot(); err != nil {
		return err
	}

	for _, vendor := range vendors {
		if err := generator.GenerateFilesForVendor(vendor); err != nil {
			return err
		}

		for _, pkg := range vendor.Packages {
			if err := generator.GenerateFilesForPackage(pkg); err != nil {
				return err
			}

			for _, version := range pkg.Versions {
				p := prepared[version]
				if err := generator.GenerateFilesForTree(p.schema, p.tree); err != nil {
					return err
				}
			}
		}
	}

	return nil
}
