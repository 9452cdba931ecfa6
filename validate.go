// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fluiddoc

package fluiddoc

import (
	"fmt"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// tagNamePattern matches dotted tag names with non-empty segments.
var tagNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*(\.[A-Za-z_][A-Za-z0-9_-]*)*$`)

// Validate checks fields needed to render a view helper page.
func (vh ViewHelper) Validate() error {
	err := validation.ValidateStruct(&vh,
		validation.Field(&vh.TagName, validation.Required, validation.Match(tagNamePattern)),
		validation.Field(&vh.Arguments, validation.Each(validation.By(validateArgument))),
	)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidViewHelper, vh.TagName, err)
	}

	return nil
}

func validateArgument(value any) error {
	argument, ok := value.(Argument)
	if !ok {
		return fmt.Errorf("unexpected argument value %T", value)
	}

	return validation.ValidateStruct(&argument,
		validation.Field(&argument.Name, validation.Required),
	)
}

// Validate checks fields needed to render a namespace index page.
func (n *Namespace) Validate() error {
	if n == nil {
		return fmt.Errorf("%w: nil namespace", ErrInvalidNamespace)
	}

	err := validation.ValidateStruct(n,
		validation.Field(&n.Name, validation.Required),
		validation.Field(&n.Segment, validation.When(!n.IsRoot(), validation.Required)),
	)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidNamespace, n.Name, err)
	}

	return nil
}
