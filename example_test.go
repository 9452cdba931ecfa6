// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fluiddoc

package fluiddoc

import (
	"errors"
	"fmt"
	"testing"

	"gopkg.in/yaml.v3"
)

func buildExampleViewHelperFixture() ViewHelper {
	return ViewHelper{
		TagName: "format.currency",
		Arguments: []Argument{
			{Name: "currencySign", Type: "string", Required: true, Description: "The currency sign, e.g. $ or €."},
			{Name: "decimals", Type: "integer", HasDefault: true, Default: "2", Description: "Number of decimals.\nDefaults to two."},
			{Name: "prependCurrency", Type: "boolean", HasDefault: true, Default: "false"},
			{Name: "separator", Type: "string", HasDefault: true, Default: "it's"},
			{Name: "value", Type: "float"},
		},
	}
}

func TestGenerateUsageExampleTagRequiredMode(t *testing.T) {
	t.Parallel()

	got, err := GenerateUsageExample(buildExampleViewHelperFixture(), "f", ExampleModeRequired, ExampleFormatTag)
	if err != nil {
		t.Fatalf("GenerateUsageExample: %v", err)
	}

	if want := `<f:format.currency currencySign="{currencySign}" />`; got != want {
		t.Fatalf("tag example = %q, want %q", got, want)
	}
}

func TestGenerateUsageExampleTagAllMode(t *testing.T) {
	t.Parallel()

	vh := buildExampleViewHelperFixture()
	vh.AllowsContent = true

	got, err := GenerateUsageExample(vh, "f", ExampleModeAll, ExampleFormatTag)
	if err != nil {
		t.Fatalf("GenerateUsageExample: %v", err)
	}

	want := `<f:format.currency currencySign="{currencySign}" decimals="2" prependCurrency="false" separator="it's" value="{value}">` +
		"\n    <!-- content -->\n</f:format.currency>"
	if got != want {
		t.Fatalf("tag example = %q, want %q", got, want)
	}
}

func TestGenerateUsageExampleInline(t *testing.T) {
	t.Parallel()

	got, err := GenerateUsageExample(buildExampleViewHelperFixture(), "f", ExampleModeAll, ExampleFormatInline)
	if err != nil {
		t.Fatalf("GenerateUsageExample: %v", err)
	}

	want := `{f:format.currency(currencySign: currencySign, decimals: 2, prependCurrency: false, separator: 'it\'s', value: value)}`
	if got != want {
		t.Fatalf("inline example = %q, want %q", got, want)
	}
}

func TestGenerateUsageExampleWithoutAlias(t *testing.T) {
	t.Parallel()

	got, err := GenerateUsageExample(ViewHelper{TagName: "debug"}, "", ExampleModeRequired, ExampleFormatInline)
	if err != nil {
		t.Fatalf("GenerateUsageExample: %v", err)
	}

	if got != "{debug()}" {
		t.Fatalf("inline example = %q", got)
	}
}

func TestGenerateUsageExampleYAML(t *testing.T) {
	t.Parallel()

	got, err := GenerateUsageExample(buildExampleViewHelperFixture(), "f", ExampleModeAll, ExampleFormatYAML)
	if err != nil {
		t.Fatalf("GenerateUsageExample: %v", err)
	}

	assertContains(t, got, "# The currency sign, e.g. $ or €.\ncurrencySign:")
	assertContains(t, got, "# Number of decimals.\ndecimals: \"2\"")
	assertNotContains(t, got, "Defaults to two.")

	var decoded map[string]any
	if err := yaml.Unmarshal([]byte(got), &decoded); err != nil {
		t.Fatalf("example is not valid YAML: %v\n%s", err, got)
	}

	if fmt.Sprint(decoded["value"]) != "0" || decoded["separator"] != "it's" || decoded["currencySign"] != "<string>" {
		t.Fatalf("unexpected decoded example %#v", decoded)
	}
}

func TestGenerateUsageExampleRejectsUnknownModeAndFormat(t *testing.T) {
	t.Parallel()

	vh := buildExampleViewHelperFixture()
	if _, err := GenerateUsageExample(vh, "f", "some", ExampleFormatTag); !errors.Is(err, ErrUnknownExampleMode) {
		t.Fatalf("expected ErrUnknownExampleMode, got %v", err)
	}

	if _, err := GenerateUsageExample(vh, "f", ExampleModeAll, "json"); !errors.Is(err, ErrUnknownExampleFormat) {
		t.Fatalf("expected ErrUnknownExampleFormat, got %v", err)
	}
}

func TestGenerateUsageExampleNormalizesModeAndFormat(t *testing.T) {
	t.Parallel()

	got, err := GenerateUsageExample(ViewHelper{TagName: "debug"}, "f", " ALL ", " Tag ")
	if err != nil {
		t.Fatalf("GenerateUsageExample: %v", err)
	}

	if got != "<f:debug />" {
		t.Fatalf("tag example = %q", got)
	}
}
