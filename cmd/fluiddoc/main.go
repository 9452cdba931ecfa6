// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fluiddoc

// fluiddoc generates reStructuredText reference pages from ViewHelper XSD schemas.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"gopkg.in/yaml.v3"

	"github.com/woozymasta/fluiddoc"
)

var (
	Version    = "dev"
	Commit     = "unknown"
	BuildTime  = time.Unix(0, 0)
	URL        = "https://github.com/woozymasta/fluiddoc"
	_buildTime string
)

// cliOptions describes fluiddoc CLI flags and subcommands.
type cliOptions struct {
	Version  versionCommand  `command:"version" description:"Print version information"`
	Generate generateCommand `command:"generate" description:"Generate reference pages for every installed schema"`
	Template templateCommand `command:"template" description:"Print built-in page template"`
	Example  exampleCommand  `command:"example" description:"Print usage example of one ViewHelper"`
	Search   searchCommand   `command:"search" description:"Query a generated search index"`
	Serve    serveCommand    `command:"serve" description:"Serve a generated search index over MCP stdio"`
	Config   configCommand   `command:"config" description:"Print effective configuration"`
}

// configFlags groups configuration source flags.
type configFlags struct {
	ConfigPath string `short:"c" long:"config" description:"Path to configuration file (yaml, json or toml)" env:"FLUIDDOC_CONFIG"`
}

// generateFlags overrides configuration values when set.
type generateFlags struct {
	SchemasDir     string `short:"s" long:"schemas" description:"Directory with <vendor>/<package>/<version>.xsd schemas"`
	ResourcesDir   string `short:"r" long:"resources" description:"Directory with shared fragments such as Includes.rst.txt"`
	OutputDir      string `short:"o" long:"output" description:"Output directory for generated pages"`
	SearchIndex    string `short:"i" long:"search-index" description:"Also write a full-text search index to this directory"`
	Title          string `short:"T" long:"title" description:"Headline of the top-level index"`
	LogLevel       string `short:"l" long:"log-level" description:"Log level" choice:"debug" choice:"info" choice:"warn" choice:"error"`
	SkipValidation bool   `long:"skip-validation" description:"Do not compile schemas before extraction"`
}

// pageFlags configures page rendering.
type pageFlags struct {
	IndexTemplatePath      string `long:"index-template-file" description:"Path to custom index page template (.gotmpl)"`
	ViewHelperTemplatePath string `long:"viewhelper-template-file" description:"Path to custom ViewHelper page template (.gotmpl)"`
	ExampleMode            string `short:"m" long:"mode" description:"Arguments shown in usage examples" choice:"required" choice:"all" default:"required"`
	NoExamples             bool   `long:"no-examples" description:"Omit usage examples from ViewHelper pages"`
}

// generateCommand runs the whole generation.
type generateCommand struct {
	runner *cliRunner

	ConfigFlags   configFlags   `group:"Config"`
	GenerateFlags generateFlags `group:"Generate"`
	PageFlags     pageFlags     `group:"Pages"`
}

// Execute runs generate subcommand.
func (command *generateCommand) Execute(_ []string) error {
	return command.runner.runGenerate(command.ConfigFlags, command.GenerateFlags, command.PageFlags)
}

// templateCommand exports built-in page template.
type templateCommand struct {
	runner *cliRunner
	Args   struct {
		Output string `positional-arg-name:"output" description:"Output template file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	TemplateName string `short:"t" long:"template" description:"Built-in template" choice:"index" choice:"viewhelper" default:"index"`
}

// Execute runs template subcommand.
func (command *templateCommand) Execute(_ []string) error {
	return command.runner.runTemplate(command.TemplateName, command.Args.Output)
}

// exampleCommand prints a usage example for one tag of a schema file.
type exampleCommand struct {
	runner *cliRunner
	Args   struct {
		Schema string `positional-arg-name:"schema" description:"Version schema file (.xsd)" required:"yes"`
		Tag    string `positional-arg-name:"tag" description:"Dotted tag name, e.g. link.editRecord" required:"yes"`
	} `positional-args:"yes"`

	Alias  string `short:"a" long:"alias" description:"Namespace alias used in the example" default:"f"`
	Mode   string `short:"m" long:"mode" description:"Arguments shown in the example" choice:"required" choice:"all" default:"required"`
	Format string `short:"f" long:"format" description:"Example format" choice:"tag" choice:"inline" choice:"yaml" default:"tag"`
}

// Execute runs example subcommand.
func (command *exampleCommand) Execute(_ []string) error {
	return command.runner.runExample(command.Args.Schema, command.Args.Tag, command.Alias, command.Mode, command.Format)
}

// searchCommand queries a search index written by generate.
type searchCommand struct {
	runner *cliRunner
	Args   struct {
		Query string `positional-arg-name:"query" description:"Search terms" required:"yes"`
	} `positional-args:"yes"`

	ConfigFlags configFlags `group:"Config"`
	Index       string      `short:"i" long:"search-index" description:"Search index directory (defaults to configured search_index)"`
	Limit       int         `short:"n" long:"limit" description:"Maximum number of results" default:"10"`
}

// Execute runs search subcommand.
func (command *searchCommand) Execute(_ []string) error {
	return command.runner.runSearch(command.ConfigFlags, command.Index, command.Args.Query, command.Limit)
}

// serveCommand exposes a search index as an MCP tool on stdin/stdout.
type serveCommand struct {
	runner *cliRunner

	ConfigFlags configFlags `group:"Config"`
	Index       string      `short:"i" long:"search-index" description:"Search index directory (defaults to configured search_index)"`
	LogLevel    string      `short:"l" long:"log-level" description:"Log level" choice:"debug" choice:"info" choice:"warn" choice:"error" default:"info"`
}

// Execute runs serve subcommand.
func (command *serveCommand) Execute(_ []string) error {
	return command.runner.runServe(command.ConfigFlags, command.Index, command.LogLevel)
}

// configCommand prints effective configuration as YAML.
type configCommand struct {
	runner *cliRunner

	ConfigFlags configFlags `group:"Config"`
}

// Execute runs config subcommand.
func (command *configCommand) Execute(_ []string) error {
	return command.runner.runConfig(command.ConfigFlags)
}

// cliRunner executes CLI operations with custom IO streams.
type cliRunner struct {
	stdout      io.Writer
	stderr      io.Writer
	programName string
}

// versionCommand prints version information.
type versionCommand struct {
	runner *cliRunner
}

// Execute runs version subcommand.
func (command *versionCommand) Execute(_ []string) error {
	printVersionInfo(command.runner.stdout)
	return nil
}

func init() {
	if _buildTime != "" {
		if t, err := time.Parse(time.RFC3339, _buildTime); err == nil {
			BuildTime = t.UTC()
		}
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes CLI logic and returns process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	programName := strings.TrimSpace(os.Args[0])
	if programName == "" {
		programName = "fluiddoc"
	}

	runner := cliRunner{
		programName: filepath.Base(programName),
		stdout:      stdout,
		stderr:      stderr,
	}

	return runner.run(args)
}

// run parses CLI args and maps errors to process exit codes.
func (runner *cliRunner) run(args []string) int {
	err := parseCLIArgs(args, runner)
	if err == nil {
		return 0
	}

	var flagErr *flags.Error
	if errors.As(err, &flagErr) {
		if flagErr.Type == flags.ErrHelp {
			writeCLIError(runner.stdout, err)
			return 0
		}

		writeCLIError(runner.stderr, err)
		return 2
	}

	writeCLIError(runner.stderr, err)
	return 1
}

// loadConfig reads configuration and applies command line overrides.
func loadConfig(configOptions configFlags, overrides generateFlags) (fluiddoc.Config, error) {
	cfg, err := fluiddoc.LoadConfig(configOptions.ConfigPath)
	if err != nil {
		return fluiddoc.Config{}, err
	}

	overrideString(&cfg.SchemasDir, overrides.SchemasDir)
	overrideString(&cfg.ResourcesDir, overrides.ResourcesDir)
	overrideString(&cfg.OutputDir, overrides.OutputDir)
	overrideString(&cfg.SearchIndex, overrides.SearchIndex)
	overrideString(&cfg.Title, overrides.Title)
	overrideString(&cfg.LogLevel, overrides.LogLevel)
	if overrides.SkipValidation {
		cfg.SkipSchemaValidation = true
	}

	if err := cfg.Validate(); err != nil {
		return fluiddoc.Config{}, err
	}

	return cfg, nil
}

func overrideString(target *string, value string) {
	if value = strings.TrimSpace(value); value != "" {
		*target = value
	}
}

// runGenerate resolves schemas and writes every page below the output directory.
func (runner *cliRunner) runGenerate(configOptions configFlags, overrides generateFlags, pages pageFlags) error {
	cfg, err := loadConfig(configOptions, overrides)
	if err != nil {
		return err
	}

	logger, err := fluiddoc.NewLogger(runner.stderr, cfg.LogLevel)
	if err != nil {
		return err
	}

	rstOptions := fluiddoc.RSTOptions{
		ExampleMode:     fluiddoc.ExampleMode(pages.ExampleMode),
		DisableExamples: pages.NoExamples,
	}

	if rstOptions.IndexTemplateText, err = readOptionalFile(pages.IndexTemplatePath); err != nil {
		return err
	}

	if rstOptions.ViewHelperTemplateText, err = readOptionalFile(pages.ViewHelperTemplatePath); err != nil {
		return err
	}

	rst, err := fluiddoc.NewRSTExporter(fluiddoc.NewDirWriter(cfg.OutputDir), rstOptions, logger)
	if err != nil {
		return err
	}

	exporters := []fluiddoc.Exporter{rst}

	var search *fluiddoc.SearchExporter
	if strings.TrimSpace(cfg.SearchIndex) != "" {
		search, err = fluiddoc.NewSearchExporter(cfg.SearchIndex, logger)
		if err != nil {
			return err
		}
		exporters = append(exporters, search)
	}

	generator := fluiddoc.NewGenerator(cfg, exporters, logger)
	genErr := fluiddoc.GenerateAll(fluiddoc.NewResolver(cfg, logger), generator)

	if search != nil {
		if err := search.Close(); err != nil && genErr == nil {
			genErr = err
		}
	}

	if genErr != nil {
		return genErr
	}

	logger.Info("documentation generated", "output", cfg.OutputDir)
	return nil
}

// runTemplate writes selected built-in template to stdout or file.
func (runner *cliRunner) runTemplate(templateName, outputPath string) error {
	tpl, err := fluiddoc.BuiltinTemplate(templateName)
	if err != nil {
		return fmt.Errorf("load built-in template %q: %w", templateName, err)
	}

	return runner.writeOutput(tpl, outputPath)
}

// runExample parses one schema file and prints the usage example of tag.
func (runner *cliRunner) runExample(schemaPath, tag, alias, mode, format string) error {
	schema, err := fluiddoc.NewSchema(&fluiddoc.Version{
		Name:     strings.TrimSuffix(filepath.Base(schemaPath), filepath.Ext(schemaPath)),
		Location: filepath.Base(schemaPath),
		FS:       os.DirFS(filepath.Dir(schemaPath)),
	})
	if err != nil {
		return err
	}

	for _, vh := range schema.ViewHelpers {
		if vh.TagName != tag {
			continue
		}

		example, err := fluiddoc.GenerateUsageExample(vh, alias, fluiddoc.ExampleMode(mode), fluiddoc.ExampleFormat(format))
		if err != nil {
			return err
		}

		return runner.writeOutput(example+"\n", "")
	}

	return fmt.Errorf("tag %q not found in %q", tag, schemaPath)
}

// searchIndexDir returns indexDir or the configured search index.
func searchIndexDir(configOptions configFlags, indexDir string) (string, error) {
	if strings.TrimSpace(indexDir) == "" {
		cfg, err := fluiddoc.LoadConfig(configOptions.ConfigPath)
		if err != nil {
			return "", err
		}
		indexDir = cfg.SearchIndex
	}

	if strings.TrimSpace(indexDir) == "" {
		return "", errors.New("search index directory is not configured")
	}

	return indexDir, nil
}

// runSearch prints matching pages, one per line.
func (runner *cliRunner) runSearch(configOptions configFlags, indexDir, query string, limit int) error {
	indexDir, err := searchIndexDir(configOptions, indexDir)
	if err != nil {
		return err
	}

	index, err := fluiddoc.OpenSearchIndex(indexDir)
	if err != nil {
		return err
	}
	defer func() {
		_ = index.Close()
	}()

	hits, err := fluiddoc.Search(index, query, limit)
	if err != nil {
		return err
	}

	for _, hit := range hits {
		if _, err := fmt.Fprintf(runner.stdout, "%s\t%s\t%s\n", hit.Document.Tag, hit.Document.Page, hit.Document.Anchor); err != nil {
			return fmt.Errorf("write search results: %w", err)
		}
	}

	return nil
}

// runServe blocks serving the search index until the MCP client disconnects.
// Logs go to stderr, stdout carries the protocol.
func (runner *cliRunner) runServe(configOptions configFlags, indexDir, logLevel string) error {
	indexDir, err := searchIndexDir(configOptions, indexDir)
	if err != nil {
		return err
	}

	logger, err := fluiddoc.NewLogger(runner.stderr, logLevel)
	if err != nil {
		return err
	}

	index, err := fluiddoc.OpenSearchIndex(indexDir)
	if err != nil {
		return err
	}
	defer func() {
		_ = index.Close()
	}()

	server := fluiddoc.NewMCPServer(index, Version, logger)
	logger.Info("serving search index", "index", indexDir)

	if err := server.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		return fmt.Errorf("serve mcp: %w", err)
	}

	return nil
}

// runConfig prints effective configuration.
func (runner *cliRunner) runConfig(configOptions configFlags) error {
	cfg, err := fluiddoc.LoadConfig(configOptions.ConfigPath)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	return runner.writeOutput(string(data), "")
}

// writeOutput writes content to stdout or to outputPath when set.
func (runner *cliRunner) writeOutput(content, outputPath string) error {
	if strings.TrimSpace(outputPath) == "" {
		if _, err := io.WriteString(runner.stdout, content); err != nil {
			return fmt.Errorf("write to stdout: %w", err)
		}

		return nil
	}

	if err := os.WriteFile(outputPath, []byte(content), 0o600); err != nil {
		return fmt.Errorf("write file %q: %w", outputPath, err)
	}

	return nil
}

// readOptionalFile returns file content or empty string when path is empty.
func readOptionalFile(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read template file %q: %w", path, err)
	}

	return string(data), nil
}

// writeCLIError writes a plain-text CLI error line to the selected stream.
func writeCLIError(output io.Writer, err error) {
	if err == nil {
		return
	}

	//nolint:gosec // CLI writes plain-text diagnostics to terminal streams, not HTTP responses.
	_, _ = fmt.Fprintln(output, err.Error())
}

// parseCLIArgs parses CLI arguments and triggers selected subcommand execution.
func parseCLIArgs(args []string, runner *cliRunner) error {
	options := &cliOptions{}
	options.Version.runner = runner
	options.Generate.runner = runner
	options.Template.runner = runner
	options.Example.runner = runner
	options.Search.runner = runner
	options.Serve.runner = runner
	options.Config.runner = runner

	parser := flags.NewParser(options, flags.HelpFlag)
	parser.Name = runner.programName
	applyCommandLongDescriptions(parser, runner.programName)

	_, err := parser.ParseArgs(args)
	return err
}

// applyCommandLongDescriptions configures detailed command help text with examples.
func applyCommandLongDescriptions(parser *flags.Parser, programName string) {
	descriptions := map[string]string{
		"generate": strings.TrimSpace(fmt.Sprintf(`
Resolve <vendor>/<package>/<version>.xsd schemas and write one index page per
namespace and one page per ViewHelper. Flags override the configuration file
and FLUIDDOC_* environment variables.

Examples:
> $ %s generate --schemas schemas --output public
> $ %s generate -c fluiddoc.yaml --search-index .index
`, programName, programName)),
		"template": strings.TrimSpace(fmt.Sprintf(`
Print built-in page template text (`+"`index` or `viewhelper`"+`).
Use it as a starting point for a custom template file.

Examples:
> $ %s template > index.gotmpl
> $ %s template -t viewhelper templates/viewhelper.gotmpl
`, programName, programName)),
		"example": strings.TrimSpace(fmt.Sprintf(`
Print a usage example of one ViewHelper declared by a schema file.

Examples:
> $ %s example -a be schemas/typo3/backend/9.4.xsd link.editRecord
> $ %s example -f inline -m all schemas/typo3/fluid/9.4.xsd format.date
`, programName, programName)),
		"serve": strings.TrimSpace(fmt.Sprintf(`
Serve a search index written by generate as the MCP tool search_viewhelpers.
The protocol runs on stdin/stdout, logs go to stderr.

Examples:
> $ %s serve --search-index .index
`, programName)),
	}

	for commandName, description := range descriptions {
		command := parser.Find(commandName)
		if command == nil {
			continue
		}

		command.LongDescription = description
	}
}

func printVersionInfo(w io.Writer) {
	_, _ = fmt.Fprintf(w, `url:      %s
file:     %s
version:  %s
commit:   %s
built:    %s
`, URL, os.Args[0], Version, Commit, BuildTime)
}
