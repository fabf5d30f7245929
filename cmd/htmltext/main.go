// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/htmltext

// htmltext renders HTML documents into plain text with list syntax.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/woozymasta/htmltext"
)

var (
	Version    = "dev"
	Commit     = "unknown"
	BuildTime  = time.Unix(0, 0)
	URL        = "https://github.com/woozymasta/htmltext"
	_buildTime string
)

// cliOptions describes htmltext CLI flags and subcommands.
type cliOptions struct {
	Version versionCommand `command:"version" description:"Print version information"`
	Config  configCommand  `command:"config" description:"Print default YAML config"`
	Kinds   kindsCommand   `command:"kinds" description:"List handler kinds and their default tags"`
	Convert convertCommand `command:"convert" description:"Convert HTML to plain text"`
}

// convertFlags groups conversion flags.
type convertFlags struct {
	ConfigPath  string   `short:"c" long:"config" description:"Path to YAML config file"`
	Bullet      string   `short:"b" long:"bullet" description:"Bullet marker for unordered and menu lists" choice:"*" choice:"-" choice:"+"`
	ContentType string   `short:"t" long:"content-type" description:"Input content type with charset (for example: text/html; charset=windows-1251)"`
	Tags        []string `short:"g" long:"tag" description:"Bind tag to handler kind as tag=kind (repeatable)"`
	Verbose     bool     `short:"v" long:"verbose" description:"Enable debug logging to stderr"`
}

// convertCommand converts HTML input to plain text.
type convertCommand struct {
	runner *cliRunner
	Args   struct {
		Input  string `positional-arg-name:"input" description:"Input HTML file path (optional; stdin when omitted)"`
		Output string `positional-arg-name:"output" description:"Output text file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	Flags convertFlags `group:"Convert"`
}

// Execute runs convert subcommand.
func (command *convertCommand) Execute(_ []string) error {
	return command.runner.runConvert(command.Flags, command.Args.Input, command.Args.Output)
}

// configCommand exports default config file.
type configCommand struct {
	runner *cliRunner
	Args   struct {
		Output string `positional-arg-name:"output" description:"Output config file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`
}

// Execute runs config subcommand.
func (command *configCommand) Execute(_ []string) error {
	return command.runner.runConfig(command.Args.Output)
}

// kindsCommand lists handler kinds.
type kindsCommand struct {
	runner *cliRunner
}

// Execute runs kinds subcommand.
func (command *kindsCommand) Execute(_ []string) error {
	return command.runner.runKinds()
}

// cliRunner executes CLI operations with custom IO streams.
type cliRunner struct {
	stdin       io.Reader
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
	command.runner.printVersionInfo()
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
	return runWithIO(args, os.Stdin, stdout, stderr)
}

// runWithIO executes CLI logic with custom stdin, for tests.
func runWithIO(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	programName := strings.TrimSpace(os.Args[0])
	if programName == "" {
		programName = "htmltext"
	}

	programName = filepath.Base(programName)
	runner := cliRunner{
		programName: programName,
		stdin:       stdin,
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

// runConvert executes HTML to text flow and writes result to stdout or file.
func (runner *cliRunner) runConvert(options convertFlags, inputPath, outputPath string) error {
	config, err := loadConfig(options.ConfigPath)
	if err != nil {
		return err
	}

	bindings, err := parseTagBindings(options.Tags)
	if err != nil {
		return err
	}

	for tag, kind := range bindings {
		config.Tags[tag] = kind
	}

	if options.Bullet != "" {
		config.Bullet = options.Bullet
	}

	if options.Verbose {
		config.LogLevel = "debug"
	}

	log, err := newLogger(runner.stderr, config.LogLevel)
	if err != nil {
		return err
	}
	defer func() {
		_ = log.Sync()
	}()

	text, sourcePath, err := runner.convertInput(inputPath, htmltext.Options{
		Logger:       log,
		Tags:         config.Tags,
		BulletMarker: config.Bullet,
		ContentType:  options.ContentType,
	})
	if err != nil {
		return err
	}

	if text == "" {
		log.Warn("document rendered no text", zap.String("source", sourcePath))
	}

	return runner.writeOutput(outputPath, "text", []byte(text))
}

// runConfig writes default config to stdout or file.
func (runner *cliRunner) runConfig(outputPath string) error {
	data, err := encodeConfig(defaultConfig())
	if err != nil {
		return err
	}

	return runner.writeOutput(outputPath, "config", data)
}

// runKinds prints handler kinds with default tags bound to them.
func (runner *cliRunner) runKinds() error {
	tagsByKind := make(map[string][]string)
	for tag, kind := range htmltext.DefaultTags() {
		tagsByKind[kind] = append(tagsByKind[kind], tag)
	}

	var out strings.Builder
	for _, kind := range htmltext.HandlerKinds() {
		tags := tagsByKind[kind]
		sort.Strings(tags)

		out.WriteString(kind)
		if len(tags) > 0 {
			out.WriteString(": ")
			out.WriteString(strings.Join(tags, " "))
		}

		out.WriteString("\n")
	}

	if _, err := io.WriteString(runner.stdout, out.String()); err != nil {
		return fmt.Errorf("write kinds to stdout: %w", err)
	}

	return nil
}

// writeOutput writes data to stdout when path is empty, otherwise to file.
func (runner *cliRunner) writeOutput(outputPath, what string, data []byte) error {
	if strings.TrimSpace(outputPath) == "" {
		if _, err := runner.stdout.Write(data); err != nil {
			return fmt.Errorf("write %s to stdout: %w", what, err)
		}

		return nil
	}

	if err := os.WriteFile(outputPath, data, 0o600); err != nil {
		return fmt.Errorf("write %s file %q: %w", what, outputPath, err)
	}

	return nil
}

// convertInput converts HTML from file path or stdin and returns source marker.
func (runner *cliRunner) convertInput(path string, opt htmltext.Options) (string, string, error) {
	path = strings.TrimSpace(path)
	if path != "" {
		text, err := htmltext.ConvertFile(path, opt)
		if errors.Is(err, htmltext.ErrReadInputFile) {
			return "", "", fmt.Errorf("read html input: %w", err)
		}

		if err != nil {
			return "", "", fmt.Errorf("convert html: %w", err)
		}

		return text, path, nil
	}

	input := &contentReader{Reader: runner.stdin}
	text, err := htmltext.ConvertReader(input, opt)
	if errors.Is(err, htmltext.ErrReadInput) {
		return "", "", fmt.Errorf("read html input: %w", err)
	}

	if err != nil {
		return "", "", fmt.Errorf("convert html: %w", err)
	}

	if !input.seen {
		return "", "", errors.New("read html input: stdin: empty input")
	}

	return text, "(stdin)", nil
}

// contentReader records whether the stream carried any non-blank byte.
type contentReader struct {
	io.Reader
	seen bool
}

func (r *contentReader) Read(p []byte) (int, error) {
	n, err := r.Reader.Read(p)
	if !r.seen && len(bytes.TrimSpace(p[:n])) > 0 {
		r.seen = true
	}

	return n, err
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
	options.Config.runner = runner
	options.Kinds.runner = runner
	options.Convert.runner = runner

	parser := flags.NewParser(options, flags.HelpFlag)
	parser.Name = runner.programName
	applyCommandLongDescriptions(parser, runner.programName)

	_, err := parser.ParseArgs(args)
	if err != nil {
		return err
	}

	return nil
}

// applyCommandLongDescriptions configures detailed command help text with examples.
func applyCommandLongDescriptions(parser *flags.Parser, programName string) {
	descriptions := map[string]string{
		"convert": strings.TrimSpace(fmt.Sprintf(`
Convert HTML to plain text with flat list syntax.
Reads HTML from file argument or stdin; writes text to file argument or stdout.

Examples:
> $ %s convert page.html > page.txt
> $ curl -s https://example.com | %s convert --bullet - --tag dir=unordered-list
`, programName, programName)),
		"config": strings.TrimSpace(fmt.Sprintf(`
Print default YAML config with built-in tag bindings.
Use it as a starting point for a --config file.

Examples:
> $ %s config > htmltext.yaml
> $ %s convert --config htmltext.yaml page.html
`, programName, programName)),
		"kinds": strings.TrimSpace(`
List handler kinds accepted by --tag and config tags, with the tags bound by default.
`),
	}

	for commandName, description := range descriptions {
		command := parser.Find(commandName)
		if command == nil {
			continue
		}

		command.LongDescription = description
	}
}

// printVersionInfo writes build metadata to stdout stream.
func (runner *cliRunner) printVersionInfo() {
	_, _ = fmt.Fprintf(runner.stdout, `url:      %s
file:     %s
version:  %s
commit:   %s
built:    %s
`, URL, os.Args[0], Version, Commit, BuildTime)
}
