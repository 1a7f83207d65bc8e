package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/jessevdk/go-flags"

	"typename-resolver/internal/analyze"
	"typename-resolver/internal/config"
	"typename-resolver/internal/diagnostic"
	"typename-resolver/internal/report"
	"typename-resolver/internal/resolver"
)

// Exit codes.
const (
	exitOK          = 0
	exitDiagnostics = 1
	exitUsage       = 2
	exitFailure     = 3
)

// dumper prints descriptors field by field; the String methods of the model
// types would otherwise hide their structure.
var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisableMethods:          true,
	DisablePointerAddresses: true,
}

func run(args []string, stdout, stderr io.Writer) int {
	var opts Options

	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "typename"
	parser.Usage = "[OPTIONS] package..."

	if _, err := parser.ParseArgs(args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, err)
			return exitOK
		}

		fmt.Fprintln(stderr, err)

		return exitUsage
	}

	logger := newLogger(opts.LogLevel, stderr)

	cfg, err := loadConfig(opts)
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		return exitUsage
	}

	if opts.WriteConfig != "" {
		if err := config.WriteFile(cfg, opts.WriteConfig); err != nil {
			logger.Error("writing config", "error", err)
			return exitFailure
		}

		logger.Info("config written", "path", opts.WriteConfig)
	}

	if len(opts.Args.Patterns) == 0 {
		if opts.WriteConfig != "" {
			return exitOK
		}

		fmt.Fprintln(stderr, "the required argument `package (at least 1 argument)` was not provided")
		return exitUsage
	}

	sep, err := resolver.ParseSeparator(cfg.Separator)
	if err != nil {
		logger.Error("invalid separator", "error", err)
		return exitUsage
	}

	analyzer := analyze.NewAnalyzer()
	graph, err := analyzer.LoadPackages(opts.Args.Patterns...)
	if err != nil {
		logger.Error("loading packages", "patterns", opts.Args.Patterns, "error", err)
		return exitFailure
	}

	logger.Debug("packages loaded", "packages", len(analyzer.Order()), "types", len(analyzer.Elements()))

	builder := report.NewBuilder(resolver.New(*cfg), sep, cfg.AdapterSuffix)

	var (
		rep   report.Report
		diags diagnostic.Diagnostics
	)

	for _, path := range analyzer.Order() {
		elements := graph.Elements([]string{path})

		if opts.Dump {
			for _, e := range elements {
				fmt.Fprintf(stderr, "%s:\n%s", e.QualifiedName(), dumper.Sdump(e))
			}
		}

		pkgRep, pkgDiags := builder.Build(elements)
		rep.Entries = append(rep.Entries, pkgRep.Entries...)
		diags.Merge(pkgDiags)

		logger.Debug("package resolved", "package", path, "types", len(pkgRep.Entries))
	}

	for _, d := range diags.Infos {
		logger.Debug(d.Message, "type", d.TypeName, "code", d.Code)
	}

	for _, d := range diags.Warnings {
		logger.Warn(d.Message, "type", d.TypeName, "code", d.Code)
	}

	for _, d := range diags.Errors {
		logger.Warn("type skipped", "type", d.TypeName, "code", d.Code, "error", d.Message)
	}

	if err := writeReport(&rep, opts, stdout); err != nil {
		logger.Error("writing report", "error", err)
		return exitFailure
	}

	logger.Info("names resolved", "types", len(rep.Entries), "skipped", len(diags.Errors))

	if diags.HasErrors() {
		return exitDiagnostics
	}

	return exitOK
}

// loadConfig reads the config file, if any, and applies flag overrides.
func loadConfig(opts Options) (*config.Config, error) {
	cfg := config.Default()

	if opts.Config != "" {
		loaded, err := config.LoadFile(opts.Config)
		if err != nil {
			return nil, err
		}

		cfg = *loaded
	}

	if opts.Separator != "" {
		cfg.Separator = opts.Separator
	}

	if opts.Suffix != "" {
		cfg.AdapterSuffix = opts.Suffix
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func writeReport(rep *report.Report, opts Options, stdout io.Writer) error {
	if opts.Output != "" {
		return report.WriteFile(rep, opts.Output, opts.Format)
	}

	return report.Write(stdout, rep, opts.Format)
}

func newLogger(level string, w io.Writer) *slog.Logger {
	lvl := slog.LevelInfo

	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
