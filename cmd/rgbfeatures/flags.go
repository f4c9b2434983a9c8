package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	rf "rgbfeatures/pkg/rgbfeatures"
)

// cliOptions holds settings that shape console output but not the results.
type cliOptions struct {
	head      int
	logLevel  string
	logFormat string
}

// usageError marks a command-line mistake; main exits with status 2 for it.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func parseFlags(args []string, output io.Writer) (rf.Config, cliOptions, error) {
	cfg := rf.DefaultConfig()
	opts := cliOptions{head: 5, logLevel: "info", logFormat: "text"}

	fs := flag.NewFlagSet("rgbfeatures", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintln(output, "usage: rgbfeatures [flags] <root-dir>")
		fmt.Fprintln(output)
		fmt.Fprintln(output, "Computes per-channel mean intensities of every image under root-dir")
		fmt.Fprintln(output, "and writes them, with a label parsed from each filename, to a table.")
		fmt.Fprintln(output)
		fs.PrintDefaults()
	}

	fs.StringVar(&cfg.RootDir, "root", "", "root directory to scan (or pass it as the argument)")
	fs.StringVar(&cfg.OutputPath, "output", cfg.OutputPath, "output file; .db/.sqlite/.sqlite3 writes SQLite, anything else CSV")
	fs.StringVar(&cfg.OutputPath, "o", cfg.OutputPath, "same as -output")
	fs.StringVar(&cfg.LabelPattern, "pattern", cfg.LabelPattern, "regular expression whose first capture group is the label")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "number of images decoded concurrently")
	fs.IntVar(&opts.head, "head", opts.head, "rows shown in the summary preview")
	fs.StringVar(&opts.logLevel, "log-level", opts.logLevel, "log level: debug, info, warn, error")
	fs.StringVar(&opts.logFormat, "log-format", opts.logFormat, "log format: text or json")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return cfg, opts, err
		}
		return cfg, opts, &usageError{err}
	}

	switch fs.NArg() {
	case 0:
	case 1:
		if cfg.RootDir != "" && cfg.RootDir != fs.Arg(0) {
			return cfg, opts, &usageError{fmt.Errorf("root given twice: -root %q and argument %q", cfg.RootDir, fs.Arg(0))}
		}
		cfg.RootDir = fs.Arg(0)
	default:
		return cfg, opts, &usageError{fmt.Errorf("expected one root directory, got %d arguments", fs.NArg())}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, opts, &usageError{err}
	}
	if opts.head < 0 {
		return cfg, opts, &usageError{fmt.Errorf("head must not be negative, got %d", opts.head)}
	}
	if _, err := logrus.ParseLevel(opts.logLevel); err != nil {
		return cfg, opts, &usageError{err}
	}
	switch opts.logFormat {
	case "text", "json":
	default:
		return cfg, opts, &usageError{fmt.Errorf("invalid log format %q (use 'text' or 'json')", opts.logFormat)}
	}
	return cfg, opts, nil
}

func newLogger(opts cliOptions, out io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)
	if level, err := logrus.ParseLevel(opts.logLevel); err == nil {
		log.SetLevel(level)
	}
	if opts.logFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return log
}
