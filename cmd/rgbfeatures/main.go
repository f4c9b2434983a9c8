package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	rf "rgbfeatures/pkg/rgbfeatures"
)

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	var usageErr *usageError
	if errors.As(err, &usageErr) {
		os.Exit(2)
	}
	os.Exit(1)
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	log := newLogger(opts, stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Fprintf(stdout, "Scanning: %s\n", cfg.RootDir)
	startTime := time.Now()
	result, err := rf.Run(ctx, cfg, log)
	elapsed := time.Since(startTime)

	if errors.Is(err, rf.ErrNoImages) {
		fmt.Fprintln(stdout)
		fmt.Fprintf(stdout, "No processable image files found under %s (%d matched, %d failed); nothing written.\n",
			cfg.RootDir, result.Scanned, len(result.Failed))
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout)
	fmt.Fprintf(stdout, "=== RGB Feature Extraction (%.1fs) ===\n", elapsed.Seconds())
	fmt.Fprintf(stdout, "  Output:          %s\n", result.OutputPath)
	fmt.Fprintf(stdout, "  Images matched:  %d\n", result.Scanned)
	fmt.Fprintf(stdout, "  Records written: %d\n", len(result.Records))
	fmt.Fprintf(stdout, "  Failed:          %d\n", len(result.Failed))
	fmt.Fprintln(stdout, "==============================")

	if head := rf.FormatHead(result.Records, opts.head); head != "" {
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, head)
	}
	return nil
}
