package main

import (
	"bytes"
	"errors"
	"flag"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"go.viam.com/test"

	rf "rgbfeatures/pkg/rgbfeatures"
)

func writePNG(t *testing.T, path string, c color.RGBA) {
	t.Helper()
	test.That(t, os.MkdirAll(filepath.Dir(path), 0o755), test.ShouldBeNil)
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	f, err := os.Create(path)
	test.That(t, err, test.ShouldBeNil)
	defer f.Close()
	test.That(t, png.Encode(f, img), test.ShouldBeNil)
}

func TestParseFlagsDefaults(t *testing.T) {
	cfg, opts, err := parseFlags([]string{"/data/images"}, &bytes.Buffer{})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cfg.RootDir, test.ShouldEqual, "/data/images")
	test.That(t, cfg.OutputPath, test.ShouldEqual, rf.DefaultOutputPath)
	test.That(t, cfg.LabelPattern, test.ShouldEqual, rf.DefaultLabelPattern)
	test.That(t, cfg.Workers, test.ShouldEqual, 1)
	test.That(t, cfg.Extensions, test.ShouldResemble, rf.DefaultExtensions)
	test.That(t, opts.head, test.ShouldEqual, 5)
	test.That(t, opts.logLevel, test.ShouldEqual, "info")
	test.That(t, opts.logFormat, test.ShouldEqual, "text")
}

func TestParseFlagsOverrides(t *testing.T) {
	args := []string{"-o", "out.db", "-pattern", `conc(\d+)`, "-workers", "3", "-head", "0", "-log-format", "json", "-root", "/imgs"}
	cfg, opts, err := parseFlags(args, &bytes.Buffer{})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cfg.RootDir, test.ShouldEqual, "/imgs")
	test.That(t, cfg.OutputPath, test.ShouldEqual, "out.db")
	test.That(t, cfg.LabelPattern, test.ShouldEqual, `conc(\d+)`)
	test.That(t, cfg.Workers, test.ShouldEqual, 3)
	test.That(t, opts.head, test.ShouldEqual, 0)
	test.That(t, opts.logFormat, test.ShouldEqual, "json")
}

func TestParseFlagsErrors(t *testing.T) {
	tests := [][]string{
		{},
		{"a", "b"},
		{"-root", "a", "b"},
		{"-workers", "0", "dir"},
		{"-head", "-1", "dir"},
		{"-log-level", "loud", "dir"},
		{"-log-format", "xml", "dir"},
		{"-bogus", "dir"},
	}
	for _, args := range tests {
		_, _, err := parseFlags(args, &bytes.Buffer{})
		var usageErr *usageError
		test.That(t, errors.As(err, &usageErr), test.ShouldBeTrue)
	}
}

func TestParseFlagsHelp(t *testing.T) {
	var out bytes.Buffer
	_, _, err := parseFlags([]string{"-h"}, &out)
	test.That(t, errors.Is(err, flag.ErrHelp), test.ShouldBeTrue)
	test.That(t, out.String(), test.ShouldContainSubstring, "usage: rgbfeatures")
}

func TestRunWritesCSVAndSummary(t *testing.T) {
	root := t.TempDir()
	writePNG(t, filepath.Join(root, "A_first.png"), color.RGBA{R: 30, G: 20, B: 10, A: 255})
	writePNG(t, filepath.Join(root, "nested", "second.png"), color.RGBA{R: 5, G: 5, B: 5, A: 255})
	output := filepath.Join(t.TempDir(), "features.csv")

	var stdout, stderr bytes.Buffer
	err := run([]string{"-o", output, root}, &stdout, &stderr)
	test.That(t, err, test.ShouldBeNil)

	test.That(t, stdout.String(), test.ShouldContainSubstring, "Records written: 2")
	test.That(t, stdout.String(), test.ShouldContainSubstring, "A_first.png")
	test.That(t, stderr.String(), test.ShouldContainSubstring, "Processed A_first.png: BGR means (10.00, 20.00, 30.00), label A")
	test.That(t, stderr.String(), test.ShouldContainSubstring, "label none")

	data, err := os.ReadFile(output)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, string(data), test.ShouldContainSubstring, "A_first.png,.,10.0,20.0,30.0,A\n")
	test.That(t, string(data), test.ShouldContainSubstring, "second.png,nested,5.0,5.0,5.0,\n")
}

func TestRunEmptyDirectory(t *testing.T) {
	root := t.TempDir()
	output := filepath.Join(t.TempDir(), "features.csv")

	var stdout, stderr bytes.Buffer
	err := run([]string{"-o", output, root}, &stdout, &stderr)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, stdout.String(), test.ShouldContainSubstring, "No processable image files found")

	_, statErr := os.Stat(output)
	test.That(t, os.IsNotExist(statErr), test.ShouldBeTrue)
}

func TestRunMissingRoot(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{filepath.Join(t.TempDir(), "gone")}, &stdout, &stderr)
	test.That(t, err, test.ShouldNotBeNil)
	var usageErr *usageError
	test.That(t, errors.As(err, &usageErr), test.ShouldBeFalse)
}
