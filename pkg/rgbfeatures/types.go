package rgbfeatures

import (
	"errors"
	"fmt"
	"path/filepath"
)

// DefaultLabelPattern matches a single uppercase letter immediately followed
// by an underscore, e.g. "A_sample1.png" -> "A".
const DefaultLabelPattern = `([A-Z])_`

// DefaultOutputPath is the output file written when none is configured.
const DefaultOutputPath = "rgb_features.csv"

// DefaultExtensions lists the recognized image extensions (lowercase, with leading dot).
var DefaultExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".bmp":  true,
}

// ChannelMeans holds the arithmetic mean of each color channel of an image.
// Channels are stored in the decoder's native order: blue, green, red.
type ChannelMeans struct {
	Blue  float64
	Green float64
	Red   float64
}

func (c ChannelMeans) String() string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", c.Blue, c.Green, c.Red)
}

// ImageRecord is one output row: the features extracted from a single image.
type ImageRecord struct {
	Filename string  // base name of the source file
	Folder   string  // containing directory relative to the traversal root
	Blue     float64 // mean of the blue channel
	Green    float64 // mean of the green channel
	Red      float64 // mean of the red channel
	Label    *string // concentration label, nil when the pattern did not match
}

// RelPath returns the record's path relative to the traversal root.
func (r ImageRecord) RelPath() string {
	return filepath.Join(r.Folder, r.Filename)
}

// LabelString returns the label or "" when absent.
func (r ImageRecord) LabelString() string {
	if r.Label == nil {
		return ""
	}
	return *r.Label
}

// Config controls a single extraction run.
type Config struct {
	RootDir      string          // traversal root
	OutputPath   string          // .csv, or .db/.sqlite/.sqlite3 for SQLite
	LabelPattern string          // regular expression with at least one capture group
	Extensions   map[string]bool // recognized extensions, lowercase with leading dot
	Workers      int             // concurrent decoders; 1 keeps processing sequential
}

// DefaultConfig returns a Config with the default output path, label pattern,
// extension set and a single worker. RootDir must still be set.
func DefaultConfig() Config {
	exts := make(map[string]bool, len(DefaultExtensions))
	for ext := range DefaultExtensions {
		exts[ext] = true
	}
	return Config{
		OutputPath:   DefaultOutputPath,
		LabelPattern: DefaultLabelPattern,
		Extensions:   exts,
		Workers:      1,
	}
}

// Validate reports the first missing or out-of-range setting.
func (c *Config) Validate() error {
	if c.RootDir == "" {
		return errors.New("root directory is required")
	}
	if c.OutputPath == "" {
		return errors.New("output path is required")
	}
	if c.LabelPattern == "" {
		return errors.New("label pattern is required")
	}
	if len(c.Extensions) == 0 {
		return errors.New("at least one image extension is required")
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	return nil
}

// Result summarizes a completed run.
type Result struct {
	Records    []ImageRecord // processed images, in traversal order
	Failed     []string      // paths that matched an extension but could not be decoded
	Scanned    int           // files that matched an extension
	OutputPath string        // file written; empty when nothing was written
}
