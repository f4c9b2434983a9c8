package rgbfeatures

import (
	"fmt"
	"regexp"
)

// LabelExtractor pulls a concentration label out of a filename.
type LabelExtractor struct {
	re *regexp.Regexp
}

// NewLabelExtractor compiles pattern. The pattern needs at least one capture
// group; when it has several, the first one is the label.
func NewLabelExtractor(pattern string) (*LabelExtractor, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid label pattern %q: %w", pattern, err)
	}
	if re.NumSubexp() < 1 {
		return nil, fmt.Errorf("label pattern %q has no capture group", pattern)
	}
	return &LabelExtractor{re: re}, nil
}

// Extract returns the first capture group of the leftmost match in filename,
// or nil when nothing matches. A group that did not take part in the match
// also yields nil.
func (l *LabelExtractor) Extract(filename string) *string {
	m := l.re.FindStringSubmatchIndex(filename)
	if m == nil || m[2] < 0 {
		return nil
	}
	label := filename[m[2]:m[3]]
	return &label
}
