package rgbfeatures

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// Discover walks root recursively and returns every file whose lowercased
// extension is in exts, in lexical walk order. A missing or unreadable root
// is an error; unreadable subdirectories are logged and skipped.
//
// A root that is a symlink is followed. Symlinks below the root are not:
// links to files are returned like files, links to directories are skipped.
// Returned paths are always under root as given.
func Discover(root string, exts map[string]bool, log logrus.FieldLogger) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("reading root directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root %s is not a directory", root)
	}
	// WalkDir does not descend into a root that is itself a symlink.
	walkRoot, err := filepath.EvalSymlinks(root)
	if err != nil {
		return nil, fmt.Errorf("resolving root directory: %w", err)
	}

	// under maps a walked path back below root as the caller spelled it.
	under := func(path string) string {
		rel, err := filepath.Rel(walkRoot, path)
		if err != nil {
			return path
		}
		return filepath.Join(root, rel)
	}

	var files []string
	err = filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == walkRoot {
				return err
			}
			log.WithField("dir", under(path)).WithError(err).Warn("Skipping unreadable entry")
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !exts[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		if d.Type()&fs.ModeSymlink != 0 {
			if target, err := os.Stat(path); err == nil && target.IsDir() {
				return nil
			}
		}
		files = append(files, under(path))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}
	return files, nil
}
