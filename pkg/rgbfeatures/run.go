package rgbfeatures

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// outcome is the per-file slot filled by a worker.
type outcome struct {
	record *ImageRecord
	failed bool
}

// Run discovers the images under cfg.RootDir, extracts their channel means
// and labels, and exports the records to cfg.OutputPath.
//
// Files that fail to decode are logged and skipped. When no record is
// produced, Run returns ErrNoImages and writes nothing. Records keep the
// discovery order for any worker count.
func Run(ctx context.Context, cfg Config, log logrus.FieldLogger) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	labels, err := NewLabelExtractor(cfg.LabelPattern)
	if err != nil {
		return nil, err
	}

	files, err := Discover(cfg.RootDir, cfg.Extensions, log)
	if err != nil {
		return nil, err
	}
	log.WithField("count", len(files)).Debug("Discovered image files")

	outcomes, err := processFiles(ctx, cfg, labels, files, log)
	if err != nil {
		return nil, err
	}

	result := &Result{Scanned: len(files)}
	for i, o := range outcomes {
		switch {
		case o.record != nil:
			result.Records = append(result.Records, *o.record)
		case o.failed:
			result.Failed = append(result.Failed, files[i])
		}
	}

	if len(result.Records) == 0 {
		return result, ErrNoImages
	}
	if err := Export(cfg.OutputPath, result.Records); err != nil {
		return result, err
	}
	result.OutputPath = cfg.OutputPath
	return result, nil
}

func processFiles(ctx context.Context, cfg Config, labels *LabelExtractor, files []string, log logrus.FieldLogger) ([]outcome, error) {
	outcomes := make([]outcome, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i, path := range files {
		if gctx.Err() != nil {
			break
		}
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rec, err := processFile(cfg.RootDir, path, labels)
			if err != nil {
				var decodeErr *DecodeError
				if !errors.As(err, &decodeErr) {
					return err
				}
				log.WithField("file", path).WithError(decodeErr.Err).Warn("Failed to process image")
				outcomes[i].failed = true
				return nil
			}
			label := rec.LabelString()
			if rec.Label == nil {
				label = "none"
			}
			log.Infof("Processed %s: BGR means (%.2f, %.2f, %.2f), label %s",
				rec.RelPath(), rec.Blue, rec.Green, rec.Red, label)
			outcomes[i].record = &rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

func processFile(root, path string, labels *LabelExtractor) (ImageRecord, error) {
	means, err := ExtractChannelMeans(path)
	if err != nil {
		return ImageRecord{}, err
	}
	folder, err := filepath.Rel(root, filepath.Dir(path))
	if err != nil {
		return ImageRecord{}, fmt.Errorf("relative path of %s: %w", path, err)
	}
	name := filepath.Base(path)
	return ImageRecord{
		Filename: name,
		Folder:   folder,
		Blue:     means.Blue,
		Green:    means.Green,
		Red:      means.Red,
		Label:    labels.Extract(name),
	}, nil
}
