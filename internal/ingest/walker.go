// Package ingest loads candidate PDF documents from the local filesystem.
package ingest

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/sidepp-ar/docingest/constants"
	"github.com/sidepp-ar/docingest/internal/entity"
)

type DirStats struct {
	Scanned uint32
	Matched uint32
	Failed  uint32
}

// CollectPath loads a single file as a raw document.
func CollectPath(path string) (entity.RawDocument, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return entity.RawDocument{}, err
	}

	ext := constants.NormalizeExt(filepath.Ext(abs))
	if ext == "" || !constants.AllowedExt(ext) {
		return entity.RawDocument{}, fmt.Errorf("unsupported or missing extension: %q", ext)
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return entity.RawDocument{}, err
	}
	return entity.RawDocument{
		Name: filepath.Base(abs),
		Data: data,
	}, nil
}

// CollectDirectory walks root, skips hidden entries if requested, and loads
// every allowed file into memory. Unreadable files are counted and logged
// but never abort the walk.
func CollectDirectory(root string, skipHidden bool, logger *slog.Logger) ([]entity.RawDocument, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root path is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	var docs []entity.RawDocument
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		stats.Scanned++
		if walkErr != nil {
			logger.Warn("ingest.walk.error", "path", path, "error", walkErr)
			stats.Failed++
			return nil
		}
		if skipHidden && isHidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		ext := constants.NormalizeExt(filepath.Ext(path))
		if !constants.AllowedExt(ext) {
			return nil
		}
		stats.Matched++

		doc, err := CollectPath(path)
		if err != nil {
			logger.Warn("ingest.read.error", "path", path, "error", err)
			stats.Failed++
			return nil
		}
		docs = append(docs, doc)
		return nil
	})
	if err != nil {
		return docs, stats, fmt.Errorf("walk: %w", err)
	}

	logger.Info("ingest.collect.done", "root", root, "scanned", stats.Scanned, "matched", stats.Matched, "failed", stats.Failed)
	return docs, stats, nil
}

func isHidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".")
}
