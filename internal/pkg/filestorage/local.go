package filestorage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/yigit/college/internal/pkg/logger"
)

// LocalStorage saves report exports to a directory on the local filesystem.
type LocalStorage struct {
	basePath string // The root directory where exports are stored
}

// NewLocalStorage creates a new LocalStorage rooted at basePath, creating the
// directory when needed.
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create export directory")
		return nil, fmt.Errorf("failed to create export directory %s: %w", basePath, err)
	}
	logger.Debug().Str("path", basePath).Msg("Export directory ensured")

	return &LocalStorage{basePath: basePath}, nil
}

// SaveReport writes a new file named <prefix>-<uuid>.<ext>. The file is removed
// again when write fails, so no partial export is left behind.
func (ls *LocalStorage) SaveReport(prefix, ext string, write func(io.Writer) error) (*FileInfo, error) {
	filename := uuid.New().String()
	if prefix != "" {
		filename = prefix + "-" + filename
	}
	if ext = strings.TrimPrefix(ext, "."); ext != "" {
		filename += "." + ext
	}

	dstPath := ls.GetFullPath(filename)
	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create export file")
		return nil, fmt.Errorf("failed to create export file: %w", err)
	}

	if err := write(dst); err != nil {
		dst.Close()
		_ = os.Remove(dstPath)
		return nil, fmt.Errorf("failed to write export: %w", err)
	}

	if err := dst.Close(); err != nil {
		_ = os.Remove(dstPath)
		return nil, fmt.Errorf("failed to close export file: %w", err)
	}

	stat, err := os.Stat(dstPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat export file: %w", err)
	}

	logger.Info().Str("path", dstPath).Int64("size", stat.Size()).Msg("Report export saved")
	return &FileInfo{
		Path:     dstPath,
		Filename: filename,
		FileSize: stat.Size(),
	}, nil
}

// GetFullPath returns the full filesystem path for a stored filename
func (ls *LocalStorage) GetFullPath(filename string) string {
	base := filepath.Base(filename)
	if base == "" || base == "." || base == "/" {
		return ""
	}
	return filepath.Join(ls.basePath, base)
}
