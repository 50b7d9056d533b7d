package reporter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// DirectoryManager creates the directories reports are written to
type DirectoryManager struct {
	logger zerolog.Logger
}

// NewDirectoryManager creates a new DirectoryManager
func NewDirectoryManager(logger zerolog.Logger) *DirectoryManager {
	return &DirectoryManager{
		logger: logger,
	}
}

// EnsureParentDirectory creates the directory holding the file at path
func (dm *DirectoryManager) EnsureParentDirectory(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, DirPermissions); err != nil {
		dm.logger.Error().Err(err).Str("path", dir).Msg("Failed to create directory")
		return fmt.Errorf("failed to create report directory '%s': %w", dir, err)
	}

	dm.logger.Debug().Str("path", dir).Msg("Report directory ready")
	return nil
}
