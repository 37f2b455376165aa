package bank

import (
	"os"
	"path/filepath"
)

// mediaSubdir is the conventional figure directory shipped next to a
// bank file.
const mediaSubdir = "photo"

// LoadOptions controls how Load resolves a bank's media directory.
type LoadOptions struct {
	// MediaDir, when set, is used as the figure directory and always
	// wins over inference.
	MediaDir string

	// FallbackMediaDir is tried when MediaDir is empty and no photo
	// directory exists next to the bank file.
	FallbackMediaDir string
}

// DefaultLoadOptions returns options with no override; the media
// directory is inferred from the bank file's location.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{}
}

// resolveMediaDir picks the figure directory for a bank file:
// explicit override, then a photo/ subdirectory next to the file,
// then the configured fallback. Returns "" when none exists.
func resolveMediaDir(bankPath string, opts LoadOptions) string {
	if opts.MediaDir != "" {
		return absOrSelf(opts.MediaDir)
	}

	sibling := filepath.Join(filepath.Dir(bankPath), mediaSubdir)
	if dirExists(sibling) {
		return absOrSelf(sibling)
	}

	if opts.FallbackMediaDir != "" && dirExists(opts.FallbackMediaDir) {
		return absOrSelf(opts.FallbackMediaDir)
	}

	return ""
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func absOrSelf(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
