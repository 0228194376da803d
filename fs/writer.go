// Package fs writes brand profiles to disk.
package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/shopinsight"
)

// StoreToPath converts a store name to a relative file path.
// Example: shop.example:8080 → shop.example_8080.json
func StoreToPath(storeName string) (string, error) {
	name := strings.TrimSpace(storeName)
	if name == "" {
		return "", shopinsight.Errorf(shopinsight.EINVALID, "store name required")
	}
	name = strings.NewReplacer("/", "_", "\\", "_", ":", "_").Replace(name)
	if name == "." || name == ".." {
		return "", shopinsight.Errorf(shopinsight.EINVALID, "invalid store name %q", storeName)
	}
	return name + ".json", nil
}

// Writer writes brand profiles as JSON files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteProfile writes the profile to <baseDir>/<store>.json and returns the
// path. An existing file for the same store is replaced atomically.
func (w *Writer) WriteProfile(ctx context.Context, brand *shopinsight.BrandProfile) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	relPath, err := StoreToPath(brand.StoreName)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return "", err
	}

	content, err := json.MarshalIndent(brand, "", "  ")
	if err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(w.baseDir, ".profile-*.tmp")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(append(content, '\n')); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}

	fullPath := filepath.Join(w.baseDir, relPath)
	if err := os.Rename(tmp.Name(), fullPath); err != nil {
		return "", err
	}
	return fullPath, nil
}
