package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/roomnest-app/roomnest-backend/internal/config"
)

// LocalStorage persists uploaded files (listing photos, documents) on the
// local filesystem under random names and returns a public URL for each.
type LocalStorage struct {
	basePath string
	baseURL  string
}

func NewLocalStorage(cfg *config.StorageConfig) (*LocalStorage, error) {
	if err := os.MkdirAll(cfg.Path, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &LocalStorage{
		basePath: cfg.Path,
		baseURL:  strings.TrimSuffix(cfg.BaseURL, "/"),
	}, nil
}

// Save writes the content under a generated name and returns its URL.
// The original filename only contributes its extension.
func (s *LocalStorage) Save(content io.Reader, originalName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	name := uuid.NewString() + ext

	f, err := os.Create(filepath.Join(s.basePath, name))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return s.baseURL + "/" + name, nil
}

// Delete removes a previously stored file by its URL. Missing files are
// not an error.
func (s *LocalStorage) Delete(fileURL string) error {
	name := filepath.Base(fileURL)
	err := os.Remove(filepath.Join(s.basePath, name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
