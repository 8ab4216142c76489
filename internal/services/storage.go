package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// TempStorage holds an uploaded document for the duration of one
// request. Files get a unique name so concurrent requests never
// collide, and the handler removes them once processing completes,
// success or failure.
type TempStorage interface {
	SaveUpload(file *multipart.FileHeader) (string, error)
	Remove(filePath string) error
	EnsureDir() error
}

type tempStorage struct {
	dir string
}

func NewTempStorage(dir string) TempStorage {
	return &tempStorage{dir: dir}
}

func (s *tempStorage) EnsureDir() error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}
	return nil
}

// SaveUpload writes the uploaded file under a uuid-unique name and
// returns its path.
func (s *tempStorage) SaveUpload(file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".pdf" {
		return "", fmt.Errorf("invalid file extension: %s", ext)
	}

	filePath := filepath.Join(s.dir, fmt.Sprintf("resume_%s%s", uuid.New().String(), ext))

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(filePath)
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	return filePath, nil
}

func (s *tempStorage) Remove(filePath string) error {
	if err := os.Remove(filePath); err != nil {
		return fmt.Errorf("failed to delete temp file: %w", err)
	}
	return nil
}
