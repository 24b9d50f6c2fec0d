package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/avc-dev/url-alias/internal/model"
)

// FileStorage управляет персистентным хранилищем записей в JSON файле
type FileStorage struct {
	filePath string
}

// NewFileStorage создаёт новый FileStorage
func NewFileStorage(filePath string) *FileStorage {
	return &FileStorage{
		filePath: filePath,
	}
}

// Load загружает все записи из файла
func (fs *FileStorage) Load() ([]model.MappingEntry, error) {
	data, err := os.ReadFile(fs.filePath)
	if os.IsNotExist(err) {
		return []model.MappingEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	if len(data) == 0 {
		return []model.MappingEntry{}, nil
	}

	var entries []model.MappingEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	return entries, nil
}

// Save перезаписывает файл целиком.
// Данные пишутся во временный файл и затем переименовываются
func (fs *FileStorage) Save(entries []model.MappingEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(fs.filePath), filepath.Base(fs.filePath)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), fs.filePath); err != nil {
		return fmt.Errorf("failed to replace file: %w", err)
	}

	return nil
}
