package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// FileStore keeps settings in a flat JSON object on disk. Every Set writes
// the whole file; the data is a handful of keys at most.
type FileStore struct {
	filePath string
	mu       sync.RWMutex
	values   map[string]string
}

func OpenFile(filePath string) (*FileStore, error) {
	fs := &FileStore{
		filePath: filePath,
		values:   make(map[string]string),
	}
	if err := fs.load(); err != nil {
		return nil, err
	}
	return fs, nil
}

func (fs *FileStore) load() error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if _, err := os.Stat(fs.filePath); os.IsNotExist(err) {
		// No file yet, start empty
		return nil
	}

	data, err := os.ReadFile(fs.filePath)
	if err != nil {
		return fmt.Errorf("failed to read settings file: %w", err)
	}
	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &fs.values); err != nil {
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	return nil
}

func (fs *FileStore) save() error {
	data, err := json.MarshalIndent(fs.values, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := os.WriteFile(fs.filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}

func (fs *FileStore) Get(key string) (string, bool, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	value, ok := fs.values[key]
	return value, ok, nil
}

func (fs *FileStore) Set(key, value string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.values[key] = value
	return fs.save()
}

func (fs *FileStore) Close() error {
	return nil
}
