// Package manifest reads and writes manifest files.
package manifest

import (
	"fmt"
	"os"
)

// NewService creates a new manifest service.
func NewService() Service {
	return &service{}
}

// Read returns the file content as a string. A missing file surfaces as
// a wrapped fs.ErrNotExist.
func (s *service) Read(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read manifest %s: %w", path, err)
	}
	return string(b), nil
}

// Write replaces the file content in place. The write is not atomic; a
// failure can leave the file partially written.
func (s *service) Write(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write manifest %s: %w", path, err)
	}
	return nil
}
