// Package output persists and reloads resume snapshots.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Leg3ndary/githubExtract/internal/domain"
)

// WriteError reports a failure to persist the snapshot.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Save writes doc as indented JSON to path, replacing any existing file, and
// returns the absolute path written. The document is first written to a
// temporary file in the same directory and then renamed into place, so the
// target is never left half written.
func Save(doc *domain.ResumeDocument, path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", &WriteError{Path: path, Err: err}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", &WriteError{Path: absPath, Err: err}
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(absPath), "."+filepath.Base(absPath)+".*.tmp")
	if err != nil {
		return "", &WriteError{Path: absPath, Err: err}
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return "", &WriteError{Path: absPath, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return "", &WriteError{Path: absPath, Err: err}
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return "", &WriteError{Path: absPath, Err: err}
	}
	if err := os.Rename(tmpPath, absPath); err != nil {
		os.Remove(tmpPath)
		return "", &WriteError{Path: absPath, Err: err}
	}

	return absPath, nil
}

// Load reads a snapshot previously written by Save.
func Load(path string) (*domain.ResumeDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	var doc domain.ResumeDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot %s: %w", path, err)
	}
	return &doc, nil
}
