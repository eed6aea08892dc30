package util

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
)

// EnsureDir creates the directory (and parents) if it does not exist.
func EnsureDir(dir string) error {
	if _, err := os.Stat(dir); err == nil {
		return nil
	}
	return os.MkdirAll(dir, os.ModePerm)
}

// SaveJSON writes v as indented JSON, creating the parent directory first.
func SaveJSON(savePath string, v interface{}) error {
	if err := EnsureDir(path.Dir(savePath)); err != nil {
		return fmt.Errorf("creating report directory: %w", err)
	}
	bs, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	return os.WriteFile(savePath, bs, 0644)
}

// AppendToFile appends the given lines to the file, creating it if needed.
func AppendToFile(savePath string, content ...string) error {
	f, err := os.OpenFile(savePath, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	for _, s := range content {
		if _, err = f.WriteString(s + "\n"); err != nil {
			return err
		}
	}
	return nil
}
