package utils

import (
	"fmt"
	"os"
)

// EnsureFolder creates a folder if it doesn't exist already
// Returns an error if the path exists but is not a folder
func EnsureFolder(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return os.MkdirAll(path, os.ModePerm)
	} else if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("path %s exists and is not a folder", path)
	}
	return nil
}
