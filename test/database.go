package test

import (
	"path/filepath"
	"testing"
)

// TmpFile returns the path to a unique database file to be used in tests
func TmpFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "test.db")
}
