package pngme

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// Save writes the chunks back to the original file.
//
// This is an atomic operation: writes to a temporary file first, then renames
// to the original path. If any step fails, the original file remains unchanged.
//
// Options can be provided to customize save behavior:
//
//	err := file.Save(
//	    pngme.WithBackup(".bak"),
//	    pngme.WithValidation(),
//	)
func (f *File) Save(opts ...SaveOption) error {
	return f.SaveAs(f.Path, opts...)
}

// SaveAs writes the file to a new location.
//
// This is an atomic operation: writes to a temporary file first, then renames
// to the output path. If any step fails, any partially written data is cleaned up.
func (f *File) SaveAs(outputPath string, opts ...SaveOption) error { //nolint:gocyclo // Atomic file operations require sequential steps
	options := defaultSaveOptions()
	for _, opt := range opts {
		opt(options)
	}

	if f.PNG == nil {
		return fmt.Errorf("file not open: no chunks loaded")
	}

	// Original mode and mod time, if the output already exists.
	perm := os.FileMode(0o644)
	info, statErr := os.Stat(outputPath)
	if statErr == nil {
		perm = info.Mode().Perm()
	}

	// Temp file must share a directory with the output for rename to be atomic
	tempFile, err := os.CreateTemp(filepath.Dir(outputPath), ".pngme-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tempPath := tempFile.Name()

	success := false
	defer func() {
		if !success {
			_ = tempFile.Close()    //nolint:errcheck // Best effort cleanup
			_ = os.Remove(tempPath) //nolint:errcheck // Best effort cleanup
		}
	}()

	if _, err := f.WriteTo(tempFile); err != nil {
		return fmt.Errorf("write: %w", err)
	}

	if err := tempFile.Chmod(perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}

	if err := tempFile.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if options.backupSuffix != "" && statErr == nil {
		if err := os.Rename(outputPath, outputPath+options.backupSuffix); err != nil {
			return fmt.Errorf("create backup: %w", err)
		}
	}

	if err := os.Rename(tempPath, outputPath); err != nil {
		return fmt.Errorf("rename temp to output: %w", err)
	}

	success = true

	if options.preserveModTime && statErr == nil {
		_ = os.Chtimes(outputPath, info.ModTime(), info.ModTime()) //nolint:errcheck // Non-fatal: file was written successfully
	}

	if options.validate {
		if err := f.validateWrittenFile(outputPath); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
	}

	return nil
}

// validateWrittenFile re-reads the output and compares it with the in-memory chunks.
func (f *File) validateWrittenFile(path string) error {
	written, err := Open(path, WithMaxSize(0))
	if err != nil {
		return fmt.Errorf("re-open: %w", err)
	}

	if written.Len() != f.Len() {
		return fmt.Errorf("chunk count mismatch: got %d, want %d", written.Len(), f.Len())
	}
	if !bytes.Equal(written.Bytes(), f.Bytes()) {
		return fmt.Errorf("content mismatch after write")
	}

	return nil
}
