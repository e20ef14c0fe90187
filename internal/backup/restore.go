package backup

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Restore replaces the database at dbPath with the snapshot at src. When a
// database is already present, force must be set; a consistent safety copy
// is then written next to it first. Restore returns the safety copy path,
// or "" when there was nothing to preserve.
func Restore(ctx context.Context, src, dbPath string, force bool) (string, error) {
	if err := validateSnapshot(src); err != nil {
		return "", err
	}

	safety := ""
	if _, err := os.Stat(dbPath); err == nil {
		if !force {
			return "", fmt.Errorf("file already exists (use --force to overwrite): %s", dbPath)
		}
		// The safety copy is itself a VACUUM INTO snapshot, so commits
		// still sitting in the WAL are preserved.
		safety = dbPath + ".pre-restore"
		if err := Backup(ctx, dbPath, safety, true); err != nil {
			return "", fmt.Errorf("writing safety copy: %w", err)
		}
	} else if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("creating data directory: %w", err)
		}
	}

	// Stale WAL/SHM sidecars from the replaced database would be applied
	// to the restored one on first open.
	for _, sidecar := range []string{dbPath + "-wal", dbPath + "-shm"} {
		if err := os.Remove(sidecar); err != nil && !os.IsNotExist(err) {
			return "", fmt.Errorf("removing %s: %w", sidecar, err)
		}
	}

	if err := copyFile(src, dbPath); err != nil {
		return "", fmt.Errorf("restoring snapshot: %w", err)
	}

	return safety, nil
}

// validateSnapshot checks that src exists and carries the SQLite file header.
func validateSnapshot(src string) error {
	f, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening snapshot: %w", err)
	}
	defer f.Close()

	header := make([]byte, len(sqliteHeader))
	if _, err := io.ReadFull(f, header); err != nil || !bytes.Equal(header, sqliteHeader) {
		return fmt.Errorf("invalid backup: %s is not a SQLite database", src)
	}
	return nil
}

// copyFile copies src over dst via a same-directory temp file and rename,
// so a failed copy never leaves a truncated database behind.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	tmp, err := os.CreateTemp(filepath.Dir(dst), ".restore-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, in); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), dst)
}
