package main

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// startDailyBackupAtFixedTime copies the uploaded images to a timestamped
// backup folder every day at the given hour and prunes backups older than
// the retention window.
func startDailyBackupAtFixedTime(srcDir, backupDir string, retention time.Duration, hour, min int, logger *zap.Logger) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}
		logger.Info("next image backup scheduled", zap.Time("at", next))
		time.Sleep(next.Sub(now))

		timestamp := time.Now().Format("2006-01-02_15-04-05")
		destDir := filepath.Join(backupDir, timestamp)

		if err := copyDir(srcDir, destDir); err != nil {
			logger.Error("image backup failed", zap.Error(err))
		} else {
			logger.Info("images backed up", zap.String("dest", destDir))
		}

		cleanupOldBackups(backupDir, retention, logger)
	}
}

// copyDir recursively copies a folder.
func copyDir(src, dest string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return err
	}
	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		destPath := filepath.Join(dest, entry.Name())

		if entry.IsDir() {
			if err := copyDir(srcPath, destPath); err != nil {
				return err
			}
		} else {
			if err := copyFile(srcPath, destPath); err != nil {
				return err
			}
		}
	}
	return nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err = io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}

// cleanupOldBackups removes backup folders older than the retention window.
func cleanupOldBackups(backupDir string, retention time.Duration, logger *zap.Logger) {
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		logger.Error("failed to read backup directory", zap.Error(err))
		return
	}

	cutoff := time.Now().Add(-retention)

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		folderPath := filepath.Join(backupDir, entry.Name())
		info, err := os.Stat(folderPath)
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.RemoveAll(folderPath); err != nil {
				logger.Error("failed to remove old backup", zap.String("path", folderPath), zap.Error(err))
			} else {
				logger.Info("removed old backup", zap.String("path", folderPath))
			}
		}
	}
}
