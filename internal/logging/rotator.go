package logging

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

const logFilePerm = 0o600

// RotationConfig controls a rotating log file.
type RotationConfig struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int // 0 keeps every backup
	MaxAge     time.Duration
	Compress   bool
}

// DefaultRotation returns the rotation used for --log-file.
func DefaultRotation(path string) RotationConfig {
	return RotationConfig{
		Path:       path,
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAge:     7 * 24 * time.Hour,
		Compress:   true,
	}
}

// LogRotator is an io.WriteCloser that moves the file aside once it grows
// past MaxSizeMB. Backups are named <file>.<timestamp>[.gz].
type LogRotator struct {
	mu          sync.Mutex
	dir         string
	name        string
	maxSize     int64 // bytes
	maxAge      time.Duration
	maxBackups  int
	compress    bool
	currentFile *os.File
	currentSize int64
	now         func() time.Time
}

// NewLogRotator opens (or creates) cfg.Path for appending.
func NewLogRotator(cfg RotationConfig) (*LogRotator, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("log file path is required")
	}
	if cfg.MaxSizeMB <= 0 {
		return nil, fmt.Errorf("log file max size must be positive")
	}
	r := &LogRotator{
		dir:        filepath.Dir(cfg.Path),
		name:       filepath.Base(cfg.Path),
		maxSize:    int64(cfg.MaxSizeMB) * 1024 * 1024,
		maxAge:     cfg.MaxAge,
		maxBackups: cfg.MaxBackups,
		compress:   cfg.Compress,
		now:        time.Now,
	}

	if err := r.openCurrentFile(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *LogRotator) path() string {
	return filepath.Join(r.dir, r.name)
}

func (r *LogRotator) openCurrentFile() error {
	r.currentSize = 0
	if info, err := os.Stat(r.path()); err == nil {
		r.currentSize = info.Size()
	}

	file, err := os.OpenFile(r.path(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePerm)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	r.currentFile = file
	return nil
}

func (r *LogRotator) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.currentFile == nil {
		if err := r.openCurrentFile(); err != nil {
			return 0, err
		}
	}

	if r.currentSize > 0 && r.currentSize+int64(len(p)) > r.maxSize {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := r.currentFile.Write(p)
	r.currentSize += int64(n)
	return n, err
}

func (r *LogRotator) rotate() error {
	if err := r.currentFile.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to close log file: %v\n", err)
	}
	r.currentFile = nil

	backupPath := fmt.Sprintf("%s.%s", r.path(), r.now().Format("2006-01-02-15-04-05.000"))
	if err := os.Rename(r.path(), backupPath); err != nil {
		return fmt.Errorf("failed to rotate log file: %w", err)
	}

	if r.compress {
		if err := compressFile(backupPath); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to compress log file %s: %v\n", backupPath, err)
		} else if err := os.Remove(backupPath); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to remove uncompressed log file %s: %v\n", backupPath, err)
		}
	}

	r.cleanup()
	return r.openCurrentFile()
}

func compressFile(filePath string) error {
	in, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(filePath+".gz", os.O_CREATE|os.O_WRONLY|os.O_TRUNC, logFilePerm)
	if err != nil {
		return err
	}
	defer out.Close()

	gz := gzip.NewWriter(out)
	if _, err := io.Copy(gz, in); err != nil {
		_ = gz.Close()
		return err
	}
	return gz.Close()
}

// Backups lists the rotated files, oldest first.
func (r *LogRotator) Backups() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	infos := r.backupInfos()
	names := make([]string, len(infos))
	for i, info := range infos {
		names[i] = info.Name()
	}
	return names
}

func (r *LogRotator) backupInfos() []os.FileInfo {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil
	}
	var backups []os.FileInfo
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), r.name+".") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		backups = append(backups, info)
	}
	sort.Slice(backups, func(i, j int) bool {
		if backups[i].ModTime().Equal(backups[j].ModTime()) {
			return backups[i].Name() < backups[j].Name()
		}
		return backups[i].ModTime().Before(backups[j].ModTime())
	})
	return backups
}

// cleanup drops backups older than maxAge, then the oldest ones beyond maxBackups.
func (r *LogRotator) cleanup() {
	now := r.now()
	var kept []os.FileInfo
	for _, info := range r.backupInfos() {
		if r.maxAge > 0 && now.Sub(info.ModTime()) > r.maxAge {
			r.remove(info.Name())
			continue
		}
		kept = append(kept, info)
	}

	if r.maxBackups > 0 && len(kept) > r.maxBackups {
		for _, info := range kept[:len(kept)-r.maxBackups] {
			r.remove(info.Name())
		}
	}
}

func (r *LogRotator) remove(name string) {
	if err := os.Remove(filepath.Join(r.dir, name)); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to remove old log file: %v\n", err)
	}
}

func (r *LogRotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.currentFile == nil {
		return nil
	}
	err := r.currentFile.Close()
	r.currentFile = nil
	return err
}
