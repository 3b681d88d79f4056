package mover

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"syscall"
)

// Result collects the outcome of one move operation. Per-file failures
// never abort the remaining files; they accumulate in Errors.
type Result struct {
	Moved   []string // filenames moved into the destination
	Skipped []string // filenames left alone because the destination name exists
	Errors  []string // per-file error descriptions
}

// Mover relocates files matching extension patterns between two
// directories without ever overwriting an existing destination file.
type Mover struct {
	log *slog.Logger
}

func New(log *slog.Logger) *Mover {
	if log == nil {
		log = slog.Default()
	}
	return &Mover{log: log}
}

// Move moves every regular file in srcDir whose extension matches one
// of exts (case-insensitive, with or without a leading dot) into
// dstDir. The destination directory is created if absent. A file whose
// name already exists at the destination is skipped, not overwritten.
func (m *Mover) Move(srcDir, dstDir string, exts []string) Result {
	var res Result

	if _, err := os.Stat(srcDir); err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("source folder %q does not exist", srcDir))
		return res
	}

	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("create destination %q: %v", dstDir, err))
		return res
	}

	wanted := normalizeExts(exts)

	entries, err := os.ReadDir(srcDir)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("read source folder: %v", err))
		return res
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !wanted[strings.ToLower(filepath.Ext(name))] {
			continue
		}

		src := filepath.Join(srcDir, name)
		dst := filepath.Join(dstDir, name)

		if _, err := os.Stat(dst); err == nil {
			m.log.Warn("destination file exists, skipping", "file", name)
			res.Skipped = append(res.Skipped, name)
			continue
		}

		if err := moveFile(src, dst); err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("move %s: %v", name, err))
			continue
		}
		m.log.Debug("moved file", "file", name, "to", dstDir)
		res.Moved = append(res.Moved, name)
	}

	return res
}

func normalizeExts(exts []string) map[string]bool {
	wanted := make(map[string]bool, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		wanted[ext] = true
	}
	return wanted
}

// moveFile renames src to dst, falling back to copy-then-remove when
// the two paths are on different filesystems.
func moveFile(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}
	if !errors.Is(err, syscall.EXDEV) {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return err
	}
	return os.Remove(src)
}
