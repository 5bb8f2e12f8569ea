package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"time"
)

// FileName is "<prefix><epoch millis>.json".
func FileName(prefix string, t time.Time) string {
	return prefix + strconv.FormatInt(t.UnixMilli(), 10) + ".json"
}

// FileNamePattern matches names produced by FileName with prefix.
func FileNamePattern(prefix string) *regexp.Regexp {
	return regexp.MustCompile(`^` + regexp.QuoteMeta(prefix) + `(\d+)\.json$`)
}

// WriteJSON encodes v with two-space indentation and creates dir/name.
// It refuses to replace an existing file. A half-written file is removed.
// The directory must exist unless createDir is set.
func WriteJSON(dir, name string, v any, createDir bool) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode report: %w", err)
	}

	if createDir {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create output dir: %w", err)
		}
	}

	path := filepath.Join(dir, name)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", err
	}

	_, werr := f.Write(data)
	cerr := f.Close()
	if err := errors.Join(werr, cerr); err != nil {
		_ = os.Remove(path)
		return "", err
	}
	return path, nil
}
