package repository

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/alexanderramin/studylog/internal/domain"
	"github.com/bytedance/sonic"
	"github.com/natefinch/atomic"
)

// logCodec sorts map keys so the file is stable across saves.
var logCodec = sonic.ConfigStd

// JSONLogRepo implements LogRepo over a single JSON file.
type JSONLogRepo struct {
	path string
}

// NewJSONLogRepo creates a JSONLogRepo for the file at path.
func NewJSONLogRepo(path string) *JSONLogRepo {
	return &JSONLogRepo{path: path}
}

func (r *JSONLogRepo) Path() string {
	return r.path
}

// Load reads the whole log. A missing or blank file yields an empty log.
func (r *JSONLogRepo) Load(ctx context.Context) (domain.Log, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Log{}, nil
		}
		return nil, fmt.Errorf("reading session log: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return domain.Log{}, nil
	}

	var log domain.Log
	if err := logCodec.Unmarshal(data, &log); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLogCorrupt, r.path, err)
	}
	if log == nil {
		// literal "null"
		log = domain.Log{}
	}
	return log, nil
}

// Save overwrites the log file atomically.
func (r *JSONLogRepo) Save(ctx context.Context, log domain.Log) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if log == nil {
		log = domain.Log{}
	}

	data, err := logCodec.MarshalIndent(log, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding session log: %w", err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating log directory: %w", err)
		}
	}
	_, statErr := os.Stat(r.path)
	if err := atomic.WriteFile(r.path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("writing session log: %w", err)
	}
	if errors.Is(statErr, fs.ErrNotExist) {
		// atomic.WriteFile creates new files with temp-file permissions.
		if err := os.Chmod(r.path, 0o644); err != nil {
			return fmt.Errorf("setting log permissions: %w", err)
		}
	}
	return nil
}
