package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/natefinch/atomic"
)

// TextDocumentRepo implements DocumentRepo over a plain text file.
type TextDocumentRepo struct {
	path string
}

// NewTextDocumentRepo creates a TextDocumentRepo for the file at path.
func NewTextDocumentRepo(path string) *TextDocumentRepo {
	return &TextDocumentRepo{path: path}
}

func (r *TextDocumentRepo) Path() string {
	return r.path
}

func (r *TextDocumentRepo) Read(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%s: %w", r.path, ErrDocumentNotFound)
		}
		return "", fmt.Errorf("reading document: %w", err)
	}
	return string(data), nil
}

// Write replaces the document atomically. The document must already exist;
// reconciliation never creates one.
func (r *TextDocumentRepo) Write(ctx context.Context, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	info, err := os.Stat(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s: %w", r.path, ErrDocumentNotFound)
		}
		return fmt.Errorf("stat document: %w", err)
	}
	if err := atomic.WriteFile(r.path, strings.NewReader(content)); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}
	// Keep the permissions the document had before the rewrite.
	if err := os.Chmod(r.path, info.Mode().Perm()); err != nil {
		return fmt.Errorf("restoring document mode: %w", err)
	}
	return nil
}
