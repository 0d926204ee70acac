package repository

import (
	"context"

	"github.com/alexanderramin/studylog/internal/domain"
)

// LogRepo loads and persists the session log as a whole.
type LogRepo interface {
	Load(ctx context.Context) (domain.Log, error)
	Save(ctx context.Context, log domain.Log) error
	Path() string
}

// DocumentRepo reads and replaces the checklist document as a whole.
type DocumentRepo interface {
	Read(ctx context.Context) (string, error)
	Write(ctx context.Context, content string) error
	Path() string
}
