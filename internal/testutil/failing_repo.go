package testutil

import (
	"context"

	"github.com/alexanderramin/studylog/internal/domain"
	"github.com/alexanderramin/studylog/internal/repository"
)

// FailingLogRepo wraps a LogRepo and injects errors on Load or Save.
// A nil error passes the call through.
type FailingLogRepo struct {
	repository.LogRepo
	LoadErr error
	SaveErr error
}

func (f *FailingLogRepo) Load(ctx context.Context) (domain.Log, error) {
	if f.LoadErr != nil {
		return nil, f.LoadErr
	}
	return f.LogRepo.Load(ctx)
}

func (f *FailingLogRepo) Save(ctx context.Context, log domain.Log) error {
	if f.SaveErr != nil {
		return f.SaveErr
	}
	return f.LogRepo.Save(ctx, log)
}

// FailingDocumentRepo wraps a DocumentRepo and injects an error on Write.
type FailingDocumentRepo struct {
	repository.DocumentRepo
	WriteErr error
	Writes   int
}

func (f *FailingDocumentRepo) Write(ctx context.Context, content string) error {
	f.Writes++
	if f.WriteErr != nil {
		return f.WriteErr
	}
	return f.DocumentRepo.Write(ctx, content)
}
