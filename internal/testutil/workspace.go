package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/studylog/internal/domain"
	"github.com/alexanderramin/studylog/internal/repository"
)

// Workspace is a temporary directory holding a session log and a document.
type Workspace struct {
	Dir     string
	LogPath string
	DocPath string
	Logs    *repository.JSONLogRepo
	Docs    *repository.TextDocumentRepo
}

// NewWorkspace creates a temp workspace. When doc is non-empty it is written
// as the document; otherwise the document does not exist.
func NewWorkspace(t *testing.T, doc string) *Workspace {
	t.Helper()
	dir := t.TempDir()
	ws := &Workspace{
		Dir:     dir,
		LogPath: filepath.Join(dir, "time_log.json"),
		DocPath: filepath.Join(dir, "README.md"),
	}
	ws.Logs = repository.NewJSONLogRepo(ws.LogPath)
	ws.Docs = repository.NewTextDocumentRepo(ws.DocPath)
	if doc != "" {
		ws.WriteDoc(t, doc)
	}
	return ws
}

// WriteDoc replaces the document content.
func (w *Workspace) WriteDoc(t *testing.T, doc string) {
	t.Helper()
	if err := os.WriteFile(w.DocPath, []byte(doc), 0o644); err != nil {
		t.Fatalf("writing document: %v", err)
	}
}

// ReadDoc returns the document content.
func (w *Workspace) ReadDoc(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(w.DocPath)
	if err != nil {
		t.Fatalf("reading document: %v", err)
	}
	return string(data)
}

// SeedLog writes log as the persisted session log.
func (w *Workspace) SeedLog(t *testing.T, log domain.Log) {
	t.Helper()
	if err := w.Logs.Save(context.Background(), log); err != nil {
		t.Fatalf("seeding log: %v", err)
	}
}

// LoadLog reads back the persisted session log.
func (w *Workspace) LoadLog(t *testing.T) domain.Log {
	t.Helper()
	log, err := w.Logs.Load(context.Background())
	if err != nil {
		t.Fatalf("loading log: %v", err)
	}
	return log
}

// ReadLogFile returns the raw bytes of the log file.
func (w *Workspace) ReadLogFile(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(w.LogPath)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	return string(data)
}
