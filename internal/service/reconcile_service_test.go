package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/studylog/internal/domain"
	"github.com/alexanderramin/studylog/internal/repository"
	"github.com/alexanderramin/studylog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const subpartDoc = "# Course\n" +
	"- [ ] Part 2: Topic\n" +
	"    - a. First [00:00:00]\n" +
	"    - b. Second [00:00:00]\n"

func TestReconcile_RewritesDocument(t *testing.T) {
	ws := testutil.NewWorkspace(t, subpartDoc)
	ws.SeedLog(t, testutil.NewTestLog(map[string]int64{"2a": 600, "2b": 1800}))
	svc := NewReconcileService(ws.Logs, ws.Docs, domain.PolicyPartWithSubparts)

	res, err := svc.Reconcile(context.Background(), ReconcileOptions{})
	require.NoError(t, err)

	assert.True(t, res.Written)
	assert.Len(t, res.Report.Changed, 3)
	assert.Equal(t, ws.DocPath, res.DocumentPath)
	assert.Equal(t, "# Course\n"+
		"- [ ] Part 2: Topic [00:40:00]\n"+
		"    - a. First [00:10:00]\n"+
		"    - b. Second [00:30:00]\n", ws.ReadDoc(t))
}

func TestReconcile_SecondPassIsNoop(t *testing.T) {
	ws := testutil.NewWorkspace(t, subpartDoc)
	ws.SeedLog(t, testutil.NewTestLog(map[string]int64{"2a": 600}))
	svc := NewReconcileService(ws.Logs, ws.Docs, domain.PolicyPartWithSubparts)
	ctx := context.Background()

	_, err := svc.Reconcile(ctx, ReconcileOptions{})
	require.NoError(t, err)
	first := ws.ReadDoc(t)

	res, err := svc.Reconcile(ctx, ReconcileOptions{})
	require.NoError(t, err)
	assert.False(t, res.Written)
	assert.Equal(t, first, ws.ReadDoc(t))
}

func TestReconcile_DryRunLeavesDocument(t *testing.T) {
	ws := testutil.NewWorkspace(t, subpartDoc)
	ws.SeedLog(t, testutil.NewTestLog(map[string]int64{"2a": 600}))
	docs := &testutil.FailingDocumentRepo{DocumentRepo: ws.Docs}
	svc := NewReconcileService(ws.Logs, docs, domain.PolicyPartWithSubparts)

	res, err := svc.Reconcile(context.Background(), ReconcileOptions{DryRun: true})
	require.NoError(t, err)

	assert.False(t, res.Written)
	assert.True(t, res.Report.Dirty())
	assert.Equal(t, 0, docs.Writes)
	assert.Equal(t, subpartDoc, ws.ReadDoc(t))
}

func TestReconcile_MissingDocumentLeavesLog(t *testing.T) {
	ws := testutil.NewWorkspace(t, "")
	ws.SeedLog(t, testutil.NewTestLog(map[string]int64{"1": 60}))
	before := ws.ReadLogFile(t)
	svc := NewReconcileService(ws.Logs, ws.Docs, domain.PolicyPartOnly)

	_, err := svc.Reconcile(context.Background(), ReconcileOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrDocumentNotFound)
	assert.Equal(t, before, ws.ReadLogFile(t))
}

func TestReconcile_WriteFailureSurfaces(t *testing.T) {
	ws := testutil.NewWorkspace(t, subpartDoc)
	ws.SeedLog(t, testutil.NewTestLog(map[string]int64{"2a": 1}))
	boom := errors.New("read-only filesystem")
	svc := NewReconcileService(ws.Logs, &testutil.FailingDocumentRepo{DocumentRepo: ws.Docs, WriteErr: boom}, domain.PolicyPartWithSubparts)

	_, err := svc.Reconcile(context.Background(), ReconcileOptions{})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, subpartDoc, ws.ReadDoc(t))
}

func TestReconcile_ReportsWarnings(t *testing.T) {
	doc := "    - a. Orphan [00:00:00]\n- [ ] Part 1: One\n"
	ws := testutil.NewWorkspace(t, doc)
	ws.SeedLog(t, domain.Log{
		"1": {testutil.NewTestRecord(100, 0)},
		"7": {testutil.NewTestRecord(0, 5)},
	})
	obs := &recordingObserver{}
	svc := NewReconcileService(ws.Logs, ws.Docs, domain.PolicyPartWithSubparts, obs)

	res, err := svc.Reconcile(context.Background(), ReconcileOptions{})
	require.NoError(t, err)

	assert.Equal(t, []int{1}, res.Report.Unresolved)
	assert.Equal(t, 1, res.Report.Anomalies)
	assert.Equal(t, []string{"7"}, res.Report.UnusedKeys)

	require.Len(t, obs.events, 1)
	ev := obs.events[0]
	assert.Equal(t, "reconcile", ev.Name)
	assert.Len(t, ev.Warnings, 2)
	assert.Equal(t, []string{"7"}, ev.Fields["unused_keys"])
}

func TestRecordThenReconcile_PartOnlyScenario(t *testing.T) {
	ws := testutil.NewWorkspace(t, "- [ ] Part 1: Intro\n")
	ctx := context.Background()
	sessions := NewSessionService(ws.Logs, domain.PolicyPartOnly)
	recon := NewReconcileService(ws.Logs, ws.Docs, domain.PolicyPartOnly)

	_, err := sessions.Record(ctx, "1", 1000, 3700)
	require.NoError(t, err)
	_, err = recon.Reconcile(ctx, ReconcileOptions{})
	require.NoError(t, err)

	assert.Equal(t, "- [ ] Part 1: Intro [00:45:00]\n", ws.ReadDoc(t))
}
