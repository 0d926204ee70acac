package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/studylog/internal/domain"
	"github.com/alexanderramin/studylog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStatus_AggregatesLog(t *testing.T) {
	ws := testutil.NewWorkspace(t, "")
	ws.SeedLog(t, domain.Log{
		"1a": {testutil.NewTestRecord(0, 60), testutil.NewTestRecord(0, 60)},
		"1b": {testutil.NewTestRecord(0, 30)},
		"2":  {testutil.NewTestRecord(0, 3600)},
	})
	svc := NewStatusService(ws.Logs, domain.PolicyPartWithSubparts)

	res, err := svc.GetStatus(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, res.Sessions)
	assert.Equal(t, ws.LogPath, res.LogPath)
	assert.Equal(t, domain.PolicyPartWithSubparts, res.Policy)
	assert.Equal(t, []string{"1", "2"}, res.Totals.Parts())
	assert.Equal(t, int64(150), res.Totals.Part("1"))
	assert.Equal(t, int64(3750), res.Totals.Grand())
}

func TestGetStatus_EmptyLog(t *testing.T) {
	ws := testutil.NewWorkspace(t, "")
	res, err := NewStatusService(ws.Logs, domain.PolicyPartOnly).GetStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, res.Sessions)
	assert.Empty(t, res.Totals.Parts())
}

func TestGetStatus_LoadError(t *testing.T) {
	ws := testutil.NewWorkspace(t, "")
	boom := errors.New("permission denied")
	svc := NewStatusService(&testutil.FailingLogRepo{LogRepo: ws.Logs, LoadErr: boom}, domain.PolicyPartOnly)

	_, err := svc.GetStatus(context.Background())
	assert.ErrorIs(t, err, boom)
}
