package service

import (
	"context"

	"github.com/alexanderramin/studylog/internal/domain"
	"github.com/alexanderramin/studylog/internal/reconcile"
)

// SessionEntry pairs a record with the log key it was filed under.
type SessionEntry struct {
	PartID string
	Record domain.SessionRecord
}

type SessionService interface {
	// Record appends one session to the persisted log. partID must already
	// have been validated against the active policy.
	Record(ctx context.Context, partID string, start, end int64) (domain.SessionRecord, error)
	// List returns sessions in natural part order. A non-empty filter keeps
	// the exact key and, under the subpart policy, every subpart of a bare
	// part number.
	List(ctx context.Context, filter string) ([]SessionEntry, error)
}

// ReconcileOptions controls a reconciliation pass.
type ReconcileOptions struct {
	// DryRun computes the changes without writing the document.
	DryRun bool
}

// ReconcileResult describes a completed reconciliation pass.
type ReconcileResult struct {
	DocumentPath string
	Policy       domain.AggregationPolicy
	Report       reconcile.Report
	Written      bool
}

type ReconcileService interface {
	Reconcile(ctx context.Context, opts ReconcileOptions) (*ReconcileResult, error)
}

// StatusResult is a read-only view of the aggregated log.
type StatusResult struct {
	LogPath  string
	Policy   domain.AggregationPolicy
	Totals   reconcile.Totals
	Sessions int
}

type StatusService interface {
	GetStatus(ctx context.Context) (*StatusResult, error)
}
