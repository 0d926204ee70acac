package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/studylog/internal/domain"
	"github.com/alexanderramin/studylog/internal/reconcile"
	"github.com/alexanderramin/studylog/internal/repository"
)

type reconcileService struct {
	logs     repository.LogRepo
	docs     repository.DocumentRepo
	policy   domain.AggregationPolicy
	observer UseCaseObserver
}

func NewReconcileService(logs repository.LogRepo, docs repository.DocumentRepo, policy domain.AggregationPolicy, observers ...UseCaseObserver) ReconcileService {
	return &reconcileService{
		logs:     logs,
		docs:     docs,
		policy:   policy,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Reconcile reads the persisted log and the document, recomputes every
// duration and rewrites the document when anything changed. A missing
// document is reported as repository.ErrDocumentNotFound and leaves both
// files untouched.
func (s *reconcileService) Reconcile(ctx context.Context, opts ReconcileOptions) (res *ReconcileResult, err error) {
	startedAt := time.Now()
	fields := map[string]any{
		"document": s.docs.Path(),
		"policy":   string(s.policy),
		"dry_run":  opts.DryRun,
	}
	var warnings []string
	defer func() {
		observe(ctx, s.observer, "reconcile", startedAt, fields, warnings, err)
	}()

	log, err := s.logs.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading session log: %w", err)
	}
	content, err := s.docs.Read(ctx)
	if err != nil {
		return nil, err
	}

	updated, rep := reconcile.Document(log, content, s.policy)
	res = &ReconcileResult{
		DocumentPath: s.docs.Path(),
		Policy:       s.policy,
		Report:       rep,
	}

	fields["lines"] = rep.Lines
	fields["changed"] = len(rep.Changed)
	if rep.Anomalies > 0 {
		warnings = append(warnings, fmt.Sprintf("%d session(s) end before they start; counted as zero", rep.Anomalies))
	}
	for _, n := range rep.Unresolved {
		warnings = append(warnings, fmt.Sprintf("line %d: subpart line before any part line left unchanged", n))
	}
	if len(rep.UnusedKeys) > 0 {
		fields["unused_keys"] = rep.UnusedKeys
	}

	if opts.DryRun || !rep.Dirty() {
		return res, nil
	}
	if err = s.docs.Write(ctx, updated); err != nil {
		return nil, err
	}
	res.Written = true
	return res, nil
}
