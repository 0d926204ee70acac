package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/studylog/internal/domain"
	"github.com/alexanderramin/studylog/internal/repository"
	"github.com/google/uuid"
)

type sessionService struct {
	logs     repository.LogRepo
	policy   domain.AggregationPolicy
	now      func() time.Time
	newID    func() string
	observer UseCaseObserver
}

func NewSessionService(logs repository.LogRepo, policy domain.AggregationPolicy, observers ...UseCaseObserver) SessionService {
	return newSessionService(logs, policy, time.Now, observers...)
}

// NewSessionServiceWithClock is NewSessionService with an injected clock,
// used for the record timestamp.
func NewSessionServiceWithClock(logs repository.LogRepo, policy domain.AggregationPolicy, now func() time.Time, observers ...UseCaseObserver) SessionService {
	return newSessionService(logs, policy, now, observers...)
}

func newSessionService(logs repository.LogRepo, policy domain.AggregationPolicy, now func() time.Time, observers ...UseCaseObserver) *sessionService {
	return &sessionService{
		logs:     logs,
		policy:   policy,
		now:      now,
		newID:    uuid.NewString,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *sessionService) Record(ctx context.Context, partID string, start, end int64) (rec domain.SessionRecord, err error) {
	startedAt := time.Now()
	fields := map[string]any{"part": partID, "start": start, "end": end}
	var warnings []string
	defer func() {
		observe(ctx, s.observer, "record-session", startedAt, fields, warnings, err)
	}()

	log, err := s.logs.Load(ctx)
	if err != nil {
		return domain.SessionRecord{}, fmt.Errorf("loading session log: %w", err)
	}

	rec = domain.NewSessionRecord(s.newID(), start, end, s.now())
	if rec.Negative() {
		warnings = append(warnings, fmt.Sprintf("session for part %s ends before it starts; recorded as %s", partID, rec.Duration))
	}
	log.Append(partID, rec)

	if err = s.logs.Save(ctx, log); err != nil {
		return domain.SessionRecord{}, fmt.Errorf("saving session log: %w", err)
	}
	fields["duration"] = rec.Duration
	fields["sessions"] = len(log[partID])
	return rec, nil
}

func (s *sessionService) List(ctx context.Context, filter string) ([]SessionEntry, error) {
	log, err := s.logs.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading session log: %w", err)
	}

	var out []SessionEntry
	for _, key := range log.Keys() {
		if filter != "" && !s.matches(key, filter) {
			continue
		}
		for _, rec := range log[key] {
			out = append(out, SessionEntry{PartID: key, Record: rec})
		}
	}
	return out, nil
}

func (s *sessionService) matches(key, filter string) bool {
	if key == filter {
		return true
	}
	part, _ := s.policy.SplitKey(key)
	return s.policy.Subparts() && part == filter
}
