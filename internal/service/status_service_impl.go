package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/studylog/internal/domain"
	"github.com/alexanderramin/studylog/internal/reconcile"
	"github.com/alexanderramin/studylog/internal/repository"
)

type statusService struct {
	logs   repository.LogRepo
	policy domain.AggregationPolicy
}

func NewStatusService(logs repository.LogRepo, policy domain.AggregationPolicy) StatusService {
	return &statusService{logs: logs, policy: policy}
}

func (s *statusService) GetStatus(ctx context.Context) (*StatusResult, error) {
	log, err := s.logs.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading session log: %w", err)
	}
	return &StatusResult{
		LogPath:  s.logs.Path(),
		Policy:   s.policy,
		Totals:   reconcile.Aggregate(log, s.policy),
		Sessions: log.SessionCount(),
	}, nil
}
