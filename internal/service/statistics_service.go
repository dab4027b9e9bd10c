package service

import (
	"context"
	"time"

	"chequeflow/internal/engine"
	"chequeflow/internal/model"
	"chequeflow/internal/repository"

	"github.com/google/uuid"
)

type StatisticsService interface {
	GetStatistics(ctx context.Context, documentID *uuid.UUID) (model.StatisticsResponse, error)
}

type statisticsService struct {
	chequeRepo repository.ChequeRepository
	now        func() time.Time
}

func NewStatisticsService(chequeRepo repository.ChequeRepository) StatisticsService {
	return &statisticsService{chequeRepo: chequeRepo, now: time.Now}
}

// GetStatistics recomputes the dashboard from the stored cheques on every call.
func (s *statisticsService) GetStatistics(ctx context.Context, documentID *uuid.UUID) (model.StatisticsResponse, error) {
	var (
		cheques []model.Cheque
		err     error
	)
	if documentID != nil {
		cheques, err = s.chequeRepo.ListByDocument(ctx, *documentID)
	} else {
		cheques, err = s.chequeRepo.ListAll(ctx)
	}
	if err != nil {
		return model.StatisticsResponse{}, readErr("load cheques", err)
	}

	now := s.now()
	return model.StatisticsResponse{
		Statistics:  engine.Statistics(cheques),
		Analytics:   engine.Analyze(cheques, now),
		GeneratedAt: now.UTC(),
	}, nil
}
