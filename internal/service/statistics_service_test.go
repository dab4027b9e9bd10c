package service_test

import (
	"context"
	"testing"
	"time"

	"chequeflow/internal/model"
	"chequeflow/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStatisticsService_RecomputesFromStore(t *testing.T) {
	repo := new(MockChequeRepository)
	svc := service.NewStatisticsService(repo)

	docID := uuid.New()
	approved := newCheque(docID, "1", "100")
	approved.Status = model.StatusApproved
	approved.CurrentSignatures = 1
	declined := newCheque(docID, "2", "200")
	declined.Status = model.StatusDeclined
	pending := newCheque(docID, "3", "20000")

	repo.On("ListByDocument", mock.Anything, docID).Return([]model.Cheque{approved, declined, pending}, nil).Once()
	repo.On("ListByDocument", mock.Anything, docID).Return([]model.Cheque{approved, approved, declined, pending}, nil).Once()

	first, err := svc.GetStatistics(context.Background(), &docID)
	require.NoError(t, err)
	assert.Equal(t, model.Statistics{Total: 3, Approved: 1, Declined: 1, Pending: 1}, first.Statistics)
	assert.Equal(t, 1, first.Analytics.HighValueCount)
	assert.WithinDuration(t, time.Now(), first.GeneratedAt, 5*time.Second)

	second, err := svc.GetStatistics(context.Background(), &docID)
	require.NoError(t, err)
	assert.Equal(t, 2, second.Statistics.Approved)
	assert.Equal(t, second.Statistics.Total,
		second.Statistics.Approved+second.Statistics.Declined+second.Statistics.Pending)

	repo.AssertExpectations(t)
}

func TestStatisticsService_AllCheques(t *testing.T) {
	repo := new(MockChequeRepository)
	svc := service.NewStatisticsService(repo)
	repo.On("ListAll", mock.Anything).Return([]model.Cheque{}, nil).Once()

	res, err := svc.GetStatistics(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, model.Statistics{}, res.Statistics)
	assert.True(t, res.Analytics.TotalAmount.IsZero())
}
