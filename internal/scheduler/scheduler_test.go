package scheduler_test

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"chequeflow/internal/model"
	"chequeflow/internal/scheduler"
	"chequeflow/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStatisticsService struct {
	mock.Mock
}

func (m *MockStatisticsService) GetStatistics(ctx context.Context, documentID *uuid.UUID) (model.StatisticsResponse, error) {
	args := m.Called(ctx, documentID)
	return args.Get(0).(model.StatisticsResponse), args.Error(1)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []string
	data   []interface{}
}

func (p *recordingPublisher) Publish(event string, data interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	p.data = append(p.data, data)
}

func (p *recordingPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.events)
}

func TestRunOnce_PublishesSnapshot(t *testing.T) {
	stats := new(MockStatisticsService)
	pub := &recordingPublisher{}
	snapshot := model.StatisticsResponse{Statistics: model.Statistics{Total: 3, Pending: 3}}
	stats.On("GetStatistics", mock.Anything, (*uuid.UUID)(nil)).Return(snapshot, nil).Once()

	job := scheduler.NewStatisticsSnapshotJob(stats, pub, zerolog.New(io.Discard))
	require.NoError(t, job.RunOnce(context.Background()))

	assert.Equal(t, []string{service.EventStatisticsSnapshot}, pub.events)
	assert.Equal(t, snapshot, pub.data[0])
	stats.AssertExpectations(t)
}

func TestRunOnce_ErrorPublishesNothing(t *testing.T) {
	stats := new(MockStatisticsService)
	pub := &recordingPublisher{}
	stats.On("GetStatistics", mock.Anything, (*uuid.UUID)(nil)).
		Return(model.StatisticsResponse{}, assert.AnError).Once()

	job := scheduler.NewStatisticsSnapshotJob(stats, pub, zerolog.New(io.Discard))

	assert.ErrorIs(t, job.RunOnce(context.Background()), assert.AnError)
	assert.Zero(t, pub.count())
}

func TestStart_InvalidSchedule(t *testing.T) {
	job := scheduler.NewStatisticsSnapshotJob(new(MockStatisticsService), &recordingPublisher{}, zerolog.New(io.Discard))

	assert.Error(t, job.Start("not a schedule"))
	job.Stop()
}

func TestStart_RunsOnSchedule(t *testing.T) {
	stats := new(MockStatisticsService)
	pub := &recordingPublisher{}
	stats.On("GetStatistics", mock.Anything, (*uuid.UUID)(nil)).Return(model.StatisticsResponse{}, nil)

	job := scheduler.NewStatisticsSnapshotJob(stats, pub, zerolog.New(io.Discard))
	require.NoError(t, job.Start("@every 1s"))
	defer job.Stop()

	assert.Eventually(t, func() bool { return pub.count() > 0 }, 3*time.Second, 50*time.Millisecond)
}
