package scheduler

import (
	"context"
	"time"

	"chequeflow/internal/service"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// StatisticsSnapshotJob periodically recomputes the dashboard statistics and
// pushes them to connected clients.
type StatisticsSnapshotJob struct {
	stats     service.StatisticsService
	publisher service.EventPublisher
	log       zerolog.Logger
	timeout   time.Duration
	cron      *cron.Cron
}

func NewStatisticsSnapshotJob(stats service.StatisticsService, publisher service.EventPublisher, log zerolog.Logger) *StatisticsSnapshotJob {
	return &StatisticsSnapshotJob{
		stats:     stats,
		publisher: publisher,
		log:       log.With().Str("job", "statistics_snapshot").Logger(),
		timeout:   30 * time.Second,
	}
}

// RunOnce computes one snapshot over all stored cheques and publishes it.
func (j *StatisticsSnapshotJob) RunOnce(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	snapshot, err := j.stats.GetStatistics(ctx, nil)
	if err != nil {
		j.log.Error().Err(err).Msg("failed to compute statistics snapshot")
		return err
	}

	j.publisher.Publish(service.EventStatisticsSnapshot, snapshot)
	j.log.Debug().
		Int("total", snapshot.Statistics.Total).
		Int("pending", snapshot.Statistics.Pending).
		Msg("statistics snapshot published")
	return nil
}

// Start schedules the job using a standard cron expression or a descriptor
// such as "@every 5m".
func (j *StatisticsSnapshotJob) Start(schedule string) error {
	c := cron.New()
	if _, err := c.AddFunc(schedule, func() {
		_ = j.RunOnce(context.Background())
	}); err != nil {
		return err
	}
	j.cron = c
	c.Start()
	j.log.Info().Str("schedule", schedule).Msg("statistics snapshot scheduler started")
	return nil
}

// Stop halts the scheduler and waits for a running snapshot to finish.
func (j *StatisticsSnapshotJob) Stop() {
	if j.cron == nil {
		return
	}
	<-j.cron.Stop().Done()
	j.log.Info().Msg("statistics snapshot scheduler stopped")
}
