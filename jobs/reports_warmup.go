package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"
	"golang.org/x/sync/errgroup"

	"github.com/dairyledger/dairyledger/internal/civil"
	jobmetrics "github.com/dairyledger/dairyledger/internal/jobs"
	"github.com/dairyledger/dairyledger/internal/reporting"
)

// ReportsWarmupJob pre-populates the report caches so the first dashboard
// hit after the nightly version bump does not pay the aggregation cost.
type ReportsWarmupJob struct {
	Reports *reporting.Service
	Logger  *slog.Logger
	Metrics *jobmetrics.Metrics
	clock   func() time.Time
}

// NewReportsWarmupJob wires dependencies for the warmup handler.
func NewReportsWarmupJob(reports *reporting.Service, logger *slog.Logger, metrics *jobmetrics.Metrics) *ReportsWarmupJob {
	return &ReportsWarmupJob{
		Reports: reports,
		Logger:  logger,
		Metrics: metrics,
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// Handle processes reports warmup tasks.
func (j *ReportsWarmupJob) Handle(ctx context.Context, t *asynq.Task) (resultErr error) {
	if j == nil || j.Reports == nil {
		return errors.New("reports warmup: handler not configured")
	}
	tracker := j.Metrics.Track(TaskReportsWarmup)
	defer func() {
		resultErr = tracker.End(resultErr)
	}()
	var payload ReportsWarmupPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}

	anchor := civil.Today(j.clock)
	if payload.Anchor != "" {
		parsed, err := civil.Parse(payload.Anchor)
		if err != nil {
			return asynq.SkipRetry
		}
		anchor = parsed
	}
	topN := payload.TopN
	if topN <= 0 {
		topN = reporting.DefaultTopN
	}

	started := j.clock()
	g, ctx := errgroup.WithContext(ctx)

	var summary reporting.SummaryView
	g.Go(func() error {
		view, err := j.Reports.Summary(ctx)
		if err != nil {
			return err
		}
		summary = view
		return nil
	})
	g.Go(func() error {
		_, err := j.Reports.WeeklyGraph(ctx, anchor)
		return err
	})
	g.Go(func() error {
		_, err := j.Reports.MonthlyGraph(ctx, anchor.Year, anchor.Month)
		return err
	})
	g.Go(func() error {
		_, err := j.Reports.YearlyGraph(ctx, anchor.Year)
		return err
	})
	g.Go(func() error {
		_, err := j.Reports.TopProducts(ctx, topN)
		return err
	})
	if err := g.Wait(); err != nil {
		j.logger().Error("reports warmup", slog.Any("error", err))
		return err
	}

	j.logger().Info("reports warmed",
		slog.String("anchor", anchor.String()),
		slog.String("today", summary.Display.Today),
		slog.String("year", summary.Display.Year),
		slog.Duration("took", j.clock().Sub(started)),
	)
	return nil
}

func (j *ReportsWarmupJob) logger() *slog.Logger {
	if j.Logger != nil {
		return j.Logger
	}
	return slog.Default()
}
