package settlement

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/halobingo/bingohall/internal/config"
	"github.com/halobingo/bingohall/internal/domain"
	"github.com/halobingo/bingohall/internal/metrics"
)

// ReportRepo is the slice of the report repository the settlement rollup
// needs: read the per-week commission sums and refresh the settlement rows.
type ReportRepo interface {
	SumCommissionByWeek(ctx context.Context) ([]domain.WeeklyTotal, error)
	UpsertWeeklyTotal(ctx context.Context, total *domain.WeeklyTotal) error
}

// pendingWeeks guards against the same (shop, week) being rolled up twice
// when a rollup outlives the tick interval.
var pendingWeeks sync.Map

type Service struct {
	reportRepo     ReportRepo
	metrics        *metrics.Metrics
	workerPool     WorkerPoolI
	updateInterval time.Duration
}

func New(cfg *config.Config, reportRepo ReportRepo, m *metrics.Metrics) *Service {
	return &Service{
		reportRepo:     reportRepo,
		metrics:        m,
		workerPool:     NewWorkerPool(10),
		updateInterval: cfg.SettlementInterval,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Settlement service started", zap.Duration("interval", s.updateInterval))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping service")
			return
		case <-ticker.C:
			s.rollupWeeks(ctx)
		}
	}
}

func (s *Service) rollupWeeks(ctx context.Context) {
	totals, err := s.reportRepo.SumCommissionByWeek(ctx)
	if err != nil {
		zap.L().Error("Failed to fetch weekly commission sums", zap.Error(err))
		s.metrics.RecordSettlementFailure()
		return
	}

	var g errgroup.Group
	for _, total := range totals {
		total := total
		key := total.ShopID + "/" + total.WeekID

		if _, loaded := pendingWeeks.LoadOrStore(key, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer pendingWeeks.Delete(key)
				return s.settleWeek(ctx, total)
			})
			if err != nil {
				pendingWeeks.Delete(key)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error rolling up weekly commissions", zap.Error(err))
		s.metrics.RecordSettlementFailure()
		return
	}
	s.metrics.RecordSettlementRollup()
}

func (s *Service) settleWeek(ctx context.Context, total domain.WeeklyTotal) error {
	if err := s.reportRepo.UpsertWeeklyTotal(ctx, &total); err != nil {
		return fmt.Errorf("failed to settle week %s for shop %s: %w", total.WeekID, total.ShopID, err)
	}
	zap.L().Info("Weekly commission settled",
		zap.String("shopID", total.ShopID),
		zap.String("weekID", total.WeekID),
		zap.Float64("totalCommission", total.TotalCommission),
	)
	return nil
}
