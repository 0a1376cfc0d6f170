package reportservice

import (
	"context"
	"errors"

	"github.com/halobingo/bingohall/internal/domain"
	"go.uber.org/zap"
)

type ShopRepo interface {
	FindByShopID(ctx context.Context, shopID string) (*domain.Shop, error)
}

type RoundRepo interface {
	FindRoundsByShopID(ctx context.Context, shopID string) ([]domain.GameRound, error)
}

type ReportRepo interface {
	ListDaily(ctx context.Context, shopID string) ([]domain.DailyReport, error)
	ListWeekly(ctx context.Context, shopID string) ([]domain.WeeklyCommission, error)
	MarkWeeklyPaid(ctx context.Context, shopID, weekID string) (bool, error)
}

var (
	ErrShopNotFound = errors.New("shop not found")
	ErrNoReports    = errors.New("no reports found for this shop")
	ErrWeekNotFound = errors.New("week commission not found")
)

type Service struct {
	shopRepo   ShopRepo
	roundRepo  RoundRepo
	reportRepo ReportRepo
}

func New(shopRepo ShopRepo, roundRepo RoundRepo, reportRepo ReportRepo) *Service {
	return &Service{
		shopRepo:   shopRepo,
		roundRepo:  roundRepo,
		reportRepo: reportRepo,
	}
}

type ShopReport struct {
	ShopID  string
	Balance float64
	Rounds  []domain.GameRound
}

// GetShopReport returns the shop's round history alongside its live balance.
func (s *Service) GetShopReport(ctx context.Context, shopID string) (*ShopReport, error) {
	shop, err := s.shopRepo.FindByShopID(ctx, shopID)
	if err != nil {
		zap.L().Error("can't get shop for report", zap.Error(err))
		return nil, err
	}
	if shop == nil {
		return nil, ErrShopNotFound
	}

	rounds, err := s.roundRepo.FindRoundsByShopID(ctx, shopID)
	if err != nil {
		zap.L().Error("can't get rounds for report", zap.Error(err))
		return nil, err
	}

	return &ShopReport{
		ShopID:  shopID,
		Balance: shop.Balance,
		Rounds:  rounds,
	}, nil
}

func (s *Service) GetDailyReports(ctx context.Context, shopID string) ([]domain.DailyReport, error) {
	reports, err := s.reportRepo.ListDaily(ctx, shopID)
	if err != nil {
		zap.L().Error("can't get daily reports", zap.Error(err))
		return nil, err
	}
	if len(reports) == 0 {
		return nil, ErrNoReports
	}
	return reports, nil
}

func (s *Service) GetWeeklyCommissions(ctx context.Context, shopID string) ([]domain.WeeklyCommission, error) {
	commissions, err := s.reportRepo.ListWeekly(ctx, shopID)
	if err != nil {
		zap.L().Error("can't get weekly commissions", zap.Error(err))
		return nil, err
	}
	return commissions, nil
}

func (s *Service) PayWeeklyCommission(ctx context.Context, shopID, weekID string) error {
	found, err := s.reportRepo.MarkWeeklyPaid(ctx, shopID, weekID)
	if err != nil {
		zap.L().Error("can't mark weekly commission paid", zap.Error(err))
		return err
	}
	if !found {
		return ErrWeekNotFound
	}
	zap.L().Info("weekly commission marked paid", zap.String("shop_id", shopID), zap.String("week_id", weekID))
	return nil
}
