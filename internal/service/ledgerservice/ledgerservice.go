package ledgerservice

import (
	"context"
	"errors"

	"github.com/halobingo/bingohall/internal/domain"
	"github.com/halobingo/bingohall/internal/metrics"
	"go.uber.org/zap"
)

type ShopRepo interface {
	FindByShopID(ctx context.Context, shopID string) (*domain.Shop, error)
	DeductBalance(ctx context.Context, shopID string, amount float64) (bool, error)
}

type ReportRepo interface {
	UpsertDaily(ctx context.Context, report *domain.DailyReport) error
}

const (
	// chargeDefaultRate applies when a shop record carries no commission rate.
	// Account creation defaults to 0.1; the charge-time fallback is 0.2. The
	// mismatch is inherited behavior and must stay.
	chargeDefaultRate = 0.2

	// reportCommissionRate is the fixed multiplier for the daily report's
	// company_commission column, independent of any shop's stored rate.
	reportCommissionRate = 0.2
)

var (
	ErrShopNotFound        = errors.New("shop not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// CommissionResult reports a completed charge. AppliedRate is the shop's
// stored rate (what the balance was charged with); RecordedRate is what the
// caller asked to have written on the round. The two may diverge.
type CommissionResult struct {
	TotalBet         float64
	AppliedRate      float64
	RecordedRate     float64
	CommissionAmount float64
	BillingType      string
}

type Service struct {
	shopRepo   ShopRepo
	reportRepo ReportRepo
	metrics    *metrics.Metrics
}

func New(shopRepo ShopRepo, reportRepo ReportRepo, m *metrics.Metrics) *Service {
	return &Service{
		shopRepo:   shopRepo,
		reportRepo: reportRepo,
		metrics:    m,
	}
}

// ChargeCommission resolves the shop's commission for totalBet and, for
// prepaid shops, deducts it from the balance. Postpaid shops are only gated on
// a literally zero balance; negative balances pass. requestedRate, when given,
// is recorded on the result but never applied to the balance.
func (s *Service) ChargeCommission(ctx context.Context, shopID string, totalBet float64, requestedRate *float64) (*CommissionResult, error) {
	shop, err := s.shopRepo.FindByShopID(ctx, shopID)
	if err != nil {
		zap.L().Error("failed to get shop for charge", zap.Error(err))
		return nil, err
	}
	if shop == nil {
		return nil, ErrShopNotFound
	}

	appliedRate := chargeDefaultRate
	if shop.CommissionRate != nil {
		appliedRate = *shop.CommissionRate
	}
	recordedRate := appliedRate
	if requestedRate != nil {
		recordedRate = *requestedRate
	}
	commissionAmount := totalBet * appliedRate

	switch shop.BillingType {
	case domain.BillingPostpaid:
		if shop.Balance == 0.0 {
			s.metrics.RecordChargeRejected(shopID)
			return nil, ErrInsufficientBalance
		}
		// Postpaid shops are invoiced later; no deduction.
	default:
		if shop.Balance < commissionAmount {
			s.metrics.RecordChargeRejected(shopID)
			return nil, ErrInsufficientBalance
		}
		applied, err := s.shopRepo.DeductBalance(ctx, shopID, commissionAmount)
		if err != nil {
			zap.L().Error("failed to deduct commission", zap.Error(err))
			return nil, err
		}
		if !applied {
			// A concurrent charge drained the balance between read and write.
			s.metrics.RecordChargeRejected(shopID)
			return nil, ErrInsufficientBalance
		}
	}

	s.metrics.RecordCommissionCharged(shopID, commissionAmount)
	return &CommissionResult{
		TotalBet:         totalBet,
		AppliedRate:      appliedRate,
		RecordedRate:     recordedRate,
		CommissionAmount: commissionAmount,
		BillingType:      shop.BillingType,
	}, nil
}

// RecordDailyAggregate folds one round into the shop's per-date report row:
// play_count gains 1 and the monetary columns gain the round's deltas. The
// company_commission delta always uses the fixed rate, not the shop's own.
func (s *Service) RecordDailyAggregate(ctx context.Context, shopID, date string, placedBets, awarded float64) error {
	netCash := placedBets - awarded
	report := &domain.DailyReport{
		ShopID:            shopID,
		Date:              date,
		PlayCount:         1,
		PlacedBets:        placedBets,
		Awarded:           awarded,
		NetCash:           netCash,
		CompanyCommission: netCash * reportCommissionRate,
	}
	if err := s.reportRepo.UpsertDaily(ctx, report); err != nil {
		zap.L().Error("failed to record daily aggregate", zap.Error(err))
		return err
	}
	return nil
}
