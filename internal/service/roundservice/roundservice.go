package roundservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/halobingo/bingohall/internal/domain"
	"github.com/halobingo/bingohall/internal/metrics"
	"github.com/halobingo/bingohall/internal/pg"
	"github.com/halobingo/bingohall/internal/service/ledgerservice"
)

type RoundRepo interface {
	CreateRound(ctx context.Context, round *domain.GameRound) error
	SaveCurrentRound(ctx context.Context, round *domain.CurrentRound) error
	GetCurrentRound(ctx context.Context, shopID string) (*domain.CurrentRound, error)
	FinishCurrentRound(ctx context.Context, shopID string) (bool, error)
	CreateWinning(ctx context.Context, entry *domain.WinningEntry) error
}

type ShopRepo interface {
	FindByShopID(ctx context.Context, shopID string) (*domain.Shop, error)
}

type GameRepo interface {
	Create(ctx context.Context, payload map[string]any) error
	List(ctx context.Context) ([]domain.Game, error)
}

type Ledger interface {
	ChargeCommission(ctx context.Context, shopID string, totalBet float64, requestedRate *float64) (*ledgerservice.CommissionResult, error)
	RecordDailyAggregate(ctx context.Context, shopID, date string, placedBets, awarded float64) error
}

var ErrNoCurrentRound = errors.New("no active round found")

const dateLayout = "2006-01-02"

type Service struct {
	roundRepo RoundRepo
	shopRepo  ShopRepo
	gameRepo  GameRepo
	ledger    Ledger
	txManager pg.TXManager
	metrics   *metrics.Metrics
}

func New(roundRepo RoundRepo, shopRepo ShopRepo, gameRepo GameRepo, ledger Ledger, txManager pg.TXManager, m *metrics.Metrics) *Service {
	return &Service{
		roundRepo: roundRepo,
		shopRepo:  shopRepo,
		gameRepo:  gameRepo,
		ledger:    ledger,
		txManager: txManager,
		metrics:   m,
	}
}

type StartRoundInput struct {
	ShopID         string
	BetPerCard     float64
	Prize          float64
	TotalCards     int
	SelectedCards  []int64
	WinningPattern *string
}

type StartRoundResult struct {
	RoundID          string
	CommissionRate   float64
	CommissionAmount float64
}

// StartRound charges the shop's commission, records the round and folds it
// into the daily report, all inside one transaction: a failure in any step
// rolls the others back.
func (s *Service) StartRound(ctx context.Context, in StartRoundInput) (*StartRoundResult, error) {
	roundID := uuid.NewString()
	now := time.Now().UTC()
	date := now.Format(dateLayout)
	totalBet := float64(in.TotalCards) * in.BetPerCard

	var charge *ledgerservice.CommissionResult
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		charge, err = s.ledger.ChargeCommission(ctx, in.ShopID, totalBet, nil)
		if err != nil {
			return err
		}

		round := &domain.GameRound{
			RoundID:          roundID,
			ShopID:           in.ShopID,
			Date:             date,
			BetPerCard:       in.BetPerCard,
			TotalCards:       in.TotalCards,
			Prize:            in.Prize,
			CommissionRate:   charge.AppliedRate,
			CommissionAmount: charge.CommissionAmount,
			WinningPattern:   in.WinningPattern,
			Status:           domain.RoundStatusOngoing,
			StartedAt:        now,
		}
		if err := s.roundRepo.CreateRound(ctx, round); err != nil {
			return err
		}

		return s.ledger.RecordDailyAggregate(ctx, in.ShopID, date, totalBet, in.Prize)
	})
	if err != nil {
		if !errors.Is(err, ledgerservice.ErrShopNotFound) && !errors.Is(err, ledgerservice.ErrInsufficientBalance) {
			zap.L().Error("can't start round", zap.Error(err))
		}
		return nil, err
	}

	s.metrics.RecordRoundStarted(in.ShopID)
	zap.L().Info("round started",
		zap.String("shop_id", in.ShopID),
		zap.String("round_id", roundID),
		zap.Float64("commission_amount", charge.CommissionAmount),
	)
	return &StartRoundResult{
		RoundID:          roundID,
		CommissionRate:   charge.AppliedRate,
		CommissionAmount: charge.CommissionAmount,
	}, nil
}

type SaveRoundInput struct {
	ShopID         string
	BetPerCard     float64
	Prize          float64
	TotalCards     int
	SelectedCards  []int64
	Interval       int
	Language       string
	CommissionRate float64
	WinningPattern *string
}

// SaveRound overwrites the shop's single current-round slot. Unlike StartRound
// it creates no history entry and touches neither the balance nor the daily
// report; the slot records the caller's commission rate verbatim.
func (s *Service) SaveRound(ctx context.Context, in SaveRoundInput) (*domain.CurrentRound, error) {
	shop, err := s.shopRepo.FindByShopID(ctx, in.ShopID)
	if err != nil {
		zap.L().Error("can't find shop for save round", zap.Error(err))
		return nil, err
	}
	if shop == nil {
		return nil, ledgerservice.ErrShopNotFound
	}

	round := &domain.CurrentRound{
		ShopID:         in.ShopID,
		RoundID:        uuid.NewString(),
		BetPerCard:     in.BetPerCard,
		Prize:          in.Prize,
		TotalCards:     in.TotalCards,
		SelectedCards:  in.SelectedCards,
		Interval:       in.Interval,
		Language:       in.Language,
		CommissionRate: in.CommissionRate,
		WinningPattern: in.WinningPattern,
		Status:         domain.RoundStatusOngoing,
		StartedAt:      time.Now().UTC(),
	}
	if err := s.roundRepo.SaveCurrentRound(ctx, round); err != nil {
		zap.L().Error("can't save current round", zap.Error(err))
		return nil, err
	}
	return round, nil
}

func (s *Service) GetCurrentRound(ctx context.Context, shopID string) (*domain.CurrentRound, error) {
	round, err := s.roundRepo.GetCurrentRound(ctx, shopID)
	if err != nil {
		zap.L().Error("can't get current round", zap.Error(err))
		return nil, err
	}
	return round, nil
}

func (s *Service) FinishRound(ctx context.Context, shopID string) error {
	found, err := s.roundRepo.FinishCurrentRound(ctx, shopID)
	if err != nil {
		zap.L().Error("can't finish round", zap.Error(err))
		return err
	}
	if !found {
		return ErrNoCurrentRound
	}
	zap.L().Info("round finished", zap.String("shop_id", shopID))
	return nil
}

type RecordWinningInput struct {
	CardID  string
	RoundID string
	ShopID  string
	Prize   float64
}

// RecordWinning is a pure append; the referenced round and shop are not
// checked for existence.
func (s *Service) RecordWinning(ctx context.Context, in RecordWinningInput) (string, error) {
	entry := &domain.WinningEntry{
		WiningID:  uuid.NewString(),
		CardID:    in.CardID,
		RoundID:   in.RoundID,
		ShopID:    in.ShopID,
		Prize:     in.Prize,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.roundRepo.CreateWinning(ctx, entry); err != nil {
		zap.L().Error("can't record wining", zap.Error(err))
		return "", err
	}
	s.metrics.RecordWinning(in.ShopID)
	return entry.WiningID, nil
}

func (s *Service) ListGames(ctx context.Context) ([]domain.Game, error) {
	games, err := s.gameRepo.List(ctx)
	if err != nil {
		zap.L().Error("can't list games", zap.Error(err))
		return nil, err
	}
	return games, nil
}

func (s *Service) CreateGame(ctx context.Context, payload map[string]any) error {
	if err := s.gameRepo.Create(ctx, payload); err != nil {
		zap.L().Error("can't record game", zap.Error(err))
		return err
	}
	return nil
}
