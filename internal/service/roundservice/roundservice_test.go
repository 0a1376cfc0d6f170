package roundservice

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/halobingo/bingohall/internal/domain"
	"github.com/halobingo/bingohall/internal/metrics"
	"github.com/halobingo/bingohall/internal/pg"
	"github.com/halobingo/bingohall/internal/service/ledgerservice"
)

func NewMock(t *testing.T) (*Service, *MockRoundRepo, *MockShopRepo, *MockGameRepo, *MockLedger, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	roundRepo := NewMockRoundRepo(ctrl)
	shopRepo := NewMockShopRepo(ctrl)
	gameRepo := NewMockGameRepo(ctrl)
	ledger := NewMockLedger(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(roundRepo, shopRepo, gameRepo, ledger, txManager, metrics.New(prometheus.NewRegistry()))
	defer ctrl.Finish()
	return service, roundRepo, shopRepo, gameRepo, ledger, txManager
}

func passthroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		})
}

func TestStartRound(t *testing.T) {
	service, roundRepo, _, _, ledger, txManager := NewMock(t)

	input := StartRoundInput{
		ShopID:     "shop-1",
		BetPerCard: 10.0,
		Prize:      400.0,
		TotalCards: 5,
	}

	tests := []struct {
		name           string
		prepareMock    func()
		expectedResult *StartRoundResult
		expectedError  error
	}{
		{
			name: "Charges commission, records round and daily report",
			prepareMock: func() {
				passthroughTx(txManager)
				ledger.EXPECT().ChargeCommission(gomock.Any(), "shop-1", 50.0, nil).Return(&ledgerservice.CommissionResult{
					TotalBet:         50.0,
					AppliedRate:      0.2,
					RecordedRate:     0.2,
					CommissionAmount: 10.0,
					BillingType:      domain.BillingPrepaid,
				}, nil)
				roundRepo.EXPECT().CreateRound(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, round *domain.GameRound) error {
						assert.Equal(t, "shop-1", round.ShopID)
						assert.Equal(t, 0.2, round.CommissionRate)
						assert.Equal(t, 10.0, round.CommissionAmount)
						assert.Equal(t, domain.RoundStatusOngoing, round.Status)
						assert.NoError(t, uuid.Validate(round.RoundID))
						return nil
					})
				ledger.EXPECT().RecordDailyAggregate(gomock.Any(), "shop-1", gomock.Any(), 50.0, 400.0).Return(nil)
			},
			expectedResult: &StartRoundResult{
				CommissionRate:   0.2,
				CommissionAmount: 10.0,
			},
		},
		{
			name: "Insufficient balance aborts before the round is written",
			prepareMock: func() {
				passthroughTx(txManager)
				ledger.EXPECT().ChargeCommission(gomock.Any(), "shop-1", 50.0, nil).Return(nil, ledgerservice.ErrInsufficientBalance)
			},
			expectedError: ledgerservice.ErrInsufficientBalance,
		},
		{
			name: "Unknown shop",
			prepareMock: func() {
				passthroughTx(txManager)
				ledger.EXPECT().ChargeCommission(gomock.Any(), "shop-1", 50.0, nil).Return(nil, ledgerservice.ErrShopNotFound)
			},
			expectedError: ledgerservice.ErrShopNotFound,
		},
		{
			name: "Report failure rolls the whole transaction back",
			prepareMock: func() {
				passthroughTx(txManager)
				ledger.EXPECT().ChargeCommission(gomock.Any(), "shop-1", 50.0, nil).Return(&ledgerservice.CommissionResult{
					TotalBet:         50.0,
					AppliedRate:      0.2,
					RecordedRate:     0.2,
					CommissionAmount: 10.0,
				}, nil)
				roundRepo.EXPECT().CreateRound(gomock.Any(), gomock.Any()).Return(nil)
				ledger.EXPECT().RecordDailyAggregate(gomock.Any(), "shop-1", gomock.Any(), 50.0, 400.0).Return(errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			result, err := service.StartRound(context.Background(), input)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, result.RoundID)
				assert.Equal(t, tt.expectedResult.CommissionRate, result.CommissionRate)
				assert.Equal(t, tt.expectedResult.CommissionAmount, result.CommissionAmount)
			}
		})
	}
}

func TestSaveRound(t *testing.T) {
	service, roundRepo, shopRepo, _, _, _ := NewMock(t)

	input := SaveRoundInput{
		ShopID:         "shop-1",
		BetPerCard:     10.0,
		Prize:          400.0,
		TotalCards:     5,
		SelectedCards:  []int64{3, 17, 42},
		Interval:       5,
		Language:       "en",
		CommissionRate: 0.99,
	}

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Overwrites the slot with the caller's rate verbatim",
			prepareMock: func() {
				shopRepo.EXPECT().FindByShopID(gomock.Any(), "shop-1").Return(&domain.Shop{ShopID: "shop-1"}, nil)
				roundRepo.EXPECT().SaveCurrentRound(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, round *domain.CurrentRound) error {
						assert.Equal(t, 0.99, round.CommissionRate)
						assert.Equal(t, []int64{3, 17, 42}, round.SelectedCards)
						assert.Equal(t, domain.RoundStatusOngoing, round.Status)
						return nil
					})
			},
		},
		{
			name: "Unknown shop",
			prepareMock: func() {
				shopRepo.EXPECT().FindByShopID(gomock.Any(), "shop-1").Return(nil, nil)
			},
			expectedError: ledgerservice.ErrShopNotFound,
		},
		{
			name: "Repo error is passed through",
			prepareMock: func() {
				shopRepo.EXPECT().FindByShopID(gomock.Any(), "shop-1").Return(&domain.Shop{ShopID: "shop-1"}, nil)
				roundRepo.EXPECT().SaveCurrentRound(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			round, err := service.SaveRound(context.Background(), input)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, round)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, round.RoundID)
			}
		})
	}
}

func TestGetCurrentRound(t *testing.T) {
	service, roundRepo, _, _, _, _ := NewMock(t)

	t.Run("Returns the slot", func(t *testing.T) {
		expected := &domain.CurrentRound{ShopID: "shop-1", RoundID: "round-1"}
		roundRepo.EXPECT().GetCurrentRound(gomock.Any(), "shop-1").Return(expected, nil)

		round, err := service.GetCurrentRound(context.Background(), "shop-1")
		assert.NoError(t, err)
		assert.Equal(t, expected, round)
	})

	t.Run("Empty slot returns nil without error", func(t *testing.T) {
		roundRepo.EXPECT().GetCurrentRound(gomock.Any(), "shop-1").Return(nil, nil)

		round, err := service.GetCurrentRound(context.Background(), "shop-1")
		assert.NoError(t, err)
		assert.Nil(t, round)
	})
}

func TestFinishRound(t *testing.T) {
	service, roundRepo, _, _, _, _ := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Marks the slot finished",
			prepareMock: func() {
				roundRepo.EXPECT().FinishCurrentRound(gomock.Any(), "shop-1").Return(true, nil)
			},
		},
		{
			name: "No active round",
			prepareMock: func() {
				roundRepo.EXPECT().FinishCurrentRound(gomock.Any(), "shop-1").Return(false, nil)
			},
			expectedError: ErrNoCurrentRound,
		},
		{
			name: "Repo error is passed through",
			prepareMock: func() {
				roundRepo.EXPECT().FinishCurrentRound(gomock.Any(), "shop-1").Return(false, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.FinishRound(context.Background(), "shop-1")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRecordWinning(t *testing.T) {
	service, roundRepo, _, _, _, _ := NewMock(t)

	input := RecordWinningInput{
		CardID:  "card-7",
		RoundID: "ghost-round",
		ShopID:  "ghost-shop",
		Prize:   400.0,
	}

	t.Run("Appends without validating references", func(t *testing.T) {
		roundRepo.EXPECT().CreateWinning(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, entry *domain.WinningEntry) error {
				assert.Equal(t, "card-7", entry.CardID)
				assert.Equal(t, "ghost-round", entry.RoundID)
				assert.NoError(t, uuid.Validate(entry.WiningID))
				return nil
			})

		id, err := service.RecordWinning(context.Background(), input)
		assert.NoError(t, err)
		assert.NotEmpty(t, id)
	})

	t.Run("Repo error is passed through", func(t *testing.T) {
		roundRepo.EXPECT().CreateWinning(gomock.Any(), gomock.Any()).Return(errors.New("db error"))

		id, err := service.RecordWinning(context.Background(), input)
		assert.Error(t, err)
		assert.Empty(t, id)
	})
}

func TestGames(t *testing.T) {
	service, _, _, gameRepo, _, _ := NewMock(t)

	t.Run("ListGames", func(t *testing.T) {
		expected := []domain.Game{{ID: 1, Payload: map[string]any{"name": "bingo-90"}}}
		gameRepo.EXPECT().List(gomock.Any()).Return(expected, nil)

		games, err := service.ListGames(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, expected, games)
	})

	t.Run("CreateGame", func(t *testing.T) {
		payload := map[string]any{"name": "bingo-90"}
		gameRepo.EXPECT().Create(gomock.Any(), payload).Return(nil)

		assert.NoError(t, service.CreateGame(context.Background(), payload))
	})

	t.Run("CreateGame repo error", func(t *testing.T) {
		gameRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db error"))

		assert.Error(t, service.CreateGame(context.Background(), map[string]any{}))
	})
}
