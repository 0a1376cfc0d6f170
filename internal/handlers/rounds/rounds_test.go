package rounds

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/halobingo/bingohall/internal/domain"
	"github.com/halobingo/bingohall/internal/service/ledgerservice"
	"github.com/halobingo/bingohall/internal/service/roundservice"
	"github.com/halobingo/bingohall/pkg/utils"
)

func NewMock(t *testing.T) (*RoundHandler, *MockService, chi.Router) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()

	router := chi.NewRouter()
	router.Post("/startgame", handler.StartGame)
	router.Post("/savegame", handler.SaveGame)
	router.Get("/round/{shop_id}", handler.GetRound)
	router.Post("/finishround/{shop_id}", handler.FinishRound)
	router.Post("/winings", handler.RecordWining)
	router.Get("/games", handler.GetGames)
	router.Post("/games", handler.CreateGame)
	return handler, service, router
}

func TestStartGame(t *testing.T) {
	_, service, router := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Round started",
			body: `{"shop_id":"shop-1","bet_per_card":10,"prize":400,"total_cards":5}`,
			prepareMock: func() {
				service.EXPECT().StartRound(gomock.Any(), roundservice.StartRoundInput{
					ShopID:     "shop-1",
					BetPerCard: 10.0,
					Prize:      400.0,
					TotalCards: 5,
				}).Return(&roundservice.StartRoundResult{
					RoundID:          "round-1",
					CommissionRate:   0.2,
					CommissionAmount: 10.0,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Insufficient balance",
			body: `{"shop_id":"shop-1","bet_per_card":10,"prize":400,"total_cards":5}`,
			prepareMock: func() {
				service.EXPECT().StartRound(gomock.Any(), gomock.Any()).Return(nil, ledgerservice.ErrInsufficientBalance)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Insufficient balance",
		},
		{
			name: "Unknown shop",
			body: `{"shop_id":"ghost","bet_per_card":10,"prize":400,"total_cards":5}`,
			prepareMock: func() {
				service.EXPECT().StartRound(gomock.Any(), gomock.Any()).Return(nil, ledgerservice.ErrShopNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "Shop not found",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/startgame", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp.Detail)
				return
			}

			assert.JSONEq(t, `{"status":"success","message":"Game started","round_id":"round-1","commission_rate":0.2,"commission_amount":10}`, w.Body.String())
		})
	}
}

func TestSaveGame(t *testing.T) {
	_, service, router := NewMock(t)

	t.Run("Slot overwritten with the caller's rate", func(t *testing.T) {
		service.EXPECT().SaveRound(gomock.Any(), roundservice.SaveRoundInput{
			ShopID:         "shop-1",
			BetPerCard:     10.0,
			Prize:          400.0,
			TotalCards:     5,
			SelectedCards:  []int64{3, 17, 42},
			Interval:       5,
			Language:       "en",
			CommissionRate: 0.99,
		}).Return(&domain.CurrentRound{RoundID: "round-1"}, nil)

		body := `{"shop_id":"shop-1","bet_per_card":10,"prize":400,"total_cards":5,"selected_cards":[3,17,42],"interval":5,"language":"en","commission_rate":0.99}`
		req := httptest.NewRequest(http.MethodPost, "/savegame", bytes.NewBufferString(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"success","message":"Round saved","round_id":"round-1"}`, w.Body.String())
	})

	t.Run("Unknown shop", func(t *testing.T) {
		service.EXPECT().SaveRound(gomock.Any(), gomock.Any()).Return(nil, ledgerservice.ErrShopNotFound)

		req := httptest.NewRequest(http.MethodPost, "/savegame", bytes.NewBufferString(`{"shop_id":"ghost"}`))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGetRound(t *testing.T) {
	_, service, router := NewMock(t)

	t.Run("Active round", func(t *testing.T) {
		service.EXPECT().GetCurrentRound(gomock.Any(), "shop-1").Return(&domain.CurrentRound{
			ShopID:         "shop-1",
			RoundID:        "round-1",
			BetPerCard:     10.0,
			Prize:          400.0,
			TotalCards:     5,
			SelectedCards:  []int64{3, 17, 42},
			Interval:       5,
			Language:       "en",
			CommissionRate: 0.2,
			Status:         domain.RoundStatusOngoing,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/round/shop-1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "round-1", resp["roundId"])
		assert.Equal(t, "shop-1", resp["shopId"])
		assert.Equal(t, 0.2, resp["commissionRate"])
		assert.Equal(t, "ongoing", resp["status"])
	})

	t.Run("Empty slot is not an error", func(t *testing.T) {
		service.EXPECT().GetCurrentRound(gomock.Any(), "shop-1").Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/round/shop-1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"No active round"}`, w.Body.String())
	})
}

func TestFinishRound(t *testing.T) {
	_, service, router := NewMock(t)

	t.Run("Round finished", func(t *testing.T) {
		service.EXPECT().FinishRound(gomock.Any(), "shop-1").Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/finishround/shop-1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"success","message":"Round marked as finished"}`, w.Body.String())
	})

	t.Run("No active round", func(t *testing.T) {
		service.EXPECT().FinishRound(gomock.Any(), "shop-1").Return(roundservice.ErrNoCurrentRound)

		req := httptest.NewRequest(http.MethodPost, "/finishround/shop-1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)

		var resp utils.Response
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "No active round found", resp.Detail)
	})
}

func TestRecordWining(t *testing.T) {
	_, service, router := NewMock(t)

	t.Run("Entry appended without validating references", func(t *testing.T) {
		service.EXPECT().RecordWinning(gomock.Any(), roundservice.RecordWinningInput{
			CardID:  "card-7",
			RoundID: "ghost-round",
			ShopID:  "ghost-shop",
			Prize:   400.0,
		}).Return("wining-1", nil)

		body := `{"card_id":"card-7","round_id":"ghost-round","shop_id":"ghost-shop","prize":400}`
		req := httptest.NewRequest(http.MethodPost, "/winings", bytes.NewBufferString(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"success","message":"Wining recorded","id":"wining-1"}`, w.Body.String())
	})

	t.Run("Database error", func(t *testing.T) {
		service.EXPECT().RecordWinning(gomock.Any(), gomock.Any()).Return("", assert.AnError)

		req := httptest.NewRequest(http.MethodPost, "/winings", bytes.NewBufferString(`{"card_id":"card-7"}`))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestGames(t *testing.T) {
	_, service, router := NewMock(t)

	t.Run("Payloads returned as recorded", func(t *testing.T) {
		service.EXPECT().ListGames(gomock.Any()).Return([]domain.Game{
			{ID: 1, Payload: map[string]any{"name": "bingo-75"}},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/games", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[{"name":"bingo-75"}]`, w.Body.String())
	})

	t.Run("Payload recorded as-is", func(t *testing.T) {
		service.EXPECT().CreateGame(gomock.Any(), map[string]any{"name": "bingo-75"}).Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/games", bytes.NewBufferString(`{"name":"bingo-75"}`))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"game recorded"}`, w.Body.String())
	})
}
