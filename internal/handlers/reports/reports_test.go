package reports

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/halobingo/bingohall/internal/domain"
	"github.com/halobingo/bingohall/internal/service/reportservice"
	"github.com/halobingo/bingohall/pkg/utils"
)

func NewMock(t *testing.T) (*ReportHandler, *MockService, chi.Router) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()

	router := chi.NewRouter()
	router.Get("/report/{shop_id}", handler.GetShopReport)
	router.Get("/reports/{shop_id}", handler.GetDailyReports)
	router.Get("/shop_commissions/{shop_id}", handler.GetWeeklyCommissions)
	router.Post("/shop_commissions/{shop_id}/pay/{week_id}", handler.PayWeeklyCommission)
	return handler, service, router
}

func TestGetShopReport(t *testing.T) {
	_, service, router := NewMock(t)

	t.Run("History with balance", func(t *testing.T) {
		service.EXPECT().GetShopReport(gomock.Any(), "shop-1").Return(&reportservice.ShopReport{
			ShopID:  "shop-1",
			Balance: 90.0,
			Rounds: []domain.GameRound{
				{RoundID: "round-1", ShopID: "shop-1", Date: "2026-08-29", BetPerCard: 10.0, TotalCards: 5, Prize: 400.0, CommissionRate: 0.2, CommissionAmount: 10.0, Status: domain.RoundStatusOngoing},
			},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/report/shop-1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "shop-1", resp["shop_id"])
		assert.Equal(t, 90.0, resp["balance"])
		assert.Equal(t, "Success", resp["message"])
		games := resp["games"].([]any)
		assert.Len(t, games, 1)
		assert.Equal(t, "round-1", games[0].(map[string]any)["round_id"])
	})

	t.Run("Empty history is still a report", func(t *testing.T) {
		service.EXPECT().GetShopReport(gomock.Any(), "shop-1").Return(&reportservice.ShopReport{
			ShopID:  "shop-1",
			Balance: 90.0,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/report/shop-1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "No games found", resp["message"])
		assert.Empty(t, resp["games"])
	})

	t.Run("Unknown shop", func(t *testing.T) {
		service.EXPECT().GetShopReport(gomock.Any(), "ghost").Return(nil, reportservice.ErrShopNotFound)

		req := httptest.NewRequest(http.MethodGet, "/report/ghost", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)

		var resp utils.Response
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Shop not found", resp.Detail)
	})
}

func TestGetDailyReports(t *testing.T) {
	_, service, router := NewMock(t)

	t.Run("Reports returned", func(t *testing.T) {
		service.EXPECT().GetDailyReports(gomock.Any(), "shop-1").Return([]domain.DailyReport{
			{ShopID: "shop-1", Date: "2026-08-29", PlayCount: 3, PlacedBets: 300.0, Awarded: 120.0, NetCash: 180.0, CompanyCommission: 36.0},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/reports/shop-1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{
			"shop_id": "shop-1",
			"reports": [{
				"date": "2026-08-29",
				"play_count": 3,
				"placed_bets": 300,
				"awarded": 120,
				"net_cash": 180,
				"company_commission": 36
			}]
		}`, w.Body.String())
	})

	t.Run("No reports", func(t *testing.T) {
		service.EXPECT().GetDailyReports(gomock.Any(), "shop-1").Return(nil, reportservice.ErrNoReports)

		req := httptest.NewRequest(http.MethodGet, "/reports/shop-1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)

		var resp utils.Response
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "No reports found for this shop", resp.Detail)
	})
}

func TestGetWeeklyCommissions(t *testing.T) {
	_, service, router := NewMock(t)

	t.Run("Settlement rows", func(t *testing.T) {
		service.EXPECT().GetWeeklyCommissions(gomock.Any(), "shop-1").Return([]domain.WeeklyCommission{
			{ShopID: "shop-1", WeekID: "2026-W35", TotalCommission: 48.0, PaymentStatus: "unpaid"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/shop_commissions/shop-1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{
			"shop_id": "shop-1",
			"weekly_commissions": [{
				"week_id": "2026-W35",
				"total_commission": 48,
				"payment_status": "unpaid"
			}]
		}`, w.Body.String())
	})

	t.Run("No settlements yet", func(t *testing.T) {
		service.EXPECT().GetWeeklyCommissions(gomock.Any(), "shop-1").Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/shop_commissions/shop-1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"shop_id":"shop-1","weekly_commissions":[]}`, w.Body.String())
	})
}

func TestPayWeeklyCommission(t *testing.T) {
	_, service, router := NewMock(t)

	t.Run("Week marked paid", func(t *testing.T) {
		service.EXPECT().PayWeeklyCommission(gomock.Any(), "shop-1", "2026-W35").Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/shop_commissions/shop-1/pay/2026-W35", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"success","message":"Week 2026-W35 marked as paid"}`, w.Body.String())
	})

	t.Run("Unknown week", func(t *testing.T) {
		service.EXPECT().PayWeeklyCommission(gomock.Any(), "shop-1", "2026-W01").Return(reportservice.ErrWeekNotFound)

		req := httptest.NewRequest(http.MethodPost, "/shop_commissions/shop-1/pay/2026-W01", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)

		var resp utils.Response
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Week commission not found", resp.Detail)
	})
}
