package shops

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
	"github.com/halobingo/bingohall/internal/service/shopservice"
	"github.com/halobingo/bingohall/pkg/utils"
)

func NewMock(t *testing.T) (*ShopHandler, *MockService, chi.Router) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()

	router := chi.NewRouter()
	router.Get("/shops", handler.GetShops)
	router.Post("/shops", handler.CreateShop)
	router.Get("/balance/{shop_id}", handler.GetBalance)
	router.Get("/shop/{shop_id}", handler.GetShopData)
	router.Put("/shops/{shop_id}", handler.UpdateShop)
	router.Delete("/shops/{shop_id}", handler.DeleteShop)
	router.Put("/shops/{shop_id}/commission", handler.UpdateCommission)
	return handler, service, router
}

func rate(v float64) *float64 {
	return &v
}

func TestGetShops(t *testing.T) {
	_, service, router := NewMock(t)

	t.Run("Password hash never leaves the handler", func(t *testing.T) {
		service.EXPECT().List(gomock.Any()).Return([]domain.Shop{
			{ShopID: "shop-1", Username: "operator", PasswordHash: "hashed", Balance: 100.0, BillingType: "prepaid", CommissionRate: rate(0.2)},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/shops", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), "hashed")

		var resp []map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp, 1)
		assert.Equal(t, "shop-1", resp[0]["shop_id"])
		assert.Equal(t, 0.2, resp[0]["commission_rate"])
	})
}

func TestCreateShop(t *testing.T) {
	_, service, router := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Created with defaulted rate",
			body: `{"shop_id":"shop-1","username":"operator","password":"secret"}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.Shop{
					ShopID:         "shop-1",
					CommissionRate: rate(0.1),
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Duplicate shop ID",
			body: `{"shop_id":"shop-1","username":"operator","password":"secret"}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, shopservice.ErrShopAlreadyExists)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "shop already exists",
		},
		{
			name: "Invalid billing type",
			body: `{"shop_id":"shop-1","username":"operator","password":"secret","billing_type":"invoice"}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, shopservice.ErrInvalidBillingType)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid billing type",
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

			req := httptest.NewRequest(http.MethodPost, "/shops", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp.Detail)
				return
			}

			var resp map[string]any
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "created", resp["status"])
			assert.Equal(t, 0.1, resp["commission_rate"])
		})
	}
}

func TestGetBalance(t *testing.T) {
	_, service, router := NewMock(t)

	t.Run("Returns the balance", func(t *testing.T) {
		service.EXPECT().Get(gomock.Any(), "shop-1").Return(&domain.Shop{ShopID: "shop-1", Balance: 90.0}, nil)

		req := httptest.NewRequest(http.MethodGet, "/balance/shop-1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"balance":90}`, w.Body.String())
	})

	t.Run("Unknown shop", func(t *testing.T) {
		service.EXPECT().Get(gomock.Any(), "ghost").Return(nil, shopservice.ErrShopNotFound)

		req := httptest.NewRequest(http.MethodGet, "/balance/ghost", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGetShopData(t *testing.T) {
	_, service, router := NewMock(t)

	t.Run("Stored rate is returned", func(t *testing.T) {
		service.EXPECT().Get(gomock.Any(), "shop-1").Return(&domain.Shop{
			ShopID:         "shop-1",
			Balance:        90.0,
			CommissionRate: rate(0.25),
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/shop/shop-1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"balance":90,"commission_rate":0.25}`, w.Body.String())
	})

	t.Run("Missing rate falls back to 0.1 in the response", func(t *testing.T) {
		service.EXPECT().Get(gomock.Any(), "shop-1").Return(&domain.Shop{
			ShopID:  "shop-1",
			Balance: 90.0,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/shop/shop-1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"balance":90,"commission_rate":0.1}`, w.Body.String())
	})
}

func TestUpdateShop(t *testing.T) {
	_, service, router := NewMock(t)

	t.Run("Reports the written fields", func(t *testing.T) {
		service.EXPECT().Update(gomock.Any(), "shop-1", gomock.Any()).Return(map[string]any{"balance": 250.0}, nil)

		req := httptest.NewRequest(http.MethodPut, "/shops/shop-1", bytes.NewBufferString(`{"balance":250}`))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Shop updated","updated_fields":{"balance":250}}`, w.Body.String())
	})

	t.Run("Unknown shop", func(t *testing.T) {
		service.EXPECT().Update(gomock.Any(), "ghost", gomock.Any()).Return(nil, shopservice.ErrShopNotFound)

		req := httptest.NewRequest(http.MethodPut, "/shops/ghost", bytes.NewBufferString(`{"balance":250}`))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeleteShop(t *testing.T) {
	_, service, router := NewMock(t)

	t.Run("Deletes the account", func(t *testing.T) {
		service.EXPECT().Delete(gomock.Any(), "shop-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/shops/shop-1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Shop deleted successfully"}`, w.Body.String())
	})

	t.Run("Unknown shop", func(t *testing.T) {
		service.EXPECT().Delete(gomock.Any(), "ghost").Return(shopservice.ErrShopNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/shops/ghost", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUpdateCommission(t *testing.T) {
	_, service, router := NewMock(t)

	t.Run("Updates the rate", func(t *testing.T) {
		service.EXPECT().UpdateCommission(gomock.Any(), "shop-1", 0.25).Return(nil)

		req := httptest.NewRequest(http.MethodPut, "/shops/shop-1/commission", bytes.NewBufferString(`{"commission_rate":0.25}`))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"updated","shop_id":"shop-1","new_commission_rate":0.25}`, w.Body.String())
	})

	t.Run("Unknown shop", func(t *testing.T) {
		service.EXPECT().UpdateCommission(gomock.Any(), "ghost", 0.25).Return(shopservice.ErrShopNotFound)

		req := httptest.NewRequest(http.MethodPut, "/shops/ghost/commission", bytes.NewBufferString(`{"commission_rate":0.25}`))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
