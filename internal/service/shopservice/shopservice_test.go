package shopservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/halobingo/bingohall/internal/domain"
	"github.com/halobingo/bingohall/pkg/auth"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *auth.MockHashServiceInterface) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	service := New(repo, hashService)
	defer ctrl.Finish()
	return service, repo, hashService
}

func strptr(s string) *string {
	return &s
}

func floatptr(v float64) *float64 {
	return &v
}

func TestCreate(t *testing.T) {
	service, repo, hashService := NewMock(t)

	tests := []struct {
		name          string
		input         CreateShopInput
		prepareMock   func()
		expectedRate  float64
		expectedError error
	}{
		{
			name: "Defaults billing to prepaid and rate to 0.1",
			input: CreateShopInput{
				ShopID:   "shop-1",
				Username: "operator",
				Password: "secret",
				Balance:  100.0,
			},
			prepareMock: func() {
				repo.EXPECT().FindByShopID(gomock.Any(), "shop-1").Return(nil, nil)
				hashService.EXPECT().HashPassword("secret").Return("hashed", nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, shop *domain.Shop) (*domain.Shop, error) {
						assert.Equal(t, domain.BillingPrepaid, shop.BillingType)
						assert.Equal(t, "hashed", shop.PasswordHash)
						return shop, nil
					})
			},
			expectedRate: 0.1,
		},
		{
			name: "Explicit rate is kept",
			input: CreateShopInput{
				ShopID:         "shop-1",
				Username:       "operator",
				Password:       "secret",
				BillingType:    domain.BillingPostpaid,
				CommissionRate: floatptr(0.25),
			},
			prepareMock: func() {
				repo.EXPECT().FindByShopID(gomock.Any(), "shop-1").Return(nil, nil)
				hashService.EXPECT().HashPassword("secret").Return("hashed", nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, shop *domain.Shop) (*domain.Shop, error) {
						return shop, nil
					})
			},
			expectedRate: 0.25,
		},
		{
			name: "Rejects unknown billing type",
			input: CreateShopInput{
				ShopID:      "shop-1",
				BillingType: "invoice",
			},
			prepareMock:   func() {},
			expectedError: ErrInvalidBillingType,
		},
		{
			name: "Rejects duplicate shop ID",
			input: CreateShopInput{
				ShopID:   "shop-1",
				Username: "operator",
			},
			prepareMock: func() {
				repo.EXPECT().FindByShopID(gomock.Any(), "shop-1").Return(&domain.Shop{ShopID: "shop-1"}, nil)
			},
			expectedError: ErrShopAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			shop, err := service.Create(context.Background(), tt.input)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, shop)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedRate, *shop.CommissionRate)
			}
		})
	}
}

func TestGet(t *testing.T) {
	service, repo, _ := NewMock(t)

	t.Run("Returns the shop", func(t *testing.T) {
		expected := &domain.Shop{ShopID: "shop-1", Balance: 100.0}
		repo.EXPECT().FindByShopID(gomock.Any(), "shop-1").Return(expected, nil)

		shop, err := service.Get(context.Background(), "shop-1")
		assert.NoError(t, err)
		assert.Equal(t, expected, shop)
	})

	t.Run("Unknown shop", func(t *testing.T) {
		repo.EXPECT().FindByShopID(gomock.Any(), "ghost").Return(nil, nil)

		shop, err := service.Get(context.Background(), "ghost")
		assert.ErrorIs(t, err, ErrShopNotFound)
		assert.Nil(t, shop)
	})
}

func TestUpdate(t *testing.T) {
	service, repo, hashService := NewMock(t)

	tests := []struct {
		name           string
		input          UpdateShopInput
		prepareMock    func()
		expectedFields map[string]any
		expectedError  error
	}{
		{
			name: "Applies only the provided fields",
			input: UpdateShopInput{
				Username: strptr("newname"),
				Balance:  floatptr(250.0),
			},
			prepareMock: func() {
				repo.EXPECT().UpdateFields(gomock.Any(), "shop-1", map[string]any{
					"username": "newname",
					"balance":  250.0,
				}).Return(true, nil)
			},
			expectedFields: map[string]any{"username": "newname", "balance": 250.0},
		},
		{
			name: "Password is hashed before writing",
			input: UpdateShopInput{
				Password: strptr("newsecret"),
			},
			prepareMock: func() {
				hashService.EXPECT().HashPassword("newsecret").Return("hashed", nil)
				repo.EXPECT().UpdateFields(gomock.Any(), "shop-1", map[string]any{
					"password_hash": "hashed",
				}).Return(true, nil)
			},
			expectedFields: map[string]any{"password_hash": "hashed"},
		},
		{
			name: "Rejects unknown billing type",
			input: UpdateShopInput{
				BillingType: strptr("invoice"),
			},
			prepareMock:   func() {},
			expectedError: ErrInvalidBillingType,
		},
		{
			name:  "Unknown shop",
			input: UpdateShopInput{Username: strptr("newname")},
			prepareMock: func() {
				repo.EXPECT().UpdateFields(gomock.Any(), "shop-1", gomock.Any()).Return(false, nil)
			},
			expectedError: ErrShopNotFound,
		},
		{
			name:  "Empty update still checks existence",
			input: UpdateShopInput{},
			prepareMock: func() {
				repo.EXPECT().UpdateFields(gomock.Any(), "shop-1", map[string]any{}).Return(true, nil)
			},
			expectedFields: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			fields, err := service.Update(context.Background(), "shop-1", tt.input)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, fields)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedFields, fields)
			}
		})
	}
}

func TestDelete(t *testing.T) {
	service, repo, _ := NewMock(t)

	t.Run("Deletes the account", func(t *testing.T) {
		repo.EXPECT().Delete(gomock.Any(), "shop-1").Return(true, nil)

		assert.NoError(t, service.Delete(context.Background(), "shop-1"))
	})

	t.Run("Unknown shop", func(t *testing.T) {
		repo.EXPECT().Delete(gomock.Any(), "ghost").Return(false, nil)

		assert.ErrorIs(t, service.Delete(context.Background(), "ghost"), ErrShopNotFound)
	})

	t.Run("Repo error is passed through", func(t *testing.T) {
		repo.EXPECT().Delete(gomock.Any(), "shop-1").Return(false, errors.New("db error"))

		assert.Error(t, service.Delete(context.Background(), "shop-1"))
	})
}

func TestUpdateCommission(t *testing.T) {
	service, repo, _ := NewMock(t)

	t.Run("Updates the rate", func(t *testing.T) {
		repo.EXPECT().UpdateCommission(gomock.Any(), "shop-1", 0.25).Return(true, nil)

		assert.NoError(t, service.UpdateCommission(context.Background(), "shop-1", 0.25))
	})

	t.Run("Unknown shop", func(t *testing.T) {
		repo.EXPECT().UpdateCommission(gomock.Any(), "ghost", 0.25).Return(false, nil)

		assert.ErrorIs(t, service.UpdateCommission(context.Background(), "ghost", 0.25), ErrShopNotFound)
	})
}
