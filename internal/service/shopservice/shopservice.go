package shopservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/halobingo/bingohall/internal/domain"
	"github.com/halobingo/bingohall/pkg/auth"
	"github.com/halobingo/bingohall/pkg/validate"
)

type Repo interface {
	FindByShopID(ctx context.Context, shopID string) (*domain.Shop, error)
	List(ctx context.Context) ([]domain.Shop, error)
	Create(ctx context.Context, shop *domain.Shop) (*domain.Shop, error)
	UpdateFields(ctx context.Context, shopID string, fields map[string]any) (bool, error)
	Delete(ctx context.Context, shopID string) (bool, error)
	UpdateCommission(ctx context.Context, shopID string, rate float64) (bool, error)
}

// createDefaultRate is the commission rate stamped on new accounts when the
// request omits one. The charge path uses its own, different fallback.
const createDefaultRate = 0.1

var (
	ErrShopNotFound       = errors.New("shop not found")
	ErrShopAlreadyExists  = errors.New("shop already exists")
	ErrInvalidBillingType = errors.New("invalid billing type")
)

type Service struct {
	repo        Repo
	hashService auth.HashServiceInterface
}

func New(repo Repo, hashService auth.HashServiceInterface) *Service {
	return &Service{
		repo:        repo,
		hashService: hashService,
	}
}

type CreateShopInput struct {
	ShopID         string
	Username       string
	Password       string
	Balance        float64
	BillingType    string
	CommissionRate *float64
}

func (s *Service) Create(ctx context.Context, in CreateShopInput) (*domain.Shop, error) {
	billingType := in.BillingType
	if billingType == "" {
		billingType = domain.BillingPrepaid
	}
	if !validate.IsBillingType(billingType) {
		return nil, ErrInvalidBillingType
	}

	existing, err := s.repo.FindByShopID(ctx, in.ShopID)
	if err != nil {
		zap.L().Error("can't check shop existence", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		zap.L().Info("shop already exists", zap.String("shop_id", in.ShopID))
		return nil, ErrShopAlreadyExists
	}

	hashedPassword, err := s.hashService.HashPassword(in.Password)
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return nil, err
	}

	rate := in.CommissionRate
	if rate == nil {
		defaultRate := createDefaultRate
		rate = &defaultRate
	}

	shop := &domain.Shop{
		ShopID:         in.ShopID,
		Username:       in.Username,
		PasswordHash:   hashedPassword,
		Balance:        in.Balance,
		BillingType:    billingType,
		CommissionRate: rate,
	}
	created, err := s.repo.Create(ctx, shop)
	if err != nil {
		zap.L().Error("can't create shop", zap.Error(err))
		return nil, err
	}

	zap.L().Info("shop created", zap.String("shop_id", created.ShopID))
	return created, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Shop, error) {
	shops, err := s.repo.List(ctx)
	if err != nil {
		zap.L().Error("can't list shops", zap.Error(err))
		return nil, err
	}
	return shops, nil
}

func (s *Service) Get(ctx context.Context, shopID string) (*domain.Shop, error) {
	shop, err := s.repo.FindByShopID(ctx, shopID)
	if err != nil {
		zap.L().Error("can't get shop", zap.Error(err))
		return nil, err
	}
	if shop == nil {
		return nil, ErrShopNotFound
	}
	return shop, nil
}

type UpdateShopInput struct {
	Username    *string
	Password    *string
	Balance     *float64
	BillingType *string
}

// Update applies only the provided fields. Returns the column map that was
// written, for the response envelope.
func (s *Service) Update(ctx context.Context, shopID string, in UpdateShopInput) (map[string]any, error) {
	fields := make(map[string]any)
	if in.Username != nil {
		fields["username"] = *in.Username
	}
	if in.Password != nil {
		hashedPassword, err := s.hashService.HashPassword(*in.Password)
		if err != nil {
			zap.L().Error("can't hash password", zap.Error(err))
			return nil, err
		}
		fields["password_hash"] = hashedPassword
	}
	if in.Balance != nil {
		fields["balance"] = *in.Balance
	}
	if in.BillingType != nil {
		if !validate.IsBillingType(*in.BillingType) {
			return nil, ErrInvalidBillingType
		}
		fields["billing_type"] = *in.BillingType
	}

	found, err := s.repo.UpdateFields(ctx, shopID, fields)
	if err != nil {
		zap.L().Error("can't update shop", zap.Error(err))
		return nil, err
	}
	if !found {
		return nil, ErrShopNotFound
	}
	return fields, nil
}

// Delete removes the account only; rounds and reports are left in place.
func (s *Service) Delete(ctx context.Context, shopID string) error {
	found, err := s.repo.Delete(ctx, shopID)
	if err != nil {
		zap.L().Error("can't delete shop", zap.Error(err))
		return err
	}
	if !found {
		return ErrShopNotFound
	}
	zap.L().Info("shop deleted", zap.String("shop_id", shopID))
	return nil
}

func (s *Service) UpdateCommission(ctx context.Context, shopID string, rate float64) error {
	found, err := s.repo.UpdateCommission(ctx, shopID, rate)
	if err != nil {
		zap.L().Error("can't update commission rate", zap.Error(err))
		return err
	}
	if !found {
		return ErrShopNotFound
	}
	zap.L().Info("commission rate updated", zap.String("shop_id", shopID), zap.Float64("rate", rate))
	return nil
}
