package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/halobingo/bingohall/internal/domain"
	"github.com/halobingo/bingohall/pkg/auth"
	"go.uber.org/zap"
)

type Repo interface {
	FindByShopIDAndUsername(ctx context.Context, shopID, username string) (*domain.Shop, error)
}

// ShopOperatorRole is the single role issued to shop logins.
const ShopOperatorRole = "Shop Operator"

var ErrInvalidCredentials = errors.New("invalid credentials")

type Service struct {
	shopRepo    Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		shopRepo:    repo,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

func (s *Service) Authenticate(ctx context.Context, shopID, username, password string) (*domain.Shop, error) {
	shop, err := s.shopRepo.FindByShopIDAndUsername(ctx, shopID, username)
	if err != nil || shop == nil {
		zap.L().Error("invalid shop ID or username", zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(shop.PasswordHash, password); !ok {
		zap.L().Error("invalid password", zap.String("shop_id", shopID))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("shop successfully authenticated", zap.String("shop_id", shopID))
	return shop, nil
}

func (s *Service) GenerateToken(shop *domain.Shop) (string, error) {
	expirationTime := time.Now().Add(24 * time.Hour)

	token, err := s.jwtService.GenerateJWT(shop.Username, shop.ShopID, ShopOperatorRole, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
