package service

import (
	"github.com/halobingo/bingohall/internal/handlers/auth"
	"github.com/halobingo/bingohall/internal/handlers/reports"
	"github.com/halobingo/bingohall/internal/handlers/rounds"
	"github.com/halobingo/bingohall/internal/handlers/shops"

	pkgauth "github.com/halobingo/bingohall/pkg/auth"

	"github.com/halobingo/bingohall/internal/metrics"
	"github.com/halobingo/bingohall/internal/pg"
	"github.com/halobingo/bingohall/internal/repo"
	authservice "github.com/halobingo/bingohall/internal/service/authservice"
	ledgerservice "github.com/halobingo/bingohall/internal/service/ledgerservice"
	reportservice "github.com/halobingo/bingohall/internal/service/reportservice"
	roundservice "github.com/halobingo/bingohall/internal/service/roundservice"
	shopservice "github.com/halobingo/bingohall/internal/service/shopservice"
)

type Services struct {
	AuthService   auth.Service
	ShopService   shops.Service
	RoundService  rounds.Service
	ReportService reports.Service
	LedgerService *ledgerservice.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, m *metrics.Metrics) *Services {
	ledgerService := ledgerservice.New(repo.ShopRepo, repo.ReportRepo, m)
	roundService := roundservice.New(repo.RoundRepo, repo.ShopRepo, repo.GameRepo, ledgerService, txManager, m)
	shopService := shopservice.New(repo.ShopRepo, &pkgauth.HashService{})
	authService := authservice.New(repo.ShopRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})
	reportService := reportservice.New(repo.ShopRepo, repo.RoundRepo, repo.ReportRepo)

	return &Services{
		AuthService:   authService,
		ShopService:   shopService,
		RoundService:  roundService,
		ReportService: reportService,
		LedgerService: ledgerService,
	}
}
