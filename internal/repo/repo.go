package repo

import (
	"github.com/halobingo/bingohall/internal/pg"
	gamerepo "github.com/halobingo/bingohall/internal/repo/game-repo"
	reportrepo "github.com/halobingo/bingohall/internal/repo/report-repo"
	roundrepo "github.com/halobingo/bingohall/internal/repo/round-repo"
	shoprepo "github.com/halobingo/bingohall/internal/repo/shop-repo"
)

type Repositories struct {
	ShopRepo   *shoprepo.Repository
	RoundRepo  *roundrepo.Repository
	ReportRepo *reportrepo.Repository
	GameRepo   *gamerepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		ShopRepo:   shoprepo.New(conn),
		RoundRepo:  roundrepo.New(conn),
		ReportRepo: reportrepo.New(conn),
		GameRepo:   gamerepo.New(conn),
	}
}
