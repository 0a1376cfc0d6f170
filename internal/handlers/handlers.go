package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/halobingo/bingohall/docs"
	authhandlers "github.com/halobingo/bingohall/internal/handlers/auth"
	reporthandlers "github.com/halobingo/bingohall/internal/handlers/reports"
	roundhandlers "github.com/halobingo/bingohall/internal/handlers/rounds"
	shophandlers "github.com/halobingo/bingohall/internal/handlers/shops"
	"github.com/halobingo/bingohall/internal/service"
	"github.com/halobingo/bingohall/pkg/auth"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
}

type ShopHandler interface {
	GetShops(w http.ResponseWriter, r *http.Request)
	CreateShop(w http.ResponseWriter, r *http.Request)
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetShopData(w http.ResponseWriter, r *http.Request)
	UpdateShop(w http.ResponseWriter, r *http.Request)
	DeleteShop(w http.ResponseWriter, r *http.Request)
	UpdateCommission(w http.ResponseWriter, r *http.Request)
}

type RoundHandler interface {
	StartGame(w http.ResponseWriter, r *http.Request)
	SaveGame(w http.ResponseWriter, r *http.Request)
	GetRound(w http.ResponseWriter, r *http.Request)
	FinishRound(w http.ResponseWriter, r *http.Request)
	RecordWining(w http.ResponseWriter, r *http.Request)
	GetGames(w http.ResponseWriter, r *http.Request)
	CreateGame(w http.ResponseWriter, r *http.Request)
}

type ReportHandler interface {
	GetShopReport(w http.ResponseWriter, r *http.Request)
	GetDailyReports(w http.ResponseWriter, r *http.Request)
	GetWeeklyCommissions(w http.ResponseWriter, r *http.Request)
	PayWeeklyCommission(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler   AuthHandler
	ShopHandler   ShopHandler
	RoundHandler  RoundHandler
	ReportHandler ReportHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:   authhandlers.New(s.AuthService),
		ShopHandler:   shophandlers.New(s.ShopService),
		RoundHandler:  roundhandlers.New(s.RoundService),
		ReportHandler: reporthandlers.New(s.ReportService),
	}
}

// InitRoutes wires the full HTTP surface. Only a subset of the mutation
// endpoints carries a token check; the rest are open, matching the admin
// frontend this API serves.
func (h *Handlers) InitRoutes(r chi.Router, allowedOrigins []string) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		cors.Handler(cors.Options{
			AllowedOrigins:   allowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"*"},
			AllowCredentials: true,
		}),
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/loginshop", h.AuthHandler.Login)

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)
		r.Get("/games", h.RoundHandler.GetGames)
		r.Post("/games", h.RoundHandler.CreateGame)
		r.Get("/shops", h.ShopHandler.GetShops)
		r.Post("/shops", h.ShopHandler.CreateShop)
		r.Put("/shops/{shop_id}/commission", h.ShopHandler.UpdateCommission)
	})

	r.Post("/startgame", h.RoundHandler.StartGame)
	r.Post("/savegame", h.RoundHandler.SaveGame)
	r.Post("/winings", h.RoundHandler.RecordWining)
	r.Get("/round/{shop_id}", h.RoundHandler.GetRound)
	r.Post("/finishround/{shop_id}", h.RoundHandler.FinishRound)

	r.Get("/balance/{shop_id}", h.ShopHandler.GetBalance)
	r.Get("/shop/{shop_id}", h.ShopHandler.GetShopData)
	r.Put("/shops/{shop_id}", h.ShopHandler.UpdateShop)
	r.Delete("/shops/{shop_id}", h.ShopHandler.DeleteShop)

	r.Get("/report/{shop_id}", h.ReportHandler.GetShopReport)
	r.Get("/reports/{shop_id}", h.ReportHandler.GetDailyReports)
	r.Get("/shop_commissions/{shop_id}", h.ReportHandler.GetWeeklyCommissions)
	r.Post("/shop_commissions/{shop_id}/pay/{week_id}", h.ReportHandler.PayWeeklyCommission)

	return r
}
