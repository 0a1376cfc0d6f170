package reports

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/halobingo/bingohall/internal/domain"
	"github.com/halobingo/bingohall/internal/dto"
	"github.com/halobingo/bingohall/internal/service/reportservice"
	"github.com/halobingo/bingohall/pkg/utils"
)

type Service interface {
	GetShopReport(ctx context.Context, shopID string) (*reportservice.ShopReport, error)
	GetDailyReports(ctx context.Context, shopID string) ([]domain.DailyReport, error)
	GetWeeklyCommissions(ctx context.Context, shopID string) ([]domain.WeeklyCommission, error)
	PayWeeklyCommission(ctx context.Context, shopID, weekID string) error
}

type ReportHandler struct {
	reportService Service
}

func New(reportService Service) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// GetShopReport godoc
//
//	@Summary	Get a shop's round history with its current balance
//	@Tags		Reports
//	@Produce	json
//	@Param		shop_id	path		string	true	"Shop ID"
//	@Success	200		{object}	dto.ShopReportResponseDTO
//	@Failure	404		{object}	utils.Response	"Shop not found"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/report/{shop_id} [get]
func (h *ReportHandler) GetShopReport(w http.ResponseWriter, r *http.Request) {
	shopID := chi.URLParam(r, "shop_id")

	report, err := h.reportService.GetShopReport(r.Context(), shopID)
	if err != nil {
		if errors.Is(err, reportservice.ErrShopNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Shop not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to fetch report: %v", err))
		return
	}

	games := make([]dto.GameRoundDTO, 0, len(report.Rounds))
	for _, round := range report.Rounds {
		games = append(games, dto.GameRoundDTO{
			RoundID:          round.RoundID,
			ShopID:           round.ShopID,
			Date:             round.Date,
			BetPerCard:       round.BetPerCard,
			TotalCards:       round.TotalCards,
			Prize:            round.Prize,
			CommissionRate:   round.CommissionRate,
			CommissionAmount: round.CommissionAmount,
			WinningPattern:   round.WinningPattern,
			Status:           round.Status,
			StartedAt:        round.StartedAt,
		})
	}

	message := "Success"
	if len(games) == 0 {
		message = "No games found"
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ShopReportResponseDTO{
		ShopID:  report.ShopID,
		Balance: report.Balance,
		Games:   games,
		Message: message,
	})
}

// GetDailyReports godoc
//
//	@Summary	Get all daily reports for a shop
//	@Tags		Reports
//	@Produce	json
//	@Param		shop_id	path		string	true	"Shop ID"
//	@Success	200		{object}	dto.DailyReportsResponseDTO
//	@Failure	404		{object}	utils.Response	"No reports found"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/reports/{shop_id} [get]
func (h *ReportHandler) GetDailyReports(w http.ResponseWriter, r *http.Request) {
	shopID := chi.URLParam(r, "shop_id")

	reports, err := h.reportService.GetDailyReports(r.Context(), shopID)
	if err != nil {
		if errors.Is(err, reportservice.ErrNoReports) {
			utils.RespondWithError(w, http.StatusNotFound, "No reports found for this shop")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.DailyReportDTO, 0, len(reports))
	for _, report := range reports {
		response = append(response, dto.DailyReportDTO{
			Date:              report.Date,
			PlayCount:         report.PlayCount,
			PlacedBets:        report.PlacedBets,
			Awarded:           report.Awarded,
			NetCash:           report.NetCash,
			CompanyCommission: report.CompanyCommission,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DailyReportsResponseDTO{
		ShopID:  shopID,
		Reports: response,
	})
}

// GetWeeklyCommissions godoc
//
//	@Summary	List weekly commission settlements for a shop
//	@Tags		Reports
//	@Produce	json
//	@Param		shop_id	path		string	true	"Shop ID"
//	@Success	200		{object}	dto.WeeklyCommissionsResponseDTO
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/shop_commissions/{shop_id} [get]
func (h *ReportHandler) GetWeeklyCommissions(w http.ResponseWriter, r *http.Request) {
	shopID := chi.URLParam(r, "shop_id")

	commissions, err := h.reportService.GetWeeklyCommissions(r.Context(), shopID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.WeeklyCommissionDTO, 0, len(commissions))
	for _, wc := range commissions {
		response = append(response, dto.WeeklyCommissionDTO{
			WeekID:          wc.WeekID,
			TotalCommission: wc.TotalCommission,
			PaymentStatus:   wc.PaymentStatus,
			PaidAt:          wc.PaidAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WeeklyCommissionsResponseDTO{
		ShopID:            shopID,
		WeeklyCommissions: response,
	})
}

// PayWeeklyCommission godoc
//
//	@Summary	Mark a weekly commission as paid
//	@Tags		Reports
//	@Produce	json
//	@Param		shop_id	path		string	true	"Shop ID"
//	@Param		week_id	path		string	true	"ISO week, e.g. 2026-W35"
//	@Success	200		{object}	dto.StatusResponseDTO
//	@Failure	404		{object}	utils.Response	"Week commission not found"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/shop_commissions/{shop_id}/pay/{week_id} [post]
func (h *ReportHandler) PayWeeklyCommission(w http.ResponseWriter, r *http.Request) {
	shopID := chi.URLParam(r, "shop_id")
	weekID := chi.URLParam(r, "week_id")

	if err := h.reportService.PayWeeklyCommission(r.Context(), shopID, weekID); err != nil {
		if errors.Is(err, reportservice.ErrWeekNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Week commission not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.StatusResponseDTO{
		Status:  "success",
		Message: fmt.Sprintf("Week %s marked as paid", weekID),
	})
}
