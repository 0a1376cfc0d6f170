package rounds

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/halobingo/bingohall/internal/domain"
	"github.com/halobingo/bingohall/internal/dto"
	"github.com/halobingo/bingohall/internal/service/ledgerservice"
	"github.com/halobingo/bingohall/internal/service/roundservice"
	"github.com/halobingo/bingohall/pkg/utils"
)

type Service interface {
	StartRound(ctx context.Context, in roundservice.StartRoundInput) (*roundservice.StartRoundResult, error)
	SaveRound(ctx context.Context, in roundservice.SaveRoundInput) (*domain.CurrentRound, error)
	GetCurrentRound(ctx context.Context, shopID string) (*domain.CurrentRound, error)
	FinishRound(ctx context.Context, shopID string) error
	RecordWinning(ctx context.Context, in roundservice.RecordWinningInput) (string, error)
	ListGames(ctx context.Context) ([]domain.Game, error)
	CreateGame(ctx context.Context, payload map[string]any) error
}

type RoundHandler struct {
	roundService Service
}

func New(roundService Service) *RoundHandler {
	return &RoundHandler{
		roundService: roundService,
	}
}

// StartGame godoc
//
//	@Summary		Start a game round
//	@Description	Charge the shop's commission, record the round and update the daily report
//	@Tags			Rounds
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.StartGameRequestDTO	true	"Round parameters"
//	@Success		200		{object}	dto.StartGameResponseDTO
//	@Failure		400		{object}	utils.Response	"Insufficient balance"
//	@Failure		404		{object}	utils.Response	"Shop not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/startgame [post]
func (h *RoundHandler) StartGame(w http.ResponseWriter, r *http.Request) {
	var req dto.StartGameRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.roundService.StartRound(r.Context(), roundservice.StartRoundInput{
		ShopID:         req.ShopID,
		BetPerCard:     req.BetPerCard,
		Prize:          req.Prize,
		TotalCards:     req.TotalCards,
		SelectedCards:  req.SelectedCards,
		WinningPattern: req.WinningPattern,
	})
	if err != nil {
		switch {
		case errors.Is(err, ledgerservice.ErrShopNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Shop not found")
		case errors.Is(err, ledgerservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusBadRequest, "Insufficient balance")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.StartGameResponseDTO{
		Status:           "success",
		Message:          "Game started",
		RoundID:          result.RoundID,
		CommissionRate:   result.CommissionRate,
		CommissionAmount: result.CommissionAmount,
	})
}

// SaveGame godoc
//
//	@Summary		Save the current round
//	@Description	Overwrite the shop's single current-round slot; no balance or report side effects
//	@Tags			Rounds
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SaveGameRequestDTO	true	"Round parameters"
//	@Success		200		{object}	dto.SaveGameResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Shop not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/savegame [post]
func (h *RoundHandler) SaveGame(w http.ResponseWriter, r *http.Request) {
	var req dto.SaveGameRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	round, err := h.roundService.SaveRound(r.Context(), roundservice.SaveRoundInput{
		ShopID:         req.ShopID,
		BetPerCard:     req.BetPerCard,
		Prize:          req.Prize,
		TotalCards:     req.TotalCards,
		SelectedCards:  req.SelectedCards,
		Interval:       req.Interval,
		Language:       req.Language,
		CommissionRate: req.CommissionRate,
		WinningPattern: req.WinningPattern,
	})
	if err != nil {
		if errors.Is(err, ledgerservice.ErrShopNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Shop not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SaveGameResponseDTO{
		Status:  "success",
		Message: "Round saved",
		RoundID: round.RoundID,
	})
}

// GetRound godoc
//
//	@Summary	Get the shop's current round
//	@Tags		Rounds
//	@Produce	json
//	@Param		shop_id	path		string	true	"Shop ID"
//	@Success	200		{object}	dto.CurrentRoundResponseDTO
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/round/{shop_id} [get]
func (h *RoundHandler) GetRound(w http.ResponseWriter, r *http.Request) {
	shopID := chi.URLParam(r, "shop_id")

	round, err := h.roundService.GetCurrentRound(r.Context(), shopID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if round == nil {
		utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "No active round"})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CurrentRoundResponseDTO{
		ShopID:         round.ShopID,
		RoundID:        round.RoundID,
		BetPerCard:     round.BetPerCard,
		Prize:          round.Prize,
		TotalCards:     round.TotalCards,
		SelectedCards:  round.SelectedCards,
		Interval:       round.Interval,
		Language:       round.Language,
		CommissionRate: round.CommissionRate,
		WinningPattern: round.WinningPattern,
		Status:         round.Status,
		StartedAt:      round.StartedAt,
	})
}

// FinishRound godoc
//
//	@Summary	Mark the shop's current round as finished
//	@Tags		Rounds
//	@Produce	json
//	@Param		shop_id	path		string	true	"Shop ID"
//	@Success	200		{object}	dto.StatusResponseDTO
//	@Failure	404		{object}	utils.Response	"No active round found"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/finishround/{shop_id} [post]
func (h *RoundHandler) FinishRound(w http.ResponseWriter, r *http.Request) {
	shopID := chi.URLParam(r, "shop_id")

	if err := h.roundService.FinishRound(r.Context(), shopID); err != nil {
		if errors.Is(err, roundservice.ErrNoCurrentRound) {
			utils.RespondWithError(w, http.StatusNotFound, "No active round found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.StatusResponseDTO{
		Status:  "success",
		Message: "Round marked as finished",
	})
}

// RecordWining godoc
//
//	@Summary		Record a winning card
//	@Description	Append-only; the round and shop references are not validated
//	@Tags			Rounds
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WiningRequestDTO	true	"Winning entry"
//	@Success		200		{object}	dto.WiningResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/winings [post]
func (h *RoundHandler) RecordWining(w http.ResponseWriter, r *http.Request) {
	var req dto.WiningRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	winingID, err := h.roundService.RecordWinning(r.Context(), roundservice.RecordWinningInput{
		CardID:  req.CardID,
		RoundID: req.RoundID,
		ShopID:  req.ShopID,
		Prize:   req.Prize,
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WiningResponseDTO{
		Status:  "success",
		Message: "Wining recorded",
		ID:      winingID,
	})
}

// GetGames godoc
//
//	@Summary	List recorded game payloads
//	@Tags		Games
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		map[string]any
//	@Failure	401	{object}	utils.Response	"Unauthorized"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/games [get]
func (h *RoundHandler) GetGames(w http.ResponseWriter, r *http.Request) {
	games, err := h.roundService.ListGames(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]map[string]any, 0, len(games))
	for _, game := range games {
		response = append(response, game.Payload)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// CreateGame godoc
//
//	@Summary		Record a game payload
//	@Description	Legacy untyped surface; the payload is stored as-is
//	@Tags			Games
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	dto.StatusResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/games [post]
func (h *RoundHandler) CreateGame(w http.ResponseWriter, r *http.Request) {
	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.roundService.CreateGame(r.Context(), payload); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.StatusResponseDTO{Status: "game recorded"})
}
