package shops

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/halobingo/bingohall/internal/domain"
	"github.com/halobingo/bingohall/internal/dto"
	"github.com/halobingo/bingohall/internal/service/shopservice"
	"github.com/halobingo/bingohall/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, in shopservice.CreateShopInput) (*domain.Shop, error)
	List(ctx context.Context) ([]domain.Shop, error)
	Get(ctx context.Context, shopID string) (*domain.Shop, error)
	Update(ctx context.Context, shopID string, in shopservice.UpdateShopInput) (map[string]any, error)
	Delete(ctx context.Context, shopID string) error
	UpdateCommission(ctx context.Context, shopID string, rate float64) error
}

// fallbackRate mirrors the account-creation default; used only when a stored
// row predates the rate column.
const fallbackRate = 0.1

type ShopHandler struct {
	shopService Service
}

func New(shopService Service) *ShopHandler {
	return &ShopHandler{
		shopService: shopService,
	}
}

// GetShops godoc
//
//	@Summary	List all shop accounts
//	@Tags		Shops
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.ShopResponseDTO
//	@Failure	401	{object}	utils.Response	"Unauthorized"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/shops [get]
func (h *ShopHandler) GetShops(w http.ResponseWriter, r *http.Request) {
	shops, err := h.shopService.List(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.ShopResponseDTO, 0, len(shops))
	for _, shop := range shops {
		response = append(response, dto.ShopResponseDTO{
			ShopID:         shop.ShopID,
			Username:       shop.Username,
			Balance:        shop.Balance,
			BillingType:    shop.BillingType,
			CommissionRate: shop.CommissionRate,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// CreateShop godoc
//
//	@Summary		Create a shop account
//	@Description	Create a shop account; the password is hashed and the commission rate defaults to 0.1 when omitted
//	@Tags			Shops
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateShopRequestDTO	true	"Shop account"
//	@Success		200		{object}	dto.CreateShopResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"Shop already exists"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/shops [post]
func (h *ShopHandler) CreateShop(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateShopRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	shop, err := h.shopService.Create(r.Context(), shopservice.CreateShopInput{
		ShopID:         req.ShopID,
		Username:       req.Username,
		Password:       req.Password,
		Balance:        req.Balance,
		BillingType:    req.BillingType,
		CommissionRate: req.CommissionRate,
	})
	if err != nil {
		switch {
		case errors.Is(err, shopservice.ErrInvalidBillingType):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, shopservice.ErrShopAlreadyExists):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CreateShopResponseDTO{
		Status:         "created",
		CommissionRate: *shop.CommissionRate,
	})
}

// GetBalance godoc
//
//	@Summary	Get a shop's current balance
//	@Tags		Shops
//	@Produce	json
//	@Param		shop_id	path		string	true	"Shop ID"
//	@Success	200		{object}	dto.BalanceResponseDTO
//	@Failure	404		{object}	utils.Response	"Shop not found"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/balance/{shop_id} [get]
func (h *ShopHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	shopID := chi.URLParam(r, "shop_id")

	shop, err := h.shopService.Get(r.Context(), shopID)
	if err != nil {
		if errors.Is(err, shopservice.ErrShopNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Shop not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{Balance: shop.Balance})
}

// GetShopData godoc
//
//	@Summary	Get a shop's balance and commission rate
//	@Tags		Shops
//	@Produce	json
//	@Param		shop_id	path		string	true	"Shop ID"
//	@Success	200		{object}	dto.ShopDataResponseDTO
//	@Failure	404		{object}	utils.Response	"Shop not found"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/shop/{shop_id} [get]
func (h *ShopHandler) GetShopData(w http.ResponseWriter, r *http.Request) {
	shopID := chi.URLParam(r, "shop_id")

	shop, err := h.shopService.Get(r.Context(), shopID)
	if err != nil {
		if errors.Is(err, shopservice.ErrShopNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Shop not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	rate := fallbackRate
	if shop.CommissionRate != nil {
		rate = *shop.CommissionRate
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ShopDataResponseDTO{
		Balance:        shop.Balance,
		CommissionRate: rate,
	})
}

// UpdateShop godoc
//
//	@Summary		Update a shop account
//	@Description	Apply a partial field set to the shop account
//	@Tags			Shops
//	@Accept			json
//	@Produce		json
//	@Param			shop_id	path		string					true	"Shop ID"
//	@Param			request	body		dto.UpdateShopRequestDTO	true	"Fields to update"
//	@Success		200		{object}	dto.UpdateShopResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Shop not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/shops/{shop_id} [put]
func (h *ShopHandler) UpdateShop(w http.ResponseWriter, r *http.Request) {
	shopID := chi.URLParam(r, "shop_id")

	var req dto.UpdateShopRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.shopService.Update(r.Context(), shopID, shopservice.UpdateShopInput{
		Username:    req.Username,
		Password:    req.Password,
		Balance:     req.Balance,
		BillingType: req.BillingType,
	})
	if err != nil {
		switch {
		case errors.Is(err, shopservice.ErrShopNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Shop not found")
		case errors.Is(err, shopservice.ErrInvalidBillingType):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.UpdateShopResponseDTO{
		Message:       "Shop updated",
		UpdatedFields: updated,
	})
}

// DeleteShop godoc
//
//	@Summary		Delete a shop account
//	@Description	Remove the account; the shop's rounds and reports are not cleaned up
//	@Tags			Shops
//	@Produce		json
//	@Param			shop_id	path		string	true	"Shop ID"
//	@Success		200		{object}	dto.MessageResponseDTO
//	@Failure		404		{object}	utils.Response	"Shop not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/shops/{shop_id} [delete]
func (h *ShopHandler) DeleteShop(w http.ResponseWriter, r *http.Request) {
	shopID := chi.URLParam(r, "shop_id")

	if err := h.shopService.Delete(r.Context(), shopID); err != nil {
		if errors.Is(err, shopservice.ErrShopNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Shop not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "Shop deleted successfully"})
}

// UpdateCommission godoc
//
//	@Summary	Update a shop's commission rate
//	@Tags		Shops
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		shop_id	path		string							true	"Shop ID"
//	@Param		request	body		dto.CommissionUpdateRequestDTO	true	"New commission rate"
//	@Success	200		{object}	dto.CommissionUpdateResponseDTO
//	@Failure	400		{object}	utils.Response	"Invalid request body"
//	@Failure	404		{object}	utils.Response	"Shop not found"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/shops/{shop_id}/commission [put]
func (h *ShopHandler) UpdateCommission(w http.ResponseWriter, r *http.Request) {
	shopID := chi.URLParam(r, "shop_id")

	var req dto.CommissionUpdateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.shopService.UpdateCommission(r.Context(), shopID, req.CommissionRate); err != nil {
		if errors.Is(err, shopservice.ErrShopNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Shop not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CommissionUpdateResponseDTO{
		Status:            "updated",
		ShopID:            shopID,
		NewCommissionRate: req.CommissionRate,
	})
}
