package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/halobingo/bingohall/internal/domain"
	"github.com/halobingo/bingohall/internal/dto"
	"github.com/halobingo/bingohall/internal/service/authservice"
	"github.com/halobingo/bingohall/pkg/utils"
)

type Service interface {
	Authenticate(ctx context.Context, shopID, username, password string) (*domain.Shop, error)
	GenerateToken(shop *domain.Shop) (string, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login godoc
//
//	@Summary		Authenticate a shop operator
//	@Description	Log in with shop ID, username and password and get a JWT token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.LoginResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/loginshop [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	shop, err := h.authService.Authenticate(r.Context(), req.ShopID, req.Username, req.Password)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid shop ID or username")
		return
	}
	token, err := h.authService.GenerateToken(shop)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.LoginResponseDTO{
		Token: token,
		User: dto.LoginUserDTO{
			Name:        shop.Username,
			Role:        authservice.ShopOperatorRole,
			ShopID:      shop.ShopID,
			Permissions: []string{"game_control", "card_management", "reports"},
			Balance:     shop.Balance,
		},
	})
}
