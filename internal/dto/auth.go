package dto

type LoginRequestDTO struct {
	ShopID   string `json:"shopId" validate:"required"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginUserDTO struct {
	Name        string   `json:"name"`
	Role        string   `json:"role"`
	ShopID      string   `json:"shopId"`
	Permissions []string `json:"permissions"`
	Balance     float64  `json:"balance"`
}

type LoginResponseDTO struct {
	Token string       `json:"token"`
	User  LoginUserDTO `json:"user"`
}
