package dto

type CreateShopRequestDTO struct {
	ShopID         string   `json:"shop_id" validate:"required"`
	Username       string   `json:"username" validate:"required"`
	Password       string   `json:"password" validate:"required"`
	Balance        float64  `json:"balance"`
	BillingType    string   `json:"billing_type"`
	CommissionRate *float64 `json:"commission_rate,omitempty"`
}

type CreateShopResponseDTO struct {
	Status         string  `json:"status"`
	CommissionRate float64 `json:"commission_rate"`
}

type ShopResponseDTO struct {
	ShopID         string   `json:"shop_id"`
	Username       string   `json:"username"`
	Balance        float64  `json:"balance"`
	BillingType    string   `json:"billing_type"`
	CommissionRate *float64 `json:"commission_rate,omitempty"`
}

type BalanceResponseDTO struct {
	Balance float64 `json:"balance"`
}

type ShopDataResponseDTO struct {
	Balance        float64 `json:"balance"`
	CommissionRate float64 `json:"commission_rate"`
}

// UpdateShopRequestDTO carries a partial field set; only non-nil fields are applied.
type UpdateShopRequestDTO struct {
	Username    *string  `json:"username,omitempty"`
	Password    *string  `json:"password,omitempty"`
	Balance     *float64 `json:"balance,omitempty"`
	BillingType *string  `json:"billing_type,omitempty"`
}

type UpdateShopResponseDTO struct {
	Message       string         `json:"message"`
	UpdatedFields map[string]any `json:"updated_fields"`
}

type MessageResponseDTO struct {
	Message string `json:"message"`
}

type CommissionUpdateRequestDTO struct {
	CommissionRate float64 `json:"commission_rate" validate:"required"`
}

type CommissionUpdateResponseDTO struct {
	Status            string  `json:"status"`
	ShopID            string  `json:"shop_id"`
	NewCommissionRate float64 `json:"new_commission_rate"`
}
