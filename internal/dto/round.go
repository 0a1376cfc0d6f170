package dto

import "time"

type StartGameRequestDTO struct {
	ShopID         string  `json:"shop_id" validate:"required"`
	BetPerCard     float64 `json:"bet_per_card"`
	Prize          float64 `json:"prize"`
	TotalCards     int     `json:"total_cards"`
	SelectedCards  []int64 `json:"selected_cards"`
	WinningPattern *string `json:"winning_pattern,omitempty"`
}

type StartGameResponseDTO struct {
	Status           string  `json:"status"`
	Message          string  `json:"message"`
	RoundID          string  `json:"round_id"`
	CommissionRate   float64 `json:"commission_rate"`
	CommissionAmount float64 `json:"commission_amount"`
}

type SaveGameRequestDTO struct {
	ShopID         string  `json:"shop_id" validate:"required"`
	BetPerCard     float64 `json:"bet_per_card"`
	Prize          float64 `json:"prize"`
	TotalCards     int     `json:"total_cards"`
	SelectedCards  []int64 `json:"selected_cards"`
	Interval       int     `json:"interval"`
	Language       string  `json:"language"`
	CommissionRate float64 `json:"commission_rate"`
	WinningPattern *string `json:"winning_pattern,omitempty"`
}

type SaveGameResponseDTO struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	RoundID string `json:"round_id"`
}

type CurrentRoundResponseDTO struct {
	ShopID         string    `json:"shopId"`
	RoundID        string    `json:"roundId"`
	BetPerCard     float64   `json:"betPerCard"`
	Prize          float64   `json:"prize"`
	TotalCards     int       `json:"totalCards"`
	SelectedCards  []int64   `json:"selectedCards"`
	Interval       int       `json:"interval"`
	Language       string    `json:"language"`
	CommissionRate float64   `json:"commissionRate"`
	WinningPattern *string   `json:"winningPattern,omitempty"`
	Status         string    `json:"status"`
	StartedAt      time.Time `json:"started_at"`
}

type WiningRequestDTO struct {
	CardID  string  `json:"card_id" validate:"required"`
	RoundID string  `json:"round_id" validate:"required"`
	ShopID  string  `json:"shop_id" validate:"required"`
	Prize   float64 `json:"prize"`
}

type WiningResponseDTO struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	ID      string `json:"id"`
}

type StatusResponseDTO struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}
