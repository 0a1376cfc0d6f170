package dto

import "time"

type GameRoundDTO struct {
	RoundID          string    `json:"round_id"`
	ShopID           string    `json:"shop_id"`
	Date             string    `json:"date"`
	BetPerCard       float64   `json:"bet_per_card"`
	TotalCards       int       `json:"total_cards"`
	Prize            float64   `json:"prize"`
	CommissionRate   float64   `json:"commission_rate"`
	CommissionAmount float64   `json:"commission_amount"`
	WinningPattern   *string   `json:"winning_pattern,omitempty"`
	Status           string    `json:"status"`
	StartedAt        time.Time `json:"started_at"`
}

type ShopReportResponseDTO struct {
	ShopID  string         `json:"shop_id"`
	Balance float64        `json:"balance"`
	Games   []GameRoundDTO `json:"games"`
	Message string         `json:"message"`
}

type DailyReportDTO struct {
	Date              string  `json:"date"`
	PlayCount         int     `json:"play_count"`
	PlacedBets        float64 `json:"placed_bets"`
	Awarded           float64 `json:"awarded"`
	NetCash           float64 `json:"net_cash"`
	CompanyCommission float64 `json:"company_commission"`
}

type DailyReportsResponseDTO struct {
	ShopID  string           `json:"shop_id"`
	Reports []DailyReportDTO `json:"reports"`
}

type WeeklyCommissionDTO struct {
	WeekID          string     `json:"week_id"`
	TotalCommission float64    `json:"total_commission"`
	PaymentStatus   string     `json:"payment_status"`
	PaidAt          *time.Time `json:"paid_at,omitempty"`
}

type WeeklyCommissionsResponseDTO struct {
	ShopID            string                `json:"shop_id"`
	WeeklyCommissions []WeeklyCommissionDTO `json:"weekly_commissions"`
}
