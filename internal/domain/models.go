package domain

import "time"

const (
	BillingPrepaid  = "prepaid"
	BillingPostpaid = "postpaid"

	RoundStatusOngoing  = "ongoing"
	RoundStatusFinished = "finished"

	PaymentStatusUnpaid = "unpaid"
	PaymentStatusPaid   = "paid"
)

// Shop is a tenant bingo-hall operator account. CommissionRate is a pointer
// because the column is nullable: account creation fills 0.1 when the field is
// omitted, while the charge path falls back to 0.2 on NULL. The two defaults
// are intentionally different.
type Shop struct {
	ID             int      `db:"id"`
	ShopID         string   `db:"shop_id"`
	Username       string   `db:"username"`
	PasswordHash   string   `db:"password_hash"`
	Balance        float64  `db:"balance"`
	BillingType    string   `db:"billing_type"`
	CommissionRate *float64 `db:"commission_rate"`
}

type GameRound struct {
	RoundID          string    `db:"round_id"`
	ShopID           string    `db:"shop_id"`
	Date             string    `db:"date"`
	BetPerCard       float64   `db:"bet_per_card"`
	TotalCards       int       `db:"total_cards"`
	Prize            float64   `db:"prize"`
	CommissionRate   float64   `db:"commission_rate"`
	CommissionAmount float64   `db:"commission_amount"`
	WinningPattern   *string   `db:"winning_pattern"`
	Status           string    `db:"status"`
	StartedAt        time.Time `db:"started_at"`
}

// CurrentRound is the single mutable per-shop round slot. It is not a history:
// every save overwrites the previous content.
type CurrentRound struct {
	ShopID         string    `db:"shop_id"`
	RoundID        string    `db:"round_id"`
	BetPerCard     float64   `db:"bet_per_card"`
	Prize          float64   `db:"prize"`
	TotalCards     int       `db:"total_cards"`
	SelectedCards  []int64   `db:"selected_cards"`
	Interval       int       `db:"interval"`
	Language       string    `db:"language"`
	CommissionRate float64   `db:"commission_rate"`
	WinningPattern *string   `db:"winning_pattern"`
	Status         string    `db:"status"`
	StartedAt      time.Time `db:"started_at"`
}

type WinningEntry struct {
	WiningID  string    `db:"wining_id"`
	CardID    string    `db:"card_id"`
	RoundID   string    `db:"round_id"`
	ShopID    string    `db:"shop_id"`
	Prize     float64   `db:"prize"`
	CreatedAt time.Time `db:"created_at"`
}

type DailyReport struct {
	ShopID            string  `db:"shop_id"`
	Date              string  `db:"date"`
	PlayCount         int     `db:"play_count"`
	PlacedBets        float64 `db:"placed_bets"`
	Awarded           float64 `db:"awarded"`
	NetCash           float64 `db:"net_cash"`
	CompanyCommission float64 `db:"company_commission"`
}

type WeeklyCommission struct {
	ShopID          string     `db:"shop_id"`
	WeekID          string     `db:"week_id"`
	TotalCommission float64    `db:"total_commission"`
	PaymentStatus   string     `db:"payment_status"`
	PaidAt          *time.Time `db:"paid_at"`
}

// WeeklyTotal is an aggregation row produced by the settlement rollup: the sum
// of company commission across a shop's daily reports within one ISO week.
type WeeklyTotal struct {
	ShopID          string  `db:"shop_id"`
	WeekID          string  `db:"week_id"`
	TotalCommission float64 `db:"total_commission"`
}

// Game is the legacy untyped record surface; payloads pass through unchanged.
type Game struct {
	ID        int            `db:"id"`
	Payload   map[string]any `db:"payload"`
	CreatedAt time.Time      `db:"created_at"`
}
