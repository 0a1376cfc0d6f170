package roundrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/halobingo/bingohall/internal/domain"
	"github.com/halobingo/bingohall/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) CreateRound(ctx context.Context, round *domain.GameRound) error {
	query := `
		INSERT INTO game_rounds (round_id, shop_id, date, bet_per_card, total_cards, prize, commission_rate, commission_amount, winning_pattern, status, started_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now())
	`
	_, err := r.db.Exec(ctx, query,
		round.RoundID, round.ShopID, round.Date, round.BetPerCard, round.TotalCards,
		round.Prize, round.CommissionRate, round.CommissionAmount, round.WinningPattern, round.Status,
	)
	if err != nil {
		zap.L().Error("can't save game round", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindRoundsByShopID(ctx context.Context, shopID string) ([]domain.GameRound, error) {
	query := `
        SELECT round_id, shop_id, date, bet_per_card, total_cards, prize, commission_rate, commission_amount, winning_pattern, status, started_at
        FROM game_rounds
        WHERE shop_id = $1
        ORDER BY started_at DESC
    `
	rows, err := r.db.Query(ctx, query, shopID)
	if err != nil {
		zap.L().Error("can't get game rounds", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var rounds []domain.GameRound
	for rows.Next() {
		var round domain.GameRound
		err := rows.Scan(&round.RoundID, &round.ShopID, &round.Date, &round.BetPerCard, &round.TotalCards,
			&round.Prize, &round.CommissionRate, &round.CommissionAmount, &round.WinningPattern, &round.Status, &round.StartedAt)
		if err != nil {
			zap.L().Error("can't scan game round row", zap.Error(err))
			return nil, err
		}
		rounds = append(rounds, round)
	}

	return rounds, nil
}

// SaveCurrentRound overwrites the single per-shop round slot.
func (r *Repository) SaveCurrentRound(ctx context.Context, round *domain.CurrentRound) error {
	query := `
		INSERT INTO current_rounds (shop_id, round_id, bet_per_card, prize, total_cards, selected_cards, interval, language, commission_rate, winning_pattern, status, started_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (shop_id) DO UPDATE SET
			round_id = EXCLUDED.round_id,
			bet_per_card = EXCLUDED.bet_per_card,
			prize = EXCLUDED.prize,
			total_cards = EXCLUDED.total_cards,
			selected_cards = EXCLUDED.selected_cards,
			interval = EXCLUDED.interval,
			language = EXCLUDED.language,
			commission_rate = EXCLUDED.commission_rate,
			winning_pattern = EXCLUDED.winning_pattern,
			status = EXCLUDED.status,
			started_at = EXCLUDED.started_at
	`
	_, err := r.db.Exec(ctx, query,
		round.ShopID, round.RoundID, round.BetPerCard, round.Prize, round.TotalCards,
		round.SelectedCards, round.Interval, round.Language, round.CommissionRate,
		round.WinningPattern, round.Status, round.StartedAt,
	)
	if err != nil {
		zap.L().Error("can't save current round", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) GetCurrentRound(ctx context.Context, shopID string) (*domain.CurrentRound, error) {
	query := `
        SELECT shop_id, round_id, bet_per_card, prize, total_cards, selected_cards, interval, language, commission_rate, winning_pattern, status, started_at
        FROM current_rounds
        WHERE shop_id = $1
    `
	row := r.db.QueryRow(ctx, query, shopID)

	var round domain.CurrentRound
	err := row.Scan(&round.ShopID, &round.RoundID, &round.BetPerCard, &round.Prize, &round.TotalCards,
		&round.SelectedCards, &round.Interval, &round.Language, &round.CommissionRate,
		&round.WinningPattern, &round.Status, &round.StartedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get current round", zap.Error(err))
		return nil, err
	}
	return &round, nil
}

func (r *Repository) FinishCurrentRound(ctx context.Context, shopID string) (bool, error) {
	query := `
		UPDATE current_rounds
		SET status = $1
		WHERE shop_id = $2
	`
	tag, err := r.db.Exec(ctx, query, domain.RoundStatusFinished, shopID)
	if err != nil {
		zap.L().Error("can't finish current round", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) CreateWinning(ctx context.Context, entry *domain.WinningEntry) error {
	query := `
		INSERT INTO winings (wining_id, card_id, round_id, shop_id, prize, created_at)
		VALUES ($1, $2, $3, $4, $5, now())
	`
	_, err := r.db.Exec(ctx, query, entry.WiningID, entry.CardID, entry.RoundID, entry.ShopID, entry.Prize)
	if err != nil {
		zap.L().Error("can't save wining", zap.Error(err))
		return err
	}
	return nil
}
