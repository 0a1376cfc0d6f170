package gamerepo

import (
	"context"

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

func (r *Repository) Create(ctx context.Context, payload map[string]any) error {
	_, err := r.db.Exec(ctx, "INSERT INTO games (payload) VALUES ($1)", payload)
	if err != nil {
		zap.L().Error("can't save game record", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) List(ctx context.Context) ([]domain.Game, error) {
	query := `
        SELECT id, payload, created_at
        FROM games
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list game records", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var games []domain.Game
	for rows.Next() {
		var game domain.Game
		if err := rows.Scan(&game.ID, &game.Payload, &game.CreatedAt); err != nil {
			zap.L().Error("can't scan game record row", zap.Error(err))
			return nil, err
		}
		games = append(games, game)
	}

	return games, nil
}
