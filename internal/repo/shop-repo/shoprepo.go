package shoprepo

import (
	"context"
	"fmt"
	"strings"

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

func (r *Repository) FindByShopID(ctx context.Context, shopID string) (*domain.Shop, error) {
	query := `
        SELECT id, shop_id, username, password_hash, balance, billing_type, commission_rate
        FROM shops
        WHERE shop_id = $1
        LIMIT 1
    `
	row := r.db.QueryRow(ctx, query, shopID)
	var shop domain.Shop
	err := row.Scan(&shop.ID, &shop.ShopID, &shop.Username, &shop.PasswordHash, &shop.Balance, &shop.BillingType, &shop.CommissionRate)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find shop", zap.Error(err))
		return nil, err
	}
	return &shop, nil
}

func (r *Repository) FindByShopIDAndUsername(ctx context.Context, shopID, username string) (*domain.Shop, error) {
	query := `
        SELECT id, shop_id, username, password_hash, balance, billing_type, commission_rate
        FROM shops
        WHERE shop_id = $1 AND username = $2
        LIMIT 1
    `
	row := r.db.QueryRow(ctx, query, shopID, username)
	var shop domain.Shop
	err := row.Scan(&shop.ID, &shop.ShopID, &shop.Username, &shop.PasswordHash, &shop.Balance, &shop.BillingType, &shop.CommissionRate)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find shop by credentials", zap.Error(err))
		return nil, err
	}
	return &shop, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.Shop, error) {
	query := `
        SELECT id, shop_id, username, password_hash, balance, billing_type, commission_rate
        FROM shops
        ORDER BY shop_id
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list shops", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var shops []domain.Shop
	for rows.Next() {
		var shop domain.Shop
		err := rows.Scan(&shop.ID, &shop.ShopID, &shop.Username, &shop.PasswordHash, &shop.Balance, &shop.BillingType, &shop.CommissionRate)
		if err != nil {
			zap.L().Error("can't scan shop row", zap.Error(err))
			return nil, err
		}
		shops = append(shops, shop)
	}

	return shops, nil
}

func (r *Repository) Create(ctx context.Context, shop *domain.Shop) (*domain.Shop, error) {
	query := `
		INSERT INTO shops (shop_id, username, password_hash, balance, billing_type, commission_rate)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, shop.ShopID, shop.Username, shop.PasswordHash, shop.Balance, shop.BillingType, shop.CommissionRate).Scan(&shop.ID)
	if err != nil {
		zap.L().Error("can't save shop", zap.Error(err))
		return nil, err
	}
	return shop, nil
}

// updatableColumns fixes the order of SET clauses for partial updates.
var updatableColumns = []string{"username", "password_hash", "balance", "billing_type"}

func (r *Repository) UpdateFields(ctx context.Context, shopID string, fields map[string]any) (bool, error) {
	setClauses := make([]string, 0, len(fields))
	args := make([]any, 0, len(fields)+1)
	for _, col := range updatableColumns {
		val, ok := fields[col]
		if !ok {
			continue
		}
		args = append(args, val)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if len(setClauses) == 0 {
		return r.exists(ctx, shopID)
	}

	args = append(args, shopID)
	query := fmt.Sprintf("UPDATE shops SET %s WHERE shop_id = $%d", strings.Join(setClauses, ", "), len(args))

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't update shop", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) exists(ctx context.Context, shopID string) (bool, error) {
	var id int
	err := r.db.QueryRow(ctx, "SELECT id FROM shops WHERE shop_id = $1 LIMIT 1", shopID).Scan(&id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *Repository) Delete(ctx context.Context, shopID string) (bool, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM shops WHERE shop_id = $1", shopID)
	if err != nil {
		zap.L().Error("can't delete shop", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) UpdateCommission(ctx context.Context, shopID string, rate float64) (bool, error) {
	tag, err := r.db.Exec(ctx, "UPDATE shops SET commission_rate = $1 WHERE shop_id = $2", rate, shopID)
	if err != nil {
		zap.L().Error("can't update commission rate", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// DeductBalance subtracts amount only while the balance still covers it, so two
// concurrent charges cannot drive the balance negative. Returns false when the
// guard rejected the update.
func (r *Repository) DeductBalance(ctx context.Context, shopID string, amount float64) (bool, error) {
	query := `
		UPDATE shops
		SET balance = balance - $1
		WHERE shop_id = $2 AND balance >= $1
	`
	tag, err := r.db.Exec(ctx, query, amount, shopID)
	if err != nil {
		zap.L().Error("can't deduct balance", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
