package reportrepo

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

// UpsertDaily adds the report deltas to the (shop_id, date) row, creating it on
// first use. The increments happen inside the statement, so concurrent rounds
// cannot lose updates.
func (r *Repository) UpsertDaily(ctx context.Context, report *domain.DailyReport) error {
	query := `
		INSERT INTO daily_reports (shop_id, date, play_count, placed_bets, awarded, net_cash, company_commission)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (shop_id, date) DO UPDATE SET
			play_count = daily_reports.play_count + EXCLUDED.play_count,
			placed_bets = daily_reports.placed_bets + EXCLUDED.placed_bets,
			awarded = daily_reports.awarded + EXCLUDED.awarded,
			net_cash = daily_reports.net_cash + EXCLUDED.net_cash,
			company_commission = daily_reports.company_commission + EXCLUDED.company_commission
	`
	_, err := r.db.Exec(ctx, query,
		report.ShopID, report.Date, report.PlayCount, report.PlacedBets,
		report.Awarded, report.NetCash, report.CompanyCommission,
	)
	if err != nil {
		zap.L().Error("can't upsert daily report", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListDaily(ctx context.Context, shopID string) ([]domain.DailyReport, error) {
	query := `
        SELECT shop_id, date, play_count, placed_bets, awarded, net_cash, company_commission
        FROM daily_reports
        WHERE shop_id = $1
        ORDER BY date DESC
    `
	rows, err := r.db.Query(ctx, query, shopID)
	if err != nil {
		zap.L().Error("can't list daily reports", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var reports []domain.DailyReport
	for rows.Next() {
		var report domain.DailyReport
		err := rows.Scan(&report.ShopID, &report.Date, &report.PlayCount, &report.PlacedBets,
			&report.Awarded, &report.NetCash, &report.CompanyCommission)
		if err != nil {
			zap.L().Error("can't scan daily report row", zap.Error(err))
			return nil, err
		}
		reports = append(reports, report)
	}

	return reports, nil
}

func (r *Repository) ListWeekly(ctx context.Context, shopID string) ([]domain.WeeklyCommission, error) {
	query := `
        SELECT shop_id, week_id, total_commission, payment_status, paid_at
        FROM weekly_commissions
        WHERE shop_id = $1
        ORDER BY week_id DESC
    `
	rows, err := r.db.Query(ctx, query, shopID)
	if err != nil {
		zap.L().Error("can't list weekly commissions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var commissions []domain.WeeklyCommission
	for rows.Next() {
		var wc domain.WeeklyCommission
		err := rows.Scan(&wc.ShopID, &wc.WeekID, &wc.TotalCommission, &wc.PaymentStatus, &wc.PaidAt)
		if err != nil {
			zap.L().Error("can't scan weekly commission row", zap.Error(err))
			return nil, err
		}
		commissions = append(commissions, wc)
	}

	return commissions, nil
}

func (r *Repository) MarkWeeklyPaid(ctx context.Context, shopID, weekID string) (bool, error) {
	query := `
		UPDATE weekly_commissions
		SET payment_status = $1, paid_at = now()
		WHERE shop_id = $2 AND week_id = $3
	`
	tag, err := r.db.Exec(ctx, query, domain.PaymentStatusPaid, shopID, weekID)
	if err != nil {
		zap.L().Error("can't mark weekly commission paid", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// SumCommissionByWeek rolls daily reports up into (shop, ISO week) commission
// totals for the settlement worker.
func (r *Repository) SumCommissionByWeek(ctx context.Context) ([]domain.WeeklyTotal, error) {
	query := `
        SELECT shop_id, to_char(to_date(date, 'YYYY-MM-DD'), 'IYYY-"W"IW') AS week_id, SUM(company_commission)
        FROM daily_reports
        GROUP BY shop_id, week_id
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't sum commission by week", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var totals []domain.WeeklyTotal
	for rows.Next() {
		var total domain.WeeklyTotal
		if err := rows.Scan(&total.ShopID, &total.WeekID, &total.TotalCommission); err != nil {
			zap.L().Error("can't scan weekly total row", zap.Error(err))
			return nil, err
		}
		totals = append(totals, total)
	}

	return totals, nil
}

// UpsertWeeklyTotal refreshes a settlement row; rows already marked paid are
// left untouched.
func (r *Repository) UpsertWeeklyTotal(ctx context.Context, total *domain.WeeklyTotal) error {
	query := `
		INSERT INTO weekly_commissions (shop_id, week_id, total_commission, payment_status)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (shop_id, week_id) DO UPDATE SET
			total_commission = EXCLUDED.total_commission
		WHERE weekly_commissions.payment_status <> $5
	`
	_, err := r.db.Exec(ctx, query, total.ShopID, total.WeekID, total.TotalCommission, domain.PaymentStatusUnpaid, domain.PaymentStatusPaid)
	if err != nil {
		zap.L().Error("can't upsert weekly commission", zap.Error(err))
		return err
	}
	return nil
}
