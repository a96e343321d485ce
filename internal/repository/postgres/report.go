package postgres

import (
	"context"
	"database/sql"

	"fleetdesk-backend/internal/domain"
	"fleetdesk-backend/internal/repository"
)

// reportRepository answers every dashboard/finance figure with a single
// aggregate query per figure. Tables are never fetched whole.
type reportRepository struct {
	db *sql.DB
}

func NewReportRepository(db *sql.DB) repository.ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) TotalRevenueCents(ctx context.Context, orgID int32) (int64, error) {
	var total int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount_cents), 0) FROM revenues WHERE org_id = $1`, orgID).Scan(&total)
	return total, mapError(err)
}

func (r *reportRepository) TotalExpenseCents(ctx context.Context, orgID int32) (int64, error) {
	var total int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount_cents), 0) FROM expenses WHERE org_id = $1`, orgID).Scan(&total)
	return total, mapError(err)
}

func (r *reportRepository) RevenueByStatus(ctx context.Context, orgID int32) (map[domain.LedgerStatus]int64, error) {
	return r.sumByStatus(ctx, `SELECT status, SUM(amount_cents) FROM revenues WHERE org_id = $1 GROUP BY status`, orgID)
}

func (r *reportRepository) ExpenseByStatus(ctx context.Context, orgID int32) (map[domain.LedgerStatus]int64, error) {
	return r.sumByStatus(ctx, `SELECT status, SUM(amount_cents) FROM expenses WHERE org_id = $1 GROUP BY status`, orgID)
}

func (r *reportRepository) sumByStatus(ctx context.Context, query string, orgID int32) (map[domain.LedgerStatus]int64, error) {
	rows, err := r.db.QueryContext(ctx, query, orgID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	sums := make(map[domain.LedgerStatus]int64)
	for rows.Next() {
		var status domain.LedgerStatus
		var sum int64
		if err := rows.Scan(&status, &sum); err != nil {
			return nil, err
		}
		sums[status] = sum
	}
	return sums, rows.Err()
}

func (r *reportRepository) ActivityCountByType(ctx context.Context, orgID int32) (map[domain.ActivityType]int32, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT type, count(*) FROM activities WHERE org_id = $1 GROUP BY type`, orgID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	counts := make(map[domain.ActivityType]int32)
	for rows.Next() {
		var typ domain.ActivityType
		var count int32
		if err := rows.Scan(&typ, &count); err != nil {
			return nil, err
		}
		counts[typ] = count
	}
	return counts, rows.Err()
}

func (r *reportRepository) VehicleStatusBreakdown(ctx context.Context, orgID int32) (map[domain.VehicleStatus]int32, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT status, count(*) FROM vehicles WHERE org_id = $1 GROUP BY status`, orgID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	counts := make(map[domain.VehicleStatus]int32)
	for rows.Next() {
		var status domain.VehicleStatus
		var count int32
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

func (r *reportRepository) VehicleCount(ctx context.Context, orgID int32) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM vehicles WHERE org_id = $1`, orgID).Scan(&count)
	return count, mapError(err)
}

func (r *reportRepository) DriverCount(ctx context.Context, orgID int32) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM drivers WHERE org_id = $1`, orgID).Scan(&count)
	return count, mapError(err)
}
