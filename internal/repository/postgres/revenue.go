package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"fleetdesk-backend/internal/domain"
	"fleetdesk-backend/internal/repository"
)

type revenueRepository struct {
	db *sql.DB
}

func NewRevenueRepository(db *sql.DB) repository.RevenueRepository {
	return &revenueRepository{db: db}
}

const ledgerColumns = `id, org_id, activity_id, amount_cents, COALESCE(description, ''), date, status, custom_fields, created_on`

func scanRevenue(row interface{ Scan(...any) error }) (*domain.Revenue, error) {
	rev := &domain.Revenue{}
	var date, createdOn time.Time
	var rawFields []byte
	err := row.Scan(&rev.ID, &rev.OrgID, &rev.ActivityID, &rev.AmountCents, &rev.Description,
		&date, &rev.Status, &rawFields, &createdOn)
	if err != nil {
		return nil, mapError(err)
	}
	if err := scanCustomFields(rawFields, &rev.CustomFields); err != nil {
		return nil, err
	}
	rev.Date = date.Format(dateLayout)
	rev.CreatedOn = createdOn.Format(dateLayout)
	return rev, nil
}

func (r *revenueRepository) Create(ctx context.Context, rev *domain.Revenue) error {
	fields, err := customFieldsParam(rev.CustomFields)
	if err != nil {
		return err
	}
	query := `INSERT INTO revenues (org_id, activity_id, amount_cents, description, date, status, custom_fields, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	rev.CreatedOn = time.Now().Format(dateLayout)
	err = r.db.QueryRowContext(ctx, query, rev.OrgID, rev.ActivityID, rev.AmountCents,
		rev.Description, rev.Date, rev.Status, fields, rev.CreatedOn).Scan(&rev.ID)
	return mapError(err)
}

func (r *revenueRepository) GetByID(ctx context.Context, orgID, id int32) (*domain.Revenue, error) {
	query := `SELECT ` + ledgerColumns + ` FROM revenues WHERE id = $1 AND org_id = $2`
	return scanRevenue(r.db.QueryRowContext(ctx, query, id, orgID))
}

func (r *revenueRepository) ListByOrg(ctx context.Context, orgID int32, status domain.LedgerStatus, page, pageSize int32) ([]domain.Revenue, int32, error) {
	where := ` FROM revenues WHERE org_id = $1`
	args := []any{orgID}
	if status != "" {
		args = append(args, status)
		where += fmt.Sprintf(" AND status = $%d", len(args))
	}
	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*)`+where, args...).Scan(&count); err != nil {
		return nil, 0, mapError(err)
	}

	offset := (page - 1) * pageSize
	query := `SELECT ` + ledgerColumns + where +
		fmt.Sprintf(` ORDER BY date DESC, id DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, pageSize, offset)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, mapError(err)
	}
	defer rows.Close()

	var revenues []domain.Revenue
	for rows.Next() {
		rev, err := scanRevenue(rows)
		if err != nil {
			return nil, 0, err
		}
		revenues = append(revenues, *rev)
	}
	return revenues, count, rows.Err()
}

func (r *revenueRepository) Update(ctx context.Context, rev *domain.Revenue) error {
	fields, err := customFieldsParam(rev.CustomFields)
	if err != nil {
		return err
	}
	query := `UPDATE revenues SET activity_id=$1, amount_cents=$2, description=$3, date=$4, status=$5, custom_fields=$6
	          WHERE id=$7 AND org_id=$8`
	result, err := r.db.ExecContext(ctx, query, rev.ActivityID, rev.AmountCents, rev.Description,
		rev.Date, rev.Status, fields, rev.ID, rev.OrgID)
	if err != nil {
		return mapError(err)
	}
	return requireRow(result)
}

func (r *revenueRepository) Delete(ctx context.Context, orgID, id int32) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM revenues WHERE id = $1 AND org_id = $2`, id, orgID)
	if err != nil {
		return mapError(err)
	}
	return requireRow(result)
}

// MarkPastDue flips pending rows whose date has passed. Spans all
// organizations; run from the job scheduler.
func (r *revenueRepository) MarkPastDue(ctx context.Context, asOf string) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE revenues SET status = 'past_due' WHERE status = 'pending' AND date < $1`, asOf)
	if err != nil {
		return 0, mapError(err)
	}
	return result.RowsAffected()
}

func (r *revenueRepository) CountPastDueByOrg(ctx context.Context) (map[int32]int32, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT org_id, count(*) FROM revenues WHERE status = 'past_due' GROUP BY org_id`)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	counts := make(map[int32]int32)
	for rows.Next() {
		var orgID, count int32
		if err := rows.Scan(&orgID, &count); err != nil {
			return nil, err
		}
		counts[orgID] = count
	}
	return counts, rows.Err()
}
