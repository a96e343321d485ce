package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"fleetdesk-backend/internal/domain"
	"fleetdesk-backend/internal/repository"
)

type expenseRepository struct {
	db *sql.DB
}

func NewExpenseRepository(db *sql.DB) repository.ExpenseRepository {
	return &expenseRepository{db: db}
}

func scanExpense(row interface{ Scan(...any) error }) (*domain.Expense, error) {
	e := &domain.Expense{}
	var date, createdOn time.Time
	var rawFields []byte
	err := row.Scan(&e.ID, &e.OrgID, &e.ActivityID, &e.AmountCents, &e.Description,
		&date, &e.Status, &rawFields, &createdOn)
	if err != nil {
		return nil, mapError(err)
	}
	if err := scanCustomFields(rawFields, &e.CustomFields); err != nil {
		return nil, err
	}
	e.Date = date.Format(dateLayout)
	e.CreatedOn = createdOn.Format(dateLayout)
	return e, nil
}

func (r *expenseRepository) Create(ctx context.Context, e *domain.Expense) error {
	fields, err := customFieldsParam(e.CustomFields)
	if err != nil {
		return err
	}
	query := `INSERT INTO expenses (org_id, activity_id, amount_cents, description, date, status, custom_fields, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	e.CreatedOn = time.Now().Format(dateLayout)
	err = r.db.QueryRowContext(ctx, query, e.OrgID, e.ActivityID, e.AmountCents,
		e.Description, e.Date, e.Status, fields, e.CreatedOn).Scan(&e.ID)
	return mapError(err)
}

func (r *expenseRepository) GetByID(ctx context.Context, orgID, id int32) (*domain.Expense, error) {
	query := `SELECT ` + ledgerColumns + ` FROM expenses WHERE id = $1 AND org_id = $2`
	return scanExpense(r.db.QueryRowContext(ctx, query, id, orgID))
}

func (r *expenseRepository) ListByOrg(ctx context.Context, orgID int32, status domain.LedgerStatus, page, pageSize int32) ([]domain.Expense, int32, error) {
	where := ` FROM expenses WHERE org_id = $1`
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

	var expenses []domain.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, 0, err
		}
		expenses = append(expenses, *e)
	}
	return expenses, count, rows.Err()
}

func (r *expenseRepository) Update(ctx context.Context, e *domain.Expense) error {
	fields, err := customFieldsParam(e.CustomFields)
	if err != nil {
		return err
	}
	query := `UPDATE expenses SET activity_id=$1, amount_cents=$2, description=$3, date=$4, status=$5, custom_fields=$6
	          WHERE id=$7 AND org_id=$8`
	result, err := r.db.ExecContext(ctx, query, e.ActivityID, e.AmountCents, e.Description,
		e.Date, e.Status, fields, e.ID, e.OrgID)
	if err != nil {
		return mapError(err)
	}
	return requireRow(result)
}

func (r *expenseRepository) Delete(ctx context.Context, orgID, id int32) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = $1 AND org_id = $2`, id, orgID)
	if err != nil {
		return mapError(err)
	}
	return requireRow(result)
}

func (r *expenseRepository) MarkPastDue(ctx context.Context, asOf string) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE expenses SET status = 'past_due' WHERE status = 'pending' AND date < $1`, asOf)
	if err != nil {
		return 0, mapError(err)
	}
	return result.RowsAffected()
}

func (r *expenseRepository) CountPastDueByOrg(ctx context.Context) (map[int32]int32, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT org_id, count(*) FROM expenses WHERE status = 'past_due' GROUP BY org_id`)
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
