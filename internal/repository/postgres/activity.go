package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"fleetdesk-backend/internal/domain"
	"fleetdesk-backend/internal/repository"
)

type activityRepository struct {
	db *sql.DB
}

func NewActivityRepository(db *sql.DB) repository.ActivityRepository {
	return &activityRepository{db: db}
}

const activityColumns = `id, org_id, vehicle_id, driver_id, type, COALESCE(description, ''), amount_cents, date, recurring, recurring_frequency, custom_fields, created_on`

const insertActivity = `INSERT INTO activities (org_id, vehicle_id, driver_id, type, description, amount_cents, date, recurring, recurring_frequency, custom_fields, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`

func scanActivity(row interface{ Scan(...any) error }) (*domain.Activity, error) {
	a := &domain.Activity{}
	var date, createdOn time.Time
	var freq sql.NullString
	var rawFields []byte
	err := row.Scan(&a.ID, &a.OrgID, &a.VehicleID, &a.DriverID, &a.Type, &a.Description,
		&a.AmountCents, &date, &a.Recurring, &freq, &rawFields, &createdOn)
	if err != nil {
		return nil, mapError(err)
	}
	if freq.Valid {
		f := domain.RecurringFrequency(freq.String)
		a.Frequency = &f
	}
	if err := scanCustomFields(rawFields, &a.CustomFields); err != nil {
		return nil, err
	}
	a.Date = date.Format(dateLayout)
	a.CreatedOn = createdOn.Format(dateLayout)
	return a, nil
}

// CreateWithLedger persists the activity and its optional derived
// ledger row atomically. At most one of rev/exp is non-nil; the caller
// guarantees that by construction.
func (r *activityRepository) CreateWithLedger(ctx context.Context, a *domain.Activity, rev *domain.Revenue, exp *domain.Expense) error {
	fields, err := customFieldsParam(a.CustomFields)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	a.CreatedOn = time.Now().Format(dateLayout)
	err = tx.QueryRowContext(ctx, insertActivity, a.OrgID, a.VehicleID, a.DriverID, a.Type,
		a.Description, a.AmountCents, a.Date, a.Recurring, freqParam(a.Frequency), fields, a.CreatedOn).Scan(&a.ID)
	if err != nil {
		return mapError(err)
	}

	if rev != nil {
		rev.ActivityID = &a.ID
		rev.CreatedOn = a.CreatedOn
		ledgerFields, err := customFieldsParam(rev.CustomFields)
		if err != nil {
			return err
		}
		err = tx.QueryRowContext(ctx, `INSERT INTO revenues (org_id, activity_id, amount_cents, description, date, status, custom_fields, created_on)
		          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
			rev.OrgID, rev.ActivityID, rev.AmountCents, rev.Description, rev.Date, rev.Status, ledgerFields, rev.CreatedOn).Scan(&rev.ID)
		if err != nil {
			return mapError(err)
		}
	}
	if exp != nil {
		exp.ActivityID = &a.ID
		exp.CreatedOn = a.CreatedOn
		ledgerFields, err := customFieldsParam(exp.CustomFields)
		if err != nil {
			return err
		}
		err = tx.QueryRowContext(ctx, `INSERT INTO expenses (org_id, activity_id, amount_cents, description, date, status, custom_fields, created_on)
		          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
			exp.OrgID, exp.ActivityID, exp.AmountCents, exp.Description, exp.Date, exp.Status, ledgerFields, exp.CreatedOn).Scan(&exp.ID)
		if err != nil {
			return mapError(err)
		}
	}

	return tx.Commit()
}

func (r *activityRepository) GetByID(ctx context.Context, orgID, id int32) (*domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE id = $1 AND org_id = $2`
	return scanActivity(r.db.QueryRowContext(ctx, query, id, orgID))
}

func (r *activityRepository) ListByOrg(ctx context.Context, orgID int32, filter repository.ActivityFilter, page, pageSize int32) ([]domain.Activity, int32, error) {
	where := ` FROM activities WHERE org_id = $1`
	args := []any{orgID}
	if filter.VehicleID != 0 {
		args = append(args, filter.VehicleID)
		where += fmt.Sprintf(" AND vehicle_id = $%d", len(args))
	}
	if filter.DriverID != 0 {
		args = append(args, filter.DriverID)
		where += fmt.Sprintf(" AND driver_id = $%d", len(args))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		where += fmt.Sprintf(" AND type = $%d", len(args))
	}

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*)`+where, args...).Scan(&count); err != nil {
		return nil, 0, mapError(err)
	}

	offset := (page - 1) * pageSize
	query := `SELECT ` + activityColumns + where +
		fmt.Sprintf(` ORDER BY date DESC, id DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, pageSize, offset)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, mapError(err)
	}
	defer rows.Close()

	var activities []domain.Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, 0, err
		}
		activities = append(activities, *a)
	}
	return activities, count, rows.Err()
}

func (r *activityRepository) Update(ctx context.Context, a *domain.Activity) error {
	fields, err := customFieldsParam(a.CustomFields)
	if err != nil {
		return err
	}
	query := `UPDATE activities SET vehicle_id=$1, driver_id=$2, type=$3, description=$4, amount_cents=$5, date=$6, recurring=$7, recurring_frequency=$8, custom_fields=$9
	          WHERE id=$10 AND org_id=$11`
	result, err := r.db.ExecContext(ctx, query, a.VehicleID, a.DriverID, a.Type, a.Description,
		a.AmountCents, a.Date, a.Recurring, freqParam(a.Frequency), fields, a.ID, a.OrgID)
	if err != nil {
		return mapError(err)
	}
	return requireRow(result)
}

func (r *activityRepository) Delete(ctx context.Context, orgID, id int32) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM activities WHERE id = $1 AND org_id = $2`, id, orgID)
	if err != nil {
		return mapError(err)
	}
	return requireRow(result)
}

// ListDueRecurring returns recurring templates whose next due date has
// arrived. Spans all organizations; callers run from the job scheduler.
func (r *activityRepository) ListDueRecurring(ctx context.Context, asOf string) ([]domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE recurring = true AND date <= $1 ORDER BY org_id, id`
	rows, err := r.db.QueryContext(ctx, query, asOf)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var templates []domain.Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		templates = append(templates, *a)
	}
	return templates, rows.Err()
}

// SpawnOccurrence inserts the concrete occurrence of a recurring
// template and advances the template's due date, in one transaction.
func (r *activityRepository) SpawnOccurrence(ctx context.Context, template *domain.Activity, nextDate string) (*domain.Activity, error) {
	fields, err := customFieldsParam(template.CustomFields)
	if err != nil {
		return nil, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	occurrence := &domain.Activity{
		OrgID:        template.OrgID,
		VehicleID:    template.VehicleID,
		DriverID:     template.DriverID,
		Type:         template.Type,
		Description:  template.Description,
		AmountCents:  template.AmountCents,
		Date:         template.Date,
		Recurring:    false,
		CustomFields: template.CustomFields,
		CreatedOn:    time.Now().Format(dateLayout),
	}
	err = tx.QueryRowContext(ctx, insertActivity, occurrence.OrgID, occurrence.VehicleID,
		occurrence.DriverID, occurrence.Type, occurrence.Description, occurrence.AmountCents,
		occurrence.Date, occurrence.Recurring, nil, fields, occurrence.CreatedOn).Scan(&occurrence.ID)
	if err != nil {
		return nil, mapError(err)
	}

	result, err := tx.ExecContext(ctx,
		`UPDATE activities SET date = $1 WHERE id = $2 AND org_id = $3 AND recurring = true`,
		nextDate, template.ID, template.OrgID)
	if err != nil {
		return nil, mapError(err)
	}
	if err := requireRow(result); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	template.Date = nextDate
	return occurrence, nil
}

func freqParam(f *domain.RecurringFrequency) any {
	if f == nil {
		return nil
	}
	return string(*f)
}
