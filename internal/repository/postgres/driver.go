package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"fleetdesk-backend/internal/domain"
	"fleetdesk-backend/internal/repository"
)

type driverRepository struct {
	db *sql.DB
}

func NewDriverRepository(db *sql.DB) repository.DriverRepository {
	return &driverRepository{db: db}
}

const driverColumns = `id, org_id, name, license_number, phone, documents, custom_fields, status, created_on`

func scanDriver(row interface{ Scan(...any) error }) (*domain.Driver, error) {
	d := &domain.Driver{}
	var createdOn time.Time
	var rawDocs, rawFields []byte
	err := row.Scan(&d.ID, &d.OrgID, &d.Name, &d.LicenseNumber, &d.Phone,
		&rawDocs, &rawFields, &d.Status, &createdOn)
	if err != nil {
		return nil, mapError(err)
	}
	d.Documents = map[string]string{}
	if len(rawDocs) > 0 {
		if err := json.Unmarshal(rawDocs, &d.Documents); err != nil {
			return nil, err
		}
	}
	if err := scanCustomFields(rawFields, &d.CustomFields); err != nil {
		return nil, err
	}
	d.CreatedOn = createdOn.Format(dateLayout)
	return d, nil
}

func (r *driverRepository) Create(ctx context.Context, d *domain.Driver) error {
	if d.Documents == nil {
		d.Documents = map[string]string{}
	}
	docs, err := json.Marshal(d.Documents)
	if err != nil {
		return err
	}
	fields, err := customFieldsParam(d.CustomFields)
	if err != nil {
		return err
	}
	query := `INSERT INTO drivers (org_id, name, license_number, phone, documents, custom_fields, status, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	d.CreatedOn = time.Now().Format(dateLayout)
	err = r.db.QueryRowContext(ctx, query, d.OrgID, d.Name, d.LicenseNumber, d.Phone,
		docs, fields, d.Status, d.CreatedOn).Scan(&d.ID)
	return mapError(err)
}

func (r *driverRepository) GetByID(ctx context.Context, orgID, id int32) (*domain.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM drivers WHERE id = $1 AND org_id = $2`
	return scanDriver(r.db.QueryRowContext(ctx, query, id, orgID))
}

func (r *driverRepository) ListByOrg(ctx context.Context, orgID int32, status domain.DriverStatus, page, pageSize int32) ([]domain.Driver, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + driverColumns + ` FROM drivers WHERE org_id = $1`
	countQuery := `SELECT count(*) FROM drivers WHERE org_id = $1`
	args := []any{orgID}
	if status != "" {
		query += ` AND status = $2`
		countQuery += ` AND status = $2`
		args = append(args, status)
	}
	var count int32
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, mapError(err)
	}

	query += fmt.Sprintf(` ORDER BY created_on DESC, id DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, pageSize, offset)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, mapError(err)
	}
	defer rows.Close()

	var drivers []domain.Driver
	for rows.Next() {
		d, err := scanDriver(rows)
		if err != nil {
			return nil, 0, err
		}
		drivers = append(drivers, *d)
	}
	return drivers, count, rows.Err()
}

func (r *driverRepository) Update(ctx context.Context, d *domain.Driver) error {
	docs, err := json.Marshal(d.Documents)
	if err != nil {
		return err
	}
	fields, err := customFieldsParam(d.CustomFields)
	if err != nil {
		return err
	}
	query := `UPDATE drivers SET name=$1, license_number=$2, phone=$3, documents=$4, custom_fields=$5, status=$6
	          WHERE id=$7 AND org_id=$8`
	result, err := r.db.ExecContext(ctx, query, d.Name, d.LicenseNumber, d.Phone,
		docs, fields, d.Status, d.ID, d.OrgID)
	if err != nil {
		return mapError(err)
	}
	return requireRow(result)
}

func (r *driverRepository) Delete(ctx context.Context, orgID, id int32) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM drivers WHERE id = $1 AND org_id = $2`, id, orgID)
	if err != nil {
		return mapError(err)
	}
	return requireRow(result)
}

// SetDocument patches a single document slot without rewriting the row.
func (r *driverRepository) SetDocument(ctx context.Context, orgID, id int32, docType, url string) error {
	query := `UPDATE drivers SET documents = jsonb_set(documents, $1, to_jsonb($2::text), true)
	          WHERE id = $3 AND org_id = $4`
	result, err := r.db.ExecContext(ctx, query, fmt.Sprintf("{%s}", docType), url, id, orgID)
	if err != nil {
		return mapError(err)
	}
	return requireRow(result)
}
