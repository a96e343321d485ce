package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"fleetdesk-backend/internal/domain"
	"fleetdesk-backend/internal/repository"

	"github.com/lib/pq"
)

type vehicleRepository struct {
	db *sql.DB
}

func NewVehicleRepository(db *sql.DB) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

const vehicleColumns = `id, org_id, brand, model, year, plate, status, photos, custom_fields, created_on`

func scanVehicle(row interface{ Scan(...any) error }) (*domain.Vehicle, error) {
	v := &domain.Vehicle{}
	var createdOn time.Time
	var rawFields []byte
	err := row.Scan(&v.ID, &v.OrgID, &v.Brand, &v.Model, &v.Year, &v.Plate,
		&v.Status, pq.Array(&v.Photos), &rawFields, &createdOn)
	if err != nil {
		return nil, mapError(err)
	}
	if err := scanCustomFields(rawFields, &v.CustomFields); err != nil {
		return nil, err
	}
	v.CreatedOn = createdOn.Format(dateLayout)
	return v, nil
}

func (r *vehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	fields, err := customFieldsParam(v.CustomFields)
	if err != nil {
		return err
	}
	query := `INSERT INTO vehicles (org_id, brand, model, year, plate, status, photos, custom_fields, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	v.CreatedOn = time.Now().Format(dateLayout)
	err = r.db.QueryRowContext(ctx, query, v.OrgID, v.Brand, v.Model, v.Year, v.Plate,
		v.Status, pq.Array(v.Photos), fields, v.CreatedOn).Scan(&v.ID)
	return mapError(err)
}

func (r *vehicleRepository) GetByID(ctx context.Context, orgID, id int32) (*domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1 AND org_id = $2`
	return scanVehicle(r.db.QueryRowContext(ctx, query, id, orgID))
}

func (r *vehicleRepository) ListByOrg(ctx context.Context, orgID int32, status domain.VehicleStatus, page, pageSize int32) ([]domain.Vehicle, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE org_id = $1`
	countQuery := `SELECT count(*) FROM vehicles WHERE org_id = $1`
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

	var vehicles []domain.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, 0, err
		}
		vehicles = append(vehicles, *v)
	}
	return vehicles, count, rows.Err()
}

func (r *vehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	fields, err := customFieldsParam(v.CustomFields)
	if err != nil {
		return err
	}
	query := `UPDATE vehicles SET brand=$1, model=$2, year=$3, plate=$4, status=$5, photos=$6, custom_fields=$7
	          WHERE id=$8 AND org_id=$9`
	result, err := r.db.ExecContext(ctx, query, v.Brand, v.Model, v.Year, v.Plate,
		v.Status, pq.Array(v.Photos), fields, v.ID, v.OrgID)
	if err != nil {
		return mapError(err)
	}
	return requireRow(result)
}

func (r *vehicleRepository) Delete(ctx context.Context, orgID, id int32) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM vehicles WHERE id = $1 AND org_id = $2`, id, orgID)
	if err != nil {
		return mapError(err)
	}
	return requireRow(result)
}

func (r *vehicleRepository) UpdatePhotos(ctx context.Context, orgID, id int32, photos []string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE vehicles SET photos = $1 WHERE id = $2 AND org_id = $3`,
		pq.Array(photos), id, orgID)
	if err != nil {
		return mapError(err)
	}
	return requireRow(result)
}
