package postgres

import (
	"context"
	"database/sql"
	"time"

	"fleetdesk-backend/internal/domain"
	"fleetdesk-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, org_id, email, name, password_hash, role, is_owner, assigned_vehicle_id, status, created_on`

func scanUser(row interface{ Scan(...any) error }) (*domain.User, error) {
	u := &domain.User{}
	var createdOn time.Time
	err := row.Scan(&u.ID, &u.OrgID, &u.Email, &u.Name, &u.PasswordHash, &u.Role,
		&u.IsOwner, &u.AssignedVehicleID, &u.Status, &createdOn)
	if err != nil {
		return nil, mapError(err)
	}
	u.CreatedOn = createdOn.Format(dateLayout)
	return u, nil
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (org_id, email, name, password_hash, role, is_owner, assigned_vehicle_id, status, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	u.CreatedOn = time.Now().Format(dateLayout)
	err := r.db.QueryRowContext(ctx, query, u.OrgID, u.Email, u.Name, u.PasswordHash,
		u.Role, u.IsOwner, u.AssignedVehicleID, u.Status, u.CreatedOn).Scan(&u.ID)
	return mapError(err)
}

func (r *userRepository) GetByID(ctx context.Context, orgID, id int32) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 AND org_id = $2`
	return scanUser(r.db.QueryRowContext(ctx, query, id, orgID))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1)`
	return scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *userRepository) GetOwner(ctx context.Context, orgID int32) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE org_id = $1 AND is_owner = true`
	return scanUser(r.db.QueryRowContext(ctx, query, orgID))
}

func (r *userRepository) ListByOrg(ctx context.Context, orgID int32, page, pageSize int32) ([]domain.User, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + userColumns + ` FROM users WHERE org_id = $1 ORDER BY created_on DESC, id DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, orgID, pageSize, offset)
	if err != nil {
		return nil, 0, mapError(err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var count int32
	countQuery := `SELECT count(*) FROM users WHERE org_id = $1`
	if err := r.db.QueryRowContext(ctx, countQuery, orgID).Scan(&count); err != nil {
		return nil, 0, mapError(err)
	}
	return users, count, nil
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	query := `UPDATE users SET email=$1, name=$2, role=$3, assigned_vehicle_id=$4, status=$5
	          WHERE id=$6 AND org_id=$7`
	result, err := r.db.ExecContext(ctx, query, u.Email, u.Name, u.Role,
		u.AssignedVehicleID, u.Status, u.ID, u.OrgID)
	if err != nil {
		return mapError(err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
