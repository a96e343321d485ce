package postgres

import (
	"context"
	"database/sql"
	"time"

	"fleetdesk-backend/internal/domain"
	"fleetdesk-backend/internal/repository"
)

type organizationRepository struct {
	db *sql.DB
}

func NewOrganizationRepository(db *sql.DB) repository.OrganizationRepository {
	return &organizationRepository{db: db}
}

func (r *organizationRepository) Create(ctx context.Context, org *domain.Organization) error {
	query := `INSERT INTO organizations (name, created_on) VALUES ($1, $2) RETURNING id`
	org.CreatedOn = time.Now().Format(dateLayout)
	err := r.db.QueryRowContext(ctx, query, org.Name, org.CreatedOn).Scan(&org.ID)
	return mapError(err)
}

func (r *organizationRepository) GetByID(ctx context.Context, id int32) (*domain.Organization, error) {
	org := &domain.Organization{}
	query := `SELECT id, name, created_on FROM organizations WHERE id = $1`
	var createdOn time.Time
	err := r.db.QueryRowContext(ctx, query, id).Scan(&org.ID, &org.Name, &createdOn)
	if err != nil {
		return nil, mapError(err)
	}
	org.CreatedOn = createdOn.Format(dateLayout)
	return org, nil
}

func (r *organizationRepository) ListAll(ctx context.Context) ([]domain.Organization, error) {
	query := `SELECT id, name, created_on FROM organizations ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var orgs []domain.Organization
	for rows.Next() {
		var org domain.Organization
		var createdOn time.Time
		if err := rows.Scan(&org.ID, &org.Name, &createdOn); err != nil {
			return nil, err
		}
		org.CreatedOn = createdOn.Format(dateLayout)
		orgs = append(orgs, org)
	}
	return orgs, rows.Err()
}
