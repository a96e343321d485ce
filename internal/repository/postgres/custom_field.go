package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"fleetdesk-backend/internal/domain"
	"fleetdesk-backend/internal/repository"
)

type customFieldRepository struct {
	db *sql.DB
}

func NewCustomFieldRepository(db *sql.DB) repository.CustomFieldRepository {
	return &customFieldRepository{db: db}
}

func (r *customFieldRepository) Create(ctx context.Context, def *domain.CustomFieldDefinition) error {
	query := `INSERT INTO custom_field_definitions (org_id, entity, name, field_type, required, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	def.CreatedOn = time.Now().Format(dateLayout)
	err := r.db.QueryRowContext(ctx, query, def.OrgID, def.Entity, def.Name,
		def.Type, def.Required, def.CreatedOn).Scan(&def.ID)
	// Uniqueness on (org_id, entity, name) backs the duplicate check.
	if errors.Is(mapError(err), domain.ErrDuplicate) {
		return domain.ErrDuplicateField
	}
	return mapError(err)
}

func (r *customFieldRepository) ListByEntity(ctx context.Context, orgID int32, entity domain.CustomFieldEntity) ([]domain.CustomFieldDefinition, error) {
	query := `SELECT id, org_id, entity, name, field_type, required, created_on
	          FROM custom_field_definitions WHERE org_id = $1 AND entity = $2 ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query, orgID, entity)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var defs []domain.CustomFieldDefinition
	for rows.Next() {
		var def domain.CustomFieldDefinition
		var createdOn time.Time
		if err := rows.Scan(&def.ID, &def.OrgID, &def.Entity, &def.Name, &def.Type, &def.Required, &createdOn); err != nil {
			return nil, err
		}
		def.CreatedOn = createdOn.Format(dateLayout)
		defs = append(defs, def)
	}
	return defs, rows.Err()
}

// Delete removes the definition only. Values already stored on rows are
// left in place and ignored by readers.
func (r *customFieldRepository) Delete(ctx context.Context, orgID, id int32) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM custom_field_definitions WHERE id = $1 AND org_id = $2`, id, orgID)
	if err != nil {
		return mapError(err)
	}
	return requireRow(result)
}
