package postgres

import (
	"database/sql"
	"encoding/json"
	"errors"

	"fleetdesk-backend/internal/domain"

	"github.com/lib/pq"
)

// mapError translates driver-level failures into the domain taxonomy so
// callers never see lib/pq internals.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505": // unique_violation
			return domain.ErrDuplicate
		case "23503": // foreign_key_violation
			return domain.ErrForeignKey
		}
	}
	return err
}

// customFieldsParam marshals the open attribute bag for a jsonb column.
// A nil map is stored as an empty object so reads never see SQL NULL.
func customFieldsParam(cf domain.CustomFields) ([]byte, error) {
	if cf == nil {
		cf = domain.CustomFields{}
	}
	return json.Marshal(cf)
}

func scanCustomFields(raw []byte, dst *domain.CustomFields) error {
	if len(raw) == 0 {
		*dst = domain.CustomFields{}
		return nil
	}
	return json.Unmarshal(raw, dst)
}

const dateLayout = "2006-01-02"

// requireRow turns a zero-row UPDATE/DELETE into ErrNotFound so
// org-scoped writes against someone else's row look like a missing row.
func requireRow(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
