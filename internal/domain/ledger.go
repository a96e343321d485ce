package domain

type LedgerStatus string

const (
	LedgerStatusPending  LedgerStatus = "pending"
	LedgerStatusComplete LedgerStatus = "complete"
	LedgerStatusPastDue  LedgerStatus = "past_due"
	LedgerStatusCanceled LedgerStatus = "canceled"
)

var LedgerStatuses = []LedgerStatus{
	LedgerStatusPending,
	LedgerStatusComplete,
	LedgerStatusPastDue,
	LedgerStatusCanceled,
}

// Revenue is an org-owned ledger row. ActivityID is advisory: it links
// the row to the activity that spawned it for display and roll-ups, not
// a hard foreign key.
type Revenue struct {
	ID           int32        `json:"id"`
	OrgID        int32        `json:"org_id"`
	ActivityID   *int32       `json:"activity_id,omitempty"`
	AmountCents  int64        `json:"amount_cents"`
	Description  string       `json:"description"`
	Date         string       `json:"date"` // 2006-01-02
	Status       LedgerStatus `json:"status"`
	CustomFields CustomFields `json:"custom_fields,omitempty"`
	CreatedOn    string       `json:"created_on"`
}

// Expense mirrors Revenue.
type Expense struct {
	ID           int32        `json:"id"`
	OrgID        int32        `json:"org_id"`
	ActivityID   *int32       `json:"activity_id,omitempty"`
	AmountCents  int64        `json:"amount_cents"`
	Description  string       `json:"description"`
	Date         string       `json:"date"`
	Status       LedgerStatus `json:"status"`
	CustomFields CustomFields `json:"custom_fields,omitempty"`
	CreatedOn    string       `json:"created_on"`
}

func (s LedgerStatus) Valid() bool {
	switch s {
	case LedgerStatusPending, LedgerStatusComplete, LedgerStatusPastDue, LedgerStatusCanceled:
		return true
	}
	return false
}
