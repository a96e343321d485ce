package domain

type ActivityType string

const (
	ActivityTypePayment     ActivityType = "payment"
	ActivityTypeMaintenance ActivityType = "maintenance"
	ActivityTypeIncident    ActivityType = "incident"
	ActivityTypeRepair      ActivityType = "repair"
)

var ActivityTypes = []ActivityType{
	ActivityTypePayment,
	ActivityTypeMaintenance,
	ActivityTypeIncident,
	ActivityTypeRepair,
}

type RecurringFrequency string

const (
	FrequencyDaily   RecurringFrequency = "daily"
	FrequencyWeekly  RecurringFrequency = "weekly"
	FrequencyMonthly RecurringFrequency = "monthly"
)

// LedgerAction selects the ledger row created alongside an activity.
// A single enum makes "revenue and expense at once" unrepresentable.
type LedgerAction string

const (
	LedgerActionNone    LedgerAction = "none"
	LedgerActionRevenue LedgerAction = "revenue"
	LedgerActionExpense LedgerAction = "expense"
)

type Activity struct {
	ID          int32        `json:"id"`
	OrgID       int32        `json:"org_id"`
	VehicleID   *int32       `json:"vehicle_id,omitempty"` // weak reference
	DriverID    *int32       `json:"driver_id,omitempty"`  // weak reference
	Type        ActivityType `json:"type"`
	Description string       `json:"description"`
	AmountCents *int64       `json:"amount_cents,omitempty"`
	Date        string       `json:"date"` // 2006-01-02; for recurring templates, the next due date
	Recurring   bool         `json:"recurring"`
	// Frequency is set iff Recurring is true.
	Frequency    *RecurringFrequency `json:"recurring_frequency,omitempty"`
	CustomFields CustomFields        `json:"custom_fields,omitempty"`
	CreatedOn    string              `json:"created_on"`
}

func (t ActivityType) Valid() bool {
	switch t {
	case ActivityTypePayment, ActivityTypeMaintenance, ActivityTypeIncident, ActivityTypeRepair:
		return true
	}
	return false
}

func (f RecurringFrequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	}
	return false
}

func (a LedgerAction) Valid() bool {
	switch a {
	case LedgerActionNone, LedgerActionRevenue, LedgerActionExpense:
		return true
	}
	return false
}
