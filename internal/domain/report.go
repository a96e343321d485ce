package domain

// DashboardSummary backs the dashboard view. All figures are derived
// server-side with aggregate queries, scoped to one organization.
type DashboardSummary struct {
	TotalRevenueCents      int64                   `json:"total_revenue_cents"`
	TotalExpenseCents      int64                   `json:"total_expense_cents"`
	NetIncomeCents         int64                   `json:"net_income_cents"`
	RevenueByStatus        map[LedgerStatus]int64  `json:"revenue_by_status"`
	ActivityCountByType    map[ActivityType]int32  `json:"activity_count_by_type"`
	VehicleStatusBreakdown map[VehicleStatus]int32 `json:"vehicle_status_breakdown"`
	VehicleCount           int32                   `json:"vehicle_count"`
	DriverCount            int32                   `json:"driver_count"`
}

// FinanceSummary backs the finances view.
type FinanceSummary struct {
	TotalRevenueCents int64                  `json:"total_revenue_cents"`
	TotalExpenseCents int64                  `json:"total_expense_cents"`
	NetIncomeCents    int64                  `json:"net_income_cents"`
	RevenueByStatus   map[LedgerStatus]int64 `json:"revenue_by_status"`
	ExpenseByStatus   map[LedgerStatus]int64 `json:"expense_by_status"`
}
