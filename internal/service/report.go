package service

import (
	"context"

	"fleetdesk-backend/internal/domain"
	"fleetdesk-backend/internal/repository"
)

type reportService struct {
	reportRepo repository.ReportRepository
}

func NewReportService(reportRepo repository.ReportRepository) ReportService {
	return &reportService{reportRepo: reportRepo}
}

func (s *reportService) Dashboard(ctx context.Context, scope domain.Scope) (*domain.DashboardSummary, error) {
	orgID := scope.OrgID

	totalRevenue, err := s.reportRepo.TotalRevenueCents(ctx, orgID)
	if err != nil {
		return nil, err
	}
	totalExpense, err := s.reportRepo.TotalExpenseCents(ctx, orgID)
	if err != nil {
		return nil, err
	}
	revenueByStatus, err := s.reportRepo.RevenueByStatus(ctx, orgID)
	if err != nil {
		return nil, err
	}
	activityByType, err := s.reportRepo.ActivityCountByType(ctx, orgID)
	if err != nil {
		return nil, err
	}
	vehicleBreakdown, err := s.reportRepo.VehicleStatusBreakdown(ctx, orgID)
	if err != nil {
		return nil, err
	}
	vehicleCount, err := s.reportRepo.VehicleCount(ctx, orgID)
	if err != nil {
		return nil, err
	}
	driverCount, err := s.reportRepo.DriverCount(ctx, orgID)
	if err != nil {
		return nil, err
	}

	return &domain.DashboardSummary{
		TotalRevenueCents:      totalRevenue,
		TotalExpenseCents:      totalExpense,
		NetIncomeCents:         totalRevenue - totalExpense,
		RevenueByStatus:        fillStatusSums(revenueByStatus),
		ActivityCountByType:    fillTypeCounts(activityByType),
		VehicleStatusBreakdown: fillVehicleCounts(vehicleBreakdown),
		VehicleCount:           vehicleCount,
		DriverCount:            driverCount,
	}, nil
}

func (s *reportService) Finances(ctx context.Context, scope domain.Scope) (*domain.FinanceSummary, error) {
	orgID := scope.OrgID

	totalRevenue, err := s.reportRepo.TotalRevenueCents(ctx, orgID)
	if err != nil {
		return nil, err
	}
	totalExpense, err := s.reportRepo.TotalExpenseCents(ctx, orgID)
	if err != nil {
		return nil, err
	}
	revenueByStatus, err := s.reportRepo.RevenueByStatus(ctx, orgID)
	if err != nil {
		return nil, err
	}
	expenseByStatus, err := s.reportRepo.ExpenseByStatus(ctx, orgID)
	if err != nil {
		return nil, err
	}

	return &domain.FinanceSummary{
		TotalRevenueCents: totalRevenue,
		TotalExpenseCents: totalExpense,
		NetIncomeCents:    totalRevenue - totalExpense,
		RevenueByStatus:   fillStatusSums(revenueByStatus),
		ExpenseByStatus:   fillStatusSums(expenseByStatus),
	}, nil
}

// The GROUP BY queries only return groups that exist; the views expect
// every bucket, so absent ones are zero-filled.
func fillStatusSums(in map[domain.LedgerStatus]int64) map[domain.LedgerStatus]int64 {
	out := make(map[domain.LedgerStatus]int64, len(domain.LedgerStatuses))
	for _, st := range domain.LedgerStatuses {
		out[st] = in[st]
	}
	return out
}

func fillTypeCounts(in map[domain.ActivityType]int32) map[domain.ActivityType]int32 {
	out := make(map[domain.ActivityType]int32, len(domain.ActivityTypes))
	for _, t := range domain.ActivityTypes {
		out[t] = in[t]
	}
	return out
}

func fillVehicleCounts(in map[domain.VehicleStatus]int32) map[domain.VehicleStatus]int32 {
	out := make(map[domain.VehicleStatus]int32, len(domain.VehicleStatuses))
	for _, st := range domain.VehicleStatuses {
		out[st] = in[st]
	}
	return out
}
