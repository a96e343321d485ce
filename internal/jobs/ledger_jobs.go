package jobs

import (
	"context"
	"time"

	"fleetdesk-backend/internal/logger"
)

// MarkPastDueLedgers flips pending revenues and expenses whose date has
// passed to past_due.
func (jr *JobRunner) MarkPastDueLedgers() {
	jr.runWithRecovery("MarkPastDueLedgers", func() {
		ctx := context.Background()
		today := time.Now().UTC().Format("2006-01-02")

		revenues, err := jr.store.RevenueRepository.MarkPastDue(ctx, today)
		if err != nil {
			logger.Error("Failed to mark past due revenues", "error", err)
			return
		}

		expenses, err := jr.store.ExpenseRepository.MarkPastDue(ctx, today)
		if err != nil {
			logger.Error("Failed to mark past due expenses", "error", err)
			return
		}

		logger.Info("Marked past due ledger entries", "revenues", revenues, "expenses", expenses)
	})
}
