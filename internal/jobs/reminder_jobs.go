package jobs

import (
	"context"

	"fleetdesk-backend/internal/logger"
)

// SendPastDueReminders emails each organization owner a summary of
// ledger entries that are past due.
func (jr *JobRunner) SendPastDueReminders() {
	jr.runWithRecovery("SendPastDueReminders", func() {
		ctx := context.Background()

		revenueCounts, err := jr.store.RevenueRepository.CountPastDueByOrg(ctx)
		if err != nil {
			logger.Error("Failed to count past due revenues", "error", err)
			return
		}
		expenseCounts, err := jr.store.ExpenseRepository.CountPastDueByOrg(ctx)
		if err != nil {
			logger.Error("Failed to count past due expenses", "error", err)
			return
		}

		orgIDs := make(map[int32]bool)
		for orgID := range revenueCounts {
			orgIDs[orgID] = true
		}
		for orgID := range expenseCounts {
			orgIDs[orgID] = true
		}

		sent := 0
		for orgID := range orgIDs {
			owner, err := jr.store.UserRepository.GetOwner(ctx, orgID)
			if err != nil {
				logger.Error("Failed to look up org owner", "org_id", orgID, "error", err)
				continue
			}

			org, err := jr.store.OrganizationRepository.GetByID(ctx, orgID)
			if err != nil {
				logger.Error("Failed to look up org", "org_id", orgID, "error", err)
				continue
			}

			err = jr.services.Email.SendPastDueReminder(ctx,
				owner.Email, owner.Name, org.Name,
				revenueCounts[orgID], expenseCounts[orgID])
			if err != nil {
				logger.Error("Failed to send past due reminder",
					"org_id", orgID, "email", owner.Email, "error", err)
				continue
			}
			sent++
		}

		logger.Info("Sent past due reminders", "orgs", len(orgIDs), "sent", sent)
	})
}
