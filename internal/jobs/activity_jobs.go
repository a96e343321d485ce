package jobs

import (
	"context"
	"time"

	"fleetdesk-backend/internal/logger"
	"fleetdesk-backend/internal/utils"
)

// GenerateRecurringActivities spawns a concrete occurrence for every
// recurring template whose next due date has arrived, then advances the
// template. Catch-up after downtime happens one interval per run.
func (jr *JobRunner) GenerateRecurringActivities() {
	jr.runWithRecovery("GenerateRecurringActivities", func() {
		ctx := context.Background()
		today := time.Now().UTC().Format("2006-01-02")

		templates, err := jr.store.ActivityRepository.ListDueRecurring(ctx, today)
		if err != nil {
			logger.Error("Failed to list due recurring activities", "error", err)
			return
		}

		spawned := 0
		for i := range templates {
			template := &templates[i]
			if template.Frequency == nil {
				logger.Error("Recurring template has no frequency", "activity_id", template.ID)
				continue
			}

			nextDate, err := utils.NextDate(template.Date, *template.Frequency)
			if err != nil {
				logger.Error("Failed to compute next due date",
					"activity_id", template.ID, "date", template.Date, "error", err)
				continue
			}

			occurrence, err := jr.store.ActivityRepository.SpawnOccurrence(ctx, template, nextDate)
			if err != nil {
				logger.Error("Failed to spawn recurring occurrence",
					"activity_id", template.ID, "error", err)
				continue
			}
			spawned++
			logger.Debug("Spawned recurring occurrence",
				"template_id", template.ID,
				"occurrence_id", occurrence.ID,
				"next_due", nextDate)
		}

		logger.Info("Generated recurring activities", "due", len(templates), "spawned", spawned)
	})
}
