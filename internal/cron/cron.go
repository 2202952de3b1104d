package cron

import (
	"time"

	"github.com/gpushare/market-go/internal/application"
	"github.com/gpushare/market-go/internal/config"
	log "github.com/sirupsen/logrus"
)

// StartCleanupTask prunes user activities past the retention window, once
// at startup and then every 24 hours.
func StartCleanupTask(activitySvc *application.ActivityService) {
	go func() {
		retention := config.ActivityRetentionDays
		log.Infof("Starting activity cleanup task (retention: %d days)", retention)

		if err := activitySvc.Cleanup(retention); err != nil {
			log.WithError(err).Error("Failed to cleanup old activities")
		}

		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			if err := activitySvc.Cleanup(retention); err != nil {
				log.WithError(err).Error("Failed to cleanup old activities")
			} else {
				log.Info("Activity cleanup completed")
			}
		}
	}()
}
