package application

import (
	"time"

	"github.com/gpushare/market-go/internal/domain/activity"
	"github.com/gpushare/market-go/internal/domain/stats"
	"github.com/gpushare/market-go/internal/repository"
	log "github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

const (
	defaultUserActivityLimit   = 50
	defaultRecentActivityLimit = 100
)

type ActivityService struct {
	Repos *repository.Repos
}

func NewActivityService(repos *repository.Repos) *ActivityService {
	return &ActivityService{
		Repos: repos,
	}
}

var _ ActivityAPI = (*ActivityService)(nil)

func (s *ActivityService) RecordActivity(userID, activityType string, data map[string]interface{}) error {
	a := activity.UserActivity{
		UserID:       userID,
		ActivityType: activityType,
		ActivityData: datatypes.JSONMap(data),
	}
	return s.Repos.Activity.Create(&a)
}

func (s *ActivityService) RecordLogin(userID string, info activity.LoginInfo) error {
	return s.RecordActivity(userID, activity.TypeLogin, map[string]interface{}{
		"username":     info.Username,
		"phone":        info.Phone,
		"role":         info.Role,
		"login_method": info.LoginMethod,
		"ip_address":   info.IPAddress,
		"user_agent":   info.UserAgent,
	})
}

func (s *ActivityService) UserActivities(userID string, limit int) ([]activity.UserActivity, error) {
	if limit <= 0 {
		limit = defaultUserActivityLimit
	}
	return s.Repos.Activity.ListByUser(userID, limit)
}

func (s *ActivityService) RecentActivities(limit int) ([]activity.UserActivity, error) {
	if limit <= 0 {
		limit = defaultRecentActivityLimit
	}
	return s.Repos.Activity.ListAll(limit)
}

// ActivityStats never fails; counts that cannot be read come back zero.
func (s *ActivityService) ActivityStats() (stats.ActivityStats, error) {
	var st stats.ActivityStats

	if n, err := s.Repos.Activity.Count(); err == nil {
		st.TotalActivities = n
	} else {
		log.WithError(err).Warn("failed to count activities")
	}
	if n, err := s.Repos.Activity.CountByType(activity.TypeLogin); err == nil {
		st.LoginCount = n
	} else {
		log.WithError(err).Warn("failed to count login activities")
	}
	if n, err := s.Repos.Activity.CountSince(time.Now().Add(-24 * time.Hour)); err == nil {
		st.RecentActivities = n
	} else {
		log.WithError(err).Warn("failed to count recent activities")
	}

	return st, nil
}

// Cleanup drops audit rows past the retention window.
func (s *ActivityService) Cleanup(retentionDays int) error {
	return s.Repos.Activity.DeleteOlderThan(retentionDays)
}
