package application

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/gpushare/market-go/internal/domain/activity"
	"github.com/gpushare/market-go/internal/repository"
	"github.com/gpushare/market-go/internal/repository/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupActivityServiceMocks(t *testing.T) (*ActivityService, *mock.MockActivityRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockActivity := mock.NewMockActivityRepo(ctrl)
	repos := &repository.Repos{
		Activity: mockActivity,
	}
	return NewActivityService(repos), mockActivity
}

func TestRecordLogin_BuildsPayload(t *testing.T) {
	svc, mockActivity := setupActivityServiceMocks(t)

	var recorded activity.UserActivity
	mockActivity.EXPECT().Create(gomock.Any()).DoAndReturn(func(a *activity.UserActivity) error {
		recorded = *a
		return nil
	})

	err := svc.RecordLogin("uid-1", activity.LoginInfo{
		Username:    "alice",
		Phone:       "13800000001",
		Role:        "user",
		LoginMethod: "phone_code",
		IPAddress:   "10.0.0.1",
		UserAgent:   "go-test",
	})
	require.NoError(t, err)
	assert.Equal(t, "uid-1", recorded.UserID)
	assert.Equal(t, activity.TypeLogin, recorded.ActivityType)
	assert.Equal(t, "alice", recorded.ActivityData["username"])
	assert.Equal(t, "10.0.0.1", recorded.ActivityData["ip_address"])
}

func TestUserActivities_DefaultLimit(t *testing.T) {
	svc, mockActivity := setupActivityServiceMocks(t)

	mockActivity.EXPECT().ListByUser("uid-1", 50).Return([]activity.UserActivity{}, nil)

	got, err := svc.UserActivities("uid-1", 0)
	assert.NoError(t, err)
	assert.NotNil(t, got)
}

func TestRecentActivities_DefaultLimit(t *testing.T) {
	svc, mockActivity := setupActivityServiceMocks(t)

	mockActivity.EXPECT().ListAll(100).Return([]activity.UserActivity{}, nil)

	_, err := svc.RecentActivities(-5)
	assert.NoError(t, err)
}

func TestActivityStats_SurvivesFailedCounts(t *testing.T) {
	svc, mockActivity := setupActivityServiceMocks(t)

	mockActivity.EXPECT().Count().Return(int64(10), nil)
	mockActivity.EXPECT().CountByType(activity.TypeLogin).Return(int64(0), errors.New("timeout"))
	mockActivity.EXPECT().CountSince(gomock.Any()).Return(int64(2), nil)

	st, err := svc.ActivityStats()
	assert.NoError(t, err)
	assert.Equal(t, int64(10), st.TotalActivities)
	assert.Equal(t, int64(0), st.LoginCount)
	assert.Equal(t, int64(2), st.RecentActivities)
}

func TestCleanup_DelegatesRetention(t *testing.T) {
	svc, mockActivity := setupActivityServiceMocks(t)

	mockActivity.EXPECT().DeleteOlderThan(30).Return(nil)

	assert.NoError(t, svc.Cleanup(30))
}
