package demo

import (
	"testing"
	"time"

	"github.com/gpushare/market-go/internal/domain/activity"
	"github.com/gpushare/market-go/internal/domain/gpu"
	"github.com/gpushare/market-go/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeededStoreIsConsistent(t *testing.T) {
	repos := NewRepos(NewSeededStore())

	profiles, err := repos.Profile.ListAll()
	require.NoError(t, err)
	assert.Len(t, profiles, 3)

	gpus, err := repos.Gpu.ListAll()
	require.NoError(t, err)
	for _, g := range gpus {
		_, err := repos.Profile.GetByID(g.OwnerID)
		assert.NoError(t, err, "gpu %s has a dangling owner", g.GpuName)
	}

	reqs, err := repos.Request.ListAll()
	require.NoError(t, err)
	for _, r := range reqs {
		_, err := repos.Profile.GetByID(r.RequesterID)
		assert.NoError(t, err)
		if r.AssignedGpuID != nil {
			_, err := repos.Gpu.GetByID(*r.AssignedGpuID)
			assert.NoError(t, err)
		}
	}
}

func TestListAvailableMatchesPoolRule(t *testing.T) {
	repos := NewRepos(NewSeededStore())

	gpus, err := repos.Gpu.ListAvailable()
	require.NoError(t, err)
	require.Len(t, gpus, 3)
	for i, g := range gpus {
		assert.Equal(t, gpu.StatusOnline, g.Status)
		assert.True(t, g.IsShared)
		if i > 0 {
			assert.GreaterOrEqual(t, gpus[i-1].PerformanceScore, g.PerformanceScore)
		}
	}
}

func TestGetByIDMissingReturnsNotFound(t *testing.T) {
	repos := NewRepos(NewStore())

	_, err := repos.Gpu.GetByID("nope")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = repos.Request.GetByID("nope")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = repos.Profile.GetByPhone("000")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestActivityRetention(t *testing.T) {
	repos := NewRepos(NewStore())

	old := activity.UserActivity{UserID: "u1", ActivityType: activity.TypeLogin, CreatedAt: time.Now().AddDate(0, 0, -40)}
	fresh := activity.UserActivity{UserID: "u1", ActivityType: activity.TypeLogin}
	require.NoError(t, repos.Activity.Create(&old))
	require.NoError(t, repos.Activity.Create(&fresh))

	require.NoError(t, repos.Activity.DeleteOlderThan(30))

	n, err := repos.Activity.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	left, err := repos.Activity.ListByUser("u1", 0)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, fresh.ID, left[0].ID)
}

func TestExecTxRunsDirectly(t *testing.T) {
	repos := NewRepos(NewStore())

	err := repos.ExecTx(func(r *repository.Repos) error {
		return r.Gpu.Create(&gpu.GpuResource{OwnerID: "o1", GpuName: "RTX 4090", GpuMemory: 24})
	})
	require.NoError(t, err)

	n, err := repos.Gpu.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
