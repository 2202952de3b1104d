package application

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/gpushare/market-go/internal/domain/gpu"
	"github.com/gpushare/market-go/internal/domain/request"
	"github.com/gpushare/market-go/internal/repository"
	"github.com/gpushare/market-go/internal/repository/mock"
	"github.com/stretchr/testify/assert"
)

func setupStatsServiceMocks(t *testing.T) (*StatsService, *mock.MockProfileRepo, *mock.MockGpuRepo, *mock.MockRequestRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockProfile := mock.NewMockProfileRepo(ctrl)
	mockGpu := mock.NewMockGpuRepo(ctrl)
	mockRequest := mock.NewMockRequestRepo(ctrl)
	repos := &repository.Repos{
		Profile: mockProfile,
		Gpu:     mockGpu,
		Request: mockRequest,
	}
	return NewStatsService(repos), mockProfile, mockGpu, mockRequest
}

func TestPlatformStats_CountsEveryCollection(t *testing.T) {
	svc, mockProfile, mockGpu, mockRequest := setupStatsServiceMocks(t)

	mockProfile.EXPECT().Count().Return(int64(3), nil)
	mockGpu.EXPECT().Count().Return(int64(4), nil)
	mockGpu.EXPECT().CountByStatus(gpu.StatusOnline).Return(int64(2), nil)
	mockRequest.EXPECT().CountByStatus(request.StatusPending).Return(int64(1), nil)
	mockRequest.EXPECT().CountByStatus(request.StatusCompleted).Return(int64(5), nil)

	st, err := svc.PlatformStats()
	assert.NoError(t, err)
	assert.Equal(t, int64(3), st.TotalUsers)
	assert.Equal(t, int64(4), st.TotalGpus)
	assert.Equal(t, int64(2), st.OnlineGpus)
	assert.Equal(t, int64(1), st.PendingRequests)
	assert.Equal(t, int64(5), st.CompletedRequests)
}

func TestPlatformStats_FailedCountReportsZero(t *testing.T) {
	svc, mockProfile, mockGpu, mockRequest := setupStatsServiceMocks(t)

	mockProfile.EXPECT().Count().Return(int64(0), errors.New("connection reset"))
	mockGpu.EXPECT().Count().Return(int64(4), nil)
	mockGpu.EXPECT().CountByStatus(gpu.StatusOnline).Return(int64(2), nil)
	mockRequest.EXPECT().CountByStatus(request.StatusPending).Return(int64(1), nil)
	mockRequest.EXPECT().CountByStatus(request.StatusCompleted).Return(int64(5), nil)

	st, err := svc.PlatformStats()
	assert.NoError(t, err)
	assert.Equal(t, int64(0), st.TotalUsers)
	assert.Equal(t, int64(4), st.TotalGpus)
}
