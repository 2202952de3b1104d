package application

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/gpushare/market-go/internal/domain/gpu"
	"github.com/gpushare/market-go/internal/domain/request"
	"github.com/gpushare/market-go/internal/repository"
	"github.com/gpushare/market-go/internal/repository/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRequestServiceMocks(t *testing.T) (*RequestService, *mock.MockRequestRepo, *mock.MockGpuRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockRequest := mock.NewMockRequestRepo(ctrl)
	mockGpu := mock.NewMockGpuRepo(ctrl)
	repos := &repository.Repos{
		Request: mockRequest,
		Gpu:     mockGpu,
	}
	return NewRequestService(repos), mockRequest, mockGpu
}

// --------------------- CreateRequest ---------------------
func TestCreateRequest_DefaultsToNormalPriorityAndPending(t *testing.T) {
	svc, mockRequest, _ := setupRequestServiceMocks(t)

	mockRequest.EXPECT().Create(gomock.Any()).DoAndReturn(func(r *request.ComputeRequest) error {
		r.ID = "req-1"
		return nil
	})

	req, err := svc.CreateRequest("user-1", request.CreateComputeRequestForm{
		TaskDescription:   "Train a model",
		RequiredMemory:    16,
		EstimatedDuration: 120,
	})
	assert.NoError(t, err)
	assert.Equal(t, request.StatusPending, req.Status)
	assert.Equal(t, request.PriorityNormal, req.Priority)
	assert.Nil(t, req.AssignedGpuID)
	assert.Nil(t, req.StartedAt)
}

func TestCreateRequest_RejectsInvalidForm(t *testing.T) {
	cases := []struct {
		name string
		form request.CreateComputeRequestForm
	}{
		{"blank description", request.CreateComputeRequestForm{TaskDescription: "   ", RequiredMemory: 8, EstimatedDuration: 30}},
		{"zero memory", request.CreateComputeRequestForm{TaskDescription: "x", RequiredMemory: 0, EstimatedDuration: 30}},
		{"zero duration", request.CreateComputeRequestForm{TaskDescription: "x", RequiredMemory: 8, EstimatedDuration: 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _, _ := setupRequestServiceMocks(t)

			_, err := svc.CreateRequest("user-1", tc.form)
			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestCreateRequest_RejectsUnknownPriority(t *testing.T) {
	svc, _, _ := setupRequestServiceMocks(t)

	_, err := svc.CreateRequest("user-1", request.CreateComputeRequestForm{
		TaskDescription:   "x",
		RequiredMemory:    1,
		EstimatedDuration: 1,
		Priority:          "urgent",
	})
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

// --------------------- MatchRequestToGpu ---------------------
func TestMatchRequestToGpu_AssignsAndStampsStart(t *testing.T) {
	svc, mockRequest, mockGpu := setupRequestServiceMocks(t)

	pending := request.ComputeRequest{ID: "req-1", Status: request.StatusPending, RequiredMemory: 16}
	device := gpu.GpuResource{ID: "gpu-1", Status: gpu.StatusOnline, IsShared: true, GpuMemory: 24}

	mockRequest.EXPECT().GetByID("req-1").Return(pending, nil)
	mockGpu.EXPECT().GetByID("gpu-1").Return(device, nil)
	mockRequest.EXPECT().Save(gomock.Any()).Return(nil)

	before := time.Now()
	req, err := svc.MatchRequestToGpu("req-1", "gpu-1")
	require.NoError(t, err)
	assert.Equal(t, request.StatusMatched, req.Status)
	require.NotNil(t, req.AssignedGpuID)
	assert.Equal(t, "gpu-1", *req.AssignedGpuID)
	require.NotNil(t, req.StartedAt)
	assert.False(t, req.StartedAt.Before(before))
}

func TestMatchRequestToGpu_RejectsNonPendingRequest(t *testing.T) {
	svc, mockRequest, _ := setupRequestServiceMocks(t)

	running := request.ComputeRequest{ID: "req-1", Status: request.StatusRunning}
	mockRequest.EXPECT().GetByID("req-1").Return(running, nil)

	_, err := svc.MatchRequestToGpu("req-1", "gpu-1")
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestMatchRequestToGpu_RejectsOfflineGpu(t *testing.T) {
	svc, mockRequest, mockGpu := setupRequestServiceMocks(t)

	pending := request.ComputeRequest{ID: "req-1", Status: request.StatusPending, RequiredMemory: 8}
	offline := gpu.GpuResource{ID: "gpu-1", Status: gpu.StatusOffline, IsShared: true, GpuMemory: 24}

	mockRequest.EXPECT().GetByID("req-1").Return(pending, nil)
	mockGpu.EXPECT().GetByID("gpu-1").Return(offline, nil)

	_, err := svc.MatchRequestToGpu("req-1", "gpu-1")
	assert.ErrorIs(t, err, ErrGpuUnavailable)
}

func TestMatchRequestToGpu_RejectsTooSmallGpu(t *testing.T) {
	svc, mockRequest, mockGpu := setupRequestServiceMocks(t)

	pending := request.ComputeRequest{ID: "req-1", Status: request.StatusPending, RequiredMemory: 32}
	small := gpu.GpuResource{ID: "gpu-1", Status: gpu.StatusOnline, IsShared: true, GpuMemory: 24}

	mockRequest.EXPECT().GetByID("req-1").Return(pending, nil)
	mockGpu.EXPECT().GetByID("gpu-1").Return(small, nil)

	_, err := svc.MatchRequestToGpu("req-1", "gpu-1")
	assert.ErrorIs(t, err, ErrInsufficientMemory)
}

func TestMatchRequestToGpu_RequestNotFound(t *testing.T) {
	svc, mockRequest, _ := setupRequestServiceMocks(t)

	mockRequest.EXPECT().GetByID("missing").Return(request.ComputeRequest{}, repository.ErrNotFound)

	_, err := svc.MatchRequestToGpu("missing", "gpu-1")
	assert.Equal(t, ErrRequestNotFound, err)
}

// --------------------- UpdateRequestStatus ---------------------
func TestUpdateRequestStatus_RunningKeepsMatchTimestamp(t *testing.T) {
	svc, mockRequest, _ := setupRequestServiceMocks(t)

	matchedAt := time.Now().Add(-time.Hour)
	gpuID := "gpu-1"
	matched := request.ComputeRequest{
		ID:            "req-1",
		Status:        request.StatusMatched,
		AssignedGpuID: &gpuID,
		StartedAt:     &matchedAt,
	}

	mockRequest.EXPECT().GetByID("req-1").Return(matched, nil)
	mockRequest.EXPECT().Save(gomock.Any()).Return(nil)

	req, err := svc.UpdateRequestStatus("req-1", request.StatusRunning)
	require.NoError(t, err)
	assert.Equal(t, request.StatusRunning, req.Status)
	require.NotNil(t, req.StartedAt)
	assert.True(t, req.StartedAt.Equal(matchedAt))
}

func TestUpdateRequestStatus_CompletedStampsCompletion(t *testing.T) {
	svc, mockRequest, _ := setupRequestServiceMocks(t)

	started := time.Now().Add(-time.Hour)
	running := request.ComputeRequest{ID: "req-1", Status: request.StatusRunning, StartedAt: &started}

	mockRequest.EXPECT().GetByID("req-1").Return(running, nil)
	mockRequest.EXPECT().Save(gomock.Any()).Return(nil)

	req, err := svc.UpdateRequestStatus("req-1", request.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, request.StatusCompleted, req.Status)
	require.NotNil(t, req.CompletedAt)
}

func TestUpdateRequestStatus_TerminalReapplyIsIdempotent(t *testing.T) {
	svc, mockRequest, _ := setupRequestServiceMocks(t)

	done := time.Now().Add(-time.Minute)
	completed := request.ComputeRequest{ID: "req-1", Status: request.StatusCompleted, CompletedAt: &done}

	// No Save expected: the stored row comes back unchanged.
	mockRequest.EXPECT().GetByID("req-1").Return(completed, nil)

	req, err := svc.UpdateRequestStatus("req-1", request.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, request.StatusCompleted, req.Status)
	require.NotNil(t, req.CompletedAt)
	assert.True(t, req.CompletedAt.Equal(done))
}

func TestUpdateRequestStatus_RejectsSkippingStates(t *testing.T) {
	svc, mockRequest, _ := setupRequestServiceMocks(t)

	pending := request.ComputeRequest{ID: "req-1", Status: request.StatusPending}
	mockRequest.EXPECT().GetByID("req-1").Return(pending, nil)

	_, err := svc.UpdateRequestStatus("req-1", request.StatusCompleted)
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestUpdateRequestStatus_UnmatchKeepsAssignment(t *testing.T) {
	svc, mockRequest, _ := setupRequestServiceMocks(t)

	gpuID := "gpu-1"
	startedAt := time.Now().Add(-time.Minute)
	matched := request.ComputeRequest{
		ID:            "req-1",
		Status:        request.StatusMatched,
		AssignedGpuID: &gpuID,
		StartedAt:     &startedAt,
	}

	mockRequest.EXPECT().GetByID("req-1").Return(matched, nil)
	mockRequest.EXPECT().Save(gomock.Any()).Return(nil)

	req, err := svc.UpdateRequestStatus("req-1", request.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, request.StatusPending, req.Status)
	require.NotNil(t, req.AssignedGpuID)
}

func TestUpdateRequestStatus_RejectsUnknownStatus(t *testing.T) {
	svc, _, _ := setupRequestServiceMocks(t)

	_, err := svc.UpdateRequestStatus("req-1", request.Status("paused"))
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}
