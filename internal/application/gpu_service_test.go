package application

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/gpushare/market-go/internal/domain/gpu"
	"github.com/gpushare/market-go/internal/repository"
	"github.com/gpushare/market-go/internal/repository/mock"
	"github.com/stretchr/testify/assert"
)

func setupGpuServiceMocks(t *testing.T) (*GpuService, *mock.MockGpuRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockGpu := mock.NewMockGpuRepo(ctrl)
	repos := &repository.Repos{
		Gpu: mockGpu,
	}
	return NewGpuService(repos), mockGpu
}

// --------------------- CreateGpu ---------------------
func TestCreateGpu_AlwaysStartsOffline(t *testing.T) {
	svc, mockGpu := setupGpuServiceMocks(t)

	var created gpu.GpuResource
	mockGpu.EXPECT().Create(gomock.Any()).DoAndReturn(func(g *gpu.GpuResource) error {
		g.ID = "gpu-1"
		created = *g
		return nil
	})

	g, err := svc.CreateGpu("owner-1", gpu.CreateGpuResourceForm{
		GpuName:   "RTX 4090",
		GpuMemory: 24,
		IsShared:  true,
	})
	assert.NoError(t, err)
	assert.Equal(t, gpu.StatusOffline, created.Status)
	assert.Equal(t, gpu.StatusOffline, g.Status)
	assert.True(t, g.IsShared)
	assert.Equal(t, "owner-1", g.OwnerID)
}

// --------------------- UpdateGpuStatus ---------------------
func TestUpdateGpuStatus_Success(t *testing.T) {
	svc, mockGpu := setupGpuServiceMocks(t)

	existing := gpu.GpuResource{ID: "gpu-1", Status: gpu.StatusOffline}
	mockGpu.EXPECT().GetByID("gpu-1").Return(existing, nil)
	mockGpu.EXPECT().Save(gomock.Any()).Return(nil)

	g, err := svc.UpdateGpuStatus("gpu-1", gpu.StatusOnline)
	assert.NoError(t, err)
	assert.Equal(t, gpu.StatusOnline, g.Status)
}

func TestUpdateGpuStatus_RejectsUnknownStatus(t *testing.T) {
	svc, _ := setupGpuServiceMocks(t)

	_, err := svc.UpdateGpuStatus("gpu-1", gpu.Status("sleeping"))
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestUpdateGpuStatus_NotFound(t *testing.T) {
	svc, mockGpu := setupGpuServiceMocks(t)

	mockGpu.EXPECT().GetByID("missing").Return(gpu.GpuResource{}, repository.ErrNotFound)

	_, err := svc.UpdateGpuStatus("missing", gpu.StatusOnline)
	assert.Equal(t, ErrGpuNotFound, err)
}

// --------------------- ToggleGpuSharing ---------------------
func TestToggleGpuSharing_DoesNotTouchStatus(t *testing.T) {
	svc, mockGpu := setupGpuServiceMocks(t)

	existing := gpu.GpuResource{ID: "gpu-1", Status: gpu.StatusOnline, IsShared: true}
	mockGpu.EXPECT().GetByID("gpu-1").Return(existing, nil)
	mockGpu.EXPECT().Save(gomock.Any()).Return(nil)

	g, err := svc.ToggleGpuSharing("gpu-1", false)
	assert.NoError(t, err)
	assert.False(t, g.IsShared)
	assert.Equal(t, gpu.StatusOnline, g.Status)
}

// --------------------- ListGpus ---------------------
func TestListGpus_FiltersByStatusAndName(t *testing.T) {
	svc, mockGpu := setupGpuServiceMocks(t)

	fleet := []gpu.GpuResource{
		{ID: "1", GpuName: "RTX 4090", Status: gpu.StatusOnline},
		{ID: "2", GpuName: "RTX 3090", Status: gpu.StatusOffline},
		{ID: "3", GpuName: "Tesla T4", Status: gpu.StatusOnline},
	}
	mockGpu.EXPECT().ListAll().Return(fleet, nil)

	got, err := svc.ListGpus(gpu.StatusOnline, "rtx")
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}

func TestListGpus_RejectsUnknownStatusFilter(t *testing.T) {
	svc, _ := setupGpuServiceMocks(t)

	_, err := svc.ListGpus(gpu.Status("broken"), "")
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}
