package restclient

import (
	"net/http/httptest"
	"testing"

	"github.com/gpushare/market-go/internal/demo"
	"github.com/gpushare/market-go/internal/domain/gpu"
	"github.com/gpushare/market-go/internal/domain/request"
	"github.com/gpushare/market-go/internal/repository"
	"github.com/gpushare/market-go/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The seeded demo accounts.
const (
	adminPhone    = "13800000001"
	demanderPhone = "13800000003"
	demoCode      = "123456"
)

func newTestServer(t *testing.T) *httptest.Server {
	router := testutils.SetupRouter(demo.NewRepos(demo.NewSeededStore()))
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func loginClient(t *testing.T, srv *httptest.Server, phone string) *Client {
	c := New(srv.URL)
	tr, err := c.Login(phone, demoCode)
	require.NoError(t, err)
	require.NotEmpty(t, tr.Token)
	return c.WithToken(tr.Token)
}

func TestClient_LoginRejectsWrongCode(t *testing.T) {
	srv := newTestServer(t)

	_, err := New(srv.URL).Login(adminPhone, "000000")
	var rerr *repository.RemoteError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, 401, rerr.StatusCode)
}

func TestClient_PlatformStatsMatchSeed(t *testing.T) {
	srv := newTestServer(t)
	api := loginClient(t, srv, demanderPhone).API()

	st, err := api.Stats.PlatformStats()
	require.NoError(t, err)
	assert.Equal(t, int64(3), st.TotalUsers)
	assert.Equal(t, int64(4), st.TotalGpus)
	assert.Equal(t, int64(3), st.OnlineGpus)
	assert.Equal(t, int64(1), st.PendingRequests)
	assert.Equal(t, int64(1), st.CompletedRequests)
}

func TestClient_AvailableGpusExcludeOfflineAndSortByScore(t *testing.T) {
	srv := newTestServer(t)
	api := loginClient(t, srv, demanderPhone).API()

	gpus, err := api.Gpu.AvailableGpus()
	require.NoError(t, err)
	require.Len(t, gpus, 3)
	assert.Equal(t, "RTX 4090", gpus[0].GpuName)
	assert.Equal(t, "RTX 3090", gpus[1].GpuName)
	assert.Equal(t, "RTX 3060", gpus[2].GpuName)
	for _, g := range gpus {
		assert.True(t, g.Available())
	}
}

func TestClient_RequestLifecycleOverHTTP(t *testing.T) {
	srv := newTestServer(t)
	demanderAPI := loginClient(t, srv, demanderPhone).API()
	adminAPI := loginClient(t, srv, adminPhone).API()

	created, err := demanderAPI.Request.CreateRequest("", request.CreateComputeRequestForm{
		TaskDescription:   "Render a scene",
		RequiredMemory:    8,
		EstimatedDuration: 30,
	})
	require.NoError(t, err)
	assert.Equal(t, request.StatusPending, created.Status)

	gpus, err := adminAPI.Gpu.AvailableGpus()
	require.NoError(t, err)
	require.NotEmpty(t, gpus)

	matched, err := adminAPI.Request.MatchRequestToGpu(created.ID, gpus[0].ID)
	require.NoError(t, err)
	assert.Equal(t, request.StatusMatched, matched.Status)
	require.NotNil(t, matched.AssignedGpuID)
	assert.Equal(t, gpus[0].ID, *matched.AssignedGpuID)
	require.NotNil(t, matched.StartedAt)

	running, err := adminAPI.Request.UpdateRequestStatus(created.ID, request.StatusRunning)
	require.NoError(t, err)
	assert.Equal(t, request.StatusRunning, running.Status)
	require.NotNil(t, running.StartedAt)
	assert.True(t, running.StartedAt.Equal(*matched.StartedAt))

	completed, err := adminAPI.Request.UpdateRequestStatus(created.ID, request.StatusCompleted)
	require.NoError(t, err)
	require.NotNil(t, completed.CompletedAt)

	// Terminal re-apply is a no-op
	again, err := adminAPI.Request.UpdateRequestStatus(created.ID, request.StatusCompleted)
	require.NoError(t, err)
	assert.True(t, again.CompletedAt.Equal(*completed.CompletedAt))

	// And leaving a terminal state is a conflict
	_, err = adminAPI.Request.UpdateRequestStatus(created.ID, request.StatusRunning)
	var rerr *repository.RemoteError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, 409, rerr.StatusCode)
}

func TestClient_MatchRequiresAdmin(t *testing.T) {
	srv := newTestServer(t)
	demanderAPI := loginClient(t, srv, demanderPhone).API()

	created, err := demanderAPI.Request.CreateRequest("", request.CreateComputeRequestForm{
		TaskDescription:   "Evaluate a model",
		RequiredMemory:    8,
		EstimatedDuration: 15,
	})
	require.NoError(t, err)

	gpus, err := demanderAPI.Gpu.AvailableGpus()
	require.NoError(t, err)
	require.NotEmpty(t, gpus)

	_, err = demanderAPI.Request.MatchRequestToGpu(created.ID, gpus[0].ID)
	var rerr *repository.RemoteError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, 403, rerr.StatusCode)
}

func TestClient_UnimplementedSurface(t *testing.T) {
	srv := newTestServer(t)
	api := loginClient(t, srv, demanderPhone).API()

	p, err := api.Profile.CurrentProfile("anything")
	assert.NoError(t, err)
	assert.Nil(t, p)

	_, err = api.Gpu.CreateGpu("", gpu.CreateGpuResourceForm{GpuName: "RTX 4090", GpuMemory: 24})
	assert.ErrorIs(t, err, repository.ErrNotImplemented)

	mine, err := api.Gpu.UserGpus("")
	assert.NoError(t, err)
	assert.Empty(t, mine)

	err = api.Schedule.DeleteSchedule("sch-1")
	assert.ErrorIs(t, err, repository.ErrNotImplemented)

	st, err := api.Activity.ActivityStats()
	assert.NoError(t, err)
	assert.Zero(t, st.TotalActivities)
}

func TestClient_RequestsRequireAuth(t *testing.T) {
	srv := newTestServer(t)
	api := New(srv.URL).API()

	_, err := api.Request.AllRequests()
	var rerr *repository.RemoteError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, 401, rerr.StatusCode)
}
