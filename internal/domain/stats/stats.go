package stats

// PlatformStats is a derived aggregate computed by counting rows across the
// core collections at call time. It is never persisted or cached.
type PlatformStats struct {
	TotalUsers        int64 `json:"total_users"`
	TotalGpus         int64 `json:"total_gpus"`
	OnlineGpus        int64 `json:"online_gpus"`
	PendingRequests   int64 `json:"pending_requests"`
	CompletedRequests int64 `json:"completed_requests"`
}

// ActivityStats summarises the user-activity collection.
type ActivityStats struct {
	TotalActivities  int64 `json:"total_activities"`
	LoginCount       int64 `json:"login_count"`
	RecentActivities int64 `json:"recent_activities"`
}
