package gpu

type CreateGpuResourceForm struct {
	GpuName           string  `json:"gpu_name" binding:"required,max=100" example:"RTX 4090"`
	GpuMemory         int     `json:"gpu_memory" binding:"required,min=1" example:"24"`
	ComputeCapability *string `json:"compute_capability" binding:"omitempty,max=20" example:"8.9"`
	IsShared          bool    `json:"is_shared" example:"true"`
}

type UpdateGpuStatusInput struct {
	Status string `json:"status" binding:"required,oneof=online offline busy" example:"online"`
}

type ToggleSharingInput struct {
	IsShared *bool `json:"is_shared" binding:"required" example:"true"`
}
