package request

type CreateComputeRequestForm struct {
	TaskDescription   string `json:"task_description" binding:"required" example:"Fine-tune a 7B model"`
	RequiredMemory    int    `json:"required_memory" binding:"required,min=1" example:"16"`
	EstimatedDuration int    `json:"estimated_duration" binding:"required,min=1" example:"120"`
	Priority          string `json:"priority" binding:"omitempty,oneof=low normal high" example:"normal"`
}

type MatchRequestInput struct {
	GpuID string `json:"gpu_id" binding:"required" example:"9f2c1f2a-4f0e-4c59-9a51-1f6a3f1b2c3d"`
}

type UpdateRequestStatusInput struct {
	Status string `json:"status" binding:"required,oneof=pending matched running completed failed" example:"running"`
}
