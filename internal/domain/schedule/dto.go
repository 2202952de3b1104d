package schedule

type CreateSharingScheduleForm struct {
	GpuID     string `json:"gpu_id" binding:"required" example:"9f2c1f2a-4f0e-4c59-9a51-1f6a3f1b2c3d"`
	DayOfWeek int    `json:"day_of_week" example:"1"`
	StartTime string `json:"start_time" binding:"required" example:"09:00"`
	EndTime   string `json:"end_time" binding:"required" example:"18:00"`
}

type UpdateScheduleInput struct {
	DayOfWeek *int    `json:"day_of_week" example:"2"`
	StartTime *string `json:"start_time" example:"10:00"`
	EndTime   *string `json:"end_time" example:"20:00"`
	IsActive  *bool   `json:"is_active" example:"false"`
}
