package profile

type UpdateProfileInput struct {
	Username *string `json:"username" binding:"omitempty,max=50" example:"alice"`
	Role     *string `json:"role" binding:"omitempty,oneof=user admin" example:"user"`
	UserType *string `json:"user_type" binding:"omitempty,oneof=demander supplier both" example:"supplier"`
}

type LoginInput struct {
	Phone string `json:"phone" binding:"required,min=8,max=20" example:"13800000000"`
	Code  string `json:"code" binding:"required" example:"123456"`
}
