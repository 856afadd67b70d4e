package v1

type RegisterRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=32,alphanum"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
	FirstName string `json:"first_name" validate:"required,max=64"`
	LastName  string `json:"last_name" validate:"required,max=64"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileRequest struct {
	FirstName    *string `json:"first_name" validate:"omitempty,max=64"`
	LastName     *string `json:"last_name" validate:"omitempty,max=64"`
	Bio          *string `json:"bio" validate:"omitempty,max=1024"`
	ProfileImage *string `json:"profile_image" validate:"omitempty,max=2048"`
}

type CreateItemRequest struct {
	CategoryID  int64  `json:"category_id" validate:"required,gt=0"`
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description" validate:"required"`
	Size        string `json:"size" validate:"required,max=16"`
	Condition   string `json:"condition" validate:"required,condition"`
	PointValue  int64  `json:"point_value" validate:"required,gt=0"`
	Tags        string `json:"tags"`
	Images      string `json:"images"`
}

type CreateSwapRequestRequest struct {
	ItemID        int64   `json:"item_id" validate:"required,gt=0"`
	OfferedItemID *int64  `json:"offered_item_id" validate:"omitempty,gt=0"`
	PointsOffered *int64  `json:"points_offered" validate:"omitempty,gt=0"`
	Message       *string `json:"message" validate:"omitempty,max=1024"`
}

type UpdateSwapStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted rejected completed"`
}

type ApproveItemRequest struct {
	IsApproved *bool `json:"is_approved" validate:"required"`
}
