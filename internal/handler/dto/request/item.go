package request

type CreateItemRequest struct {
	Name       string  `json:"name" binding:"required"`
	Category   string  `json:"category" binding:"required"`
	Condition  string  `json:"condition" binding:"required"`
	Department *string `json:"department,omitempty"`
	PhotoURL   *string `json:"photo_url,omitempty"`
}
