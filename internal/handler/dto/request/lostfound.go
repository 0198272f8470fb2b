package request

type CreatePostingRequest struct {
	ItemName    string  `json:"item_name" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Description *string `json:"description,omitempty"`
	Kind        string  `json:"kind" binding:"required,oneof=lost found"`
	PhotoURL    *string `json:"photo_url,omitempty"`
}
