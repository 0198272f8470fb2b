package request

import "github.com/google/uuid"

type CreateIntentRequest struct {
	ItemID          uuid.UUID `json:"item_id" binding:"required"`
	WantCategory    string    `json:"want_category" binding:"required"`
	WantDescription *string   `json:"want_description,omitempty"`
	Emergency       bool      `json:"emergency"`
}
