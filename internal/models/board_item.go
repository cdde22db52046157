package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BoardItemType is the kind of content a mood-board item carries.
type BoardItemType string

const (
	BoardItemText  BoardItemType = "text"
	BoardItemImage BoardItemType = "image"
	BoardItemLink  BoardItemType = "link"
	BoardItemAudio BoardItemType = "audio"
)

// Valid reports whether t is a known board item type.
func (t BoardItemType) Valid() bool {
	switch t {
	case BoardItemText, BoardItemImage, BoardItemLink, BoardItemAudio:
		return true
	}
	return false
}

// BoardItem is a mood-board entry on a project or a task. For text and link
// items Content holds the value directly; for image and audio items it holds
// the object-storage key and MediaURL carries a presigned download URL that is
// never persisted.
type BoardItem struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Type       BoardItemType      `json:"type" bson:"type" example:"image"`
	Content    string             `json:"content" bson:"content" example:"board-media/507f.../cover.png"`
	Meta       string             `json:"meta,omitempty" bson:"meta,omitempty" example:"Reference palette"`
	Marginalia string             `json:"marginalia" bson:"marginalia" example:"too warm?"`
	MediaURL   string             `json:"mediaUrl,omitempty" bson:"-"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
}

// AddBoardItemRequest is the payload for adding a mood-board item.
// For image and audio items Content is the file name to upload; the response
// carries a presigned upload URL and the stored item references the object key.
type AddBoardItemRequest struct {
	Type       BoardItemType `json:"type" binding:"required,oneof=text image link audio" example:"text"`
	Content    string        `json:"content" binding:"required,max=10000" example:"A circle, drawn in one breath."`
	Meta       string        `json:"meta" binding:"omitempty,max=500" example:"Reference palette"`
	Marginalia string        `json:"marginalia" binding:"omitempty,max=500" example:"too warm?"`
}

// AddBoardItemResponse is the response for adding a mood-board item.
// UploadURL is set only for media items.
type AddBoardItemResponse struct {
	Item      BoardItem `json:"item"`
	UploadURL string    `json:"uploadUrl,omitempty" example:"https://s3.amazonaws.com/bucket/board-media/...?X-Amz-Algorithm=..."`
}
