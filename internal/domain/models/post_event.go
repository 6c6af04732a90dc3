package model

import "time"

type PostEventType string

const (
	PostEventCreated PostEventType = "created"
	PostEventUpdated PostEventType = "updated"
	PostEventDeleted PostEventType = "deleted"
)

type PostEvent struct {
	Type       PostEventType `json:"type"`
	PostID     int64         `json:"post_id"`
	Post       *Post         `json:"post,omitempty"`
	OccurredAt time.Time     `json:"occurred_at"`
}
