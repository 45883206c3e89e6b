package model

import "time"

// Notification is one entry of the learner's notification feed.
type Notification struct {
	NotificationID int64     `json:"id"`
	Message        string    `json:"message"`
	IsRead         bool      `json:"is_read"`
	CreatedAt      time.Time `json:"created_at"`
}

// Discussion is a message on a course discussion board.
type Discussion struct {
	DiscussionID int64     `json:"id"`
	CourseID     int64     `json:"course"`
	Author       User      `json:"user"`
	Message      string    `json:"message"`
	CreatedAt    time.Time `json:"created_at"`
}
