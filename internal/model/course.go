package model

import "time"

// ContentType enumerates the payload kinds a content item can carry.
type ContentType string

const (
	ContentText  ContentType = "TEXT"
	ContentVideo ContentType = "VIDEO"
	ContentFile  ContentType = "FILE"
)

// Course represents a course as served by the backend, including the
// learner-specific enrollment flag and server-computed progress percentage.
type Course struct {
	CourseID    int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price,string"`
	IsEnrolled  bool      `json:"is_enrolled"`
	Progress    float64   `json:"progress"`
	Modules     []Module  `json:"modules"`
	CreatedAt   time.Time `json:"created_at"`
}

// Module groups ordered content items plus at most one quiz and one
// assignment.
type Module struct {
	ModuleID    int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Order       int       `json:"order"`
	Contents    []Content `json:"contents"`

	Quiz       *Quiz       `json:"quiz"`
	Assignment *Assignment `json:"assignment"`
}

// Content is a single lesson item inside a module.
type Content struct {
	ContentID   int64       `json:"id"`
	Title       string      `json:"title"`
	Type        ContentType `json:"content_type"`
	URL         string      `json:"url"`
	TextContent string      `json:"text_content"`
	FileURL     string      `json:"file"`
	Order       int         `json:"order"`
}
