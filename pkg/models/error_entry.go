package models

import "time"

// ErrorEntry is one reported error kept in the bounded error log
type ErrorEntry struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Stack     string    `json:"stack,omitempty"`
	Context   string    `json:"context"`
	Timestamp time.Time `json:"timestamp"`
	UserAgent string    `json:"userAgent"`
}
