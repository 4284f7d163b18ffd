package models

import "time"

// Resource is mentor-owned content; only the title is required.
type Resource struct {
	ID          int64     `json:"id" db:"id"`
	ResourceID  string    `json:"resourceId" db:"resource_id"` // External UUID
	MentorID    int64     `json:"mentorId" db:"mentor_id"`
	Title       string    `json:"title" db:"title"`
	FileType    *string   `json:"fileType,omitempty" db:"file_type"`
	Description *string   `json:"description,omitempty" db:"description"`
	FileURL     *string   `json:"fileUrl,omitempty" db:"file_url"`
	UploadDate  time.Time `json:"uploadDate" db:"upload_date"`
}
