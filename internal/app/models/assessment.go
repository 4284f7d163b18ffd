package models

import "time"

// CareerAssessment belongs to one student. Questionnaire, results and
// recommendations are stored as opaque JSON blobs; records are immutable
// once created.
type CareerAssessment struct {
	ID              int64     `json:"id" db:"id"`
	StudentID       int64     `json:"studentId" db:"student_id"`
	AssessmentID    string    `json:"assessmentId" db:"assessment_id"` // External UUID
	Questionnaire   string    `json:"questionnaire" db:"questionnaire"`
	Results         string    `json:"results" db:"results"`
	Recommendations string    `json:"recommendations" db:"recommendations"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
}
