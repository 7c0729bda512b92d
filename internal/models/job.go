package models

import (
	"time"

	"gorm.io/datatypes"
)

// Job workflow statuses. Archived is independent of status: a job can be
// archived while pending, active, or anything else.
const (
	JobStatusPending  = "pending"
	JobStatusActive   = "active"
	JobStatusClosed   = "closed"
	JobStatusDraft    = "draft"
	JobStatusRejected = "rejected"
)

type Job struct {
	ID         string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	EmployerID string `gorm:"column:employer_id;type:uuid;index" json:"employerId"`

	Position    string `gorm:"column:position;type:text" json:"position"`
	Description string `gorm:"column:description;type:text" json:"description,omitempty"`
	Location    string `gorm:"column:location;type:text" json:"location,omitempty"`
	Vacancies   int    `gorm:"column:vacancies" json:"vacancies"`
	SalaryMin   int    `gorm:"column:salary_min" json:"salaryMin,omitempty"`
	SalaryMax   int    `gorm:"column:salary_max" json:"salaryMax,omitempty"`

	Qualifications datatypes.JSON `gorm:"column:qualifications" json:"qualifications,omitempty"`

	Status          string `gorm:"column:status;type:text;index" json:"status"`
	RejectionReason string `gorm:"column:rejection_reason;type:text" json:"rejectionReason,omitempty"`

	Archived  bool      `gorm:"column:archived;index" json:"archived"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Job) TableName() string { return "jobs" }
