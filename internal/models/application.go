package models

import "time"

const (
	ApplicationStatusPending     = "pending"
	ApplicationStatusShortlisted = "shortlisted"
	ApplicationStatusHired       = "hired"
	ApplicationStatusRejected    = "rejected"
	ApplicationStatusWithdrawn   = "withdrawn"
)

type Application struct {
	ID          string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	JobID       string `gorm:"column:job_id;type:uuid;index:idx_applications_job_applicant,unique" json:"jobId"`
	ApplicantID string `gorm:"column:applicant_id;type:uuid;index:idx_applications_job_applicant,unique" json:"applicantId"`

	Status string `gorm:"column:status;type:text;index" json:"status"`
	Remark string `gorm:"column:remark;type:text" json:"remark,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Application) TableName() string { return "applications" }
