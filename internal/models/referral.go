package models

import "time"

const (
	ReferralStatusIssued   = "issued"
	ReferralStatusHired    = "hired"
	ReferralStatusDeclined = "declined"
)

// Referral is a PESO-issued endorsement of an applicant to an employer's job
// opening, created by an admin from the matching view.
type Referral struct {
	ID          string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	ApplicantID string `gorm:"column:applicant_id;type:uuid;index" json:"applicantId"`
	JobID       string `gorm:"column:job_id;type:uuid;index" json:"jobId"`
	EmployerID  string `gorm:"column:employer_id;type:uuid;index" json:"employerId"`
	IssuedBy    string `gorm:"column:issued_by;type:uuid" json:"issuedBy"`

	Status string `gorm:"column:status;type:text" json:"status"`
	Remark string `gorm:"column:remark;type:text" json:"remark,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Referral) TableName() string { return "referrals" }
