package models

import "time"

// RequirementFile records one uploaded compliance document. The resolved URL
// is also written into the employer's requirement entry so the compliance
// builder sees it without a join.
type RequirementFile struct {
	ID             string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	EmployerID     string `gorm:"column:employer_id;type:uuid;index" json:"employerId"`
	RequirementKey string `gorm:"column:requirement_key;type:text" json:"requirementKey"`

	FileName string `gorm:"column:file_name;type:text" json:"fileName"`
	FileURL  string `gorm:"column:file_url;type:text" json:"fileUrl"`
	FileSize int    `gorm:"column:file_size" json:"fileSize"`
	MimeType string `gorm:"column:mime_type;type:text" json:"mimeType"`

	UploadedAt time.Time `gorm:"column:uploaded_at" json:"uploadedAt"`
}

func (RequirementFile) TableName() string { return "requirement_files" }
