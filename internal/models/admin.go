package models

import "time"

type Admin struct {
	ID           string    `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Email        string    `gorm:"column:email;type:text;uniqueIndex" json:"email"`
	FullName     string    `gorm:"column:full_name;type:text" json:"fullName"`
	PasswordHash string    `gorm:"column:password_hash;type:text" json:"-"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Admin) TableName() string { return "admins" }
