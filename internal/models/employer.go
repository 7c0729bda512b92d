package models

import (
	"time"

	"gorm.io/datatypes"
)

// Employer account statuses. Archived is a separate axis; an archived
// employer keeps whatever account status it had.
const (
	EmployerStatusPending  = "pending"
	EmployerStatusActive   = "active"
	EmployerStatusRejected = "rejected"
)

type ContactPerson struct {
	Name     string `json:"name,omitempty"`
	Position string `json:"position,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
}

// Employer is an establishment record. Compliance documents live in exactly
// one of two representations: the structured Requirements checklist (a JSON
// object keyed by requirement name), or the four legacy file columns written
// by the old SRS upload flow. When Requirements is non-empty it is
// authoritative and the legacy columns are ignored.
type Employer struct {
	ID string `gorm:"column:id;type:uuid;primaryKey" json:"id"`

	EstablishmentName string `gorm:"column:establishment_name;type:text" json:"establishmentName"`
	TradeName         string `gorm:"column:trade_name;type:text" json:"tradeName,omitempty"`

	HouseStreetVillage string `gorm:"column:house_street_village;type:text" json:"houseStreetVillage,omitempty"`
	Barangay           string `gorm:"column:barangay;type:text" json:"barangay,omitempty"`
	Municipality       string `gorm:"column:municipality;type:text" json:"municipality,omitempty"`
	Province           string `gorm:"column:province;type:text" json:"province,omitempty"`

	ContactPerson datatypes.JSONType[ContactPerson] `gorm:"column:contact_person" json:"contactPerson"`
	Email         string                            `gorm:"column:email;type:text;index" json:"email,omitempty"`
	ContactNumber string                            `gorm:"column:contact_number;type:text" json:"contactNumber,omitempty"`

	Requirements datatypes.JSON `gorm:"column:requirements" json:"requirements,omitempty"`

	BusinessPermitFile    datatypes.JSON `gorm:"column:business_permit_file" json:"businessPermitFile,omitempty"`
	BIR2303File           datatypes.JSON `gorm:"column:bir_2303_file" json:"bir2303File,omitempty"`
	CompanyProfileFile    datatypes.JSON `gorm:"column:company_profile_file" json:"companyProfileFile,omitempty"`
	DOLECertificationFile datatypes.JSON `gorm:"column:dole_certification_file" json:"doleCertificationFile,omitempty"`

	AccountStatus   string `gorm:"column:account_status;type:text;index" json:"accountStatus"`
	RejectionReason string `gorm:"column:rejection_reason;type:text" json:"rejectionReason,omitempty"`

	SRSSubscriber            bool                        `gorm:"column:srs_subscriber" json:"srsSubscriber"`
	AdditionalEstablishments datatypes.JSONSlice[string] `gorm:"column:additional_establishments" json:"additionalEstablishments,omitempty"`

	PasswordHash string `gorm:"column:password_hash;type:text" json:"-"`

	Archived  bool      `gorm:"column:archived;index" json:"archived"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Employer) TableName() string { return "employers" }
