package models

import (
	"time"

	"gorm.io/datatypes"
)

// Applicant is the NSRP jobseeker record. The list-valued sections are stored
// as JSON so the same schema works on both sqlite and postgres; older rows may
// hold JSON-encoded strings instead of arrays and readers must tolerate that.
type Applicant struct {
	ID string `gorm:"column:id;type:uuid;primaryKey" json:"id"`

	Surname     string `gorm:"column:surname;type:text" json:"surname"`
	FirstName   string `gorm:"column:first_name;type:text" json:"firstName"`
	MiddleName  string `gorm:"column:middle_name;type:text" json:"middleName,omitempty"`
	DateOfBirth string `gorm:"column:date_of_birth;type:text" json:"dateOfBirth"`
	Sex         string `gorm:"column:sex;type:text" json:"sex,omitempty"`

	ContactNumber string `gorm:"column:contact_number;type:text" json:"contactNumber,omitempty"`
	Email         string `gorm:"column:email;type:text;index" json:"email,omitempty"`

	HouseStreetVillage string `gorm:"column:house_street_village;type:text" json:"houseStreetVillage,omitempty"`
	Barangay           string `gorm:"column:barangay;type:text" json:"barangay,omitempty"`
	Municipality       string `gorm:"column:municipality;type:text" json:"municipality,omitempty"`
	Province           string `gorm:"column:province;type:text" json:"province,omitempty"`

	Education            datatypes.JSON `gorm:"column:education" json:"education,omitempty"`
	WorkExperience       datatypes.JSON `gorm:"column:work_experience" json:"workExperience,omitempty"`
	OtherSkills          datatypes.JSON `gorm:"column:other_skills" json:"otherSkills,omitempty"`
	PreferredOccupations datatypes.JSON `gorm:"column:preferred_occupations" json:"preferredOccupations,omitempty"`
	LanguageProficiency  datatypes.JSON `gorm:"column:language_proficiency" json:"languageProficiency,omitempty"`
	TechnicalTraining    datatypes.JSON `gorm:"column:technical_training" json:"technicalTraining,omitempty"`
	ProfessionalLicenses datatypes.JSON `gorm:"column:professional_licenses" json:"professionalLicenses,omitempty"`

	IsOFW        bool   `gorm:"column:is_ofw" json:"isOfw"`
	PasswordHash string `gorm:"column:password_hash;type:text" json:"-"`

	Archived  bool      `gorm:"column:archived;index" json:"archived"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Applicant) TableName() string { return "applicants" }
