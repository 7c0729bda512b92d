package models

import (
	"encoding/json"
	"strings"

	"gorm.io/datatypes"
)

// Wire normalization for NSRP/SRS imports. Historical exports disagree on key
// spellings (accountStatus vs account_status, isOfw vs isOFW vs is_ofw) and
// sometimes store list sections as JSON-encoded strings. All of that is
// resolved here, once, so the rest of the code only ever sees the strict
// structs above.

func wireString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
				return strings.TrimSpace(s)
			}
		}
	}
	return ""
}

func wireBool(m map[string]any, keys ...string) bool {
	for _, k := range keys {
		switch v := m[k].(type) {
		case bool:
			return v
		case string:
			s := strings.ToLower(strings.TrimSpace(v))
			if s == "true" || s == "yes" || s == "1" {
				return true
			}
			if s != "" {
				return false
			}
		case float64:
			return v != 0
		}
	}
	return false
}

// wireJSON re-encodes a wire value as a JSON column. A string value is kept
// verbatim when it already parses as JSON (the double-encoded legacy case),
// otherwise the value is marshalled as-is. Unmarshallable values become nil.
func wireJSON(m map[string]any, keys ...string) datatypes.JSON {
	for _, k := range keys {
		v, ok := m[k]
		if !ok || v == nil {
			continue
		}
		if s, ok := v.(string); ok {
			if json.Valid([]byte(s)) {
				return datatypes.JSON(s)
			}
			continue
		}
		b, err := json.Marshal(v)
		if err != nil {
			continue
		}
		return datatypes.JSON(b)
	}
	return nil
}

// ApplicantFromWire builds a strict Applicant from the loosest known import
// shape. Missing fields stay zero-valued; nothing here errors.
func ApplicantFromWire(m map[string]any) Applicant {
	return Applicant{
		Surname:            wireString(m, "surname", "lastName", "last_name"),
		FirstName:          wireString(m, "firstName", "first_name"),
		MiddleName:         wireString(m, "middleName", "middle_name"),
		DateOfBirth:        wireString(m, "dateOfBirth", "date_of_birth", "birthDate"),
		Sex:                wireString(m, "sex"),
		ContactNumber:      wireString(m, "contactNumber", "contact_number", "mobileNumber"),
		Email:              wireString(m, "email"),
		HouseStreetVillage: wireString(m, "houseStreetVillage", "house_street_village"),
		Barangay:           wireString(m, "barangay"),
		Municipality:       wireString(m, "municipality", "cityMunicipality"),
		Province:           wireString(m, "province"),

		Education:            wireJSON(m, "education"),
		WorkExperience:       wireJSON(m, "workExperience", "work_experience"),
		OtherSkills:          wireJSON(m, "otherSkills", "other_skills"),
		PreferredOccupations: wireJSON(m, "preferredOccupations", "preferred_occupations"),
		LanguageProficiency:  wireJSON(m, "languageProficiency", "language_proficiency"),
		TechnicalTraining:    wireJSON(m, "technicalTraining", "technical_training"),
		ProfessionalLicenses: wireJSON(m, "professionalLicenses", "professional_licenses"),

		IsOFW: wireBool(m, "isOfw", "isOFW", "is_ofw"),
	}
}

// EmployerFromWire builds a strict Employer from an import row. Account
// status is read from either spelling, trimmed and lowercased, defaulting to
// pending.
func EmployerFromWire(m map[string]any) Employer {
	status := strings.ToLower(wireString(m, "accountStatus", "account_status"))
	if status == "" {
		status = EmployerStatusPending
	}

	var cp ContactPerson
	if raw, ok := m["contactPerson"].(map[string]any); ok {
		cp = ContactPerson{
			Name:     wireString(raw, "name", "fullName"),
			Position: wireString(raw, "position", "designation"),
			Phone:    wireString(raw, "phone", "contactNumber"),
			Email:    wireString(raw, "email"),
		}
	}

	var branches []string
	if raw, ok := m["additionalEstablishments"].([]any); ok {
		for _, v := range raw {
			if s, ok := v.(string); ok && s != "" {
				branches = append(branches, s)
			}
		}
	}

	return Employer{
		EstablishmentName:  wireString(m, "establishmentName", "establishment_name", "companyName"),
		TradeName:          wireString(m, "tradeName", "trade_name"),
		HouseStreetVillage: wireString(m, "houseStreetVillage", "house_street_village"),
		Barangay:           wireString(m, "barangay"),
		Municipality:       wireString(m, "municipality"),
		Province:           wireString(m, "province"),

		ContactPerson: datatypes.NewJSONType(cp),
		Email:         wireString(m, "email"),
		ContactNumber: wireString(m, "contactNumber", "contact_number"),

		Requirements:          wireJSON(m, "requirements"),
		BusinessPermitFile:    wireJSON(m, "businessPermitFile"),
		BIR2303File:           wireJSON(m, "bir2303File"),
		CompanyProfileFile:    wireJSON(m, "companyProfileFile"),
		DOLECertificationFile: wireJSON(m, "doleCertificationFile"),

		AccountStatus:            status,
		SRSSubscriber:            wireBool(m, "srsSubscriber", "srs_subscriber"),
		AdditionalEstablishments: datatypes.NewJSONSlice(branches),
		Archived:                 wireBool(m, "archived"),
	}
}
