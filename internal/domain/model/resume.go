package model

import "encoding/json"

// PersonalInfo is the contact block of a resume.
type PersonalInfo struct {
	FullName          string `json:"fullName"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	Location          string `json:"location"`
	ProfessionalTitle string `json:"professionalTitle"`
	LinkedIn          string `json:"linkedIn,omitempty"`
	Portfolio         string `json:"portfolio,omitempty"`
}

// DescriptionLines is a list of achievement bullet lines. Clients may
// submit a single free-text string instead of a list; decoding
// normalizes it into a one-element list.
type DescriptionLines []string

func (d *DescriptionLines) UnmarshalJSON(data []byte) error {
	var lines []string
	if err := json.Unmarshal(data, &lines); err == nil {
		*d = lines
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	*d = DescriptionLines{single}
	return nil
}

// Experience is a single employment entry.
type Experience struct {
	Company      string           `json:"company"`
	Position     string           `json:"position"`
	Location     string           `json:"location,omitempty"`
	StartDate    string           `json:"startDate"`
	EndDate      string           `json:"endDate,omitempty"`
	IsCurrentJob bool             `json:"isCurrentJob,omitempty"`
	Description  DescriptionLines `json:"description"`
	Achievements []string         `json:"achievements,omitempty"`
}

// Education is a single academic entry.
type Education struct {
	Institution  string   `json:"institution"`
	Degree       string   `json:"degree"`
	Field        string   `json:"field"`
	Location     string   `json:"location,omitempty"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate,omitempty"`
	Grade        string   `json:"grade,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
}

// SkillGroup is a named category of skills.
type SkillGroup struct {
	Category string   `json:"category"`
	Skills   []string `json:"skills"`
}

// Certification is an optional credential entry.
type Certification struct {
	Name         string `json:"name"`
	Issuer       string `json:"issuer"`
	Date         string `json:"date"`
	CredentialID string `json:"credentialId,omitempty"`
	URL          string `json:"url,omitempty"`
}

// Language is an optional spoken-language entry.
type Language struct {
	Language    string `json:"language"`
	Proficiency string `json:"proficiency"`
}

// ResumeData is the full resume payload supplied by the client. It is
// stored verbatim on the order and treated as immutable afterwards.
type ResumeData struct {
	PersonalInfo   PersonalInfo    `json:"personalInfo"`
	Summary        string          `json:"summary"`
	Experience     []Experience    `json:"experience"`
	Education      []Education     `json:"education"`
	Skills         []SkillGroup    `json:"skills"`
	Certifications []Certification `json:"certifications,omitempty"`
	Languages      []Language      `json:"languages,omitempty"`
}
