package entity

import (
	"encoding/json"
	"fmt"
)

type ExperienceType string

const (
	ExperienceTypeWork      ExperienceType = "work"
	ExperienceTypeEducation ExperienceType = "education"
	ExperienceTypeResearch  ExperienceType = "research"
)

func ParseExperienceType(s string) (ExperienceType, error) {
	switch t := ExperienceType(s); t {
	case ExperienceTypeWork, ExperienceTypeEducation, ExperienceTypeResearch:
		return t, nil
	}
	return "", fmt.Errorf("unknown experience type %q", s)
}

// UnmarshalJSON rejects values outside the enumeration so an invalid type
// cannot be decoded into a record.
func (t *ExperienceType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseExperienceType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

type ExperienceEntry struct {
	Id           string         `json:"id" yaml:"id" validate:"required"`
	Title        string         `json:"title" yaml:"title"`
	Organization string         `json:"organization" yaml:"organization"`
	Location     string         `json:"location" yaml:"location"`
	Period       string         `json:"period" yaml:"period"`
	Description  string         `json:"description" yaml:"description"`
	Type         ExperienceType `json:"type" yaml:"type" validate:"required,oneof=work education research"`
}
