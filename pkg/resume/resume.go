// Package resume holds the data collected by the wizard: the contact form,
// the repeatable experience and education sections, and free text steps.
package resume

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/xrsl/cvb/pkg/section"
)

// Resume aggregates the per-step data. Each step owns its own part; no part
// refers to another.
type Resume struct {
	Contact     Contact
	Experiences *section.Collection[*Experience]
	Educations  *section.Collection[*Education]
	Skills      []string
	About       string
	Template    string
}

// New returns an empty resume. Options are passed to both collections.
func New(opts ...section.Option) *Resume {
	return &Resume{
		Experiences: section.New("experience", NewExperience, opts...),
		Educations:  section.New("education", NewEducation, opts...),
	}
}

// SetSkills replaces the skill list from free text, one skill per line or
// comma separated.
func (r *Resume) SetSkills(text string) {
	text = strings.ReplaceAll(text, ",", "\n")
	r.Skills = compact(strings.Split(text, "\n"))
}

// SetAbout stores the summary paragraph.
func (r *Resume) SetAbout(text string) {
	r.About = strings.TrimSpace(PlainText(text))
}

// Document is the plain data view of a resume written on finish.
type Document struct {
	Template    string           `yaml:"template,omitempty"`
	Contact     Contact          `yaml:"contact"`
	About       string           `yaml:"about,omitempty"`
	Experiences []ExperienceData `yaml:"experience,omitempty"`
	Educations  []EducationData  `yaml:"education,omitempty"`
	Skills      []string         `yaml:"skills,omitempty"`
}

// ExperienceData is the serialised form of an Experience.
type ExperienceData struct {
	JobTitle       string   `yaml:"job_title"`
	Employer       string   `yaml:"employer"`
	City           string   `yaml:"city,omitempty"`
	EmploymentType string   `yaml:"employment_type,omitempty"`
	StartDate      string   `yaml:"start_date"`
	EndDate        string   `yaml:"end_date,omitempty"`
	Current        bool     `yaml:"current,omitempty"`
	Description    string   `yaml:"description"`
	Highlights     []string `yaml:"highlights,omitempty"`
	Complete       bool     `yaml:"complete"`
}

// EducationData is the serialised form of an Education.
type EducationData struct {
	School         string `yaml:"school"`
	Degree         string `yaml:"degree"`
	GraduationDate string `yaml:"graduation_date"`
	City           string `yaml:"city,omitempty"`
	Description    string `yaml:"description"`
	Complete       bool   `yaml:"complete"`
}

// Document snapshots the resume in display order.
func (r *Resume) Document() Document {
	doc := Document{
		Template: r.Template,
		Contact:  r.Contact,
		About:    r.About,
		Skills:   r.Skills,
	}
	for _, e := range r.Experiences.Entries() {
		doc.Experiences = append(doc.Experiences, ExperienceData{
			JobTitle:       e.JobTitle,
			Employer:       e.Employer,
			City:           e.City,
			EmploymentType: e.EmploymentType,
			StartDate:      e.StartDate,
			EndDate:        e.EndDate,
			Current:        e.CurrentlyWork,
			Description:    e.Description,
			Highlights:     e.Highlights,
			Complete:       e.Valid(),
		})
	}
	for _, e := range r.Educations.Entries() {
		doc.Educations = append(doc.Educations, EducationData{
			School:         e.School,
			Degree:         e.Degree,
			GraduationDate: e.GraduationDate,
			City:           e.City,
			Description:    e.Description,
			Complete:       e.Valid(),
		})
	}
	return doc
}

// YAML encodes the document with two space indentation.
func (r *Resume) YAML() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(r.Document()); err != nil {
		return nil, fmt.Errorf("failed to encode resume: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
