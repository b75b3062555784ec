package resume

import (
	"strings"

	"github.com/spf13/cast"
)

// Experience field names accepted by Set.
const (
	FieldJobTitle       = "jobTitle"
	FieldEmployer       = "employer"
	FieldStartDate      = "startDate"
	FieldEndDate        = "endDate"
	FieldCity           = "city"
	FieldEmploymentType = "employmentType"
	FieldCurrentlyWork  = "currentlyWork"
	FieldDescription    = "description"
	FieldHighlights     = "highlights"
)

// DefaultEmploymentType is preselected on new experience entries.
const DefaultEmploymentType = "Full-time"

// EmploymentTypes are the choices offered for employmentType.
var EmploymentTypes = []string{"Full-time", "Part-time", "Contract", "Internship"}

// Experience is one job.
type Experience struct {
	id             string
	JobTitle       string
	Employer       string
	StartDate      string
	EndDate        string
	City           string
	EmploymentType string
	CurrentlyWork  bool
	Description    string
	Highlights     []string
	valid          bool
}

// NewExperience returns a blank experience entry.
func NewExperience(id string) *Experience {
	return &Experience{id: id, EmploymentType: DefaultEmploymentType}
}

func (e *Experience) ID() string  { return e.id }
func (e *Experience) Valid() bool { return e.valid }

// Header is "job title" and "employer • city".
func (e *Experience) Header() (string, string) {
	return e.JobTitle, joinNonEmpty(e.Employer, e.City)
}

// Set assigns a field and recomputes validity.
func (e *Experience) Set(field string, value any) bool {
	switch field {
	case FieldCurrentlyWork:
		b, err := cast.ToBoolE(value)
		if err != nil {
			return false
		}
		e.CurrentlyWork = b
	case FieldHighlights:
		// Text from a textarea holds one highlight per line.
		if text, ok := value.(string); ok {
			e.Highlights = compact(strings.Split(text, "\n"))
			break
		}
		h, err := cast.ToStringSliceE(value)
		if err != nil {
			return false
		}
		e.Highlights = compact(h)
	default:
		dst := e.stringField(field)
		if dst == nil {
			return false
		}
		s, err := cast.ToStringE(value)
		if err != nil {
			return false
		}
		if field == FieldDescription {
			s = PlainText(s)
		}
		*dst = s
	}
	e.valid = e.validate()
	return true
}

func (e *Experience) stringField(field string) *string {
	switch field {
	case FieldJobTitle:
		return &e.JobTitle
	case FieldEmployer:
		return &e.Employer
	case FieldStartDate:
		return &e.StartDate
	case FieldEndDate:
		return &e.EndDate
	case FieldCity:
		return &e.City
	case FieldEmploymentType:
		return &e.EmploymentType
	case FieldDescription:
		return &e.Description
	}
	return nil
}

// Field returns the current value of a field as a string, for form
// prefill.
func (e *Experience) Field(field string) string {
	switch field {
	case FieldCurrentlyWork:
		return cast.ToString(e.CurrentlyWork)
	case FieldHighlights:
		return strings.Join(e.Highlights, "\n")
	}
	if p := e.stringField(field); p != nil {
		return *p
	}
	return ""
}

func (e *Experience) validate() bool {
	return filled(e.JobTitle, e.Employer, e.StartDate, e.Description) &&
		(e.CurrentlyWork || filled(e.EndDate))
}
