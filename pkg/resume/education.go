package resume

import "github.com/spf13/cast"

// Education field names accepted by Set. City and description share the
// experience constants.
const (
	FieldSchool         = "school"
	FieldDegree         = "degree"
	FieldGraduationDate = "graduationDate"
)

// Degrees are the choices offered for the degree field.
var Degrees = []string{
	"Associate's Degree",
	"Bachelor's Degree",
	"Master's Degree",
	"Doctoral Degree",
	"High School Diploma",
	"Professional Certificate",
	"Other",
}

// Education is one degree or certificate.
type Education struct {
	id             string
	School         string
	Degree         string
	GraduationDate string
	City           string
	Description    string
	valid          bool
}

// NewEducation returns a blank education entry.
func NewEducation(id string) *Education {
	return &Education{id: id}
}

func (e *Education) ID() string  { return e.id }
func (e *Education) Valid() bool { return e.valid }

// Header is "school" and "degree • city".
func (e *Education) Header() (string, string) {
	return e.School, joinNonEmpty(e.Degree, e.City)
}

// Set assigns a field and recomputes validity.
func (e *Education) Set(field string, value any) bool {
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
	e.valid = filled(e.School, e.Degree, e.GraduationDate, e.Description)
	return true
}

// Field returns the current value of a field.
func (e *Education) Field(field string) string {
	if p := e.stringField(field); p != nil {
		return *p
	}
	return ""
}

func (e *Education) stringField(field string) *string {
	switch field {
	case FieldSchool:
		return &e.School
	case FieldDegree:
		return &e.Degree
	case FieldGraduationDate:
		return &e.GraduationDate
	case FieldCity:
		return &e.City
	case FieldDescription:
		return &e.Description
	}
	return nil
}
