// Package schema describes the input fields of every wizard step.
//
// Forms are declared in YAML using the GitHub issue form layout (type, id,
// attributes, validations). The bundled definition is embedded; a custom
// file can be loaded to relabel fields or change placeholders.
package schema

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed forms.yml
var defaultFormsYAML []byte

// Field types.
const (
	TypeInput    = "input"
	TypeTextarea = "textarea"
	TypeDate     = "date"
	TypeDropdown = "dropdown"
	TypeCheckbox = "checkbox"
)

// Field is one input of a form.
type Field struct {
	ID          string
	Label       string
	Placeholder string
	Required    bool
	// Unless names a checkbox field that lifts the requirement when set.
	Unless  string
	Type    string
	Options []string
}

// Form is the field list of one step.
type Form struct {
	ID          string
	Title       string
	Description string
	Fields      []Field
}

// Schema is the parsed set of forms.
type Schema struct {
	Name        string
	Description string
	Forms       []Form
}

type rawSchema struct {
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	Forms       []rawForm `yaml:"forms"`
}

type rawForm struct {
	ID          string     `yaml:"id"`
	Title       string     `yaml:"title"`
	Description string     `yaml:"description"`
	Body        []rawField `yaml:"body"`
}

type rawField struct {
	Type       string `yaml:"type"`
	ID         string `yaml:"id"`
	Attributes struct {
		Label       string   `yaml:"label"`
		Placeholder string   `yaml:"placeholder"`
		Options     []string `yaml:"options"`
	} `yaml:"attributes"`
	Validations struct {
		Required bool   `yaml:"required"`
		Unless   string `yaml:"unless"`
	} `yaml:"validations"`
}

// StepForms are the forms the wizard edits. Every schema must define them,
// each with at least one supported field.
var StepForms = []string{"contact", "experience", "education", "skills", "about"}

var supported = map[string]bool{
	TypeInput:    true,
	TypeTextarea: true,
	TypeDate:     true,
	TypeDropdown: true,
	TypeCheckbox: true,
}

// Load parses a forms file. An empty path returns the bundled default.
func Load(path string) (*Schema, error) {
	if path == "" {
		return LoadDefault()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema: %w", err)
	}
	return parse(data)
}

// LoadDefault returns the bundled forms.
func LoadDefault() (*Schema, error) {
	return parse(defaultFormsYAML)
}

// DefaultYAML returns the raw bundled definition.
func DefaultYAML() []byte { return defaultFormsYAML }

func parse(data []byte) (*Schema, error) {
	var raw rawSchema
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse schema: %w", err)
	}

	s := &Schema{Name: raw.Name, Description: raw.Description}
	for _, rf := range raw.Forms {
		form := Form{ID: rf.ID, Title: rf.Title, Description: rf.Description}
		for _, f := range rf.Body {
			if !supported[f.Type] {
				continue
			}
			if f.Type == TypeDropdown && len(f.Attributes.Options) == 0 {
				return nil, fmt.Errorf("form %s: dropdown %s has no options", rf.ID, f.ID)
			}
			form.Fields = append(form.Fields, Field{
				ID:          f.ID,
				Label:       f.Attributes.Label,
				Placeholder: f.Attributes.Placeholder,
				Required:    f.Validations.Required,
				Unless:      f.Validations.Unless,
				Type:        f.Type,
				Options:     f.Attributes.Options,
			})
		}
		s.Forms = append(s.Forms, form)
	}

	for _, id := range StepForms {
		form, ok := s.Form(id)
		if !ok {
			return nil, fmt.Errorf("schema is missing the %s form", id)
		}
		if len(form.Fields) == 0 {
			return nil, fmt.Errorf("form %s has no supported fields", id)
		}
	}
	return s, nil
}

// Form returns the form with the given id.
func (s *Schema) Form(id string) (Form, bool) {
	for _, f := range s.Forms {
		if f.ID == id {
			return f, true
		}
	}
	return Form{}, false
}

// Field returns the field with the given id.
func (f Form) Field(id string) (Field, bool) {
	for _, fl := range f.Fields {
		if fl.ID == id {
			return fl, true
		}
	}
	return Field{}, false
}

// Required returns the ids of unconditionally required fields.
func (f Form) Required() []string {
	var out []string
	for _, fl := range f.Fields {
		if fl.Required && fl.Unless == "" {
			out = append(out, fl.ID)
		}
	}
	return out
}

// Title is the label shown above an input, with an asterisk on required
// fields.
func (f Field) Title() string {
	if f.Required {
		return f.Label + " *"
	}
	return f.Label
}

// Hint is the placeholder, falling back to the label.
func (f Field) Hint() string {
	if f.Placeholder != "" {
		return f.Placeholder
	}
	return strings.ToLower(f.Label)
}
