// Package tui is the terminal rendering surface of the resume wizard.
//
// It never owns wizard state. A Session bundles the wizard controller and
// the per-step data; the Bubble Tea navigator and the huh step forms only
// read from it and call its operations.
package tui

import (
	"errors"
	"fmt"

	"github.com/xrsl/cvb/pkg/resume"
	"github.com/xrsl/cvb/pkg/schema"
	"github.com/xrsl/cvb/pkg/template"
	"github.com/xrsl/cvb/pkg/wizard"
)

// ErrCancelled is returned when the user leaves the wizard without
// finishing.
var ErrCancelled = errors.New("wizard cancelled by user")

// Session is everything one wizard run works on.
type Session struct {
	Wizard    *wizard.Controller
	Resume    *resume.Resume
	Forms     *schema.Schema
	Templates *template.Selector
}

// NewSession builds a session with the default steps.
func NewSession(forms *schema.Schema, templates *template.Selector) (*Session, error) {
	if forms == nil {
		var err error
		if forms, err = schema.LoadDefault(); err != nil {
			return nil, fmt.Errorf("failed to load forms: %w", err)
		}
	}
	s := &Session{
		Wizard:    wizard.New(wizard.DefaultSteps),
		Resume:    resume.New(),
		Forms:     forms,
		Templates: templates,
	}
	if templates != nil {
		s.Resume.Template = templates.Effective()
	}
	return s, nil
}

// form returns the schema form for a step id, or an empty form.
func (s *Session) form(id string) schema.Form {
	f, _ := s.Forms.Form(id)
	return f
}
