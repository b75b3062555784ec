package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/xrsl/cvb/pkg/resume"
	"github.com/xrsl/cvb/pkg/section"
	"github.com/xrsl/cvb/pkg/template"
	"github.com/xrsl/cvb/pkg/wizard"
)

// StepBar renders the row of step markers. Completed steps carry their
// number so the user knows which key jumps back to them.
func StepBar(c *wizard.Controller) string {
	parts := make([]string, 0, c.Len())
	for i, st := range c.Steps() {
		switch c.Status(i) {
		case wizard.Done:
			label := markDone + " " + st.Label
			if c.Interactive(i) {
				label = fmt.Sprintf("%s %d %s", markDone, i+1, st.Label)
			}
			if st.Active {
				parts = append(parts, activeStyle.Render(label))
			} else {
				parts = append(parts, doneStyle.Render(label))
			}
		case wizard.Active:
			parts = append(parts, activeStyle.Render(markActive+" "+st.Label))
		default:
			parts = append(parts, pendingStyle.Render(markPending+" "+st.Label))
		}
	}
	return strings.Join(parts, pendingStyle.Render("  ─  "))
}

// Cards renders the entries of a section. Only the expanded card shows its
// full field list.
func Cards[E section.Entry](cards []section.Card[E], details func(E) []string) string {
	if len(cards) == 0 {
		return subtitleStyle.Render("No entries yet.")
	}
	var out []string
	for _, c := range cards {
		out = append(out, Card(c, details))
	}
	return lipgloss.JoinVertical(lipgloss.Left, out...)
}

// Card renders one entry card.
func Card[E section.Entry](c section.Card[E], details func(E) []string) string {
	chevron := "▸"
	style := cardStyle
	if c.Expanded {
		chevron = "▾"
		style = expandedCardStyle
	}

	head := chevron + " " + titleStyle.Render(c.Primary)
	if c.Valid {
		head += "  " + badgeStyle.Render(badge)
	}
	lines := []string{head}
	if c.Secondary != "" {
		lines = append(lines, "  "+subtitleStyle.Render(c.Secondary))
	}
	if c.Expanded && details != nil {
		for _, d := range details(c.Entry) {
			lines = append(lines, "  "+d)
		}
	}
	return style.Render(strings.Join(lines, "\n"))
}

func experienceDetails(e *resume.Experience) []string {
	end := e.EndDate
	if e.CurrentlyWork {
		end = "present"
	}
	out := []string{
		kv("Type", e.EmploymentType),
		kv("Dates", strings.Trim(e.StartDate+" – "+end, " –")),
		kv("Description", e.Description),
	}
	for _, h := range e.Highlights {
		out = append(out, "  • "+h)
	}
	return out
}

func educationDetails(e *resume.Education) []string {
	return []string{
		kv("Graduated", e.GraduationDate),
		kv("Description", e.Description),
	}
}

func kv(k, v string) string {
	if v == "" {
		v = subtitleStyle.Render("—")
	}
	return subtitleStyle.Render(k+":") + " " + v
}

// Summary renders the read-only view of the active step's data.
func Summary(s *Session) string {
	step := s.Wizard.CurrentStep()
	r := s.Resume
	var b strings.Builder

	b.WriteString(accentStyle.Render(step.Label))
	if f := s.form(step.ID); f.Description != "" {
		b.WriteString("\n" + subtitleStyle.Render(f.Description))
	}
	b.WriteString("\n\n")

	switch step.ID {
	case "contact":
		form := s.form("contact")
		for _, id := range resume.ContactFields {
			label := id
			if f, ok := form.Field(id); ok {
				label = f.Label
			}
			line := kv(label, r.Contact.Field(id))
			if r.Contact.Checked(id) {
				line += " " + badgeStyle.Render(markDone)
			}
			b.WriteString(line + "\n")
		}
		if r.Contact.Complete() {
			b.WriteString(badgeStyle.Render(badge) + "\n")
		} else {
			b.WriteString(warnStyle.Render(fmt.Sprintf("%d required field(s) empty", len(r.Contact.Missing()))) + "\n")
		}
	case "experience":
		b.WriteString(Cards(r.Experiences.Cards(), experienceDetails) + "\n")
		b.WriteString(subtitleStyle.Render(fmt.Sprintf("%d of %d complete", r.Experiences.ValidCount(), r.Experiences.Len())) + "\n")
	case "education":
		b.WriteString(Cards(r.Educations.Cards(), educationDetails) + "\n")
		b.WriteString(subtitleStyle.Render(fmt.Sprintf("%d of %d complete", r.Educations.ValidCount(), r.Educations.Len())) + "\n")
	case "skills":
		if len(r.Skills) == 0 {
			b.WriteString(subtitleStyle.Render("No skills yet.") + "\n")
		}
		for _, sk := range r.Skills {
			b.WriteString("• " + sk + "\n")
		}
	case "about":
		if r.About == "" {
			b.WriteString(subtitleStyle.Render("No summary yet.") + "\n")
		} else {
			b.WriteString(r.About + "\n")
		}
	default:
		b.WriteString(Preview(s))
	}
	return b.String()
}

// Preview is the final overview of everything collected.
func Preview(s *Session) string {
	r := s.Resume
	name := r.Contact.FullName()
	if name == "" {
		name = section.Placeholder
	}
	tmpl := r.Template
	if t, ok := template.Lookup(tmpl); ok {
		tmpl = t.Name
	}
	lines := []string{
		titleStyle.Render(name),
		kv("Template", tmpl),
		kv("Contact", fmt.Sprintf("%d/%d fields", len(resume.ContactFields)-len(r.Contact.Missing()), len(resume.ContactFields))),
		kv("Experience", fmt.Sprintf("%d entries, %d complete", r.Experiences.Len(), r.Experiences.ValidCount())),
		kv("Education", fmt.Sprintf("%d entries, %d complete", r.Educations.Len(), r.Educations.ValidCount())),
		kv("Skills", strings.Join(r.Skills, ", ")),
	}
	return strings.Join(lines, "\n") + "\n"
}

func footer(c *wizard.Controller) string {
	keys := []string{"enter edit"}
	if !c.IsFirst() {
		keys = append(keys, "← back")
	}
	keys = append(keys, "→ next to "+c.NextLabel())
	if len(c.Completed()) > 0 {
		keys = append(keys, "1-9 jump")
	}
	keys = append(keys, "q quit")
	return footerStyle.Render(strings.Join(keys, " • "))
}
