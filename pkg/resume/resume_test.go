package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestExperienceScenario(t *testing.T) {
	r := New()
	require.Equal(t, 0, r.Experiences.Len())

	e := r.Experiences.AddEntry()
	id := e.ID()
	assert.False(t, e.Valid())
	assert.Equal(t, DefaultEmploymentType, e.EmploymentType)

	r.Experiences.UpdateField(id, FieldJobTitle, "Engineer")
	r.Experiences.UpdateField(id, FieldEmployer, "Acme")
	r.Experiences.UpdateField(id, FieldStartDate, "2020-01-01")
	r.Experiences.UpdateField(id, FieldCurrentlyWork, true)
	r.Experiences.UpdateField(id, FieldDescription, "Built things")

	assert.True(t, e.Valid())
}

func TestExperienceValidity(t *testing.T) {
	base := map[string]any{
		FieldJobTitle:    "Engineer",
		FieldEmployer:    "Acme",
		FieldStartDate:   "2020-01-01",
		FieldEndDate:     "2022-01-01",
		FieldDescription: "Built things",
	}

	e := NewExperience("x")
	for k, v := range base {
		require.True(t, e.Set(k, v))
	}
	require.True(t, e.Valid())

	for _, field := range []string{FieldJobTitle, FieldEmployer, FieldStartDate, FieldDescription, FieldEndDate} {
		t.Run(field, func(t *testing.T) {
			e := NewExperience("x")
			for k, v := range base {
				e.Set(k, v)
			}
			e.Set(field, "")
			assert.False(t, e.Valid())
		})
	}

	t.Run("current job needs no end date", func(t *testing.T) {
		e := NewExperience("x")
		for k, v := range base {
			e.Set(k, v)
		}
		e.Set(FieldEndDate, "")
		e.Set(FieldCurrentlyWork, "true")
		assert.True(t, e.Valid())
		e.Set(FieldCurrentlyWork, false)
		assert.False(t, e.Valid())
	})

	t.Run("optional fields do not matter", func(t *testing.T) {
		e := NewExperience("x")
		e.Set(FieldCity, "Berlin")
		e.Set(FieldEmploymentType, "Contract")
		assert.False(t, e.Valid())
	})
}

func TestExperienceRejectsBadInput(t *testing.T) {
	e := NewExperience("x")
	assert.False(t, e.Set("salary", "lots"))
	assert.False(t, e.Set(FieldCurrentlyWork, "maybe"))
	assert.False(t, e.CurrentlyWork)
}

func TestExperienceHeader(t *testing.T) {
	e := NewExperience("x")
	p, s := e.Header()
	assert.Empty(t, p)
	assert.Empty(t, s)

	e.Set(FieldJobTitle, "Engineer")
	e.Set(FieldCity, "Berlin")
	p, s = e.Header()
	assert.Equal(t, "Engineer", p)
	assert.Equal(t, "Berlin", s)

	e.Set(FieldEmployer, "Acme")
	_, s = e.Header()
	assert.Equal(t, "Acme • Berlin", s)
}

func TestExperienceHighlights(t *testing.T) {
	e := NewExperience("x")
	require.True(t, e.Set(FieldHighlights, []string{"shipped", " ", "scaled"}))
	assert.Equal(t, []string{"shipped", "scaled"}, e.Highlights)
	assert.Equal(t, "shipped\nscaled", e.Field(FieldHighlights))

	require.True(t, e.Set(FieldHighlights, "Led a team\n\nShipped v2"))
	assert.Equal(t, []string{"Led a team", "Shipped v2"}, e.Highlights)
}

func TestEducationValidity(t *testing.T) {
	r := New()
	e := r.Educations.AddEntry()
	id := e.ID()

	r.Educations.UpdateField(id, FieldSchool, "MIT")
	r.Educations.UpdateField(id, FieldDegree, Degrees[1])
	r.Educations.UpdateField(id, FieldGraduationDate, "2019-06-01")
	assert.False(t, e.Valid())

	r.Educations.UpdateField(id, FieldDescription, "Computer science")
	assert.True(t, e.Valid())

	r.Educations.UpdateField(id, FieldSchool, "")
	assert.False(t, e.Valid())

	p, s := e.Header()
	assert.Empty(t, p)
	assert.Equal(t, "Bachelor's Degree", s)
	assert.False(t, e.Set(FieldEmployer, "Acme"))
}

func TestSectionsAreIndependent(t *testing.T) {
	r := New()
	exp := r.Experiences.AddEntry()
	edu := r.Educations.AddEntry()

	r.Educations.RemoveEntry(exp.ID())
	assert.Equal(t, 1, r.Educations.Len())
	assert.Equal(t, 1, r.Experiences.Len())
	assert.True(t, r.Experiences.IsExpanded(exp.ID()))
	assert.True(t, r.Educations.IsExpanded(edu.ID()))
}

func TestContact(t *testing.T) {
	var c Contact
	assert.Equal(t, ContactFields, c.Missing())
	assert.False(t, c.Complete())

	for _, f := range ContactFields {
		require.True(t, c.Set(f, "x"))
	}
	assert.True(t, c.Complete())
	assert.False(t, c.Set("fax", "1"))

	c.Set(FieldEmail, "jane@example.com")
	c.Set(FieldPhone, "+1 415 555 0100")
	assert.True(t, c.Checked(FieldEmail))
	assert.True(t, c.Checked(FieldPhone))

	c.Set(FieldEmail, "nope")
	c.Set(FieldPhone, "12")
	assert.False(t, c.Checked(FieldEmail))
	assert.False(t, c.Checked(FieldPhone))
	assert.False(t, c.Checked(FieldCity))

	c.Set(FieldFirstName, "Jane")
	c.Set(FieldLastName, "Doe")
	assert.Equal(t, "Jane Doe", c.FullName())
}

func TestPlainText(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain text", "plain text"},
		{"<p>Led team</p><ul><li>one</li><li>two</li></ul>", "Led team\n- one\n- two"},
		{"line<br>break", "line\nbreak"},
		{"<b>bold</b> words<script>x()</script>", "bold words"},
		{"vector<int> and map<k,v>", "vector<int> and map<k,v>"},
		{"cut latency to a<b threshold", "cut latency to a<b threshold"},
		{"x < y > z", "x < y > z"},
		{"first\n\n  indented", "first\n\n  indented"},
		{"a < b and <i>c</i>", "a < b and c"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PlainText(tt.in), tt.in)
	}
}

func TestDescriptionStripsHTML(t *testing.T) {
	e := NewExperience("x")
	e.Set(FieldDescription, "<p>Built <em>things</em></p>")
	assert.Equal(t, "Built things", e.Description)

	e.Set(FieldDescription, "Ported std::vector<int> code")
	assert.Equal(t, "Ported std::vector<int> code", e.Description)

	e.Set(FieldDescription, "Kept p99 a<b threshold")
	assert.Equal(t, "Kept p99 a<b threshold", e.Description)
}

func TestSkillsAndAbout(t *testing.T) {
	r := New()
	r.SetSkills("Go, SQL\n\nKubernetes ,")
	assert.Equal(t, []string{"Go", "SQL", "Kubernetes"}, r.Skills)

	r.SetAbout("  <p>Engineer.</p> ")
	assert.Equal(t, "Engineer.", r.About)
}

func TestYAML(t *testing.T) {
	r := New()
	r.Template = "budapest"
	r.Contact.Set(FieldFirstName, "Jane")
	e := r.Experiences.AddEntry()
	r.Experiences.UpdateField(e.ID(), FieldJobTitle, "Engineer")
	r.Educations.AddEntry()

	out, err := r.YAML()
	require.NoError(t, err)

	var doc Document
	require.NoError(t, yaml.Unmarshal(out, &doc))
	assert.Equal(t, "budapest", doc.Template)
	assert.Equal(t, "Jane", doc.Contact.FirstName)
	require.Len(t, doc.Experiences, 1)
	assert.Equal(t, "Engineer", doc.Experiences[0].JobTitle)
	assert.False(t, doc.Experiences[0].Complete)
	assert.Len(t, doc.Educations, 1)
}
