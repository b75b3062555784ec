package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	clog "github.com/xrsl/cvb/pkg/log"
	"github.com/xrsl/cvb/pkg/resume"
	"github.com/xrsl/cvb/pkg/schema"
	"github.com/xrsl/cvb/pkg/section"
	"github.com/xrsl/cvb/pkg/template"
)

// binding holds the variables huh writes into while a form runs, keyed by
// schema field id.
type binding struct {
	fields []schema.Field
	strs   map[string]*string
	bools  map[string]*bool
}

func bind(form schema.Form, get func(field string) string) *binding {
	b := &binding{
		fields: form.Fields,
		strs:   make(map[string]*string),
		bools:  make(map[string]*bool),
	}
	for _, f := range form.Fields {
		v := get(f.ID)
		if f.Type == schema.TypeCheckbox {
			on := v == "true"
			b.bools[f.ID] = &on
			continue
		}
		b.strs[f.ID] = &v
	}
	return b
}

// groups builds the huh groups. Fields whose requirement is lifted by a
// checkbox go into their own group that hides while the checkbox is set.
func (b *binding) groups(title, description string) []*huh.Group {
	var main []huh.Field
	conditional := map[string][]huh.Field{}
	var order []string

	for _, f := range b.fields {
		field := b.field(f)
		if f.Unless == "" {
			main = append(main, field)
			continue
		}
		if _, seen := conditional[f.Unless]; !seen {
			order = append(order, f.Unless)
		}
		conditional[f.Unless] = append(conditional[f.Unless], field)
	}

	groups := []*huh.Group{huh.NewGroup(main...).Title(title).Description(description)}
	for _, unless := range order {
		flag := b.bools[unless]
		groups = append(groups, huh.NewGroup(conditional[unless]...).
			Title(title).
			WithHideFunc(func() bool { return flag != nil && *flag }))
	}
	return groups
}

func (b *binding) field(f schema.Field) huh.Field {
	switch f.Type {
	case schema.TypeCheckbox:
		return huh.NewConfirm().
			Key(f.ID).
			Title(f.Label).
			Affirmative("Yes").
			Negative("No").
			Value(b.bools[f.ID])
	case schema.TypeTextarea:
		return huh.NewText().
			Key(f.ID).
			Title(f.Title()).
			Placeholder(f.Hint()).
			Lines(5).
			Value(b.strs[f.ID])
	case schema.TypeDropdown:
		var opts []huh.Option[string]
		if *b.strs[f.ID] == "" {
			opts = append(opts, huh.NewOption("Select "+strings.ToLower(f.Label), ""))
		}
		opts = append(opts, huh.NewOptions(f.Options...)...)
		return huh.NewSelect[string]().
			Key(f.ID).
			Title(f.Title()).
			Options(opts...).
			Value(b.strs[f.ID])
	default:
		return huh.NewInput().
			Key(f.ID).
			Title(f.Title()).
			Placeholder(f.Hint()).
			Value(b.strs[f.ID])
	}
}

// apply pushes every bound value through set, in schema order.
func (b *binding) apply(set func(field string, value any)) {
	for _, f := range b.fields {
		if p, ok := b.bools[f.ID]; ok {
			set(f.ID, *p)
			continue
		}
		v := *b.strs[f.ID]
		if f.ID == resume.FieldHighlights {
			set(f.ID, strings.Split(v, "\n"))
			continue
		}
		set(f.ID, v)
	}
}

// EditStep runs the form of the active step. Completing a data step
// advances the wizard; finish is true when the user confirms on the
// preview step.
func EditStep(ctx context.Context, s *Session) (finish bool, err error) {
	step := s.Wizard.CurrentStep()
	lg := clog.With("step", step.ID)
	lg.Debug("editing step")
	defer func() {
		if err == nil {
			lg.Debug("step edited", "finish", finish, "current", s.Wizard.Current())
		}
	}()

	switch step.ID {
	case "contact":
		err = editContact(ctx, s)
	case "experience":
		var done bool
		done, err = editSection(ctx, s.Resume.Experiences, s.form("experience"), "experience")
		if err == nil && !done {
			return false, nil
		}
	case "education":
		var done bool
		done, err = editSection(ctx, s.Resume.Educations, s.form("education"), "education")
		if err == nil && !done {
			return false, nil
		}
	case "skills":
		err = editText(ctx, s.form("skills"), strings.Join(s.Resume.Skills, "\n"), s.Resume.SetSkills)
	case "about":
		err = editText(ctx, s.form("about"), s.Resume.About, s.Resume.SetAbout)
	default:
		return editPreview(ctx, s)
	}
	if err != nil {
		return false, err
	}
	s.Wizard.Advance()
	return false, nil
}

func editContact(ctx context.Context, s *Session) error {
	form := s.form("contact")
	c := &s.Resume.Contact
	b := bind(form, c.Field)
	if err := huh.NewForm(b.groups(form.Title, form.Description)...).RunWithContext(ctx); err != nil {
		return err
	}
	b.apply(func(field string, value any) { c.Set(field, value) })
	return nil
}

func editText(ctx context.Context, form schema.Form, current string, set func(string)) error {
	b := bind(form, func(string) string { return current })
	if err := huh.NewForm(b.groups(form.Title, form.Description)...).RunWithContext(ctx); err != nil {
		return err
	}
	b.apply(func(_ string, value any) {
		if s, ok := value.(string); ok {
			set(s)
		}
	})
	return nil
}

type entryFields interface {
	section.Entry
	Field(name string) string
}

// Section menu choices. Card choices are prefixed with choiceToggle.
const (
	choiceAdd    = "add"
	choiceEdit   = "edit"
	choiceRemove = "remove"
	choiceDone   = "done"
	choiceBack   = "back"
	choiceToggle = "toggle:"
)

type sectionAction int

const (
	actionStay sectionAction = iota
	actionEdit
	actionDone
	actionBack
)

// sectionChoice applies a menu choice to the collection and says what the
// editor loop does next.
func sectionChoice[E section.Entry](coll *section.Collection[E], choice string) (sectionAction, string) {
	switch {
	case choice == choiceAdd:
		e := coll.AddEntry()
		return actionEdit, e.ID()
	case choice == choiceEdit:
		if id, ok := coll.Expanded(); ok {
			return actionEdit, id
		}
	case choice == choiceRemove:
		if id, ok := coll.Expanded(); ok {
			coll.RemoveEntry(id)
		}
	case choice == choiceDone:
		return actionDone, ""
	case choice == choiceBack:
		return actionBack, ""
	case strings.HasPrefix(choice, choiceToggle):
		id := strings.TrimPrefix(choice, choiceToggle)
		coll.ToggleExpanded(id)
		if coll.IsExpanded(id) {
			return actionEdit, id
		}
	}
	return actionStay, ""
}

// sectionOptions lists the menu for the current collection state.
func sectionOptions[E section.Entry](coll *section.Collection[E], noun string) []huh.Option[string] {
	var opts []huh.Option[string]
	for _, c := range coll.Cards() {
		opts = append(opts, huh.NewOption(cardLabel(c), choiceToggle+c.ID))
	}
	opts = append(opts, huh.NewOption("+ Add "+noun, choiceAdd))
	if _, ok := coll.Expanded(); ok {
		opts = append(opts,
			huh.NewOption("✎ Edit open entry", choiceEdit),
			huh.NewOption("✗ Remove open entry", choiceRemove),
		)
	}
	opts = append(opts,
		huh.NewOption("→ Continue", choiceDone),
		huh.NewOption("← Back to overview", choiceBack),
	)
	return opts
}

func cardLabel[E section.Entry](c section.Card[E]) string {
	chevron := "▸"
	if c.Expanded {
		chevron = "▾"
	}
	label := chevron + " " + c.Primary
	if c.Secondary != "" {
		label += " — " + c.Secondary
	}
	if c.Valid {
		label += "  " + badge
	}
	return label
}

// editSection runs the repeatable section menu until the user continues
// (done is true) or goes back to the overview.
func editSection[E entryFields](ctx context.Context, coll *section.Collection[E], form schema.Form, noun string) (done bool, err error) {
	for {
		var choice string
		menu := huh.NewForm(huh.NewGroup(
			huh.NewSelect[string]().
				Title(form.Title).
				Description(fmt.Sprintf("%s\n%d of %d complete", form.Description, coll.ValidCount(), coll.Len())).
				Options(sectionOptions(coll, noun)...).
				Value(&choice),
		))
		if err := menu.RunWithContext(ctx); err != nil {
			return false, err
		}

		if choice == choiceRemove {
			var ok bool
			confirm := huh.NewConfirm().Title("Remove this " + noun + "?").Value(&ok)
			if err := huh.NewForm(huh.NewGroup(confirm)).RunWithContext(ctx); err != nil {
				return false, err
			}
			if !ok {
				continue
			}
		}

		action, id := sectionChoice(coll, choice)
		switch action {
		case actionDone:
			return true, nil
		case actionBack:
			return false, nil
		case actionEdit:
			if err := editEntry(ctx, coll, form, id); err != nil {
				return false, err
			}
		}
	}
}

func editEntry[E entryFields](ctx context.Context, coll *section.Collection[E], form schema.Form, id string) error {
	e, ok := coll.Get(id)
	if !ok {
		return nil
	}
	b := bind(form, e.Field)
	title, _ := e.Header()
	if title == "" {
		title = form.Title
	}
	if err := huh.NewForm(b.groups(title, "")...).RunWithContext(ctx); err != nil {
		return err
	}
	b.apply(func(field string, value any) { coll.UpdateField(id, field, value) })
	return nil
}

func templateOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(template.Catalog))
	for _, t := range template.Catalog {
		label := t.Name
		if t.Label != "" {
			label += " (" + t.Label + ")"
		}
		if t.Premium {
			label += " ★"
		}
		opts = append(opts, huh.NewOption(label, t.ID))
	}
	return opts
}

func editPreview(ctx context.Context, s *Session) (bool, error) {
	tmpl := s.Resume.Template
	if tmpl == "" {
		tmpl = template.DefaultID
	}
	finish := true

	fields := []huh.Field{
		huh.NewNote().Title("Preview").Description(Preview(s)),
		huh.NewSelect[string]().
			Title("Template").
			Options(templateOptions()...).
			Value(&tmpl),
		huh.NewConfirm().
			Title("Finish and write resume?").
			Affirmative("Finish").
			Negative("Not yet").
			Value(&finish),
	}
	if err := huh.NewForm(huh.NewGroup(fields...)).RunWithContext(ctx); err != nil {
		return false, err
	}

	if s.Templates != nil {
		if err := s.Templates.Select(tmpl); err != nil {
			return false, err
		}
	}
	s.Resume.Template = tmpl
	return finish, nil
}
