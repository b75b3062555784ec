// Package wizard tracks navigation through the fixed sequence of resume
// builder steps.
//
// A Controller owns the step list, the index of the active step and the set
// of steps the user has moved past. Navigation never fails: requests that
// would leave the valid range are ignored.
package wizard

import (
	"slices"

	clog "github.com/xrsl/cvb/pkg/log"
)

// Status is how a step marker should be drawn.
type Status int

const (
	Pending Status = iota
	Active
	Done
)

func (s Status) String() string {
	switch s {
	case Active:
		return "active"
	case Done:
		return "done"
	default:
		return "pending"
	}
}

// StepDef describes a step at construction time.
type StepDef struct {
	ID    string
	Label string
}

// Step is a read-only snapshot of one step for rendering.
type Step struct {
	ID        string
	Label     string
	Completed bool
	Active    bool
}

// Controller holds the navigation state. It is not safe for concurrent use.
type Controller struct {
	steps     []StepDef
	current   int
	completed map[int]struct{}
}

// DefaultSteps is the resume builder's step order.
var DefaultSteps = []StepDef{
	{ID: "contact", Label: "Contact"},
	{ID: "experience", Label: "Experience"},
	{ID: "education", Label: "Education"},
	{ID: "skills", Label: "Skills"},
	{ID: "about", Label: "About"},
	{ID: "finish", Label: "Preview"},
}

// New returns a controller positioned on the first step. An empty step list
// is replaced by DefaultSteps so that the current index is always valid.
func New(steps []StepDef) *Controller {
	if len(steps) == 0 {
		steps = DefaultSteps
	}
	return &Controller{
		steps:     slices.Clone(steps),
		completed: make(map[int]struct{}),
	}
}

// Len returns the number of steps.
func (c *Controller) Len() int { return len(c.steps) }

// Current returns the index of the active step.
func (c *Controller) Current() int { return c.current }

// CurrentStep returns the snapshot of the active step.
func (c *Controller) CurrentStep() Step { return c.Step(c.current) }

// IsFirst reports whether the active step is the first one.
func (c *Controller) IsFirst() bool { return c.current == 0 }

// IsLast reports whether the active step is the last one.
func (c *Controller) IsLast() bool { return c.current == len(c.steps)-1 }

// Advance marks the active step completed and moves to the next one.
// On the last step it does nothing.
func (c *Controller) Advance() {
	if c.IsLast() {
		return
	}
	c.completed[c.current] = struct{}{}
	c.current++
	clog.Debug("wizard advanced", "step", c.steps[c.current].ID)
}

// Retreat moves to the previous step. Completed steps stay completed.
func (c *Controller) Retreat() {
	if c.current == 0 {
		return
	}
	c.current--
	clog.Debug("wizard retreated", "step", c.steps[c.current].ID)
}

// JumpTo activates step i if it has been completed before. Any other index,
// including out of range ones, is ignored.
func (c *Controller) JumpTo(i int) {
	if !c.IsCompleted(i) {
		return
	}
	c.current = i
	clog.Debug("wizard jumped", "step", c.steps[i].ID)
}

// IsCompleted reports whether step i has been advanced past.
func (c *Controller) IsCompleted(i int) bool {
	_, ok := c.completed[i]
	return ok
}

// Completed returns the completed step indices in ascending order.
func (c *Controller) Completed() []int {
	out := make([]int, 0, len(c.completed))
	for i := range c.completed {
		out = append(out, i)
	}
	slices.Sort(out)
	return out
}

// Status returns how step i is drawn. Completed wins over active so a
// revisited step keeps its check mark.
func (c *Controller) Status(i int) Status {
	switch {
	case c.IsCompleted(i):
		return Done
	case i == c.current:
		return Active
	default:
		return Pending
	}
}

// Interactive reports whether the marker for step i accepts a jump.
func (c *Controller) Interactive(i int) bool { return c.IsCompleted(i) }

// Step returns the snapshot of step i, or the zero Step when out of range.
func (c *Controller) Step(i int) Step {
	if i < 0 || i >= len(c.steps) {
		return Step{}
	}
	return Step{
		ID:        c.steps[i].ID,
		Label:     c.steps[i].Label,
		Completed: c.IsCompleted(i),
		Active:    i == c.current,
	}
}

// Steps returns snapshots of every step in order.
func (c *Controller) Steps() []Step {
	out := make([]Step, len(c.steps))
	for i := range c.steps {
		out[i] = c.Step(i)
	}
	return out
}

// NextLabel is the caption for the forward button: the next step's label,
// or "Finish" on the last step.
func (c *Controller) NextLabel() string {
	if c.IsLast() {
		return "Finish"
	}
	return c.steps[c.current+1].Label
}
