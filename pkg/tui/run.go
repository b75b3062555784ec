package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	clog "github.com/xrsl/cvb/pkg/log"
)

// Run alternates between the navigator and the active step's form until the
// user finishes on the last step or quits. Escaping out of a form returns
// to the navigator.
func Run(ctx context.Context, s *Session, opts ...tea.ProgramOption) error {
	for {
		nav := NewNavigator(s)
		p := tea.NewProgram(nav, append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)...)
		if _, err := p.Run(); err != nil {
			if ctx.Err() != nil || errors.Is(err, tea.ErrProgramKilled) {
				return ErrCancelled
			}
			return fmt.Errorf("navigator failed: %w", err)
		}

		switch nav.Outcome() {
		case OutcomeFinish:
			return nil
		case OutcomeEdit:
			finish, err := EditStep(ctx, s)
			if errors.Is(err, huh.ErrUserAborted) {
				clog.Debug("step form aborted", "step", s.Wizard.CurrentStep().ID)
				continue
			}
			if err != nil {
				if ctx.Err() != nil {
					return ErrCancelled
				}
				return fmt.Errorf("step %s: %w", s.Wizard.CurrentStep().ID, err)
			}
			if finish {
				return nil
			}
		default:
			return ErrCancelled
		}
	}
}
