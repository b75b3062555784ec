package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/xrsl/cvb/pkg/signal"
	"github.com/xrsl/cvb/pkg/style"
	"github.com/xrsl/cvb/pkg/template"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Choose the resume template",
	Long: `Browse the template gallery and pick the look of your resume.

Run without a subcommand to browse interactively, or use:
  cvb template list
  cvb template select <id>
  cvb template skip        # use the default (budapest)
  cvb template show`,
	Args: cobra.NoArgs,
	RunE: runTemplateBrowse,
}

var templateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		sel, err := template.NewSelector(template.ConfigStore{})
		if err != nil {
			return err
		}
		printTemplates(cmd.OutOrStdout(), sel)
		return nil
	},
}

var templateSelectCmd = &cobra.Command{
	Use:       "select <id>",
	Short:     "Select a template",
	Args:      cobra.ExactArgs(1),
	ValidArgs: templateIDs(),
	RunE: func(cmd *cobra.Command, args []string) error {
		sel, err := template.NewSelector(template.ConfigStore{})
		if err != nil {
			return err
		}
		if err := sel.Select(args[0]); err != nil {
			return err
		}
		printSelected(cmd.OutOrStdout(), args[0])
		return nil
	},
}

var templateSkipCmd = &cobra.Command{
	Use:   "skip",
	Short: "Use the default template",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sel, err := template.NewSelector(template.ConfigStore{})
		if err != nil {
			return err
		}
		if err := sel.Skip(); err != nil {
			return err
		}
		printSelected(cmd.OutOrStdout(), template.DefaultID)
		return nil
	},
}

var templateShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the selected template",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sel, err := template.NewSelector(template.ConfigStore{})
		if err != nil {
			return err
		}
		id, ok := sel.Selected()
		if !ok {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", sel.Effective(), style.C(style.Gray, "(default, not selected)"))
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), id)
		return nil
	},
}

func init() {
	templateCmd.AddCommand(templateListCmd)
	templateCmd.AddCommand(templateSelectCmd)
	templateCmd.AddCommand(templateSkipCmd)
	templateCmd.AddCommand(templateShowCmd)
	rootCmd.AddCommand(templateCmd)
}

func templateIDs() []string {
	ids := make([]string, len(template.Catalog))
	for i, t := range template.Catalog {
		ids[i] = t.ID
	}
	return ids
}

func describeTemplate(t template.Template) string {
	s := t.Name
	if t.Label != "" {
		s += " " + style.C(style.Yellow, "("+t.Label+")")
	}
	if t.Premium {
		s += " " + style.C(style.Magenta, "premium")
	}
	return s
}

func printTemplates(w io.Writer, sel *template.Selector) {
	current, _ := sel.Selected()
	fmt.Fprintf(w, "\n%s\n\n", style.B("Templates"))
	for _, t := range template.Catalog {
		marker := "   "
		if t.ID == current {
			marker = " " + style.C(style.Green, "→") + " "
		}
		fmt.Fprintf(w, "%s%-10s %s\n", marker, t.ID, describeTemplate(t))
	}
	fmt.Fprintln(w)
}

func printSelected(w io.Writer, id string) {
	t, _ := template.Lookup(id)
	fmt.Fprintf(w, "%s Using template %s\n", style.Check(), style.C(style.Cyan, t.Name))
}

// Gallery menu values that are not template ids.
const (
	galleryPrev = "<prev>"
	galleryNext = "<next>"
	gallerySkip = "<skip>"
)

func galleryOptions(g *template.Gallery, current string) []huh.Option[string] {
	var opts []huh.Option[string]
	if g.CanPrevious() {
		opts = append(opts, huh.NewOption("‹ Previous", galleryPrev))
	}
	for _, t := range g.Visible() {
		label := t.Name
		if t.Label != "" {
			label += " (" + t.Label + ")"
		}
		if t.Premium {
			label += " ★"
		}
		if t.ID == current {
			label += " ✓"
		}
		opts = append(opts, huh.NewOption(label, t.ID))
	}
	if g.CanNext() {
		opts = append(opts, huh.NewOption("Next ›", galleryNext))
	}
	return append(opts, huh.NewOption("Skip for now", gallerySkip))
}

func galleryCaption(g *template.Gallery) string {
	from := g.Start() + 1
	to := g.Start() + len(g.Visible())
	return fmt.Sprintf("To get started, select a resume template below. Showing %d-%d of %d.", from, to, len(template.Catalog))
}

func runTemplateBrowse(cmd *cobra.Command, args []string) error {
	sel, err := template.NewSelector(template.ConfigStore{})
	if err != nil {
		return err
	}
	if !style.IsTerminal(os.Stdin) {
		printTemplates(cmd.OutOrStdout(), sel)
		return nil
	}

	ctx, cancel := signal.WithInterrupt(cmd.Context())
	defer cancel()

	g := template.NewGallery(template.Catalog)
	for {
		current, _ := sel.Selected()
		var choice string
		err := huh.NewForm(huh.NewGroup(
			huh.NewSelect[string]().
				Title("Select a resume template").
				Description(galleryCaption(g)).
				Options(galleryOptions(g, current)...).
				Value(&choice),
		)).RunWithContext(ctx)
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		if err != nil {
			return err
		}

		switch choice {
		case galleryPrev:
			g.Previous()
		case galleryNext:
			g.Next()
		case gallerySkip:
			if err := sel.Skip(); err != nil {
				return err
			}
			printSelected(cmd.OutOrStdout(), template.DefaultID)
			return nil
		default:
			if err := sel.Select(choice); err != nil {
				return err
			}
			printSelected(cmd.OutOrStdout(), choice)
			return nil
		}
	}
}
