package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"
	"github.com/spf13/cobra"

	"github.com/xrsl/cvb/pkg/config"
	clog "github.com/xrsl/cvb/pkg/log"
	"github.com/xrsl/cvb/pkg/schema"
	"github.com/xrsl/cvb/pkg/signal"
	"github.com/xrsl/cvb/pkg/style"
	"github.com/xrsl/cvb/pkg/template"
	"github.com/xrsl/cvb/pkg/tui"
	"github.com/xrsl/cvb/pkg/utils"
)

var (
	createOutput string
	createStdout bool
	createForms  string
	createForce  bool
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Run the resume wizard",
	Long: `Walk through the resume builder steps in the terminal.

Steps: Contact, Experience, Education, Skills, About, Preview.
Use → / ← to move between steps, enter to edit the current step and the
number keys to jump back to a step you have already completed.

When you finish, the collected data is written as YAML. The default file
name is derived from your name, inside the configured output_dir.

Examples:
  cvb create
  cvb create -o jane.yaml
  cvb create --stdout > resume.yaml`,
	Args: cobra.NoArgs,
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringVarP(&createOutput, "output", "o", "", "Output file (default: <name>.yaml in output_dir)")
	createCmd.Flags().BoolVar(&createStdout, "stdout", false, "Write the resume YAML to stdout")
	createCmd.Flags().BoolVarP(&createForce, "force", "f", false, "Overwrite an existing output file")
	createCmd.Flags().StringVar(&createForms, "forms", "", "Custom forms definition (overrides config 'schema')")
	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	if !style.IsTerminal(os.Stdin) {
		return errors.New("cvb create needs an interactive terminal")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if createOutput != "" && !createForce && utils.FileExists(createOutput) {
		return fmt.Errorf("%s: %w (use --force to overwrite)", createOutput, utils.ErrExists)
	}

	formsPath := createForms
	if formsPath == "" {
		formsPath = cfg.Schema
	}
	forms, err := schema.Load(formsPath)
	if err != nil {
		return err
	}

	selector, err := template.NewSelector(template.ConfigStore{})
	if err != nil {
		return err
	}

	session, err := tui.NewSession(forms, selector)
	if err != nil {
		return err
	}

	ctx, cancel := signal.WithInterrupt(cmd.Context())
	defer cancel()

	if err := tui.Run(ctx, session); err != nil {
		if errors.Is(err, tui.ErrCancelled) {
			if !quiet {
				fmt.Fprintln(cmd.ErrOrStderr(), style.C(style.Gray, "Cancelled, nothing written."))
			}
			return nil
		}
		return err
	}

	data, err := session.Resume.YAML()
	if err != nil {
		return err
	}

	if createStdout {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	path := outputPath(createOutput, cfg.OutputDir, session.Resume.Contact.FullName())
	if createOutput == "" && !createForce {
		path = freePath(path)
	}
	if err := utils.WriteFile(path, data, createForce); err != nil {
		return fmt.Errorf("error writing resume: %w", err)
	}
	clog.Info("resume written", "path", path, "bytes", len(data))

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "%s Resume saved to %s (template %s)\n",
			style.Check(), style.C(style.Cyan, path), style.B(session.Resume.Template))
	}
	return nil
}

// outputPath picks the file the resume is written to: the explicit flag,
// otherwise a slug of the user's name inside dir.
func outputPath(flag, dir, name string) string {
	if flag != "" {
		return flag
	}
	base := slug.Make(name)
	if base == "" {
		base = "resume"
	}
	return filepath.Join(dir, base+".yaml")
}

// freePath appends -2, -3, ... to the file name until it names no existing
// file.
func freePath(path string) string {
	if !utils.FileExists(path) {
		return path
	}
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	for n := 2; ; n++ {
		p := fmt.Sprintf("%s-%d%s", stem, n, ext)
		if !utils.FileExists(p) {
			return p
		}
	}
}
