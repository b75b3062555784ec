package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/xrsl/cvb/pkg/config"
	"github.com/xrsl/cvb/pkg/schema"
	"github.com/xrsl/cvb/pkg/style"
	"github.com/xrsl/cvb/pkg/template"
	"github.com/xrsl/cvb/pkg/utils"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the cvb setup",
	Long:  `Verify the config file, template selection, forms definition and output directory used by cvb create.`,
	Args:  cobra.NoArgs,
	RunE:  runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func ok(w io.Writer, format string, a ...any) {
	fmt.Fprintf(w, "%s %s\n", style.C(style.Green, "✓"), fmt.Sprintf(format, a...))
}

func fail(w io.Writer, format string, a ...any) {
	fmt.Fprintf(w, "%s %s\n", style.C(style.Red, "✗"), fmt.Sprintf(format, a...))
}

func warn(w io.Writer, format string, a ...any) {
	fmt.Fprintf(w, "%s %s\n", style.C(style.Yellow, "⚠"), fmt.Sprintf(format, a...))
}

func runDoctor(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s Checking cvb setup\n\n", style.C(style.Cyan, "→"))

	allGood := true

	cfg, err := config.Load()
	if err != nil {
		fail(w, "config %s: %v", config.Path(), err)
		return fmt.Errorf("setup issues detected")
	}
	if utils.FileExists(config.Path()) {
		ok(w, "config file %s", config.Path())
	} else {
		warn(w, "no config file yet (created on first 'cvb config set' or 'cvb template')")
	}

	switch id := cfg.Template; {
	case id == "":
		warn(w, "no template selected, %s will be used", template.DefaultID)
	default:
		if t, found := template.Lookup(id); found {
			ok(w, "template %s", t.Name)
		} else {
			fail(w, "unknown template %q in config", id)
			fmt.Fprintln(w, "  Fix: cvb template select <id>")
			allGood = false
		}
	}

	if _, err := schema.Load(cfg.Schema); err != nil {
		fail(w, "forms definition: %v", err)
		allGood = false
	} else if cfg.Schema != "" {
		ok(w, "forms definition %s", cfg.Schema)
	} else {
		ok(w, "bundled forms definition")
	}

	if err := utils.DirWritable(cfg.OutputDir); err != nil {
		fail(w, "output_dir %s is not writable: %v", cfg.OutputDir, err)
		allGood = false
	} else {
		ok(w, "output_dir %s", cfg.OutputDir)
	}

	if style.IsTerminal(os.Stdin) {
		ok(w, "interactive terminal")
	} else {
		warn(w, "stdin is not a terminal, 'cvb create' will not start")
	}

	fmt.Fprintln(w)
	if !allGood {
		return fmt.Errorf("setup issues detected")
	}
	ok(w, "Setup OK")
	return nil
}
