package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/xrsl/cvb/pkg/config"
	clog "github.com/xrsl/cvb/pkg/log"
	"github.com/xrsl/cvb/pkg/style"
)

var (
	quiet   bool
	verbose bool
	logJSON bool
)

var rootCmd = &cobra.Command{
	Use:   "cvb",
	Short: "Build a resume step by step in the terminal",
	Long: `cvb walks you through building a resume one step at a time:
contact details, work experience, education, skills and a short summary.

Pick a template once with 'cvb template', then run 'cvb create' to fill in
the wizard. The collected data is written out as YAML when you finish.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		clog.SetVerbose(verbose)
		clog.SetQuiet(quiet)
		if logJSON {
			clog.SetJSON(true)
		}
	},
}

func Execute() {
	loadEnv()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.C(style.Red, "Error:"), err)
		os.Exit(1)
	}
}

// loadEnv reads .env files (./.env by default) and re-applies the settings
// that packages resolved from the environment at startup.
func loadEnv(files ...string) {
	if err := godotenv.Load(files...); err != nil && !os.IsNotExist(err) {
		clog.Warn("failed to load .env", "error", err)
	}
	config.Reload()
	style.DetectColor()
	clog.LoadEnv()
}

func init() {
	// Setup Typer-style help formatting
	style.SetupHelp(rootCmd)

	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Write logs as JSON")
}
