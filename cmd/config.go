package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xrsl/cvb/pkg/config"
	"github.com/xrsl/cvb/pkg/style"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage cvb configuration",
	Long: `Read and change cvb settings.

Keys:
  template    Selected resume template id (see 'cvb template list')
  output_dir  Directory resumes are written to
  schema      Path to a custom forms definition

Examples:
  cvb config list
  cvb config get template
  cvb config set output_dir ~/resumes`,
}

var configSetCmd = &cobra.Command{
	Use:       "set <key> <value>",
	Short:     "Set a config value",
	Args:      cobra.ExactArgs(2),
	ValidArgs: config.Keys,
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if key == "template" {
			// Route through the selector so unknown ids are rejected.
			return templateSelectCmd.RunE(cmd, []string{value})
		}
		if err := config.Set(key, value); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:       "get <key>",
	Short:     "Get a config value",
	Args:      cobra.ExactArgs(1),
	ValidArgs: config.Keys,
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := config.Get(args[0])
		if err != nil {
			return err
		}
		if value == "" {
			fmt.Fprintln(cmd.OutOrStdout(), "(not set)")
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), value)
		}
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all config values",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		all := config.All()

		fmt.Fprintf(w, "\n%s\n", style.B(style.C(style.Cyan, "cvb config")))
		fmt.Fprintf(w, "%s\n\n", style.C(style.Gray, config.Path()))

		hints := map[string]string{
			"template":   "budapest when skipped",
			"output_dir": "current directory",
			"schema":     "bundled default",
		}
		for _, k := range config.Keys {
			fmt.Fprintln(w, style.Row(k, all[k], hints[k]))
		}
		fmt.Fprintln(w)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}
