package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// completionShells maps each supported shell to its generator and the line
// that loads the script for the current session.
var completionShells = map[string]struct {
	gen  func(root *cobra.Command, w io.Writer) error
	load string
}{
	"bash": {
		gen:  func(root *cobra.Command, w io.Writer) error { return root.GenBashCompletionV2(w, true) },
		load: "source <(cvb completion bash)",
	},
	"zsh": {
		gen:  func(root *cobra.Command, w io.Writer) error { return root.GenZshCompletion(w) },
		load: `cvb completion zsh > "${fpath[1]}/_cvb"`,
	},
	"fish": {
		gen:  func(root *cobra.Command, w io.Writer) error { return root.GenFishCompletion(w, true) },
		load: "cvb completion fish | source",
	},
	"powershell": {
		gen:  func(root *cobra.Command, w io.Writer) error { return root.GenPowerShellCompletionWithDesc(w) },
		load: "cvb completion powershell | Out-String | Invoke-Expression",
	},
}

var completionCmd = &cobra.Command{
	Use:   "completion <shell>",
	Short: "Generate shell completion scripts",
	Long: `Print a completion script for cvb. Template ids and config keys
complete too, e.g. 'cvb template select <TAB>'.

Load it in the current session:
` + completionUsage(),
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		shell, ok := completionShells[args[0]]
		if !ok {
			return fmt.Errorf("unsupported shell: %s", args[0])
		}
		return shell.gen(cmd.Root(), cmd.OutOrStdout())
	},
}

func completionUsage() string {
	var b strings.Builder
	for _, name := range []string{"bash", "zsh", "fish", "powershell"} {
		fmt.Fprintf(&b, "  %-11s %s\n", name, completionShells[name].load)
	}
	return b.String()
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
