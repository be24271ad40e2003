package cli

import (
	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for laserbox.

To load completions:

Bash:
  $ source <(laserbox completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ laserbox completion bash > /etc/bash_completion.d/laserbox
  # macOS:
  $ laserbox completion bash > $(brew --prefix)/etc/bash_completion.d/laserbox

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ laserbox completion zsh > "${fpath[1]}/_laserbox"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ laserbox completion fish | source

  # To load completions for each session, execute once:
  $ laserbox completion fish > ~/.config/fish/completions/laserbox.fish

PowerShell:
  PS> laserbox completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> laserbox completion powershell > laserbox.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(stdout)
			}
			return nil
		},
	}
}
