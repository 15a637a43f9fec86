package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/jacksmith/cb/internal/cli"
	"github.com/jacksmith/cb/internal/ops"
	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for cb.

To load completions:

Bash:
  $ source <(cb completion bash)
  # To load completions for each session, execute once:
  # Linux:
  $ cb completion bash > /etc/bash_completion.d/cb
  # macOS:
  $ cb completion bash > $(brew --prefix)/etc/bash_completion.d/cb

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc
  # To load completions for each session, execute once:
  $ cb completion zsh > "${fpath[1]}/_cb"
  # You will need to start a new shell for this setup to take effect.

Fish:
  $ cb completion fish | source
  # To load completions for each session, execute once:
  $ cb completion fish > ~/.config/fish/completions/cb.fish
`,
}

var completionBashCmd = &cobra.Command{
	Use:   "bash",
	Short: "Generate bash completion script",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenBashCompletion(os.Stdout)
	},
}

var completionZshCmd = &cobra.Command{
	Use:   "zsh",
	Short: "Generate zsh completion script",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenZshCompletion(os.Stdout)
	},
}

var completionFishCmd = &cobra.Command{
	Use:   "fish",
	Short: "Generate fish completion script",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenFishCompletion(os.Stdout, true)
	},
}

func init() {
	completionCmd.AddCommand(completionBashCmd)
	completionCmd.AddCommand(completionZshCmd)
	completionCmd.AddCommand(completionFishCmd)
	rootCmd.AddCommand(completionCmd)
}

// completeContactIDs completes contact IDs, described by the contact's name.
func completeContactIDs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	s, err := openStorage()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	contacts, err := ops.ListContacts(s, ops.ContactFilter{})
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	prefix := strings.TrimPrefix(toComplete, "#")
	var completions []string
	for _, c := range contacts {
		id := strconv.Itoa(c.ID())
		if strings.HasPrefix(id, prefix) {
			completions = append(completions, id+"\t"+cli.Truncate(c.FullName(), cli.DefaultMaxNameWidth))
		}
	}

	return completions, cobra.ShellCompDirectiveNoFileComp
}

// completeCategories completes the categories already in use.
func completeCategories(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	s, err := openStorage()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	cats, err := ops.Categories(s)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var completions []string
	toCompleteLower := strings.ToLower(toComplete)
	for _, cat := range cats {
		if strings.HasPrefix(strings.ToLower(cat), toCompleteLower) {
			completions = append(completions, cat)
		}
	}

	return completions, cobra.ShellCompDirectiveNoFileComp
}
