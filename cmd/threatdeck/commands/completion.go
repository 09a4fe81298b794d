package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate completion script",
	Long: `To load completions:

Bash:
  $ source <(threatdeck completion bash)

Zsh:
  $ threatdeck completion zsh > "${fpath[1]}/_threatdeck"

Fish:
  $ threatdeck completion fish | source
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Run: func(cmd *cobra.Command, args []string) {
		switch args[0] {
		case "bash":
			fmt.Print(bashCompletion)
		case "zsh":
			_ = rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			_ = rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			_ = rootCmd.GenPowerShellCompletion(os.Stdout)
		}
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}

// bashCompletion is a handcrafted, minimal bash completion script.
const bashCompletion = `
# threatdeck bash completion

_threatdeck_completion() {
    local cur prev opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"
    opts="render data completion help"

    case "${prev}" in
        render)
            COMPREPLY=( $(compgen -W "overview origins targets trends --width --height --help" -- ${cur}) )
            return 0
            ;;
        data)
            COMPREPLY=( $(compgen -W "--format --help" -- ${cur}) )
            return 0
            ;;
        completion)
            COMPREPLY=( $(compgen -W "bash zsh fish powershell" -- ${cur}) )
            return 0
            ;;
        --view)
            COMPREPLY=( $(compgen -W "overview origins targets trends" -- ${cur}) )
            return 0
            ;;
        --format)
            COMPREPLY=( $(compgen -W "yaml json" -- ${cur}) )
            return 0
            ;;
        *)
            ;;
    esac

    if [[ ${cur} == -* ]] ; then
        COMPREPLY=( $(compgen -W "--help --version --view --ascii --log-file --verbose" -- ${cur}) )
        return 0
    fi

    COMPREPLY=( $(compgen -W "${opts}" -- ${cur}) )
}

complete -F _threatdeck_completion threatdeck
`
