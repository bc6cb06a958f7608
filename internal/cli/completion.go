package cli

import (
	"fmt"
	"io"
)

// CompletionCmd generates shell completions
type CompletionCmd struct {
	Shell string `arg:"" enum:"bash,zsh,fish" help:"Shell type (bash, zsh, fish)"`
}

// Run executes the completion command
func (c *CompletionCmd) Run(globals *Globals) error {
	switch c.Shell {
	case "bash":
		return c.generateBash(globals)
	case "zsh":
		return c.generateZsh(globals)
	case "fish":
		return c.generateFish(globals)
	default:
		return fmt.Errorf("unsupported shell: %s", c.Shell)
	}
}

func (c *CompletionCmd) generateBash(globals *Globals) error {
	script := `# isim bash completion script
# Add to ~/.bashrc or ~/.bash_profile:
#   eval "$(isim completion bash)"

_isim_completions() {
    local cur prev words cword
    _init_completion || return

    local commands="list launch default pick apps doctor config examples completion version"
    local global_flags="-f --format -q --quiet -v --verbose --no-color"

    case "${prev}" in
        isim)
            COMPREPLY=($(compgen -W "${commands}" -- "${cur}"))
            return
            ;;
        -f|--format)
            COMPREPLY=($(compgen -W "text ndjson" -- "${cur}"))
            return
            ;;
        launch|default)
            # Complete with simulator UDIDs
            local udids=$(xcrun simctl list devices available -j 2>/dev/null | grep '"udid"' | cut -d'"' -f4 | tr '\n' ' ')
            COMPREPLY=($(compgen -W "${udids}" -- "${cur}"))
            return
            ;;
        completion)
            COMPREPLY=($(compgen -W "bash zsh fish" -- "${cur}"))
            return
            ;;
    esac

    COMPREPLY=($(compgen -W "${commands} ${global_flags}" -- "${cur}"))
}

complete -F _isim_completions isim
`
	_, err := io.WriteString(globals.Stdout, script)
	return err
}

func (c *CompletionCmd) generateZsh(globals *Globals) error {
	script := `# isim zsh completion script
# Add to ~/.zshrc:
#   eval "$(isim completion zsh)"

_isim() {
    local -a commands
    commands=(
        'list:List available simulators'
        'launch:Launch a simulator by name, OS version, or UDID'
        'default:Show, set, or clear the default simulator'
        'pick:Interactively pick a simulator'
        'apps:List installed apps on a simulator'
        'doctor:Check system requirements and configuration'
        'config:Show or manage configuration'
        'examples:Show usage examples'
        'completion:Generate shell completions'
        'version:Show version information'
    )

    _arguments -C \
        '(-f --format)'{-f,--format}'[Output format]:format:(text ndjson)' \
        '(-q --quiet)'{-q,--quiet}'[Suppress informational output]' \
        '(-v --verbose)'{-v,--verbose}'[Show debug output]' \
        '--no-color[Disable colored output]' \
        '1:command:->command' \
        '*::arg:->args'

    case "$state" in
        command)
            _describe 'command' commands
            ;;
    esac
}

compdef _isim isim
`
	_, err := io.WriteString(globals.Stdout, script)
	return err
}

func (c *CompletionCmd) generateFish(globals *Globals) error {
	script := `# isim fish completion script
# Save to ~/.config/fish/completions/isim.fish

complete -c isim -f

complete -c isim -n '__fish_use_subcommand' -a list -d 'List available simulators'
complete -c isim -n '__fish_use_subcommand' -a launch -d 'Launch a simulator'
complete -c isim -n '__fish_use_subcommand' -a default -d 'Show, set, or clear the default simulator'
complete -c isim -n '__fish_use_subcommand' -a pick -d 'Interactively pick a simulator'
complete -c isim -n '__fish_use_subcommand' -a apps -d 'List installed apps on a simulator'
complete -c isim -n '__fish_use_subcommand' -a doctor -d 'Check system requirements'
complete -c isim -n '__fish_use_subcommand' -a config -d 'Show or manage configuration'
complete -c isim -n '__fish_use_subcommand' -a examples -d 'Show usage examples'
complete -c isim -n '__fish_use_subcommand' -a completion -d 'Generate shell completions'
complete -c isim -n '__fish_use_subcommand' -a version -d 'Show version information'

complete -c isim -s f -l format -a 'text ndjson' -d 'Output format'
complete -c isim -s q -l quiet -d 'Suppress informational output'
complete -c isim -s v -l verbose -d 'Show debug output'
complete -c isim -l no-color -d 'Disable colored output'

complete -c isim -n '__fish_seen_subcommand_from completion' -a 'bash zsh fish'
`
	_, err := io.WriteString(globals.Stdout, script)
	return err
}
