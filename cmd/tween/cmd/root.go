// Package cmd implements the tween CLI commands.
//
// The command structure follows standard Go CLI patterns with a root command
// that dispatches to subcommands (equations, sample, run, preset, watch).
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-drift/tween/cmd/tween/internal/config"
	"github.com/go-drift/tween/pkg/preset"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name        string
	Short       string
	Long        string
	Usage       string
	Run         func(args []string) error
	SubCommands []*Command
}

var rootCmd = &Command{
	Name:  "tween",
	Short: "tween - inspect, simulate and store tween presets",
	Long: `tween inspects easing equations, simulates YAML tween presets frame by
frame and manages the presets stored for an application.

Use "tween <command> --help" for more information about a command.`,
	Usage: "tween <command> [flags]",
}

// stdout receives command output. Tests replace it.
var stdout io.Writer = os.Stdout

// storeAppOverride is the gdata application name given with --app.
var storeAppOverride string

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	rootCmd.SubCommands = append(rootCmd.SubCommands, cmd)
}

// Execute runs the CLI with the process arguments.
func Execute() error {
	return execute(os.Args[1:])
}

func execute(args []string) error {
	storeAppOverride = ""

	// Handle no arguments
	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	// Handle global flags and extract --app
	var filteredArgs []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-h", "--help", "help":
			if len(filteredArgs) == 0 {
				printHelp(rootCmd)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "-v", "--version", "version":
			if len(filteredArgs) == 0 {
				fmt.Fprintf(stdout, "tween version %s (built %s)\n", Version, BuildTime)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "--app":
			if i+1 < len(args) {
				storeAppOverride = args[i+1]
				i++
			} else {
				return fmt.Errorf("--app requires an application name")
			}
		default:
			if strings.HasPrefix(arg, "--app=") {
				storeAppOverride = strings.TrimPrefix(arg, "--app=")
				continue
			}
			filteredArgs = append(filteredArgs, arg)
		}
	}
	args = filteredArgs

	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	// Find and execute the command
	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", cmdName)
		printHelp(rootCmd)
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	// Check for help flag on subcommand
	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(cmd)
			return nil
		}
	}

	return cmd.Run(cmdArgs)
}

// resolveConfig resolves tween.yaml for the working directory and applies
// the --app flag and TWEEN_APP, in that order of priority.
func resolveConfig() (*config.Resolved, error) {
	cfg, err := config.ResolveWorkingDir()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	switch {
	case storeAppOverride != "":
		cfg.StoreApp = storeAppOverride
	case os.Getenv("TWEEN_APP") != "":
		cfg.StoreApp = os.Getenv("TWEEN_APP")
	}
	return cfg, nil
}

// openStore is replaced by tests to avoid touching the user's data directory.
var openStore = func(cfg *config.Resolved) *preset.Store {
	return preset.OpenStore(cfg.StoreApp)
}

func printHelp(cmd *Command) {
	w := stdout
	fmt.Fprintln(w, cmd.Long)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s\n", cmd.Usage)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, sub := range cmd.SubCommands {
		fmt.Fprintf(w, "  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -h, --help           Show help for a command")
	fmt.Fprintln(w, "  -v, --version        Show version information")
	fmt.Fprintln(w, "  --app NAME           Preset storage application (default: tween_<app name>)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  TWEEN_APP            Preset storage override (lower priority than --app)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  tween sample OutBounce --steps 10   Print eased factors")
	fmt.Fprintln(w, "  tween run bounce.yaml --reverse     Simulate a preset backwards")
	fmt.Fprintln(w, "  tween preset save bounce.yaml       Store a preset")
}

func printCommandHelp(cmd *Command) {
	fmt.Fprintln(stdout, cmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", cmd.Usage)
}

// flagValue returns the value of a "--name value" or "--name=value" flag at
// args[i] and the index of the last consumed argument.
func flagValue(args []string, i int, name string) (string, int, bool, error) {
	arg := args[i]
	if v, ok := strings.CutPrefix(arg, name+"="); ok {
		return v, i, true, nil
	}
	if arg != name {
		return "", i, false, nil
	}
	if i+1 >= len(args) {
		return "", i, true, fmt.Errorf("%s requires a value", name)
	}
	return args[i+1], i + 1, true, nil
}
