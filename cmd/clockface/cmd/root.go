// Package cmd implements the clockface CLI commands.
//
// A root command dispatches to subcommands (render, tui, version). Global
// logging flags are consumed before dispatch; each subcommand parses its
// own flags with a pflag.FlagSet.
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"
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
	Name:  "clockface",
	Short: "clockface - animated analog clock faces",
	Long: `clockface draws an analog clock face and animates its hands
between times. Render animation frames to PNG files or watch the
clock in a terminal.

Use "clockface <command> --help" for more information about a command.`,
	Usage: "clockface [--log-level LEVEL] [--log-json] <command> [flags]",
}

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// stdout is where commands print results.
var stdout io.Writer = os.Stdout

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	rootCmd.SubCommands = append(rootCmd.SubCommands, cmd)
}

// Execute runs the CLI with the given arguments (without the program name).
func Execute(args []string) error {
	// Handle global flags
	var logOpts logOptions
	var filteredArgs []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case len(filteredArgs) > 0:
			filteredArgs = append(filteredArgs, arg)
		case arg == "-h" || arg == "--help" || arg == "help":
			printHelp(rootCmd)
			return nil
		case arg == "-v" || arg == "--version":
			return runVersion(nil)
		case arg == "--log-json":
			logOpts.json = true
		case arg == "--log-level":
			if i+1 >= len(args) {
				return fmt.Errorf("--log-level requires a level (debug, info, warn, error)")
			}
			logOpts.level = args[i+1]
			i++
		case strings.HasPrefix(arg, "--log-level="):
			logOpts.level = strings.TrimPrefix(arg, "--log-level=")
		default:
			filteredArgs = append(filteredArgs, arg)
		}
	}
	args = filteredArgs

	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	if err := setupLogging(logOpts, os.Stderr); err != nil {
		return err
	}

	// Find and execute the command
	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", cmdName)
		printHelp(rootCmd)
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	return cmd.Run(args[1:])
}

// parseFlags parses args into fs. It prints command help and returns
// pflag.ErrHelp when -h or --help is given.
func parseFlags(cmd *Command, fs *pflag.FlagSet, args []string) error {
	fs.SetOutput(io.Discard)
	if err := fs.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			printCommandHelp(cmd, fs)
			return err
		}
		return fmt.Errorf("%s: %w", cmd.Name, err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%s: unexpected argument %q", cmd.Name, fs.Arg(0))
	}
	return nil
}

func printHelp(cmd *Command) {
	fmt.Fprintln(stdout, cmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", cmd.Usage)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Commands:")
	for _, sub := range cmd.SubCommands {
		fmt.Fprintf(stdout, "  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Flags:")
	fmt.Fprintln(stdout, "  -h, --help           Show help for a command")
	fmt.Fprintln(stdout, "  -v, --version        Show version information")
	fmt.Fprintln(stdout, "  --log-level LEVEL    Log level: debug, info, warn, error (default: warn)")
	fmt.Fprintln(stdout, "  --log-json           Write logs as JSON")
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Examples:")
	fmt.Fprintln(stdout, "  clockface render --to 2:30,7:10 --out frames   Render two animations")
	fmt.Fprintln(stdout, "  clockface tui                                  Interactive terminal clock")
}

func printCommandHelp(cmd *Command, fs *pflag.FlagSet) {
	fmt.Fprintln(stdout, cmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", cmd.Usage)
	if fs != nil && fs.HasFlags() {
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, "Flags:")
		fmt.Fprint(stdout, fs.FlagUsages())
	}
}
