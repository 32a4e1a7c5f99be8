package cmd

import (
	"github.com/spf13/pflag"

	"github.com/go-drift/clockface/pkg/config"
	"github.com/go-drift/clockface/pkg/terminal"
)

var tuiCmd = &Command{
	Name:  "tui",
	Short: "Show an interactive clock in the terminal",
	Long: `Show an animated clock face in the terminal.

Keys:
  n      animate forward one hour
  m      animate forward fifteen minutes
  r      animate to a random time
  j      jump to a random time
  s      stop both hands
  space  resume both hands
  q      quit`,
	Usage: "clockface tui [--config FILE]",
}

func init() {
	tuiCmd.Run = runTUI
	RegisterCommand(tuiCmd)
}

func runTUI(args []string) error {
	var configPath string
	fs := pflag.NewFlagSet("tui", pflag.ContinueOnError)
	fs.StringVar(&configPath, "config", ".", "config file or directory containing "+config.DefaultFileName)
	if err := parseFlags(tuiCmd, fs, args); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	res, err := config.Load(configPath)
	if err != nil {
		return err
	}
	model := terminal.NewModel(terminal.Options{
		Style:  res.Style,
		Start:  res.StartTime,
		Logger: logger,
	})
	return terminal.Run(model)
}
