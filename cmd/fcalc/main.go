package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jcgregorio/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

// version is the fcalc version. It can be overridden at build time via
// -ldflags.
var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "fcalc [flags] [expression...]",
	Short: "Evaluate arithmetic expressions",
	Long: `fcalc evaluates arithmetic expressions like "2 + 3 * 4" or "log(2, 8) sqrt(pi)".

With arguments, each one is evaluated as a separate expression. Otherwise,
fcalc reads one expression per line from standard input and stops at an empty
line.`,
	RunE:          runRoot,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	addFlags(rootCmd.Flags())
}

// addFlags defines the command line flags. Those with the same names as
// Config fields override the config file.
func addFlags(flags *pflag.FlagSet) {
	flags.String("config", "", "config file (default $XDG_CONFIG_HOME/fcalc/config.toml)")
	flags.String("prompt", "> ", "prompt to print when reading from a terminal")
	flags.String("fmt", "%g", "result formatting string")
	flags.String("color", "auto", "colorize output (auto|on|off)")
	flags.Bool("echo", false, "print parse trees")
	flags.Bool("strict", false, "reject characters that aren't part of any token")
	flags.Bool("left-assoc", false, "group chains of same-precedence operators to the left")
	flags.Bool("normalize", true, "apply NFKC normalization to input")
	flags.BoolP("verbose", "v", false, "log debugging information")
}

func main() {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errEvalFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return err
	}
	log := logger.NewFromOptions(&logger.Options{
		SyncWriter:   os.Stderr,
		IncludeDebug: verbose,
	})

	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
	}
	cfg, err := loadConfig(path, explicit, log)
	if err != nil {
		return err
	}
	if err := cfg.override(cmd.Flags()); err != nil {
		return err
	}

	s := newSession(cfg, os.Stdout, useColor(cfg.Color, os.Stdout), log)
	if len(args) > 0 {
		return s.args(args)
	}
	return s.loop(os.Stdin, term.IsTerminal(int(os.Stdin.Fd())))
}
