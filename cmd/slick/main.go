package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/benjaminschreck/go-slick/pkg/slick"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{escape: escapeValue{mode: slick.EscapeTypst}}

	rootCmd := &cobra.Command{
		Use:   "slick",
		Short: "Render and validate slick sheet templates",
		Long: `slick merges structured content data (JSON or YAML) into
Handlebars-style presentation templates.

Configuration is read from SLICK_LOG_LEVEL, SLICK_MAX_NESTING_DEPTH and
SLICK_ESCAPE, and may be overridden with the global flags. Substituted
values are escaped for Typst unless --escape none is given.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error, off)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Shorthand for --log-level=debug")
	flags.Var(&opts.escape, "escape", "Escaping applied to substituted values (none, typst)")
	flags.IntVar(&opts.maxDepth, "max-depth", 0, "Maximum #if/#each nesting depth")

	rootCmd.AddCommand(
		renderCmd(opts),
		validateCmd(opts),
		checkCmd(opts),
		versionCmd(),
	)

	return rootCmd
}
