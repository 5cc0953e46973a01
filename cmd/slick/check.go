package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/benjaminschreck/go-slick/pkg/slick"
	"github.com/benjaminschreck/go-slick/pkg/slick/compile"
	"github.com/benjaminschreck/go-slick/pkg/slick/datafile"
)

func checkCmd(opts *options) *cobra.Command {
	var (
		templatePath string
		dataPath     string
		compilerName string
		execCmd      string
		timeout      time.Duration
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate, render and compile a template",
		Long: `Run the full acceptance gate for a template: static validation, a render
against the data file, then a downstream compiler.

Compilers:
  delimiters  bracket and string balance check (default)
  markdown    CommonMark + GFM via goldmark
  exec        pipe the output into --exec-cmd, e.g. "typst compile - out.pdf"
  none        skip compilation

Examples:
  slick check -t sheet.typ -d data.json
  slick check -t sheet.md -d data.yaml --compiler markdown
  slick check -t sheet.typ -d data.json --compiler exec --exec-cmd "typst compile - /dev/null"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := opts.engine(cmd)
			if err != nil {
				return err
			}

			compiler, err := newCompiler(compilerName, execCmd, timeout)
			if err != nil {
				return err
			}

			template, err := readTemplate(templatePath)
			if err != nil {
				return err
			}
			data, err := datafile.Load(dataPath)
			if err != nil {
				return err
			}

			if warnings, err := engine.Validate(template); err == nil {
				for _, w := range warnings {
					fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
				}
			}

			if err := engine.ValidateWithData(template, data, compiler); err != nil {
				var ce *slick.CheckError
				if !errors.As(err, &ce) {
					return err
				}
				for _, msg := range ce.Messages {
					fmt.Fprintf(cmd.ErrOrStderr(), "  - %s\n", msg)
				}
				return fmt.Errorf("check failed at %s stage", ce.Stage)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Check passed")
			return nil
		},
	}

	cmd.Flags().StringVarP(&templatePath, "template", "t", "", "Template file")
	cmd.Flags().StringVarP(&dataPath, "data", "d", "", "Data file (.json, .jsonc, .yaml, .yml)")
	cmd.Flags().StringVarP(&compilerName, "compiler", "c", "delimiters", "Compiler: delimiters, markdown, exec or none")
	cmd.Flags().StringVar(&execCmd, "exec-cmd", "", "Command line for --compiler exec")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "Timeout for --compiler exec")
	_ = cmd.MarkFlagRequired("template")
	_ = cmd.MarkFlagRequired("data")

	return cmd
}

func newCompiler(name, execCmd string, timeout time.Duration) (slick.Compiler, error) {
	switch name {
	case "delimiters":
		return compile.Delimiters{}, nil
	case "markdown":
		return compile.NewMarkdown(), nil
	case "exec":
		fields := strings.Fields(execCmd)
		if len(fields) == 0 {
			return nil, errors.New("--compiler exec requires --exec-cmd")
		}
		return compile.Exec{Name: fields[0], Args: fields[1:], Timeout: timeout}, nil
	case "none":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown compiler %q (want delimiters, markdown, exec or none)", name)
	}
}
