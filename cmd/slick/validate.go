package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/benjaminschreck/go-slick/pkg/slick"
)

func validateCmd(opts *options) *cobra.Command {
	var (
		templatePath string
		strict       bool
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check template syntax and referenced variables",
		Long: `Validate a template without rendering it.

Syntax errors and empty templates fail the command. References to variables
outside the known set are reported as warnings on stderr; with --strict they
fail the command too.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := opts.engine(cmd)
			if err != nil {
				return err
			}

			template, err := readTemplate(templatePath)
			if err != nil {
				return err
			}

			warnings, err := engine.Validate(template)
			if err != nil {
				var ve *slick.ValidationError
				if errors.As(err, &ve) && len(ve.Issues) == 1 && ve.Issues[0].Parse != nil {
					return locate(templatePath, template, ve.Issues[0].Parse)
				}
				return fmt.Errorf("%s: %w", templatePath, err)
			}

			for _, w := range warnings {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
			}
			if strict && len(warnings) > 0 {
				return fmt.Errorf("%d warning(s) in strict mode", len(warnings))
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Template is valid")
			return nil
		},
	}

	cmd.Flags().StringVarP(&templatePath, "template", "t", "", "Template file")
	cmd.Flags().BoolVar(&strict, "strict", false, "Treat warnings as errors")
	_ = cmd.MarkFlagRequired("template")

	return cmd
}
