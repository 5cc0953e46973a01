package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"

	"github.com/benjaminschreck/go-slick/pkg/slick"
	"github.com/benjaminschreck/go-slick/pkg/slick/datafile"
)

func renderCmd(opts *options) *cobra.Command {
	var (
		templatePath string
		dataPath     string
		outputPath   string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a template with a data file",
		Long: `Render a template against a JSON, JSONC or YAML data file.

Missing variables render as their default or as empty text. Only template
syntax errors fail the command.

Examples:
  slick render -t sheet.typ -d data.json
  slick render -t sheet.typ -d data.yaml -o out.typ --escape typst`,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := opts.engine(cmd)
			if err != nil {
				return err
			}
			return runRender(cmd.OutOrStdout(), engine, templatePath, dataPath, outputPath)
		},
	}

	cmd.Flags().StringVarP(&templatePath, "template", "t", "", "Template file")
	cmd.Flags().StringVarP(&dataPath, "data", "d", "", "Data file (.json, .jsonc, .yaml, .yml)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write output to a file instead of stdout")
	_ = cmd.MarkFlagRequired("template")
	_ = cmd.MarkFlagRequired("data")

	return cmd
}

func runRender(out io.Writer, engine *slick.Engine, templatePath, dataPath, outputPath string) error {
	template, err := readTemplate(templatePath)
	if err != nil {
		return err
	}
	data, err := datafile.Load(dataPath)
	if err != nil {
		return err
	}

	rendered, err := engine.Render(template, data)
	if err != nil {
		return locate(templatePath, template, err)
	}

	if outputPath == "" {
		_, err := io.WriteString(out, rendered)
		return err
	}
	if err := atomic.WriteFile(outputPath, strings.NewReader(rendered)); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}
	fmt.Fprintf(out, "Rendered to: %s\n", outputPath)
	return nil
}

func readTemplate(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading template: %w", err)
	}
	return string(b), nil
}

// locate prefixes a parse error with file:line:column.
func locate(path, src string, err error) error {
	var pe *slick.ParseError
	if !errors.As(err, &pe) {
		return err
	}
	line, col := slick.LineColumn(src, pe.Position)
	return fmt.Errorf("%s:%d:%d: %w", path, line, col, err)
}
