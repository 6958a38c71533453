package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vango-dev/html5el/internal/errors"
	"github.com/vango-dev/html5el/pkg/document"
	"github.com/vango-dev/html5el/pkg/element"
)

// layoutFlags are the element layout overrides shared by render and tree.
type layoutFlags struct {
	indent     int
	singleLine bool
	format     string
}

func (f *layoutFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.indent, "indent", "i", -1, "Spaces per indentation level (default from html5el.json, else 4)")
	cmd.Flags().BoolVar(&f.singleLine, "single-line", false, "Set the single-line flag on every element")
	cmd.Flags().StringVarP(&f.format, "format", "f", "", "Description format when reading stdin: json, yaml or toml")
}

// load reads the description named by arg, "-" meaning stdin.
func (a *app) load(cmd *cobra.Command, arg string, f *layoutFlags) (*document.Document, error) {
	opts := document.Options{Defaults: a.cfg.ElementOptions()}
	if cmd.Flags().Changed("indent") {
		if f.indent < 0 {
			return nil, errors.New("E081").WithDetailf("--indent %d is negative", f.indent)
		}
		opts.Defaults = append(opts.Defaults, element.WithIndent(f.indent))
	}
	if f.singleLine {
		opts.Defaults = append(opts.Defaults, element.SingleLine())
	}

	if arg != "-" {
		a.logger.Debug("loading document", "path", arg)
		return document.Load(arg, opts)
	}

	if f.format == "" {
		return nil, errors.New("E081").
			WithDetail("reading from stdin needs a format").
			WithSuggestion("Pass --format json, yaml or toml")
	}
	format, err := document.ParseFormat(f.format)
	if err != nil {
		return nil, err
	}
	opts.File = "<stdin>"
	return document.Decode(cmd.InOrStdin(), format, opts)
}

func renderCmd(a *app) *cobra.Command {
	var (
		layout layoutFlags
		output string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render a document description to HTML",
		Long: `Render a JSON, YAML or TOML document description to HTML.

The output goes to stdout unless --output is given. Use "-" to read
the description from stdin.

Examples:
  html5el render page.yaml
  html5el render page.json -o page.html
  html5el render --indent 2 page.toml
  cat page.yaml | html5el render - --format yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.load(cmd, args[0], &layout)
			if err != nil {
				return err
			}

			if output == "" {
				_, err := doc.WriteTo(cmd.OutOrStdout())
				return err
			}

			if _, err := os.Stat(output); err == nil && !force {
				return errors.New("E080").
					WithDetail(output).
					WithSuggestion("Pass --force to overwrite it")
			}

			file, err := os.Create(output)
			if err != nil {
				return errors.FromError(err, "E082").WithDetail(output)
			}
			w := bufio.NewWriter(file)
			n, err := doc.WriteTo(w)
			if err == nil {
				err = w.Flush()
			}
			if cerr := file.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				return errors.FromError(err, "E082").WithDetail(output)
			}

			success(cmd.OutOrStdout(), "Wrote %s (%s, %d elements)", output, humanize.Bytes(uint64(n)), doc.Count())
			return nil
		},
	}

	layout.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the HTML to a file")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing output file")

	return cmd
}

func treeCmd(a *app) *cobra.Command {
	var layout layoutFlags

	cmd := &cobra.Command{
		Use:   "tree <file>",
		Short: "Print the element tree of a document description",
		Long: `Print the element tree of a document description: kinds, attributes
and text, one node per line.

Examples:
  html5el tree page.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.load(cmd, args[0], &layout)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), doc.Tree())
			return nil
		},
	}

	layout.register(cmd)

	return cmd
}
