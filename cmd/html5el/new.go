package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/html5el/internal/errors"
	"github.com/vango-dev/html5el/pkg/document"
)

func newCmd(a *app) *cobra.Command {
	var (
		title string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "new <file>",
		Short: "Write a skeleton document description",
		Long: `Write a skeleton HTML5 document description: doctype, html, head
with charset and title, and an empty body.

The format follows the file extension (.json, .yaml, .yml, .toml).

Examples:
  html5el new index.yaml
  html5el new about.json --title "About us"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			format, err := document.FormatFromPath(path)
			if err != nil {
				return err
			}

			if _, err := os.Stat(path); err == nil && !force {
				return errors.New("E080").
					WithDetail(path).
					WithSuggestion("Pass --force to overwrite it")
			}

			if title == "" {
				base := filepath.Base(path)
				title = strings.TrimSuffix(base, filepath.Ext(base))
			}

			if dir := filepath.Dir(path); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return errors.FromError(err, "E082").WithDetail(path)
				}
			}
			file, err := os.Create(path)
			if err != nil {
				return errors.FromError(err, "E082").WithDetail(path)
			}
			err = document.Encode(file, document.Skeleton(title), format)
			if cerr := file.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				return errors.FromError(err, "E082").WithDetail(path)
			}

			a.logger.Debug("skeleton written", "path", path, "format", format)
			success(cmd.OutOrStdout(), "Created %s", path)
			info(cmd.OutOrStdout(), "Render it with: html5el render %s", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Document title (default: the file name)")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	return cmd
}
