package main

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vango-dev/html5el/internal/errors"
	"github.com/vango-dev/html5el/pkg/element"
	"github.com/vango-dev/html5el/pkg/tags"
)

func kindsCmd() *cobra.Command {
	var (
		voidOnly bool
		long     bool
	)

	cmd := &cobra.Command{
		Use:   "kinds",
		Short: "List the element kinds",
		Long: `List every registered element kind with its open and close tag.

Examples:
  html5el kinds
  html5el kinds --void
  html5el kinds --long`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds := tags.Kinds()
			if voidOnly {
				kinds = tags.VoidKinds()
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, kind := range kinds {
				def, _ := tags.Lookup(kind)
				if long {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", kind, def.Open, def.Close, def.Doc)
				} else {
					fmt.Fprintf(tw, "%s\t%s\t%s\n", kind, def.Open, def.Close)
				}
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&voidOnly, "void", false, "List only kinds without a close tag")
	cmd.Flags().BoolVarP(&long, "long", "l", false, "Include the description of each kind")

	return cmd
}

// helpCmd replaces cobra's help command: it describes element kinds and
// falls back to command help.
func helpCmd(root *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:   "help [kind | command]",
		Short: "Describe an element kind or a command",
		Long: `Describe an element kind, or show the help of a command.

Examples:
  html5el help paragraph
  html5el help render`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return root.Help()
			}

			if tags.Has(args[0]) {
				e, err := element.New(args[0])
				if err != nil {
					return err
				}
				def, _ := tags.Lookup(args[0])
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s%s\n", args[0], def.Open, def.Close)
				info(cmd.OutOrStdout(), "%s", e.Help())
				return nil
			}

			if sub, _, err := root.Find(args); err == nil && sub != root {
				return sub.Help()
			}

			_, err := element.New(args[0])
			return err
		},
	}
}

func explainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explain [CODE]",
		Short: "Explain an error code",
		Long: `Explain an error code, or list all codes.

Examples:
  html5el explain
  html5el explain E002`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				codes := errors.GetAllCodes()
				sort.Strings(codes)
				tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
				for _, code := range codes {
					t, _ := errors.GetTemplate(code)
					fmt.Fprintf(tw, "%s\t%s\t%s\n", code, t.Category, t.Message)
				}
				return tw.Flush()
			}

			t, ok := errors.GetTemplate(args[0])
			if !ok {
				return errors.New("E081").
					WithDetailf("unknown error code %q", args[0]).
					WithSuggestion("Run 'html5el explain' to list the codes")
			}
			fmt.Fprintf(out, "%s: %s (%s)\n\n", args[0], t.Message, t.Category)
			fmt.Fprintln(out, t.Detail)
			return nil
		},
	}
}
