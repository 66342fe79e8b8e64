package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mayura-ui/mayura/internal/registry"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"l"},
	Short:   "List all widgets",
	Long: `List the widgets in the catalogue with their category and description.

Examples:
  mayura list                     # Table output
  mayura list -f json             # Output as JSON
  mayura list -p -f yaml          # Include documented props, as YAML
  mayura list -c overlay          # Only the overlay widgets`,
	RunE: runList,
}

var (
	listFlags     *StandardFlags
	listWithProps bool
	listCategory  string
)

func init() {
	rootCmd.AddCommand(listCmd)

	listFlags = AddStandardFlags(listCmd, "output")

	listCmd.Flags().BoolVarP(&listWithProps, "with-props", "p", false, "Include documented props")
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "Only list widgets of this category")

	AddFlagValidation(listCmd, "format", func(format string) error {
		return ValidateFormatWithSuggestion(format, outputFormats)
	})
}

func runList(cmd *cobra.Command, args []string) error {
	if err := listFlags.ValidateFlags(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	reg := registry.Builtin()
	components := reg.GetAll()
	if listCategory != "" {
		groups := reg.ByCategory()
		var ok bool
		if components, ok = groups[listCategory]; !ok {
			categories := make([]string, 0, len(groups))
			for c := range groups {
				categories = append(categories, c)
			}
			return fmt.Errorf("unknown category %q (have %s)", listCategory, strings.Join(categories, ", "))
		}
	}

	out := cmd.OutOrStdout()
	if listFlags.Quiet {
		for _, c := range components {
			fmt.Fprintln(out, c.Name)
		}
		return nil
	}

	if !listWithProps {
		trimmed := make([]*registry.ComponentInfo, len(components))
		for i, c := range components {
			cp := *c
			cp.Props = nil
			cp.Examples = nil
			trimmed[i] = &cp
		}
		components = trimmed
	}

	switch strings.ToLower(listFlags.Format) {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(components)
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(components); err != nil {
			return err
		}
		return enc.Close()
	default:
		return outputTable(out, components)
	}
}

func outputTable(out io.Writer, components []*registry.ComponentInfo) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCATEGORY\tDESCRIPTION")
	for _, c := range components {
		fmt.Fprintf(w, "%s\t%s\t%s\n", c.Name, c.Category, c.Description)
		if listWithProps {
			for _, p := range c.Props {
				def := p.Default
				if def != "" {
					def = " = " + def
				}
				fmt.Fprintf(w, "  %s\t%s%s\t%s\n", p.Name, p.Type, def, p.Description)
			}
		}
	}
	return w.Flush()
}
