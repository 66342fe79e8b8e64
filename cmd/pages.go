package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mayura-ui/mayura/internal/widgets/pagination"
)

var pagesCmd = &cobra.Command{
	Use:   "pages",
	Short: "Print the pagination window for a page",
	Long: `Print the page numbers a pagination control shows, with ellipses for
the gaps. The current page is bracketed.

Examples:
  mayura pages --current 6 --total 20         # 1 ... 5 [6] 7 ... 20
  mayura pages --current 1 --total 3          # [1] 2 3
  mayura pages --current 10 --total 20 -f json`,
	RunE: runPages,
}

var (
	pagesCurrent int
	pagesTotal   int
	pagesMax     int
	pagesFormat  string
)

func init() {
	rootCmd.AddCommand(pagesCmd)

	pagesCmd.Flags().IntVar(&pagesCurrent, "current", 1, "Current page (1-based)")
	pagesCmd.Flags().IntVar(&pagesTotal, "total", 10, "Total number of pages")
	pagesCmd.Flags().IntVar(&pagesMax, "max", pagination.DefaultMaxPageNumbers, "Page numbers shown around the current page")
	pagesCmd.Flags().StringVarP(&pagesFormat, "format", "f", "text", "Output format (text, json)")
}

// pageWindow is the JSON form of a window.
type pageWindow struct {
	Current int      `json:"current"`
	Total   int      `json:"total"`
	Items   []string `json:"items"`
}

func runPages(cmd *cobra.Command, args []string) error {
	if pagesTotal < 0 {
		return fmt.Errorf("--total must not be negative, got %d", pagesTotal)
	}
	if pagesTotal > 0 && (pagesCurrent < 1 || pagesCurrent > pagesTotal) {
		return fmt.Errorf("--current must be between 1 and %d, got %d", pagesTotal, pagesCurrent)
	}

	items := pagination.Window(pagesCurrent, pagesTotal, pagesMax)
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.String()
	}

	out := cmd.OutOrStdout()
	switch pagesFormat {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(pageWindow{Current: pagesCurrent, Total: pagesTotal, Items: labels})
	case "text":
		for i, item := range items {
			if !item.Ellipsis && item.Page == pagesCurrent {
				labels[i] = "[" + labels[i] + "]"
			}
		}
		fmt.Fprintln(out, strings.Join(labels, " "))
		return nil
	default:
		return ValidateFormatWithSuggestion(pagesFormat, []string{"text", "json"})
	}
}
