package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mayura-ui/mayura/internal/version"
)

var (
	versionFormat   string
	versionShort    bool
	versionDetailed bool
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Display version information for mayura including:

- Semantic version number
- Git commit hash
- Build timestamp
- Go version used for compilation
- Target platform (OS/architecture)

Examples:
  mayura version               # Show version
  mayura version --detailed    # Show detailed version info
  mayura version --format json # Output as JSON`,
	RunE: runVersionCommand,
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().StringVarP(&versionFormat, "format", "f", "text", "Output format (text, json)")
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Show short version only")
	versionCmd.Flags().BoolVar(&versionDetailed, "detailed", false, "Show detailed version information")
}

func runVersionCommand(cmd *cobra.Command, args []string) error {
	info := version.Get()
	out := cmd.OutOrStdout()

	switch versionFormat {
	case "json":
		return outputVersionJSON(out, info)
	case "text":
		switch {
		case versionShort:
			fmt.Fprintln(out, info.Short())
		case versionDetailed:
			fmt.Fprintln(out, info.Detailed())
			if info.IsRelease() {
				fmt.Fprintln(out, "Build type: release")
			} else {
				fmt.Fprintln(out, "Build type: development")
			}
		default:
			fmt.Fprintln(out, info.String())
		}
		return nil
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json)", versionFormat)
	}
}

func outputVersionJSON(out io.Writer, info version.BuildInfo) error {
	jsonInfo := struct {
		version.BuildInfo
		IsRelease bool `json:"is_release"`
	}{info, info.IsRelease()}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(jsonInfo)
}
