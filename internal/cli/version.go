package cli

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/evanacox/cascade/internal/configloader"
)

// newVersionCommand reports what this build of the compiler is and can do:
// version provenance, the host platform it targets by default, and the
// output forms -e/--emit accepts.
func newVersionCommand(info BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and build information",
		Long: `Print the cascadec version, its build provenance, and the output
forms this build can emit.`,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "cascadec %s (%s/%s)\n", info.Version, runtime.GOOS, runtime.GOARCH)

			if info.Commit != "" {
				fmt.Fprintf(out, "  commit: %s\n", info.Commit)
			}

			if info.Date != "" {
				fmt.Fprintf(out, "  built:  %s\n", info.Date)
			}

			fmt.Fprintf(out, "  emit:   %s\n", strings.Join(configloader.EmitForms(), ", "))
		},
	}
}
