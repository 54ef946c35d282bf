package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// versionTemplate is used when the --version flag is invoked.
const versionTemplate = `{{printf "routerstat version %s\n" .Version}}`

// newVersionCmd creates the Cobra command for displaying the application version.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of routerstat",
		Long:  `Print the routerstat build version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "routerstat version %s\n", cmd.Root().Version)
		},
	}
}
