// Command ppvcat builds catalogs of PPV structure properties.
//
//	ppvcat build --structures s.yaml --metadata md.yaml --format csv
//	ppvcat fields
//	ppvcat version
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at link time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "ppvcat",
		Short: "Catalog properties of structures in PPV cubes",
		Long: `ppvcat computes moment-based properties (flux, luminosity, sizes,
velocity dispersion, position angle) of structures extracted from
position-position-velocity cubes.

Commands:
  build     Compute a catalog from structure and metadata files
  fields    List the quantities a catalog can contain`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newBuildCommand())
	root.AddCommand(newFieldsCommand())
	root.AddCommand(newVersionCommand())

	return root
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ppvcat %s\n", version)
		},
	}
}
