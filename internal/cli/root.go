package cli

import (
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	ConfigPath string
}

// NewRootCommand creates the root command for the ijkvectors tool.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "ijkvectors",
		Short: "IJK coordinate reference vectors",
		Long: `Generate reference tables for the IJK coordinate transforms
(aperture 7 up/down, aperture 3 down, 60 degree rotations, hex2d) over a
disk of lattice points around the origin.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to YAML config (defaults to $CONFIG_PATH)")

	cmd.AddCommand(NewGenerateCommand(opts))

	return cmd
}
