package cli

import (
	"github.com/spf13/cobra"

	"github.com/bolasblack/monosync/internal/sync"
)

func newValidateCmd(g *globalOptions) *cobra.Command {
	o := &passOptions{}
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate package configs against the repository",
		Long: `Check every entry of package-configs.json: its directory must be set and
exist, and it must declare a description and the main, module and types entry
points. All problems are reported at once.`,
		Example: `  # Check package-configs.json before a release
  monosync validate

  # Validate a configs file outside the usual locations
  monosync validate --configs build/package-configs.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPass(cmd, g, o, func(env *sync.SyncEnv, opts sync.Options) error {
				return env.ValidatePackages(opts)
			})
		},
	}
	o.addConfigsFlags(cmd)
	o.addConfigDirFlag(cmd)
	return cmd
}
