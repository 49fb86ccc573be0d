package cli

import (
	"github.com/spf13/cobra"

	"github.com/bolasblack/monosync/internal/sync"
)

func newVersionsCmd(g *globalOptions) *cobra.Command {
	o := &passOptions{}
	var target string
	var all bool
	cmd := &cobra.Command{
		Use:   "versions",
		Short: "Set every package version to the root version",
		Long: `Copy the version of the root package.json into every workspace package.

Versions are compared as plain strings; packages already at the target
version are not rewritten. Use --version to set an explicit version instead
and --all to update every package.json in the repository.`,
		Example: `  # Copy the root package.json version into every workspace package
  monosync versions

  # Bump everything to an explicit version
  monosync versions --version 2.1.0

  # Include every package.json in the repository, not only workspace members
  monosync versions --all --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPass(cmd, g, o, func(env *sync.SyncEnv, opts sync.Options) error {
				opts.Version = target
				opts.All = all
				_, err := env.SyncVersions(opts)
				return err
			})
		},
	}
	cmd.Flags().StringVar(&target, "version", "", "Target version (default: the root package.json version)")
	cmd.Flags().BoolVar(&all, "all", false, "Update every package.json below the root, not only workspace packages")
	o.addPlanFlags(cmd)
	return cmd
}
