package cli

import (
	"github.com/spf13/cobra"

	"github.com/bolasblack/monosync/internal/sync"
)

func newSyncCmd(g *globalOptions) *cobra.Command {
	o := &passOptions{}
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Reorder package.json fields across the workspace",
		Long: `Reorder the fields of every workspace package.json into the canonical order.

Packages are discovered from pnpm-workspace.yaml (or the root "workspaces"
field); without a declaration the packages, apps, libs, modules, services,
tools and examples directories are scanned. When a template is found, common
fields a package is missing (repository, homepage, bugs, author, engines,
license) are copied from it.`,
		Example: `  # Reorder every workspace package.json
  monosync sync

  # Preview the changes, or fail in CI when a manifest is out of order
  monosync sync --dry-run
  monosync sync --check

  # Fill missing common fields from a specific template
  monosync sync --template config/package-template.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPass(cmd, g, o, func(env *sync.SyncEnv, opts sync.Options) error {
				_, err := env.ReorderPackages(opts)
				return err
			})
		},
	}
	o.addTemplateFlag(cmd)
	o.addConfigDirFlag(cmd)
	o.addPlanFlags(cmd)
	return cmd
}
