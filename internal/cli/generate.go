package cli

import (
	"github.com/spf13/cobra"

	"github.com/bolasblack/monosync/internal/sync"
)

func newGenerateCmd(g *globalOptions) *cobra.Command {
	o := &passOptions{}
	var validate bool
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate package.json files from package configs and the template",
		Long: `Generate every package.json listed in package-configs.json.

Each manifest starts from the shared template, takes its name from the config
entry and its version from the root package.json, then has the entry's fields
merged in. Files are only rewritten when their content changes.`,
		Example: `  # Generate manifests using .monosync/package-configs.json
  monosync generate

  # Validate the configs first and only show what would change
  monosync generate --validate --dry-run

  # Keep both files in another directory
  monosync generate --config-dir tools/monosync`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPass(cmd, g, o, func(env *sync.SyncEnv, opts sync.Options) error {
				opts.Validate = validate
				_, err := env.GeneratePackages(opts)
				return err
			})
		},
	}
	o.addTemplateFlag(cmd)
	o.addConfigsFlags(cmd)
	o.addConfigDirFlag(cmd)
	o.addPlanFlags(cmd)
	cmd.Flags().BoolVar(&validate, "validate", false, "Validate package configs before generating")
	return cmd
}
