package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/bolasblack/monosync/internal/config"
	"github.com/bolasblack/monosync/internal/sync"
	"github.com/bolasblack/monosync/internal/transact"
	"github.com/bolasblack/monosync/internal/util"
)

// globalOptions are the persistent flags of the root command.
type globalOptions struct {
	verbose bool
	root    string
}

// rootDir returns the absolute repository root.
func (g *globalOptions) rootDir() (string, error) {
	if g.root == "" {
		return getCwd()
	}
	abs, err := filepath.Abs(g.root)
	if err != nil {
		return "", fmt.Errorf("invalid --root %q: %w", g.root, err)
	}
	return abs, nil
}

// newEnv creates the environment for a command run. When staged, writes go to
// the returned TransactFs instead of disk.
func (g *globalOptions) newEnv(cmd *cobra.Command, staged bool) (*util.Env, *transact.TransactFs) {
	var fs afero.Fs = afero.NewOsFs()
	var tfs *transact.TransactFs
	if staged {
		tfs = transact.New(transact.WithActualFs(fs))
		fs = tfs
	}
	return util.NewEnv(fs).WithLogger(util.NewLogger(cmd.ErrOrStderr(), g.verbose)), tfs
}

// passOptions are the flags shared by the commands that run a sync pass.
type passOptions struct {
	template  string
	configs   string
	configDir string
	dryRun    bool
	check     bool
}

func (o *passOptions) addTemplateFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.template, "template", "", "Path to package-template.json")
}

func (o *passOptions) addConfigsFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.configs, "configs", "", "Path to package-configs.json")
}

func (o *passOptions) addConfigDirFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.configDir, "config-dir", "", "Directory containing the template and configs files")
}

func (o *passOptions) addPlanFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.dryRun, "dry-run", false, "Show the changes without writing them")
	cmd.Flags().BoolVar(&o.check, "check", false, "Fail if any manifest would change (nothing is written)")
	cmd.MarkFlagsMutuallyExclusive("dry-run", "check")
}

func (o *passOptions) configOptions() config.Options {
	return config.Options{
		TemplatePath: o.template,
		ConfigsPath:  o.configs,
		ConfigDir:    o.configDir,
	}
}

// runPass runs one sync pass. In dry-run and check mode the pass writes to a
// staging filesystem and the pending changes are reported afterwards.
func runPass(cmd *cobra.Command, g *globalOptions, o *passOptions, pass func(*sync.SyncEnv, sync.Options) error) error {
	rootDir, err := g.rootDir()
	if err != nil {
		return err
	}

	staged := o.dryRun || o.check
	env, tfs := g.newEnv(cmd, staged)
	syncEnv := sync.NewSyncEnv(env, cmd.OutOrStdout())
	syncEnv.DryRun = staged

	opts := sync.Options{RootDir: rootDir, Config: o.configOptions()}
	passErr := pass(syncEnv, opts)
	if tfs == nil {
		return passErr
	}
	if passErr != nil && !errors.Is(passErr, sync.ErrPackagesFailed) {
		return passErr
	}
	if err := syncEnv.ReportPending(tfs, rootDir, o.check); err != nil {
		return errors.Join(passErr, err)
	}
	return passErr
}

// getCwd returns the current working directory or an error.
func getCwd() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}
	return cwd, nil
}
