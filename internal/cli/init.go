package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bolasblack/monosync/internal/config"
	"github.com/bolasblack/monosync/internal/discover"
	"github.com/bolasblack/monosync/internal/manifest"
	"github.com/bolasblack/monosync/internal/sync"
	"github.com/bolasblack/monosync/internal/transact"
	"github.com/bolasblack/monosync/internal/util"
)

// scaffoldFields are copied from existing packages into the configs scaffold.
var scaffoldFields = []string{"description", "main", "module", "types"}

func newInitCmd(g *globalOptions) *cobra.Command {
	var yes, dryRun bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create starter monosync configuration files",
		Long: `Create .monosync/package-template.json, .monosync/package-configs.json and
.monosyncrc.json in the repository root.

The template is prefilled from the root package.json and the configs file
lists the packages found in the workspace. Existing files are never
overwritten.`,
		Example: `  # Pick the starter files interactively
  monosync init

  # Create every missing file without prompting
  monosync init --yes`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, g, yes, dryRun)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Create every missing file without prompting")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show the files without writing them")
	return cmd
}

func runInit(cmd *cobra.Command, g *globalOptions, yes, dryRun bool) error {
	rootDir, err := g.rootDir()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	// Stage every write so nothing lands on disk before all scaffolds are generated
	env, _ := g.newEnv(cmd, false)
	tfs := transact.New(transact.WithActualFs(env.Fs))
	staged := util.NewEnv(tfs).WithLogger(env.Log)

	var missing []config.Scaffold
	for _, s := range config.AllScaffolds {
		if exists, _ := afero.Exists(env.Fs, filepath.Join(rootDir, s.RelPath())); exists {
			util.Tagged(out, util.TagWarn, "%s already exists, skipping", s.RelPath())
			continue
		}
		missing = append(missing, s)
	}
	if len(missing) == 0 {
		util.Tagged(out, util.TagSuccess, "Nothing to do")
		return nil
	}

	selected := missing
	if !yes && term.IsTerminal(int(os.Stdin.Fd())) {
		if selected, err = promptScaffolds(missing); err != nil {
			return err
		}
	}

	input := scaffoldInput(staged, rootDir)
	for _, s := range selected {
		content, err := config.GenerateScaffold(s, input)
		if err != nil {
			return fmt.Errorf("failed to generate %s: %w", s.RelPath(), err)
		}
		if err := config.WriteScaffold(tfs, filepath.Join(rootDir, s.RelPath()), content); err != nil {
			if errors.Is(err, config.ErrScaffoldExists) {
				continue
			}
			return fmt.Errorf("failed to write %s: %w", s.RelPath(), err)
		}
	}

	if dryRun {
		syncEnv := sync.NewSyncEnv(staged, out)
		syncEnv.DryRun = true
		return syncEnv.ReportPending(tfs, rootDir, false)
	}

	return commitScaffolds(tfs, out, rootDir)
}

func commitScaffolds(tfs *transact.TransactFs, out io.Writer, rootDir string) error {
	result, err := tfs.Commit(func(ctx transact.CommitContext) error {
		return transact.ExecuteOps(ctx.BaseFs, ctx.Ops)
	})
	if err != nil {
		return fmt.Errorf("failed to commit changes: %w", err)
	}
	for _, op := range result.Ops {
		rel, _ := filepath.Rel(rootDir, op.Path)
		util.ProgressDone(out, "Created %s\n", rel)
	}
	util.Progress(out, "Edit these files, then run 'monosync generate' or 'monosync sync'.\n")
	return nil
}

func promptScaffolds(missing []config.Scaffold) ([]config.Scaffold, error) {
	options := make([]huh.Option[config.Scaffold], 0, len(missing))
	for _, s := range missing {
		options = append(options, huh.NewOption(s.RelPath()+" - "+s.Description(), s).Selected(true))
	}

	var selected []config.Scaffold
	err := huh.NewMultiSelect[config.Scaffold]().
		Title("Select the files to create").
		Options(options...).
		Value(&selected).
		Run()
	if err != nil {
		return nil, fmt.Errorf("selection cancelled: %w", err)
	}
	return selected, nil
}

// scaffoldInput collects what the scaffolds are prefilled from: the root
// manifest and the packages the workspace already has.
func scaffoldInput(env *util.Env, rootDir string) config.ScaffoldInput {
	var input config.ScaffoldInput
	if f, err := manifest.ReadFile(env.Fs, discover.RootManifest(rootDir)); err == nil {
		input.Root = f.Manifest
	} else {
		env.Log.Debug("no usable root manifest", "error", err)
	}

	for _, path := range discover.Packages(env, rootDir).Paths {
		dir, err := filepath.Rel(rootDir, filepath.Dir(path))
		if err != nil {
			continue
		}
		cfg := config.PackageConfig{Name: filepath.ToSlash(dir), Directory: dir, Fields: manifest.NewObject()}
		if f, err := manifest.ReadFile(env.Fs, path); err == nil {
			if name := f.Manifest.Name(); name != "" {
				cfg.Name = name
			}
			for _, field := range scaffoldFields {
				if v, ok := f.Manifest.Get(field); ok {
					cfg.Fields.Set(field, manifest.CloneValue(v))
				}
			}
		}
		input.Packages = append(input.Packages, cfg)
	}
	return input
}
