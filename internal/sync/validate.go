package sync

import (
	"errors"

	"github.com/bolasblack/monosync/internal/config"
	"github.com/bolasblack/monosync/internal/util"
)

// ValidatePackages checks the package configurations against the repository
// and reports every problem found.
func (e *SyncEnv) ValidatePackages(opts Options) error {
	util.Tagged(e.Out, util.TagPackageSync, "Validating package structure...")

	path, err := config.Resolve(e.Env, config.KindConfigs, opts.RootDir, opts.Config)
	if err != nil {
		return err
	}
	configs, err := config.LoadConfigs(e.Env, path)
	if err != nil {
		return err
	}

	if err := config.Validate(e.Env, opts.RootDir, configs); err != nil {
		var vErr *config.ValidationError
		if errors.As(err, &vErr) {
			for _, p := range vErr.Problems {
				util.Tagged(e.Out, util.TagError, "%s", p)
			}
		}
		return err
	}

	util.Tagged(e.Out, util.TagSuccess, "Package structure validation passed (%d packages)", len(configs.Packages))
	return nil
}
