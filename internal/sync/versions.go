package sync

import (
	"fmt"

	"github.com/bolasblack/monosync/internal/discover"
	"github.com/bolasblack/monosync/internal/util"
	"github.com/bolasblack/monosync/internal/version"
)

// SyncVersions sets every discovered manifest's version to the root version,
// or to opts.Version when given. Manifests that fail are reported and left
// out of the results.
func (e *SyncEnv) SyncVersions(opts Options) ([]version.Result, error) {
	util.Tagged(e.Out, util.TagVersionSync, "Scanning for packages...")

	target := opts.Version
	if target != "" {
		if err := version.ValidateOverride(target); err != nil {
			return nil, err
		}
		util.Tagged(e.Out, util.TagVersionSync, "Target version (override): %s", target)
	} else {
		ver, err := version.SourceVersion(e.Env, opts.RootDir)
		if err != nil {
			return nil, err
		}
		target = ver
		util.Tagged(e.Out, util.TagVersionSync, "Target version (from root): %s", target)
	}

	var found discover.Result
	if opts.All {
		found = discover.All(e.Env, opts.RootDir)
	} else {
		found = discover.Packages(e.Env, opts.RootDir)
	}
	if len(found.Paths) == 0 {
		util.Tagged(e.Out, util.TagWarn, "No packages found")
	}

	results, failures := version.Sync(e.Env, e.Out, opts.RootDir, target, found.Paths)

	e.finishVersions(opts.RootDir, target, results, failures)
	if len(failures) > 0 {
		return results, fmt.Errorf("%d of %d: %w", len(failures), len(found.Paths), ErrPackagesFailed)
	}
	return results, nil
}
