package sync

import (
	"errors"

	"github.com/bolasblack/monosync/internal/config"
	"github.com/bolasblack/monosync/internal/manifest"
	"github.com/bolasblack/monosync/internal/util"
)

// loadOptionalTemplate resolves and loads the template. A template that cannot
// be found, or that fails to load without having been asked for explicitly,
// yields a nil template and a warning. An explicit path that does not exist or
// does not load is fatal. The returned path is empty when no template is used.
func (e *SyncEnv) loadOptionalTemplate(opts Options, fallback string) (*manifest.Manifest, string, error) {
	path, err := config.Resolve(e.Env, config.KindTemplate, opts.RootDir, opts.Config)
	if err != nil {
		if errors.Is(err, config.ErrNotFound) {
			util.Tagged(e.Out, util.TagWarn, "No template found; %s", fallback)
			e.Log.Debug("template lookup failed", "error", err)
			return nil, "", nil
		}
		return nil, "", err
	}

	tmpl, err := config.LoadTemplate(e.Env, path)
	if err != nil {
		if opts.Config.TemplatePath != "" {
			return nil, "", err
		}
		util.Tagged(e.Out, util.TagWarn, "Ignoring template %s: %v; %s", e.rel(opts.RootDir, path), err, fallback)
		return nil, "", nil
	}
	return tmpl, path, nil
}
