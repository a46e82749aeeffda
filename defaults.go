package sciform

import (
	"sync"

	"github.com/sciform/sciform/internal/options"
	"github.com/sciform/sciform/render"
)

// Process-wide default options, layered between the factory defaults and
// each Formatter's own configuration. Guarded by defaultsMu; formatting
// takes a snapshot, so concurrent formatting never observes a partially
// applied update.
var (
	defaultsMu  sync.RWMutex
	defaultsCfg = &config{}
)

// SetDefaultOptions replaces the process-wide default options with the
// given ones, on top of the factory defaults.
func SetDefaultOptions(opts ...Option) error {
	cfg := &config{}
	if err := options.Apply(cfg, opts...); err != nil {
		return err
	}

	defaultsMu.Lock()
	defaultsCfg = cfg
	defaultsMu.Unlock()

	return nil
}

// ResetDefaultOptions restores the factory defaults.
func ResetDefaultOptions() {
	defaultsMu.Lock()
	defaultsCfg = &config{}
	defaultsMu.Unlock()
}

// OverrideDefaultOptions layers opts over the current process-wide
// defaults and returns a restore function that reinstates the previous
// defaults. Intended for scoped use:
//
//	restore, err := sciform.OverrideDefaultOptions(sciform.WithSigFigs(4))
//	if err != nil { ... }
//	defer restore()
func OverrideDefaultOptions(opts ...Option) (func(), error) {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()

	prev := defaultsCfg
	cfg := prev.clone()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}
	defaultsCfg = cfg

	return func() {
		defaultsMu.Lock()
		defaultsCfg = prev
		defaultsMu.Unlock()
	}, nil
}

// DefaultOptions returns the fully resolved options in effect for a
// Formatter built with no options: the factory defaults overlaid with the
// current process-wide defaults.
func DefaultOptions() (render.Options, error) {
	return resolve(nil)
}

// defaultsSnapshot returns the current process-wide defaults. The returned
// config is cloned so later registry updates cannot race with a formatting
// call that is still reading it.
func defaultsSnapshot() *config {
	defaultsMu.RLock()
	defer defaultsMu.RUnlock()

	return defaultsCfg.clone()
}

// resolve produces the fully populated options for one formatting call:
// factory defaults, then process defaults, then the formatter's own
// configuration.
func resolve(cfg *config) (render.Options, error) {
	o := render.DefaultOptions()
	defaultsSnapshot().overlay(&o)
	if cfg != nil {
		cfg.overlay(&o)
	}
	if err := o.Validate(); err != nil {
		return render.Options{}, err
	}

	return o, nil
}
