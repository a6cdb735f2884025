package config

import (
	"fmt"
	"strings"
	"sync"

	"uzbekistan/internal/division"
)

// enabledSlot is a single-entry cache for a derived enabled set. The slot is
// keyed by the originating Config pointer; resolving against a different
// Config recomputes and replaces the entry. Recomputation is idempotent and
// side-effect-free, so concurrent refills are harmless.
type enabledSlot struct {
	cfg *Config
	set map[string]struct{}
}

var (
	enabledMu  sync.RWMutex
	modelsSlot enabledSlot
	viewsSlot  enabledSlot
)

// EnabledModels returns the set of lower-case model names whose flag in the
// [models] table is true. The result is memoized process-wide; mutate the
// configuration only after calling InvalidateEnabledSets, and do not modify
// the returned map.
func EnabledModels(cfg *Config) map[string]struct{} {
	return resolveEnabled(cfg, &modelsSlot, func() map[string]bool { return cfg.Models })
}

// EnabledViews returns the set of lower-case view names whose flag in the
// [views] table is true, with the same memoization contract as EnabledModels.
func EnabledViews(cfg *Config) map[string]struct{} {
	return resolveEnabled(cfg, &viewsSlot, func() map[string]bool { return cfg.Views })
}

// InvalidateEnabledSets clears the memoized enabled sets. Tests and any code
// that mutates configuration at runtime must call this between mutations;
// nothing invalidates the slots automatically.
func InvalidateEnabledSets() {
	enabledMu.Lock()
	defer enabledMu.Unlock()
	modelsSlot = enabledSlot{}
	viewsSlot = enabledSlot{}
}

func resolveEnabled(cfg *Config, slot *enabledSlot, table func() map[string]bool) map[string]struct{} {
	enabledMu.RLock()
	if slot.cfg == cfg && slot.set != nil {
		set := slot.set
		enabledMu.RUnlock()
		return set
	}
	enabledMu.RUnlock()

	enabledMu.Lock()
	defer enabledMu.Unlock()
	if slot.cfg == cfg && slot.set != nil {
		return slot.set
	}
	set := make(map[string]struct{})
	for name, enabled := range table() {
		if !enabled {
			continue
		}
		set[strings.ToLower(name)] = struct{}{}
	}
	*slot = enabledSlot{cfg: cfg, set: set}
	return set
}

// ModelEnabled reports whether the named model is enabled in cfg.
func ModelEnabled(cfg *Config, name string) bool {
	_, ok := EnabledModels(cfg)[strings.ToLower(name)]
	return ok
}

// ViewEnabled reports whether the named view is enabled in cfg.
func ViewEnabled(cfg *Config, name string) bool {
	_, ok := EnabledViews(cfg)[strings.ToLower(name)]
	return ok
}

// CheckModelEnabled returns an error when the entity, or one of the parent
// entities it depends on, is not enabled in cfg. Serving or populating a
// division level requires its whole ancestry to be switched on.
func CheckModelEnabled(cfg *Config, entity division.Entity) error {
	if !entity.Valid() {
		return fmt.Errorf("unknown entity %q", entity)
	}
	if !ModelEnabled(cfg, entity.String()) {
		return fmt.Errorf("model %q is not enabled in the [models] configuration table", entity)
	}
	for _, dep := range entity.Dependencies() {
		if !ModelEnabled(cfg, dep.String()) {
			return fmt.Errorf("model %q requires the %q model to be enabled in the [models] configuration table", entity, dep)
		}
	}
	return nil
}
