package registry

import (
	"sort"
	"sync"

	"uzbekistan/internal/config"
	"uzbekistan/internal/division"
)

// Category selects which enabled-item set gates resolution.
type Category string

const (
	// CategoryViews gates on the [views] table and cross-checks [models].
	CategoryViews Category = "views"
	// CategoryModels gates on the [models] table alone.
	CategoryModels Category = "models"
)

// Descriptor declares an endpoint owned by a data model. Descriptors are
// registered once at startup; Resolve decides per configuration which of
// them are active.
type Descriptor struct {
	// Name is the lower-case item name matched against the enabled sets.
	Name string
	// Model is the data model the endpoint serves. A descriptor with a zero
	// Model is never yielded.
	Model division.Entity
	// Path is the HTTP route the endpoint mounts at.
	Path string
	// RouteName labels the endpoint for logs and diagnostics.
	RouteName string
	// Check optionally vetoes the descriptor against the live configuration.
	// A non-nil error is unexpected and aborts the whole resolution.
	Check func(cfg *config.Config) error
}

var (
	modulesMu sync.RWMutex
	modules   = map[string][]Descriptor{}
)

// Register adds descriptors under a module name. Registering the same module
// again appends; names are expected to be unique within a module.
func Register(module string, descs ...Descriptor) {
	modulesMu.Lock()
	defer modulesMu.Unlock()
	modules[module] = append(modules[module], descs...)
}

// Reset drops all registered modules. Tests only.
func Reset() {
	modulesMu.Lock()
	defer modulesMu.Unlock()
	modules = map[string][]Descriptor{}
}

func lookupModule(module string) ([]Descriptor, bool) {
	modulesMu.RLock()
	defer modulesMu.RUnlock()
	descs, ok := modules[module]
	return descs, ok
}

// Resolve returns the descriptors from the named module that are active under
// cfg for the given category, in deterministic name order.
//
// The category picks the gating set: views resolve against the enabled-view
// set, anything else against the enabled-model set. An empty gating set
// short-circuits to an empty result. Each enabled item then passes through
// the skip predicates in order; the first that trips drops the item silently.
// A view is therefore never yielded for a disabled model even when the view
// flag itself is true.
func Resolve(cfg *config.Config, module string, category Category) ([]Descriptor, error) {
	descs, ok := lookupModule(module)
	if !ok {
		return nil, &ResolveError{Module: module, Category: category, Err: ErrUnknownModule}
	}

	enabledItems := config.EnabledModels(cfg)
	if category == CategoryViews {
		enabledItems = config.EnabledViews(cfg)
	}
	if len(enabledItems) == 0 {
		return nil, nil
	}
	enabledModels := config.EnabledModels(cfg)

	byName := make(map[string]Descriptor, len(descs))
	for _, desc := range descs {
		byName[desc.Name] = desc
	}

	items := make([]string, 0, len(enabledItems))
	for item := range enabledItems {
		items = append(items, item)
	}
	sort.Strings(items)

	var resolved []Descriptor
	for _, item := range items {
		desc, registered := byName[item]
		skipped, err := shouldSkip(cfg, desc, registered, category, enabledModels)
		if err != nil {
			return nil, &ResolveError{Module: module, Name: item, Category: category, Err: err}
		}
		if skipped {
			continue
		}
		resolved = append(resolved, desc)
	}
	return resolved, nil
}

// skipPredicate names one reason an enabled item is dropped without error.
type skipPredicate struct {
	name string
	trip func(in skipInput) (bool, error)
}

type skipInput struct {
	cfg           *config.Config
	desc          Descriptor
	registered    bool
	category      Category
	enabledModels map[string]struct{}
}

// skipPredicates run in order; the first that trips wins. Keeping them as a
// named list makes the filtering chain auditable and testable one rule at a
// time.
var skipPredicates = []skipPredicate{
	{name: "unregistered", trip: func(in skipInput) (bool, error) {
		return !in.registered, nil
	}},
	{name: "no_model", trip: func(in skipInput) (bool, error) {
		return !in.desc.Model.Valid(), nil
	}},
	{name: "model_disabled", trip: func(in skipInput) (bool, error) {
		_, ok := in.enabledModels[in.desc.Model.String()]
		return !ok, nil
	}},
	// Re-verify view membership right before yielding. Redundant with the
	// gating set, but guards against the memoized sets going stale
	// mid-resolution.
	{name: "view_recheck", trip: func(in skipInput) (bool, error) {
		if in.category != CategoryViews {
			return false, nil
		}
		return !config.ViewEnabled(in.cfg, in.desc.Name), nil
	}},
	{name: "check_hook", trip: func(in skipInput) (bool, error) {
		if in.desc.Check == nil {
			return false, nil
		}
		return false, in.desc.Check(in.cfg)
	}},
}

func shouldSkip(cfg *config.Config, desc Descriptor, registered bool, category Category, enabledModels map[string]struct{}) (bool, error) {
	in := skipInput{cfg: cfg, desc: desc, registered: registered, category: category, enabledModels: enabledModels}
	for _, predicate := range skipPredicates {
		tripped, err := predicate.trip(in)
		if err != nil {
			return false, err
		}
		if tripped {
			return true, nil
		}
	}
	return false, nil
}
