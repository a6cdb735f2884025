// Package registry resolves which endpoint descriptors are active for a given
// configuration.
//
// Instead of deriving symbol names at runtime, packages register explicit
// Descriptors under a module name at startup; Resolve then walks the enabled
// item set and applies an ordered list of named skip predicates before
// yielding a descriptor. An item that is well-formed but disabled, missing
// from the module, or detached from its data model is skipped silently; that
// is policy, not an error. Resolving an unknown module, or a descriptor
// gate failing unexpectedly, is a ResolveError carrying module, descriptor,
// and category context.
package registry
