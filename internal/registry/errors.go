package registry

import (
	"errors"
	"fmt"
)

// ErrUnknownModule indicates no descriptors were registered under the
// requested module name.
var ErrUnknownModule = errors.New("registry: unknown module")

// ResolveError reports a failed resolution. Name is empty when the module
// itself could not be resolved.
type ResolveError struct {
	Module   string
	Name     string
	Category Category
	Err      error
}

func (e *ResolveError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("resolve %s from module %q: %v", e.Category, e.Module, e.Err)
	}
	return fmt.Sprintf("resolve %s %q from module %q: %v", e.Category, e.Name, e.Module, e.Err)
}

func (e *ResolveError) Unwrap() error {
	return e.Err
}
