// Package registry manages the declared action set of an interpreter type.
// A Builder collects actions, docstrings, shortcuts, recovery bindings and
// the prompt source at setup time; Build produces an immutable Registry
// that sessions read for the rest of their life.
package registry

import (
	"sort"

	"lineshell/pkg/linetypes"
)

// Registry holds the declared command surface of one interpreter type.
// It is read-only after construction and safe to share across sessions.
type Registry struct {
	specs     map[string]linetypes.ActionSpec
	names     []string
	shortcuts map[string][]string
	aliases   map[string]string
	recovery  map[linetypes.ErrorKind]Recovery
	prompt    promptSource
}

// Actions returns all registered action names sorted ascending.
// The returned slice is a copy and can be safely modified.
func (r *Registry) Actions() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

// Has reports whether name is a registered action.
func (r *Registry) Has(name string) bool {
	_, exists := r.specs[name]
	return exists
}

// Spec retrieves the declaration for an action by name. Returns the spec
// and true if found, or a zero spec and false otherwise.
func (r *Registry) Spec(name string) (linetypes.ActionSpec, bool) {
	spec, exists := r.specs[name]
	return spec, exists
}

// DocFor returns the one-line description of an action. The second return
// is false for undocumented actions.
func (r *Registry) DocFor(name string) (string, bool) {
	spec, exists := r.specs[name]
	if !exists || spec.Doc == "" {
		return "", false
	}
	return spec.Doc, true
}

// Documented returns the names of all documented actions sorted ascending.
func (r *Registry) Documented() []string {
	documented := make([]string, 0, len(r.names))
	for _, name := range r.names {
		if r.specs[name].Doc != "" {
			documented = append(documented, name)
		}
	}
	return documented
}

// Undocumented returns the names of all actions without a docstring,
// sorted ascending.
func (r *Registry) Undocumented() []string {
	undocumented := make([]string, 0, len(r.names))
	for _, name := range r.names {
		if r.specs[name].Doc == "" {
			undocumented = append(undocumented, name)
		}
	}
	return undocumented
}

// ShortcutsFor returns the aliases declared for an action, in declaration
// order. The result is nil when the action has no shortcuts.
func (r *Registry) ShortcutsFor(name string) []string {
	aliases := r.shortcuts[name]
	if len(aliases) == 0 {
		return nil
	}
	out := make([]string, len(aliases))
	copy(out, aliases)
	return out
}

// ShortcutTarget resolves an alias to its canonical action name. The
// target is not validated against the action set; a dangling target
// surfaces as "no such command" at dispatch.
func (r *Registry) ShortcutTarget(alias string) (string, bool) {
	target, exists := r.aliases[alias]
	return target, exists
}

// RecoveryFor returns the recovery binding for an error kind. Matching is
// exact-kind only; there is no kind hierarchy walk.
func (r *Registry) RecoveryFor(kind linetypes.ErrorKind) (Recovery, bool) {
	rec, exists := r.recovery[kind]
	return rec, exists
}

// CompleterFor returns the command-specific completion callback for an
// action, if one was declared.
func (r *Registry) CompleterFor(name string) (linetypes.CompleterFunc, bool) {
	spec, exists := r.specs[name]
	if !exists || spec.Completer == nil {
		return nil, false
	}
	return spec.Completer, true
}

// ResolvePrompt evaluates the prompt source. Dynamic sources are invoked
// once per call so they can observe live session state.
func (r *Registry) ResolvePrompt() string {
	if r.prompt.fn != nil {
		return r.prompt.fn()
	}
	if r.prompt.static != "" {
		return r.prompt.static
	}
	return "> "
}

func sortedNames(specs map[string]linetypes.ActionSpec) []string {
	names := make([]string, 0, len(specs))
	for name := range specs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
