package registry

import (
	"fmt"

	"lineshell/pkg/linetypes"
)

// Builder collects the declarations of one interpreter type. All
// registration is additive; there is no deletion. Builders are not safe
// for concurrent use — declaration happens at setup time, once.
type Builder struct {
	specs     map[string]linetypes.ActionSpec
	shortcuts map[string][]string
	aliases   map[string]string
	recovery  map[linetypes.ErrorKind]Recovery
	prompt    promptSource
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		specs:     make(map[string]linetypes.ActionSpec),
		shortcuts: make(map[string][]string),
		aliases:   make(map[string]string),
		recovery:  make(map[linetypes.ErrorKind]Recovery),
	}
}

// Register declares an action. Returns an error if the name is empty, the
// name is already taken, or the spec declares no body (or two bodies).
func (b *Builder) Register(name string, spec linetypes.ActionSpec) error {
	if name == "" {
		return fmt.Errorf("action name cannot be empty")
	}
	if _, exists := b.specs[name]; exists {
		return fmt.Errorf("action %s already registered", name)
	}
	if spec.Handler == nil && spec.Niladic == nil {
		return fmt.Errorf("action %s declares no handler", name)
	}
	if spec.Handler != nil && spec.Niladic != nil {
		return fmt.Errorf("action %s declares both handler arities", name)
	}

	b.specs[name] = spec
	return nil
}

// MustRegister is Register for setup-time wiring where a bad declaration
// is a programming error.
func (b *Builder) MustRegister(name string, spec linetypes.ActionSpec) {
	if err := b.Register(name, spec); err != nil {
		panic(fmt.Sprintf("failed to register action: %v", err))
	}
}

// Has reports whether an action name has been declared so far.
func (b *Builder) Has(name string) bool {
	_, exists := b.specs[name]
	return exists
}

// HasShortcut reports whether an alias has been declared so far.
func (b *Builder) HasShortcut(alias string) bool {
	_, exists := b.aliases[alias]
	return exists
}

// Doc attaches or replaces the one-line description of an action.
// Documenting an unknown name is a no-op.
func (b *Builder) Doc(name, text string) {
	spec, exists := b.specs[name]
	if !exists {
		return
	}
	spec.Doc = text
	b.specs[name] = spec
}

// Shortcut declares an alias for a canonical action name. The target is
// deliberately not validated here; a dangling target surfaces at lookup
// as "no such command". Re-declaring an alias repoints it.
func (b *Builder) Shortcut(alias, target string) {
	if alias == "" {
		return
	}
	if previous, exists := b.aliases[alias]; exists {
		b.shortcuts[previous] = removeString(b.shortcuts[previous], alias)
	}
	b.aliases[alias] = target
	b.shortcuts[target] = append(b.shortcuts[target], alias)
}

// OnError binds a recovery to an error kind. Later bindings for the same
// kind replace earlier ones.
func (b *Builder) OnError(kind linetypes.ErrorKind, rec Recovery) {
	b.recovery[kind] = rec
}

// Prompt sets a static prompt string.
func (b *Builder) Prompt(prompt string) {
	b.prompt = promptSource{static: prompt}
}

// PromptFunc sets a dynamic prompt source, evaluated once per read.
func (b *Builder) PromptFunc(fn linetypes.PromptFunc) {
	b.prompt = promptSource{fn: fn}
}

// Build produces the immutable Registry. The builder's maps are copied so
// further builder mutation cannot leak into a built registry.
func (b *Builder) Build() *Registry {
	specs := make(map[string]linetypes.ActionSpec, len(b.specs))
	for name, spec := range b.specs {
		specs[name] = spec
	}

	shortcuts := make(map[string][]string, len(b.shortcuts))
	for target, aliases := range b.shortcuts {
		if len(aliases) == 0 {
			continue
		}
		copied := make([]string, len(aliases))
		copy(copied, aliases)
		shortcuts[target] = copied
	}

	aliases := make(map[string]string, len(b.aliases))
	for alias, target := range b.aliases {
		aliases[alias] = target
	}

	recovery := make(map[linetypes.ErrorKind]Recovery, len(b.recovery))
	for kind, rec := range b.recovery {
		recovery[kind] = rec
	}

	return &Registry{
		specs:     specs,
		names:     sortedNames(specs),
		shortcuts: shortcuts,
		aliases:   aliases,
		recovery:  recovery,
		prompt:    b.prompt,
	}
}

func removeString(list []string, item string) []string {
	out := list[:0]
	for _, s := range list {
		if s != item {
			out = append(out, s)
		}
	}
	return out
}
