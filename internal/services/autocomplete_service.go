package services

import (
	"sort"
	"strings"

	"lineshell/internal/registry"
	"lineshell/internal/resolver"
)

// AutoCompleteService computes tab-completion candidates for the current
// word of an input line. The line source calls Complete with the text
// before the cursor; candidates are full replacements for the trailing
// word.
type AutoCompleteService struct {
	reg         *registry.Registry
	res         *resolver.Resolver
	initialized bool
}

// NewAutoCompleteService creates a new AutoCompleteService instance.
func NewAutoCompleteService(reg *registry.Registry, res *resolver.Resolver) *AutoCompleteService {
	return &AutoCompleteService{
		reg: reg,
		res: res,
	}
}

// Name returns the service name "autocomplete" for registration.
func (a *AutoCompleteService) Name() string {
	return "autocomplete"
}

// Initialize sets up the AutoCompleteService for operation.
func (a *AutoCompleteService) Initialize() error {
	a.initialized = true
	return nil
}

// Complete returns candidates for the word under the cursor. While the
// command word is being typed, every action name with the typed prefix is
// a candidate (case-sensitive). Once the command word is complete,
// subcommand name segments are composed into the candidate set and a
// command-specific completion callback takes over if one is registered.
func (a *AutoCompleteService) Complete(text string) []string {
	if !a.initialized {
		return nil
	}

	trailingSpace := strings.HasSuffix(text, " ")
	fields := strings.Fields(text)

	switch {
	case len(fields) == 0:
		return a.reg.Actions()
	case len(fields) == 1 && !trailingSpace:
		return a.commandCandidates(fields[0])
	default:
		return a.argumentCandidates(fields, trailingSpace)
	}
}

// commandCandidates prefix-matches the typed partial against every
// registered action name. Registry order is already sorted.
func (a *AutoCompleteService) commandCandidates(partial string) []string {
	var out []string
	for _, name := range a.reg.Actions() {
		if strings.HasPrefix(name, partial) {
			out = append(out, name)
		}
	}
	return out
}

// argumentCandidates completes the word after the command: the next
// segment of any subcommand name, plus whatever the command-specific
// completer offers.
func (a *AutoCompleteService) argumentCandidates(fields []string, trailingSpace bool) []string {
	name, ok := a.res.Resolve(fields[0])
	if !ok {
		return nil
	}

	partial := ""
	if !trailingSpace {
		partial = fields[len(fields)-1]
	}

	seen := make(map[string]struct{})
	var out []string
	add := func(cand string) {
		if !strings.HasPrefix(cand, partial) {
			return
		}
		if _, dup := seen[cand]; dup {
			return
		}
		seen[cand] = struct{}{}
		out = append(out, cand)
	}

	for _, sub := range a.res.SubcommandsOf(name) {
		suffix := strings.TrimPrefix(sub, name+"_")
		add(strings.SplitN(suffix, "_", 2)[0])
	}

	if completer, ok := a.reg.CompleterFor(name); ok {
		for _, cand := range completer(partial) {
			add(cand)
		}
	}

	sort.Strings(out)
	return out
}
