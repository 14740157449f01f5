// Package resolver turns raw input tokens into canonical action names.
// It resolves through the priority chain shortcut → exact → unique
// abbreviation, and owns the derived abbreviation and subcommand tables.
package resolver

import (
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"lineshell/internal/logger"
	"lineshell/internal/registry"
)

// Resolver resolves input tokens against one registry snapshot. The
// derived tables are pure functions of the action list, computed lazily
// once and memoized — consistent with the registry being immutable.
type Resolver struct {
	reg    *registry.Registry
	logger *log.Logger

	abbrOnce sync.Once
	abbr     map[string]string

	subOnce sync.Once
	subs    map[string][]string
}

// New creates a resolver over the given registry.
func New(reg *registry.Registry) *Resolver {
	return &Resolver{
		reg:    reg,
		logger: logger.NewStyledLogger("Resolver"),
	}
}

// Resolve maps a token to a canonical action name.
// Priority: shortcut alias → exact name → unique abbreviation.
// The boolean is false when the token is unknown or an ambiguous prefix;
// ambiguity is not an error, the token is simply unresolved.
func (r *Resolver) Resolve(token string) (string, bool) {
	if target, ok := r.reg.ShortcutTarget(token); ok {
		r.logger.Debug("resolved shortcut", "token", token, "command", target)
		return target, true
	}

	if r.reg.Has(token) {
		return token, true
	}

	if name, ok := r.abbreviations()[token]; ok {
		r.logger.Debug("resolved abbreviation", "token", token, "command", name)
		return name, true
	}

	return "", false
}

// abbreviations returns the memoized table of every unique strict prefix
// of every action name. A prefix shared by two or more action names, or
// one that is itself an action name, is absent from the table.
func (r *Resolver) abbreviations() map[string]string {
	r.abbrOnce.Do(func() {
		counts := make(map[string]int)
		table := make(map[string]string)

		for _, name := range r.reg.Actions() {
			for i := 1; i < len(name); i++ {
				prefix := name[:i]
				counts[prefix]++
				table[prefix] = name
			}
		}

		for prefix, n := range counts {
			// Exact names shadow their own prefix entry; they resolve in
			// the exact-match step, never via the table.
			if n > 1 || r.reg.Has(prefix) {
				delete(table, prefix)
			}
		}

		r.abbr = table
	})
	return r.abbr
}

// subcommands returns the memoized subcommand index. Parents are the
// actions whose names carry no underscore; an underscored action belongs
// to parent P iff its name starts with "P_".
func (r *Resolver) subcommands() map[string][]string {
	r.subOnce.Do(func() {
		names := r.reg.Actions()

		parents := make([]string, 0, len(names))
		for _, name := range names {
			if !strings.Contains(name, "_") {
				parents = append(parents, name)
			}
		}

		subs := make(map[string][]string)
		for _, name := range names {
			if !strings.Contains(name, "_") {
				continue
			}
			for _, parent := range parents {
				if strings.HasPrefix(name, parent+"_") {
					subs[parent] = append(subs[parent], name)
				}
			}
		}

		for parent := range subs {
			sort.Strings(subs[parent])
		}

		r.subs = subs
	})
	return r.subs
}

// SubcommandsOf returns the subcommand names of a parent action, sorted
// ascending. The result is nil for actions without subcommands.
func (r *Resolver) SubcommandsOf(parent string) []string {
	subs := r.subcommands()[parent]
	if len(subs) == 0 {
		return nil
	}
	out := make([]string, len(subs))
	copy(out, subs)
	return out
}

// HasSubcommands reports whether the action has any subcommands.
func (r *Resolver) HasSubcommands(parent string) bool {
	return len(r.subcommands()[parent]) > 0
}

// FindSubcommandInArgs matches the leading tokens of an input line against
// a candidate subcommand set. Every prefix-join of 1..N leading tokens
// (underscore-separated) is intersected with the candidates and the
// lexicographically maximal match wins. The lexicographic tie-break is a
// faithful reproduction of the original contract; do not replace it with
// a longest-match rule.
func (r *Resolver) FindSubcommandInArgs(candidates []string, tokens []string) (string, bool) {
	set := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		set[c] = struct{}{}
	}

	best := ""
	join := ""
	for i, token := range tokens {
		if i == 0 {
			join = token
		} else {
			join += "_" + token
		}
		if _, ok := set[join]; ok && join > best {
			best = join
		}
	}

	if best == "" {
		return "", false
	}
	return best, true
}
