// Package services provides the read-only facades over the registry that
// back the human-facing surfaces: help text and tab completion.
package services

import (
	"fmt"
	"strings"

	"lineshell/internal/registry"
	"lineshell/internal/resolver"
	"lineshell/pkg/linetypes"
)

// HelpService renders help text from registry metadata.
type HelpService struct {
	reg              *registry.Registry
	res              *resolver.Resolver
	showUndocumented bool
	initialized      bool
}

// NewHelpService creates a HelpService. showUndocumented controls whether
// the undocumented-commands block is appended to the full listing.
func NewHelpService(reg *registry.Registry, res *resolver.Resolver, showUndocumented bool) *HelpService {
	return &HelpService{
		reg:              reg,
		res:              res,
		showUndocumented: showUndocumented,
	}
}

// Name returns the service name "help" for registration.
func (h *HelpService) Name() string {
	return "help"
}

// Initialize sets up the HelpService for operation.
func (h *HelpService) Initialize() error {
	h.initialized = true
	return nil
}

// RenderAll writes one line per documented action, sorted by name, in the
// form "name -- description (aliases: a, b)", followed by the
// undocumented block unless suppressed.
func (h *HelpService) RenderAll(c linetypes.Console) error {
	if !h.initialized {
		return fmt.Errorf("help service not initialized")
	}

	for _, name := range h.reg.Documented() {
		c.Write(h.line(name))
	}

	if h.showUndocumented {
		if undocumented := h.reg.Undocumented(); len(undocumented) > 0 {
			c.Write("")
			c.Write("Undocumented commands:")
			c.Write(strings.Join(undocumented, " "))
		}
	}

	return nil
}

// RenderOne writes the help line for a single command, resolving shortcut
// aliases first. Returns false when the command is unknown or
// undocumented; the caller decides how to report that.
func (h *HelpService) RenderOne(c linetypes.Console, token string) bool {
	if !h.initialized {
		return false
	}

	name := token
	if target, ok := h.reg.ShortcutTarget(token); ok {
		name = target
	}

	if _, documented := h.reg.DocFor(name); !documented {
		return false
	}

	c.Write(h.line(name))
	return true
}

func (h *HelpService) line(name string) string {
	doc, _ := h.reg.DocFor(name)
	line := name + " -- " + doc
	if aliases := h.reg.ShortcutsFor(name); len(aliases) > 0 {
		line += " (aliases: " + strings.Join(aliases, ", ") + ")"
	}
	return line
}
