package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"lineshell/internal/registry"
	"lineshell/pkg/linetypes"
)

const (
	kindNotFound linetypes.ErrorKind = "entry_not_found"
	kindUsage    linetypes.ErrorKind = "bad_usage"
)

type contact struct {
	ID     string `yaml:"-"`
	Name   string `yaml:"name"`
	Number string `yaml:"number"`
}

// phonebook is the demo interpreter state: an in-memory, per-session
// contact list. Persistence is deliberately absent.
type phonebook struct {
	entries []contact
}

func newPhonebook() *phonebook {
	return &phonebook{}
}

// loadSeed preloads entries from a YAML file.
func (p *phonebook) loadSeed(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var seeded []contact
	if err := yaml.Unmarshal(data, &seeded); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	for _, entry := range seeded {
		entry.ID = shortID()
		p.entries = append(p.entries, entry)
	}
	return nil
}

// builder declares the phonebook interpreter type.
func (p *phonebook) builder() *registry.Builder {
	b := registry.NewBuilder()

	b.MustRegister("add", linetypes.ActionSpec{
		Handler: p.add,
		Doc:     "Add an entry: add <name> <number>",
	})
	b.MustRegister("find", linetypes.ActionSpec{
		Handler:   p.find,
		Doc:       "Find entries by name substring",
		Completer: p.completeNames,
	})
	b.MustRegister("list", linetypes.ActionSpec{
		Niladic: p.list,
		Doc:     "List all entries",
	})
	b.MustRegister("delete", linetypes.ActionSpec{
		Handler:   p.delete,
		Doc:       "Delete the entry with the given name",
		Completer: p.completeNames,
	})

	b.Shortcut("a", "add")
	b.Shortcut("f", "find")
	b.Shortcut("rm", "delete")

	b.OnError(kindNotFound, registry.Message("No matching entry."))
	b.OnError(kindUsage, registry.Method("help"))

	b.PromptFunc(func() string {
		return fmt.Sprintf("phonebook(%d)> ", len(p.entries))
	})

	return b
}

func (p *phonebook) add(c linetypes.Console, arg string) error {
	fields := strings.Fields(arg)
	if len(fields) != 2 {
		return linetypes.NewDomainError(kindUsage, "add")
	}
	entry := contact{ID: shortID(), Name: fields[0], Number: fields[1]}
	p.entries = append(p.entries, entry)
	c.Write(fmt.Sprintf("Added %s (%s)", entry.Name, entry.ID))
	return nil
}

func (p *phonebook) find(c linetypes.Console, arg string) error {
	needle := strings.TrimSpace(arg)
	found := false
	for _, entry := range p.entries {
		if strings.Contains(entry.Name, needle) {
			c.Write(fmt.Sprintf("%s\t%s", entry.Name, entry.Number))
			found = true
		}
	}
	if !found {
		return linetypes.NewDomainError(kindNotFound, fmt.Sprintf("no entry matching %q", needle))
	}
	return nil
}

func (p *phonebook) list(c linetypes.Console) error {
	if len(p.entries) == 0 {
		c.Write("No entries.")
		return nil
	}
	for _, entry := range p.entries {
		c.Write(fmt.Sprintf("%s\t%s", entry.Name, entry.Number))
	}
	return nil
}

func (p *phonebook) delete(c linetypes.Console, arg string) error {
	name := strings.TrimSpace(arg)
	for i, entry := range p.entries {
		if entry.Name == name {
			p.entries = append(p.entries[:i], p.entries[i+1:]...)
			c.Write(fmt.Sprintf("Deleted %s", name))
			return nil
		}
	}
	return linetypes.NewDomainError(kindNotFound, fmt.Sprintf("no entry named %q", name))
}

func (p *phonebook) completeNames(partial string) []string {
	var names []string
	for _, entry := range p.entries {
		if strings.HasPrefix(entry.Name, partial) {
			names = append(names, entry.Name)
		}
	}
	return names
}

func shortID() string {
	return uuid.NewString()[:8]
}
