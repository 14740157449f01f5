// Package parser splits raw input lines into a command and an argument
// string. It consults the resolver to decide how many leading tokens
// belong to the command when subcommands are in play.
package parser

import (
	"strings"

	"lineshell/internal/resolver"
)

// Parser parses raw input lines for one interpreter type.
type Parser struct {
	res *resolver.Resolver
}

// New creates a parser backed by the given resolver.
func New(res *resolver.Resolver) *Parser {
	return &Parser{res: res}
}

// ParseLine splits a raw line into (command, argument string). Both are
// empty for an empty or whitespace-only line. The command comes back in
// raw/alias form — canonicalization happens downstream — except when a
// subcommand is consumed, in which case the returned command is the
// matched subcommand name itself.
func (p *Parser) ParseLine(raw string) (string, string) {
	tokens := strings.Fields(raw)
	if len(tokens) == 0 {
		return "", ""
	}

	command := tokens[0]
	arg := strings.Join(tokens[1:], " ")
	if arg == "" {
		return command, ""
	}

	// Only a resolvable command with subcommands can consume extra tokens.
	canonical, ok := p.res.Resolve(command)
	if !ok {
		return command, arg
	}
	subs := p.res.SubcommandsOf(canonical)
	if len(subs) == 0 {
		return command, arg
	}

	joined := make([]string, 0, len(tokens))
	joined = append(joined, canonical)
	joined = append(joined, tokens[1:]...)

	match, ok := p.res.FindSubcommandInArgs(subs, joined)
	if !ok {
		return command, arg
	}

	// Parents carry no underscore, so the matched name's underscore count
	// equals the number of extra tokens it consumed.
	span := strings.Count(match, "_") + 1
	rest := ""
	if span < len(joined) {
		rest = strings.TrimSpace(strings.Join(joined[span:], " "))
	}
	return match, rest
}
