package parser

import (
	"cmp"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
)

const (
	sourceExact  = "exact"
	sourceAlias  = "alias"
	sourcePrefix = "prefix"
	sourceFuzzy  = "lev"
)

type commandPhrase struct {
	canonical string
	alias     string
	tokens    []string
}

type Registry struct {
	commands map[string]CommandDef
	order    []string
	phrases  []commandPhrase
}

func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]CommandDef),
	}
}

func (r *Registry) RegisterCommand(c CommandDef) {
	c.Canonical = normaliseInput(c.Canonical)
	if c.Canonical == "" {
		return
	}
	if c.HandlerKey == "" {
		c.HandlerKey = c.Canonical
	}
	if _, exists := r.commands[c.Canonical]; !exists {
		r.order = append(r.order, c.Canonical)
	}
	r.commands[c.Canonical] = c

	r.addPhrase(c.Canonical, c.Canonical)
	for _, a := range c.Aliases {
		r.addPhrase(c.Canonical, normaliseInput(a))
	}
}

func (r *Registry) addPhrase(canonical, alias string) {
	if alias == "" {
		return
	}
	r.phrases = append(r.phrases, commandPhrase{
		canonical: canonical,
		alias:     alias,
		tokens:    tokenise(alias),
	})
}

func (r *Registry) command(canonical string) (CommandDef, bool) {
	canonical = normaliseInput(canonical)
	cmd, ok := r.commands[canonical]
	return cmd, ok
}

// Commands lists the registered commands in registration order.
func (r *Registry) Commands() []CommandDef {
	out := make([]CommandDef, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.commands[name])
	}
	return out
}

type commandCandidate struct {
	Canonical string
	Alias     string
	Consumed  int
	Score     float64
	Source    string
}

func (r *Registry) matchCommand(tokens []string) (commandCandidate, []commandCandidate) {
	if len(tokens) == 0 {
		return commandCandidate{}, nil
	}
	in := strings.Join(tokens, " ")
	cands := make([]commandCandidate, 0, len(r.phrases))
	for _, phrase := range r.phrases {
		if c, ok := phrase.literalMatch(tokens); ok {
			cands = append(cands, c)
			continue
		}
		if c, ok := phrase.fuzzyMatch(tokens, in); ok {
			cands = append(cands, c)
		}
	}

	slices.SortStableFunc(cands, func(a, b commandCandidate) int {
		if a.Score != b.Score {
			return cmp.Compare(b.Score, a.Score)
		}
		if a.Consumed != b.Consumed {
			return cmp.Compare(b.Consumed, a.Consumed)
		}
		return cmp.Compare(a.Canonical, b.Canonical)
	})

	if len(cands) == 0 {
		return commandCandidate{}, nil
	}
	best := cands[0]
	alts := make([]commandCandidate, 0, 4)
	seen := map[string]bool{best.Canonical: true}
	for _, c := range cands[1:] {
		if seen[c.Canonical] {
			continue
		}
		seen[c.Canonical] = true
		alts = append(alts, c)
		if len(alts) >= 4 {
			break
		}
	}
	return best, alts
}

// literalMatch covers exact phrases, aliases and single-word prefixes.
func (p commandPhrase) literalMatch(tokens []string) (commandCandidate, bool) {
	if len(p.tokens) == 0 {
		return commandCandidate{}, false
	}
	consumed := min(len(tokens), len(p.tokens))
	if consumed == len(p.tokens) && strings.Join(tokens[:consumed], " ") == p.alias {
		c := commandCandidate{Canonical: p.canonical, Alias: p.alias, Consumed: consumed, Score: 1.0, Source: sourceExact}
		if p.alias != p.canonical {
			c.Source = sourceAlias
			// A whole multi-word phrase outranks its own first word.
			if consumed == 1 {
				c.Score = 0.97
			}
		}
		return c, true
	}
	if len(p.tokens) == 1 && len(tokens[0]) >= 2 && strings.HasPrefix(p.alias, tokens[0]) {
		return commandCandidate{Canonical: p.canonical, Alias: p.alias, Consumed: 1, Score: 0.9, Source: sourcePrefix}, true
	}
	return commandCandidate{}, false
}

func (p commandPhrase) fuzzyMatch(tokens []string, in string) (commandCandidate, bool) {
	if len(p.tokens) == 0 {
		return commandCandidate{}, false
	}
	cut := min(len(tokens), len(p.tokens))
	compare := strings.Join(tokens[:cut], " ")
	if len(compare) < 3 {
		return commandCandidate{}, false
	}
	dist := levenshtein.ComputeDistance(compare, p.alias)
	if dist > levenshteinLimit(len(p.alias)) {
		return commandCandidate{}, false
	}
	score := 0.72 - (0.08 * float64(dist))
	if strings.Contains(in, p.alias) {
		score += 0.04
	}
	if p.alias != p.canonical {
		score += 0.03
	}
	return commandCandidate{Canonical: p.canonical, Alias: p.alias, Consumed: cut, Score: score, Source: sourceFuzzy}, true
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

func DefaultRegistry() *Registry {
	r := NewRegistry()
	commands := []CommandDef{
		{Canonical: "help", Aliases: []string{"h", "commands", "what can i do"}, Args: ArgsNone},
		{Canonical: "flood", Aliases: []string{"pour", "wet", "add water"}, MaxArgs: 2, Args: ArgsCoordinate},
		{Canonical: "drain", Aliases: []string{"pump", "remove water", "bail"}, MaxArgs: 2, Args: ArgsCoordinate},
		{Canonical: "raise", Aliases: []string{"raise height", "heighten", "build up", "pile"}, MaxArgs: 2, Args: ArgsCoordinate},
		{Canonical: "lower", Aliases: []string{"lower height", "dig", "excavate"}, MaxArgs: 2, Args: ArgsCoordinate},
		{Canonical: "dike", Aliases: []string{"dyke", "build dike", "build dyke", "levee", "embank"}, MaxArgs: 2, Args: ArgsCoordinate},
		{Canonical: "sea", Aliases: []string{"sea level", "tide"}, MaxArgs: 1, Args: ArgsSea},
		{Canonical: "river", Aliases: []string{"flood river", "spring", "source"}, Args: ArgsNone},
		{Canonical: "move", Aliases: []string{"go", "walk", "step", "cursor"}, MinArgs: 1, MaxArgs: 1, Args: ArgsDirection},
		{Canonical: "select", Aliases: []string{"goto", "pick", "jump"}, MinArgs: 2, MaxArgs: 2, Args: ArgsCoordinate},
		{Canonical: "use", Aliases: []string{"arm", "tool", "mode"}, MinArgs: 1, MaxArgs: 1, Args: ArgsTool},
		{Canonical: "apply", Aliases: []string{"do", "act", "go ahead"}, Args: ArgsNone},
		{Canonical: "inspect", Aliases: []string{"look", "examine", "info", "check"}, MaxArgs: 2, Args: ArgsCoordinate},
		{Canonical: "restart", Aliases: []string{"new game", "reset", "regenerate"}, MaxArgs: 1, Args: ArgsSeed},
		{Canonical: "snapshot", Aliases: []string{"screenshot", "export", "png"}, Args: ArgsNone},
		{Canonical: "quit", Aliases: []string{"exit", "q", "bye"}, Args: ArgsNone},
	}
	for _, c := range commands {
		r.RegisterCommand(c)
	}
	return r
}
