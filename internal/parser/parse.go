package parser

import (
	"fmt"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
)

// DefaultTools are the tile edits the game can arm with "use".
var DefaultTools = []string{"flood", "drain", "raise", "lower", "dike"}

var toolAliases = map[string]string{
	"dyke":     "dike",
	"levee":    "dike",
	"wall":     "dike",
	"pour":     "flood",
	"water":    "flood",
	"wet":      "flood",
	"pump":     "drain",
	"dry":      "drain",
	"dig":      "lower",
	"heighten": "raise",
	"pile":     "raise",
}

type Parser struct {
	registry *Registry
}

func New() *Parser {
	return &Parser{registry: DefaultRegistry()}
}

func (p *Parser) RegisterCommand(c CommandDef) {
	p.registry.RegisterCommand(c)
}

func (p *Parser) Commands() []CommandDef {
	return p.registry.Commands()
}

func (p *Parser) Parse(ctx ParseContext, raw string) Intent {
	intent := Intent{
		Raw:        raw,
		Normalised: normaliseInput(raw),
		Kind:       Unknown,
		Confidence: 0,
	}
	if intent.Normalised == "" {
		intent.Clarify = &ClarifyQuestion{Prompt: "Enter a command."}
		return intent
	}

	tokens := tokenise(intent.Normalised)
	cmdMatch, alternates := p.registry.matchCommand(tokens)
	if cmdMatch.Canonical == "" || cmdMatch.Score < 0.5 {
		if inferred := inferFreeTextIntent(ctx, intent.Raw, intent.Normalised); inferred != nil {
			return *inferred
		}
		intent.Clarify = &ClarifyQuestion{
			Prompt: "I couldn't map that to a command. Try help, flood, drain, raise, lower, dike, sea, river, move, select, use, apply, inspect, restart.",
		}
		return intent
	}

	literal := cmdMatch.Source == sourceExact || cmdMatch.Source == sourceAlias
	if !literal && len(alternates) > 0 && (cmdMatch.Score-alternates[0].Score) < 0.05 && alternates[0].Score > 0.65 {
		intent.Clarify = &ClarifyQuestion{
			Prompt: "Did you mean:",
			Options: []Intent{
				verbOption(raw, cmdMatch),
				verbOption(raw, alternates[0]),
			},
		}
		return intent
	}

	intent.Verb = cmdMatch.Canonical
	intent.Confidence = clampScore(cmdMatch.Score)

	argsTokens := tokens
	if cmdMatch.Consumed > 0 && len(tokens) >= cmdMatch.Consumed {
		argsTokens = tokens[cmdMatch.Consumed:]
	}
	argsTokens = dropFiller(argsTokens)

	def, _ := p.registry.command(intent.Verb)
	resolved, clarify, argScore := resolveArgs(ctx, def, argsTokens)
	if clarify != nil || len(resolved.leftovers) > 0 {
		// "raise the sea" reads better as a sentence than as raise + junk.
		if inferred := inferFreeTextIntent(ctx, intent.Raw, intent.Normalised); inferred != nil && inferred.Verb != intent.Verb {
			return *inferred
		}
	}
	if clarify != nil {
		intent.Kind = commandKind(def.Canonical, nil)
		intent.Clarify = clarify
		intent.Confidence = 0.45
		return intent
	}
	intent.Args = resolved.args
	intent.Quantity = resolved.quantity
	intent.Kind = commandKind(intent.Verb, intent.Args)
	intent.Confidence = clampScore((intent.Confidence * 0.75) + (argScore * 0.25))

	if def.MaxArgs > 0 && len(intent.Args) > def.MaxArgs {
		intent.Args = append([]string(nil), intent.Args[:def.MaxArgs]...)
		intent.Confidence = clampScore(intent.Confidence - 0.05)
	}

	if intent.Confidence < 0.52 {
		intent.Clarify = &ClarifyQuestion{Prompt: "I have low confidence in that parse. Please rephrase or pick a clearer command."}
	}
	return intent
}

func verbOption(raw string, c commandCandidate) Intent {
	return Intent{
		Raw:        raw,
		Normalised: c.Canonical,
		Kind:       commandKind(c.Canonical, nil),
		Verb:       c.Canonical,
		Confidence: c.Score,
	}
}

func commandKind(verb string, args []string) IntentKind {
	switch verb {
	case "help":
		return Help
	case "inspect":
		return Query
	case "sea":
		if len(args) == 0 {
			return Query
		}
		return Command
	case "quit", "snapshot":
		return System
	default:
		return Command
	}
}

type resolvedArgs struct {
	args      []string
	quantity  *Quantity
	leftovers []string
}

func resolveArgs(ctx ParseContext, def CommandDef, args []string) (resolvedArgs, *ClarifyQuestion, float64) {
	switch def.Args {
	case ArgsCoordinate:
		return resolveCoordinate(def, args)
	case ArgsDirection:
		return resolveDirection(args)
	case ArgsTool:
		return resolveTool(ctx, args)
	case ArgsSea:
		return resolveSea(args)
	case ArgsSeed:
		return resolveSeed(args)
	default:
		return resolvedArgs{leftovers: args}, nil, confidenceForLeftovers(args)
	}
}

func resolveCoordinate(def CommandDef, args []string) (resolvedArgs, *ClarifyQuestion, float64) {
	numbers, rest := splitNumbers(args)
	switch {
	case len(numbers) == 0 && def.MinArgs == 0:
		return resolvedArgs{leftovers: rest}, nil, confidenceForLeftovers(rest)
	case len(numbers) == 2:
		return resolvedArgs{args: numbers, leftovers: rest}, nil, confidenceForLeftovers(rest)
	}
	prompt := fmt.Sprintf("%s needs a tile as x y.", def.Canonical)
	if def.MinArgs == 0 {
		prompt = fmt.Sprintf("%s takes a tile as x y, or nothing for the selected tile.", def.Canonical)
	}
	return resolvedArgs{}, &ClarifyQuestion{Prompt: prompt}, 0
}

func resolveDirection(args []string) (resolvedArgs, *ClarifyQuestion, float64) {
	rest, q := splitQuantity(args)
	for i, token := range rest {
		if dir := mapDirection(token); dir != "" {
			leftovers := append(append([]string(nil), rest[:i]...), rest[i+1:]...)
			return resolvedArgs{args: []string{dir}, quantity: q, leftovers: leftovers}, nil, confidenceForLeftovers(leftovers)
		}
	}
	options := make([]Intent, 0, 4)
	for _, dir := range []string{"north", "south", "east", "west"} {
		options = append(options, Intent{Kind: Command, Verb: "move", Args: []string{dir}, Quantity: q, Confidence: 0.8})
	}
	return resolvedArgs{}, &ClarifyQuestion{Prompt: "Which way?", Options: options}, 0
}

func resolveTool(ctx ParseContext, args []string) (resolvedArgs, *ClarifyQuestion, float64) {
	tools := ctx.Tools
	if len(tools) == 0 {
		tools = DefaultTools
	}
	if len(args) > 0 {
		if tool, score, ok := bestTool(args[0], tools); ok {
			return resolvedArgs{args: []string{tool}}, nil, score
		}
	}
	prompt := "Which tool?"
	if ctx.ActiveTool != "" {
		prompt = fmt.Sprintf("Active tool is %s. Switch to:", ctx.ActiveTool)
	}
	options := make([]Intent, 0, len(tools))
	for _, tool := range tools {
		if tool == ctx.ActiveTool {
			continue
		}
		options = append(options, Intent{Kind: Command, Verb: "use", Args: []string{tool}, Confidence: 0.8})
	}
	return resolvedArgs{}, &ClarifyQuestion{Prompt: prompt, Options: options}, 0
}

// bestTool matches a token against tool names and their aliases, allowing a
// small typo.
func bestTool(token string, tools []string) (string, float64, bool) {
	for _, tool := range tools {
		if token == tool {
			return tool, 1, true
		}
	}
	if alias, ok := toolAliases[token]; ok && slices.Contains(tools, alias) {
		return alias, 0.95, true
	}
	best := ""
	bestDist := -1
	for _, tool := range tools {
		dist := levenshtein.ComputeDistance(token, tool)
		if dist > levenshteinLimit(len(tool)) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best = tool
			bestDist = dist
		}
	}
	if best == "" {
		return "", 0, false
	}
	return best, clampScore(0.85 - 0.1*float64(bestDist)), true
}

func resolveSea(args []string) (resolvedArgs, *ClarifyQuestion, float64) {
	if len(args) == 0 {
		return resolvedArgs{}, nil, 1
	}
	if change := mapSeaChange(args[0]); change != "" {
		return resolvedArgs{args: []string{change}, leftovers: args[1:]}, nil, confidenceForLeftovers(args[1:])
	}
	if isNumber(args[0]) {
		return resolvedArgs{args: []string{args[0]}, leftovers: args[1:]}, nil, confidenceForLeftovers(args[1:])
	}
	return resolvedArgs{}, &ClarifyQuestion{
		Prompt: "Should the sea go up or down?",
		Options: []Intent{
			{Kind: Command, Verb: "sea", Args: []string{"up"}, Confidence: 0.8},
			{Kind: Command, Verb: "sea", Args: []string{"down"}, Confidence: 0.8},
		},
	}, 0
}

func resolveSeed(args []string) (resolvedArgs, *ClarifyQuestion, float64) {
	numbers, rest := splitNumbers(args)
	if len(numbers) > 1 {
		return resolvedArgs{}, &ClarifyQuestion{Prompt: "restart takes at most one seed."}, 0
	}
	return resolvedArgs{args: numbers, leftovers: rest}, nil, confidenceForLeftovers(rest)
}

func splitQuantity(tokens []string) ([]string, *Quantity) {
	if len(tokens) == 0 {
		return nil, nil
	}
	out := make([]string, 0, len(tokens))
	var q *Quantity
	for _, token := range tokens {
		if q == nil {
			if candidate := parseQuantityToken(token); candidate != nil {
				q = candidate
				continue
			}
		}
		out = append(out, token)
	}
	return out, q
}

func splitNumbers(tokens []string) ([]string, []string) {
	var numbers, rest []string
	for _, token := range tokens {
		if isNumber(token) {
			numbers = append(numbers, token)
			continue
		}
		rest = append(rest, token)
	}
	return numbers, rest
}

// confidenceForLeftovers lowers confidence for every token the command had
// no use for.
func confidenceForLeftovers(rest []string) float64 {
	return clampScore(1 - 0.15*float64(len(rest)))
}

func inferFreeTextIntent(ctx ParseContext, raw string, normalised string) *Intent {
	n := normalised
	numbers, _ := splitNumbers(tokenise(n))
	var coord []string
	if len(numbers) == 2 {
		coord = numbers
	}
	makeIntent := func(kind IntentKind, verb string, args []string, confidence float64) *Intent {
		return &Intent{
			Raw:        raw,
			Normalised: normalised,
			Kind:       kind,
			Verb:       verb,
			Args:       args,
			Confidence: clampScore(confidence),
		}
	}

	if containsAnyWord(n, "sea", "tide", "ocean") {
		switch {
		case containsAnyWord(n, "rise", "raise", "up", "higher", "high", "flood"):
			return makeIntent(Command, "sea", []string{"up"}, 0.84)
		case containsAnyWord(n, "fall", "lower", "down", "low", "ebb", "drop"):
			return makeIntent(Command, "sea", []string{"down"}, 0.84)
		default:
			return makeIntent(Query, "sea", nil, 0.7)
		}
	}
	if containsWord(n, "river") {
		return makeIntent(Command, "river", nil, 0.8)
	}
	if containsAnyWord(n, "dike", "dyke", "levee", "wall") {
		return makeIntent(Command, "dike", coord, 0.82)
	}
	if containsAnyPhrase(n, "add water", "more water", "pour water", "pour some water") {
		return makeIntent(Command, "flood", coord, 0.8)
	}
	if containsAnyPhrase(n, "remove water", "less water", "pump out", "dry out", "dry up") {
		return makeIntent(Command, "drain", coord, 0.8)
	}
	if containsAnyPhrase(n, "start over", "new map", "try again") {
		return makeIntent(Command, "restart", nil, 0.8)
	}
	if containsAnyPhrase(n, "what is here", "whats here", "what s here", "where am i") {
		return makeIntent(Query, "inspect", coord, 0.86)
	}
	if containsAnyPhrase(n, "do it", "do that", "again") && ctx.ActiveTool != "" {
		return makeIntent(Command, "apply", nil, 0.76)
	}

	if dir := inferDirectionFromText(n); dir != "" {
		return makeIntent(Command, "move", []string{dir}, 0.86)
	}

	return nil
}

func inferDirectionFromText(normalised string) string {
	tokens := tokenise(normalised)
	if len(tokens) == 0 {
		return ""
	}
	for i, token := range tokens {
		mapped := mapDirection(token)
		if mapped == "" {
			continue
		}
		// "head north", "cursor left", etc.
		if i > 0 {
			switch tokens[i-1] {
			case "go", "walk", "head", "move", "cursor", "step", "one":
				return mapped
			}
		}
		if i == 0 && len(tokens) == 1 {
			return mapped
		}
	}
	return ""
}

func containsAnyPhrase(value string, phrases ...string) bool {
	for _, phrase := range phrases {
		if containsPhrase(value, phrase) {
			return true
		}
	}
	return false
}

func containsPhrase(value, phrase string) bool {
	p := normaliseInput(phrase)
	if p == "" {
		return false
	}
	return strings.Contains(" "+value+" ", " "+p+" ")
}

func containsWord(value, word string) bool {
	w := normaliseInput(word)
	if w == "" {
		return false
	}
	return strings.Contains(" "+value+" ", " "+w+" ")
}

func containsAnyWord(value string, words ...string) bool {
	for _, word := range words {
		if containsWord(value, word) {
			return true
		}
	}
	return false
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// IntentToCommandString renders an intent as the command line the game
// executes.
func IntentToCommandString(intent Intent) string {
	verb := normaliseInput(intent.Verb)
	if verb == "" {
		return ""
	}
	args := make([]string, 0, len(intent.Args)+1)
	for _, arg := range intent.Args {
		n := normaliseInput(arg)
		if n != "" {
			args = append(args, n)
		}
	}
	if intent.Quantity != nil && intent.Quantity.Raw != "" {
		args = append(args, normaliseInput(intent.Quantity.Raw))
	}
	if len(args) == 0 {
		return verb
	}
	return verb + " " + strings.Join(args, " ")
}
