package parser

import (
	"regexp"
	"strconv"
	"strings"
)

var multiSpaceRE = regexp.MustCompile(`\s+`)

func normaliseInput(raw string) string {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if raw == "" {
		return ""
	}
	var b strings.Builder
	lastSpace := false
	for _, r := range raw {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '-' || r == '_' || r == '/' || r == ',' || r == '(' || r == ')' {
			if !lastSpace {
				b.WriteByte(' ')
			}
			lastSpace = true
		}
	}
	return strings.TrimSpace(multiSpaceRE.ReplaceAllString(b.String(), " "))
}

func tokenise(normalised string) []string {
	if strings.TrimSpace(normalised) == "" {
		return nil
	}
	return strings.Fields(normalised)
}

// fillerWords carry no meaning in a command once the verb is known.
var fillerWords = map[string]bool{
	"a": true, "an": true, "the": true, "at": true, "on": true, "to": true,
	"tile": true, "cell": true, "by": true, "level": true, "of": true, "please": true,
}

func dropFiller(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if fillerWords[token] {
			continue
		}
		out = append(out, token)
	}
	return out
}

func parseQuantityToken(token string) *Quantity {
	token = strings.TrimSpace(strings.ToLower(token))
	if token == "" {
		return nil
	}
	if n, err := strconv.Atoi(token); err == nil && n >= 0 {
		return &Quantity{Raw: token, N: n, Unit: "count"}
	}
	if strings.HasSuffix(token, "x") {
		if n, err := strconv.Atoi(strings.TrimSuffix(token, "x")); err == nil && n >= 0 {
			return &Quantity{Raw: strconv.Itoa(n), N: n, Unit: "count"}
		}
	}
	return nil
}

func mapDirection(token string) string {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "n", "north", "up":
		return "north"
	case "s", "south", "down":
		return "south"
	case "e", "east", "right":
		return "east"
	case "w", "west", "left":
		return "west"
	default:
		return ""
	}
}

func mapSeaChange(token string) string {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "up", "rise", "raise", "higher", "more":
		return "up"
	case "down", "fall", "lower", "ebb", "less":
		return "down"
	default:
		return ""
	}
}

func isNumber(token string) bool {
	_, err := strconv.Atoi(token)
	return err == nil
}
