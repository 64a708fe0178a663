package match

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// NormalizeIdent normalizes an identifier for lenient comparison:
// CamelCase and separators are dropped and the result is case-folded.
//
//	NormalizeIdent("OrderID") == NormalizeIdent("order_id") == "orderid"
func NormalizeIdent(s string) string {
	return fold(strings.Join(tokenize(s), ""))
}

// TokenizeIdent splits an identifier into case-folded tokens.
//
//	TokenizeIdent("getHTTPResponse") -> ["get", "http", "response"]
func TokenizeIdent(s string) []string {
	tokens := tokenize(s)
	for i, t := range tokens {
		tokens[i] = fold(t)
	}

	return tokens
}

// fold case-folds s. A Caser keeps state, so each call builds its own.
func fold(s string) string {
	return cases.Fold().String(s)
}

// tokenize splits on separators and CamelCase boundaries, keeping acronyms whole.
func tokenize(s string) []string {
	if s == "" {
		return nil
	}

	var (
		tokens  []string
		current strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && startsToken(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}
	flush()

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}

// startsToken reports a lower-to-upper transition ("orderID" before 'I') or
// the end of an acronym ("XMLParser" before 'P').
func startsToken(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}
	if !unicode.IsUpper(prev) {
		return true
	}

	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
