package search

import (
	"strconv"
	"strings"

	"github.com/juggernaut7777/kofa/internal/bot/model"
	"github.com/juggernaut7777/kofa/internal/core/errx"
)

var ordinalWords = map[string]int{
	"first": 1, "1st": 1,
	"second": 2, "2nd": 2,
	"third": 3, "3rd": 3,
	"fourth": 4, "4th": 4,
	"fifth": 5, "5th": 5,
	"sixth": 6, "6th": 6,
	"seventh": 7, "7th": 7,
	"eighth": 8, "8th": 8,
	"ninth": 9, "9th": 9,
	"tenth": 10, "10th": 10,
}

// "one" is deliberately absent: it shows up as a filler in replies like
// "the black one" and would hijack attribute matches.
var numberWords = map[string]int{
	"two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
}

// selectFillers are ignored when matching reply tokens against candidate
// names, so "the black one" resolves on "black" alone.
var selectFillers = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "that": {}, "this": {}, "one": {},
	"give": {}, "me": {}, "i": {}, "want": {}, "take": {}, "number": {},
	"option": {}, "please": {}, "yes": {}, "buy": {}, "like": {},
}

// SelectFromList resolves a user's reply against a previously shown
// candidate list. It tries, in order: an ordinal reference ("the first
// one", "number 2"), a name or substring match, then a color/attribute
// match via synonym lookup. When several candidates satisfy a rule the
// earliest in the list wins. Returns errx.ErrAmbiguousSelection when no
// rule fires.
func (r *Resolver) SelectFromList(userText string, candidates []model.Product) (model.Product, error) {
	if len(candidates) == 0 {
		return model.Product{}, errx.ErrAmbiguousSelection
	}

	text := strings.ToLower(userText)
	tokens := strings.Fields(strings.Map(func(c rune) rune {
		switch c {
		case '.', ',', '!', '?', ';', ':', '(', ')', '"':
			return ' '
		}
		return c
	}, text))

	// Rule 1: ordinal reference. Explicit ordinals beat digits beat
	// number words, so "the first one" reads as 1, not "one".
	if n := findOrdinal(tokens); n >= 1 && n <= len(candidates) {
		return candidates[n-1], nil
	}

	// Rule 2: name or substring mention.
	for _, c := range candidates {
		if name := strings.ToLower(c.Name); name != "" && strings.Contains(text, name) {
			return c, nil
		}
	}
	for _, c := range candidates {
		name := strings.ToLower(c.Name)
		for _, tok := range tokens {
			if _, skip := selectFillers[tok]; skip || len(tok) < 3 {
				continue
			}
			if strings.Contains(name, tok) {
				return c, nil
			}
		}
	}

	// Rule 3: color or attribute mention, widened through synonyms.
	for _, tok := range tokens {
		if _, skip := selectFillers[tok]; skip || len(tok) < 3 {
			continue
		}
		for _, syn := range r.table.AllSynonyms(tok) {
			for _, c := range candidates {
				if productMentions(c, syn) {
					return c, nil
				}
			}
		}
	}

	return model.Product{}, errx.ErrAmbiguousSelection
}

func findOrdinal(tokens []string) int {
	for _, tok := range tokens {
		if n, ok := ordinalWords[tok]; ok {
			return n
		}
	}
	for _, tok := range tokens {
		if n, err := strconv.Atoi(tok); err == nil {
			return n
		}
	}
	for _, tok := range tokens {
		if n, ok := numberWords[tok]; ok {
			return n
		}
	}
	return 0
}

func productMentions(p model.Product, term string) bool {
	if term == "" {
		return false
	}
	if strings.Contains(strings.ToLower(p.Name), term) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), term) {
		return true
	}
	for _, tag := range p.VoiceTags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}
