// Package synonyms widens search recall by generating alternate phrasings
// of a customer query from a static term table.
package synonyms

import "strings"

// Table is an immutable synonym mapping loaded once at process start.
type Table struct {
	entries []Entry
	index   map[string][]string
}

// NewTable builds a lookup table over the given entries.
func NewTable(entries []Entry) *Table {
	idx := make(map[string][]string, len(entries))
	for _, e := range entries {
		idx[e.Term] = e.Synonyms
	}
	return &Table{entries: entries, index: idx}
}

// DefaultTable returns the built-in product synonym table.
func DefaultTable() *Table {
	return NewTable(productSynonyms)
}

// Expand generates query variants by substituting synonyms for known
// tokens. The lower-cased original query always comes first; variants
// follow in table order, deduplicated. Substitution is token-wise so a
// term that happens to be a substring of another word is left alone.
//
//	Expand("red shoes") -> ["red shoes", "crimson shoes", ..., "red sneakers", ...]
func (t *Table) Expand(query string) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return []string{""}
	}

	tokens := strings.Fields(query)
	expanded := []string{query}
	seen := map[string]struct{}{query: {}}

	for _, tok := range tokens {
		syns, ok := t.index[tok]
		if !ok {
			continue
		}
		for _, syn := range syns {
			variant := replaceToken(tokens, tok, syn)
			if _, dup := seen[variant]; dup {
				continue
			}
			seen[variant] = struct{}{}
			expanded = append(expanded, variant)
		}
	}

	return expanded
}

// replaceToken rebuilds the query with every whole-token occurrence of word
// swapped for its replacement.
func replaceToken(tokens []string, word, replacement string) string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		if tok == word {
			out[i] = replacement
		} else {
			out[i] = tok
		}
	}
	return strings.Join(out, " ")
}

// AllSynonyms returns the term itself, its direct synonyms, and the one-hop
// closure over reverse entries: any canonical term listing this word as a
// synonym contributes itself and its other synonyms. Deduplicated, order
// deterministic (term first, then table order).
func (t *Table) AllSynonyms(term string) []string {
	term = strings.ToLower(strings.TrimSpace(term))
	result := []string{term}
	seen := map[string]struct{}{term: {}}

	add := func(s string) {
		if _, dup := seen[s]; dup {
			return
		}
		seen[s] = struct{}{}
		result = append(result, s)
	}

	for _, syn := range t.index[term] {
		add(syn)
	}

	for _, e := range t.entries {
		listed := false
		for _, syn := range e.Synonyms {
			if syn == term {
				listed = true
				break
			}
		}
		if !listed {
			continue
		}
		add(e.Term)
		for _, syn := range e.Synonyms {
			add(syn)
		}
	}

	return result
}
