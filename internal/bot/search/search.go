// Package search resolves free-text product queries against a catalog
// snapshot using synonym expansion, substring containment and token
// overlap. Matching is deliberately permissive: the bot would rather show
// a near match than reply empty-handed.
package search

import (
	"sort"
	"strings"

	"github.com/juggernaut7777/kofa/internal/bot/model"
	"github.com/juggernaut7777/kofa/internal/bot/synonyms"
)

// Score weights. Containment of a whole variant outranks single-token
// overlap so exact-ish queries surface first.
const (
	scoreNameContains     = 10
	scoreTagMatch         = 6
	scoreDescContains     = 5
	scoreCategoryContains = 4
	scoreTokenOverlap     = 2
)

type Resolver struct {
	table *synonyms.Table
}

func NewResolver(table *synonyms.Table) *Resolver {
	if table == nil {
		table = synonyms.DefaultTable()
	}
	return &Resolver{table: table}
}

type scored struct {
	product model.Product
	score   int
	index   int // catalog position, tie-break
}

// SmartSearch returns every catalog product matching the synonym-expanded
// query, ranked by descending score with catalog order breaking ties.
// Results are deduplicated by product id and never nil.
func (r *Resolver) SmartSearch(query string, catalog []model.Product) []model.Product {
	variants := r.table.Expand(query)

	matches := []scored{}
	byID := map[string]int{} // product id -> index into matches

	for i, p := range catalog {
		s := productScore(p, variants)
		if s <= 0 {
			continue
		}
		if at, dup := byID[p.ID]; dup {
			if s > matches[at].score {
				matches[at].score = s
			}
			continue
		}
		byID[p.ID] = len(matches)
		matches = append(matches, scored{product: p, score: s, index: i})
	}

	sort.SliceStable(matches, func(a, b int) bool {
		if matches[a].score != matches[b].score {
			return matches[a].score > matches[b].score
		}
		return matches[a].index < matches[b].index
	})

	out := make([]model.Product, len(matches))
	for i, m := range matches {
		out[i] = m.product
	}
	return out
}

func productScore(p model.Product, variants []string) int {
	name := strings.ToLower(p.Name)
	desc := strings.ToLower(p.Description)
	category := strings.ToLower(p.Category)

	tags := make([]string, len(p.VoiceTags))
	for i, t := range p.VoiceTags {
		tags[i] = strings.ToLower(t)
	}

	haystack := tokenSet(name + " " + desc + " " + category + " " + strings.Join(tags, " "))

	best := 0
	for _, v := range variants {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		s := 0
		if strings.Contains(name, v) {
			s += scoreNameContains
		}
		if desc != "" && strings.Contains(desc, v) {
			s += scoreDescContains
		}
		if category != "" && strings.Contains(category, v) {
			s += scoreCategoryContains
		}
		for _, tag := range tags {
			if strings.Contains(tag, v) || strings.Contains(v, tag) {
				s += scoreTagMatch
				break
			}
		}
		for _, tok := range strings.Fields(v) {
			if len(tok) < 3 {
				continue
			}
			if _, ok := haystack[tok]; ok {
				s += scoreTokenOverlap
			}
		}
		if s > best {
			best = s
		}
	}
	return best
}

func tokenSet(s string) map[string]struct{} {
	out := map[string]struct{}{}
	for _, tok := range strings.Fields(s) {
		out[strings.Trim(tok, ".,!?;:()")] = struct{}{}
	}
	return out
}
