package catalog

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SearchGlossary returns glossary entries matching the query, best match
// first. An empty query returns every entry sorted by term.
func (c *Catalog) SearchGlossary(query string) []GlossaryEntry {
	query = strings.TrimSpace(query)

	if query == "" {
		all := make([]GlossaryEntry, len(c.glossary))
		copy(all, c.glossary)
		sort.Slice(all, func(i, j int) bool { return all[i].Term < all[j].Term })
		return all
	}

	terms := make([]string, len(c.glossary))
	byTerm := make(map[string]GlossaryEntry, len(c.glossary))
	for i, e := range c.glossary {
		terms[i] = e.Term
		byTerm[e.Term] = e
	}

	ranks := fuzzy.RankFindNormalizedFold(query, terms)
	sort.Sort(ranks)

	results := make([]GlossaryEntry, 0, len(ranks))
	for _, r := range ranks {
		results = append(results, byTerm[r.Target])
	}
	return results
}
