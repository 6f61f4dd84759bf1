package source

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Prefix matches words starting with the query, case-insensitively.
// Results are ordered by their lowercased form.
type Prefix struct {
	trie  *patricia.Trie
	limit int
}

// NewPrefix builds a trie over words
func NewPrefix(words []string, limit int) *Prefix {
	p := &Prefix{
		trie:  patricia.NewTrie(),
		limit: limit,
	}
	for _, w := range words {
		key := patricia.Prefix(strings.ToLower(w))
		// Words that differ only by case share a key
		if existing := p.trie.Get(key); existing != nil {
			p.trie.Set(key, append(existing.([]string), w))
			continue
		}
		p.trie.Insert(key, []string{w})
	}
	return p
}

// Lookup implements Source
func (p *Prefix) Lookup(ctx context.Context, query string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	results := []string{}
	err := p.trie.VisitSubtree(patricia.Prefix(strings.ToLower(query)), func(_ patricia.Prefix, item patricia.Item) error {
		words, ok := item.([]string)
		if !ok {
			log.Error("unexpected trie item", "type", fmt.Sprintf("%T", item))
			return nil
		}
		results = append(results, words...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		return strings.ToLower(results[i]) < strings.ToLower(results[j])
	})
	if p.limit > 0 && len(results) > p.limit {
		results = results[:p.limit]
	}
	return results, nil
}
