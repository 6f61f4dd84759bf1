package source

import (
	"context"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Fuzzy matches words containing the query's characters in order,
// case-insensitively, closest matches first.
type Fuzzy struct {
	words []string
	limit int
}

// NewFuzzy creates a fuzzy source
func NewFuzzy(words []string, limit int) *Fuzzy {
	return &Fuzzy{
		words: append([]string(nil), words...),
		limit: limit,
	}
}

// Lookup implements Source
func (f *Fuzzy) Lookup(ctx context.Context, query string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if query == "" {
		return f.cap(append([]string(nil), f.words...)), nil
	}

	ranks := fuzzy.RankFindFold(query, f.words)
	sort.Stable(ranks)

	results := make([]string, 0, len(ranks))
	for _, r := range ranks {
		results = append(results, r.Target)
	}
	return f.cap(results), nil
}

func (f *Fuzzy) cap(results []string) []string {
	if f.limit > 0 && len(results) > f.limit {
		return results[:f.limit]
	}
	return results
}
