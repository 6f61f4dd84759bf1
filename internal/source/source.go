// Package source provides suggestion sources for the typeahead widget.
package source

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Kind names a source implementation
type Kind string

const (
	KindStatic Kind = "static"
	KindPrefix Kind = "prefix"
	KindFuzzy  Kind = "fuzzy"
)

// ErrUnknownKind is returned by New for an unsupported kind
var ErrUnknownKind = errors.New("unknown source kind")

// DefaultWords is the built-in dictionary used when none is configured
var DefaultWords = []string{"Apple", "Banana", "Cherry", "Date", "Elderberry", "Fig", "Grape"}

// Source delivers an ordered list of display strings for a query
type Source interface {
	Lookup(ctx context.Context, query string) ([]string, error)
}

// Options configures sources built by New
type Options struct {
	MaxResults int           // 0 means unlimited
	Latency    time.Duration // simulated latency, 0 disables
}

// New builds the source named by kind over words
func New(kind Kind, words []string, opts Options) (Source, error) {
	var src Source
	switch Kind(strings.ToLower(string(kind))) {
	case KindStatic, "":
		src = NewStatic(words, opts.MaxResults)
	case KindPrefix:
		src = NewPrefix(words, opts.MaxResults)
	case KindFuzzy:
		src = NewFuzzy(words, opts.MaxResults)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	if opts.Latency > 0 {
		src = NewDelayed(src, opts.Latency)
	}
	return src, nil
}

// Static filters a fixed word list by case-insensitive substring.
// An empty query returns every word.
type Static struct {
	words []string
	lower []string
	limit int
}

// NewStatic creates a static source
func NewStatic(words []string, limit int) *Static {
	s := &Static{
		words: append([]string(nil), words...),
		lower: make([]string, len(words)),
		limit: limit,
	}
	for i, w := range words {
		s.lower[i] = strings.ToLower(w)
	}
	return s
}

// Lookup implements Source
func (s *Static) Lookup(ctx context.Context, query string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	results := make([]string, 0, len(s.words))
	for i, w := range s.words {
		if q == "" || strings.Contains(s.lower[i], q) {
			results = append(results, w)
			if s.limit > 0 && len(results) == s.limit {
				break
			}
		}
	}
	return results, nil
}

// Delayed adds a fixed latency in front of another source
type Delayed struct {
	next    Source
	latency time.Duration
}

// NewDelayed wraps next with the given latency
func NewDelayed(next Source, latency time.Duration) *Delayed {
	return &Delayed{next: next, latency: latency}
}

// Lookup waits for the latency, or returns early when ctx is done
func (d *Delayed) Lookup(ctx context.Context, query string) ([]string, error) {
	timer := time.NewTimer(d.latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
	}
	return d.next.Lookup(ctx, query)
}

// Func adapts a function to Source
type Func func(ctx context.Context, query string) ([]string, error)

// Lookup implements Source
func (f Func) Lookup(ctx context.Context, query string) ([]string, error) {
	return f(ctx, query)
}
