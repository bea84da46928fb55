// Package sources registers scripture editions and loads verses and
// chapters from them. The computation layer never touches storage
// directly; it consumes the text.Verse values produced here, with
// scribal annotations already filtered at this boundary.
package sources

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/metaxiamultimedia/scriptures-core/core/errors"
	"github.com/metaxiamultimedia/scriptures-core/core/gematria"
	"github.com/metaxiamultimedia/scriptures-core/core/text"
)

// Edition describes one registered scripture source.
type Edition struct {
	// ID uniquely identifies this loaded instance.
	ID uuid.UUID

	// Key is the registry key, e.g. "wlc" or "sblgnt".
	Key string

	// Title is the edition's display title.
	Title string

	// Language is the edition's normalized language.
	Language gematria.Language

	// Tagged reports whether the edition carries lemma and morphology
	// fields on its words. Untagged editions never classify words as
	// scribal annotations.
	Tagged bool
}

// Loader loads verses from one edition.
type Loader interface {
	// Edition describes the loaded edition.
	Edition() Edition

	// Verse loads a single verse. The returned verse has annotation
	// words already removed; its Raw field keeps the unfiltered text.
	Verse(ctx context.Context, ref *Ref) (*text.Verse, error)

	// Chapter loads every verse of a chapter in order.
	Chapter(ctx context.Context, book string, chapter int) ([]*text.Verse, error)

	// Close releases the loader's resources.
	Close() error
}

// Registry is a pluggable key to loader map.
type Registry struct {
	mu      sync.RWMutex
	loaders map[string]Loader
}

// NewRegistry returns an empty source registry.
func NewRegistry() *Registry {
	return &Registry{loaders: make(map[string]Loader)}
}

// Register adds a loader under its edition key, replacing any previous
// loader for that key.
func (r *Registry) Register(l Loader) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loaders[l.Edition().Key] = l
}

// Lookup returns the loader registered under key.
func (r *Registry) Lookup(key string) (Loader, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.loaders[key]
	if !ok {
		return nil, errors.NewNotFound("edition", key)
	}
	return l, nil
}

// Keys returns the registered edition keys, sorted.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.loaders))
	for k := range r.loaders {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Close closes every registered loader, returning the first error.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	var first error
	for _, l := range r.loaders {
		if err := l.Close(); err != nil && first == nil {
			first = err
		}
	}
	r.loaders = make(map[string]Loader)
	return first
}
