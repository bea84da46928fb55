package gematria

import (
	"github.com/metaxiamultimedia/scriptures-core/core/errors"
)

// Method describes one registered letter-value system.
type Method struct {
	// Identifier is the canonical, globally unique system name
	// (e.g. "mispar-hechrachi", "isopsephy", "english-ordinal").
	Identifier string

	// Name is the human-readable display name.
	Name string

	// Alias is an optional short name, unique only within a language
	// (e.g. "standard", "ordinal", "reduced").
	Alias string

	// Language is the script this system applies to.
	Language Language

	// Compute evaluates the system on one text.
	Compute ComputeFunc

	// ComputeLenient, when set, is a variant that never fails on
	// out-of-alphabet letters. ComputeAll prefers it over Compute.
	ComputeLenient ComputeFunc
}

// aliasSearchOrder is the fixed order in which languages are tried when
// an alias is resolved without an explicit language. Hebrew wins ties
// for the generic aliases shared by all three languages.
var aliasSearchOrder = []Language{Hebrew, Greek, English}

// Registry maps system identifiers and per-language aliases to their
// compute functions. A Registry is built once, at startup, and is
// read-only afterwards; Register is not safe for concurrent use with
// Resolve.
type Registry struct {
	methods map[string]*Method
	aliases map[Language]map[string]*Method
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		methods: make(map[string]*Method),
		aliases: make(map[Language]map[string]*Method),
	}
}

// Register inserts a method by identifier, overwriting any existing
// entry with the same identifier. If the method carries an alias it is
// also inserted into the per-language alias index.
func (r *Registry) Register(m *Method) {
	r.methods[m.Identifier] = m
	if m.Alias == "" {
		return
	}
	byAlias := r.aliases[m.Language]
	if byAlias == nil {
		byAlias = make(map[string]*Method)
		r.aliases[m.Language] = byAlias
	}
	byAlias[m.Alias] = m
}

// Resolve looks up a method by identifier or alias. An exact
// identifier match wins unconditionally. Otherwise, with an explicit
// language the (language, alias) index is consulted; with Auto or no
// language the alias is searched across languages in the fixed order
// Hebrew, Greek, English and the first match returned.
func (r *Registry) Resolve(name string, lang Language) (*Method, error) {
	if m, ok := r.methods[name]; ok {
		return m, nil
	}
	if lang != "" && lang != Auto {
		if m, ok := r.aliases[lang][name]; ok {
			return m, nil
		}
		return nil, errors.NewNotFound("method", name)
	}
	for _, l := range aliasSearchOrder {
		if m, ok := r.aliases[l][name]; ok {
			return m, nil
		}
	}
	return nil, errors.NewNotFound("method", name)
}
