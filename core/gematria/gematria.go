// Package gematria computes letter-substitution values (gematria,
// isopsephy) for Hebrew, Greek, and English text under the historically
// distinct letter-value systems of each language.
//
// Values are derived fresh from text on every call; nothing is
// persisted. Tables and the method registry are built once and are
// immutable afterwards, so all compute functions are safe for
// concurrent use.
package gematria

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/metaxiamultimedia/scriptures-core/core/errors"
)

// Language identifies one of the three supported scripts.
type Language string

const (
	// Hebrew is the 22-consonant Hebrew script.
	Hebrew Language = "hebrew"
	// Greek is the 24-letter Greek script plus its archaic numerals.
	Greek Language = "greek"
	// English is the 26-letter Latin script as used for English.
	English Language = "english"
	// Auto requests script detection from the text itself.
	Auto Language = "auto"
)

// NormalizeLanguage maps an edition-supplied language name onto one of
// the supported languages by substring match. Any name containing
// "hebrew" is Hebrew, and so on; unrecognized names map to Auto.
func NormalizeLanguage(name string) Language {
	n := strings.ToLower(name)
	switch {
	case strings.Contains(n, "hebrew"):
		return Hebrew
	case strings.Contains(n, "greek"):
		return Greek
	case strings.Contains(n, "english"):
		return English
	}
	return Auto
}

// ComputeFunc computes the value of one text under one system.
type ComputeFunc func(text string) (int, error)

// EmptyInputError is returned by the top-level compute entry points
// when given empty or whitespace-only text. The per-language compute
// functions do not raise it; they treat empty text as zero.
type EmptyInputError struct{}

func (e *EmptyInputError) Error() string {
	return "cannot compute a value for empty text"
}

func (e *EmptyInputError) Unwrap() error {
	return errors.ErrInvalidInput
}

// ArchaicLetterError is returned by strict-mode Greek ordinal
// computation when the text contains letters that carry an isopsephy
// value but have no position in the 24-letter alphabet.
type ArchaicLetterError struct {
	// Letters holds the distinct offending letters in order of first
	// appearance.
	Letters []rune
}

func (e *ArchaicLetterError) Error() string {
	names := make([]string, len(e.Letters))
	for i, r := range e.Letters {
		names[i] = fmt.Sprintf("%c (%s)", r, archaicLetterNames[r])
	}
	return fmt.Sprintf("letters %s have an isopsephy value but no position in the 24-letter ordinal alphabet",
		strings.Join(names, ", "))
}

func (e *ArchaicLetterError) Unwrap() error {
	return errors.ErrUnsupported
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the process-wide registry holding every built-in
// system. It is built on first use and never mutated afterwards.
// Callers that need an isolated registry (tests, embedders with custom
// systems) should build their own with NewRegistry.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
		registerHebrew(defaultRegistry)
		registerGreek(defaultRegistry)
		registerEnglish(defaultRegistry)
	})
	return defaultRegistry
}

// Compute returns the standard value of text in the given language,
// detecting the script when lang is Auto. Empty or whitespace-only
// text yields an EmptyInputError.
func Compute(text string, lang Language) (int, error) {
	return Default().Compute(text, lang)
}

// ComputeMethod resolves name against the default registry and applies
// it to text. Resolution follows the identifier-then-alias rules
// described on Registry.Resolve.
func ComputeMethod(name, text string, lang Language) (int, error) {
	return Default().ComputeMethod(name, text, lang)
}

// ComputeAll returns the value of text under every system registered
// for its language, keyed by system identifier. Systems with a lenient
// variant (Greek ordinal and its derivatives) use it here, so archaic
// letters never abort the sweep.
func ComputeAll(text string, lang Language) (map[string]int, error) {
	return Default().ComputeAll(text, lang)
}

// Compute returns the standard value of text in the given language,
// detecting the script when lang is Auto.
func (r *Registry) Compute(text string, lang Language) (int, error) {
	return r.ComputeMethod("standard", text, lang)
}

// ComputeMethod resolves name and applies it to text. Empty or
// whitespace-only text yields an EmptyInputError before any resolution
// is attempted.
func (r *Registry) ComputeMethod(name, text string, lang Language) (int, error) {
	if strings.TrimSpace(text) == "" {
		return 0, &EmptyInputError{}
	}
	if lang == Auto || lang == "" {
		lang = Detect(text)
	}
	m, err := r.Resolve(name, lang)
	if err != nil {
		return 0, err
	}
	return m.Compute(text)
}

// ComputeAll returns the value of text under every system registered
// for its language, preferring lenient variants where one exists.
func (r *Registry) ComputeAll(text string, lang Language) (map[string]int, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &EmptyInputError{}
	}
	if lang == Auto || lang == "" {
		lang = Detect(text)
	}
	methods := r.ForLanguage(lang)
	if len(methods) == 0 {
		return nil, errors.NewUnsupported("language", string(lang))
	}
	values := make(map[string]int, len(methods))
	for _, m := range methods {
		compute := m.Compute
		if m.ComputeLenient != nil {
			compute = m.ComputeLenient
		}
		v, err := compute(text)
		if err != nil {
			// A failing system is omitted rather than aborting the sweep.
			continue
		}
		values[m.Identifier] = v
	}
	return values, nil
}

// Methods returns every registered method sorted by identifier.
func (r *Registry) Methods() []*Method {
	out := make([]*Method, 0, len(r.methods))
	for _, m := range r.methods {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Identifier < out[j].Identifier })
	return out
}

// ForLanguage returns the methods registered for one language, sorted
// by identifier.
func (r *Registry) ForLanguage(lang Language) []*Method {
	var out []*Method
	for _, m := range r.methods {
		if m.Language == lang {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Identifier < out[j].Identifier })
	return out
}
