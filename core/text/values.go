package text

import (
	"log/slog"

	"github.com/metaxiamultimedia/scriptures-core/core/gematria"
)

// Values is a deferred-evaluation view over some text: a named system
// value is computed only when Get is called with that name, and
// recomputed on every call.
type Values interface {
	// Get returns the value of the named system, or 0 when the name
	// does not resolve or the computation fails. The silent zero is a
	// deliberate leniency toward irregular source data; it is never an
	// error.
	Get(name string) int
}

// WordValues computes values for a single text string.
type WordValues struct {
	text string
	lang gematria.Language
	reg  *gematria.Registry
}

// NewWordValues returns a view over one text string using the default
// registry.
func NewWordValues(text string, lang gematria.Language) *WordValues {
	return NewWordValuesIn(gematria.Default(), text, lang)
}

// NewWordValuesIn is NewWordValues with an explicit registry.
func NewWordValuesIn(reg *gematria.Registry, text string, lang gematria.Language) *WordValues {
	if lang == gematria.Auto || lang == "" {
		lang = gematria.Detect(text)
	}
	return &WordValues{text: text, lang: lang, reg: reg}
}

// Text returns the wrapped text.
func (v *WordValues) Text() string {
	return v.text
}

// Language returns the language values are computed in.
func (v *WordValues) Language() gematria.Language {
	return v.lang
}

// Get computes the named system value for the wrapped text.
func (v *WordValues) Get(name string) int {
	m, err := v.reg.Resolve(name, v.lang)
	if err != nil {
		slog.Debug("unresolved method name, using zero", "method", name, "language", v.lang)
		return 0
	}
	value, err := m.Compute(v.text)
	if err != nil {
		slog.Debug("word computation failed, using zero", "method", name, "error", err)
		return 0
	}
	return value
}

// NewVerseTextValues returns a view over a verse's full raw text
// string. Because the raw text still contains colophon words, this is
// the container to use when colophons should count; it is otherwise
// identical to a single-word view.
func NewVerseTextValues(raw string, lang gematria.Language) *WordValues {
	return NewWordValues(raw, lang)
}
