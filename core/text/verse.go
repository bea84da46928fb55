package text

import (
	"github.com/metaxiamultimedia/scriptures-core/core/gematria"
)

// AggregationOptions configures which words of a verse participate in
// an aggregate value. The zero value selects the primary reading and
// excludes colophons.
type AggregationOptions struct {
	// Variant selects which reading of a dual-reading word counts.
	// Words without a reading tag always count.
	Variant Variant

	// IncludeColophons keeps words flagged as colophon in the sum.
	IncludeColophons bool
}

func (o AggregationOptions) variant() Variant {
	if o.Variant == "" {
		return VariantPrimary
	}
	return o.Variant
}

// VerseValues computes aggregate values over a verse's word
// collection, applying the exclusion policy word by word.
type VerseValues struct {
	words []Word
	lang  gematria.Language
	opts  AggregationOptions
	reg   *gematria.Registry
}

// NewVerseValues returns an aggregate view over words using the
// default registry.
func NewVerseValues(words []Word, lang gematria.Language, opts AggregationOptions) *VerseValues {
	return NewVerseValuesIn(gematria.Default(), words, lang, opts)
}

// NewVerseValuesIn is NewVerseValues with an explicit registry.
func NewVerseValuesIn(reg *gematria.Registry, words []Word, lang gematria.Language, opts AggregationOptions) *VerseValues {
	return &VerseValues{words: words, lang: lang, opts: opts, reg: reg}
}

// Included returns the words that survive the exclusion policy, in
// stored order: colophon words drop unless included, and a tagged
// reading drops when it is not the selected variant.
func (v *VerseValues) Included() []Word {
	out := make([]Word, 0, len(v.words))
	selected := v.opts.variant()
	for _, w := range v.words {
		if !v.opts.IncludeColophons && w.IsColophon() {
			continue
		}
		if w.Variant != "" && w.Variant != selected {
			continue
		}
		out = append(out, w)
	}
	return out
}

// Get computes the named system value for each surviving word and
// returns the sum. A word whose computation fails contributes 0; one
// malformed word never invalidates the verse total.
func (v *VerseValues) Get(name string) int {
	total := 0
	for _, w := range v.Included() {
		wv := NewWordValuesIn(v.reg, w.Text, v.lang)
		total += wv.Get(name)
	}
	return total
}
