// Package text models words and verses of structured scripture text
// and computes gematria values over them on demand.
package text

import (
	"github.com/metaxiamultimedia/scriptures-core/core/gematria"
)

// Variant tags one of the two readings of a dual-reading word: the
// traditionally read form (qere, primary) or the written consonantal
// form (ketiv, alternate).
type Variant string

const (
	// VariantPrimary is the traditionally read form.
	VariantPrimary Variant = "primary"
	// VariantAlternate is the written consonantal form.
	VariantAlternate Variant = "alternate"
)

// Field is a tri-state value for tagging fields like lemma and morph:
// absent entirely, present but explicitly null, or present with a
// value. The distinction between absent and present-and-null decides
// scribal-annotation classification, so it cannot be collapsed into a
// plain string.
type Field struct {
	Present bool
	Valid   bool
	Value   string
}

// FieldValue returns a present field holding v.
func FieldValue(v string) Field {
	return Field{Present: true, Valid: true, Value: v}
}

// NullField returns a field that is present but explicitly null.
func NullField() Field {
	return Field{Present: true}
}

// WordMetadata carries per-word flags supplied by an edition.
type WordMetadata struct {
	Colophon bool
}

// Word is one word of a verse as supplied by the ingestion layer. It
// is immutable once constructed; the computation layer never mutates
// it.
type Word struct {
	Position int
	Text     string
	Variant  Variant // empty when the word carries no reading tag
	Colophon bool
	Metadata *WordMetadata
	Lemma    Field
	Morph    Field
}

// IsColophon reports whether the word is flagged as part of a scribal
// colophon, via either the explicit flag or the nested metadata flag.
// The two are OR-ed; neither overrides the other.
func (w *Word) IsColophon() bool {
	if w.Colophon {
		return true
	}
	return w.Metadata != nil && w.Metadata.Colophon
}

// IsAnnotation reports whether the word is a non-scriptural scribal
// annotation: both lemma and morph are present and explicitly null,
// and the text contains no Hebrew or Greek letters. Words that simply
// lack the fields (an untagged English edition, say) are never
// classified as annotations.
func (w *Word) IsAnnotation() bool {
	if !w.Lemma.Present || w.Lemma.Valid {
		return false
	}
	if !w.Morph.Present || w.Morph.Valid {
		return false
	}
	return !gematria.ContainsHebrew(w.Text) && !gematria.ContainsGreek(w.Text)
}

// FilterAnnotations returns words with scribal annotations removed,
// preserving order. The ingestion layer applies this before handing a
// verse to the computation layer.
func FilterAnnotations(words []Word) []Word {
	out := make([]Word, 0, len(words))
	for _, w := range words {
		if w.IsAnnotation() {
			continue
		}
		out = append(out, w)
	}
	return out
}

// Verse is a verse as supplied by the ingestion layer: its words in
// stored order plus the full raw text.
type Verse struct {
	Ref      string
	Language gematria.Language
	Raw      string
	Words    []Word
}
