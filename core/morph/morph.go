// Package morph parses the morphology codes attached to tagged Hebrew
// and Greek editions. Parsing is a fixed-table string split; the
// tables cover the OSHB code scheme for Hebrew/Aramaic and the
// Robinson scheme for Greek.
package morph

// Analysis is the decoded form of one morphology segment.
type Analysis struct {
	PartOfSpeech string
	Stem         string // Hebrew verb stem (binyan)
	Tense        string // Greek tense, Hebrew conjugation type
	Voice        string // Greek only
	Mood         string // Greek only
	Person       string
	Gender       string
	Number       string
	Case         string // Greek only
	State        string // Hebrew nouns: absolute, construct, determined
	Type         string // noun/pronoun/particle subtype
}

// Word is the decoded form of one word's full morphology code, which
// may contain several slash-separated segments (prefixes, the core
// word, suffixes).
type Word struct {
	// Language is "hebrew", "aramaic", or "greek".
	Language string
	Segments []Analysis
}
