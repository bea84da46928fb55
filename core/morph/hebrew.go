package morph

import (
	"strings"

	"github.com/metaxiamultimedia/scriptures-core/core/errors"
)

// OSHB morphology codes: a language prefix (H or A), then one or more
// slash-separated segments. Each segment opens with a part-of-speech
// letter whose value decides how the remaining letters are read.

var hebrewPartOfSpeech = map[byte]string{
	'A': "adjective",
	'C': "conjunction",
	'D': "adverb",
	'N': "noun",
	'P': "pronoun",
	'R': "preposition",
	'S': "suffix",
	'T': "particle",
	'V': "verb",
}

var hebrewStems = map[byte]string{
	'q': "qal",
	'N': "niphal",
	'p': "piel",
	'P': "pual",
	'h': "hiphil",
	'H': "hophal",
	't': "hithpael",
}

var hebrewConjugations = map[byte]string{
	'p': "perfect",
	'q': "sequential perfect",
	'i': "imperfect",
	'w': "sequential imperfect",
	'h': "cohortative",
	'j': "jussive",
	'v': "imperative",
	'r': "participle",
	's': "passive participle",
	'a': "infinitive absolute",
	'c': "infinitive construct",
}

var hebrewPersons = map[byte]string{
	'1': "first",
	'2': "second",
	'3': "third",
}

var hebrewGenders = map[byte]string{
	'm': "masculine",
	'f': "feminine",
	'b': "both",
	'c': "common",
}

var hebrewNumbers = map[byte]string{
	's': "singular",
	'p': "plural",
	'd': "dual",
}

var hebrewStates = map[byte]string{
	'a': "absolute",
	'c': "construct",
	'd': "determined",
}

var hebrewNounTypes = map[byte]string{
	'c': "common",
	'g': "gentilic",
	'p': "proper",
}

// ParseHebrew decodes an OSHB morphology code such as "HVqp3ms" or
// "HC/Vqw3ms". The leading letter selects Hebrew (H) or Aramaic (A).
func ParseHebrew(code string) (*Word, error) {
	if code == "" {
		return nil, errors.NewParse("morph code", "", "empty code")
	}
	var lang string
	switch code[0] {
	case 'H':
		lang = "hebrew"
	case 'A':
		lang = "aramaic"
	default:
		return nil, errors.NewParse("morph code", "", "missing H or A language prefix: "+code)
	}

	w := &Word{Language: lang}
	for _, seg := range strings.Split(code[1:], "/") {
		if seg == "" {
			return nil, errors.NewParse("morph code", "", "empty segment in "+code)
		}
		a, err := parseHebrewSegment(seg)
		if err != nil {
			return nil, err
		}
		w.Segments = append(w.Segments, *a)
	}
	return w, nil
}

func parseHebrewSegment(seg string) (*Analysis, error) {
	pos, ok := hebrewPartOfSpeech[seg[0]]
	if !ok {
		return nil, errors.NewParse("morph code", "", "unknown part of speech in segment "+seg)
	}
	a := &Analysis{PartOfSpeech: pos}
	rest := seg[1:]

	switch seg[0] {
	case 'V':
		// stem, conjugation, then person/gender/number as present
		if len(rest) > 0 {
			a.Stem = hebrewStems[rest[0]]
			rest = rest[1:]
		}
		if len(rest) > 0 {
			a.Tense = hebrewConjugations[rest[0]]
			rest = rest[1:]
		}
		readHebrewAgreement(a, rest)
	case 'N':
		if len(rest) > 0 {
			a.Type = hebrewNounTypes[rest[0]]
			rest = rest[1:]
		}
		readHebrewNominal(a, rest)
	case 'A', 'S', 'P':
		readHebrewAgreement(a, rest)
	}
	return a, nil
}

// readHebrewAgreement fills person, gender, and number from whatever
// trailing letters the segment has; codes omit slots freely.
func readHebrewAgreement(a *Analysis, rest string) {
	for i := 0; i < len(rest); i++ {
		c := rest[i]
		switch {
		case a.Person == "" && hebrewPersons[c] != "":
			a.Person = hebrewPersons[c]
		case a.Gender == "" && hebrewGenders[c] != "":
			a.Gender = hebrewGenders[c]
		case a.Number == "" && hebrewNumbers[c] != "":
			a.Number = hebrewNumbers[c]
		}
	}
}

// readHebrewNominal fills gender, number, and state for noun-like
// segments.
func readHebrewNominal(a *Analysis, rest string) {
	for i := 0; i < len(rest); i++ {
		c := rest[i]
		switch {
		case a.Gender == "" && hebrewGenders[c] != "":
			a.Gender = hebrewGenders[c]
		case a.Number == "" && hebrewNumbers[c] != "":
			a.Number = hebrewNumbers[c]
		case a.State == "" && hebrewStates[c] != "":
			a.State = hebrewStates[c]
		}
	}
}
