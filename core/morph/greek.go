package morph

import (
	"strings"

	"github.com/metaxiamultimedia/scriptures-core/core/errors"
)

// Robinson morphology codes: a part-of-speech tag, then hyphenated
// blocks of tense/voice/mood and case/number/gender or person/number,
// e.g. "V-PAI-3S", "N-NSM", "T-GSF".

var greekPartOfSpeech = map[string]string{
	"N":    "noun",
	"A":    "adjective",
	"T":    "article",
	"V":    "verb",
	"P":    "personal pronoun",
	"R":    "relative pronoun",
	"C":    "reciprocal pronoun",
	"D":    "demonstrative pronoun",
	"K":    "correlative pronoun",
	"I":    "interrogative pronoun",
	"X":    "indefinite pronoun",
	"ADV":  "adverb",
	"CONJ": "conjunction",
	"COND": "conditional particle",
	"PRT":  "particle",
	"PREP": "preposition",
	"INJ":  "interjection",
	"ARAM": "aramaic transliteration",
	"HEB":  "hebrew transliteration",
}

var greekTenses = map[byte]string{
	'P': "present",
	'I': "imperfect",
	'F': "future",
	'A': "aorist",
	'R': "perfect",
	'L': "pluperfect",
}

var greekVoices = map[byte]string{
	'A': "active",
	'M': "middle",
	'P': "passive",
	'E': "middle or passive",
	'D': "middle deponent",
	'O': "passive deponent",
	'N': "middle or passive deponent",
}

var greekMoods = map[byte]string{
	'I': "indicative",
	'S': "subjunctive",
	'O': "optative",
	'M': "imperative",
	'N': "infinitive",
	'P': "participle",
}

var greekCases = map[byte]string{
	'N': "nominative",
	'G': "genitive",
	'D': "dative",
	'A': "accusative",
	'V': "vocative",
}

var greekNumbers = map[byte]string{
	'S': "singular",
	'P': "plural",
}

var greekGenders = map[byte]string{
	'M': "masculine",
	'F': "feminine",
	'N': "neuter",
}

var greekPersons = map[byte]string{
	'1': "first",
	'2': "second",
	'3': "third",
}

// ParseGreek decodes a Robinson morphology code.
func ParseGreek(code string) (*Word, error) {
	if code == "" {
		return nil, errors.NewParse("morph code", "", "empty code")
	}
	blocks := strings.Split(code, "-")
	pos, ok := greekPartOfSpeech[blocks[0]]
	if !ok {
		return nil, errors.NewParse("morph code", "", "unknown part of speech in "+code)
	}

	a := Analysis{PartOfSpeech: pos}
	for _, block := range blocks[1:] {
		readGreekBlock(&a, block)
	}
	return &Word{Language: "greek", Segments: []Analysis{a}}, nil
}

// readGreekBlock classifies one hyphenated block. A block starting
// with a digit is person+number; a three-letter block on a verb is
// tense+voice+mood; otherwise it is case+number+gender in whatever
// prefix of that order is present.
func readGreekBlock(a *Analysis, block string) {
	if block == "" {
		return
	}
	if block[0] >= '1' && block[0] <= '3' {
		a.Person = greekPersons[block[0]]
		if len(block) > 1 {
			a.Number = greekNumbers[block[1]]
		}
		return
	}
	if a.PartOfSpeech == "verb" && a.Tense == "" && len(block) == 3 {
		a.Tense = greekTenses[block[0]]
		a.Voice = greekVoices[block[1]]
		a.Mood = greekMoods[block[2]]
		return
	}
	if len(block) > 0 {
		a.Case = greekCases[block[0]]
	}
	if len(block) > 1 {
		a.Number = greekNumbers[block[1]]
	}
	if len(block) > 2 {
		a.Gender = greekGenders[block[2]]
	}
}
