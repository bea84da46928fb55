package gematria

import "strings"

// hebrewAlphabet is the 22 consonants in their fixed alphabetic order.
// Final forms are not part of the ordinal alphabet; they fold onto
// their base forms.
var hebrewAlphabet = []rune("אבגדהוזחטיכלמנסעפצקרשת")

// hebrewFinals maps the five final forms to their base consonants.
var hebrewFinals = map[rune]rune{
	'ך': 'כ',
	'ם': 'מ',
	'ן': 'נ',
	'ף': 'פ',
	'ץ': 'צ',
}

// hebrewStandard is the Mispar Hechrachi table: units, tens, hundreds
// across the three tiers of the alphabet. Final forms take their base
// form's value.
var hebrewStandard = map[rune]int{
	'א': 1, 'ב': 2, 'ג': 3, 'ד': 4, 'ה': 5, 'ו': 6, 'ז': 7, 'ח': 8, 'ט': 9,
	'י': 10, 'כ': 20, 'ל': 30, 'מ': 40, 'נ': 50, 'ס': 60, 'ע': 70, 'פ': 80, 'צ': 90,
	'ק': 100, 'ר': 200, 'ש': 300, 'ת': 400,
	'ך': 20, 'ם': 40, 'ן': 50, 'ף': 80, 'ץ': 90,
}

// hebrewMajorFinals is the Mispar Gadol remapping: the five final forms
// continue upward from tav, in the alphabetic order of their base
// consonants.
var hebrewMajorFinals = map[rune]int{
	'ך': 500,
	'ם': 600,
	'ן': 700,
	'ף': 800,
	'ץ': 900,
}

// hebrewOrdinal and hebrewCumulative are derived from the alphabet
// order and the standard table at startup.
var (
	hebrewOrdinal    = map[rune]int{}
	hebrewCumulative = map[rune]int{}
)

func init() {
	running := 0
	for i, r := range hebrewAlphabet {
		hebrewOrdinal[r] = i + 1
		running += hebrewStandard[r]
		hebrewCumulative[r] = running
	}
	for fin, base := range hebrewFinals {
		hebrewOrdinal[fin] = hebrewOrdinal[base]
		hebrewCumulative[fin] = hebrewCumulative[base]
	}
}

// hebrewLetters extracts the consonants of text, discarding vowel
// points, cantillation marks, spaces, and punctuation. Final forms are
// preserved; each system decides how to value them.
func hebrewLetters(text string) []rune {
	var letters []rune
	for _, r := range text {
		if isHebrewLetter(r) {
			letters = append(letters, r)
		}
	}
	return letters
}

// FoldHebrewFinals rewrites the five final forms to their base
// consonants, leaving every other rune untouched.
func FoldHebrewFinals(text string) string {
	return strings.Map(func(r rune) rune {
		if base, ok := hebrewFinals[r]; ok {
			return base
		}
		return r
	}, text)
}

func sumHebrew(text string, value func(rune) int) int {
	total := 0
	for _, r := range hebrewLetters(text) {
		total += value(r)
	}
	return total
}

// HebrewStandard computes Mispar Hechrachi, the standard value.
func HebrewStandard(text string) (int, error) {
	return sumHebrew(text, func(r rune) int { return hebrewStandard[r] }), nil
}

// HebrewMajor computes Mispar Gadol: as standard, except the five
// final forms take the values 500 through 900.
func HebrewMajor(text string) (int, error) {
	return sumHebrew(text, func(r rune) int {
		if v, ok := hebrewMajorFinals[r]; ok {
			return v
		}
		return hebrewStandard[r]
	}), nil
}

// HebrewOrdinal computes Mispar Siduri: each letter's position in the
// 22-letter alphabet, final forms sharing their base position.
func HebrewOrdinal(text string) (int, error) {
	return sumHebrew(text, func(r rune) int { return hebrewOrdinal[r] }), nil
}

// HebrewReduced computes Mispar Katan: each letter's standard value
// reduced to its own digital root before summing. The sum itself is
// not reduced, so בראשית yields 13, not 4.
func HebrewReduced(text string) (int, error) {
	return sumHebrew(text, func(r rune) int { return DigitalRoot(hebrewStandard[r]) }), nil
}

// HebrewIntegralReduced computes Mispar Katan Mispari: the digital
// root of the whole standard value.
func HebrewIntegralReduced(text string) (int, error) {
	v, _ := HebrewStandard(text)
	return DigitalRoot(v), nil
}

// HebrewSquare computes Mispar Perati: the sum of the squares of each
// letter's standard value.
func HebrewSquare(text string) (int, error) {
	return sumHebrew(text, func(r rune) int {
		v := hebrewStandard[r]
		return v * v
	}), nil
}

// HebrewCube computes Mispar Meshulash: the sum of the cubes of each
// letter's standard value.
func HebrewCube(text string) (int, error) {
	return sumHebrew(text, func(r rune) int {
		v := hebrewStandard[r]
		return v * v * v
	}), nil
}

// HebrewCumulative computes Mispar Kidmi: each letter counts as the
// sum of all standard values up to and including itself, so ד counts
// as 1+2+3+4 = 10.
func HebrewCumulative(text string) (int, error) {
	return sumHebrew(text, func(r rune) int { return hebrewCumulative[r] }), nil
}

// HebrewBuilding computes Mispar Bone'eh: the word is valued as the
// sum of its running totals while being built letter by letter.
func HebrewBuilding(text string) (int, error) {
	letters := hebrewLetters(text)
	total, running := 0, 0
	for _, r := range letters {
		running += hebrewStandard[r]
		total += running
	}
	return total, nil
}

// HebrewSquaredTotal computes Mispar HaMerubah HaKlali: the square of
// the whole standard value.
func HebrewSquaredTotal(text string) (int, error) {
	v, _ := HebrewStandard(text)
	return v * v, nil
}

// HebrewLetterCount computes Mispar Otiyot: every letter counts as 1.
func HebrewLetterCount(text string) (int, error) {
	return len(hebrewLetters(text)), nil
}

// Atbash applies the mirror cipher to text: the first letter of the
// alphabet exchanges with the last, the second with the second to
// last, and so on. Final forms are folded to their base consonants
// first; non-Hebrew runes pass through unchanged. Atbash is its own
// inverse on final-normalized text.
func Atbash(text string) string {
	return substitute(text, func(i int) int { return len(hebrewAlphabet) - 1 - i })
}

// Albam applies the halving cipher: the alphabet's first eleven letters
// exchange with its last eleven. Like Atbash, Albam is an involution
// on final-normalized text.
func Albam(text string) string {
	return substitute(text, func(i int) int { return (i + 11) % 22 })
}

func substitute(text string, mirror func(int) int) string {
	return strings.Map(func(r rune) rune {
		if base, ok := hebrewFinals[r]; ok {
			r = base
		}
		i := hebrewOrdinal[r]
		if i == 0 {
			return r
		}
		return hebrewAlphabet[mirror(i-1)]
	}, text)
}

// HebrewAtbash computes the standard value of the Atbash substitution
// of text.
func HebrewAtbash(text string) (int, error) {
	return HebrewStandard(Atbash(text))
}

// HebrewAlbam computes the standard value of the Albam substitution of
// text.
func HebrewAlbam(text string) (int, error) {
	return HebrewStandard(Albam(text))
}

// MusafiKind selects the phrase-level additive modifier.
type MusafiKind int

const (
	// MusafiNone leaves the value unchanged.
	MusafiNone MusafiKind = iota
	// MusafiLetters adds the consonant count of the phrase.
	MusafiLetters
	// MusafiWords adds the word count of the phrase. A word is a
	// whitespace-delimited token containing at least one consonant.
	MusafiWords
)

// ApplyMusafi applies the additive modifier to an already computed
// value. It is a post-processing step and works the same over any
// underlying system.
func ApplyMusafi(value int, text string, kind MusafiKind) int {
	switch kind {
	case MusafiLetters:
		return value + len(hebrewLetters(text))
	case MusafiWords:
		return value + HebrewWordCount(text)
	}
	return value
}

// HebrewWordCount counts the whitespace-delimited tokens of text that
// contain at least one Hebrew consonant.
func HebrewWordCount(text string) int {
	count := 0
	for _, tok := range strings.Fields(text) {
		if ContainsHebrew(tok) {
			count++
		}
	}
	return count
}

// HebrewMusafi computes Mispar Musafi: the standard value plus the
// letter count.
func HebrewMusafi(text string) (int, error) {
	v, _ := HebrewStandard(text)
	return ApplyMusafi(v, text, MusafiLetters), nil
}

func registerHebrew(r *Registry) {
	for _, m := range []*Method{
		{Identifier: "mispar-hechrachi", Name: "Mispar Hechrachi", Alias: "standard", Language: Hebrew, Compute: HebrewStandard},
		{Identifier: "mispar-gadol", Name: "Mispar Gadol", Alias: "major", Language: Hebrew, Compute: HebrewMajor},
		{Identifier: "mispar-siduri", Name: "Mispar Siduri", Alias: "ordinal", Language: Hebrew, Compute: HebrewOrdinal},
		{Identifier: "mispar-katan", Name: "Mispar Katan", Alias: "reduced", Language: Hebrew, Compute: HebrewReduced},
		{Identifier: "mispar-katan-mispari", Name: "Mispar Katan Mispari", Language: Hebrew, Compute: HebrewIntegralReduced},
		{Identifier: "mispar-perati", Name: "Mispar Perati", Language: Hebrew, Compute: HebrewSquare},
		{Identifier: "mispar-meshulash", Name: "Mispar Meshulash", Language: Hebrew, Compute: HebrewCube},
		{Identifier: "mispar-kidmi", Name: "Mispar Kidmi", Language: Hebrew, Compute: HebrewCumulative},
		{Identifier: "mispar-boneh", Name: "Mispar Bone'eh", Language: Hebrew, Compute: HebrewBuilding},
		{Identifier: "mispar-hamerubah-haklali", Name: "Mispar HaMerubah HaKlali", Language: Hebrew, Compute: HebrewSquaredTotal},
		{Identifier: "mispar-otiyot", Name: "Mispar Otiyot", Language: Hebrew, Compute: HebrewLetterCount},
		{Identifier: "mispar-musafi", Name: "Mispar Musafi", Language: Hebrew, Compute: HebrewMusafi},
		{Identifier: "atbash", Name: "Atbash", Language: Hebrew, Compute: HebrewAtbash},
		{Identifier: "albam", Name: "Albam", Language: Hebrew, Compute: HebrewAlbam},
	} {
		r.Register(m)
	}
}
