package gematria

import (
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// iotaSubscript is the combining Greek ypogegrammeni. Historically it
// writes an adscript iota, so it expands to a full iota letter and
// contributes 10, unlike every other combining mark.
const iotaSubscript = 'ͅ'

// greekStandard is the isopsephy table. It includes the three archaic
// numeral letters (digamma/stigma 6, koppa 90, sampi 900), which carry
// a standard value but no ordinal position.
var greekStandard = map[rune]int{
	'α': 1, 'β': 2, 'γ': 3, 'δ': 4, 'ε': 5, 'ζ': 7, 'η': 8, 'θ': 9,
	'ι': 10, 'κ': 20, 'λ': 30, 'μ': 40, 'ν': 50, 'ξ': 60, 'ο': 70, 'π': 80,
	'ρ': 100, 'σ': 200, 'τ': 300, 'υ': 400, 'φ': 500, 'χ': 600, 'ψ': 700, 'ω': 800,
	'ϝ': 6, 'ϛ': 6, 'ϟ': 90, 'ϙ': 90, 'ϡ': 900,
}

// greekAlphabet is the historically fixed 24-letter order used for
// ordinal values. The archaic numerals are deliberately absent.
var greekAlphabet = []rune("αβγδεζηθικλμνξοπρστυφχψω")

var greekOrdinalPos = map[rune]int{}

func init() {
	for i, r := range greekAlphabet {
		greekOrdinalPos[r] = i + 1
	}
}

// greekVariants folds presentation variants onto the letters the
// tables are keyed by.
var greekVariants = map[rune]rune{
	'ς': 'σ', // final sigma
	'ϲ': 'σ', // lunate sigma
	'ϐ': 'β',
	'ϑ': 'θ',
	'ϰ': 'κ',
	'ϱ': 'ρ',
	'ϕ': 'φ',
	'ϖ': 'π',
}

// archaicLetterNames names the numeral-only letters for error messages.
var archaicLetterNames = map[rune]string{
	'ϝ': "digamma",
	'ϛ': "stigma",
	'ϟ': "koppa",
	'ϙ': "archaic koppa",
	'ϡ': "sampi",
}

// greekLetters canonicalizes text for table lookup: decompose, expand
// iota subscripts to a trailing iota, strip the remaining combining
// marks, lowercase, and fold variant letter forms. The subscript must
// be expanded before marks are stripped or its value is silently lost.
func greekLetters(text string) []rune {
	var letters []rune
	for _, r := range norm.NFD.String(text) {
		if r == iotaSubscript {
			letters = append(letters, 'ι')
			continue
		}
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		r = unicode.ToLower(r)
		if folded, ok := greekVariants[r]; ok {
			r = folded
		}
		if _, ok := greekStandard[r]; ok {
			letters = append(letters, r)
		}
	}
	return letters
}

// GreekStandard computes isopsephy, the standard Greek value.
func GreekStandard(text string) (int, error) {
	total := 0
	for _, r := range greekLetters(text) {
		total += greekStandard[r]
	}
	return total, nil
}

// GreekReduced computes the pythmen: the digital root of the whole
// isopsephy value.
func GreekReduced(text string) (int, error) {
	v, _ := GreekStandard(text)
	return DigitalRoot(v), nil
}

// GreekOrdinal computes the ordinal value in strict mode: any archaic
// numeral letter in the text makes the call fail with an
// ArchaicLetterError naming the distinct offenders.
func GreekOrdinal(text string) (int, error) {
	return greekOrdinalSum(text, true, func(pos int) int { return pos })
}

// GreekOrdinalLenient computes the ordinal value treating archaic
// numeral letters as 0 instead of failing.
func GreekOrdinalLenient(text string) (int, error) {
	return greekOrdinalSum(text, false, func(pos int) int { return pos })
}

// GreekSquare computes the sum of the squares of each letter's
// standard value.
func GreekSquare(text string) (int, error) {
	total := 0
	for _, r := range greekLetters(text) {
		v := greekStandard[r]
		total += v * v
	}
	return total, nil
}

// GreekCube computes the sum of the cubes of each letter's standard
// value.
func GreekCube(text string) (int, error) {
	total := 0
	for _, r := range greekLetters(text) {
		v := greekStandard[r]
		total += v * v * v
	}
	return total, nil
}

// GreekTrigonal computes the sum of the triangular numbers of each
// letter's ordinal position. It derives from the ordinal alphabet, so
// it inherits the strict-mode contract for archaic letters.
func GreekTrigonal(text string) (int, error) {
	return greekOrdinalSum(text, true, triangular)
}

// GreekTrigonalLenient is GreekTrigonal with archaic letters counting
// as 0.
func GreekTrigonalLenient(text string) (int, error) {
	return greekOrdinalSum(text, false, triangular)
}

func triangular(pos int) int {
	return pos * (pos + 1) / 2
}

// greekOrdinalSum walks the canonicalized letters summing f(position).
// Archaic letters either accumulate into an error (strict) or count as
// 0 (lenient).
func greekOrdinalSum(text string, strict bool, f func(pos int) int) (int, error) {
	var offending []rune
	seen := map[rune]bool{}
	total := 0
	for _, r := range greekLetters(text) {
		pos, ok := greekOrdinalPos[r]
		if !ok {
			if strict && !seen[r] {
				seen[r] = true
				offending = append(offending, r)
			}
			continue
		}
		total += f(pos)
	}
	if len(offending) > 0 {
		return 0, &ArchaicLetterError{Letters: offending}
	}
	return total, nil
}

func registerGreek(r *Registry) {
	for _, m := range []*Method{
		{Identifier: "isopsephy", Name: "Isopsephy", Alias: "standard", Language: Greek, Compute: GreekStandard},
		{Identifier: "greek-ordinal", Name: "Greek Ordinal", Alias: "ordinal", Language: Greek, Compute: GreekOrdinal, ComputeLenient: GreekOrdinalLenient},
		{Identifier: "pythmenes", Name: "Pythmenes", Alias: "reduced", Language: Greek, Compute: GreekReduced},
		{Identifier: "greek-square", Name: "Greek Square", Language: Greek, Compute: GreekSquare},
		{Identifier: "greek-cube", Name: "Greek Cube", Language: Greek, Compute: GreekCube},
		{Identifier: "greek-trigonal", Name: "Greek Trigonal", Language: Greek, Compute: GreekTrigonal, ComputeLenient: GreekTrigonalLenient},
	} {
		r.Register(m)
	}
}
