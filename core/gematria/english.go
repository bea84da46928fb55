package gematria

// The English systems model published source tables from the 16th to
// 19th centuries. They share one extraction step; case folding is per
// system, since two of the tables assign different values to upper and
// lower case.

// englishAgrippa is Agrippa's 1532 tiered table. It follows the
// 23-letter Latin alphabet of its day, which is why j, u, and w land
// after z instead of in modern alphabetic order.
var englishAgrippa = map[rune]int{
	'a': 1, 'b': 2, 'c': 3, 'd': 4, 'e': 5, 'f': 6, 'g': 7, 'h': 8, 'i': 9,
	'k': 10, 'l': 20, 'm': 30, 'n': 40, 'o': 50, 'p': 60, 'q': 70, 'r': 80, 's': 90,
	't': 100, 'u': 200, 'x': 300, 'y': 400, 'z': 500,
	'j': 600, 'v': 700, 'w': 900,
}

// englishLetters extracts the A–Z letters of text. With fold set,
// letters are lowercased; the case-sensitive systems pass false.
func englishLetters(text string, fold bool) []rune {
	var letters []rune
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z':
			letters = append(letters, r)
		case r >= 'A' && r <= 'Z':
			if fold {
				r = r - 'A' + 'a'
			}
			letters = append(letters, r)
		}
	}
	return letters
}

// EnglishOrdinal computes the sequential position value: a=1 through
// z=26, case-insensitive.
func EnglishOrdinal(text string) (int, error) {
	total := 0
	for _, r := range englishLetters(text, true) {
		total += int(r-'a') + 1
	}
	return total, nil
}

// EnglishReduced computes the digital root of the ordinal value. It is
// a modifier over the ordinal system, not an independent table.
func EnglishReduced(text string) (int, error) {
	v, _ := EnglishOrdinal(text)
	return DigitalRoot(v), nil
}

// EnglishStandard computes the value under Agrippa's table.
func EnglishStandard(text string) (int, error) {
	total := 0
	for _, r := range englishLetters(text, true) {
		total += englishAgrippa[r]
	}
	return total, nil
}

// EnglishSumerian computes six times the ordinal position per letter
// (a=6 through z=156).
func EnglishSumerian(text string) (int, error) {
	v, _ := EnglishOrdinal(text)
	return v * 6, nil
}

// EnglishObjective computes the case-sensitive system that assigns
// disjoint ranges to the two cases: a–z take 1–26 and A–Z take 27–52.
func EnglishObjective(text string) (int, error) {
	total := 0
	for _, r := range englishLetters(text, false) {
		if r >= 'a' && r <= 'z' {
			total += int(r-'a') + 1
		} else {
			total += int(r-'A') + 27
		}
	}
	return total, nil
}

// EnglishBacon computes the case-sensitive interleaved system: a=1,
// A=2, b=3, B=4, through z=51, Z=52.
func EnglishBacon(text string) (int, error) {
	total := 0
	for _, r := range englishLetters(text, false) {
		if r >= 'a' && r <= 'z' {
			total += 2*int(r-'a') + 1
		} else {
			total += 2*int(r-'A') + 2
		}
	}
	return total, nil
}

// englishCenturyJump holds the hardcoded values for the composite
// 19th-century table: letters at alphabet positions 14 through 20
// write a prefixed hundred before their ordinal. The published source
// tables are not self-consistent, so the values are hardcoded rather
// than derived.
var englishCenturyJump = map[rune]int{
	'n': 114, 'o': 115, 'p': 116, 'q': 117, 'r': 118, 's': 119, 't': 120,
}

// EnglishCentenary computes the composite source table: ordinal values
// everywhere except positions 14–20, which take the hardcoded jump.
func EnglishCentenary(text string) (int, error) {
	total := 0
	for _, r := range englishLetters(text, true) {
		if v, ok := englishCenturyJump[r]; ok {
			total += v
			continue
		}
		total += int(r-'a') + 1
	}
	return total, nil
}

func registerEnglish(r *Registry) {
	for _, m := range []*Method{
		{Identifier: "english-ordinal", Name: "English Ordinal", Alias: "ordinal", Language: English, Compute: EnglishOrdinal},
		{Identifier: "english-reduced", Name: "English Reduced", Alias: "reduced", Language: English, Compute: EnglishReduced},
		{Identifier: "english-standard", Name: "English Standard (Agrippa)", Alias: "standard", Language: English, Compute: EnglishStandard},
		{Identifier: "english-sumerian", Name: "English Sumerian", Alias: "sumerian", Language: English, Compute: EnglishSumerian},
		{Identifier: "english-objective", Name: "English Objective", Language: English, Compute: EnglishObjective},
		{Identifier: "english-bacon", Name: "Francis Bacon", Language: English, Compute: EnglishBacon},
		{Identifier: "english-centenary", Name: "English Centenary", Language: English, Compute: EnglishCentenary},
	} {
		r.Register(m)
	}
}
