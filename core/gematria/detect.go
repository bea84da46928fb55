package gematria

// Script detection is a presence test, not a majority vote: a single
// Hebrew letter anywhere in the text classifies the whole string as
// Hebrew. Hebrew is tested before Greek, and English is the default
// when neither script appears.

// ContainsHebrew reports whether text contains any letter from the
// Hebrew Unicode block.
func ContainsHebrew(text string) bool {
	for _, r := range text {
		if isHebrewLetter(r) {
			return true
		}
	}
	return false
}

// ContainsGreek reports whether text contains any letter from the
// Greek and Coptic or Greek Extended blocks.
func ContainsGreek(text string) bool {
	for _, r := range text {
		if isGreekLetter(r) {
			return true
		}
	}
	return false
}

// Detect classifies text as Hebrew, Greek, or English.
func Detect(text string) Language {
	if ContainsHebrew(text) {
		return Hebrew
	}
	if ContainsGreek(text) {
		return Greek
	}
	return English
}

// isHebrewLetter reports whether r is a Hebrew consonant, including the
// five final forms (U+05D0 through U+05EA).
func isHebrewLetter(r rune) bool {
	return r >= 'א' && r <= 'ת'
}

// isGreekLetter reports whether r sits in the Greek and Coptic block
// (letters only, not combining marks) or the Greek Extended block.
func isGreekLetter(r rune) bool {
	switch {
	case r >= 0x0386 && r <= 0x03FF && r != 0x0387:
		// Greek and Coptic letters, including the archaic numerals and
		// variant letter forms. U+0387 is the ano teleia punctuation.
		return true
	case r >= 0x1F00 && r <= 0x1FFE:
		// Greek Extended: precomposed letters with breathings, accents,
		// and iota subscripts.
		return true
	}
	return false
}
