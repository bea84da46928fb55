package gematria

import "testing"

func TestDetect(t *testing.T) {
	tests := []struct {
		text string
		want Language
	}{
		{"בראשית", Hebrew},
		{"λογος", Greek},
		{"hello", English},
		{"", English},
		{"mostly latin with one א letter", Hebrew}, // presence, not majority
		{"mostly latin with one ξ letter", Greek},
		{"ᾳ", Greek}, // Greek Extended block
		{"ϙ", Greek}, // archaic numeral
		{"123 ...", English},
	}

	for _, tt := range tests {
		if got := Detect(tt.text); got != tt.want {
			t.Errorf("Detect(%q) = %s, want %s", tt.text, got, tt.want)
		}
	}
}

func TestDetectHebrewBeforeGreek(t *testing.T) {
	// Both scripts present: Hebrew is tested first.
	if got := Detect("א λ"); got != Hebrew {
		t.Errorf("Detect(mixed) = %s, want hebrew", got)
	}
}

func TestScriptPredicates(t *testing.T) {
	if !ContainsHebrew("x ם y") {
		t.Error("ContainsHebrew should see a final mem")
	}
	if ContainsHebrew("abc") {
		t.Error("ContainsHebrew(abc) should be false")
	}
	if !ContainsGreek("x ς y") {
		t.Error("ContainsGreek should see a final sigma")
	}
	if ContainsGreek("abc") {
		t.Error("ContainsGreek(abc) should be false")
	}
}

func TestNormalizeLanguage(t *testing.T) {
	tests := []struct {
		name string
		want Language
	}{
		{"Hebrew", Hebrew},
		{"Ancient Hebrew (WLC)", Hebrew},
		{"Koine Greek", Greek},
		{"greek", Greek},
		{"English (KJV)", English},
		{"Latin", Auto},
		{"", Auto},
	}
	for _, tt := range tests {
		if got := NormalizeLanguage(tt.name); got != tt.want {
			t.Errorf("NormalizeLanguage(%q) = %s, want %s", tt.name, got, tt.want)
		}
	}
}
