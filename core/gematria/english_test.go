package gematria

import "testing"

func TestEnglishSystems(t *testing.T) {
	tests := []struct {
		name    string
		compute ComputeFunc
		text    string
		want    int
	}{
		{"ordinal cab", EnglishOrdinal, "cab", 6},
		{"ordinal liberty", EnglishOrdinal, "Liberty", 91},
		{"ordinal ignores punctuation", EnglishOrdinal, "c-a b!", 6},
		{"ordinal empty", EnglishOrdinal, "", 0},
		{"reduced liberty", EnglishReduced, "Liberty", 1},
		{"reduced cab", EnglishReduced, "cab", 6},
		{"standard cab", EnglishStandard, "cab", 6},
		{"standard late letters", EnglishStandard, "xyz", 1200},
		{"standard post-z letters", EnglishStandard, "juvw", 2400},
		{"sumerian cab", EnglishSumerian, "cab", 36},
		{"centenary before jump", EnglishCentenary, "abc", 6},
		{"centenary jump range", EnglishCentenary, "not", 349},
		{"centenary after jump", EnglishCentenary, "uvw", 66},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.compute(tt.text)
			if err != nil {
				t.Fatalf("compute(%q) error: %v", tt.text, err)
			}
			if got != tt.want {
				t.Errorf("compute(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestEnglishCaseInsensitiveSystems(t *testing.T) {
	for _, compute := range []ComputeFunc{EnglishOrdinal, EnglishReduced, EnglishStandard, EnglishSumerian, EnglishCentenary} {
		lower, _ := compute("gematria")
		upper, _ := compute("GEMATRIA")
		if lower != upper {
			t.Errorf("case folding broken: %d != %d", lower, upper)
		}
	}
}

func TestEnglishObjective(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"a", 1},
		{"z", 26},
		{"A", 27},
		{"Z", 52},
		{"Aa", 28},
		{"zZ", 78},
	}
	for _, tt := range tests {
		got, err := EnglishObjective(tt.text)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("EnglishObjective(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}

	lower, _ := EnglishObjective("word")
	upper, _ := EnglishObjective("WORD")
	if lower == upper {
		t.Error("objective system must be case-sensitive")
	}
}

func TestEnglishBacon(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"a", 1},
		{"A", 2},
		{"b", 3},
		{"B", 4},
		{"z", 51},
		{"Z", 52},
		{"Aa", 3},
	}
	for _, tt := range tests {
		got, err := EnglishBacon(tt.text)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("EnglishBacon(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}
