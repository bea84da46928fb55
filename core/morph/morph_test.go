package morph

import "testing"

func TestParseHebrew(t *testing.T) {
	tests := []struct {
		code string
		lang string
		want []Analysis
	}{
		{
			code: "HVqp3ms",
			lang: "hebrew",
			want: []Analysis{{
				PartOfSpeech: "verb",
				Stem:         "qal",
				Tense:        "perfect",
				Person:       "third",
				Gender:       "masculine",
				Number:       "singular",
			}},
		},
		{
			code: "HNcmpa",
			lang: "hebrew",
			want: []Analysis{{
				PartOfSpeech: "noun",
				Type:         "common",
				Gender:       "masculine",
				Number:       "plural",
				State:        "absolute",
			}},
		},
		{
			code: "HC/Vqw3ms",
			lang: "hebrew",
			want: []Analysis{
				{PartOfSpeech: "conjunction"},
				{
					PartOfSpeech: "verb",
					Stem:         "qal",
					Tense:        "sequential imperfect",
					Person:       "third",
					Gender:       "masculine",
					Number:       "singular",
				},
			},
		},
		{
			code: "ANcmsd",
			lang: "aramaic",
			want: []Analysis{{
				PartOfSpeech: "noun",
				Type:         "common",
				Gender:       "masculine",
				Number:       "singular",
				State:        "determined",
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			w, err := ParseHebrew(tt.code)
			if err != nil {
				t.Fatalf("ParseHebrew(%q) error: %v", tt.code, err)
			}
			if w.Language != tt.lang {
				t.Errorf("Language = %q, want %q", w.Language, tt.lang)
			}
			if len(w.Segments) != len(tt.want) {
				t.Fatalf("got %d segments, want %d", len(w.Segments), len(tt.want))
			}
			for i, want := range tt.want {
				if w.Segments[i] != want {
					t.Errorf("segment %d = %+v, want %+v", i, w.Segments[i], want)
				}
			}
		})
	}
}

func TestParseHebrewErrors(t *testing.T) {
	for _, code := range []string{"", "Vqp3ms", "H", "HZ", "HC//Vqp3ms"} {
		if _, err := ParseHebrew(code); err == nil {
			t.Errorf("ParseHebrew(%q) should fail", code)
		}
	}
}

func TestParseGreek(t *testing.T) {
	tests := []struct {
		code string
		want Analysis
	}{
		{
			code: "V-PAI-3S",
			want: Analysis{
				PartOfSpeech: "verb",
				Tense:        "present",
				Voice:        "active",
				Mood:         "indicative",
				Person:       "third",
				Number:       "singular",
			},
		},
		{
			code: "N-NSM",
			want: Analysis{
				PartOfSpeech: "noun",
				Case:         "nominative",
				Number:       "singular",
				Gender:       "masculine",
			},
		},
		{
			code: "T-GSF",
			want: Analysis{
				PartOfSpeech: "article",
				Case:         "genitive",
				Number:       "singular",
				Gender:       "feminine",
			},
		},
		{
			code: "CONJ",
			want: Analysis{PartOfSpeech: "conjunction"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			w, err := ParseGreek(tt.code)
			if err != nil {
				t.Fatalf("ParseGreek(%q) error: %v", tt.code, err)
			}
			if len(w.Segments) != 1 {
				t.Fatalf("got %d segments, want 1", len(w.Segments))
			}
			if w.Segments[0] != tt.want {
				t.Errorf("analysis = %+v, want %+v", w.Segments[0], tt.want)
			}
		})
	}
}

func TestParseGreekErrors(t *testing.T) {
	for _, code := range []string{"", "Q-NSM"} {
		if _, err := ParseGreek(code); err == nil {
			t.Errorf("ParseGreek(%q) should fail", code)
		}
	}
}
