package text

import "testing"

func TestIsColophon(t *testing.T) {
	tests := []struct {
		name string
		word Word
		want bool
	}{
		{"unflagged", Word{Text: "ברא"}, false},
		{"explicit flag", Word{Text: "ברא", Colophon: true}, true},
		{"metadata flag", Word{Text: "ברא", Metadata: &WordMetadata{Colophon: true}}, true},
		{"both flags", Word{Text: "ברא", Colophon: true, Metadata: &WordMetadata{Colophon: true}}, true},
		{"metadata without flag", Word{Text: "ברא", Metadata: &WordMetadata{}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.word.IsColophon(); got != tt.want {
				t.Errorf("IsColophon() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsAnnotation(t *testing.T) {
	tests := []struct {
		name string
		word Word
		want bool
	}{
		{
			// Both fields present-and-null, no Hebrew or Greek letters:
			// a scribal note such as a BHS siglum.
			name: "null fields latin text",
			word: Word{Text: "BHS.", Lemma: NullField(), Morph: NullField()},
			want: true,
		},
		{
			// Fields simply absent (an untagged English edition) must
			// never classify as an annotation.
			name: "absent fields",
			word: Word{Text: "BHS."},
			want: false,
		},
		{
			name: "only lemma null",
			word: Word{Text: "BHS.", Lemma: NullField()},
			want: false,
		},
		{
			name: "null fields but hebrew text",
			word: Word{Text: "ברא", Lemma: NullField(), Morph: NullField()},
			want: false,
		},
		{
			name: "null fields but greek text",
			word: Word{Text: "λογος", Lemma: NullField(), Morph: NullField()},
			want: false,
		},
		{
			name: "valued fields",
			word: Word{Text: "word", Lemma: FieldValue("H1254"), Morph: FieldValue("HVqp3ms")},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.word.IsAnnotation(); got != tt.want {
				t.Errorf("IsAnnotation() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterAnnotations(t *testing.T) {
	words := []Word{
		{Position: 1, Text: "ברא", Lemma: FieldValue("H1254"), Morph: FieldValue("HVqp3ms")},
		{Position: 2, Text: "BHS.", Lemma: NullField(), Morph: NullField()},
		{Position: 3, Text: "שית"},
	}
	got := FilterAnnotations(words)
	if len(got) != 2 {
		t.Fatalf("FilterAnnotations returned %d words, want 2", len(got))
	}
	if got[0].Position != 1 || got[1].Position != 3 {
		t.Errorf("FilterAnnotations kept positions %d, %d; want 1, 3", got[0].Position, got[1].Position)
	}
}
