package gematria

import (
	"errors"
	"testing"

	cerrors "github.com/metaxiamultimedia/scriptures-core/core/errors"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name string
		text string
		lang Language
		want int
	}{
		{"hebrew auto-detected", "בראשית", Auto, 913},
		{"greek auto-detected", "λογος", Auto, 373},
		{"english auto-detected", "hello", Auto, 103},
		{"explicit language", "בראשית", Hebrew, 913},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compute(tt.text, tt.lang)
			if err != nil {
				t.Fatalf("Compute(%q, %s) error: %v", tt.text, tt.lang, err)
			}
			if got != tt.want {
				t.Errorf("Compute(%q, %s) = %d, want %d", tt.text, tt.lang, got, tt.want)
			}
		})
	}
}

func TestComputeEmptyInput(t *testing.T) {
	for _, text := range []string{"", "   ", "\t\n"} {
		_, err := Compute(text, Auto)
		var empty *EmptyInputError
		if !errors.As(err, &empty) {
			t.Errorf("Compute(%q) error = %v, want *EmptyInputError", text, err)
		}
		if !errors.Is(err, cerrors.ErrInvalidInput) {
			t.Errorf("EmptyInputError should unwrap to ErrInvalidInput")
		}
	}

	if _, err := ComputeMethod("standard", "", Auto); err == nil {
		t.Error("ComputeMethod should reject empty text")
	}
	if _, err := ComputeAll("", Auto); err == nil {
		t.Error("ComputeAll should reject empty text")
	}
}

func TestComputeMethod(t *testing.T) {
	got, err := ComputeMethod("mispar-gadol", "מלך", Auto)
	if err != nil {
		t.Fatal(err)
	}
	if got != 570 {
		t.Errorf("ComputeMethod(mispar-gadol, מלך) = %d, want 570", got)
	}

	// The strict ordinal surfaces its archaic-letter error.
	if _, err := ComputeMethod("greek-ordinal", "αϡ", Greek); err == nil {
		t.Error("strict Greek ordinal should fail on sampi")
	}

	// Unknown names surface ErrNotFound; the silent-zero behavior
	// belongs to the lazy containers, not this entry point.
	if _, err := ComputeMethod("no-such-system", "abc", English); !errors.Is(err, cerrors.ErrNotFound) {
		t.Errorf("ComputeMethod(no-such-system) = %v, want ErrNotFound", err)
	}
}

func TestComputeAll(t *testing.T) {
	values, err := ComputeAll("λογος", Auto)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]int{
		"isopsephy":     373,
		"greek-ordinal": 62,
		"pythmenes":     4,
	}
	for id, v := range want {
		if values[id] != v {
			t.Errorf("ComputeAll[%s] = %d, want %d", id, values[id], v)
		}
	}
}

func TestComputeAllLenientOrdinal(t *testing.T) {
	// The sweep uses the lenient ordinal, so archaic letters do not
	// abort it; they just count as 0.
	values, err := ComputeAll("αϡ", Greek)
	if err != nil {
		t.Fatal(err)
	}
	if got := values["greek-ordinal"]; got != 1 {
		t.Errorf("ComputeAll[greek-ordinal] = %d, want 1", got)
	}
	if got := values["isopsephy"]; got != 901 {
		t.Errorf("ComputeAll[isopsephy] = %d, want 901", got)
	}
}

func TestComputeAllHebrewScenario(t *testing.T) {
	values, err := ComputeAll("בראשית", Hebrew)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]int{
		"mispar-hechrachi": 913,
		"mispar-siduri":    76,
		"mispar-katan":     13,
	}
	for id, v := range want {
		if values[id] != v {
			t.Errorf("ComputeAll[%s] = %d, want %d", id, values[id], v)
		}
	}
}
