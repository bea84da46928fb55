package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      *NotFoundError
		wantMsg  string
		wantBase error
	}{
		{
			name:     "with ID",
			err:      &NotFoundError{Resource: "method", ID: "mispar-hechrachi"},
			wantMsg:  "method not found: mispar-hechrachi",
			wantBase: ErrNotFound,
		},
		{
			name:     "without ID",
			err:      &NotFoundError{Resource: "edition"},
			wantMsg:  "edition not found",
			wantBase: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if got := tt.err.Unwrap(); !errors.Is(got, tt.wantBase) {
				t.Errorf("Unwrap() = %v, want %v", got, tt.wantBase)
			}
		})
	}

	t.Run("with underlying error", func(t *testing.T) {
		underlyingErr := fmt.Errorf("disk error")
		err := &NotFoundError{Resource: "lexicon entry", ID: "H7225", Err: underlyingErr}
		if got := err.Error(); got != "lexicon entry not found: H7225" {
			t.Errorf("Error() = %q, want %q", got, "lexicon entry not found: H7225")
		}
		if got := err.Unwrap(); got != underlyingErr {
			t.Errorf("Unwrap() = %v, want %v", got, underlyingErr)
		}
	})
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name     string
		err      *ValidationError
		wantMsg  string
		wantBase error
	}{
		{
			name:     "with field",
			err:      &ValidationError{Field: "text", Message: "must not be empty"},
			wantMsg:  "validation failed for text: must not be empty",
			wantBase: ErrInvalidInput,
		},
		{
			name:     "without field",
			err:      &ValidationError{Message: "invalid language"},
			wantMsg:  "validation failed: invalid language",
			wantBase: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if got := tt.err.Unwrap(); !errors.Is(got, tt.wantBase) {
				t.Errorf("Unwrap() = %v, want %v", got, tt.wantBase)
			}
		})
	}
}

func TestParseError(t *testing.T) {
	t.Run("with path", func(t *testing.T) {
		err := &ParseError{Format: "OSIS", Path: "wlc.xml", Message: "unexpected element"}
		want := "failed to parse OSIS at wlc.xml: unexpected element"
		if got := err.Error(); got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}
	})

	t.Run("without path", func(t *testing.T) {
		err := &ParseError{Format: "reference", Message: "empty string"}
		want := "failed to parse reference: empty string"
		if got := err.Error(); got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}
		if !errors.Is(err, ErrInvalidInput) {
			t.Error("ParseError should unwrap to ErrInvalidInput")
		}
	})
}

func TestUnsupportedError(t *testing.T) {
	err := &UnsupportedError{Feature: "system", Reason: "no ordinal position for archaic letters"}
	want := "unsupported system: no ordinal position for archaic letters"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrUnsupported) {
		t.Error("UnsupportedError should unwrap to ErrUnsupported")
	}
}

func TestWrap(t *testing.T) {
	base := errors.New("boom")
	wrapped := Wrap(base, "loading edition")
	if wrapped.Error() != "loading edition: boom" {
		t.Errorf("Wrap() = %q", wrapped.Error())
	}
	if !errors.Is(wrapped, base) {
		t.Error("wrapped error should match base via errors.Is")
	}
	if Wrap(nil, "anything") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestWrapf(t *testing.T) {
	base := errors.New("boom")
	wrapped := Wrapf(base, "loading verse %s", "Gen.1.1")
	if wrapped.Error() != "loading verse Gen.1.1: boom" {
		t.Errorf("Wrapf() = %q", wrapped.Error())
	}
	if Wrapf(nil, "anything %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}
}
