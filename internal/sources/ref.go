package sources

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/metaxiamultimedia/scriptures-core/core/errors"
)

// Ref addresses a verse (or verse range) in an edition using OSIS-style
// identifiers: "Gen.1.1", "1Kgs.8.13", "Matt.5.3-12", "Gen.1.1a".
type Ref struct {
	// Book is the OSIS book ID, e.g. "Gen" or "1John".
	Book string

	// Chapter is 1-indexed; 0 addresses the whole book.
	Chapter int

	// Verse is 1-indexed; 0 addresses the whole chapter.
	Verse int

	// VerseEnd is the closing verse of a range, 0 for single verses.
	VerseEnd int

	// SubVerse is an optional verse subdivision letter ("a", "b").
	SubVerse string
}

//nolint:govet // participle grammar tags are not standard struct tags
type refGrammar struct {
	BookPrefix string     `@Int?`
	BookName   string     `@Ident`
	Chapter    *int       `( "." @Int`
	Verse      *int       `  ( "." @Int`
	SubVerse   *string    `    @SubVerse?`
	VerseEnd   *int       `    ( "-" @Int )? )? )?`
}

// refLexer distinguishes book names (leading uppercase) from the
// single-lowercase-letter subverse markers.
var refLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Ident", Pattern: `[A-Z][A-Za-z]*`},
	{Name: "SubVerse", Pattern: `[a-z]`},
	{Name: "Punct", Pattern: `[.\-]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var refParser = participle.MustBuild[refGrammar](
	participle.Lexer(refLexer),
	participle.Elide("Whitespace"),
)

// ParseRef parses an OSIS-style reference string.
func ParseRef(s string) (*Ref, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.NewParse("reference", "", "empty string")
	}

	parsed, err := refParser.ParseString("", s)
	if err != nil {
		return nil, &errors.ParseError{Format: "reference", Message: fmt.Sprintf("%q", s), Err: err}
	}

	ref := &Ref{Book: parsed.BookPrefix + parsed.BookName}
	if parsed.Chapter != nil {
		ref.Chapter = *parsed.Chapter
	}
	if parsed.Verse != nil {
		ref.Verse = *parsed.Verse
	}
	if parsed.SubVerse != nil {
		ref.SubVerse = *parsed.SubVerse
	}
	if parsed.VerseEnd != nil {
		ref.VerseEnd = *parsed.VerseEnd
	}
	return ref, nil
}

// String renders the reference back to its OSIS form.
func (r *Ref) String() string {
	var b strings.Builder
	b.WriteString(r.Book)
	if r.Chapter > 0 {
		fmt.Fprintf(&b, ".%d", r.Chapter)
		if r.Verse > 0 {
			fmt.Fprintf(&b, ".%d", r.Verse)
			b.WriteString(r.SubVerse)
			if r.VerseEnd > 0 {
				fmt.Fprintf(&b, "-%d", r.VerseEnd)
			}
		}
	}
	return b.String()
}

// IsRange reports whether the reference spans multiple verses.
func (r *Ref) IsRange() bool {
	return r.VerseEnd > 0 && r.VerseEnd != r.Verse
}
