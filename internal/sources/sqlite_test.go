package sources

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/metaxiamultimedia/scriptures-core/core/gematria"
	"github.com/metaxiamultimedia/scriptures-core/core/text"
)

// newTestEdition creates an on-disk edition database with one tagged
// Hebrew chapter.
func newTestEdition(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wlc.db")
	db, err := sql.Open(sqliteDriverName, path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(Schema); err != nil {
		t.Fatalf("schema: %v", err)
	}
	stmts := []struct {
		query string
		args  []any
	}{
		{`INSERT INTO edition (key, title, language, tagged) VALUES (?, ?, ?, ?)`,
			[]any{"wlc", "Westminster Leningrad Codex", "Hebrew", true}},
		{`INSERT INTO verses (book, chapter, verse, raw) VALUES (?, ?, ?, ?)`,
			[]any{"Gen", 1, 1, "בראשית ברא BHS."}},
		{`INSERT INTO verses (book, chapter, verse, raw) VALUES (?, ?, ?, ?)`,
			[]any{"Gen", 1, 2, "שית מלך"}},
		{`INSERT INTO words (book, chapter, verse, position, text, variant, colophon, lemma, morph) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			[]any{"Gen", 1, 1, 1, "בראשית", "", false, "b/7225", "HR/Ncfsa"}},
		{`INSERT INTO words (book, chapter, verse, position, text, variant, colophon, lemma, morph) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			[]any{"Gen", 1, 1, 2, "ברא", "", false, "1254 a", "HVqp3ms"}},
		// Scribal annotation: null lemma and morph, latin text.
		{`INSERT INTO words (book, chapter, verse, position, text, variant, colophon, lemma, morph) VALUES (?, ?, ?, ?, ?, ?, ?, NULL, NULL)`,
			[]any{"Gen", 1, 1, 3, "BHS.", "", false}},
		{`INSERT INTO words (book, chapter, verse, position, text, variant, colophon, lemma, morph) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			[]any{"Gen", 1, 2, 1, "שית", "", false, "7896", "HVqp3ms"}},
		{`INSERT INTO words (book, chapter, verse, position, text, variant, colophon, lemma, morph) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			[]any{"Gen", 1, 2, 2, "מלך", "", true, "4428", "HNcmsa"}},
	}
	for _, s := range stmts {
		if _, err := db.Exec(s.query, s.args...); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}
	return path
}

func TestSQLiteLoaderEdition(t *testing.T) {
	l, err := OpenSQLite(newTestEdition(t))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer l.Close()

	ed := l.Edition()
	if ed.Key != "wlc" {
		t.Errorf("Key = %q, want wlc", ed.Key)
	}
	if ed.Language != gematria.Hebrew {
		t.Errorf("Language = %s, want hebrew", ed.Language)
	}
	if !ed.Tagged {
		t.Error("edition should be tagged")
	}
	if ed.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("edition instance should get a real UUID")
	}
}

func TestSQLiteLoaderVerse(t *testing.T) {
	l, err := OpenSQLite(newTestEdition(t))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer l.Close()

	ref, _ := ParseRef("Gen.1.1")
	v, err := l.Verse(context.Background(), ref)
	if err != nil {
		t.Fatalf("Verse: %v", err)
	}

	// The annotation row (NULL lemma and morph, latin text) is
	// filtered at this boundary.
	if len(v.Words) != 2 {
		t.Fatalf("got %d words, want 2", len(v.Words))
	}
	if v.Words[0].Position != 1 || v.Words[1].Position != 2 {
		t.Errorf("positions = %d, %d", v.Words[0].Position, v.Words[1].Position)
	}

	vv := text.NewVerseValues(v.Words, v.Language, text.AggregationOptions{})
	if got := vv.Get("standard"); got != 913+203 {
		t.Errorf("verse standard = %d, want %d", got, 913+203)
	}
}

func TestSQLiteLoaderColophon(t *testing.T) {
	l, err := OpenSQLite(newTestEdition(t))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer l.Close()

	ref, _ := ParseRef("Gen.1.2")
	v, err := l.Verse(context.Background(), ref)
	if err != nil {
		t.Fatalf("Verse: %v", err)
	}

	vv := text.NewVerseValues(v.Words, v.Language, text.AggregationOptions{})
	if got := vv.Get("standard"); got != 710 {
		t.Errorf("default excludes colophon: got %d, want 710", got)
	}
	vv = text.NewVerseValues(v.Words, v.Language, text.AggregationOptions{IncludeColophons: true})
	if got := vv.Get("standard"); got != 800 {
		t.Errorf("inclusive sum = %d, want 800", got)
	}
}

func TestSQLiteLoaderChapter(t *testing.T) {
	l, err := OpenSQLite(newTestEdition(t))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer l.Close()

	verses, err := l.Chapter(context.Background(), "Gen", 1)
	if err != nil {
		t.Fatalf("Chapter: %v", err)
	}
	if len(verses) != 2 {
		t.Fatalf("got %d verses, want 2", len(verses))
	}
	if verses[0].Ref != "Gen.1.1" {
		t.Errorf("first ref = %q", verses[0].Ref)
	}
}

func TestSQLiteLoaderNotFound(t *testing.T) {
	l, err := OpenSQLite(newTestEdition(t))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer l.Close()

	ref, _ := ParseRef("Exod.1.1")
	if _, err := l.Verse(context.Background(), ref); err == nil {
		t.Error("missing verse should error")
	}
	if _, err := l.Chapter(context.Background(), "Gen", 99); err == nil {
		t.Error("missing chapter should error")
	}
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry()

	xmlLoader := parseSample(t)
	reg.Register(xmlLoader)

	sqliteLoader, err := OpenSQLite(newTestEdition(t))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	// Same key as the XML loader: registration replaces.
	reg.Register(sqliteLoader)

	got, err := reg.Lookup("wlc")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if got != Loader(sqliteLoader) {
		t.Error("Lookup should return the most recently registered loader")
	}

	if _, err := reg.Lookup("kjv"); err == nil {
		t.Error("Lookup of unregistered key should error")
	}
	if keys := reg.Keys(); len(keys) != 1 || keys[0] != "wlc" {
		t.Errorf("Keys() = %v", keys)
	}
	if err := reg.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}
