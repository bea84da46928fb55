package sources

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/metaxiamultimedia/scriptures-core/core/errors"
	"github.com/metaxiamultimedia/scriptures-core/core/gematria"
	"github.com/metaxiamultimedia/scriptures-core/core/text"
)

// SQLiteDriverName returns the SQL driver name in use. It is "sqlite"
// for the default pure Go driver and "sqlite3" when built with the
// cgo_sqlite tag.
func SQLiteDriverName() string {
	return sqliteDriverName
}

// SQLiteDriverType returns "purego" or "cgo".
func SQLiteDriverType() string {
	return sqliteDriverType
}

// Schema is the SQLite edition schema. An edition database holds one
// edition row plus its verses and, for tagged editions, per-word
// lemma/morph columns where NULL means present-and-null.
const Schema = `
CREATE TABLE IF NOT EXISTS edition (
	key      TEXT PRIMARY KEY,
	title    TEXT NOT NULL,
	language TEXT NOT NULL,
	tagged   INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS verses (
	book    TEXT NOT NULL,
	chapter INTEGER NOT NULL,
	verse   INTEGER NOT NULL,
	raw     TEXT NOT NULL,
	PRIMARY KEY (book, chapter, verse)
);
CREATE TABLE IF NOT EXISTS words (
	book     TEXT NOT NULL,
	chapter  INTEGER NOT NULL,
	verse    INTEGER NOT NULL,
	position INTEGER NOT NULL,
	text     TEXT NOT NULL,
	variant  TEXT NOT NULL DEFAULT '',
	colophon INTEGER NOT NULL DEFAULT 0,
	lemma    TEXT,
	morph    TEXT,
	PRIMARY KEY (book, chapter, verse, position)
);
`

// SQLiteLoader loads verses from a SQLite edition database.
type SQLiteLoader struct {
	db      *sql.DB
	edition Edition
}

// OpenSQLite opens an edition database and reads its edition row.
func OpenSQLite(path string) (*SQLiteLoader, error) {
	db, err := sql.Open(sqliteDriverName, path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening edition database %s", path)
	}
	l, err := newSQLiteLoader(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return l, nil
}

// NewSQLiteLoader wraps an already opened edition database.
func NewSQLiteLoader(db *sql.DB) (*SQLiteLoader, error) {
	return newSQLiteLoader(db)
}

func newSQLiteLoader(db *sql.DB) (*SQLiteLoader, error) {
	row := db.QueryRow(`SELECT key, title, language, tagged FROM edition LIMIT 1`)
	var key, title, language string
	var tagged bool
	if err := row.Scan(&key, &title, &language, &tagged); err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewNotFound("edition row", "")
		}
		return nil, errors.Wrap(err, "reading edition row")
	}
	return &SQLiteLoader{
		db: db,
		edition: Edition{
			ID:       uuid.New(),
			Key:      key,
			Title:    title,
			Language: gematria.NormalizeLanguage(language),
			Tagged:   tagged,
		},
	}, nil
}

// Edition describes the loaded edition.
func (l *SQLiteLoader) Edition() Edition {
	return l.edition
}

// Verse loads one verse with its words in stored order. Scribal
// annotations are filtered here, at the ingestion boundary; the Raw
// text is kept unfiltered.
func (l *SQLiteLoader) Verse(ctx context.Context, ref *Ref) (*text.Verse, error) {
	row := l.db.QueryRowContext(ctx,
		`SELECT raw FROM verses WHERE book = ? AND chapter = ? AND verse = ?`,
		ref.Book, ref.Chapter, ref.Verse)
	var raw string
	if err := row.Scan(&raw); err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewNotFound("verse", ref.String())
		}
		return nil, errors.Wrapf(err, "loading verse %s", ref)
	}

	words, err := l.words(ctx, ref.Book, ref.Chapter, ref.Verse)
	if err != nil {
		return nil, err
	}
	return &text.Verse{
		Ref:      ref.String(),
		Language: l.edition.Language,
		Raw:      raw,
		Words:    text.FilterAnnotations(words),
	}, nil
}

// Chapter loads every verse of a chapter in verse order.
func (l *SQLiteLoader) Chapter(ctx context.Context, book string, chapter int) ([]*text.Verse, error) {
	rows, err := l.db.QueryContext(ctx,
		`SELECT verse FROM verses WHERE book = ? AND chapter = ? ORDER BY verse`,
		book, chapter)
	if err != nil {
		return nil, errors.Wrapf(err, "loading chapter %s %d", book, chapter)
	}
	defer rows.Close()

	var numbers []int
	for rows.Next() {
		var n int
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		numbers = append(numbers, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(numbers) == 0 {
		return nil, errors.NewNotFound("chapter", fmt.Sprintf("%s.%d", book, chapter))
	}

	verses := make([]*text.Verse, 0, len(numbers))
	for _, n := range numbers {
		v, err := l.Verse(ctx, &Ref{Book: book, Chapter: chapter, Verse: n})
		if err != nil {
			return nil, err
		}
		verses = append(verses, v)
	}
	return verses, nil
}

// Close closes the underlying database.
func (l *SQLiteLoader) Close() error {
	return l.db.Close()
}

func (l *SQLiteLoader) words(ctx context.Context, book string, chapter, verse int) ([]text.Word, error) {
	rows, err := l.db.QueryContext(ctx,
		`SELECT position, text, variant, colophon, lemma, morph
		 FROM words WHERE book = ? AND chapter = ? AND verse = ?
		 ORDER BY position`,
		book, chapter, verse)
	if err != nil {
		return nil, errors.Wrap(err, "loading words")
	}
	defer rows.Close()

	var words []text.Word
	for rows.Next() {
		var (
			w        text.Word
			variant  string
			colophon bool
			lemma    sql.NullString
			morph    sql.NullString
		)
		if err := rows.Scan(&w.Position, &w.Text, &variant, &colophon, &lemma, &morph); err != nil {
			return nil, err
		}
		w.Variant = text.Variant(variant)
		w.Colophon = colophon
		// The lemma/morph columns only mean present-and-null for
		// editions that tag words at all; untagged editions leave the
		// fields absent so their words can never classify as
		// annotations.
		if l.edition.Tagged {
			w.Lemma = text.Field{Present: true, Valid: lemma.Valid, Value: lemma.String}
			w.Morph = text.Field{Present: true, Valid: morph.Valid, Value: morph.String}
		}
		words = append(words, w)
	}
	return words, rows.Err()
}
