// Package lexicon loads xz-compressed lexicon archives and serves
// entry lookups by Strong's-style identifier. The whole lexicon is
// decoded once into an in-memory index; lookups after that are map
// reads and safe for concurrent use.
package lexicon

import (
	"io"
	"os"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/ulikunitz/xz"

	"github.com/metaxiamultimedia/scriptures-core/core/errors"
	"github.com/metaxiamultimedia/scriptures-core/core/gematria"
	"github.com/metaxiamultimedia/scriptures-core/core/text"
)

// Entry is one lexicon entry.
type Entry struct {
	// ID is the Strong's-style identifier, e.g. "H7225" or "G3056".
	ID string `json:"id"`

	// Lemma is the headword in its native script.
	Lemma string `json:"lemma"`

	// Translit is the romanized form.
	Translit string `json:"translit,omitempty"`

	// Gloss is the short English gloss.
	Gloss string `json:"gloss"`

	// Definition is the longer definition text.
	Definition string `json:"definition,omitempty"`
}

// Language derives the entry's language from its identifier prefix.
func (e Entry) Language() gematria.Language {
	switch {
	case strings.HasPrefix(e.ID, "H"):
		return gematria.Hebrew
	case strings.HasPrefix(e.ID, "G"):
		return gematria.Greek
	default:
		return gematria.Auto
	}
}

// Values returns a lazy value container over the entry's headword.
func (e Entry) Values() text.Values {
	return text.NewWordValues(e.Lemma, e.Language())
}

// Lexicon is an in-memory lexicon index.
type Lexicon struct {
	name    string
	entries map[string]Entry
	ids     []string
}

// Open reads an xz-compressed JSON lexicon archive from disk.
func Open(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening lexicon %s", path)
	}
	defer f.Close()
	return Parse(f, path)
}

// Parse decodes an xz-compressed JSON entry array from r. The name is
// used in error messages only.
func Parse(r io.Reader, name string) (*Lexicon, error) {
	xr, err := xz.NewReader(r)
	if err != nil {
		return nil, errors.Wrapf(err, "reading lexicon %s", name)
	}
	var raw []Entry
	if err := json.NewDecoder(xr).Decode(&raw); err != nil {
		return nil, errors.NewParse("lexicon", name, err.Error())
	}

	l := &Lexicon{
		name:    name,
		entries: make(map[string]Entry, len(raw)),
		ids:     make([]string, 0, len(raw)),
	}
	for _, e := range raw {
		id := NormalizeID(e.ID)
		if id == "" {
			return nil, errors.NewParse("lexicon", name, "entry with empty id")
		}
		e.ID = id
		if _, dup := l.entries[id]; !dup {
			l.ids = append(l.ids, id)
		}
		l.entries[id] = e
	}
	return l, nil
}

// Write encodes entries as an xz-compressed JSON archive to w.
func Write(w io.Writer, entries []Entry) error {
	xw, err := xz.NewWriter(w)
	if err != nil {
		return errors.Wrap(err, "creating lexicon writer")
	}
	if err := json.NewEncoder(xw).Encode(entries); err != nil {
		return errors.Wrap(err, "encoding lexicon")
	}
	return xw.Close()
}

// NormalizeID canonicalizes a Strong's-style identifier: whitespace
// trimmed, letters uppercased, leading zeros in the number dropped.
// "h07225" normalizes to "H7225".
func NormalizeID(id string) string {
	id = strings.ToUpper(strings.TrimSpace(id))
	if len(id) < 2 {
		return id
	}
	prefix, num := id[:1], id[1:]
	trimmed := strings.TrimLeft(num, "0")
	if trimmed == "" || strings.IndexFunc(trimmed, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
		return id
	}
	return prefix + trimmed
}

// Lookup returns the entry for a Strong's-style identifier.
func (l *Lexicon) Lookup(id string) (Entry, error) {
	e, ok := l.entries[NormalizeID(id)]
	if !ok {
		return Entry{}, errors.NewNotFound("lexicon entry", id)
	}
	return e, nil
}

// Len returns the number of entries.
func (l *Lexicon) Len() int {
	return len(l.entries)
}

// IDs returns every entry identifier in archive order.
func (l *Lexicon) IDs() []string {
	out := make([]string, len(l.ids))
	copy(out, l.ids)
	return out
}
