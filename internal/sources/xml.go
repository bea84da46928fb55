package sources

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/google/uuid"

	"github.com/metaxiamultimedia/scriptures-core/core/errors"
	"github.com/metaxiamultimedia/scriptures-core/core/gematria"
	"github.com/metaxiamultimedia/scriptures-core/core/text"
)

// XMLLoader loads verses from an OSIS document held in memory. OSIS
// editions mark words with <w> elements; lemma and morph attributes
// carry tagging, with an empty attribute meaning present-and-null.
type XMLLoader struct {
	doc     *xmlquery.Node
	edition Edition
}

// Queries evaluated on every verse load are compiled once.
var (
	wordExpr   = xpath.MustCompile(".//w")
	taggedExpr = xpath.MustCompile("//w[@lemma] | //w[@morph]")
)

// OpenOSIS parses an OSIS file into a loader.
func OpenOSIS(path string) (*XMLLoader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening OSIS document %s", path)
	}
	defer f.Close()
	l, err := ParseOSIS(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing OSIS document %s", path)
	}
	return l, nil
}

// ParseOSIS parses an OSIS document from r.
func ParseOSIS(r io.Reader) (*XMLLoader, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, &errors.ParseError{Format: "OSIS", Message: "malformed XML", Err: err}
	}

	osisText := xmlquery.FindOne(doc, "//osisText")
	if osisText == nil {
		return nil, errors.NewParse("OSIS", "", "missing osisText element")
	}

	key := osisText.SelectAttr("osisIDWork")
	if key == "" {
		return nil, errors.NewParse("OSIS", "", "osisText has no osisIDWork")
	}
	title := key
	if t := xmlquery.FindOne(doc, "//work/title"); t != nil {
		title = strings.TrimSpace(t.InnerText())
	}

	// The edition counts as tagged when any word carries lemma or
	// morph attributes.
	tagged := xmlquery.QuerySelector(doc, taggedExpr) != nil

	return &XMLLoader{
		doc: doc,
		edition: Edition{
			ID:       uuid.New(),
			Key:      strings.ToLower(key),
			Title:    title,
			Language: gematria.NormalizeLanguage(langAttr(osisText)),
			Tagged:   tagged,
		},
	}, nil
}

// Edition describes the loaded edition.
func (l *XMLLoader) Edition() Edition {
	return l.edition
}

// Verse loads one verse. Scribal annotations are filtered here; the
// Raw text keeps the verse's full inner text, colophons included.
func (l *XMLLoader) Verse(ctx context.Context, ref *Ref) (*text.Verse, error) {
	node := xmlquery.FindOne(l.doc, fmt.Sprintf("//verse[@osisID='%s']", ref.String()))
	if node == nil {
		return nil, errors.NewNotFound("verse", ref.String())
	}
	return l.verseFromNode(node, ref.String()), nil
}

// Chapter loads every verse of a chapter in document order.
func (l *XMLLoader) Chapter(ctx context.Context, book string, chapter int) ([]*text.Verse, error) {
	prefix := fmt.Sprintf("%s.%d.", book, chapter)
	nodes := xmlquery.Find(l.doc, fmt.Sprintf("//verse[starts-with(@osisID, '%s')]", prefix))
	if len(nodes) == 0 {
		return nil, errors.NewNotFound("chapter", fmt.Sprintf("%s.%d", book, chapter))
	}
	verses := make([]*text.Verse, 0, len(nodes))
	for _, node := range nodes {
		verses = append(verses, l.verseFromNode(node, node.SelectAttr("osisID")))
	}
	return verses, nil
}

// Close releases nothing; the document lives in memory.
func (l *XMLLoader) Close() error {
	return nil
}

func (l *XMLLoader) verseFromNode(node *xmlquery.Node, ref string) *text.Verse {
	var words []text.Word
	for i, w := range xmlquery.QuerySelectorAll(node, wordExpr) {
		word := text.Word{
			Position: i + 1,
			Text:     strings.TrimSpace(w.InnerText()),
			Variant:  wordVariant(w),
			Colophon: insideColophon(w, node),
			Lemma:    attrField(w, "lemma"),
			Morph:    attrField(w, "morph"),
		}
		words = append(words, word)
	}
	return &text.Verse{
		Ref:      ref,
		Language: l.edition.Language,
		Raw:      strings.TrimSpace(node.InnerText()),
		Words:    text.FilterAnnotations(words),
	}
}

// langAttr reads the edition language, accepting both xml:lang and a
// bare lang attribute.
func langAttr(n *xmlquery.Node) string {
	for _, attr := range n.Attr {
		if attr.Name.Local == "lang" {
			return attr.Value
		}
	}
	return ""
}

// attrField builds the tri-state field for an attribute: absent when
// the attribute is missing, present-and-null when it is empty, valued
// otherwise.
func attrField(n *xmlquery.Node, name string) text.Field {
	for _, attr := range n.Attr {
		if attr.Name.Local == name {
			if attr.Value == "" {
				return text.NullField()
			}
			return text.FieldValue(attr.Value)
		}
	}
	return text.Field{}
}

// wordVariant maps the OSIS qere/ketiv markers onto reading variants.
func wordVariant(n *xmlquery.Node) text.Variant {
	t := n.SelectAttr("type")
	switch {
	case strings.Contains(t, "x-qere"):
		return text.VariantPrimary
	case strings.Contains(t, "x-ketiv"):
		return text.VariantAlternate
	}
	return ""
}

// insideColophon reports whether the word sits inside a colophon seg
// or carries the colophon type itself.
func insideColophon(n *xmlquery.Node, stop *xmlquery.Node) bool {
	if strings.Contains(n.SelectAttr("subType"), "colophon") {
		return true
	}
	for p := n.Parent; p != nil && p != stop; p = p.Parent {
		if p.Data == "seg" && strings.Contains(p.SelectAttr("type"), "colophon") {
			return true
		}
	}
	return false
}
