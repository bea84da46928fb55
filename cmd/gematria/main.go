// Command gematria computes letter values over Hebrew, Greek, and
// English text, serves scripture editions, and runs the REST API.
package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/alecthomas/kong"
	json "github.com/goccy/go-json"

	"github.com/metaxiamultimedia/scriptures-core/core/gematria"
	"github.com/metaxiamultimedia/scriptures-core/core/text"
	"github.com/metaxiamultimedia/scriptures-core/internal/api"
	"github.com/metaxiamultimedia/scriptures-core/internal/cache"
	"github.com/metaxiamultimedia/scriptures-core/internal/config"
	"github.com/metaxiamultimedia/scriptures-core/internal/lexicon"
	"github.com/metaxiamultimedia/scriptures-core/internal/logging"
	"github.com/metaxiamultimedia/scriptures-core/internal/sources"
)

const version = "0.3.0"

// CLI defines the command-line interface for gematria.
var CLI struct {
	// Global flags
	Config string `name:"config" short:"c" help:"Config file path" type:"path"`
	JSON   bool   `name:"json" help:"Emit machine-readable JSON output"`

	// Command groups (noun-first organization)
	Compute ComputeCmd   `cmd:"" help:"Compute a text's value under one or all systems"`
	Methods MethodsCmd   `cmd:"" help:"List registered computation systems"`
	Detect  DetectCmd    `cmd:"" help:"Detect the language of a text"`
	Edition EditionGroup `cmd:"" help:"Edition operations (info, verse, chapter)"`
	Lexicon LexiconGroup `cmd:"" help:"Lexicon operations"`
	Serve   ServeCmd     `cmd:"" help:"Start the REST API server"`
	Version VersionCmd   `cmd:"" help:"Print version information"`
}

// EditionGroup contains edition operations.
type EditionGroup struct {
	Info    EditionInfoCmd `cmd:"" help:"Show an edition's metadata"`
	Verse   VerseCmd       `cmd:"" help:"Compute a verse's value"`
	Chapter ChapterCmd     `cmd:"" help:"Compute every verse of a chapter"`
}

// LexiconGroup contains lexicon operations.
type LexiconGroup struct {
	Lookup LexiconLookupCmd `cmd:"" help:"Look up an entry by Strong's identifier"`
}

// ComputeCmd computes a text's value.
type ComputeCmd struct {
	Text     []string `arg:"" help:"Text to compute"`
	Method   string   `help:"System identifier or alias (default: all systems)"`
	Language string   `help:"Language hint: hebrew, greek, or english"`
}

func (c *ComputeCmd) Run() error {
	body := strings.Join(c.Text, " ")
	lang := gematria.Auto
	if c.Language != "" {
		lang = gematria.NormalizeLanguage(c.Language)
	}
	if lang == gematria.Auto && strings.TrimSpace(body) != "" {
		lang = gematria.Detect(body)
	}

	if c.Method != "" {
		value, err := gematria.ComputeMethod(c.Method, body, lang)
		if err != nil {
			return err
		}
		method, err := gematria.Default().Resolve(c.Method, lang)
		if err != nil {
			return err
		}
		if CLI.JSON {
			return emitJSON(map[string]any{
				"text":     body,
				"language": lang,
				"method":   method.Identifier,
				"value":    value,
			})
		}
		fmt.Printf("%s\t%s\t%d\n", body, method.Identifier, value)
		return nil
	}

	values, err := gematria.ComputeAll(body, lang)
	if err != nil {
		return err
	}
	if CLI.JSON {
		return emitJSON(map[string]any{
			"text":     body,
			"language": lang,
			"values":   values,
		})
	}
	ids := make([]string, 0, len(values))
	for id := range values {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		fmt.Printf("%-26s%d\n", id, values[id])
	}
	return nil
}

// MethodsCmd lists registered systems.
type MethodsCmd struct {
	Language string `help:"Restrict to one language"`
}

func (c *MethodsCmd) Run() error {
	reg := gematria.Default()
	var methods []*gematria.Method
	if c.Language != "" {
		methods = reg.ForLanguage(gematria.NormalizeLanguage(c.Language))
	} else {
		methods = reg.Methods()
	}

	if CLI.JSON {
		out := make([]map[string]any, 0, len(methods))
		for _, m := range methods {
			out = append(out, map[string]any{
				"identifier": m.Identifier,
				"name":       m.Name,
				"alias":      m.Alias,
				"language":   m.Language,
			})
		}
		return emitJSON(out)
	}
	for _, m := range methods {
		alias := m.Alias
		if alias == "" {
			alias = "-"
		}
		fmt.Printf("%-26s%-10s%-12s%s\n", m.Identifier, alias, m.Language, m.Name)
	}
	return nil
}

// DetectCmd detects the language of a text.
type DetectCmd struct {
	Text []string `arg:"" help:"Text to examine"`
}

func (c *DetectCmd) Run() error {
	body := strings.Join(c.Text, " ")
	lang := gematria.Detect(body)
	if CLI.JSON {
		return emitJSON(map[string]any{"text": body, "language": lang})
	}
	fmt.Println(lang)
	return nil
}

// editionFlags selects and opens one edition file.
type editionFlags struct {
	Source string `help:"Edition file path" required:"" type:"path"`
	Driver string `help:"Edition driver: sqlite or osis" default:"sqlite" enum:"sqlite,osis"`
}

func (f *editionFlags) open() (sources.Loader, error) {
	switch f.Driver {
	case "osis":
		return sources.OpenOSIS(f.Source)
	default:
		return sources.OpenSQLite(f.Source)
	}
}

// EditionInfoCmd shows an edition's metadata.
type EditionInfoCmd struct {
	editionFlags
}

func (c *EditionInfoCmd) Run() error {
	loader, err := c.open()
	if err != nil {
		return err
	}
	defer loader.Close()

	ed := loader.Edition()
	if CLI.JSON {
		return emitJSON(map[string]any{
			"id":       ed.ID.String(),
			"key":      ed.Key,
			"title":    ed.Title,
			"language": ed.Language,
			"tagged":   ed.Tagged,
		})
	}
	fmt.Printf("key:      %s\n", ed.Key)
	fmt.Printf("title:    %s\n", ed.Title)
	fmt.Printf("language: %s\n", ed.Language)
	fmt.Printf("tagged:   %t\n", ed.Tagged)
	return nil
}

// VerseCmd computes one verse.
type VerseCmd struct {
	editionFlags
	Ref              string `arg:"" help:"Verse reference, e.g. Gen.1.1"`
	Method           string `help:"System identifier or alias" default:"standard"`
	Variant          string `help:"Reading to select: primary or alternate"`
	IncludeColophons bool   `help:"Keep colophon words in the sum"`
	Words            bool   `help:"Show per-word values"`
}

func (c *VerseCmd) Run() error {
	loader, err := c.open()
	if err != nil {
		return err
	}
	defer loader.Close()

	ref, err := sources.ParseRef(c.Ref)
	if err != nil {
		return err
	}
	verse, err := loader.Verse(context.Background(), ref)
	if err != nil {
		return err
	}
	return printVerse(verse, c.Method, text.AggregationOptions{
		Variant:          text.Variant(c.Variant),
		IncludeColophons: c.IncludeColophons,
	}, c.Words)
}

// ChapterCmd computes every verse of a chapter.
type ChapterCmd struct {
	editionFlags
	Book             string `arg:"" help:"Book identifier, e.g. Gen"`
	Chapter          int    `arg:"" help:"Chapter number"`
	Method           string `help:"System identifier or alias" default:"standard"`
	IncludeColophons bool   `help:"Keep colophon words in the sums"`
}

func (c *ChapterCmd) Run() error {
	loader, err := c.open()
	if err != nil {
		return err
	}
	defer loader.Close()

	verses, err := loader.Chapter(context.Background(), c.Book, c.Chapter)
	if err != nil {
		return err
	}
	opts := text.AggregationOptions{IncludeColophons: c.IncludeColophons}
	for _, verse := range verses {
		if err := printVerse(verse, c.Method, opts, false); err != nil {
			return err
		}
	}
	return nil
}

func printVerse(verse *text.Verse, name string, opts text.AggregationOptions, words bool) error {
	method, err := gematria.Default().Resolve(name, verse.Language)
	if err != nil {
		return err
	}
	vv := text.NewVerseValues(verse.Words, verse.Language, opts)
	total := vv.Get(method.Identifier)

	if CLI.JSON {
		out := map[string]any{
			"ref":    verse.Ref,
			"method": method.Identifier,
			"total":  total,
		}
		if words {
			list := make([]map[string]any, 0, len(verse.Words))
			for _, w := range vv.Included() {
				list = append(list, map[string]any{
					"position": w.Position,
					"text":     w.Text,
					"value":    text.NewWordValues(w.Text, verse.Language).Get(method.Identifier),
				})
			}
			out["words"] = list
		}
		return emitJSON(out)
	}

	fmt.Printf("%s\t%s\t%d\n", verse.Ref, method.Identifier, total)
	if words {
		for _, w := range vv.Included() {
			value := text.NewWordValues(w.Text, verse.Language).Get(method.Identifier)
			fmt.Printf("  %3d  %-20s%d\n", w.Position, w.Text, value)
		}
	}
	return nil
}

// LexiconLookupCmd looks up a lexicon entry.
type LexiconLookupCmd struct {
	Archive string `help:"Lexicon archive path" required:"" type:"path"`
	ID      string `arg:"" help:"Strong's-style identifier, e.g. H7225"`
}

func (c *LexiconLookupCmd) Run() error {
	lex, err := lexicon.Open(c.Archive)
	if err != nil {
		return err
	}
	entry, err := lex.Lookup(c.ID)
	if err != nil {
		return err
	}
	if CLI.JSON {
		return emitJSON(entry)
	}
	fmt.Printf("id:       %s\n", entry.ID)
	fmt.Printf("lemma:    %s\n", entry.Lemma)
	if entry.Translit != "" {
		fmt.Printf("translit: %s\n", entry.Translit)
	}
	fmt.Printf("gloss:    %s\n", entry.Gloss)
	if entry.Definition != "" {
		fmt.Printf("\n%s\n", entry.Definition)
	}
	return nil
}

// ServeCmd starts the REST API server.
type ServeCmd struct {
	Port int    `help:"Override the configured HTTP port"`
	Host string `help:"Override the configured bind address"`
}

func (c *ServeCmd) Run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logging.InitLogger(logging.ParseLevel(cfg.Log.Level), logging.ParseFormat(cfg.Log.Format))
	if c.Port != 0 {
		cfg.Server.Port = c.Port
	}
	if c.Host != "" {
		cfg.Server.Host = c.Host
	}

	reg := sources.NewRegistry()
	defer reg.Close()
	for _, src := range cfg.Sources {
		flags := editionFlags{Source: src.Path, Driver: src.Driver}
		loader, err := flags.open()
		if err != nil {
			return err
		}
		reg.Register(loader)
		ed := loader.Edition()
		logging.EditionLoaded(ed.Key, string(ed.Language), "path", src.Path)
	}

	var lexicons []*lexicon.Lexicon
	for _, lc := range cfg.Lexicons {
		lex, err := lexicon.Open(lc.Path)
		if err != nil {
			return err
		}
		lexicons = append(lexicons, lex)
		logging.Info("lexicon loaded", "path", lc.Path, "entries", lex.Len())
	}

	var values cache.Cache[string, int]
	if cfg.Cache.MaxSize > 0 {
		values = cache.NewLRUCache[string, int](cache.Config{
			MaxSize: cfg.Cache.MaxSize,
			TTL:     cfg.Cache.TTL,
		})
	}

	return api.NewServer(cfg.Server, reg, lexicons, values).ListenAndServe()
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("gematria version %s (sqlite driver: %s)\n", version, sources.SQLiteDriverType())
	return nil
}

func loadConfig() (*config.Config, error) {
	if CLI.Config != "" {
		return config.Load(CLI.Config)
	}
	if _, err := os.Stat("config.yaml"); err == nil {
		return config.Load("config.yaml")
	}
	return config.DefaultConfig(), nil
}

func emitJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("gematria"),
		kong.Description("Letter-value computation over Hebrew, Greek, and English scripture"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	err := ctx.Run(ctx)
	ctx.FatalIfErrorf(err)
}
