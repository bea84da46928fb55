package api

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"github.com/metaxiamultimedia/scriptures-core/core/errors"
	"github.com/metaxiamultimedia/scriptures-core/core/gematria"
	"github.com/metaxiamultimedia/scriptures-core/core/text"
	"github.com/metaxiamultimedia/scriptures-core/internal/cache"
	"github.com/metaxiamultimedia/scriptures-core/internal/sources"
)

// APIResponse is the standard API response wrapper.
type APIResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   *APIError `json:"error,omitempty"`
	Meta    *APIMeta  `json:"meta,omitempty"`
}

// APIError represents an API error.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// APIMeta contains response metadata.
type APIMeta struct {
	Total     int    `json:"total,omitempty"`
	Timestamp string `json:"timestamp"`
}

// MethodInfo describes one registered computation system.
type MethodInfo struct {
	Identifier string `json:"identifier"`
	Name       string `json:"name"`
	Alias      string `json:"alias,omitempty"`
	Language   string `json:"language"`
}

// ComputeRequest is the request body for computation.
type ComputeRequest struct {
	Text     string `json:"text"`
	Method   string `json:"method,omitempty"`
	Language string `json:"language,omitempty"`
}

// ComputeResult is the result of a computation.
type ComputeResult struct {
	Text     string         `json:"text"`
	Language string         `json:"language"`
	Method   string         `json:"method,omitempty"`
	Value    int            `json:"value,omitempty"`
	Values   map[string]int `json:"values,omitempty"`
}

// DetectResult reports the detected language of a text.
type DetectResult struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

// EditionInfo describes a registered edition.
type EditionInfo struct {
	ID       string `json:"id"`
	Key      string `json:"key"`
	Title    string `json:"title"`
	Language string `json:"language"`
	Tagged   bool   `json:"tagged"`
}

// WordResult is one word of a verse with its computed value.
type WordResult struct {
	Position int    `json:"position"`
	Text     string `json:"text"`
	Value    int    `json:"value"`
	Variant  string `json:"variant,omitempty"`
	Colophon bool   `json:"colophon,omitempty"`
	Lemma    string `json:"lemma,omitempty"`
	Morph    string `json:"morph,omitempty"`
}

// VerseResult is a verse with its aggregate and per-word values.
type VerseResult struct {
	Ref      string       `json:"ref"`
	Edition  string       `json:"edition"`
	Language string       `json:"language"`
	Method   string       `json:"method"`
	Total    int          `json:"total"`
	Words    []WordResult `json:"words"`
}

// HealthInfo is the health check response.
type HealthInfo struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	Uptime   string `json:"uptime"`
	Editions int    `json:"editions"`
	Methods  int    `json:"methods"`
}

// Version is the API version string.
const Version = "0.3.0"

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Endpoint not found")
		return
	}

	respond(w, http.StatusOK, map[string]any{
		"name":    "Scriptures Core API",
		"version": Version,
		"endpoints": []string{
			"GET /health",
			"GET /api/v1/methods",
			"POST /api/v1/compute",
			"GET /api/v1/detect",
			"GET /api/v1/editions",
			"GET /api/v1/verse",
			"GET /api/v1/chapter",
			"GET /api/v1/lexicon/:id",
			"WS /ws",
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Only GET is allowed")
		return
	}

	respond(w, http.StatusOK, HealthInfo{
		Status:   "healthy",
		Version:  Version,
		Uptime:   time.Since(s.start).String(),
		Editions: len(s.sources.Keys()),
		Methods:  len(gematria.Default().Methods()),
	})
}

func (s *Server) handleMethods(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Only GET is allowed")
		return
	}

	reg := gematria.Default()
	var methods []*gematria.Method
	if lang := r.URL.Query().Get("language"); lang != "" {
		methods = reg.ForLanguage(gematria.NormalizeLanguage(lang))
	} else {
		methods = reg.Methods()
	}

	infos := make([]MethodInfo, 0, len(methods))
	for _, m := range methods {
		infos = append(infos, MethodInfo{
			Identifier: m.Identifier,
			Name:       m.Name,
			Alias:      m.Alias,
			Language:   string(m.Language),
		})
	}
	respondList(w, infos, len(infos))
}

func (s *Server) handleCompute(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Only POST is allowed")
		return
	}

	var req ComputeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "Malformed request body")
		return
	}

	lang := gematria.Auto
	if req.Language != "" {
		lang = gematria.NormalizeLanguage(req.Language)
	}
	if lang == gematria.Auto && strings.TrimSpace(req.Text) != "" {
		lang = gematria.Detect(req.Text)
	}

	if req.Method == "" {
		values, err := gematria.ComputeAll(req.Text, lang)
		if err != nil {
			respondComputeError(w, err)
			return
		}
		respond(w, http.StatusOK, ComputeResult{
			Text:     req.Text,
			Language: string(lang),
			Values:   values,
		})
		return
	}

	value, err := gematria.ComputeMethod(req.Method, req.Text, lang)
	if err != nil {
		respondComputeError(w, err)
		return
	}
	method, err := gematria.Default().Resolve(req.Method, lang)
	if err != nil {
		respondComputeError(w, err)
		return
	}
	respond(w, http.StatusOK, ComputeResult{
		Text:     req.Text,
		Language: string(method.Language),
		Method:   method.Identifier,
		Value:    value,
	})
}

func (s *Server) handleDetect(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Only GET is allowed")
		return
	}

	body := r.URL.Query().Get("text")
	if strings.TrimSpace(body) == "" {
		respondError(w, http.StatusBadRequest, "EMPTY_TEXT", "text parameter is required")
		return
	}
	respond(w, http.StatusOK, DetectResult{
		Text:     body,
		Language: string(gematria.Detect(body)),
	})
}

func (s *Server) handleEditions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Only GET is allowed")
		return
	}

	keys := s.sources.Keys()
	infos := make([]EditionInfo, 0, len(keys))
	for _, key := range keys {
		l, err := s.sources.Lookup(key)
		if err != nil {
			continue
		}
		ed := l.Edition()
		infos = append(infos, EditionInfo{
			ID:       ed.ID.String(),
			Key:      ed.Key,
			Title:    ed.Title,
			Language: string(ed.Language),
			Tagged:   ed.Tagged,
		})
	}
	respondList(w, infos, len(infos))
}

func (s *Server) handleVerse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Only GET is allowed")
		return
	}

	q := r.URL.Query()
	loader, err := s.sources.Lookup(q.Get("edition"))
	if err != nil {
		respondError(w, http.StatusNotFound, "UNKNOWN_EDITION", "Edition not registered")
		return
	}
	ref, err := sources.ParseRef(q.Get("ref"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REF", err.Error())
		return
	}
	verse, err := loader.Verse(r.Context(), ref)
	if err != nil {
		if stderrors.Is(err, errors.ErrNotFound) {
			respondError(w, http.StatusNotFound, "VERSE_NOT_FOUND", err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "LOAD_FAILED", err.Error())
		return
	}

	result, err := s.verseResult(verse, q.Get("edition"), verseQueryOptions(q))
	if err != nil {
		respondComputeError(w, err)
		return
	}
	respond(w, http.StatusOK, result)
}

func (s *Server) handleChapter(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Only GET is allowed")
		return
	}

	q := r.URL.Query()
	loader, err := s.sources.Lookup(q.Get("edition"))
	if err != nil {
		respondError(w, http.StatusNotFound, "UNKNOWN_EDITION", "Edition not registered")
		return
	}
	chapter, err := strconv.Atoi(q.Get("chapter"))
	if err != nil || chapter < 1 {
		respondError(w, http.StatusBadRequest, "INVALID_CHAPTER", "chapter must be a positive integer")
		return
	}
	book := q.Get("book")

	verses, err := loader.Chapter(r.Context(), book, chapter)
	if err != nil {
		if stderrors.Is(err, errors.ErrNotFound) {
			respondError(w, http.StatusNotFound, "CHAPTER_NOT_FOUND", err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "LOAD_FAILED", err.Error())
		return
	}

	opts := verseQueryOptions(q)
	operation := fmt.Sprintf("chapter:%s.%d", book, chapter)
	results := make([]VerseResult, 0, len(verses))
	for i, verse := range verses {
		vr, err := s.verseResult(verse, q.Get("edition"), opts)
		if err != nil {
			s.hub.BroadcastError(operation, err.Error())
			respondComputeError(w, err)
			return
		}
		results = append(results, *vr)
		s.hub.BroadcastProgress(operation, verse.Ref,
			fmt.Sprintf("computed %s = %d", verse.Ref, vr.Total),
			(i+1)*100/len(verses))
	}
	s.hub.BroadcastComplete(operation, "chapter computed", map[string]any{
		"verses": len(results),
	})
	respondList(w, results, len(results))
}

func (s *Server) handleLexicon(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Only GET is allowed")
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/v1/lexicon/")
	if id == "" || strings.Contains(id, "/") {
		respondError(w, http.StatusBadRequest, "INVALID_ID", "Lexicon identifier is required")
		return
	}
	for _, lex := range s.lexicons {
		if entry, err := lex.Lookup(id); err == nil {
			respond(w, http.StatusOK, entry)
			return
		}
	}
	respondError(w, http.StatusNotFound, "ENTRY_NOT_FOUND", "No lexicon entry for "+id)
}

// verseQueryOptions maps query parameters to aggregation options.
func verseQueryOptions(q url.Values) verseOptions {
	method := q.Get("method")
	if method == "" {
		method = "standard"
	}
	return verseOptions{
		method: method,
		agg: text.AggregationOptions{
			Variant:          text.Variant(q.Get("variant")),
			IncludeColophons: q.Get("include_colophons") == "true",
		},
	}
}

type verseOptions struct {
	method string
	agg    text.AggregationOptions
}

// verseResult computes a verse's aggregate and per-word values,
// resolving the method once so an unknown identifier fails loudly
// rather than summing silent zeros.
func (s *Server) verseResult(verse *text.Verse, edition string, opts verseOptions) (*VerseResult, error) {
	reg := gematria.Default()
	method, err := reg.Resolve(opts.method, verse.Language)
	if err != nil {
		return nil, err
	}

	vv := text.NewVerseValues(verse.Words, verse.Language, opts.agg)
	result := &VerseResult{
		Ref:      verse.Ref,
		Edition:  edition,
		Language: string(verse.Language),
		Method:   method.Identifier,
	}
	for _, word := range vv.Included() {
		values := s.wordValues(word.Text, verse.Language)
		value := values.Get(method.Identifier)
		result.Total += value
		result.Words = append(result.Words, WordResult{
			Position: word.Position,
			Text:     word.Text,
			Value:    value,
			Variant:  string(word.Variant),
			Colophon: word.IsColophon(),
			Lemma:    word.Lemma.Value,
			Morph:    word.Morph.Value,
		})
	}
	return result, nil
}

// wordValues returns a value container for one word, cached when the
// server carries a value cache.
func (s *Server) wordValues(body string, lang gematria.Language) text.Values {
	inner := text.NewWordValues(body, lang)
	if s.values == nil {
		return inner
	}
	return cache.WrapValues(inner, lang, body, s.values)
}

func respondComputeError(w http.ResponseWriter, err error) {
	switch {
	case stderrors.Is(err, errors.ErrInvalidInput):
		respondError(w, http.StatusBadRequest, "INVALID_INPUT", err.Error())
	case stderrors.Is(err, errors.ErrNotFound):
		respondError(w, http.StatusNotFound, "UNKNOWN_METHOD", err.Error())
	case stderrors.Is(err, errors.ErrUnsupported):
		respondError(w, http.StatusUnprocessableEntity, "UNSUPPORTED_TEXT", err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "COMPUTE_FAILED", err.Error())
	}
}

func respond(w http.ResponseWriter, status int, data any) {
	response := APIResponse{
		Success: true,
		Data:    data,
		Meta: &APIMeta{
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(response)
}

func respondList(w http.ResponseWriter, data any, total int) {
	response := APIResponse{
		Success: true,
		Data:    data,
		Meta: &APIMeta{
			Total:     total,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	response := APIResponse{
		Success: false,
		Error: &APIError{
			Code:    code,
			Message: message,
		},
		Meta: &APIMeta{
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(response)
}
