package cache

import (
	"encoding/hex"

	"github.com/zeebo/blake3"

	"github.com/metaxiamultimedia/scriptures-core/core/gematria"
	"github.com/metaxiamultimedia/scriptures-core/core/text"
)

// ValueKey derives a cache key from the full identity of a
// computation: system name, language, and text. BLAKE3 keeps keys
// fixed-size regardless of verse length.
func ValueKey(method string, lang gematria.Language, body string) string {
	h := blake3.New()
	h.Write([]byte(method))
	h.Write([]byte{0})
	h.Write([]byte(lang))
	h.Write([]byte{0})
	h.Write([]byte(body))
	return hex.EncodeToString(h.Sum(nil))
}

// Values wraps a text.Values container with memoization. Because every
// computation is pure, a hit and a recomputation are observationally
// identical.
type Values struct {
	inner text.Values
	lang  gematria.Language
	body  string
	lru   Cache[string, int]
}

// WrapValues memoizes a container. The lang and body arguments
// identify the wrapped content for key derivation; the shared lru may
// serve many containers.
func WrapValues(inner text.Values, lang gematria.Language, body string, lru Cache[string, int]) *Values {
	return &Values{inner: inner, lang: lang, body: body, lru: lru}
}

// Get returns the named system value, consulting the cache first.
func (v *Values) Get(name string) int {
	key := ValueKey(name, v.lang, v.body)
	if cached, ok := v.lru.Get(key); ok {
		return cached
	}
	value := v.inner.Get(name)
	v.lru.Put(key, value)
	return value
}
