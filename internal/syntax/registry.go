package syntax

import (
	"path/filepath"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultLexerCacheSize = 256

// Registry resolves chroma lexers for file paths. Lookups by filename glob
// are comparatively slow, so resolved lexers are cached per file name.
// Lexers may claim whole names (CMakeLists.txt), so the extension alone is
// not a safe key.
type Registry struct {
	fallback chroma.Lexer
	cache    *lru.Cache[string, chroma.Lexer]
}

// NewRegistry returns a Registry. language names the lexer used for files no
// lexer claims (e.g. "swift"); empty means such files are not classified.
func NewRegistry(language string) (*Registry, error) {
	cache, err := lru.New[string, chroma.Lexer](defaultLexerCacheSize)
	if err != nil {
		return nil, err
	}
	r := &Registry{cache: cache}
	if language != "" {
		r.fallback = lexers.Get(language)
	}
	return r, nil
}

// Lexer returns the lexer for path, or nil if none applies.
func (r *Registry) Lexer(path string) chroma.Lexer {
	key := filepath.Base(path)
	if l, ok := r.cache.Get(key); ok {
		return l
	}
	l := lexers.Match(key)
	if l == nil {
		if ext := filepath.Ext(path); ext != "" {
			l = lexers.Match("file" + ext)
		}
	}
	if l == nil {
		l = r.fallback
	}
	r.cache.Add(key, l)
	return l
}

// Classifier tokenises text with the lexer for path. It returns nil, nil when
// no lexer applies; callers treat that as "nothing to check".
func (r *Registry) Classifier(path, text string) (Classifier, error) {
	l := r.Lexer(path)
	if l == nil {
		return nil, nil
	}
	toks, err := Tokenize(l, text)
	if err != nil {
		return nil, err
	}
	return toks, nil
}
