// Package highlight implements the syntax-highlighting collaborator
// used by the rich-text renderer, backed by chroma.
package highlight

import (
	"context"
	"crypto/md5"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	gocache "github.com/patrickmn/go-cache"
)

// engine bundles the pieces chroma needs per process.
type engine struct {
	formatter *chromahtml.Formatter
	style     *chroma.Style
}

// Chroma renders code blocks as HTML markup. The underlying engine is
// built lazily and cached for the process lifetime; if construction
// fails the slot is left empty so the next call retries instead of
// failing forever. Highlighted output is memoized since the same code
// blocks render on every page view.
type Chroma struct {
	mu        sync.Mutex
	engine    *engine
	styleName string
	cache     *gocache.Cache
}

// New creates a highlighter using the given chroma style name.
func New(styleName string) *Chroma {
	if styleName == "" {
		styleName = "github"
	}
	return &Chroma{
		styleName: styleName,
		cache:     gocache.New(10*time.Minute, 30*time.Minute),
	}
}

// Highlight converts (code, language) into HTML markup.
func (c *Chroma) Highlight(ctx context.Context, code, language string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	key := cacheKey(language, code)
	if cached, found := c.cache.Get(key); found {
		return cached.(string), nil
	}

	eng, err := c.getEngine()
	if err != nil {
		return "", err
	}

	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return "", fmt.Errorf("failed to tokenise code block: %w", err)
	}

	var sb strings.Builder
	if err := eng.formatter.Format(&sb, eng.style, iterator); err != nil {
		return "", fmt.Errorf("failed to format code block: %w", err)
	}

	markup := sb.String()
	c.cache.Set(key, markup, gocache.DefaultExpiration)
	return markup, nil
}

// getEngine returns the process-wide engine, building it on first use.
// Concurrent callers serialize on the mutex and converge on a single
// construction.
func (c *Chroma) getEngine() (*engine, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.engine != nil {
		return c.engine, nil
	}

	style := styles.Get(c.styleName)
	if style == nil {
		style = styles.Fallback
	}
	if style == nil {
		// Slot stays nil, next call retries initialization.
		return nil, fmt.Errorf("no chroma style available for %q", c.styleName)
	}

	c.engine = &engine{
		formatter: chromahtml.New(
			chromahtml.WithClasses(false),
			chromahtml.TabWidth(4),
		),
		style: style,
	}
	return c.engine, nil
}

func cacheKey(language, code string) string {
	return fmt.Sprintf("%x", md5.Sum([]byte(language+"\x00"+code)))
}
