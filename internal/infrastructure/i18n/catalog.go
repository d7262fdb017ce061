package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"path"
	"sort"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"factskill/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

// Ensure Catalog implements the output.Localizer port.
var _ output.Localizer = (*Catalog)(nil)

// IndexPicker returns an index in [0, n). It must be safe for concurrent use.
type IndexPicker func(n int) int

// localeBundle holds one locale's strings. Scalar messages live in a go-i18n
// bundle so they can carry template placeholders; sequences are kept as-is.
type localeBundle struct {
	tag      language.Tag
	messages *i18n.Bundle
	scalars  map[string]struct{}
	lists    map[string][]string
}

// Catalog is the process-wide, read-only set of locale bundles. It is built
// once at start-up and safe for concurrent use.
type Catalog struct {
	bundles map[string]*localeBundle
	tags    []language.Tag
	matcher language.Matcher
	pick    IndexPicker
	logger  *zap.Logger
}

type Option func(*Catalog)

// WithPicker replaces the random source used to choose sequence elements.
func WithPicker(p IndexPicker) Option {
	return func(c *Catalog) { c.pick = p }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Catalog) { c.logger = l }
}

// NewCatalog loads the embedded active.*.toml files.
func NewCatalog(opts ...Option) (*Catalog, error) {
	return LoadCatalogFS(localeFS, "active.*.toml", opts...)
}

// LoadCatalogFS loads every file matching pattern in fsys. The locale is taken
// from the file name: active.de-DE.toml holds the de-DE bundle.
func LoadCatalogFS(fsys fs.FS, pattern string, opts ...Option) (*Catalog, error) {
	c := &Catalog{
		bundles: make(map[string]*localeBundle),
		pick:    rand.Intn,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	files, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("i18n: glob %q: %w", pattern, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("i18n: no catalog files match %q", pattern)
	}

	for _, file := range files {
		tag, err := localeFromFile(file)
		if err != nil {
			return nil, err
		}
		if _, dup := c.bundles[tag.String()]; dup {
			return nil, fmt.Errorf("i18n: duplicate catalog for %s (%s)", tag, file)
		}
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("i18n: read %s: %w", file, err)
		}
		b, err := parseBundle(tag, data)
		if err != nil {
			return nil, fmt.Errorf("i18n: %s: %w", file, err)
		}
		c.bundles[tag.String()] = b
		c.tags = append(c.tags, tag)
		c.logger.Debug("i18n: catalog loaded",
			zap.String("locale", tag.String()),
			zap.Int("messages", len(b.scalars)),
			zap.Int("sequences", len(b.lists)))
	}

	sort.Slice(c.tags, func(i, j int) bool { return c.tags[i].String() < c.tags[j].String() })
	c.matcher = language.NewMatcher(c.tags)
	return c, nil
}

func localeFromFile(file string) (language.Tag, error) {
	name := strings.TrimSuffix(strings.TrimPrefix(path.Base(file), "active."), path.Ext(file))
	tag, err := language.Parse(name)
	if err != nil {
		return language.Und, fmt.Errorf("i18n: %s: invalid locale %q: %w", file, name, err)
	}
	return tag, nil
}

func parseBundle(tag language.Tag, data []byte) (*localeBundle, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	b := &localeBundle{
		tag:      tag,
		messages: i18n.NewBundle(tag),
		scalars:  make(map[string]struct{}),
		lists:    make(map[string][]string),
	}
	for key, v := range raw {
		switch val := v.(type) {
		case string:
			if err := b.messages.AddMessages(tag, &i18n.Message{ID: key, Other: val}); err != nil {
				return nil, fmt.Errorf("add %s: %w", key, err)
			}
			b.scalars[key] = struct{}{}
		case []any:
			items := make([]string, 0, len(val))
			for i, item := range val {
				s, ok := item.(string)
				if !ok {
					return nil, fmt.Errorf("%s[%d] is %T, want string", key, i, item)
				}
				items = append(items, s)
			}
			b.lists[key] = items
		default:
			return nil, fmt.Errorf("%s has unsupported type %T", key, v)
		}
	}
	return b, nil
}

// For builds the Translator for locale. Unknown or malformed locales yield a
// Translator whose every lookup fails with ErrMissingTranslationKey.
func (c *Catalog) For(locale string) output.Translator {
	return &Translator{
		locale: locale,
		chain:  c.chain(locale),
		pick:   c.pick,
	}
}

// chain returns the bundles consulted for locale: the exact bundle, then the
// base-language bundle.
func (c *Catalog) chain(locale string) []*localeBundle {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil
	}
	var chain []*localeBundle
	if b, ok := c.bundles[tag.String()]; ok {
		chain = append(chain, b)
	}
	base, _ := tag.Base()
	if baseTag := language.Make(base.String()); baseTag.String() != tag.String() {
		if b, ok := c.bundles[baseTag.String()]; ok {
			chain = append(chain, b)
		}
	}
	return chain
}

// Locales lists the loaded locales in sorted order.
func (c *Catalog) Locales() []string {
	out := make([]string, len(c.tags))
	for i, t := range c.tags {
		out[i] = t.String()
	}
	return out
}

// Match negotiates the best supported locale for an arbitrary client locale.
// It returns fallback when nothing matches.
func (c *Catalog) Match(locale, fallback string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return fallback
	}
	_, idx, conf := c.matcher.Match(tag)
	if conf == language.No {
		return fallback
	}
	return c.tags[idx].String()
}

// Validate checks that every key resolves to a usable value in every loaded
// locale, through region→base fallback.
func (c *Catalog) Validate(keys ...string) error {
	var errs []error
	for _, tag := range c.tags {
		chain := c.chain(tag.String())
		for _, key := range keys {
			if err := lookupErr(chain, tag.String(), key); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}
